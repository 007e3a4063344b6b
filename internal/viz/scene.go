package viz

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/san-kum/nbodyviz/internal/series"
)

// Options fixes the visual mapping for a whole run.
type Options struct {
	Bounds      float64
	Elevation   float64
	Azimuth     float64
	Theme       Theme
	Cols, Rows  int     // terminal canvas size in cells
	ImageWidth  int     // export size in pixels
	ImageHeight int
	MarkerScale float64 // pixels per sqrt(radius) on a 480px tall image
}

// DefaultOptions mirrors the reference plot: a ±5000 cube seen from
// elevation 25°, azimuth 10°, on a 640x480 dark figure.
func DefaultOptions() Options {
	return Options{
		Bounds:      5000,
		Elevation:   25,
		Azimuth:     10,
		Theme:       ThemeDark,
		Cols:        80,
		Rows:        32,
		ImageWidth:  640,
		ImageHeight: 480,
		MarkerScale: 0.5,
	}
}

type marker struct {
	x, y   int
	depth  float64
	radius float64
	body   int
}

// Scene turns frames into pixels with a camera and theme fixed at
// construction. It keeps its own scratch buffers and never retains the
// frames it is given.
type Scene struct {
	opts    Options
	cam     Camera
	edges   [12][2]series.Position
	markers []marker
}

func NewScene(opts Options) *Scene {
	cam := NewCamera(opts.Bounds, opts.Elevation, opts.Azimuth)
	return &Scene{
		opts:  opts,
		cam:   cam,
		edges: cam.CubeEdges(),
	}
}

func (s *Scene) Options() Options { return s.opts }
func (s *Scene) Camera() Camera   { return s.cam }

// MarkerRadius maps a body radius to a marker radius in pixels for a
// surface of the given height. Marker area grows linearly with the radius.
func (s *Scene) MarkerRadius(radius float64, surfaceHeight int) float64 {
	if radius <= 0 || math.IsNaN(radius) {
		return 0
	}
	r := s.opts.MarkerScale * math.Sqrt(radius) * float64(surfaceHeight) / 480
	if limit := float64(surfaceHeight) / 16; r > limit {
		r = limit
	}
	return r
}

// project fills the scratch marker list for f, sorted far to near.
func (s *Scene) project(f series.Frame, radii []float64, w, h int) []marker {
	s.markers = s.markers[:0]
	for i, p := range f {
		x, y, depth, ok := s.cam.Project(p, w, h)
		if !ok {
			continue
		}
		r := 0.0
		if i < len(radii) {
			r = radii[i]
		}
		s.markers = append(s.markers, marker{x: x, y: y, depth: depth, radius: s.MarkerRadius(r, h), body: i})
	}
	sort.SliceStable(s.markers, func(i, j int) bool { return s.markers[i].depth < s.markers[j].depth })
	return s.markers
}

func (s *Scene) drawEdges(w, h int, draw func(x0, y0, x1, y1 int)) {
	for _, e := range s.edges {
		x0, y0, _, _ := s.cam.Project(e[0], w, h)
		x1, y1, _, _ := s.cam.Project(e[1], w, h)
		draw(x0, y0, x1, y1)
	}
}

// Rasterize clears c and draws the cube and one disc per visible body.
func (s *Scene) Rasterize(c *Canvas, f series.Frame, radii []float64) {
	c.Clear()
	w, h := c.PixelSize()
	c.Pen = 0
	s.drawEdges(w, h, c.DrawLine)
	for _, m := range s.project(f, radii, w, h) {
		c.Pen = 1 + m.body%max(1, len(s.opts.Theme.Markers))
		c.FillDisc(m.x, m.y, m.radius)
	}
	c.Pen = 0
}

// Paint fills img with the background and draws the scene into it.
func (s *Scene) Paint(img *image.RGBA, f series.Frame, radii []float64) {
	th := s.opts.Theme
	b := img.Bounds()
	bg := RGBA(th.Background)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, bg)
		}
	}

	w, h := b.Dx(), b.Dy()
	edge := RGBA(th.Muted)
	s.drawEdges(w, h, func(x0, y0, x1, y1 int) {
		line(x0, y0, x1, y1, plot(img, b.Min, edge))
	})
	for _, m := range s.project(f, radii, w, h) {
		disc(m.x, m.y, m.radius, plot(img, b.Min, RGBA(th.MarkerColor(m.body))))
	}
}

func plot(img *image.RGBA, origin image.Point, c color.RGBA) func(x, y int) {
	return func(x, y int) {
		p := image.Pt(origin.X+x, origin.Y+y)
		if p.In(img.Bounds()) {
			img.SetRGBA(p.X, p.Y, c)
		}
	}
}
