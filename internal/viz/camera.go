package viz

import (
	"math"

	"github.com/san-kum/nbodyviz/internal/series"
)

// maxExtent is how far past the cube, in half-widths, a body may sit and
// still be drawn.
const maxExtent = 2

// Camera projects world positions inside a fixed bounding cube onto a 2D
// surface. Angles are in degrees and follow the usual plotting convention:
// elevation above the XY plane, azimuth about the Z axis, Z up.
type Camera struct {
	Elevation float64
	Azimuth   float64
	Bounds    float64 // half-width of the cube on every axis
	Distance  float64 // eye distance in cube half-widths
}

func NewCamera(bounds, elevation, azimuth float64) Camera {
	return Camera{Elevation: elevation, Azimuth: azimuth, Bounds: bounds, Distance: 8}
}

// basis returns the screen right, screen up and toward-eye unit vectors.
func (c Camera) basis() (right, up, eye series.Position) {
	el := c.Elevation * math.Pi / 180
	az := c.Azimuth * math.Pi / 180
	se, ce := math.Sin(el), math.Cos(el)
	sa, ca := math.Sin(az), math.Cos(az)
	right = series.Position{X: -sa, Y: ca}
	up = series.Position{X: -se * ca, Y: -se * sa, Z: ce}
	eye = series.Position{X: ce * ca, Y: ce * sa, Z: se}
	return
}

// Project maps p onto a w x h surface. Depth grows toward the viewer.
// ok is false when the point is not finite, lies well outside the cube, or
// lands off the surface.
func (c Camera) Project(p series.Position, w, h int) (x, y int, depth float64, ok bool) {
	if !p.IsFinite() || c.Bounds <= 0 {
		return 0, 0, 0, false
	}
	q := p.Scale(1 / c.Bounds)
	if math.Abs(q.X) > maxExtent || math.Abs(q.Y) > maxExtent || math.Abs(q.Z) > maxExtent {
		return 0, 0, 0, false
	}
	right, up, eye := c.basis()
	sx := dot(q, right)
	sy := dot(q, up)
	depth = dot(q, eye)

	dist := c.Distance
	if dist <= 0 {
		dist = 8
	}
	if depth >= dist {
		return 0, 0, depth, false
	}
	persp := dist / (dist - depth)

	// A corner lands at most sqrt(3)*persp half-widths from the center.
	unit := float64(min(w, h)) / 4.6
	x = int(math.Round(float64(w)/2 + sx*persp*unit))
	y = int(math.Round(float64(h)/2 - sy*persp*unit))
	ok = x >= 0 && x < w && y >= 0 && y < h
	return x, y, depth, ok
}

// CubeEdges returns the twelve edges of the bounding cube.
func (c Camera) CubeEdges() [12][2]series.Position {
	s := c.Bounds
	v := [8]series.Position{
		{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s}, {X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s}, {X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s},
	}
	ei := [12][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	var edges [12][2]series.Position
	for i, e := range ei {
		edges[i] = [2]series.Position{v[e[0]], v[e[1]]}
	}
	return edges
}

func dot(a, b series.Position) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
