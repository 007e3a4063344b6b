package viz

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/nbodyviz/internal/series"
)

// DefaultExportFPS is the frame rate baked into exported animations. It is
// independent of the live playback interval.
const DefaultExportFPS = 60

// Recorder captures every presented frame and writes them as one looping
// GIF on Finalize.
type Recorder struct {
	scene   *Scene
	fps     int
	scratch *image.RGBA
	frames  []*image.Paletted
	label   bool
}

func NewRecorder(opts Options, fps int) *Recorder {
	if fps <= 0 {
		fps = DefaultExportFPS
	}
	w, h := opts.ImageWidth, opts.ImageHeight
	if w <= 0 || h <= 0 {
		w, h = 640, 480
		opts.ImageWidth, opts.ImageHeight = w, h
	}
	return &Recorder{
		scene:   NewScene(opts),
		fps:     fps,
		scratch: image.NewRGBA(image.Rect(0, 0, w, h)),
		label:   true,
	}
}

// SetLabel toggles the frame counter drawn in the top-left corner.
func (r *Recorder) SetLabel(on bool) { r.label = on }

func (r *Recorder) Frames() int { return len(r.frames) }

// Bytes is the pixel memory held by captured frames. Every frame stays
// resident until Finalize, since image/gif encodes the whole animation at
// once: 600 frames at 640x480 hold about 184 MB.
func (r *Recorder) Bytes() int {
	n := 0
	for _, f := range r.frames {
		n += len(f.Pix)
	}
	return n
}

// Delay is the per-frame GIF delay in hundredths of a second.
func (r *Recorder) Delay() int {
	return max(1, int(math.Round(100/float64(r.fps))))
}

func (r *Recorder) Present(f series.Frame, radii []float64) error {
	r.scene.Paint(r.scratch, f, radii)
	if r.label {
		r.drawLabel(fmt.Sprintf("t = %d", len(r.frames)))
	}

	th := r.scene.Options().Theme
	pal := image.NewPaletted(r.scratch.Bounds(), th.Palette())
	draw.Draw(pal, pal.Bounds(), r.scratch, image.Point{}, draw.Src)
	r.frames = append(r.frames, pal)
	return nil
}

func (r *Recorder) drawLabel(text string) {
	d := &font.Drawer{
		Dst:  r.scratch,
		Src:  image.NewUniform(RGBA(r.scene.Options().Theme.Text)),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(8), Y: fixed.I(18)},
	}
	d.DrawString(text)
}

// Finalize writes the captured frames to exportTarget, creating parent
// directories as needed.
func (r *Recorder) Finalize(exportTarget string) error {
	if exportTarget == "" {
		return ErrNoExportTarget
	}
	if len(r.frames) == 0 {
		return ErrNoFrames
	}

	if dir := filepath.Dir(exportTarget); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	anim := gif.GIF{LoopCount: 0}
	delay := r.Delay()
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(exportTarget)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	slog.Info("viz: animation written", "path", exportTarget, "frames", len(r.frames), "fps", r.fps, "buffered_bytes", r.Bytes())
	return nil
}
