package viz

import (
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/nbodyviz/internal/series"
)

func TestRecorderWritesLoopingGIF(t *testing.T) {
	rec := NewRecorder(DefaultOptions(), 60)
	for i := 0; i < 3; i++ {
		f := series.Frame{{X: float64(i) * 100}}
		if err := rec.Present(f, []float64{100}); err != nil {
			t.Fatalf("present failed: %v", err)
		}
	}
	if rec.Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", rec.Frames())
	}
	if got, want := rec.Bytes(), 3*640*480; got != want {
		t.Errorf("expected %d buffered bytes, got %d", want, got)
	}

	path := filepath.Join(t.TempDir(), "figures", "out.gif")
	if err := rec.Finalize(path); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()
	anim, err := gif.DecodeAll(file)
	if err != nil {
		t.Fatalf("decode gif: %v", err)
	}

	if len(anim.Image) != 3 {
		t.Errorf("expected 3 frames in file, got %d", len(anim.Image))
	}
	if anim.LoopCount != 0 {
		t.Errorf("expected infinite loop, got %d", anim.LoopCount)
	}
	for i, d := range anim.Delay {
		if d != 2 {
			t.Errorf("frame %d: expected delay 2, got %d", i, d)
		}
	}
	b := anim.Image[0].Bounds()
	if b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("expected 640x480, got %v", b)
	}

	r, g, bl, _ := anim.Image[0].At(320, 240).RGBA()
	want := RGBA(ThemeDark.Markers[0])
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(bl>>8) != want.B {
		t.Errorf("center pixel does not carry the marker color")
	}
}

func TestRecorderErrors(t *testing.T) {
	rec := NewRecorder(DefaultOptions(), 0)
	if err := rec.Finalize(filepath.Join(t.TempDir(), "x.gif")); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}

	_ = rec.Present(series.Frame{}, nil)
	if err := rec.Finalize(""); !errors.Is(err, ErrNoExportTarget) {
		t.Errorf("expected ErrNoExportTarget, got %v", err)
	}
}

func TestRecorderDelay(t *testing.T) {
	tests := []struct {
		fps   int
		delay int
	}{
		{60, 2},
		{20, 5},
		{25, 4},
		{500, 1},
		{0, 2},
	}
	for _, tt := range tests {
		if got := NewRecorder(DefaultOptions(), tt.fps).Delay(); got != tt.delay {
			t.Errorf("fps %d: expected delay %d, got %d", tt.fps, tt.delay, got)
		}
	}
}
