package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)

	if w, h := c.PixelSize(); w != 8 || h != 8 {
		t.Fatalf("expected 8x8 sub-pixels, got %dx%d", w, h)
	}

	c.Pen = 3
	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Error("expected dot to be set")
	}
	if c.Ink[1][1] != 3 {
		t.Errorf("expected ink 3, got %d", c.Ink[1][1])
	}
	if c.Grid[1][1] != rune(blank|pixelMap[1][1]) {
		t.Errorf("unexpected cell %U", c.Grid[1][1])
	}

	c.Unset(3, 5)
	if c.IsSet(3, 5) {
		t.Error("expected dot to be cleared")
	}
	if c.Grid[1][1] != blank {
		t.Errorf("expected blank cell, got %U", c.Grid[1][1])
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r > blank }) {
		t.Error("out of bounds writes leaked into the grid")
	}
}

func TestCanvasFillDisc(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillDisc(10, 10, 2)

	count := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if c.IsSet(x, y) {
				count++
			}
		}
	}
	// 13 lattice points lie within radius 2.
	if count != 13 {
		t.Errorf("expected 13 dots, got %d", count)
	}

	c.Clear()
	c.FillDisc(4, 4, 0.2)
	if !c.IsSet(4, 4) {
		t.Error("tiny disc should still mark its center")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 0, 9, 0)
	for x := 0; x <= 9; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("expected dot at (%d,0)", x)
		}
	}
}

func TestCanvasStringAndRender(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0)
	c.Pen = 1
	c.Set(4, 4)

	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if len([]rune(lines[0])) != 3 {
		t.Errorf("expected 3 cells per row, got %d", len([]rune(lines[0])))
	}

	out := c.Render(ThemeDark)
	if !strings.ContainsRune(out, rune(blank|pixelMap[0][0])) {
		t.Error("rendered output lost a dot")
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 rendered rows, got %d", strings.Count(out, "\n"))
	}
}
