package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a Braille cell grid addressed in sub-pixels: (Width*2) x (Height*4).
// Each cell also remembers the ink of the last dot set in it so the terminal
// view can color bodies individually. Ink 0 is the theme foreground, ink k>0
// is marker color k-1.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Ink           [][]int
	Pen           int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Ink:    make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Ink[i] = make([]int, w)
	}
	c.Clear()
	return c
}

// PixelSize returns the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) { return c.Width * 2, c.Height * 4 }

// Set turns on the dot at sub-pixel (x, y) using the current pen.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Ink[row][col] = c.Pen
}

// Unset clears a dot.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Ink[i][j] = 0
		}
	}
	c.Pen = 0
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	line(x0, y0, x1, y1, c.Set)
}

// FillDisc sets every dot within r of (cx, cy). A radius under one dot
// still marks the center.
func (c *Canvas) FillDisc(cx, cy int, r float64) {
	disc(cx, cy, r, c.Set)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render colors the grid with the theme. Runs of cells sharing an ink are
// styled together.
func (c *Canvas) Render(th Theme) string {
	styles := make([]lipgloss.Style, len(th.Markers)+1)
	styles[0] = lipgloss.NewStyle().Foreground(th.Muted)
	for i, m := range th.Markers {
		styles[i+1] = lipgloss.NewStyle().Foreground(m)
	}

	var b strings.Builder
	for row := range c.Grid {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.Ink[row][col] == c.Ink[row][start] {
				continue
			}
			ink := c.Ink[row][start]
			if ink < 0 || ink >= len(styles) {
				ink = 0
			}
			b.WriteString(styles[ink].Render(string(c.Grid[row][start:col])))
			start = col
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func line(x0, y0, x1, y1 int, set func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func disc(cx, cy int, r float64, set func(x, y int)) {
	if r < 1 {
		set(cx, cy)
		return
	}
	ir := int(r)
	r2 := r * r
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if float64(dx*dx+dy*dy) <= r2 {
				set(cx+dx, cy+dy)
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
