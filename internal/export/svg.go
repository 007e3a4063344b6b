package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/nbodyviz/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG, one circle per set dot,
// colored by each cell's ink.
func CanvasToSVG(canvas *viz.Canvas, scale float64, th viz.Theme) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, th.Background)

	dotRadius := scale * 0.4
	px, py := canvas.PixelSize()
	for y := 0; y < py; y++ {
		for x := 0; x < px; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fill := th.Muted
			if ink := canvas.Ink[y/4][x/2]; ink > 0 {
				fill = th.MarkerColor(ink - 1)
			}
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius, fill)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// LineChartToSVG draws values as a polyline over their index, scaled to fill
// the image with 10% padding.
func LineChartToSVG(values []float64, width, height int, th viz.Theme) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2
	rangeX := float64(len(values) - 1)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, th.Background, th.Accent)

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>
`)
	return sb.String()
}

// WriteFile writes an SVG document, creating parent directories.
func WriteFile(path, svg string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
