package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color scheme for one run. Every theme has a dark background.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color // axes and bounding cube
	Accent     lipgloss.Color
	Markers    []lipgloss.Color
}

// Available themes
var (
	// ThemeDark is a black background with the classic pastel marker cycle.
	ThemeDark = Theme{
		Name:       "dark",
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#5a5a5a"),
		Accent:     lipgloss.Color("#8dd3c7"),
		Markers: []lipgloss.Color{
			"#8dd3c7", "#feffb3", "#bfbbd9", "#fa8174", "#81b1d2",
			"#fdb462", "#b3de69", "#bc82bd", "#ccebc4", "#ffed6f",
		},
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#ffff00"),
		Markers:    []lipgloss.Color{"#ff00ff", "#00ffff", "#ffff00", "#00ff00", "#ff8800"},
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
		Markers:    []lipgloss.Color{"#00ff00", "#88ff88", "#00cc00"},
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ffd700"),
		Markers:    []lipgloss.Color{"#00a8cc", "#ffd700", "#00ff88", "#e0f0ff", "#ff4444"},
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Markers:    []lipgloss.Color{"#ff6b6b", "#feca57", "#ff9ff3", "#5fd068", "#ffc048"},
	}

	Themes = []Theme{
		ThemeDark,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeDark, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// MarkerColor returns the cycle color for body i.
func (t Theme) MarkerColor(i int) lipgloss.Color {
	if len(t.Markers) == 0 {
		return t.Text
	}
	return t.Markers[i%len(t.Markers)]
}

// Palette lists every color the theme paints with, background first, for
// paletted image output.
func (t Theme) Palette() color.Palette {
	p := color.Palette{RGBA(t.Background), RGBA(t.Text), RGBA(t.Muted), RGBA(t.Accent)}
	for _, m := range t.Markers {
		p = append(p, RGBA(m))
	}
	return p
}

// RGBA converts a "#rrggbb" theme color. Anything else maps to white.
func RGBA(c lipgloss.Color) color.RGBA {
	r, g, b := parseHex(string(c))
	return color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}
