// Package mdtheme defines the fixed color palette shared by every renderer
// and maps palette entries to output forms: ANSI SGR parameters from its
// own table, CSS hex strings (Hex), and lipgloss colors (LipglossColor).
package mdtheme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a palette entry. The zero value is Default (no color applied).
type Color uint8

const (
	// Default means "do not change the terminal's current color".
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// entry pairs a palette Color with its RGB value and the SGR parameter
// used to select it as a foreground color (background is +10).
type entry struct {
	hex string
	fg  int
}

// palette is the fixed 16-entry table (8 basic + 8 bright/named-extended)
// plus Default. RGB values follow a standard xterm-like 16-color scheme so
// that rendering looks the same across the console, HTML, and range
// renderers.
var palette = map[Color]entry{
	Default:       {"", 39},
	Black:         {"#000000", 30},
	Red:           {"#cc0000", 31},
	Green:         {"#4e9a06", 32},
	Yellow:        {"#c4a000", 33},
	Blue:          {"#3465a4", 34},
	Magenta:       {"#75507b", 35},
	Cyan:          {"#06989a", 36},
	White:         {"#d3d7cf", 37},
	BrightBlack:   {"#555753", 90},
	BrightRed:     {"#ef2929", 91},
	BrightGreen:   {"#8ae234", 92},
	BrightYellow:  {"#fce94f", 93},
	BrightBlue:    {"#729fcf", 94},
	BrightMagenta: {"#ad7fa8", 95},
	BrightCyan:    {"#34e2e2", 96},
	BrightWhite:   {"#eeeeec", 97},
}

// Hex returns the CSS hex string for c, or "" for Default.
func Hex(c Color) string {
	return palette[c].hex
}

// SGRForeground returns the SGR parameter that selects c as a foreground
// color. Default returns 39 ("reset to default foreground").
func SGRForeground(c Color) int {
	return palette[c].fg
}

// SGRBackground returns the SGR parameter that selects c as a background
// color. Default returns 49 ("reset to default background").
func SGRBackground(c Color) int {
	fg := palette[c].fg
	if fg == 39 {
		return 49
	}

	return fg + 10
}

// LipglossColor adapts c to a lipgloss.Color (its hex string, or an empty
// color for Default).
func LipglossColor(c Color) lipgloss.Color {
	if c == Default {
		return lipgloss.Color("")
	}

	return lipgloss.Color(palette[c].hex)
}

// Nearest maps an arbitrary RGB hex color to the closest palette entry
// by Euclidean distance in Lab space.
func Nearest(hex string) Color {
	target, err := colorful.Hex(hex)
	if err != nil {
		return Default
	}

	best := Default
	bestDist := 1e9
	for c, e := range palette {
		if c == Default {
			continue
		}
		cand, err := colorful.Hex(e.hex)
		if err != nil {
			continue
		}
		d := target.DistanceLab(cand)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}

	return best
}
