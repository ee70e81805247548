package mdast

import "github.com/inkmd/mdctl/internal/mdtheme"

// TextStyle is a set of independent display attributes applied to a run of
// inline text. It is a plain value type: renderers compare two TextStyles
// flag-by-flag to minimize the escape codes they emit between runs.
type TextStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Blink     bool
	Reverse   bool
	Hide      bool
	FG        mdtheme.Color
	BG        mdtheme.Color
}

// Union returns the style produced by overlaying override on top of s:
// boolean flags OR together, and a non-Default color in override wins.
func (s TextStyle) Union(override TextStyle) TextStyle {
	out := TextStyle{
		Bold:      s.Bold || override.Bold,
		Italic:    s.Italic || override.Italic,
		Underline: s.Underline || override.Underline,
		Strike:    s.Strike || override.Strike,
		Blink:     s.Blink || override.Blink,
		Reverse:   s.Reverse || override.Reverse,
		Hide:      s.Hide || override.Hide,
		FG:        s.FG,
		BG:        s.BG,
	}
	if override.FG != mdtheme.Default {
		out.FG = override.FG
	}
	if override.BG != mdtheme.Default {
		out.BG = override.BG
	}

	return out
}

// Equal reports whether two styles have identical flags and colors.
func (s TextStyle) Equal(o TextStyle) bool {
	return s == o
}

// WithBold toggles the Bold flag, returning a new value (emphasis
// application in the inline parser never mutates a shared style).
func (s TextStyle) WithBold(v bool) TextStyle { s.Bold = v; return s }

// WithItalic toggles the Italic flag.
func (s TextStyle) WithItalic(v bool) TextStyle { s.Italic = v; return s }

// WithStrike toggles the Strike flag.
func (s TextStyle) WithStrike(v bool) TextStyle { s.Strike = v; return s }
