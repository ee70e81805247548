// Package mdutil holds small stateless helpers shared by every renderer in
// internal/mdrender: display-width-aware text wrapping, HTML escaping, URI
// normalization, and heading-anchor slugging.
package mdutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ClusterWidth returns the terminal display width of a single grapheme
// cluster (a user-perceived character, which may be several code points —
// an emoji with a variation selector, a combining accent).
func ClusterWidth(cluster string) int {
	width := 0
	for _, r := range cluster {
		width += runewidth.RuneWidth(r)
	}

	return width
}

// StringWidth returns the total display width of s, measured one grapheme
// cluster at a time so combining sequences count once rather than per rune.
func StringWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += ClusterWidth(g.Str())
	}

	return width
}

// WrapText wraps s to fit within width display columns, breaking only at
// grapheme-cluster boundaries on space runs, and returns the wrapped lines.
// A single word wider than width is placed alone on its own line rather
// than split mid-cluster.
func WrapText(s string, width int) []string {
	return wrap(s, width, "")
}

// WrapTextWithTrailer behaves like WrapText, but every line after the
// first is prefixed with trailer (a leader column already rendered for the
// first line by the caller) when measuring width, and the prefix text is
// included in the returned lines.
func WrapTextWithTrailer(s string, width int, trailer string) []string {
	return wrap(s, width, trailer)
}

func wrap(s string, width int, trailer string) []string {
	if width <= 0 {
		width = 1
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0
	trailerWidth := StringWidth(trailer)
	first := true

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
		first = false
	}

	words := strings.Fields(s)
	for _, word := range words {
		wWidth := StringWidth(word)
		avail := width
		if !first {
			avail -= trailerWidth
			if avail <= 0 {
				avail = 1
			}
		}

		switch {
		case curWidth == 0:
			if !first {
				cur.WriteString(trailer)
			}
			cur.WriteString(word)
			curWidth = wWidth
		case curWidth+1+wWidth <= avail:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + wWidth
		default:
			flush()
			cur.WriteString(trailer)
			cur.WriteString(word)
			curWidth = wWidth
		}
	}
	if cur.Len() > 0 || len(lines) == 0 {
		flush()
	}

	return lines
}
