package mdblock

import (
	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdlex"
)

const (
	maxQuoteIndent = 3
	maxListIndent  = 2
	maxHeadingLvl  = 6
)

// headingMatch reports whether toks (after container stripping) opens a
// heading, returning its level and the tokens after the required
// whitespace run.
func headingMatch(toks []mdlex.Token) (level int, rest []mdlex.Token, ok bool) {
	ws, r := leadingWS(toks)
	if ws > maxQuoteIndent {
		return 0, nil, false
	}
	n := 0
	for n < len(r) && r[n].Kind == mdlex.Hash {
		n++
	}
	if n == 0 || n > maxHeadingLvl {
		return 0, nil, false
	}
	if n >= len(r) || r[n].Kind != mdlex.Space {
		return 0, nil, false
	}
	_, r2 := leadingWS(r[n:])

	return n, r2, true
}

// quoteMatch reports whether toks opens a block quote, returning the
// tokens after the marker and one optional following space.
func quoteMatch(toks []mdlex.Token) (rest []mdlex.Token, ok bool) {
	ws, r := leadingWS(toks)
	if ws > maxQuoteIndent {
		return nil, false
	}
	if len(r) == 0 || r[0].Kind != mdlex.GreaterThan {
		return nil, false
	}
	r = r[1:]
	if len(r) > 0 && r[0].Kind == mdlex.Space {
		r = r[1:]
	}

	return r, true
}

// unorderedListMatch reports whether toks opens an unordered (or task)
// list item.
func unorderedListMatch(toks []mdlex.Token) (variant mdast.ListVariant, checked, hasCheckbox bool, rest []mdlex.Token, markerWidth int, ok bool) {
	ws, r := leadingWS(toks)
	if ws > maxListIndent {
		return 0, false, false, nil, 0, false
	}
	if len(r) == 0 {
		return 0, false, false, nil, 0, false
	}
	switch r[0].Kind {
	case mdlex.Dash, mdlex.Plus, mdlex.Asterisk:
	default:
		return 0, false, false, nil, 0, false
	}
	r = r[1:]
	spaceCols, r2, hasSpace := countSpaces(r)
	if !hasSpace {
		return 0, false, false, nil, 0, false
	}
	width := ws + 1 + spaceCols

	if cb, checkedOut, rest3, consumed, isTask := taskCheckbox(r2); isTask {
		_ = cb

		return mdast.Task, checkedOut, true, rest3, width + consumed, true
	}

	return mdast.Unordered, false, false, r2, width, true
}

// taskCheckbox matches "[ ] " / "[x] " / "[X] " at the start of toks.
func taskCheckbox(toks []mdlex.Token) (consumed []mdlex.Token, checked bool, rest []mdlex.Token, n int, ok bool) {
	if len(toks) < 4 {
		return nil, false, nil, 0, false
	}
	if toks[0].Kind != mdlex.BracketOpen {
		return nil, false, nil, 0, false
	}
	markChecked := false
	idx := 1
	switch toks[idx].Kind {
	case mdlex.Space:
		markChecked = false
	case mdlex.Word:
		s := string(toks[idx].Text)
		if s != "x" && s != "X" {
			return nil, false, nil, 0, false
		}
		markChecked = true
	default:
		return nil, false, nil, 0, false
	}
	idx++
	if idx >= len(toks) || toks[idx].Kind != mdlex.BracketClose {
		return nil, false, nil, 0, false
	}
	idx++
	spaceCols, rest2, hasSpace := countSpaces(toks[idx:])
	if !hasSpace {
		return nil, false, nil, 0, false
	}

	return nil, markChecked, rest2, 3 + spaceCols, true
}

// orderedListMatch reports whether toks opens an ordered list item.
func orderedListMatch(toks []mdlex.Token) (start int, rest []mdlex.Token, markerWidth int, ok bool) {
	ws, r := leadingWS(toks)
	if ws > maxListIndent {
		return 0, nil, 0, false
	}
	if len(r) == 0 || r[0].Kind != mdlex.Digit {
		return 0, nil, 0, false
	}
	digitTok := r[0]
	r = r[1:]
	if len(r) == 0 || r[0].Kind != mdlex.Dot {
		return 0, nil, 0, false
	}
	r = r[1:]
	spaceCols, r2, hasSpace := countSpaces(r)
	if !hasSpace {
		return 0, nil, 0, false
	}
	n := parseDigits(digitTok.Text)
	// Marker width is digits + period + trailing whitespace; this is
	// deliberately measured from the digit run's own length rather than
	// assuming a single digit, per the documented indent-handling fix.
	width := ws + len(digitTok.Text) + 1 + spaceCols

	return n, r2, width, true
}

func parseDigits(b []byte) int {
	n := 0
	for _, c := range b {
		n = n*10 + int(c-'0')
	}

	return n
}

// codeFenceMatch reports whether toks opens a fenced code block.
func codeFenceMatch(toks []mdlex.Token) (fenceChar byte, fenceLen int, info []mdlex.Token, ok bool) {
	ws, r := leadingWS(toks)
	if ws > maxQuoteIndent {
		return 0, 0, nil, false
	}
	if len(r) == 0 || r[0].Kind != mdlex.Directive {
		return 0, 0, nil, false
	}
	text := r[0].Text

	return text[0], len(text), r[1:], true
}

// alertMatch reports whether toks (the quote-marker-stripped first inner
// line of a freshly opened Quote) is exactly "[!TAG]" with nothing else
// of substance on the line.
func alertMatch(toks []mdlex.Token) (mdast.AlertSeverity, bool) {
	content := toks
	if n := len(content); n > 0 && content[n-1].Kind == mdlex.Break {
		content = content[:n-1]
	}
	if len(content) != 4 {
		return 0, false
	}
	if content[0].Kind != mdlex.BracketOpen || content[1].Kind != mdlex.Bang ||
		content[2].Kind != mdlex.Word || content[3].Kind != mdlex.BracketClose {
		return 0, false
	}

	return mdast.ParseAlertSeverity(string(content[2].Text))
}

// looksLikeNewStructuralBlock reports whether toks would open a heading,
// list item, quote, or code fence — used by lazy-continuation checks,
// which must not lazily swallow a line that is itself a new block.
func looksLikeNewStructuralBlock(toks []mdlex.Token) bool {
	if _, _, ok := headingMatch(toks); ok {
		return true
	}
	if _, ok := quoteMatch(toks); ok {
		return true
	}
	if _, _, _, _, _, ok := unorderedListMatch(toks); ok {
		return true
	}
	if _, _, _, ok := orderedListMatch(toks); ok {
		return true
	}
	if _, _, _, ok := codeFenceMatch(toks); ok {
		return true
	}

	return false
}
