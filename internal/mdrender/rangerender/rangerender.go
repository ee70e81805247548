// Package rangerender runs the same AST traversal as the other renderers
// but produces no text output: it records (line, start_col, end_col,
// TextStyle) spans for an external consumer (e.g. a scripting integration
// or editor host) to paint over its own buffer. Columns are counted in
// code points, matching internal/mdlex.Pos, so spans are directly
// comparable to the token positions the lexer already recorded.
package rangerender

import (
	"unicode/utf8"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdtheme"
)

// Range is one styled span of source text.
type Range struct {
	Line     int
	StartCol int
	EndCol   int
	Style    mdast.TextStyle
}

var codespanStyle = mdast.TextStyle{FG: mdtheme.Magenta, BG: mdtheme.BrightBlack}
var linkStyle = mdast.TextStyle{FG: mdtheme.Cyan, Underline: true}

// Build walks doc and returns every styled span in document order.
func Build(doc *mdast.Container) []Range {
	c := &collector{}
	_ = mdast.Walk(c, doc)

	return c.ranges
}

type collector struct {
	mdast.BaseVisitor
	ranges []Range
}

func (c *collector) VisitHeading(l *mdast.Leaf) error {
	c.collectInlines(l.Inlines(), mdast.TextStyle{FG: mdtheme.Magenta, Bold: true})

	return nil
}

func (c *collector) VisitParagraph(l *mdast.Leaf) error {
	c.collectInlines(l.Inlines(), mdast.TextStyle{})

	return nil
}

func (c *collector) VisitAlert(l *mdast.Leaf) error {
	c.collectInlines(l.Inlines(), mdast.TextStyle{})

	return nil
}

// VisitTable covers header and body cells directly: table rows are not
// Block children (Container stores them as value-type fields), so Walk's
// child recursion never reaches them.
func (c *collector) VisitTable(t *mdast.Container) error {
	for _, cell := range t.Header() {
		c.collectInlines(cell, mdast.TextStyle{Bold: true})
	}
	for _, row := range t.Rows() {
		for _, cell := range row {
			c.collectInlines(cell, mdast.TextStyle{})
		}
	}

	return nil
}

func (c *collector) collectInlines(inlines []mdast.Inline, base mdast.TextStyle) {
	for _, in := range inlines {
		c.collectInline(in, base)
	}
}

func (c *collector) collectInline(in mdast.Inline, base mdast.TextStyle) {
	switch v := in.(type) {
	case mdast.Text:
		style := v.Style
		if style == (mdast.TextStyle{}) {
			style = base
		}
		c.appendSpan(v.Pos.Row, v.Pos.Col, v.Text, style)
	case mdast.Codespan:
		c.appendSpan(v.Pos.Row, v.Pos.Col, v.Text, codespanStyle)
	case mdast.Autolink:
		c.appendSpan(v.Pos.Row, v.Pos.Col, v.URL, linkStyle)
	case mdast.Link:
		for _, t := range v.Text {
			c.appendSpan(t.Pos.Row, t.Pos.Col, t.Text, linkStyle)
		}
	case mdast.Image:
		for _, t := range v.Alt {
			c.appendSpan(t.Pos.Row, t.Pos.Col, t.Text, linkStyle)
		}
	}
}

func (c *collector) appendSpan(line, startCol int, text string, style mdast.TextStyle) {
	if text == "" {
		return
	}
	end := startCol + utf8.RuneCountInString(text)
	c.ranges = append(c.ranges, Range{Line: line, StartCol: startCol, EndCol: end, Style: style})
}
