// Package format re-emits a parsed document as canonical Markdown: ATX
// headings, "-" bullets, fenced code with its original fence character,
// one blank line between blocks. Grounded on the teacher's
// internal/markdown/printer.go family, generalized from that printer's
// requirements-doc node set to this spec's Container/Leaf AST.
package format

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/inkmd/mdctl/internal/mdast"
)

// Render renders doc as canonical Markdown to w.
func Render(w io.Writer, doc *mdast.Container) error {
	p := &printer{w: w}
	p.printContainer(doc, 0)

	return p.err
}

// RenderString renders doc and returns it as a string, for tests and
// callers that don't have a ready io.Writer.
func RenderString(doc *mdast.Container) (string, error) {
	var buf bytes.Buffer
	err := Render(&buf, doc)

	return buf.String(), err
}

type printer struct {
	w          io.Writer
	err        error
	needsBlank bool
}

func (p *printer) writeString(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) blankLine() {
	if p.needsBlank {
		p.writeString("\n")
	}
	p.needsBlank = true
}

func (p *printer) printContainer(c *mdast.Container, indent int) {
	switch c.Kind() {
	case mdast.KDocument:
		p.needsBlank = false
		for _, child := range c.Children() {
			p.printBlock(child, indent)
		}
	case mdast.KQuote:
		p.blankLine()
		p.printQuoteBody(c, indent)
	case mdast.KList:
		p.blankLine()
		p.printList(c, indent)
	case mdast.KTable:
		p.blankLine()
		p.printTable(c)
	}
}

func (p *printer) printBlock(b mdast.Block, indent int) {
	switch v := b.(type) {
	case *mdast.Container:
		p.printContainer(v, indent)
	case *mdast.Leaf:
		p.printLeaf(v, indent)
	}
}

func (p *printer) printQuoteBody(c *mdast.Container, indent int) {
	var inner bytes.Buffer
	ip := &printer{w: &inner}
	for _, child := range c.Children() {
		ip.printBlock(child, 0)
	}
	for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
		p.writeString(indentStr(indent))
		p.writeString("> ")
		p.writeString(line)
		p.writeString("\n")
	}
}

func (p *printer) printList(c *mdast.Container, indent int) {
	n := c.Start()
	for i, child := range c.Children() {
		item, ok := child.(*mdast.Container)
		if !ok {
			continue
		}
		if i > 0 && c.Spacing() == mdast.Loose {
			p.writeString("\n")
		}
		p.printListItem(item, c, n+i, indent)
	}
}

func (p *printer) printListItem(item *mdast.Container, list *mdast.Container, num int, indent int) {
	marker := "- "
	if list.Ordered() {
		marker = strconv.Itoa(num) + ". "
	}
	if list.Variant() == mdast.Task {
		box := "[ ] "
		if item.Checked() {
			box = "[x] "
		}
		marker += box
	}

	var inner bytes.Buffer
	ip := &printer{w: &inner}
	ip.needsBlank = false
	for _, child := range item.Children() {
		ip.printBlock(child, 0)
	}
	lines := strings.Split(strings.TrimRight(inner.String(), "\n"), "\n")

	p.writeString(indentStr(indent))
	p.writeString(marker)
	cont := strings.Repeat(" ", len(marker))
	for i, line := range lines {
		if i > 0 {
			p.writeString(indentStr(indent))
			p.writeString(cont)
		}
		p.writeString(line)
		p.writeString("\n")
	}
}

func (p *printer) printTable(c *mdast.Container) {
	p.printRow(c.Header())
	p.writeString("|")
	for _, a := range c.Alignments() {
		switch a {
		case mdast.AlignLeft:
			p.writeString(" :--- |")
		case mdast.AlignRight:
			p.writeString(" ---: |")
		case mdast.AlignCenter:
			p.writeString(" :---: |")
		default:
			p.writeString(" --- |")
		}
	}
	p.writeString("\n")
	for _, row := range c.Rows() {
		p.printRow(row)
	}
}

func (p *printer) printRow(row mdast.TableRow) {
	p.writeString("|")
	for _, cell := range row {
		p.writeString(" ")
		p.writeString(inlineText(cell))
		p.writeString(" |")
	}
	p.writeString("\n")
}

func (p *printer) printLeaf(l *mdast.Leaf, indent int) {
	switch l.Kind() {
	case mdast.KBreak:
		return
	case mdast.KHeading:
		p.blankLine()
		p.writeString(indentStr(indent))
		p.writeString(strings.Repeat("#", l.Level()))
		p.writeString(" ")
		p.writeString(l.Text())
		p.writeString("\n")
	case mdast.KCode:
		p.blankLine()
		fence := strings.Repeat(string(l.FenceChar()), max(l.FenceLen(), 3))
		p.writeString(indentStr(indent))
		p.writeString(fence)
		p.writeString(l.Info())
		p.writeString("\n")
		body := string(l.Decoded())
		for _, line := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
			p.writeString(indentStr(indent))
			p.writeString(line)
			p.writeString("\n")
		}
		p.writeString(indentStr(indent))
		p.writeString(fence)
		p.writeString("\n")
	case mdast.KParagraph:
		p.blankLine()
		p.writeString(indentStr(indent))
		p.writeString(inlineText(l.Inlines()))
		p.writeString("\n")
	case mdast.KAlert:
		p.blankLine()
		p.writeString(indentStr(indent))
		p.writeString("> [!")
		p.writeString(l.Severity().String())
		p.writeString("]\n")
		p.writeString(indentStr(indent))
		p.writeString("> ")
		p.writeString(inlineText(l.Inlines()))
		p.writeString("\n")
	}
}

func inlineText(inlines []mdast.Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		switch v := in.(type) {
		case mdast.Text:
			b.WriteString(styledText(v))
		case mdast.Codespan:
			b.WriteString("`")
			b.WriteString(v.Text)
			b.WriteString("`")
		case mdast.Autolink:
			b.WriteString("<")
			b.WriteString(v.URL)
			b.WriteString(">")
		case mdast.Link:
			b.WriteString("[")
			b.WriteString(inlineTextRuns(v.Text))
			b.WriteString("](")
			b.WriteString(v.URL)
			b.WriteString(")")
		case mdast.Image:
			b.WriteString("![")
			b.WriteString(inlineTextRuns(v.Alt))
			b.WriteString("](")
			b.WriteString(v.Src)
			b.WriteString(")")
		case mdast.LineBreak:
			b.WriteString("\n")
		}
	}

	return b.String()
}

func inlineTextRuns(texts []mdast.Text) string {
	var b strings.Builder
	for _, t := range texts {
		b.WriteString(styledText(t))
	}

	return b.String()
}

func styledText(t mdast.Text) string {
	s := t.Text
	if t.Style.Bold && t.Style.Italic {
		return "***" + s + "***"
	}
	if t.Style.Bold {
		return "**" + s + "**"
	}
	if t.Style.Italic {
		return "_" + s + "_"
	}
	if t.Style.Strike {
		return "~" + s + "~"
	}

	return s
}

func indentStr(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
