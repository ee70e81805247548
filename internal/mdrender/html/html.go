// Package html renders a parsed document to HTML: block-by-block emission
// into the usual tag set, with every text run escaped. Grounded on the same
// teacher printer idiom as internal/mdrender/format, adapted from
// byte-buffer Markdown re-emission to tag emission.
package html

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdtoc"
	"github.com/inkmd/mdctl/internal/mdutil"
)

// Options configures a Render call.
type Options struct {
	// BodyOnly omits the wrapping <html><head> and embedded CSS.
	BodyOnly bool
	// Title is used in the <title> tag when BodyOnly is false.
	Title string
}

const embeddedCSS = `body{font-family:sans-serif;max-width:860px;margin:2rem auto;padding:0 1rem;line-height:1.5}
pre{background:#f5f5f5;padding:.75rem;overflow-x:auto}
code{background:#f0f0f0;padding:.1rem .3rem}
pre code{background:none;padding:0}
blockquote{border-left:3px solid #ccc;margin:0;padding:0 1rem;color:#555}
table{border-collapse:collapse}
td,th{border:1px solid #ccc;padding:.3rem .6rem}`

// Render renders doc as HTML to w.
func Render(w io.Writer, doc *mdast.Container, opts Options) error {
	p := &printer{w: w, seen: map[string]int{}}
	if !opts.BodyOnly {
		title := opts.Title
		if title == "" {
			title = "Document"
		}
		p.writeString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
		p.writeString(mdutil.EscapeHTML(title))
		p.writeString("</title>\n<style>\n")
		p.writeString(embeddedCSS)
		p.writeString("\n</style>\n</head>\n<body>\n")
		if toc := mdtoc.Build(doc); len(toc.Children) > 0 {
			p.writeNav(toc)
		}
	}

	for _, child := range doc.Children() {
		p.printBlock(child)
	}

	if !opts.BodyOnly {
		p.writeString("</body>\n</html>\n")
	}

	return p.err
}

// RenderString renders doc and returns it as a string.
func RenderString(doc *mdast.Container, opts Options) (string, error) {
	var buf bytes.Buffer
	err := Render(&buf, doc, opts)

	return buf.String(), err
}

type printer struct {
	w    io.Writer
	err  error
	seen map[string]int
}

func (p *printer) writeString(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) writeNav(root *mdtoc.Node) {
	p.writeString("<nav>\n<ul>\n")
	for _, child := range root.Children {
		p.writeNavNode(child)
	}
	p.writeString("</ul>\n</nav>\n")
}

func (p *printer) writeNavNode(n *mdtoc.Node) {
	p.writeString("<li><a href=\"#")
	p.writeString(n.Entry.Anchor)
	p.writeString("\">")
	p.writeString(mdutil.EscapeHTML(n.Entry.Text))
	p.writeString("</a>")
	if len(n.Children) > 0 {
		p.writeString("<ul>\n")
		for _, child := range n.Children {
			p.writeNavNode(child)
		}
		p.writeString("</ul>\n")
	}
	p.writeString("</li>\n")
}

func (p *printer) printBlock(b mdast.Block) {
	switch v := b.(type) {
	case *mdast.Container:
		p.printContainer(v)
	case *mdast.Leaf:
		p.printLeaf(v)
	}
}

func (p *printer) printContainer(c *mdast.Container) {
	switch c.Kind() {
	case mdast.KQuote:
		p.writeString("<blockquote>\n")
		for _, child := range c.Children() {
			p.printBlock(child)
		}
		p.writeString("</blockquote>\n")
	case mdast.KList:
		p.printList(c)
	case mdast.KTable:
		p.printTable(c)
	}
}

func (p *printer) printList(c *mdast.Container) {
	tag := "ul"
	if c.Ordered() {
		tag = "ol"
	}
	p.writeString("<" + tag)
	if c.Ordered() && c.Start() != 1 {
		p.writeString(fmt.Sprintf(` start="%d"`, c.Start()))
	}
	p.writeString(">\n")
	for _, child := range c.Children() {
		item, ok := child.(*mdast.Container)
		if !ok {
			continue
		}
		p.writeString("<li>")
		if c.Variant() == mdast.Task {
			checked := ""
			if item.Checked() {
				checked = " checked"
			}
			p.writeString(fmt.Sprintf(`<input type="checkbox" disabled%s> `, checked))
		}
		for _, grandchild := range item.Children() {
			p.printBlock(grandchild)
		}
		p.writeString("</li>\n")
	}
	p.writeString("</" + tag + ">\n")
}

func (p *printer) printTable(c *mdast.Container) {
	p.writeString("<table>\n<thead>\n<tr>")
	for i, cell := range c.Header() {
		p.writeString(thTag(c.Alignments(), i))
		p.writeString(inlineHTML(cell))
		p.writeString("</th>")
	}
	p.writeString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range c.Rows() {
		p.writeString("<tr>")
		for i, cell := range row {
			p.writeString(tdTag(c.Alignments(), i))
			p.writeString(inlineHTML(cell))
			p.writeString("</td>")
		}
		p.writeString("</tr>\n")
	}
	p.writeString("</tbody>\n</table>\n")
}

func thTag(aligns []mdast.Alignment, i int) string {
	return alignedTag("th", aligns, i)
}

func tdTag(aligns []mdast.Alignment, i int) string {
	return alignedTag("td", aligns, i)
}

func alignedTag(tag string, aligns []mdast.Alignment, i int) string {
	if i >= len(aligns) {
		return "<" + tag + ">"
	}
	switch aligns[i] {
	case mdast.AlignLeft:
		return `<` + tag + ` style="text-align:left">`
	case mdast.AlignRight:
		return `<` + tag + ` style="text-align:right">`
	case mdast.AlignCenter:
		return `<` + tag + ` style="text-align:center">`
	default:
		return "<" + tag + ">"
	}
}

func (p *printer) printLeaf(l *mdast.Leaf) {
	switch l.Kind() {
	case mdast.KBreak:
		return
	case mdast.KHeading:
		tag := fmt.Sprintf("h%d", l.Level())
		anchor := mdutil.HeadingAnchor(l.Text(), p.seen)
		p.writeString(fmt.Sprintf(`<%s id="%s">`, tag, anchor))
		p.writeString(inlineHTML(l.Inlines()))
		p.writeString("</" + tag + ">\n")
	case mdast.KCode:
		p.writeString("<pre><code")
		if lang := l.Info(); lang != "" {
			p.writeString(` class="language-`)
			p.writeString(mdutil.EscapeHTML(lang))
			p.writeString(`"`)
		}
		p.writeString(">")
		p.writeString(mdutil.EscapeHTML(string(l.Decoded())))
		p.writeString("</code></pre>\n")
	case mdast.KParagraph:
		p.writeString("<p>")
		p.writeString(inlineHTML(l.Inlines()))
		p.writeString("</p>\n")
	case mdast.KAlert:
		p.writeString(fmt.Sprintf(`<blockquote class="alert alert-%s">`, strings.ToLower(l.Severity().String())))
		p.writeString("<p>")
		p.writeString(inlineHTML(l.Inlines()))
		p.writeString("</p></blockquote>\n")
	}
}

func inlineHTML(inlines []mdast.Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		switch v := in.(type) {
		case mdast.Text:
			b.WriteString(wrapStyle(v))
		case mdast.Codespan:
			b.WriteString("<code>")
			b.WriteString(mdutil.EscapeHTML(v.Text))
			b.WriteString("</code>")
		case mdast.Autolink:
			uri := mdutil.NormalizeURI(v.URL)
			b.WriteString(`<a href="`)
			b.WriteString(mdutil.EscapeHTML(uri))
			b.WriteString(`">`)
			b.WriteString(mdutil.EscapeHTML(v.URL))
			b.WriteString("</a>")
		case mdast.Link:
			uri := mdutil.NormalizeURI(v.URL)
			b.WriteString(`<a href="`)
			b.WriteString(mdutil.EscapeHTML(uri))
			b.WriteString(`">`)
			b.WriteString(inlineTextRuns(v.Text))
			b.WriteString("</a>")
		case mdast.Image:
			uri := mdutil.NormalizeURI(v.Src)
			b.WriteString(`<img src="`)
			b.WriteString(mdutil.EscapeHTML(uri))
			b.WriteString(`" alt="`)
			b.WriteString(mdutil.EscapeHTML(inlineTextRuns(v.Alt)))
			b.WriteString(`">`)
		case mdast.LineBreak:
			b.WriteString("<br>\n")
		}
	}

	return b.String()
}

func inlineTextRuns(texts []mdast.Text) string {
	var b strings.Builder
	for _, t := range texts {
		b.WriteString(wrapStyle(t))
	}

	return b.String()
}

func wrapStyle(t mdast.Text) string {
	s := mdutil.EscapeHTML(t.Text)
	if t.Style.Strike {
		s = "<s>" + s + "</s>"
	}
	if t.Style.Italic {
		s = "<em>" + s + "</em>"
	}
	if t.Style.Bold {
		s = "<strong>" + s + "</strong>"
	}
	if t.Style.Underline {
		s = "<u>" + s + "</u>"
	}

	return s
}
