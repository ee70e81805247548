// Package console renders a parsed document for a terminal: ANSI styling
// minimized to only the SGR codes that change between runs, a leader stack
// for quote/list/code-block indentation, OSC-8 hyperlinks, and Kitty
// graphics image emission. Grounded on the same teacher printer idiom as
// internal/mdrender/format and internal/mdrender/html, generalized from
// byte/tag emission to escape-sequence emission.
package console

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdhighlight"
	"github.com/inkmd/mdctl/internal/mdimage"
	"github.com/inkmd/mdctl/internal/mdtheme"
	"github.com/inkmd/mdctl/internal/mdtoc"
	"github.com/inkmd/mdctl/internal/mdutil"
)

// Options configures a Render call.
type Options struct {
	// Width is the terminal width in columns. Defaults to 80.
	Width int
	// Indent is a left margin applied to every line. Defaults to 0.
	Indent int
	// MaxImageCols bounds how wide a decoded image may render. Defaults to 40.
	MaxImageCols int
	// CellPxWidth and CellPxHeight are the terminal's font cell size in
	// pixels, used to convert a decoded image's pixel size to a column/row
	// count for the Kitty graphics placeholder grid.
	CellPxWidth  int
	CellPxHeight int
	// Theme supplies the color roles and box-drawing glyphs. Defaults to
	// mdtheme.Default().
	Theme *mdtheme.Theme
	// Highlighter colors fenced code block bodies. Nil disables highlighting.
	Highlighter mdhighlight.Highlighter
	// ImageDecoder turns raw file bytes into a raster ready for Kitty
	// graphics chunking. Nil disables image rendering (falls back to text).
	ImageDecoder mdimage.Decoder
	// ReadImage loads the raw bytes behind an Image node's Src. The renderer
	// never performs I/O itself; Src may be a relative path, an absolute
	// path, or a URL, and resolving it is the caller's concern. Nil disables
	// image rendering (falls back to text).
	ReadImage func(src string) ([]byte, bool)
	// Plain disables all ANSI styling, OSC-8 hyperlinks, and Kitty graphics
	// emission, for non-tty output (piped stdout, redirected to a file).
	Plain bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 80
	}
	if o.MaxImageCols <= 0 {
		o.MaxImageCols = 40
	}
	if o.CellPxWidth <= 0 {
		o.CellPxWidth = 8
	}
	if o.CellPxHeight <= 0 {
		o.CellPxHeight = 16
	}
	if o.Theme == nil {
		o.Theme = mdtheme.Default()
	}

	return o
}

// Render renders doc to w as an ANSI terminal stream.
func Render(w io.Writer, doc *mdast.Container, opts Options) error {
	r := &renderer{w: w, opts: opts.withDefaults(), docTOC: mdtoc.Build(doc)}
	r.printContainer(doc)
	r.endLine()
	r.resetStyle()

	return r.err
}

// RenderString renders doc and returns it as a string.
func RenderString(doc *mdast.Container, opts Options) (string, error) {
	var buf bytes.Buffer
	err := Render(&buf, doc, opts)

	return buf.String(), err
}

type leader struct {
	text  string
	style mdast.TextStyle
}

type renderer struct {
	w       io.Writer
	opts    Options
	err     error
	column  int
	leaders []leader
	docTOC  *mdtoc.Node

	// atLineStart is true immediately after a marker or leader prefix was
	// written: the prefix already supplies the one space that should
	// separate it from the row's first word, so writeWord must not add
	// another one on top of it.
	atLineStart bool

	curStyle      mdast.TextStyle
	styleOverride *mdast.TextStyle
}

func (r *renderer) writeRaw(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

// endLine finishes the current line without opening a new one, leaving
// column at 0 and no trailing leaders written.
func (r *renderer) endLine() {
	if r.column > 0 {
		r.writeRaw("\n")
		r.column = 0
	}
}

// blankLine moves to the next block, leaving one fully blank (leader-only)
// separator row in between: the first newline terminates whatever is on
// the current row and opens a prefix-only row, the second terminates that
// row and opens the row the next block actually writes into. Inside a
// quote the separator row still carries the quote's leader, matching how a
// real terminal Markdown pager keeps the rule visible across a paragraph
// break.
func (r *renderer) blankLine() {
	r.newline()
	r.newline()
}

func (r *renderer) pushLeader(l leader) { r.leaders = append(r.leaders, l) }

func (r *renderer) popLeader() { r.leaders = r.leaders[:len(r.leaders)-1] }

func (r *renderer) leaderWidth() int {
	w := 0
	for _, l := range r.leaders {
		w += mdutil.StringWidth(l.text)
	}

	return w
}

func (r *renderer) contentWidth() int {
	w := r.opts.Width - r.opts.Indent - r.leaderWidth()
	if w < 1 {
		w = 1
	}

	return w
}

func (r *renderer) newline() {
	r.writeRaw("\n")
	r.column = 0
	if r.opts.Indent > 0 {
		r.writeRaw(strings.Repeat(" ", r.opts.Indent))
	}
	r.writeLeaders()
}

func (r *renderer) writeLeaders() {
	for _, l := range r.leaders {
		r.setStyle(l.style)
		r.writeRaw(l.text)
		r.column += mdutil.StringWidth(l.text)
	}
	r.atLineStart = true
}

// effectiveStyle folds a sticky style_override (pushed by headings and
// alerts) onto a requested style: override flags OR in, override colors
// win when set.
func (r *renderer) effectiveStyle(s mdast.TextStyle) mdast.TextStyle {
	if r.styleOverride == nil {
		return s
	}
	o := *r.styleOverride
	eff := s
	eff.Bold = eff.Bold || o.Bold
	eff.Italic = eff.Italic || o.Italic
	eff.Underline = eff.Underline || o.Underline
	eff.Strike = eff.Strike || o.Strike
	eff.Blink = eff.Blink || o.Blink
	eff.Reverse = eff.Reverse || o.Reverse
	eff.Hide = eff.Hide || o.Hide
	if o.FG != mdtheme.Default {
		eff.FG = o.FG
	}
	if o.BG != mdtheme.Default {
		eff.BG = o.BG
	}

	return eff
}

// setStyle diffs the requested style against cur_style flag-by-flag and
// emits only the SGR codes that actually changed.
func (r *renderer) setStyle(s mdast.TextStyle) {
	if r.opts.Plain {
		return
	}
	eff := r.effectiveStyle(s)
	if eff == r.curStyle {
		return
	}

	var params []string
	toggle := func(was, is bool, on, off string) {
		if was != is {
			if is {
				params = append(params, on)
			} else {
				params = append(params, off)
			}
		}
	}
	toggle(r.curStyle.Bold, eff.Bold, "1", "22")
	toggle(r.curStyle.Italic, eff.Italic, "3", "23")
	toggle(r.curStyle.Underline, eff.Underline, "4", "24")
	toggle(r.curStyle.Blink, eff.Blink, "5", "25")
	toggle(r.curStyle.Reverse, eff.Reverse, "7", "27")
	toggle(r.curStyle.Hide, eff.Hide, "8", "28")
	toggle(r.curStyle.Strike, eff.Strike, "9", "29")
	if eff.FG != r.curStyle.FG {
		params = append(params, strconv.Itoa(mdtheme.SGRForeground(eff.FG)))
	}
	if eff.BG != r.curStyle.BG {
		params = append(params, strconv.Itoa(mdtheme.SGRBackground(eff.BG)))
	}

	if len(params) > 0 {
		r.writeRaw("\x1b[" + strings.Join(params, ";") + "m")
	}
	r.curStyle = eff
}

func (r *renderer) resetStyle() {
	if r.opts.Plain {
		return
	}
	r.writeRaw("\x1b[0m")
	r.curStyle = mdast.TextStyle{}
}

// writeWord places one already-measured word, wrapping to a fresh line
// first if it would overflow the current content width.
func (r *renderer) writeWord(word string, style mdast.TextStyle) {
	width := mdutil.StringWidth(word)
	cw := r.contentWidth()
	if r.column > 0 && !r.atLineStart {
		if cw > 0 && r.column+1+width > cw {
			r.newline()
		} else {
			r.writeRaw(" ")
			r.column++
		}
	}
	r.setStyle(style)
	r.writeRaw(word)
	r.column += width
	r.atLineStart = false
}

func (r *renderer) wrapText(text string, style mdast.TextStyle) {
	for _, word := range strings.Fields(text) {
		r.writeWord(word, style)
	}
}

// writeHyperlink places an OSC-8 hyperlink as a single atomic unit: a link
// label is not reflowed mid-span, only wrapped as a whole to a new line.
func (r *renderer) writeHyperlink(url, text string, style mdast.TextStyle) {
	width := mdutil.StringWidth(text)
	cw := r.contentWidth()
	if r.column > 0 && !r.atLineStart {
		if cw > 0 && r.column+1+width > cw {
			r.newline()
		} else {
			r.writeRaw(" ")
			r.column++
		}
	}
	r.setStyle(style)
	if r.opts.Plain {
		r.writeRaw(text)
	} else {
		r.writeRaw("\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\")
	}
	r.column += width
	r.atLineStart = false
}

func (r *renderer) printBlock(b mdast.Block) {
	switch v := b.(type) {
	case *mdast.Container:
		r.printContainer(v)
	case *mdast.Leaf:
		r.printLeaf(v)
	}
}

func (r *renderer) printContainer(c *mdast.Container) {
	switch c.Kind() {
	case mdast.KDocument:
		printed := 0
		for _, child := range c.Children() {
			if l, ok := child.(*mdast.Leaf); ok && l.Kind() == mdast.KBreak {
				continue
			}
			if printed > 0 {
				r.blankLine()
			}
			r.printBlock(child)
			printed++
		}
	case mdast.KQuote:
		r.pushLeader(leader{text: "┃ ", style: mdast.TextStyle{FG: r.opts.Theme.Quote}})
		if r.column == 0 {
			r.writeLeaders()
		}
		printed := 0
		for _, child := range c.Children() {
			if l, ok := child.(*mdast.Leaf); ok && l.Kind() == mdast.KBreak {
				continue
			}
			if printed > 0 {
				r.blankLine()
			}
			r.printBlock(child)
			printed++
		}
		r.popLeader()
	case mdast.KList:
		r.printList(c)
	case mdast.KTable:
		r.printTable(c)
	}
}

func (r *renderer) printList(c *mdast.Container) {
	items := c.Children()
	digits := len(strconv.Itoa(c.Start() + len(items) - 1))
	for i, child := range items {
		item, ok := child.(*mdast.Container)
		if !ok {
			continue
		}
		if i > 0 {
			if c.Spacing() == mdast.Loose {
				r.blankLine()
			} else {
				r.newline()
			}
		}
		r.printListItem(item, c, c.Start()+i, digits)
	}
}

// printListItem writes the marker with its own trailing space: the leader
// pushed for continuation lines is exactly as wide as the marker so wrapped
// text lines up under the first word, and atLineStart tells writeWord not to
// add a second space of its own right after the marker.
func (r *renderer) printListItem(item, list *mdast.Container, num, digits int) {
	marker := "‣ "
	style := mdast.TextStyle{}
	switch {
	case list.Variant() == mdast.Task:
		if item.Checked() {
			marker, style = "☑ ", mdast.TextStyle{FG: r.opts.Theme.Success}
		} else {
			marker, style = "☐ ", mdast.TextStyle{FG: r.opts.Theme.Error}
		}
	case list.Ordered():
		marker = fmt.Sprintf("%0*d. ", digits, num)
	}

	r.setStyle(style)
	r.writeRaw(marker)
	r.column += mdutil.StringWidth(marker)
	r.atLineStart = true

	r.pushLeader(leader{text: strings.Repeat(" ", mdutil.StringWidth(marker))})
	for i, child := range item.Children() {
		if i > 0 {
			r.newline()
		}
		r.printBlock(child)
	}
	r.popLeader()
}

func (r *renderer) printTable(c *mdast.Container) {
	ncol := c.NumCols()
	if ncol == 0 {
		return
	}
	width := r.contentWidth()
	colW := (width - 2 - (ncol + 1)) / ncol
	if colW < 1 {
		colW = 1
	}
	box := r.opts.Theme.Box
	border := mdast.TextStyle{FG: r.opts.Theme.Border}

	rule := func(left, mid, right rune) {
		r.setStyle(border)
		r.writeRaw(string(left))
		for i := 0; i < ncol; i++ {
			r.writeRaw(strings.Repeat(string(box.Horizontal), colW+2))
			if i < ncol-1 {
				r.writeRaw(string(mid))
			}
		}
		r.writeRaw(string(right))
		r.newline()
	}

	row := func(cells mdast.TableRow, bold bool) {
		lines := make([][]string, ncol)
		maxLines := 1
		for i := 0; i < ncol; i++ {
			var text string
			if i < len(cells) {
				text = plainCellText(cells[i])
			}
			ls := mdutil.WrapText(text, colW)
			if len(ls) == 0 {
				ls = []string{""}
			}
			lines[i] = ls
			if len(ls) > maxLines {
				maxLines = len(ls)
			}
		}
		cellStyle := mdast.TextStyle{Bold: bold}
		for ln := 0; ln < maxLines; ln++ {
			r.setStyle(border)
			r.writeRaw(string(box.Vertical))
			for i := 0; i < ncol; i++ {
				var cellText string
				if ln < len(lines[i]) {
					cellText = lines[i][ln]
				}
				pad := colW - mdutil.StringWidth(cellText)
				if pad < 0 {
					pad = 0
				}
				r.writeRaw(" ")
				r.setStyle(cellStyle)
				r.writeRaw(cellText)
				r.writeRaw(strings.Repeat(" ", pad))
				r.writeRaw(" ")
				r.setStyle(border)
				r.writeRaw(string(box.Vertical))
			}
			r.newline()
		}
	}

	rule(box.TopLeft, box.TeeDown, box.TopRight)
	row(c.Header(), true)
	rule(box.TeeRight, box.Cross, box.TeeLeft)
	for i, tr := range c.Rows() {
		if i > 0 {
			rule(box.TeeRight, box.Cross, box.TeeLeft)
		}
		row(tr, false)
	}
	rule(box.BottomLeft, box.TeeUp, box.BottomRight)
}

func (r *renderer) printLeaf(l *mdast.Leaf) {
	switch l.Kind() {
	case mdast.KBreak:
		return
	case mdast.KHeading:
		r.printHeading(l)
	case mdast.KCode:
		r.printCode(l)
	case mdast.KParagraph:
		for _, in := range l.Inlines() {
			r.printInline(in)
		}
	case mdast.KAlert:
		r.printAlert(l)
	}
}

func (r *renderer) printHeading(l *mdast.Leaf) {
	style := mdast.TextStyle{FG: r.opts.Theme.Heading, Bold: true}
	switch l.Level() {
	case 1:
		r.printCenteredHeading(l, '═', style)
		return
	case 2:
		r.printCenteredHeading(l, '─', style)
		return
	case 3:
		style.Italic = true
		style.Underline = true
	default:
		style.Underline = true
	}

	r.styleOverride = &style
	for _, in := range l.Inlines() {
		r.printInline(in)
	}
	r.styleOverride = nil
	r.endLine()
}

func (r *renderer) printCenteredHeading(l *mdast.Leaf, pad rune, style mdast.TextStyle) {
	width := r.contentWidth()
	textWidth := mdutil.StringWidth(plainInlineText(l.Inlines()))
	total := width - textWidth - 2
	if total < 0 {
		total = 0
	}
	left, right := total/2, total-total/2

	r.setStyle(style)
	r.writeRaw(strings.Repeat(string(pad), left))
	r.column += left

	r.styleOverride = &style
	for _, in := range l.Inlines() {
		r.printInline(in)
	}
	r.styleOverride = nil

	r.setStyle(style)
	r.writeRaw(" ")
	r.writeRaw(strings.Repeat(string(pad), right))
	r.column += right + 1
	r.endLine()
}

func (r *renderer) printCode(l *mdast.Leaf) {
	switch l.Directive() {
	case "toc", "toctree", "table-of-contents":
		r.printDirectiveTOC()
		return
	}

	border := mdast.TextStyle{FG: r.opts.Theme.Border}
	r.setStyle(border)
	r.writeRaw("╭── ")
	r.writeRaw(l.Info())
	r.column = 0
	r.writeRaw("\n")
	if r.opts.Indent > 0 {
		r.writeRaw(strings.Repeat(" ", r.opts.Indent))
	}
	r.pushLeader(leader{text: "│ ", style: border})
	r.writeLeaders()

	body := string(l.Decoded())
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")

	writeLine := func(text string, style mdast.TextStyle) {
		r.setStyle(style)
		r.writeRaw(text)
	}
	newCodeLine := func() {
		r.writeRaw("\n")
		r.column = 0
		if r.opts.Indent > 0 {
			r.writeRaw(strings.Repeat(" ", r.opts.Indent))
		}
		r.writeLeaders()
	}

	tag := l.Info()
	if r.opts.Highlighter != nil && tag != "" {
		spans := r.opts.Highlighter.Highlight(body, tag)
		for _, span := range spans {
			parts := strings.Split(span.Text, "\n")
			for i, part := range parts {
				if i > 0 {
					newCodeLine()
				}
				if part == "" {
					continue
				}
				writeLine(part, mdast.TextStyle{FG: span.Color, Bold: span.Bold})
			}
		}
	} else {
		for i, line := range lines {
			if i > 0 {
				newCodeLine()
			}
			writeLine(line, mdast.TextStyle{})
		}
	}

	r.popLeader()
	r.endLine()
	r.setStyle(border)
	r.writeRaw("╰───")
	r.endLine()
}

func (r *renderer) printDirectiveTOC() {
	root := r.docTOC
	if root == nil {
		return
	}
	var walk func(n *mdtoc.Node)
	style := mdast.TextStyle{FG: r.opts.Theme.Link}
	walk = func(n *mdtoc.Node) {
		for _, child := range n.Children {
			r.endLine()
			r.newline()
			indent := strings.Repeat("  ", child.Entry.Level-1)
			r.writeRaw(indent)
			r.column += mdutil.StringWidth(indent)
			r.writeWord("‣", mdast.TextStyle{FG: r.opts.Theme.Muted})
			r.writeHyperlink("#"+child.Entry.Anchor, child.Entry.Text, style)
			walk(child)
		}
	}
	walk(root)
	r.endLine()
}

func severityColor(t *mdtheme.Theme, sev mdast.AlertSeverity) mdtheme.Color {
	switch sev {
	case mdast.SeverityTip:
		return t.TipColor
	case mdast.SeverityWarning:
		return t.Warning
	case mdast.SeverityCaution:
		return t.Error
	case mdast.SeverityImportant:
		return t.Link
	default:
		return t.NoteColor
	}
}

func (r *renderer) printAlert(l *mdast.Leaf) {
	color := severityColor(r.opts.Theme, l.Severity())
	style := mdast.TextStyle{FG: color, Bold: true}
	width := r.contentWidth()
	trailer := " │"
	trailerWidth := mdutil.StringWidth(trailer)

	label := "[!" + l.Severity().String() + "] " + plainInlineText(l.Inlines())
	lines := mdutil.WrapText(label, width-trailerWidth)

	r.setStyle(style)
	for i, line := range lines {
		if i > 0 {
			r.newline()
		}
		pad := width - trailerWidth - mdutil.StringWidth(line)
		if pad < 0 {
			pad = 0
		}
		r.writeRaw(line)
		r.writeRaw(strings.Repeat(" ", pad))
		r.writeRaw(trailer)
		r.column = width
	}
	r.endLine()
}

func (r *renderer) printInline(in mdast.Inline) {
	switch v := in.(type) {
	case mdast.Text:
		r.wrapText(v.Text, v.Style)
	case mdast.Codespan:
		r.wrapText(v.Text, mdast.TextStyle{FG: r.opts.Theme.Codespan, BG: r.opts.Theme.CodeBG})
	case mdast.Autolink:
		r.writeHyperlink(v.URL, v.URL, mdast.TextStyle{FG: r.opts.Theme.Link, Underline: true})
	case mdast.Link:
		r.writeHyperlink(v.URL, plainTextRuns(v.Text), mdast.TextStyle{FG: r.opts.Theme.Link, Underline: true})
	case mdast.Image:
		r.printImage(v)
	case mdast.LineBreak:
		r.newline()
	}
}

func (r *renderer) printImage(v mdast.Image) {
	alt := plainTextRuns(v.Alt)
	if !r.opts.Plain && r.opts.ImageDecoder != nil && r.opts.ReadImage != nil {
		if data, ok := r.opts.ReadImage(v.Src); ok {
			if img, ok := r.opts.ImageDecoder.Decode(data, r.opts.MaxImageCols, r.opts.CellPxWidth, r.opts.CellPxHeight); ok {
				r.emitKittyImage(img)
				return
			}
		}
	}
	r.wrapText(alt+" → "+v.Src, mdast.TextStyle{FG: r.opts.Theme.Muted, Italic: true})
}

// emitKittyImage writes the Kitty graphics protocol escape sequence,
// base64-chunked at 4096 bytes per transmission with m=1 on every chunk but
// the last.
func (r *renderer) emitKittyImage(img *mdimage.Image) {
	r.endLine()

	cols := r.opts.MaxImageCols
	if r.opts.CellPxWidth > 0 {
		c := (img.Width + r.opts.CellPxWidth - 1) / r.opts.CellPxWidth
		if c > 0 {
			cols = c
		}
		if cols > r.opts.MaxImageCols {
			cols = r.opts.MaxImageCols
		}
	}
	rows := 1
	if r.opts.CellPxHeight > 0 {
		rows = (img.Height + r.opts.CellPxHeight - 1) / r.opts.CellPxHeight
		if rows < 1 {
			rows = 1
		}
	}

	// A PNG source is transmitted verbatim (f=100) and the terminal decodes
	// it itself; any other source already went through the RGB fallback
	// path and is sent as raw 3-channel pixels (f=24, s/v giving the pixel
	// dimensions the terminal can't otherwise infer from the payload).
	raw := img.PNG
	firstKV := fmt.Sprintf("a=T,f=100,c=%d,r=%d", cols, rows)
	if raw == nil {
		raw = img.Pixels
		firstKV = fmt.Sprintf("a=T,f=24,s=%d,v=%d,c=%d,r=%d", img.Width, img.Height, cols, rows)
	}

	payload := base64.StdEncoding.EncodeToString(raw)
	const chunkSize = 4096
	first := true
	for len(payload) > 0 {
		n := chunkSize
		if n > len(payload) {
			n = len(payload)
		}
		chunk := payload[:n]
		payload = payload[n:]

		more := 0
		if len(payload) > 0 {
			more = 1
		}

		var kv strings.Builder
		if first {
			fmt.Fprintf(&kv, "%s,m=%d", firstKV, more)
			first = false
		} else {
			fmt.Fprintf(&kv, "m=%d", more)
		}
		r.writeRaw("\x1b_G" + kv.String() + ";" + chunk + "\x1b\\")
	}
	r.newline()
}

func plainTextRuns(texts []mdast.Text) string {
	var b strings.Builder
	for _, t := range texts {
		b.WriteString(t.Text)
	}

	return b.String()
}

func plainInlineText(inlines []mdast.Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		switch v := in.(type) {
		case mdast.Text:
			b.WriteString(v.Text)
		case mdast.Codespan:
			b.WriteString(v.Text)
		case mdast.Autolink:
			b.WriteString(v.URL)
		case mdast.Link:
			b.WriteString(plainTextRuns(v.Text))
		case mdast.Image:
			b.WriteString(plainTextRuns(v.Alt))
		case mdast.LineBreak:
			b.WriteString(" ")
		}
	}

	return b.String()
}

func plainCellText(cell mdast.TableCell) string {
	return plainInlineText(cell)
}
