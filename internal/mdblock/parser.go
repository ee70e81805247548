// Package mdblock consumes the flat token stream from internal/mdlex and
// builds the Container/Leaf tree defined by internal/mdast, one logical
// line at a time. Each line descends through the currently-open chain of
// containers, each of which decides — by its own strict or lazy
// continuation rule — whether to absorb the line or hand it back up so a
// new block can be opened.
package mdblock

import (
	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdinline"
	"github.com/inkmd/mdctl/internal/mdlex"
)

// Parse builds a complete Document tree from a token stream produced by
// mdlex.Lexer.All.
func Parse(tokens []mdlex.Token) *mdast.Container {
	p := &parser{doc: mdast.Document()}
	for _, ln := range splitLines(tokens) {
		p.feedGeneric(p.doc, ln.tokens)
	}
	p.closeContainer(p.doc)

	return p.doc
}

type parser struct {
	doc *mdast.Container
}

// feedGeneric is the recursive-descent step used by the two container
// kinds with no continuation rule of their own (Document and ListItem),
// and by a Quote for the remainder of a line once its marker is stripped:
// try the last open child, in order of container-then-leaf, falling back
// to opening a brand new block when there is no open child or it rejects
// the line. A generic container can never itself reject a line — in the
// worst case it opens a Break leaf for a blank line.
func (p *parser) feedGeneric(cur *mdast.Container, toks []mdlex.Token) {
	child := cur.LastOpenChild()
	if child == nil {
		p.openNewBlock(cur, toks)

		return
	}

	if leaf, ok := child.(*mdast.Leaf); ok && leaf.Kind() == mdast.KParagraph {
		if aligns, ok := tableConversionCheck(leaf, toks); ok {
			cur.ReplaceLastChild(convertParagraphToTable(leaf, aligns))

			return
		}
	}

	switch c := child.(type) {
	case *mdast.Container:
		if p.tryFeedContainer(c, toks) {
			return
		}
		p.closeBlock(c)
	case *mdast.Leaf:
		if p.leafAccept(c, toks) {
			return
		}
		p.closeLeaf(c)
	}

	p.openNewBlock(cur, toks)
}

// tryFeedContainer dispatches to the continuation rule of a container
// kind that has one: Quote, List, and Table. It reports whether the
// container absorbed the line.
func (p *parser) tryFeedContainer(c *mdast.Container, toks []mdlex.Token) bool {
	switch c.Kind() {
	case mdast.KQuote:
		return p.tryQuote(c, toks)
	case mdast.KList:
		return p.tryList(c, toks)
	case mdast.KTable:
		return tryTable(c, toks)
	default:
		return false
	}
}

// tryQuote implements a block quote's strict ("> " present, forward the
// rest) and lazy (no marker, but the line is plain paragraph text rather
// than a new structural block) continuation rules.
func (p *parser) tryQuote(c *mdast.Container, toks []mdlex.Token) bool {
	if rest, ok := quoteMatch(toks); ok {
		p.feedGeneric(c, rest)

		return true
	}

	content := contentOf(toks)
	if len(content) == 0 || looksLikeNewStructuralBlock(toks) {
		return false
	}

	if leaf := innermostOpenParagraph(c); leaf != nil {
		leaf.AppendTokens(toks)

		return true
	}

	return false
}

// tryList implements a list's strict continuation (enough indentation to
// belong to the currently open item), new-item detection (same variant
// joins, a different variant closes the list so the caller can open a
// fresh one), blank-line swallowing (marks the list Loose), and lazy
// continuation into the open item's innermost open Paragraph.
func (p *parser) tryList(c *mdast.Container, toks []mdlex.Token) bool {
	last := c.LastChild()
	item, _ := last.(*mdast.Container)
	open := last != nil && last.Open()

	content := contentOf(toks)
	if len(content) == 0 {
		c.SetSpacing(mdast.Loose)

		return true
	}

	if open && item != nil {
		cols, _ := leadingWS(toks)
		if cols >= item.MarkerWidth() {
			p.feedGeneric(item, stripColumns(toks, item.MarkerWidth()))

			return true
		}
	}

	if variant, checked, hasCheckbox, rest, markerWidth, ok := unorderedListMatch(toks); ok {
		return p.acceptNewItem(c, variant, checked, hasCheckbox, rest, markerWidth)
	}
	if start, rest, markerWidth, ok := orderedListMatch(toks); ok {
		_ = start

		return p.acceptNewItem(c, mdast.Ordered, false, false, rest, markerWidth)
	}

	if open && item != nil && !looksLikeNewStructuralBlock(toks) {
		if leaf := innermostOpenParagraph(item); leaf != nil {
			leaf.AppendTokens(toks)

			return true
		}
	}

	return false
}

// acceptNewItem appends a new ListItem to an existing List, provided its
// variant matches; a variant mismatch rejects, closing the list so the
// caller opens a fresh one of the new variant.
func (p *parser) acceptNewItem(list *mdast.Container, variant mdast.ListVariant, checked, hasCheckbox bool, rest []mdlex.Token, markerWidth int) bool {
	if variant != list.Variant() {
		return false
	}
	if last := list.LastChild(); last != nil && last.Open() {
		p.closeBlock(last)
	}

	item := mdast.NewContainer(mdast.KListItem, list.Depth()+1)
	item.SetMarkerWidth(markerWidth)
	if variant == mdast.Task {
		item.SetChecked(checked, hasCheckbox)
	}
	list.Append(item)
	p.feedGeneric(item, rest)

	return true
}

// tryTable appends another body row as long as the line is non-blank;
// a blank line or EOF closes the table via the normal reject-then-close
// path one level up.
func tryTable(c *mdast.Container, toks []mdlex.Token) bool {
	content := contentOf(toks)
	if len(content) == 0 {
		return false
	}
	c.AppendRow(parseRow(content, c.NumCols()))

	return true
}

// leafAccept dispatches an open leaf's own continuation rule. It reports
// whether the leaf absorbed the line.
func (p *parser) leafAccept(l *mdast.Leaf, toks []mdlex.Token) bool {
	switch l.Kind() {
	case mdast.KParagraph:
		content := contentOf(toks)
		if len(content) == 0 || looksLikeNewStructuralBlock(toks) {
			return false
		}
		l.AppendTokens(toks)

		return true

	case mdast.KCode:
		if closed := closeFenceMatch(l, toks); closed {
			p.closeLeaf(l)

			return true
		}
		l.AppendDecoded(decodedLine(toks))

		return true

	case mdast.KAlert:
		if rest, ok := quoteMatch(toks); ok {
			l.AppendTokens(rest)

			return true
		}
		content := contentOf(toks)
		if len(content) == 0 || looksLikeNewStructuralBlock(toks) {
			return false
		}
		l.AppendTokens(toks)

		return true

	default:
		// Heading and Break close immediately at creation and are never
		// re-entered.
		return false
	}
}

// openNewBlock creates a new block as cur's next child from a line that
// no open child absorbed, implementing the spec's new-block-classification
// order: blank line, heading, quote (or alert), list item, code fence,
// else paragraph.
func (p *parser) openNewBlock(cur *mdast.Container, toks []mdlex.Token) {
	content := contentOf(toks)
	if len(content) == 0 {
		leaf := mdast.NewLeaf(mdast.KBreak, cur.Depth()+1)
		cur.Append(leaf)
		p.closeLeaf(leaf)

		return
	}

	if level, rest, ok := headingMatch(toks); ok {
		leaf := mdast.NewLeaf(mdast.KHeading, cur.Depth()+1)
		leaf.SetHeadingContent(level, plainText(rest))
		leaf.AppendTokens(contentOf(rest))
		cur.Append(leaf)
		p.closeLeaf(leaf)

		return
	}

	if rest, ok := quoteMatch(toks); ok {
		if sev, isAlert := alertMatch(rest); isAlert {
			leaf := mdast.NewLeaf(mdast.KAlert, cur.Depth()+1)
			leaf.SetAlertContent(sev)
			cur.Append(leaf)

			return
		}
		quote := mdast.NewContainer(mdast.KQuote, cur.Depth()+1)
		cur.Append(quote)
		p.feedGeneric(quote, rest)

		return
	}

	if variant, checked, hasCheckbox, rest, markerWidth, ok := unorderedListMatch(toks); ok {
		list := mdast.NewContainer(mdast.KList, cur.Depth()+1)
		list.SetListContent(false, 1, variant)
		cur.Append(list)
		p.acceptNewItem(list, variant, checked, hasCheckbox, rest, markerWidth)

		return
	}
	if start, rest, markerWidth, ok := orderedListMatch(toks); ok {
		list := mdast.NewContainer(mdast.KList, cur.Depth()+1)
		list.SetListContent(true, start, mdast.Ordered)
		cur.Append(list)
		p.acceptNewItem(list, mdast.Ordered, false, false, rest, markerWidth)

		return
	}

	if fenceChar, fenceLen, info, ok := codeFenceMatch(toks); ok {
		leaf := mdast.NewLeaf(mdast.KCode, cur.Depth()+1)
		infoStr := plainText(info)
		leaf.SetCodeContent(fenceChar, fenceLen, infoStr, classifyDirective(infoStr))
		cur.Append(leaf)

		return
	}

	leaf := mdast.NewLeaf(mdast.KParagraph, cur.Depth()+1)
	leaf.AppendTokens(toks)
	cur.Append(leaf)
}

// closeBlock closes a container or leaf, recursing into any still-open
// child first so inline parsing happens bottom-up.
func (p *parser) closeBlock(b mdast.Block) {
	switch v := b.(type) {
	case *mdast.Leaf:
		p.closeLeaf(v)
	case *mdast.Container:
		p.closeContainer(v)
	}
}

func (p *parser) closeContainer(c *mdast.Container) {
	if last := c.LastChild(); last != nil && last.Open() {
		p.closeBlock(last)
	}
	c.Close()
}

// closeLeaf closes a leaf, running the inline parser over its raw tokens
// for every kind except Code (whose body is decoded text, never inline
// content) and Break (which carries no content at all).
func (p *parser) closeLeaf(l *mdast.Leaf) {
	switch l.Kind() {
	case mdast.KCode, mdast.KBreak:
		l.Close(nil)
	default:
		// Strip a final trailing Break: it is the line-ending of the leaf's
		// last accumulated line, not an interior line join, and would
		// otherwise parse into a spurious trailing space.
		l.Close(mdinline.Parse(contentOf(l.RawTokens())))
	}
}

// innermostOpenParagraph walks down the chain of open containers to find
// the innermost open Paragraph leaf, or nil if the chain ends in anything
// else (an open Code/Alert leaf, an open List with no paragraph yet, or a
// closed child). Lazy continuation only ever reaches into a Paragraph.
func innermostOpenParagraph(b mdast.Block) *mdast.Leaf {
	switch v := b.(type) {
	case *mdast.Leaf:
		if v.Open() && v.Kind() == mdast.KParagraph {
			return v
		}

		return nil
	case *mdast.Container:
		last := v.LastChild()
		if last == nil || !last.Open() {
			return nil
		}

		return innermostOpenParagraph(last)
	default:
		return nil
	}
}

// tableConversionCheck reports whether leaf is an open Paragraph that has
// accumulated exactly one line containing an unescaped pipe, and toks is
// a valid separator row for it — the trigger for reinterpreting the
// paragraph as a table header.
func tableConversionCheck(leaf *mdast.Leaf, toks []mdlex.Token) ([]mdast.Alignment, bool) {
	raw := leaf.RawTokens()
	if countBreaks(raw) > 1 {
		return nil, false
	}
	if !rowHasPipe(contentOf(raw)) {
		return nil, false
	}

	return separatorMatch(toks)
}

func countBreaks(toks []mdlex.Token) int {
	n := 0
	for _, t := range toks {
		if t.Kind == mdlex.Break {
			n++
		}
	}

	return n
}

func convertParagraphToTable(leaf *mdast.Leaf, aligns []mdast.Alignment) *mdast.Container {
	table := mdast.NewContainer(mdast.KTable, leaf.Depth())
	table.SetTableContent(len(aligns), aligns)
	table.SetHeader(parseRow(contentOf(leaf.RawTokens()), len(aligns)))

	return table
}

// contentOf strips a trailing Break token, if any, for classification
// purposes (never for storage — callers that append tokens keep the
// Break so the inline parser can turn it into a space).
func contentOf(toks []mdlex.Token) []mdlex.Token {
	if n := len(toks); n > 0 && toks[n-1].Kind == mdlex.Break {
		return toks[:n-1]
	}

	return toks
}

// closeFenceMatch reports whether toks closes an open Code leaf: after
// stripping any leading whitespace, the line is a single
// Directive token of the same fence character and at least the opening
// fence's length, with nothing else but trailing whitespace before the
// line ending.
func closeFenceMatch(l *mdast.Leaf, toks []mdlex.Token) bool {
	_, r := leadingWS(toks)
	if len(r) == 0 || r[0].Kind != mdlex.Directive {
		return false
	}
	text := r[0].Text
	if text[0] != l.FenceChar() || len(text) < l.FenceLen() {
		return false
	}
	rest := contentOf(r[1:])
	_, rest = leadingWS(rest)

	return len(rest) == 0
}

// decodedLine reconstructs a code block body line's literal source text
// (including its trailing newline, omitted only at EOF) from its tokens.
func decodedLine(toks []mdlex.Token) []byte {
	var out []byte
	for _, t := range toks {
		switch t.Kind {
		case mdlex.Break:
			out = append(out, '\n')
		case mdlex.Indent:
			out = append(out, '\t')
		default:
			out = append(out, t.Text...)
		}
	}

	return out
}

// plainText flattens a token run to its literal text for non-inline
// string fields (heading text, code info strings): whitespace runs
// collapse to a single space and a trailing line ending is dropped.
func plainText(toks []mdlex.Token) string {
	toks = contentOf(toks)
	var out []byte
	prevSpace := true // trim leading space
	for _, t := range toks {
		if t.Kind == mdlex.Space || t.Kind == mdlex.Indent {
			if !prevSpace {
				out = append(out, ' ')
			}
			prevSpace = true

			continue
		}
		out = append(out, t.Text...)
		prevSpace = false
	}
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}

	return string(out)
}

// classifyDirective reports the recognized builtin keyword a code fence's
// info string names, or "" if it is an ordinary language tag.
func classifyDirective(info string) string {
	switch info {
	case "toc", "toctree", "table-of-contents":
		return info
	default:
		return ""
	}
}
