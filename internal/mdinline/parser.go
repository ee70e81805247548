// Package mdinline converts a closed leaf's raw token slice into an
// ordered list of mdast.Inline nodes: styled text runs, code spans,
// autolinks, links, and images.
package mdinline

import (
	"strings"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdlex"
)

// Parse converts raw tokens (as accumulated by an mdast.Leaf before it
// closes) into inline content. It is a single forward pass with a running
// TextStyle accumulator and a scratch text buffer, per the emphasis/
// codespan/autolink/link state machine described in the package-level
// design notes.
func Parse(tokens []mdlex.Token) []mdast.Inline {
	p := &parser{tokens: tokens}

	return p.run()
}

type parser struct {
	tokens []mdlex.Token
	pos    int
	style  mdast.TextStyle
	scratch strings.Builder
	scratchPos mdlex.Pos
	scratchSet bool
	out    []mdast.Inline
}

func (p *parser) run() []mdast.Inline {
	for p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		switch t.Kind {
		case mdlex.Embold:
			p.flush()
			p.style = p.style.WithBold(!p.style.Bold)
			p.style = p.style.WithItalic(!p.style.Italic)
			p.pos++
		case mdlex.Bold:
			p.flush()
			p.style = p.style.WithBold(!p.style.Bold)
			p.pos++
		case mdlex.Underscore:
			p.handleUnderscore()
		case mdlex.Tilde:
			p.flush()
			p.style = p.style.WithStrike(!p.style.Strike)
			p.pos++
		case mdlex.Backtick:
			p.handleCodespan()
		case mdlex.LessThan:
			if !p.handleAutolink() {
				p.appendLiteral(t)
				p.pos++
			}
		case mdlex.Bang:
			if p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind == mdlex.BracketOpen {
				if !p.handleLinkOrImage(true) {
					p.appendLiteral(t)
					p.pos++
				}
			} else {
				p.appendLiteral(t)
				p.pos++
			}
		case mdlex.BracketOpen:
			if !p.handleLinkOrImage(false) {
				p.appendLiteral(t)
				p.pos++
			}
		case mdlex.Break:
			p.pushSpace()
			p.pos++
		default:
			p.appendLiteral(t)
			p.pos++
		}
	}
	p.flush()

	return p.out
}

// handleUnderscore implements the intra-word literal rule: an underscore
// touching a WORD token on both sides never toggles emphasis.
func (p *parser) handleUnderscore() {
	prevIsWord := p.pos > 0 && p.tokens[p.pos-1].Kind == mdlex.Word
	nextIsWord := p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind == mdlex.Word
	if prevIsWord && nextIsWord {
		p.appendLiteral(p.tokens[p.pos])
		p.pos++

		return
	}
	p.flush()
	p.style = p.style.WithItalic(!p.style.Italic)
	p.pos++
}

// handleCodespan scans forward for a matching closing back-tick. Internal
// whitespace is collapsed to single spaces. If no closer is found before
// the end of the token slice, the opening back-tick is emitted literally.
func (p *parser) handleCodespan() {
	start := p.pos
	end := -1
	for i := p.pos + 1; i < len(p.tokens); i++ {
		if p.tokens[i].Kind == mdlex.Backtick {
			end = i

			break
		}
	}
	if end < 0 {
		p.appendLiteral(p.tokens[start])
		p.pos++

		return
	}
	p.flush()
	var b strings.Builder
	prevSpace := false
	for i := start + 1; i < end; i++ {
		t := p.tokens[i]
		if t.Kind == mdlex.Space || t.Kind == mdlex.Indent || t.Kind == mdlex.Break {
			if !prevSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			prevSpace = true

			continue
		}
		b.Write(t.Text)
		prevSpace = false
	}
	text := strings.TrimSuffix(b.String(), " ")
	p.out = append(p.out, mdast.Codespan{Text: text, Pos: p.tokens[start].Pos})
	p.pos = end + 1
}

// handleAutolink looks for a '>' before any Break with URL-shaped
// interior (no internal whitespace). Returns false if the shape doesn't
// hold, in which case the caller emits '<' literally.
func (p *parser) handleAutolink() bool {
	start := p.pos
	end := -1
	for i := p.pos + 1; i < len(p.tokens); i++ {
		k := p.tokens[i].Kind
		if k == mdlex.Break {
			return false
		}
		if k == mdlex.GreaterThan {
			end = i

			break
		}
		if k == mdlex.Space || k == mdlex.Indent {
			return false
		}
	}
	if end < 0 || end == start+1 {
		return false
	}
	p.flush()
	var b strings.Builder
	for i := start + 1; i < end; i++ {
		b.Write(p.tokens[i].Text)
	}
	p.out = append(p.out, mdast.Autolink{URL: b.String(), Pos: p.tokens[start].Pos})
	p.pos = end + 1

	return true
}

// handleLinkOrImage validates [text](url) (or, for images, ![alt](url))
// shape: ']' immediately followed by '(', a closing ')' before the next
// Break. Returns false if the shape doesn't hold.
func (p *parser) handleLinkOrImage(isImage bool) bool {
	openBracket := p.pos
	if isImage {
		openBracket++ // the '[' follows the '!'
	}

	closeBracket := -1
	depth := 0
	for i := openBracket; i < len(p.tokens); i++ {
		k := p.tokens[i].Kind
		if k == mdlex.Break {
			return false
		}
		if k == mdlex.BracketOpen {
			depth++
		}
		if k == mdlex.BracketClose {
			depth--
			if depth == 0 {
				closeBracket = i

				break
			}
		}
	}
	if closeBracket < 0 {
		return false
	}
	if closeBracket+1 >= len(p.tokens) || p.tokens[closeBracket+1].Kind != mdlex.ParenOpen {
		return false
	}
	openParen := closeBracket + 1
	closeParen := -1
	for i := openParen + 1; i < len(p.tokens); i++ {
		k := p.tokens[i].Kind
		if k == mdlex.Break {
			return false
		}
		if k == mdlex.ParenClose {
			closeParen = i

			break
		}
	}
	if closeParen < 0 {
		return false
	}

	p.flush()
	labelTokens := p.tokens[openBracket+1 : closeBracket]
	urlTokens := p.tokens[openParen+1 : closeParen]
	url := joinText(urlTokens)

	if isImage {
		alt := textRuns(labelTokens)
		p.out = append(p.out, mdast.Image{Src: url, Alt: alt})
	} else {
		text := textRuns(labelTokens)
		p.out = append(p.out, mdast.Link{URL: url, Text: text})
	}
	p.pos = closeParen + 1

	return true
}

// textRuns recursively inline-parses label/alt tokens and flattens the
// result to Text runs (link labels and alt text carry no nested
// links/images/codespans, matching the simplified scope of this parser).
func textRuns(tokens []mdlex.Token) []mdast.Text {
	inlines := Parse(tokens)
	out := make([]mdast.Text, 0, len(inlines))
	for _, in := range inlines {
		if t, ok := in.(mdast.Text); ok {
			out = append(out, t)
		}
	}

	return out
}

func joinText(tokens []mdlex.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Text)
	}

	return b.String()
}

func (p *parser) appendLiteral(t mdlex.Token) {
	if !p.scratchSet {
		p.scratchPos = t.Pos
		p.scratchSet = true
	}
	p.scratch.Write(t.Text)
}

func (p *parser) pushSpace() {
	if !p.scratchSet {
		p.scratchPos = p.tokens[p.pos].Pos
		p.scratchSet = true
	}
	p.scratch.WriteByte(' ')
}

func (p *parser) flush() {
	if p.scratch.Len() == 0 {
		return
	}
	p.out = append(p.out, mdast.Text{Style: p.style, Text: p.scratch.String(), Pos: p.scratchPos})
	p.scratch.Reset()
	p.scratchSet = false
}
