// Package mdhighlight defines the syntax-highlight seam consumed by the
// console renderer's fenced code blocks, plus one concrete implementation
// backed by alecthomas/chroma/v2. Per spec.md's non-goals, this is not a
// language-complete highlighter — it exercises the interface with a real
// tokenizer rather than a stub.
package mdhighlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/inkmd/mdctl/internal/mdtheme"
)

// Span is one styled run of a highlighted source line.
type Span struct {
	Text  string
	Color mdtheme.Color
	Bold  bool
}

// Highlighter maps a source string and a language tag (a fenced code
// block's info string) to an ordered list of styled spans. Implementations
// must be total: an unrecognized language or a decode failure returns a
// single unstyled span rather than an error, per the "highlight-unavailable
// swallowed, falls back to plain code style" rule.
type Highlighter interface {
	Highlight(source, language string) []Span
}

// Chroma is the one built-in Highlighter, backed by chroma/v2's lexer
// registry. The zero value is ready to use.
type Chroma struct{}

// Highlight implements Highlighter.
func (Chroma) Highlight(source, language string) []Span {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return []Span{{Text: source, Color: mdtheme.Default}}
	}

	var spans []Span
	for _, tok := range chroma.Tokens(it) {
		color, bold := classify(tok.Type)
		spans = append(spans, Span{Text: tok.Value, Color: color, Bold: bold})
	}

	return spans
}

// classify maps a chroma token category to this project's fixed 16-entry
// palette, per the capture-name→palette table (keyword*→Magenta,
// string*→Green, comment*→BrightBlack, function*→Blue, number*→Cyan,
// type*→Yellow, string.escape→BrightCyan, default→Default).
func classify(tt chroma.TokenType) (mdtheme.Color, bool) {
	switch {
	case tt == chroma.NameFunction:
		return mdtheme.Blue, false
	case tt == chroma.LiteralStringEscape:
		return mdtheme.BrightCyan, false
	case tt == chroma.NameClass || tt == chroma.KeywordType:
		return mdtheme.Yellow, false
	case tt.InCategory(chroma.Keyword):
		return mdtheme.Magenta, true
	case tt.InCategory(chroma.LiteralString):
		return mdtheme.Green, false
	case tt.InCategory(chroma.Comment):
		return mdtheme.BrightBlack, false
	case tt.InCategory(chroma.LiteralNumber):
		return mdtheme.Cyan, false
	default:
		return mdtheme.Default, false
	}
}
