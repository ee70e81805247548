// Package mdlex tokenizes Markdown source into a flat, position-tagged
// token stream consumed by internal/mdblock and internal/mdinline.
package mdlex

// Kind identifies the lexical category of a Token.
// Whitespace is represented explicitly (Space, Indent, Break) rather than
// collapsed, so the block parser can measure indentation deterministically.
type Kind uint8

const (
	// EOF signals end of input. Exactly one EOF token terminates every stream.
	EOF Kind = iota
	// Unknown is the fallback for bytes that are not valid UTF-8; it is
	// emitted one byte at a time so the lexer never fails on any input.
	Unknown
	// Break represents a line ending (\r\n or \n, normalized).
	Break
	// Space represents a single ASCII space character.
	Space
	// Indent represents a tab, counted as 2 logical columns.
	Indent
	// Word represents a run of non-punctuation, non-whitespace text,
	// including aggregated multi-byte UTF-8 runs.
	Word
	// Digit represents a run of ASCII digits.
	Digit

	// Hash is '#'.
	Hash
	// Asterisk is '*'.
	Asterisk
	// Underscore is '_'.
	Underscore
	// Tilde is '~'.
	Tilde
	// Backtick is a single '`'.
	Backtick
	// Plus is '+'.
	Plus
	// Dash is '-'.
	Dash
	// LessThan is '<'.
	LessThan
	// GreaterThan is '>'.
	GreaterThan
	// Dot is '.'.
	Dot
	// Comma is ','.
	Comma
	// Equals is '='.
	Equals
	// Bang is '!'.
	Bang
	// Question is '?'.
	Question
	// At is '@'.
	At
	// Dollar is '$'.
	Dollar
	// Percent is '%'.
	Percent
	// Caret is '^'.
	Caret
	// Ampersand is '&'.
	Ampersand
	// ParenOpen is '('.
	ParenOpen
	// ParenClose is ')'.
	ParenClose
	// BracketOpen is '['.
	BracketOpen
	// BracketClose is ']'.
	BracketClose
	// BraceOpen is '{'.
	BraceOpen
	// BraceClose is '}'.
	BraceClose
	// Slash is '/'.
	Slash
	// Backslash is '\'.
	Backslash
	// Pipe is '|'.
	Pipe
	// Colon is ':'.
	Colon

	// Bold is the literal '**' or '__'.
	Bold
	// Embold is a literal '***', '**_', '_**', '*__', '__*', or '___'.
	Embold
	// Directive is a run of 3+ back-ticks; Token.Text preserves the run
	// length so the closer can be matched against it.
	Directive
)

const unknownKindName = "Unknown"

// String returns a human-readable name for the Kind, used in debugging and
// test failure messages.
//
//nolint:revive // cyclomatic - switch cases are simple string returns
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Unknown:
		return unknownKindName
	case Break:
		return "Break"
	case Space:
		return "Space"
	case Indent:
		return "Indent"
	case Word:
		return "Word"
	case Digit:
		return "Digit"
	case Hash:
		return "Hash"
	case Asterisk:
		return "Asterisk"
	case Underscore:
		return "Underscore"
	case Tilde:
		return "Tilde"
	case Backtick:
		return "Backtick"
	case Plus:
		return "Plus"
	case Dash:
		return "Dash"
	case LessThan:
		return "LessThan"
	case GreaterThan:
		return "GreaterThan"
	case Dot:
		return "Dot"
	case Comma:
		return "Comma"
	case Equals:
		return "Equals"
	case Bang:
		return "Bang"
	case Question:
		return "Question"
	case At:
		return "At"
	case Dollar:
		return "Dollar"
	case Percent:
		return "Percent"
	case Caret:
		return "Caret"
	case Ampersand:
		return "Ampersand"
	case ParenOpen:
		return "ParenOpen"
	case ParenClose:
		return "ParenClose"
	case BracketOpen:
		return "BracketOpen"
	case BracketClose:
		return "BracketClose"
	case BraceOpen:
		return "BraceOpen"
	case BraceClose:
		return "BraceClose"
	case Slash:
		return "Slash"
	case Backslash:
		return "Backslash"
	case Pipe:
		return "Pipe"
	case Colon:
		return "Colon"
	case Bold:
		return "Bold"
	case Embold:
		return "Embold"
	case Directive:
		return "Directive"
	default:
		return unknownKindName
	}
}

// Pos is a source position in row/column coordinates, counted in code
// points (not bytes). Row and column are both 0-based.
type Pos struct {
	Row int
	Col int
}

// Token is a single lexical unit with its source position and a zero-copy
// view into the original input.
type Token struct {
	Kind Kind
	Text []byte
	Pos  Pos
}

// String returns the token's text as a string. This allocates; callers on a
// hot path should prefer Text directly.
func (t Token) String() string {
	return string(t.Text)
}

// Len returns the byte length of the token's text.
func (t Token) Len() int {
	return len(t.Text)
}

// IsWhitespace reports whether the token is Space, Indent, or Break.
func (t Token) IsWhitespace() bool {
	switch t.Kind {
	case Space, Indent, Break:
		return true
	default:
		return false
	}
}

// IsEmphasisLiteral reports whether the token is a Bold or Embold literal.
func (t Token) IsEmphasisLiteral() bool {
	return t.Kind == Bold || t.Kind == Embold
}
