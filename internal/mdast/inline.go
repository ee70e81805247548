package mdast

import "github.com/inkmd/mdctl/internal/mdlex"

// InlineKind classifies an Inline node.
type InlineKind uint8

const (
	// KText is a run of styled text.
	KText InlineKind = iota
	// KCodespan is inline code (`...`).
	KCodespan
	// KAutolink is a bare <url>.
	KAutolink
	// KLink is [text](url).
	KLink
	// KImage is ![alt](src).
	KImage
	// KLineBreak is a soft line break inside a paragraph.
	KLineBreak
)

// Inline is any inline-level node produced by the inline parser.
type Inline interface {
	InlineKind() InlineKind
}

// Text is a run of text carrying a single TextStyle.
type Text struct {
	Style TextStyle
	Text  string
	Pos   mdlex.Pos
}

// InlineKind implements Inline.
func (Text) InlineKind() InlineKind { return KText }

// Codespan is literal inline code; its text is never further styled or
// re-wrapped by emphasis rules.
type Codespan struct {
	Text string
	Pos  mdlex.Pos
}

// InlineKind implements Inline.
func (Codespan) InlineKind() InlineKind { return KCodespan }

// Autolink is a bare URL written as <url>; the URL is used as both the
// link target and the visible text.
type Autolink struct {
	URL string
	Pos mdlex.Pos
}

// InlineKind implements Inline.
func (Autolink) InlineKind() InlineKind { return KAutolink }

// Link is [text](url); Text is itself inline content so a link label may
// carry its own emphasis.
type Link struct {
	URL  string
	Text []Text
}

// InlineKind implements Inline.
func (Link) InlineKind() InlineKind { return KLink }

// Image is ![alt](src).
type Image struct {
	Src string
	Alt []Text
}

// InlineKind implements Inline.
func (Image) InlineKind() InlineKind { return KImage }

// LineBreak is an explicit break within a paragraph's inline content.
type LineBreak struct{}

// InlineKind implements Inline.
func (LineBreak) InlineKind() InlineKind { return KLineBreak }
