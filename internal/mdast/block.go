// Package mdast defines the AST produced by internal/mdblock and
// internal/mdinline: a tree of Block nodes (Container or Leaf) holding
// Inline content, plus the shared TextStyle/palette value types consumed
// by every renderer in internal/mdrender.
package mdast

import "github.com/inkmd/mdctl/internal/mdlex"

// ContainerKind classifies a Container block.
type ContainerKind uint8

const (
	// KDocument is the unique tree root.
	KDocument ContainerKind = iota
	// KQuote is a block quote ("> ...").
	KQuote
	// KList is an ordered, unordered, or task list.
	KList
	// KListItem is a single item of a List; it appears only as a direct
	// child of a List.
	KListItem
	// KTable is a pipe table.
	KTable
)

// String returns a human-readable name for the ContainerKind.
func (k ContainerKind) String() string {
	switch k {
	case KDocument:
		return "Document"
	case KQuote:
		return "Quote"
	case KList:
		return "List"
	case KListItem:
		return "ListItem"
	case KTable:
		return "Table"
	default:
		return "UnknownContainer"
	}
}

// LeafKind classifies a Leaf block.
type LeafKind uint8

const (
	// KBreak is a blank logical line that was not absorbed as a
	// continuation of any open block; it closes immediately on creation.
	KBreak LeafKind = iota
	// KCode is a fenced code block.
	KCode
	// KHeading is an ATX heading.
	KHeading
	// KParagraph is a run of inline content.
	KParagraph
	// KAlert is a GitHub-style alert admonition ("> [!NOTE]").
	KAlert
)

// String returns a human-readable name for the LeafKind.
func (k LeafKind) String() string {
	switch k {
	case KBreak:
		return "Break"
	case KCode:
		return "Code"
	case KHeading:
		return "Heading"
	case KParagraph:
		return "Paragraph"
	case KAlert:
		return "Alert"
	default:
		return "UnknownLeaf"
	}
}

// ListVariant distinguishes the three kinds of list a List container can
// be. A List's variant is fixed at creation; an item of a different
// variant closes the list instead of joining it.
type ListVariant uint8

const (
	// Unordered is a "-", "+", or "*" bulleted list.
	Unordered ListVariant = iota
	// Ordered is a "1." numbered list.
	Ordered
	// Task is an unordered list whose items carry a "[ ]"/"[x]" checkbox.
	Task
)

// ListSpacing records whether a list is "tight" (no blank lines between
// items — items render without surrounding paragraph spacing) or "loose".
type ListSpacing uint8

const (
	// Tight lists render items back-to-back.
	Tight ListSpacing = iota
	// Loose lists render a blank line between items.
	Loose
)

// Alignment is a table column's alignment, parsed from its header
// separator row.
type Alignment uint8

const (
	// AlignNone is the default (no ':' in the separator cell).
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// AlertSeverity is the admonition kind of an Alert leaf.
type AlertSeverity uint8

const (
	SeverityNote AlertSeverity = iota
	SeverityInfo
	SeverityTip
	SeverityImportant
	SeverityWarning
	SeverityCaution
)

// String returns the canonical upper-case admonition tag, e.g. "NOTE".
func (s AlertSeverity) String() string {
	switch s {
	case SeverityNote:
		return "NOTE"
	case SeverityInfo:
		return "INFO"
	case SeverityTip:
		return "TIP"
	case SeverityImportant:
		return "IMPORTANT"
	case SeverityWarning:
		return "WARNING"
	case SeverityCaution:
		return "CAUTION"
	default:
		return "NOTE"
	}
}

// ParseAlertSeverity maps a case-insensitive admonition tag (as found
// inside "[!TAG]") to an AlertSeverity. ok is false for unrecognized tags.
func ParseAlertSeverity(tag string) (AlertSeverity, bool) {
	switch upperASCII(tag) {
	case "NOTE":
		return SeverityNote, true
	case "INFO":
		return SeverityInfo, true
	case "TIP":
		return SeverityTip, true
	case "IMPORTANT":
		return SeverityImportant, true
	case "WARNING":
		return SeverityWarning, true
	case "CAUTION":
		return SeverityCaution, true
	default:
		return SeverityNote, false
	}
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}

	return string(b)
}

// Block is the sum type at the root of the AST: every node is either a
// Container (holds other Blocks) or a Leaf (holds raw tokens pre-close,
// inline content post-close). A Block is owned by exactly one parent — or
// is the Document root — and children are append-only: the tree never
// reorders or removes a child once appended.
type Block interface {
	// IsContainer reports whether this Block is a Container (true) or a
	// Leaf (false).
	IsContainer() bool
	// Open reports whether the block can still accept new content.
	Open() bool
	// Depth is the block's nesting depth from the Document root (0).
	Depth() int
}

// Container is a Block that holds other Blocks as children.
type Container struct {
	kind     ContainerKind
	open     bool
	depth    int
	children []Block

	// List-specific content.
	ordered bool
	start   int
	spacing ListSpacing
	variant ListVariant

	// ListItem-specific content.
	checked     bool
	hasCheckbox bool
	markerWidth int // columns consumed by the marker and its trailing spaces

	// Table-specific content. Cells are inline-parsed eagerly (a table row
	// is never "open" the way a Paragraph is), so rows live here rather
	// than as Block children.
	ncol       int
	alignments []Alignment
	header     TableRow
	rows       []TableRow
}

// TableCell is one table cell's parsed inline content.
type TableCell []Inline

// TableRow is an ordered sequence of cells.
type TableRow []TableCell

// NewContainer creates an open Container of the given kind at depth.
func NewContainer(kind ContainerKind, depth int) *Container {
	return &Container{kind: kind, open: true, depth: depth}
}

// IsContainer implements Block.
func (*Container) IsContainer() bool { return true }

// Open implements Block.
func (c *Container) Open() bool { return c.open }

// Depth implements Block.
func (c *Container) Depth() int { return c.depth }

// Kind returns the container's ContainerKind.
func (c *Container) Kind() ContainerKind { return c.kind }

// Children returns the container's children in append order. The slice is
// owned by the container; callers must not mutate it.
func (c *Container) Children() []Block { return c.children }

// LastChild returns the most recently appended child, or nil if empty.
func (c *Container) LastChild() Block {
	if len(c.children) == 0 {
		return nil
	}

	return c.children[len(c.children)-1]
}

// LastOpenChild returns the last child if it is still open, else nil.
func (c *Container) LastOpenChild() Block {
	last := c.LastChild()
	if last == nil || !last.Open() {
		return nil
	}

	return last
}

// Append adds child as the container's new last child. Closing is
// monotonic: callers must close the previous last child (if any and still
// open) before appending a sibling, except when recursing into it.
func (c *Container) Append(child Block) {
	c.children = append(c.children, child)
}

// Close marks the container closed. A closed container is never reopened.
func (c *Container) Close() { c.open = false }

// ReplaceLastChild swaps the last child for a different block, used only
// by the paragraph-to-table reinterpretation: a Paragraph's first line is
// reinterpreted as a table header once its second line proves to be a
// valid separator row, at which point the Paragraph leaf is discarded in
// favor of a freshly built Table container.
func (c *Container) ReplaceLastChild(child Block) {
	c.children[len(c.children)-1] = child
}

// List accessors. These panic-free zero-value on a non-List container;
// callers switch on Kind() before calling them, matching how the block
// parser and renderers already dispatch.

// Ordered reports whether a List container is numbered.
func (c *Container) Ordered() bool { return c.ordered }

// Start returns an ordered List's starting number.
func (c *Container) Start() int { return c.start }

// Spacing returns a List's tight/loose spacing.
func (c *Container) Spacing() ListSpacing { return c.spacing }

// SetSpacing sets a List's tight/loose spacing.
func (c *Container) SetSpacing(s ListSpacing) { c.spacing = s }

// Variant returns a List's fixed variant.
func (c *Container) Variant() ListVariant { return c.variant }

// SetListContent initializes List-specific content at creation time.
func (c *Container) SetListContent(ordered bool, start int, variant ListVariant) {
	c.ordered = ordered
	c.start = start
	c.variant = variant
}

// Checked reports whether a task ListItem is checked.
func (c *Container) Checked() bool { return c.checked }

// HasCheckbox reports whether a ListItem carries a task checkbox.
func (c *Container) HasCheckbox() bool { return c.hasCheckbox }

// SetChecked sets a ListItem's checkbox state.
func (c *Container) SetChecked(checked, has bool) {
	c.checked = checked
	c.hasCheckbox = has
}

// MarkerWidth returns a ListItem's left-edge column (the column
// immediately after its marker and trailing spaces). Strict continuation
// lines must be indented at least this many columns.
func (c *Container) MarkerWidth() int { return c.markerWidth }

// SetMarkerWidth sets a ListItem's left-edge column.
func (c *Container) SetMarkerWidth(w int) { c.markerWidth = w }

// NumCols returns a Table's fixed column count.
func (c *Container) NumCols() int { return c.ncol }

// Alignments returns a Table's per-column alignment.
func (c *Container) Alignments() []Alignment { return c.alignments }

// SetTableContent initializes Table-specific content from the header and
// separator rows.
func (c *Container) SetTableContent(ncol int, alignments []Alignment) {
	c.ncol = ncol
	c.alignments = alignments
}

// Header returns the table's header row.
func (c *Container) Header() TableRow { return c.header }

// SetHeader sets the table's header row.
func (c *Container) SetHeader(row TableRow) { c.header = row }

// Rows returns the table's body rows in source order.
func (c *Container) Rows() []TableRow { return c.rows }

// AppendRow appends a body row.
func (c *Container) AppendRow(row TableRow) { c.rows = append(c.rows, row) }

// Leaf is a Block that holds raw tokens before it closes and an ordered
// list of Inline nodes after: a Leaf's inline content is populated lazily,
// exactly once, when the block parser closes it.
type Leaf struct {
	kind      LeafKind
	open      bool
	depth     int
	rawTokens []mdlex.Token
	inlines   []Inline

	// Heading-specific content.
	level int
	text  string

	// Code-specific content.
	fenceChar byte
	fenceLen  int
	info      string
	directive string // recognized builtin keyword (toc/toctree/table-of-contents), else ""
	decoded   []byte

	// Alert-specific content.
	severity AlertSeverity
}

// NewLeaf creates an open Leaf of the given kind at depth.
func NewLeaf(kind LeafKind, depth int) *Leaf {
	return &Leaf{kind: kind, open: true, depth: depth}
}

// IsContainer implements Block.
func (*Leaf) IsContainer() bool { return false }

// Open implements Block.
func (l *Leaf) Open() bool { return l.open }

// Depth implements Block.
func (l *Leaf) Depth() int { return l.depth }

// Kind returns the leaf's LeafKind.
func (l *Leaf) Kind() LeafKind { return l.kind }

// RawTokens returns the leaf's accumulated raw tokens. Valid only while
// the leaf is open; once closed, Inlines holds the parsed content instead.
func (l *Leaf) RawTokens() []mdlex.Token { return l.rawTokens }

// AppendToken appends a raw token to an open leaf.
func (l *Leaf) AppendToken(t mdlex.Token) {
	l.rawTokens = append(l.rawTokens, t)
}

// AppendTokens appends a run of raw tokens to an open leaf.
func (l *Leaf) AppendTokens(ts []mdlex.Token) {
	l.rawTokens = append(l.rawTokens, ts...)
}

// Inlines returns the leaf's parsed inline content. Empty while the leaf
// is open.
func (l *Leaf) Inlines() []Inline { return l.inlines }

// Close closes the leaf, recording its parsed inline content. A closed
// leaf is never reopened and its raw tokens are no longer consulted.
func (l *Leaf) Close(inlines []Inline) {
	l.inlines = inlines
	l.open = false
}

// Level returns a Heading's level (1-6).
func (l *Leaf) Level() int { return l.level }

// Text returns a Heading's literal source text (used for anchors/TOC).
func (l *Leaf) Text() string { return l.text }

// SetHeadingContent initializes Heading-specific content.
func (l *Leaf) SetHeadingContent(level int, text string) {
	l.level = level
	l.text = text
}

// FenceChar returns a Code block's fence character (always '`': only
// backtick fences are recognized).
func (l *Leaf) FenceChar() byte { return l.fenceChar }

// FenceLen returns the exact length of a Code block's opening fence.
func (l *Leaf) FenceLen() int { return l.fenceLen }

// Info returns a Code block's info string (language tag or admonition
// name).
func (l *Leaf) Info() string { return l.info }

// Directive returns the recognized builtin keyword a Code block's info
// string names ("toc", "toctree", "table-of-contents"), or "".
func (l *Leaf) Directive() string { return l.directive }

// Decoded returns a Code block's decoded body text.
func (l *Leaf) Decoded() []byte { return l.decoded }

// SetCodeContent initializes Code-specific content.
func (l *Leaf) SetCodeContent(fenceChar byte, fenceLen int, info, directive string) {
	l.fenceChar = fenceChar
	l.fenceLen = fenceLen
	l.info = info
	l.directive = directive
}

// AppendDecoded appends a line of decoded body text (including its
// trailing newline) to a Code block.
func (l *Leaf) AppendDecoded(line []byte) {
	l.decoded = append(l.decoded, line...)
}

// Severity returns an Alert's admonition severity.
func (l *Leaf) Severity() AlertSeverity { return l.severity }

// SetAlertContent initializes Alert-specific content.
func (l *Leaf) SetAlertContent(sev AlertSeverity) { l.severity = sev }

// Document constructs the unique, initially-open Document root.
func Document() *Container {
	return NewContainer(KDocument, 0)
}
