// Package mdtoc builds a table-of-contents tree from a parsed document,
// consumed by the console renderer's "toc"/"toctree" directive and by the
// HTML renderer's navigation sidebar. Supplemented from original_source
// (zigdown's outline builder), which spec.md's distillation dropped.
package mdtoc

import (
	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdutil"
)

// Entry is one heading in document order.
type Entry struct {
	Level  int
	Text   string
	Anchor string
}

// Node is one node of the folded heading tree: a heading becomes a child
// of the most recently seen heading at a strictly lower level, or of the
// synthetic root if none exists yet.
type Node struct {
	Entry    Entry
	Children []*Node
}

type collector struct {
	mdast.BaseVisitor
	entries []Entry
	seen    map[string]int
}

func (c *collector) VisitHeading(l *mdast.Leaf) error {
	c.entries = append(c.entries, Entry{
		Level:  l.Level(),
		Text:   l.Text(),
		Anchor: mdutil.HeadingAnchor(l.Text(), c.seen),
	})

	return nil
}

// Entries walks doc in document order, collecting every Heading leaf.
func Entries(doc *mdast.Container) []Entry {
	c := &collector{seen: map[string]int{}}
	_ = mdast.Walk(c, doc)

	return c.entries
}

// Build walks doc and folds its headings into a tree rooted at a synthetic
// level-0 node (Root.Entry is the zero value and is never rendered).
func Build(doc *mdast.Container) *Node {
	root := &Node{Entry: Entry{Level: 0}}
	stack := []*Node{root}

	for _, e := range Entries(doc) {
		for len(stack) > 1 && stack[len(stack)-1].Entry.Level >= e.Level {
			stack = stack[:len(stack)-1]
		}
		n := &Node{Entry: e}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, n)
		stack = append(stack, n)
	}

	return root
}
