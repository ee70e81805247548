package mdast

import "errors"

// SkipChildren is a sentinel a Visitor method can return to skip
// traversing the current node's children without aborting the walk. It is
// not treated as a real error by Walk.
var SkipChildren = errors.New("mdast: skip children") //nolint:staticcheck // intentional sentinel

// Visitor is the shared traversal contract every renderer in
// internal/mdrender implements: Walk dispatches to the method matching
// each node's kind, in document order.
type Visitor interface {
	VisitDocument(*Container) error
	VisitQuote(*Container) error
	VisitList(*Container) error
	VisitListItem(*Container) error
	VisitTable(*Container) error
	VisitBreak(*Leaf) error
	VisitCode(*Leaf) error
	VisitHeading(*Leaf) error
	VisitParagraph(*Leaf) error
	VisitAlert(*Leaf) error
}

// Walk dispatches block to the matching Visitor method, then recurses into
// its children (unless the method returned SkipChildren or another error).
func Walk(v Visitor, block Block) error {
	if block == nil {
		return nil
	}

	var err error
	var children []Block

	switch n := block.(type) {
	case *Container:
		children = n.Children()
		switch n.Kind() {
		case KDocument:
			err = v.VisitDocument(n)
		case KQuote:
			err = v.VisitQuote(n)
		case KList:
			err = v.VisitList(n)
		case KListItem:
			err = v.VisitListItem(n)
		case KTable:
			err = v.VisitTable(n)
		}
	case *Leaf:
		switch n.Kind() {
		case KBreak:
			err = v.VisitBreak(n)
		case KCode:
			err = v.VisitCode(n)
		case KHeading:
			err = v.VisitHeading(n)
		case KParagraph:
			err = v.VisitParagraph(n)
		case KAlert:
			err = v.VisitAlert(n)
		}
	}

	if errors.Is(err, SkipChildren) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, child := range children {
		if err := Walk(v, child); err != nil {
			return err
		}
	}

	return nil
}

// BaseVisitor implements Visitor with no-op methods that continue
// traversal; embed it to override only the node kinds a concrete visitor
// cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitDocument(*Container) error  { return nil }
func (BaseVisitor) VisitQuote(*Container) error     { return nil }
func (BaseVisitor) VisitList(*Container) error      { return nil }
func (BaseVisitor) VisitListItem(*Container) error  { return nil }
func (BaseVisitor) VisitTable(*Container) error     { return nil }
func (BaseVisitor) VisitBreak(*Leaf) error           { return nil }
func (BaseVisitor) VisitCode(*Leaf) error            { return nil }
func (BaseVisitor) VisitHeading(*Leaf) error          { return nil }
func (BaseVisitor) VisitParagraph(*Leaf) error        { return nil }
func (BaseVisitor) VisitAlert(*Leaf) error            { return nil }
