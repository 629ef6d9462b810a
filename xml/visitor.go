package xml

// Visitor is the double-dispatch traversal capability of spec.md §4.5:
// each node kind's Accept calls the matching Visit* method.
// VisitDocumentEnter and VisitElementEnter may return false to skip
// descending into children; any callback on a child node that returns
// false (including VisitElementExit) stops the traversal of that
// node's remaining siblings. Traversal is always depth-first and
// synchronous, since Exit callbacks are allowed to mutate visitor
// state (e.g. the Printer's depth counter).
type Visitor interface {
	VisitDocumentEnter(doc *Document) bool
	VisitDocumentExit(doc *Document) bool

	VisitElementEnter(elem *Element, firstAttribute *Attribute) bool
	VisitElementExit(elem *Element) bool

	VisitText(t *Text) bool
	VisitComment(c *Comment) bool
	VisitDeclaration(d *Declaration) bool
	VisitUnknown(u *Unknown) bool
}

// BaseVisitor implements Visitor with every method returning true
// (descend everywhere, never stop traversal) so callers can embed it
// and override only the callbacks they care about — the same pattern
// tinyxml2's XMLVisitor base-class default implementation offers.
type BaseVisitor struct{}

func (BaseVisitor) VisitDocumentEnter(*Document) bool                 { return true }
func (BaseVisitor) VisitDocumentExit(*Document) bool                  { return true }
func (BaseVisitor) VisitElementEnter(*Element, *Attribute) bool       { return true }
func (BaseVisitor) VisitElementExit(*Element) bool                    { return true }
func (BaseVisitor) VisitText(*Text) bool                              { return true }
func (BaseVisitor) VisitComment(*Comment) bool                        { return true }
func (BaseVisitor) VisitDeclaration(*Declaration) bool                { return true }
func (BaseVisitor) VisitUnknown(*Unknown) bool                        { return true }
