package xml

// NodeType distinguishes the node variants named in spec.md §3. A
// Document is also a Node (the tree root) so it gets its own variant
// tag even though it is never returned by Identify.
type NodeType int

const (
	NodeDocument NodeType = iota
	NodeElement
	NodeText
	NodeComment
	NodeDeclaration
	NodeUnknown
)

func (t NodeType) String() string {
	switch t {
	case NodeDocument:
		return "Document"
	case NodeElement:
		return "Element"
	case NodeText:
		return "Text"
	case NodeComment:
		return "Comment"
	case NodeDeclaration:
		return "Declaration"
	case NodeUnknown:
		return "Unknown"
	default:
		return "Unknown(?)"
	}
}

// Node is the common capability of every tree member: Document,
// Element, Text, Comment, Declaration, Unknown. Rather than a C++-style
// class hierarchy, each variant is a distinct Go struct embedding
// baseNode; Node is the interface that lets tree-splicing code (in this
// file) and the visitor/printer operate uniformly over any of them.
type Node interface {
	Document() *Document
	Parent() Node
	FirstChild() Node
	LastChild() Node
	PreviousSibling() Node
	NextSibling() Node
	Type() NodeType
	Line() int

	ToElement() *Element
	ToText() *Text
	ToComment() *Comment
	ToDeclaration() *Declaration
	ToUnknown() *Unknown

	Accept(v Visitor) bool

	InsertEndChild(child Node) Node
	InsertFirstChild(child Node) Node
	InsertAfterChild(ref, child Node) Node
	DeleteChild(child Node)
	Unlink(child Node)
	DeleteChildren()

	FirstChildElement(name string) *Element
	LastChildElement(name string) *Element
	PreviousSiblingElement(name string) *Element
	NextSiblingElement(name string) *Element

	// unexported: internal plumbing only implementable within this package.
	setParent(Node)
	setPrevSibling(Node)
	setNextSibling(Node)
	setFirstChild(Node)
	setLastChild(Node)
	shallowEqual(other Node) bool
	deepClone(target *Document) Node
	parseSelf(ctx *parseContext, parentEndTag *strPair) error
	freeSelf()
}

// baseNode carries the fields every variant shares: document back
// reference, tree links, the per-variant StrPair value, the parse
// line, and an opaque user-data slot (spec.md §3 invariant 1-3).
type baseNode struct {
	doc    *Document
	parent Node

	prevSibling Node
	nextSibling Node
	firstChild  Node
	lastChild   Node

	value strPair
	line  int

	userData any

	// self is the concrete Node value baseNode is embedded in. Go has
	// no virtual dispatch through embedding, so tree-splicing methods
	// that need to pass "this node" around as a Node interface value
	// (to set a sibling's prev/next pointer, say) go through self
	// rather than trying to reconstruct it. Every constructor sets it
	// immediately after allocating the concrete struct.
	self Node
}

func (n *baseNode) Document() *Document       { return n.doc }
func (n *baseNode) Parent() Node              { return n.parent }
func (n *baseNode) FirstChild() Node          { return n.firstChild }
func (n *baseNode) LastChild() Node           { return n.lastChild }
func (n *baseNode) PreviousSibling() Node     { return n.prevSibling }
func (n *baseNode) NextSibling() Node         { return n.nextSibling }
func (n *baseNode) Line() int                 { return n.line }
func (n *baseNode) UserData() any             { return n.userData }
func (n *baseNode) SetUserData(v any)         { n.userData = v }

func (n *baseNode) setParent(p Node)      { n.parent = p }
func (n *baseNode) setPrevSibling(s Node) { n.prevSibling = s }
func (n *baseNode) setNextSibling(s Node) { n.nextSibling = s }
func (n *baseNode) setFirstChild(c Node)  { n.firstChild = c }
func (n *baseNode) setLastChild(c Node)   { n.lastChild = c }

// ToElement/ToText/... default to nil; each concrete variant overrides
// the one matching its own kind (see element.go, text.go, ...).
func (n *baseNode) ToElement() *Element         { return nil }
func (n *baseNode) ToText() *Text               { return nil }
func (n *baseNode) ToComment() *Comment         { return nil }
func (n *baseNode) ToDeclaration() *Declaration { return nil }
func (n *baseNode) ToUnknown() *Unknown         { return nil }

// --- tree splicing (spec.md §4.3) -----------------------------------

// InsertEndChild detaches child from wherever it currently lives and
// appends it as the last child of n. Returns nil if child belongs
// to a different Document (spec.md §3 invariant 1, §8 property 7).
func (n *baseNode) InsertEndChild(child Node) Node {
	parent := n.self
	if child.Document() != parent.Document() {
		return nil
	}
	detach(child)
	child.setParent(parent)
	child.setPrevSibling(parent.LastChild())
	child.setNextSibling(nil)
	if parent.LastChild() != nil {
		parent.LastChild().setNextSibling(child)
	} else {
		parent.setFirstChild(child)
	}
	parent.setLastChild(child)
	parent.Document().noteLinked(child)
	return child
}

// InsertFirstChild is InsertEndChild's mirror image for the head of
// the sibling list.
func (n *baseNode) InsertFirstChild(child Node) Node {
	parent := n.self
	if child.Document() != parent.Document() {
		return nil
	}
	detach(child)
	child.setParent(parent)
	child.setNextSibling(parent.FirstChild())
	child.setPrevSibling(nil)
	if parent.FirstChild() != nil {
		parent.FirstChild().setPrevSibling(child)
	} else {
		parent.setLastChild(child)
	}
	parent.setFirstChild(child)
	parent.Document().noteLinked(child)
	return child
}

// InsertAfterChild splices child in immediately after ref, which must
// already be a child of n. ref == child is defined as a no-op
// that returns child unchanged (spec.md §4.3); inserting after the
// last child degenerates to InsertEndChild.
func (n *baseNode) InsertAfterChild(ref, child Node) Node {
	parent := n.self
	if ref == child {
		return child
	}
	if child.Document() != parent.Document() {
		return nil
	}
	if ref.NextSibling() == nil {
		return parent.InsertEndChild(child)
	}
	detach(child)
	child.setParent(parent)
	child.setPrevSibling(ref)
	child.setNextSibling(ref.NextSibling())
	ref.NextSibling().setPrevSibling(child)
	ref.setNextSibling(child)
	parent.Document().noteLinked(child)
	return child
}

// Unlink removes child from the sibling list it is part of and clears
// its parent pointer, without freeing it. The caller owns child again
// afterward and must either reinsert it or delete it (spec.md §4.3).
func (n *baseNode) Unlink(child Node) {
	if child.Parent() != n.self {
		return
	}
	detach(child)
	child.Document().noteUnlinked(child)
}

// detach performs the pure sibling-list surgery shared by Unlink and
// every Insert* (which must detach before splicing elsewhere).
func detach(child Node) {
	parent := child.Parent()
	if parent == nil {
		return
	}
	if child.PreviousSibling() != nil {
		child.PreviousSibling().setNextSibling(child.NextSibling())
	} else {
		parent.setFirstChild(child.NextSibling())
	}
	if child.NextSibling() != nil {
		child.NextSibling().setPrevSibling(child.PreviousSibling())
	} else {
		parent.setLastChild(child.PreviousSibling())
	}
	child.setParent(nil)
	child.setPrevSibling(nil)
	child.setNextSibling(nil)
}

// DeleteChild unlinks child then returns its block (and all its
// descendants' blocks) to the owning Document's pools.
func (n *baseNode) DeleteChild(child Node) {
	if child.Parent() != n.self {
		return
	}
	detach(child)
	child.Document().forgetUnlinked(child)
	deleteRecursive(child)
}

// DeleteChildren removes and frees every child of n, leaving it
// childless. Used by Document.Clear and by the Document's teardown
// after a parse error.
func (n *baseNode) DeleteChildren() {
	deleteChildrenOf(n.self)
}

func deleteRecursive(n Node) {
	for c := n.FirstChild(); c != nil; {
		next := c.NextSibling()
		deleteRecursive(c)
		c = next
	}
	n.freeSelf()
}

// deleteChildrenOf removes and frees every child of parent, leaving it
// childless. The body of DeleteChildren.
func deleteChildrenOf(parent Node) {
	for c := parent.FirstChild(); c != nil; {
		next := c.NextSibling()
		c.setParent(nil)
		c.setPrevSibling(nil)
		c.setNextSibling(nil)
		deleteRecursive(c)
		c = next
	}
	parent.setFirstChild(nil)
	parent.setLastChild(nil)
}

// --- named-element sibling/child scans (spec.md §4.3) ---------------

func (n *baseNode) FirstChildElement(name string) *Element {
	for c := n.firstChild; c != nil; c = c.NextSibling() {
		if e := c.ToElement(); e != nil && (name == "" || e.Name() == name) {
			return e
		}
	}
	return nil
}

func (n *baseNode) LastChildElement(name string) *Element {
	for c := n.lastChild; c != nil; c = c.PreviousSibling() {
		if e := c.ToElement(); e != nil && (name == "" || e.Name() == name) {
			return e
		}
	}
	return nil
}

func (n *baseNode) NextSiblingElement(name string) *Element {
	for c := n.nextSibling; c != nil; c = c.NextSibling() {
		if e := c.ToElement(); e != nil && (name == "" || e.Name() == name) {
			return e
		}
	}
	return nil
}

func (n *baseNode) PreviousSiblingElement(name string) *Element {
	for c := n.prevSibling; c != nil; c = c.PreviousSibling() {
		if e := c.ToElement(); e != nil && (name == "" || e.Name() == name) {
			return e
		}
	}
	return nil
}
