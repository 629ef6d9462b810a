package xml

// WhitespaceMode controls whether Text content is collapsed on read,
// configured once at Document construction (spec.md §6).
type WhitespaceMode int

const (
	PreserveWhitespace WhitespaceMode = iota
	CollapseWhitespace
)

// defaultElementDepth is the nesting ceiling named in spec.md §3
// invariant 6 and GLOSSARY ("Depth ceiling").
const defaultElementDepth = 100

// BoolStrings holds the true/false strings used by ToBool's reverse
// (formatting) direction: Document.FormatBool, and through it
// Element.SetBoolAttribute. Scoped per-Document rather than a package-level mutable pair
// — spec.md §9's design note flags the original's global configurator
// as a hazard; this is how it's avoided.
type BoolStrings struct {
	True  string
	False string
}

var defaultBoolStrings = BoolStrings{True: "true", False: "false"}

// Document is the tree root and the owner of every node and attribute
// allocated while parsing it (spec.md §3). It is itself a Node (its
// Type is NodeDocument), mirroring tinyxml2's XMLDocument, which is
// itself an XMLNode subclass.
type Document struct {
	baseNode

	buf []byte

	bom            bool
	whitespaceMode WhitespaceMode
	processEntities bool
	boolStrings    BoolStrings

	parseLine int
	depth     int

	err *Error

	// unlinked holds nodes allocated from this Document's pools that
	// are not currently attached to the tree (spec.md §3 invariant 3,
	// GLOSSARY "Unlinked set"). They must still be freed on Clear.
	unlinked map[Node]struct{}

	elementPool     pool[Element]
	attributePool   pool[Attribute]
	textPool        pool[Text]
	commentPool     pool[Comment]
	declarationPool pool[Declaration]
	unknownPool     pool[Unknown]
}

// NewDocument constructs an empty Document ready to Parse. Entity
// processing defaults on; whitespace defaults to preserved.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{
		whitespaceMode:  PreserveWhitespace,
		processEntities: true,
		boolStrings:     defaultBoolStrings,
		unlinked:        make(map[Node]struct{}),
	}
	d.doc = d
	d.self = d
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DocumentOption configures a Document at construction time.
type DocumentOption func(*Document)

// WithWhitespaceMode sets the collapse/preserve policy (spec.md §6).
func WithWhitespaceMode(mode WhitespaceMode) DocumentOption {
	return func(d *Document) { d.whitespaceMode = mode }
}

// WithEntityProcessing toggles entity decoding globally (spec.md §6).
func WithEntityProcessing(enabled bool) DocumentOption {
	return func(d *Document) { d.processEntities = enabled }
}

// WithBoolStrings overrides the true/false formatting strings used by
// this Document's FormatBool (and so by Element.SetBoolAttribute).
func WithBoolStrings(strs BoolStrings) DocumentOption {
	return func(d *Document) { d.boolStrings = strs }
}

func (d *Document) Type() NodeType { return NodeDocument }

func (d *Document) Accept(v Visitor) bool {
	if !v.VisitDocumentEnter(d) {
		return v.VisitDocumentExit(d)
	}
	for c := d.firstChild; c != nil; c = c.NextSibling() {
		if !c.Accept(v) {
			break
		}
	}
	return v.VisitDocumentExit(d)
}

func (d *Document) shallowEqual(other Node) bool {
	_, ok := other.(*Document)
	return ok
}

func (d *Document) deepClone(target *Document) Node {
	panic("xml: Document cannot be cloned as a child node")
}

func (d *Document) parseSelf(ctx *parseContext, parentEndTag *strPair) error {
	panic("xml: Document has no parseSelf; use Parse")
}

func (d *Document) freeSelf() {
	panic("xml: Document cannot be freed as a child node")
}

func (d *Document) noteLinked(n Node)   { delete(d.unlinked, n) }
func (d *Document) noteUnlinked(n Node) { d.unlinked[n] = struct{}{} }
func (d *Document) forgetUnlinked(n Node) { delete(d.unlinked, n) }

// FormatBool renders v using this Document's configured true/false
// strings (spec.md §6, §9's note on scoping what used to be a global).
func (d *Document) FormatBool(v bool) string {
	if v {
		return d.boolStrings.True
	}
	return d.boolStrings.False
}

// HasError reports whether this Document's latched error state is set
// (spec.md §7: at most one error is latched per parse).
func (d *Document) HasError() bool { return d.err != nil }

// LastError returns the latched parse error, or nil if none occurred.
func (d *Document) LastError() *Error { return d.err }

func (d *Document) setError(id ErrorID, line int, detail string) {
	if d.err != nil {
		// First error wins; preserve the root cause (spec.md §7).
		return
	}
	d.err = newError(id, line, detail)
}

// RootElement returns the Document's single top-level Element, or nil
// if none was parsed (e.g. the document is empty or errored before any
// element was seen).
func (d *Document) RootElement() *Element {
	return d.FirstChildElement("")
}

// Clear destroys every child and unlinked node, releases the parse
// buffer, resets all pools, and clears the latched error (spec.md §3
// Lifecycle).
func (d *Document) Clear() {
	d.DeleteChildren()
	for n := range d.unlinked {
		n.freeSelf()
	}
	d.unlinked = make(map[Node]struct{})
	d.elementPool.clear()
	d.attributePool.clear()
	d.textPool.clear()
	d.commentPool.clear()
	d.declarationPool.clear()
	d.unknownPool.clear()
	d.buf = nil
	d.err = nil
	d.parseLine = 0
	d.depth = 0
}

// newElement/newText/... allocate a block from the matching pool,
// construct the node in place, and wire its self/doc back-pointers.
func (d *Document) newElement() *Element {
	e := d.elementPool.alloc()
	e.doc = d
	e.self = e
	return e
}

func (d *Document) newAttribute() *Attribute {
	a := d.attributePool.alloc()
	a.doc = d
	return a
}

func (d *Document) newText() *Text {
	t := d.textPool.alloc()
	t.doc = d
	t.self = t
	return t
}

func (d *Document) newComment() *Comment {
	c := d.commentPool.alloc()
	c.doc = d
	c.self = c
	return c
}

func (d *Document) newDeclaration() *Declaration {
	decl := d.declarationPool.alloc()
	decl.doc = d
	decl.self = decl
	return decl
}

func (d *Document) newUnknown() *Unknown {
	u := d.unknownPool.alloc()
	u.doc = d
	u.self = u
	return u
}

// Parse parses buf in place as the Document's new content, replacing
// any prior content (spec.md §4.4 Parser entry point). Parsing does
// not write to buf: node names and values keep borrowed ranges of it
// and are decoded into fresh strings on first read, so the caller must
// not modify buf while the Document is in use (until Clear is called).
func (d *Document) Parse(buf []byte) error {
	d.Clear()
	d.buf = buf
	d.parseLine = 1

	cursor := 0
	if hasBOM(buf) {
		d.bom = true
		cursor = len(utf8ByteOrderMark)
	}
	cursor = skipWhiteSpace(buf, cursor, &d.parseLine)

	if cursor >= len(buf) {
		d.setError(ErrEmptyDocument, d.parseLine, "")
		return d.err
	}

	ctx := &parseContext{doc: d, buf: buf, cursor: cursor, line: d.parseLine}
	if err := parseChildren(ctx, d, nil); err != nil {
		d.teardownOnError()
		return d.err
	}
	d.parseLine = ctx.line
	return nil
}

// teardownOnError tears down the partial tree after a parse failure,
// per spec.md §7: children are deleted and all pools are cleared, but
// the latched error itself is preserved.
func (d *Document) teardownOnError() {
	savedErr := d.err
	d.DeleteChildren()
	for n := range d.unlinked {
		n.freeSelf()
	}
	d.unlinked = make(map[Node]struct{})
	d.elementPool.clear()
	d.attributePool.clear()
	d.textPool.clear()
	d.commentPool.clear()
	d.declarationPool.clear()
	d.unknownPool.clear()
	d.err = savedErr
}

// skipWhiteSpace advances cursor past leading XML whitespace, counting
// newlines into *line as it goes.
func skipWhiteSpace(buf []byte, cursor int, line *int) int {
	for cursor < len(buf) && isWhiteSpace(buf[cursor]) {
		if buf[cursor] == '\n' {
			*line++
		}
		cursor++
	}
	return cursor
}

// String renders the Document with the default (non-compact) printer
// settings — a convenience wrapper over Printer, analogous to
// tinyxml2's Print()/Accept(printer) pair.
func (d *Document) String() string {
	p := NewPrinter(PrinterOptions{Compact: false, BoolStrings: d.boolStrings})
	d.Accept(p)
	return p.String()
}

// CompactString renders the Document with all insignificant whitespace
// stripped.
func (d *Document) CompactString() string {
	p := NewPrinter(PrinterOptions{Compact: true, BoolStrings: d.boolStrings})
	d.Accept(p)
	return p.String()
}

