package xml

// ClosingType distinguishes how an Element's tag was (or is being)
// closed (spec.md §3, GLOSSARY "Closing type").
type ClosingType int

const (
	// Open is a normal element with a separate close tag: <t>...</t>.
	Open ClosingType = iota
	// Closed is a self-closing element: <t/>.
	Closed
	// Closing is the transient marker produced by a lone </t> token on
	// its way back up to the parent that is waiting for it; it is
	// never inserted into the tree.
	Closing
)

// Element is a node whose StrPair holds the tag name. It owns a
// singly linked list of Attributes and carries a ClosingType.
type Element struct {
	baseNode

	closingType   ClosingType
	firstAttribute *Attribute
}

func (e *Element) Type() NodeType     { return NodeElement }
func (e *Element) ToElement() *Element { return e }

// Name returns the element's tag name.
func (e *Element) Name() string { return e.value.getStr() }

// SetName renames the element in place, taking ownership of a private
// copy of name (it is no longer backed by the parse buffer).
func (e *Element) SetName(name string) {
	e.value.setOwned(name, 0)
}

// Closing reports how this element's tag was closed: Open for
// <t>...</t>, Closed for a self-closed <t/>.
func (e *Element) Closing() ClosingType { return e.closingType }

// FirstAttribute returns the head of this element's attribute chain,
// or nil if it has none.
func (e *Element) FirstAttribute() *Attribute { return e.firstAttribute }

// Attribute looks up an attribute by name, returning nil if absent.
func (e *Element) Attribute(name string) *Attribute {
	for a := e.firstAttribute; a != nil; a = a.next {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// AttributeValue returns an attribute's value and whether it was
// present (spec.md §7 query_* contract: NO_ATTRIBUTE is reported by
// the error-returning variants, not this convenience accessor).
func (e *Element) AttributeValue(name string) (string, bool) {
	a := e.Attribute(name)
	if a == nil {
		return "", false
	}
	return a.Value(), true
}

// AttributeValueOr returns the named attribute's value, or def if the
// attribute is absent — the "swallow all errors" accessor spec.md §7
// describes for *_attribute(name, default).
func (e *Element) AttributeValueOr(name, def string) string {
	if v, ok := e.AttributeValue(name); ok {
		return v
	}
	return def
}

// QueryAttribute returns the named attribute's value and SUCCESS, or
// (zero, NO_ATTRIBUTE) if absent — the non-swallowing accessor spec.md
// §7 describes.
func (e *Element) QueryAttribute(name string) (string, ErrorID) {
	a := e.Attribute(name)
	if a == nil {
		return "", ErrNoAttribute
	}
	return a.Value(), NoError
}

// QueryIntAttribute, QueryBoolAttribute, ... apply the typed-conversion
// contract to a named attribute, reporting NO_ATTRIBUTE or
// WRONG_ATTRIBUTE_TYPE as appropriate (spec.md §7).
func (e *Element) QueryIntAttribute(name string) (int, ErrorID) {
	a := e.Attribute(name)
	if a == nil {
		return 0, ErrNoAttribute
	}
	v, err := a.IntValue()
	if err != nil {
		return 0, ErrWrongAttributeType
	}
	return v, NoError
}

func (e *Element) QueryBoolAttribute(name string) (bool, ErrorID) {
	a := e.Attribute(name)
	if a == nil {
		return false, ErrNoAttribute
	}
	v, err := a.BoolValue()
	if err != nil {
		return false, ErrWrongAttributeType
	}
	return v, NoError
}

func (e *Element) QueryDoubleAttribute(name string) (float64, ErrorID) {
	a := e.Attribute(name)
	if a == nil {
		return 0, ErrNoAttribute
	}
	v, err := a.DoubleValue()
	if err != nil {
		return 0, ErrWrongAttributeType
	}
	return v, NoError
}

// IntAttribute, BoolAttribute, ... swallow every error and return def
// (spec.md §7: "*_attribute(name, default) swallows all three").
func (e *Element) IntAttribute(name string, def int) int {
	v, id := e.QueryIntAttribute(name)
	if id != NoError {
		return def
	}
	return v
}

func (e *Element) BoolAttribute(name string, def bool) bool {
	v, id := e.QueryBoolAttribute(name)
	if id != NoError {
		return def
	}
	return v
}

func (e *Element) DoubleAttribute(name string, def float64) float64 {
	v, id := e.QueryDoubleAttribute(name)
	if id != NoError {
		return def
	}
	return v
}

// SetAttribute inserts or updates (by name) an attribute, appending a
// new one at the end of the chain if absent. Idempotent by name, as
// spec.md §3 invariant 4 requires of post-construction mutation (only
// parse-time duplicate names are rejected, in Element.parseSelf).
func (e *Element) SetAttribute(name, value string) *Attribute {
	if a := e.Attribute(name); a != nil {
		a.setValueOwned(value)
		return a
	}
	a := e.doc.newAttribute()
	a.setNameOwned(name)
	a.setValueOwned(value)
	if e.firstAttribute == nil {
		e.firstAttribute = a
		return a
	}
	last := e.firstAttribute
	for last.next != nil {
		last = last.next
	}
	last.next = a
	return a
}

// SetIntAttribute, SetUnsignedAttribute, ... apply the reverse
// (formatting) direction of the typed-conversion contract (spec.md §6),
// storing the canonical textual form SetAttribute would otherwise
// require the caller to produce by hand.
func (e *Element) SetIntAttribute(name string, v int) *Attribute {
	return e.SetAttribute(name, FormatInt(v))
}

func (e *Element) SetUnsignedAttribute(name string, v uint) *Attribute {
	return e.SetAttribute(name, FormatUnsigned(v))
}

func (e *Element) SetInt64Attribute(name string, v int64) *Attribute {
	return e.SetAttribute(name, FormatInt64(v))
}

func (e *Element) SetUint64Attribute(name string, v uint64) *Attribute {
	return e.SetAttribute(name, FormatUint64(v))
}

// SetBoolAttribute formats v with this element's owning Document's
// configured true/false strings, not the package-level default (spec.md
// §9's note on scoping what used to be a process-wide global).
func (e *Element) SetBoolAttribute(name string, v bool) *Attribute {
	return e.SetAttribute(name, e.doc.FormatBool(v))
}

func (e *Element) SetFloatAttribute(name string, v float32) *Attribute {
	return e.SetAttribute(name, FormatFloat(v))
}

func (e *Element) SetDoubleAttribute(name string, v float64) *Attribute {
	return e.SetAttribute(name, FormatDouble(v))
}

// DeleteAttribute removes the named attribute from the chain and
// returns its block to the pool. No-op if absent.
func (e *Element) DeleteAttribute(name string) {
	var prev *Attribute
	for a := e.firstAttribute; a != nil; a = a.next {
		if a.Name() == name {
			if prev == nil {
				e.firstAttribute = a.next
			} else {
				prev.next = a.next
			}
			e.doc.attributePool.release(a)
			return
		}
		prev = a
	}
}

// Text returns the value of this element's first child when that child
// is a Text node, or "" otherwise (no later Text children are looked
// at) — mirroring tinyxml2's GetText().
func (e *Element) Text() string {
	if t := e.firstChild; t != nil {
		if txt := t.ToText(); txt != nil {
			return txt.Value()
		}
	}
	return ""
}

// SetText replaces (or creates) this element's first Text child with
// the given content.
func (e *Element) SetText(s string) {
	if t := e.firstChild; t != nil {
		if txt := t.ToText(); txt != nil {
			txt.SetValue(s)
			return
		}
	}
	t := e.doc.newText()
	t.SetValue(s)
	e.InsertFirstChild(t)
}

func (e *Element) Accept(v Visitor) bool {
	if v.VisitElementEnter(e, e.firstAttribute) {
		for c := e.firstChild; c != nil; c = c.NextSibling() {
			if !c.Accept(v) {
				break
			}
		}
	}
	return v.VisitElementExit(e)
}

func (e *Element) shallowEqual(other Node) bool {
	o := other.ToElement()
	if o == nil || o.Name() != e.Name() {
		return false
	}
	// Attribute comparison is order-sensitive, a documented design
	// choice (spec.md §4.3): pairwise compare in chain order.
	a, b := e.firstAttribute, o.firstAttribute
	for a != nil && b != nil {
		if a.Name() != b.Name() || a.Value() != b.Value() {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

func (e *Element) deepClone(target *Document) Node {
	clone := target.newElement()
	clone.value.setOwned(e.Name(), 0)
	clone.closingType = e.closingType
	clone.line = e.line
	for a := e.firstAttribute; a != nil; a = a.next {
		clone.SetAttribute(a.Name(), a.Value())
	}
	for c := e.firstChild; c != nil; c = c.NextSibling() {
		clone.InsertEndChild(c.deepClone(target))
	}
	return clone
}

func (e *Element) freeSelf() {
	for a := e.firstAttribute; a != nil; {
		next := a.next
		e.doc.attributePool.release(a)
		a = next
	}
	e.firstAttribute = nil
	e.doc.elementPool.release(e)
}
