package xml

// Text is a node whose StrPair holds character data. When cdata is
// set, parsing terminates on "]]>" instead of "<" and the printer
// emits it back wrapped in <![CDATA[ ... ]]> without entity escaping
// (spec.md §3, GLOSSARY "CDATA").
type Text struct {
	baseNode
	cdata bool
}

func (t *Text) Type() NodeType { return NodeText }
func (t *Text) ToText() *Text  { return t }

// Value returns the text's (already-decoded) content.
func (t *Text) Value() string { return t.value.getStr() }

// SetValue replaces the text content, taking ownership of a private
// copy (no longer backed by the parse buffer).
func (t *Text) SetValue(s string) {
	t.value.setOwned(s, 0)
}

// CData reports whether this Text node is a CDATA section.
func (t *Text) CData() bool { return t.cdata }

// SetCData toggles the CDATA flag.
func (t *Text) SetCData(v bool) { t.cdata = v }

func (t *Text) Accept(v Visitor) bool {
	return v.VisitText(t)
}

func (t *Text) shallowEqual(other Node) bool {
	o := other.ToText()
	return o != nil && o.cdata == t.cdata && o.Value() == t.Value()
}

func (t *Text) deepClone(target *Document) Node {
	clone := target.newText()
	clone.value.setOwned(t.Value(), 0)
	clone.cdata = t.cdata
	clone.line = t.line
	return clone
}

func (t *Text) freeSelf() {
	t.doc.textPool.release(t)
}
