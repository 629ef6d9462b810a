package xml

// Unknown is a node whose StrPair holds the raw text between <! and >
// (spec.md §3) — it captures content this engine deliberately does not
// understand, such as DOCTYPE declarations.
type Unknown struct {
	baseNode
}

func (u *Unknown) Type() NodeType      { return NodeUnknown }
func (u *Unknown) ToUnknown() *Unknown { return u }

func (u *Unknown) Value() string { return u.value.getStr() }

func (u *Unknown) SetValue(s string) {
	u.value.setOwned(s, 0)
}

func (u *Unknown) Accept(v Visitor) bool {
	return v.VisitUnknown(u)
}

func (u *Unknown) shallowEqual(other Node) bool {
	o := other.ToUnknown()
	return o != nil && o.Value() == u.Value()
}

func (u *Unknown) deepClone(target *Document) Node {
	clone := target.newUnknown()
	clone.value.setOwned(u.Value(), 0)
	clone.line = u.line
	return clone
}

func (u *Unknown) freeSelf() {
	u.doc.unknownPool.release(u)
}
