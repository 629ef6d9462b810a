package xml

// Declaration is a node whose StrPair holds the raw text between <?
// and ?> (spec.md §3). It is only well-formed in the Document's
// prologue — parseChildren enforces that (parser.go).
type Declaration struct {
	baseNode
}

func (d *Declaration) Type() NodeType          { return NodeDeclaration }
func (d *Declaration) ToDeclaration() *Declaration { return d }

func (d *Declaration) Value() string { return d.value.getStr() }

func (d *Declaration) SetValue(s string) {
	d.value.setOwned(s, 0)
}

func (d *Declaration) Accept(v Visitor) bool {
	return v.VisitDeclaration(d)
}

func (d *Declaration) shallowEqual(other Node) bool {
	o := other.ToDeclaration()
	return o != nil && o.Value() == d.Value()
}

func (d *Declaration) deepClone(target *Document) Node {
	clone := target.newDeclaration()
	clone.value.setOwned(d.Value(), 0)
	clone.line = d.line
	return clone
}

func (d *Declaration) freeSelf() {
	d.doc.declarationPool.release(d)
}
