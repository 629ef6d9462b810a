package xml

// Comment is a node whose StrPair holds the raw text between <!-- and
// --> (spec.md §3).
type Comment struct {
	baseNode
}

func (c *Comment) Type() NodeType    { return NodeComment }
func (c *Comment) ToComment() *Comment { return c }

func (c *Comment) Value() string { return c.value.getStr() }

func (c *Comment) SetValue(s string) {
	c.value.setOwned(s, 0)
}

func (c *Comment) Accept(v Visitor) bool {
	return v.VisitComment(c)
}

func (c *Comment) shallowEqual(other Node) bool {
	o := other.ToComment()
	return o != nil && o.Value() == c.Value()
}

func (c *Comment) deepClone(target *Document) Node {
	clone := target.newComment()
	clone.value.setOwned(c.Value(), 0)
	clone.line = c.line
	return clone
}

func (c *Comment) freeSelf() {
	c.doc.commentPool.release(c)
}
