package xml

import "encoding/json"

// ToMap renders an Element subtree as a generic any value suitable for
// json.Marshal: attributes become "@name" keys, a lone text child
// becomes "#text", and repeated child tag names collapse into a JSON
// array — the same shape-inference tradeoff the teacher's OrderedMap
// JSON export makes, adapted here for this engine's typed tree instead
// of an order-preserving map.
func (e *Element) ToMap() map[string]any {
	out := make(map[string]any)

	for a := e.firstAttribute; a != nil; a = a.next {
		out["@"+a.Name()] = a.Value()
	}

	counts := make(map[string]int)
	for c := e.firstChild; c != nil; c = c.NextSibling() {
		if child := c.ToElement(); child != nil {
			counts[child.Name()]++
		}
	}

	for c := e.firstChild; c != nil; c = c.NextSibling() {
		switch {
		case c.ToElement() != nil:
			child := c.ToElement()
			val := child.ToMap()
			if counts[child.Name()] > 1 {
				existing, _ := out[child.Name()].([]any)
				out[child.Name()] = append(existing, val)
			} else {
				out[child.Name()] = val
			}
		case c.ToText() != nil:
			if txt := c.ToText().Value(); txt != "" {
				if existing, ok := out["#text"].(string); ok {
					out["#text"] = existing + txt
				} else {
					out["#text"] = txt
				}
			}
		}
	}

	return out
}

// ToJSON marshals the Document's root element as JSON via ToMap.
// Returns "null" if the Document has no root element.
func (d *Document) ToJSON() ([]byte, error) {
	root := d.RootElement()
	if root == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]any{root.Name(): root.ToMap()})
}
