package xml

import (
	"strings"
	"testing"
)

// treeEqual recursively compares two trees node-by-node using each
// variant's shallowEqual plus sibling/child structure, since
// shallowEqual alone (spec.md §4.3) never descends into children.
func treeEqual(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.shallowEqual(b) {
		return false
	}
	ac, bc := a.FirstChild(), b.FirstChild()
	for ac != nil && bc != nil {
		if !treeEqual(ac, bc) {
			return false
		}
		ac, bc = ac.NextSibling(), bc.NextSibling()
	}
	return ac == nil && bc == nil
}

// Property 1: parse(print(parse(D))) is shallow-equal (recursively) to
// parse(D), modulo insignificant whitespace — sidestepped here by
// comparing against a compact round trip, which drops the whitespace
// that would otherwise differ.
func TestPropertyRoundTrip(t *testing.T) {
	const src = `<root a="1"><child b="x">hello</child><child b="y"/><!--note--></root>`

	first := NewDocument()
	if err := first.Parse([]byte(src)); err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	printed := first.CompactString()

	second := NewDocument()
	if err := second.Parse([]byte(printed)); err != nil {
		t.Fatalf("second Parse: %v", err)
	}

	third := NewDocument()
	if err := third.Parse([]byte(printed)); err != nil {
		t.Fatalf("third Parse: %v", err)
	}

	if !treeEqual(first, second) || !treeEqual(second, third) {
		t.Fatalf("round-tripped trees differ:\n%s\nvs\n%s", first.CompactString(), second.CompactString())
	}
}

// Property 2: every parsed node's stored line matches the 1-based line
// of its first significant character.
func TestPropertyLineNumbers(t *testing.T) {
	src := "<root>\n  <a/>\n  <b>\n    text\n  </b>\n</root>"
	doc := NewDocument()
	if err := doc.Parse([]byte(src)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := doc.RootElement()
	if root.Line() != 1 {
		t.Fatalf("root line = %d, want 1", root.Line())
	}
	a := root.FirstChildElement("a")
	if a == nil || a.Line() != 2 {
		t.Fatalf("a line = %v, want 2", a)
	}
	b := a.NextSiblingElement("b")
	if b == nil || b.Line() != 3 {
		t.Fatalf("b line = %v, want 3", b)
	}
}

// Property 3: parse(print(X)) of text containing all five special
// characters yields text byte-equal to X.
func TestPropertyEntityIdempotence(t *testing.T) {
	const original = `& < > " '`

	doc := NewDocument()
	if err := doc.Parse([]byte(`<r/>`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	doc.RootElement().SetText(original)
	printed := doc.String()

	reparsed := NewDocument()
	if err := reparsed.Parse([]byte(printed)); err != nil {
		t.Fatalf("reparse: %v (printed = %q)", err, printed)
	}
	if got := reparsed.RootElement().Text(); got != original {
		t.Fatalf("Text() = %q, want %q (printed = %q)", got, original, printed)
	}
}

// Property 4: CDATA content is emitted back as CDATA, never
// entity-escaped, even when it contains characters that would
// otherwise require escaping.
func TestPropertyCDataPreservation(t *testing.T) {
	doc := NewDocument()
	if err := doc.Parse([]byte(`<r><![CDATA[<x> & "y"]]></r>`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	txt := doc.RootElement().FirstChild().ToText()
	if txt == nil || !txt.CData() {
		t.Fatal("expected a CDATA text child")
	}
	if got, want := txt.Value(), `<x> & "y"`; got != want {
		t.Fatalf("Value() = %q, want %q", got, want)
	}

	out := doc.String()
	if !strings.Contains(out, "<![CDATA[<x> & \"y\"]]>") {
		t.Fatalf("printed output lost CDATA wrapper or escaped it: %q", out)
	}
}

// Property 5: nesting past the depth ceiling produces
// ELEMENT_DEPTH_EXCEEDED without panicking.
func TestPropertyDepthCeilingExceeded(t *testing.T) {
	var b strings.Builder
	depth := defaultElementDepth + 10
	for i := 0; i < depth; i++ {
		b.WriteString("<e>")
	}
	for i := 0; i < depth; i++ {
		b.WriteString("</e>")
	}

	doc := NewDocument()
	err := doc.Parse([]byte(b.String()))
	if err == nil {
		t.Fatal("expected ELEMENT_DEPTH_EXCEEDED, got nil")
	}
	xerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error is %T, want *Error", err)
	}
	if xerr.ID != ErrElementDepthExceeded {
		t.Fatalf("ID = %v, want ErrElementDepthExceeded", xerr.ID)
	}
}

// Property 6: duplicated attribute names produce PARSING_ATTRIBUTE at
// the offending line.
func TestPropertyAttributeUniqueness(t *testing.T) {
	doc := NewDocument()
	err := doc.Parse([]byte("<r\n  a=\"1\"\n  a=\"2\"/>"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	xerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error is %T, want *Error", err)
	}
	if xerr.ID != ErrParsingAttribute {
		t.Fatalf("ID = %v, want ErrParsingAttribute", xerr.ID)
	}
	if xerr.Line != 3 {
		t.Fatalf("Line = %d, want 3", xerr.Line)
	}
}

// Property 7: inserting a node built by one Document into another
// returns nil and leaves both trees unchanged.
func TestPropertySameDocumentInvariant(t *testing.T) {
	a := NewDocument()
	if err := a.Parse([]byte(`<root/>`)); err != nil {
		t.Fatalf("a.Parse: %v", err)
	}
	b := NewDocument()
	if err := b.Parse([]byte(`<other/>`)); err != nil {
		t.Fatalf("b.Parse: %v", err)
	}

	foreignRoot := b.RootElement()
	aRootBefore := a.RootElement()
	bRootBefore := b.RootElement()

	result := a.InsertEndChild(foreignRoot)
	if result != nil {
		t.Fatalf("InsertEndChild across documents = %v, want nil", result)
	}
	if a.RootElement() != aRootBefore {
		t.Fatal("a's tree was mutated by a rejected cross-document insert")
	}
	if b.RootElement() != bRootBefore {
		t.Fatal("b's tree was mutated by a rejected cross-document insert")
	}
	if foreignRoot.Parent() != Node(b) {
		t.Fatal("foreign node's parent changed after a rejected cross-document insert")
	}
}
