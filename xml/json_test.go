package xml

import (
	"encoding/json"
	"testing"
)

func TestToMapAttributesAndText(t *testing.T) {
	doc := NewDocument()
	if err := doc.Parse([]byte(`<r a="1">hello</r>`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := doc.RootElement().ToMap()
	if m["@a"] != "1" {
		t.Fatalf(`m["@a"] = %v, want "1"`, m["@a"])
	}
	if m["#text"] != "hello" {
		t.Fatalf(`m["#text"] = %v, want "hello"`, m["#text"])
	}
}

func TestToMapRepeatedChildrenCollapseToArray(t *testing.T) {
	doc := NewDocument()
	if err := doc.Parse([]byte(`<r><item>a</item><item>b</item></r>`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := doc.RootElement().ToMap()
	items, ok := m["item"].([]any)
	if !ok {
		t.Fatalf("m[\"item\"] is %T, want []any", m["item"])
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
}

func TestToMapSingleChildStaysBareMap(t *testing.T) {
	doc := NewDocument()
	if err := doc.Parse([]byte(`<r><item>a</item></r>`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := doc.RootElement().ToMap()
	if _, ok := m["item"].(map[string]any); !ok {
		t.Fatalf("m[\"item\"] is %T, want map[string]any", m["item"])
	}
}

func TestToJSONNoRoot(t *testing.T) {
	doc := NewDocument()
	out, err := doc.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("ToJSON() = %q, want null", out)
	}
}

func TestToJSONMarshalsValidJSON(t *testing.T) {
	doc := NewDocument()
	if err := doc.Parse([]byte(`<r a="1"><item>a</item><item>b</item></r>`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := doc.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v (out = %s)", err, out)
	}
	if _, ok := decoded["r"]; !ok {
		t.Fatalf("decoded missing root key, got %v", decoded)
	}
}
