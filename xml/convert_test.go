package xml

import "testing"

func TestToIntHex(t *testing.T) {
	v, err := ToInt("0x2A")
	if err != nil {
		t.Fatalf("ToInt: %v", err)
	}
	if v != 42 {
		t.Fatalf("ToInt(0x2A) = %d, want 42", v)
	}
}

func TestToIntDecimal(t *testing.T) {
	v, err := ToInt("-7")
	if err != nil {
		t.Fatalf("ToInt: %v", err)
	}
	if v != -7 {
		t.Fatalf("ToInt(-7) = %d, want -7", v)
	}
}

func TestToIntLeadingZeroIsDecimalNotOctal(t *testing.T) {
	v, err := ToInt("010")
	if err != nil {
		t.Fatalf("ToInt(010): %v", err)
	}
	if v != 10 {
		t.Fatalf("ToInt(010) = %d, want 10 (decimal, not octal)", v)
	}

	v, err = ToInt("008")
	if err != nil {
		t.Fatalf("ToInt(008): %v", err)
	}
	if v != 8 {
		t.Fatalf("ToInt(008) = %d, want 8", v)
	}
}

func TestToBoolNumericFallthrough(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"0":     false,
		"42":    true,
		"true":  true,
		"True":  true,
		"TRUE":  true,
		"false": false,
		"False": false,
		"FALSE": false,
	}
	for in, want := range cases {
		got, err := ToBool(in)
		if err != nil {
			t.Fatalf("ToBool(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ToBool(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestToBoolInvalid(t *testing.T) {
	if _, err := ToBool("maybe"); err == nil {
		t.Fatal("expected error for non-numeric, non-table string")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	if got := FormatInt(42); got != "42" {
		t.Fatalf("FormatInt(42) = %q", got)
	}
	if got := FormatBool(true); got != "true" {
		t.Fatalf("FormatBool(true) = %q", got)
	}
	if got := FormatBool(false); got != "false" {
		t.Fatalf("FormatBool(false) = %q", got)
	}
}

func TestTypedAttributeAccessors(t *testing.T) {
	doc := NewDocument()
	if err := doc.Parse([]byte(`<r i="10" b="1" d="3.5"/>`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := doc.RootElement()

	if v, id := root.QueryIntAttribute("i"); id != NoError || v != 10 {
		t.Fatalf("QueryIntAttribute = %d, %v", v, id)
	}
	if v, id := root.QueryBoolAttribute("b"); id != NoError || v != true {
		t.Fatalf("QueryBoolAttribute = %v, %v", v, id)
	}
	if v, id := root.QueryDoubleAttribute("d"); id != NoError || v != 3.5 {
		t.Fatalf("QueryDoubleAttribute = %v, %v", v, id)
	}
	if _, id := root.QueryIntAttribute("missing"); id != ErrNoAttribute {
		t.Fatalf("QueryIntAttribute(missing) id = %v, want ErrNoAttribute", id)
	}
	if _, id := root.QueryIntAttribute("d"); id != ErrWrongAttributeType {
		t.Fatalf("QueryIntAttribute(d) id = %v, want ErrWrongAttributeType", id)
	}
	if v := root.IntAttribute("missing", -1); v != -1 {
		t.Fatalf("IntAttribute default = %d, want -1", v)
	}
}

func TestSetTypedAttributes(t *testing.T) {
	doc := NewDocument()
	if err := doc.Parse([]byte(`<r/>`)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := doc.RootElement()
	root.SetIntAttribute("count", 7)
	root.SetBoolAttribute("on", true)
	root.SetDoubleAttribute("ratio", 0.5)

	if got, want := root.AttributeValueOr("count", ""), "7"; got != want {
		t.Fatalf("count = %q, want %q", got, want)
	}
	if got, want := root.AttributeValueOr("on", ""), "true"; got != want {
		t.Fatalf("on = %q, want %q", got, want)
	}
	if got, want := root.AttributeValueOr("ratio", ""), "0.5"; got != want {
		t.Fatalf("ratio = %q, want %q", got, want)
	}
}
