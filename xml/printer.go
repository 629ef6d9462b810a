package xml

import "bytes"

// entityEscape marks which ASCII bytes need escaping in a given
// context. Only bytes in (0, 128) are ever candidates — everything
// else is assumed to already be valid UTF-8 and passes through
// unchanged (spec.md §4.5).
type entityEscape [128]bool

// fullEntityTable escapes all five canonical entities, used for
// element text content.
var fullEntityTable = buildEntityTable('&', '<', '>', '"', '\'')

// restrictedEntityTable escapes only & < > — used for attribute
// values (spec.md calls this "restricted-entity escape").
var restrictedEntityTable = buildEntityTable('&', '<', '>')

func buildEntityTable(bs ...byte) entityEscape {
	var t entityEscape
	for _, b := range bs {
		t[b] = true
	}
	return t
}

var entityReplacement = map[byte]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&apos;",
}

func escapeWith(table entityEscape, s string) string {
	needsEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 128 && table[c] {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}
	var buf bytes.Buffer
	buf.Grow(len(s) + 16)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 128 && table[c] {
			buf.WriteString(entityReplacement[c])
		} else {
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

// PrinterOptions configures a Printer (spec.md §4.5, §6).
type PrinterOptions struct {
	Compact     bool
	BoolStrings BoolStrings
}

// Printer is a streaming, visitor-driven XML serializer producing
// canonical XML with optional compact mode (spec.md §4.5, §6).
type Printer struct {
	out bytes.Buffer

	depth     int
	elementJustOpened bool
	firstElement      bool
	textDepth         int

	compact     bool
	boolStrings BoolStrings

	openNames []string

	fullTable       entityEscape
	restrictedTable entityEscape
}

// NewPrinter constructs a Printer ready to receive a Document.Accept
// call.
func NewPrinter(opts PrinterOptions) *Printer {
	bs := opts.BoolStrings
	if bs.True == "" && bs.False == "" {
		bs = defaultBoolStrings
	}
	return &Printer{
		firstElement:    true,
		textDepth:       -1,
		compact:         opts.Compact,
		boolStrings:     bs,
		fullTable:       fullEntityTable,
		restrictedTable: restrictedEntityTable,
	}
}

// String returns the accumulated output.
func (p *Printer) String() string { return p.out.String() }

// Bytes returns the accumulated output as a byte slice.
func (p *Printer) Bytes() []byte { return p.out.Bytes() }

func (p *Printer) indent() string {
	const perLevel = "    "
	buf := make([]byte, 0, len(perLevel)*p.depth)
	for i := 0; i < p.depth; i++ {
		buf = append(buf, perLevel...)
	}
	return string(buf)
}

// sealOpenTag closes a still-open start tag with '>' if one is
// pending — every emission that isn't an attribute must do this first.
func (p *Printer) sealOpenTag() {
	if p.elementJustOpened {
		p.out.WriteByte('>')
		p.elementJustOpened = false
	}
}

func (p *Printer) newlineAndIndent() {
	if p.compact {
		return
	}
	if p.textDepth == p.depth {
		return
	}
	if !p.firstElement {
		p.out.WriteByte('\n')
	}
	p.out.WriteString(p.indent())
}

// openElement emits "<name" (sealing any previously open tag first),
// pushes name onto the stack, and marks the new tag as just-opened
// (spec.md §4.5).
func (p *Printer) openElement(name string) {
	p.sealOpenTag()
	p.newlineAndIndent()
	p.firstElement = false
	p.out.WriteByte('<')
	p.out.WriteString(name)
	p.openNames = append(p.openNames, name)
	p.depth++
	p.elementJustOpened = true
}

// pushAttribute emits ` name="value"`, restricted-escaping value. Must
// follow openElement (while the tag is still "just opened").
func (p *Printer) pushAttribute(name, value string) {
	p.out.WriteByte(' ')
	p.out.WriteString(name)
	p.out.WriteString(`="`)
	p.out.WriteString(escapeWith(p.restrictedTable, value))
	p.out.WriteByte('"')
}

// closeElement emits the self-closing or full close form, pops the
// name stack, and resets textDepth once it rises back above the depth
// it was set at (spec.md §4.5).
func (p *Printer) closeElement() {
	p.depth--
	if p.elementJustOpened {
		p.out.WriteString("/>")
		p.elementJustOpened = false
	} else {
		p.newlineAndIndent()
		name := ""
		if n := len(p.openNames); n > 0 {
			name = p.openNames[n-1]
		}
		p.out.WriteString("</")
		p.out.WriteString(name)
		p.out.WriteByte('>')
	}
	if n := len(p.openNames); n > 0 {
		p.openNames = p.openNames[:n-1]
	}
	if p.textDepth == p.depth {
		p.textDepth = -1
	}
	if p.depth == 0 && !p.compact {
		p.out.WriteByte('\n')
	}
}

// pushText seals any open tag, sets textDepth so the matching
// closeElement suppresses indentation, and emits the text — as a
// CDATA block (verbatim, never escaped) or entity-escaped per the full
// table (spec.md §4.5, §8 property 3/4).
func (p *Printer) pushText(text string, cdata bool) {
	p.sealOpenTag()
	p.textDepth = p.depth - 1
	if cdata {
		p.out.WriteString("<![CDATA[")
		p.out.WriteString(text)
		p.out.WriteString("]]>")
		return
	}
	p.out.WriteString(escapeWith(p.fullTable, text))
}

func (p *Printer) pushComment(text string) {
	p.sealOpenTag()
	p.newlineAndIndent()
	p.firstElement = false
	p.out.WriteString("<!--")
	p.out.WriteString(text)
	p.out.WriteString("-->")
}

func (p *Printer) pushDeclaration(text string) {
	p.sealOpenTag()
	p.newlineAndIndent()
	p.firstElement = false
	p.out.WriteString("<?")
	p.out.WriteString(text)
	p.out.WriteString("?>")
}

func (p *Printer) pushUnknown(text string) {
	p.sealOpenTag()
	p.newlineAndIndent()
	p.firstElement = false
	p.out.WriteString("<!")
	p.out.WriteString(text)
	p.out.WriteByte('>')
}

// pushHeader optionally writes a UTF-8 BOM and a default XML
// declaration, ahead of any Document.Accept traversal (spec.md §4.5,
// §6).
func (p *Printer) pushHeader(bom bool, declaration bool) {
	if bom {
		p.out.WriteString(utf8ByteOrderMark)
	}
	if declaration {
		p.pushDeclaration(`xml version="1.0"`)
	}
}

// --- Visitor implementation ------------------------------------------

func (p *Printer) VisitDocumentEnter(doc *Document) bool {
	p.pushHeader(doc.bom, false)
	return true
}

func (p *Printer) VisitDocumentExit(*Document) bool { return true }

func (p *Printer) VisitElementEnter(elem *Element, firstAttribute *Attribute) bool {
	p.openElement(elem.Name())
	for a := firstAttribute; a != nil; a = a.next {
		p.pushAttribute(a.Name(), a.Value())
	}
	return true
}

func (p *Printer) VisitElementExit(*Element) bool {
	p.closeElement()
	return true
}

func (p *Printer) VisitText(t *Text) bool {
	p.pushText(t.Value(), t.CData())
	return true
}

func (p *Printer) VisitComment(c *Comment) bool {
	p.pushComment(c.Value())
	return true
}

func (p *Printer) VisitDeclaration(d *Declaration) bool {
	p.pushDeclaration(d.Value())
	return true
}

func (p *Printer) VisitUnknown(u *Unknown) bool {
	p.pushUnknown(u.Value())
	return true
}

