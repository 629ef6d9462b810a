package xml

// parseContext carries the single mutable cursor state threaded
// through the whole recursive-descent parse: the shared buffer, the
// current byte offset, the running line counter, and the current
// nesting depth (spec.md §4.4).
type parseContext struct {
	doc    *Document
	buf    []byte
	cursor int
	line   int
	depth  int
}

func (ctx *parseContext) fail(id ErrorID, line int, detail string) error {
	ctx.doc.setError(id, line, detail)
	return ctx.doc.err
}

// identify skips whitespace, then matches the longest applicable
// prefix at the cursor in the precedence order spec.md §4.4 specifies,
// allocating (but not yet parsing the content of) the corresponding
// node. Text is the fallback case and deliberately does not advance
// the cursor past the leading whitespace it skipped, since that
// whitespace is itself textual content.
func identify(ctx *parseContext) (Node, error) {
	preWhitespaceLine := ctx.line
	preWhitespaceCursor := ctx.cursor
	ctx.cursor = skipWhiteSpace(ctx.buf, ctx.cursor, &ctx.line)

	buf := ctx.buf
	c := ctx.cursor

	switch {
	case hasPrefixAt(buf, c, "<?"):
		d := ctx.doc.newDeclaration()
		d.line = ctx.line
		ctx.cursor += 2
		return d, nil

	case hasPrefixAt(buf, c, "<!--"):
		cm := ctx.doc.newComment()
		cm.line = ctx.line
		ctx.cursor += 4
		return cm, nil

	case hasPrefixAt(buf, c, "<![CDATA["):
		t := ctx.doc.newText()
		t.cdata = true
		t.line = ctx.line
		ctx.cursor += 9
		return t, nil

	case hasPrefixAt(buf, c, "<!"):
		u := ctx.doc.newUnknown()
		u.line = ctx.line
		ctx.cursor += 2
		return u, nil

	case hasPrefixAt(buf, c, "<"):
		e := ctx.doc.newElement()
		e.line = ctx.line
		ctx.cursor += 1
		return e, nil

	default:
		if c >= len(buf) {
			return nil, nil
		}
		t := ctx.doc.newText()
		t.line = preWhitespaceLine
		ctx.cursor = preWhitespaceCursor
		ctx.line = preWhitespaceLine
		return t, nil
	}
}

func hasPrefixAt(buf []byte, at int, prefix string) bool {
	if at+len(prefix) > len(buf) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if buf[at+i] != prefix[i] {
			return false
		}
	}
	return true
}

// parseChildren is Node::parse_deep (spec.md §4.4): it repeatedly
// identifies the next node, lets it parse its own content, and
// inserts it as the last child of parent — until a matching close tag
// (for an Element parent) or EOF (for the Document) ends the loop.
//
// parentEndTag is the slot parent's own caller is watching: when a
// child turns out to be a bare closing marker ("</name>"), its name is
// transferred into parentEndTag and the loop returns, signalling that
// parent itself has just been closed. It is nil when parent is the
// Document, which has no closing tag to report.
//
// Each child is given its own fresh end-tag slot, which is threaded
// straight through to that child's own parseSelf — so if the child is
// an OPEN element, the very same slot is what its own nested
// parseChildren call will eventually fill in via the mechanism above.
// That lets this loop, once the child's parseSelf returns, compare the
// slot against the child's own name to detect a mismatched close tag.
func parseChildren(ctx *parseContext, parent Node, parentEndTag *strPair) error {
	ctx.depth++
	defer func() { ctx.depth-- }()
	if ctx.depth > defaultElementDepth {
		return ctx.fail(ErrElementDepthExceeded, ctx.line, "")
	}

	for {
		if ctx.doc.err != nil {
			return ctx.doc.err
		}

		child, err := identify(ctx)
		if err != nil {
			return err
		}
		if child == nil {
			// EOF: only the Document may legitimately run out of
			// input here; an open Element with no close tag is
			// caught by the mismatch check below once its own
			// parseChildren call returns with an empty end tag.
			return nil
		}

		nodeLine := child.Line()
		var endTag strPair
		if err := child.parseSelf(ctx, &endTag); err != nil {
			if ctx.doc.err == nil {
				ctx.fail(ErrParsing, nodeLine, "")
			}
			child.freeSelf()
			return ctx.doc.err
		}

		if decl := child.ToDeclaration(); decl != nil {
			if _, isDoc := parent.(*Document); !isDoc || !allChildrenAreDeclarations(parent) {
				ctx.fail(ErrParsingDeclaration, nodeLine, "")
				child.freeSelf()
				return ctx.doc.err
			}
		}

		if elem := child.ToElement(); elem != nil {
			if elem.closingType == Closing {
				if parentEndTag != nil {
					elem.value.transferTo(parentEndTag)
				}
				elem.freeSelf()
				return nil
			}

			mismatch := false
			if endTag.isEmpty() {
				if elem.closingType == Open {
					mismatch = true
				}
			} else if elem.closingType != Open || endTag.getStr() != elem.Name() {
				mismatch = true
			}
			if mismatch {
				ctx.fail(ErrMismatchedElement, nodeLine, elem.Name())
				child.freeSelf()
				return ctx.doc.err
			}
		}

		parent.InsertEndChild(child)
	}
}

func allChildrenAreDeclarations(parent Node) bool {
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c.ToDeclaration() == nil {
			return false
		}
	}
	return true
}

// --- per-variant parseSelf (spec.md §4.4) ---------------------------

// parseSelf for Text: CDATA content stops at "]]>" with only newline
// normalization; ordinary text stops at "<" with newline normalization
// plus (conditionally) entity processing and whitespace collapsing,
// leaving the cursor positioned at the "<" rather than past it.
func (t *Text) parseSelf(ctx *parseContext, _ *strPair) error {
	if t.cdata {
		end := t.value.parseText(ctx.buf, ctx.cursor, "]]>", flagNeedsNewlineNormalization|flagNeedsFlush, &ctx.line)
		if end < 0 {
			return ctx.fail(ErrParsingCData, t.line, "")
		}
		ctx.cursor = end
		return nil
	}

	flags := strFlag(flagNeedsNewlineNormalization)
	if ctx.doc.processEntities {
		flags |= flagNeedsEntityProcessing
	}
	if ctx.doc.whitespaceMode == CollapseWhitespace {
		flags |= flagNeedsWhitespaceCollapsing
	}

	start := ctx.cursor
	idx := indexFrom(ctx.buf, ctx.cursor, "<")
	if idx < 0 {
		countNewlines(ctx.buf[start:], &ctx.line)
		return ctx.fail(ErrParsingText, t.line, "")
	}
	countNewlines(ctx.buf[start:idx], &ctx.line)
	t.value.setBorrowed(ctx.buf, start, idx, flags|flagNeedsFlush)
	ctx.cursor = idx
	return nil
}

func (c *Comment) parseSelf(ctx *parseContext, _ *strPair) error {
	end := c.value.parseText(ctx.buf, ctx.cursor, "-->", flagsComment, &ctx.line)
	if end < 0 {
		return ctx.fail(ErrParsingComment, c.line, "")
	}
	ctx.cursor = end
	return nil
}

func (d *Declaration) parseSelf(ctx *parseContext, _ *strPair) error {
	end := d.value.parseText(ctx.buf, ctx.cursor, "?>", flagNeedsNewlineNormalization|flagNeedsFlush, &ctx.line)
	if end < 0 {
		return ctx.fail(ErrParsingDeclaration, d.line, "")
	}
	ctx.cursor = end
	return nil
}

func (u *Unknown) parseSelf(ctx *parseContext, _ *strPair) error {
	end := u.value.parseText(ctx.buf, ctx.cursor, ">", flagNeedsNewlineNormalization|flagNeedsFlush, &ctx.line)
	if end < 0 {
		return ctx.fail(ErrParsingUnknown, u.line, "")
	}
	ctx.cursor = end
	return nil
}

// parseSelf for Element: optional leading '/' marks a CLOSING token;
// otherwise parse name, then attributes, then either self-close,
// close the open tag and recurse into children, or fail (spec.md
// §4.4).
func (e *Element) parseSelf(ctx *parseContext, parentEndTag *strPair) error {
	buf := ctx.buf

	if ctx.cursor < len(buf) && buf[ctx.cursor] == '/' {
		e.closingType = Closing
		ctx.cursor++
	}

	next := e.value.parseName(buf, ctx.cursor)
	if next < 0 {
		return ctx.fail(ErrParsingElement, e.line, "")
	}
	ctx.cursor = next

	if e.closingType == Closing {
		ctx.cursor = skipWhiteSpace(buf, ctx.cursor, &ctx.line)
		if !hasPrefixAt(buf, ctx.cursor, ">") {
			return ctx.fail(ErrParsingElement, e.line, e.Name())
		}
		ctx.cursor++
		return nil
	}

	if err := e.parseAttributes(ctx); err != nil {
		return err
	}

	if e.closingType == Open {
		return parseChildren(ctx, e, parentEndTag)
	}
	return nil
}

// parseAttributes implements the attribute loop of spec.md §4.4: skip
// whitespace, then on each turn either start a new attribute, close
// the open tag (">", OPEN), self-close it ("/>", CLOSED), or fail.
func (e *Element) parseAttributes(ctx *parseContext) error {
	buf := ctx.buf
	for {
		ctx.cursor = skipWhiteSpace(buf, ctx.cursor, &ctx.line)
		if ctx.cursor >= len(buf) {
			return ctx.fail(ErrParsingElement, e.line, e.Name())
		}

		c := buf[ctx.cursor]
		switch {
		case c == '>':
			ctx.cursor++
			e.closingType = Open
			return nil

		case c == '/' && hasPrefixAt(buf, ctx.cursor, "/>"):
			ctx.cursor += 2
			e.closingType = Closed
			return nil

		case isNameStartChar(c):
			if err := e.parseOneAttribute(ctx); err != nil {
				return err
			}

		default:
			return ctx.fail(ErrParsingElement, e.line, e.Name())
		}
	}
}

func (e *Element) parseOneAttribute(ctx *parseContext) error {
	buf := ctx.buf
	attrLine := ctx.line
	var name strPair
	next := name.parseName(buf, ctx.cursor)
	if next < 0 {
		return ctx.fail(ErrParsingAttribute, e.line, "")
	}
	ctx.cursor = next

	// spec.md §9(b): duplicate names must be rejected by checking the
	// existing chain *before* inserting, not by inserting then looking
	// the name back up (which a correct implementation, per the open
	// question, must avoid).
	attrName := name.getStr()
	if e.Attribute(attrName) != nil {
		return ctx.fail(ErrParsingAttribute, attrLine, attrName)
	}

	ctx.cursor = skipWhiteSpace(buf, ctx.cursor, &ctx.line)
	if !hasPrefixAt(buf, ctx.cursor, "=") {
		return ctx.fail(ErrParsingAttribute, attrLine, attrName)
	}
	ctx.cursor++
	ctx.cursor = skipWhiteSpace(buf, ctx.cursor, &ctx.line)

	if ctx.cursor >= len(buf) {
		return ctx.fail(ErrParsingAttribute, attrLine, attrName)
	}
	quote := buf[ctx.cursor]
	if quote != '"' && quote != '\'' {
		return ctx.fail(ErrParsingAttribute, attrLine, attrName)
	}
	ctx.cursor++

	flags := strFlag(flagNeedsNewlineNormalization | flagNeedsFlush)
	if ctx.doc.processEntities {
		flags |= flagNeedsEntityProcessing
	}

	a := ctx.doc.newAttribute()
	a.line = attrLine
	a.name = name
	valStart := ctx.cursor
	endQuote := indexFrom(buf, ctx.cursor, string(quote))
	if endQuote < 0 {
		countNewlines(buf[valStart:], &ctx.line)
		return ctx.fail(ErrParsingAttribute, attrLine, attrName)
	}
	countNewlines(buf[valStart:endQuote], &ctx.line)
	a.setValueBorrowed(buf, valStart, endQuote, flags)
	ctx.cursor = endQuote + 1

	if e.firstAttribute == nil {
		e.firstAttribute = a
	} else {
		last := e.firstAttribute
		for last.next != nil {
			last = last.next
		}
		last.next = a
	}
	return nil
}
