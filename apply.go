package textop

// Apply executes op against doc, mutating it in place: Skip advances the
// cursor, Insert inserts text at the cursor, Delete removes characters at
// the cursor. It returns the first error the Document collaborator reports
// (typically an out-of-bounds Skip/Delete).
//
// Apply is O(components × doc-op cost): each component costs exactly one
// Document call, so the overall cost is however expensive the underlying
// sequence structure's insert/delete is.
//
// Ported from text.c's text_op_apply, generalized from a direct rope
// pointer to the injected Document interface (spec.md §6.1) — the teacher's
// Apply worked directly against a Go string instead of a collaborator type,
// which this spec requires.
func Apply(doc Document, op Op) error {
	pos := 0
	n := op.NumComponents()
	for i := 0; i < n; i++ {
		c := op.ComponentAt(i)
		switch c.Kind {
		case KindSkip:
			pos += int(c.N)
		case KindInsert:
			if err := doc.Insert(pos, c.Str.Raw()); err != nil {
				return err
			}
			pos += c.Str.CharLen()
		case KindDelete:
			if err := doc.Delete(pos, int(c.N)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Check validates op without mutating doc: it enforces I1 (no zero-length
// components), I2 (no adjacent same-kind components — they should have been
// merged), I3 (no trailing Skip), and verifies every Skip/Delete stays
// within the document length as it would evolve during Apply.
//
// Check is the implementation's internal debug assertion and also a guard
// when receiving an Op from an untrusted peer, since the public
// constructors can't produce a malformed Op but a deserialized one (or one
// constructed via reflection/corruption) might.
//
// Ported from text.c's text_op_check.
func Check(doc Document, op Op) error {
	if op.IsEmpty() {
		return nil
	}

	docLen := doc.CharCount()
	pos := 0
	n := op.NumComponents()

	var prevKind Kind
	for i := 0; i < n; i++ {
		c := op.ComponentAt(i)
		if i > 0 && c.Kind == prevKind {
			return codedf(CodeMalformed, "adjacent %s components at index %d were not merged", c.Kind, i)
		}
		prevKind = c.Kind

		switch c.Kind {
		case KindSkip:
			if c.N == 0 {
				return codedf(CodeMalformed, "zero-length Skip at index %d", i)
			}
			pos += int(c.N)
			if pos > docLen {
				return codedf(CodeOutOfBounds, "Skip at index %d walks past document length %d", i, docLen)
			}
		case KindInsert:
			l := c.Str.CharLen()
			if l == 0 {
				return codedf(CodeMalformed, "empty Insert at index %d", i)
			}
			docLen += l
			pos += l
		case KindDelete:
			if c.N == 0 {
				return codedf(CodeMalformed, "zero-length Delete at index %d", i)
			}
			if docLen < pos+int(c.N) {
				return codedf(CodeOutOfBounds, "Delete at index %d walks past document length %d", i, docLen)
			}
			docLen -= int(c.N)
		default:
			return codedf(CodeMalformed, "unexpected component kind %s at index %d", c.Kind, i)
		}
	}

	if n > 0 && op.ComponentAt(n-1).Kind == KindSkip {
		return codedf(CodeMalformed, "op ends in a trailing Skip")
	}

	return nil
}
