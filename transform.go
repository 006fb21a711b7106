package textop

// Transform produces a', the rebasing of a against the concurrent op b, such
// that applying b then a' reaches the same document state as applying a
// then Transform(b, a, !isLeftHand).
//
// isLeftHand breaks ties when both ops insert at the same position: the
// left-hand op's inserts land first in the converged document. Callers
// processing a pair of concurrent ops must call Transform with opposite
// isLeftHand values on each side — the side that's considered "first"
// (e.g. the op with the lower server-assigned revision number) passes
// true.
//
// Ported from the original text.c's text_op_transform2, not from the
// teacher's Transform: the teacher tie-breaks via lexicographic string
// comparison of the inserted text and has no isLeftHand parameter, which
// doesn't implement the tie rule spec.md §4.7 and its scenario 2 require.
// The teacher's file/function placement (one file, a package-level
// function, a local iterator type) is kept.
//
// Unlike the teacher, Transform takes no incompatible-lengths error path
// and returns Op alone: the teacher's OperationSeq always covers the whole
// document (every explicit length is a full document length), so a base-
// length mismatch is genuinely invalid there. This spec's Op trims its
// trailing Skip (I3), so a's and b's explicit lengths only bound the
// region each one touches — whatever lies past that is implicitly
// untouched by the other side. Requiring equality would reject perfectly
// well-formed pairs (see compose.go's identical reasoning), so, like
// text_op_transform2, this never rejects on length.
func Transform(a, b Op, isLeftHand bool) Op {
	var result Op
	it := opIterator{}
	nb := b.NumComponents()

	for i := 0; i < nb; i++ {
		cb := b.ComponentAt(i)

		switch cb.Kind {
		case KindSkip:
			remaining := cb.N
			for remaining > 0 {
				c, ok := take(&a, &it, remaining, KindInsert)
				if !ok {
					break
				}
				appendComponent(&result, c)
				if c.Kind != KindInsert {
					remaining -= c.N
				}
			}

		case KindInsert:
			if isLeftHand && peek(&a, &it) == KindInsert {
				// The left-hand op's concurrent insert goes first.
				c, _ := take(&a, &it, maxTake, KindNone)
				appendComponent(&result, c)
			}
			appendComponent(&result, Skip(uint64(cb.Str.CharLen())))

		case KindDelete:
			remaining := cb.N
			for remaining > 0 {
				c, ok := take(&a, &it, remaining, KindInsert)
				if !ok {
					break
				}
				switch c.Kind {
				case KindSkip:
					remaining -= c.N
				case KindInsert:
					appendComponent(&result, c)
				case KindDelete:
					remaining -= c.N
				}
			}
		}
	}

	// Whatever remains of a lies past b's last component, a region b leaves
	// untouched, so it carries over unchanged (Inserts, and any Skip/Delete
	// reaching beyond b's explicit length).
	for peek(&a, &it) != KindNone {
		c, ok := take(&a, &it, maxTake, KindNone)
		if !ok {
			break
		}
		appendComponent(&result, c)
	}

	return trimTrailingSkip(result)
}
