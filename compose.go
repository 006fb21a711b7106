package textop

// Compose produces c such that applying c has the same effect as applying a
// then b: apply(d, Compose(a, b)) == apply(apply(d, a), b).
//
// Ported from the original text.c's text_op_compose2, not from the
// teacher's Compose: the teacher streams two interface-typed slices without
// the small/big-form split or the shared take/peek iterator this spec's
// compose/transform pair is built around, though its file placement is
// kept.
//
// Compose takes no incompatible-lengths error path, unlike the teacher's
// Compose: a's output length and b's input length need not match exactly,
// because neither bounds the full document — I3 trims any trailing Skip,
// so everything past an op's last explicit component is implicitly
// untouched. Requiring a.OutputLength() == b.InputLength() would reject,
// for instance, composing an insert near the start of a document with a
// delete further in: the insert's own explicit range never reaches the
// delete's, yet the composition is perfectly well-defined (the take
// iterator's exhaustion fallback below supplies the implicit identity for
// whatever a doesn't mention). This matches text_op_compose2 exactly,
// which never rejects on length either.
func Compose(a, b Op) Op {
	var result Op
	it := opIterator{}
	nb := b.NumComponents()

	for i := 0; i < nb; i++ {
		cb := b.ComponentAt(i)

		switch cb.Kind {
		case KindSkip:
			remaining := cb.N
			for remaining > 0 {
				c, ok := take(&a, &it, remaining, KindDelete)
				if !ok {
					// a's trailing skips were trimmed (I3); treat it as
					// having an implicit trailing skip for the remainder.
					appendComponent(&result, Skip(remaining))
					break
				}
				appendComponent(&result, c)
				if c.Kind != KindDelete {
					remaining -= c.Len()
				}
			}

		case KindInsert:
			appendComponent(&result, cb)

		case KindDelete:
			remaining := cb.N
			for remaining > 0 {
				c, ok := take(&a, &it, remaining, KindDelete)
				if !ok {
					appendComponent(&result, DeleteN(remaining))
					break
				}
				switch c.Kind {
				case KindSkip:
					appendComponent(&result, DeleteN(c.N))
					remaining -= c.N
				case KindInsert:
					// a inserted text that b immediately deletes again:
					// the two cancel, contributing nothing to the result.
					remaining -= uint64(c.Str.CharLen())
				case KindDelete:
					// a already deleted these characters; they never
					// existed in b's coordinate system, so they don't
					// count against b's delete count.
					appendComponent(&result, c)
				}
			}
		}
	}

	for peek(&a, &it) != KindNone {
		c, ok := take(&a, &it, maxTake, KindNone)
		if !ok {
			break
		}
		appendComponent(&result, c)
	}

	return trimTrailingSkip(result)
}
