package textop

import "math"

// maxTake is used wherever the spec calls for taking "the rest of the op"
// regardless of the driving side's remaining length (draining the tail of
// an op after its driver is exhausted).
const maxTake = uint64(math.MaxUint64)

// opIterator is the shared stateful cursor Transform and Compose both use
// to stream the left-hand operand. It tracks which logical component is
// current and how far into it the cursor has already consumed.
//
// Ported from text.c's op_iter.
type opIterator struct {
	idx    int
	offset uint64
}

// peek returns the Kind of the component currently under it, or KindNone
// at the end of op.
func peek(op *Op, it *opIterator) Kind {
	if it.idx >= op.NumComponents() {
		return KindNone
	}
	return op.ComponentAt(it.idx).Kind
}

// take returns the next sub-component of op, advancing it, and a bool
// reporting whether anything was available.
//
// If the current component's Kind equals indivisible, the entire remainder
// of that component is taken regardless of maxLen — an Insert can't be
// split from the left operand of a transform because the inserted text has
// no pre-image character for the right operand to "step through", and a
// Delete can't be split from the left operand of a compose for the
// symmetric reason (its characters don't exist in the middle operand).
// Otherwise min(maxLen, remaining) is taken.
//
// Ported from text.c's take().
func take(op *Op, it *opIterator, maxLen uint64, indivisible Kind) (Component, bool) {
	if it.idx >= op.NumComponents() {
		return Component{}, false
	}

	e := op.ComponentAt(it.idx)
	length := e.Len()
	remaining := length - it.offset

	var n uint64
	if e.Kind == indivisible {
		n = remaining
	} else if maxLen < remaining {
		n = maxLen
	} else {
		n = remaining
	}

	var out Component
	switch e.Kind {
	case KindInsert:
		if it.offset == 0 && n == length {
			out = e
		} else {
			out = Component{Kind: KindInsert, Str: e.Str.Substring(int(it.offset), int(n))}
		}
	default:
		out = Component{Kind: e.Kind, N: n}
	}

	it.offset += n
	if it.offset >= length {
		it.offset = 0
		it.idx++
	}

	return out, true
}
