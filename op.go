package textop

// Op is an ordered sequence of components that, read left to right, walks
// a document from position 0 and describes a total transformation.
//
// The common case — one Skip followed by one Insert or Delete — is stored
// inline with no component slice at all (the "small form"): skip holds the
// leading retain count and content holds the single trailing edit. A second
// non-mergeable component promotes the Op to the "big form", where
// components holds the full vector. Every algebra function branches
// internally on components == nil; callers never need to know which form
// they're holding.
//
// Ported from the small/big-form text_op struct in the original text.h —
// the teacher repo's Operation interface (Retain/Insert/Delete structs)
// can't represent this: an interface value is itself a heap-escaping
// 2-word box, so there's no "no allocation" form to fall back to.
type Op struct {
	components []Component // nil in small form
	skip       uint64       // small form only: leading Skip, 0 if none
	content    Component    // small form only: KindNone if not yet set
}

// Empty is the identity Op: applying it leaves a document unchanged, and
// it's the identity element of Compose on both sides.
var Empty = Op{}

// NumComponents returns the number of logical components in op, regardless
// of its small/big form.
func (op Op) NumComponents() int {
	if op.components != nil {
		return len(op.components)
	}
	n := 0
	if op.skip > 0 {
		n++
	}
	if op.content.Kind != KindNone {
		n++
	}
	return n
}

// ComponentAt returns the i-th logical component of op.
func (op Op) ComponentAt(i int) Component {
	if op.components != nil {
		return op.components[i]
	}
	if op.skip > 0 {
		if i == 0 {
			return Skip(op.skip)
		}
		return op.content
	}
	return op.content
}

// Components returns a freshly materialized slice of op's components, in
// either form. Intended for inspection/tests, not the hot path.
func (op Op) Components() []Component {
	n := op.NumComponents()
	out := make([]Component, n)
	for i := 0; i < n; i++ {
		out[i] = op.ComponentAt(i)
	}
	return out
}

// IsEmpty reports whether op is the identity Op (I4).
func (op Op) IsEmpty() bool {
	return op.components == nil && op.skip == 0 && op.content.Kind == KindNone
}

// InputLength returns the number of characters op expects to find in its
// pre-image document: the sum of its Skip and Delete lengths.
func (op Op) InputLength() uint64 {
	var n uint64
	for i := 0; i < op.NumComponents(); i++ {
		c := op.ComponentAt(i)
		if c.Kind == KindSkip || c.Kind == KindDelete {
			n += c.N
		}
	}
	return n
}

// OutputLength returns the number of characters in op's post-image
// document: the sum of its Skip and Insert lengths.
func (op Op) OutputLength() uint64 {
	var n uint64
	for i := 0; i < op.NumComponents(); i++ {
		c := op.ComponentAt(i)
		switch c.Kind {
		case KindSkip:
			n += c.N
		case KindInsert:
			n += uint64(c.Str.CharLen())
		}
	}
	return n
}

// Clone returns a deep copy of op. Component.Str values are immutable
// strings, so only the component vector itself (in big form) needs a fresh
// backing array.
func Clone(op Op) Op {
	if op.components == nil {
		return op
	}
	out := Op{components: make([]Component, len(op.components))}
	copy(out.components, op.components)
	return out
}

// appendComponent is the normalizer every Op mutation funnels through. It
// enforces I1 (drop zero-length components), I2 (merge adjacent same-kind
// runs), and leaves I3 (no trailing skip) to callers that know they're at
// the end of construction (FromComponents, Transform, Compose all trim
// afterwards).
//
// Ported from text.c's append()/ensure_capacity().
func appendComponent(op *Op, c Component) {
	if c.isEmpty() {
		return
	}

	if op.components == nil {
		if op.content.Kind == KindNone {
			if c.Kind == KindSkip {
				op.skip += c.N
			} else {
				op.content = c
			}
			return
		}
		if op.content.Kind == c.Kind {
			switch c.Kind {
			case KindDelete:
				op.content.N += c.N
			case KindInsert:
				op.content.Str = op.content.Str.Append(c.Str)
			}
			return
		}
		// Small form can't hold a second non-mergeable component. Promote.
		promoteToBig(op)
		op.components = append(op.components, c)
		return
	}

	n := len(op.components)
	if n == 0 {
		op.components = append(op.components, c)
		return
	}
	last := &op.components[n-1]
	if last.Kind == c.Kind {
		switch c.Kind {
		case KindSkip, KindDelete:
			last.N += c.N
		case KindInsert:
			last.Str = last.Str.Append(c.Str)
		}
		return
	}
	op.components = append(op.components, c)
}

// promoteToBig moves a small-form op's (skip, content) pair into a fresh
// component slice, ready for a third component to be appended.
func promoteToBig(op *Op) {
	var components []Component
	if op.skip > 0 {
		components = append(components, Skip(op.skip), op.content)
	} else {
		components = append(components, op.content)
	}
	op.components = components
	op.skip = 0
	op.content = Component{}
}

// trimTrailingSkip enforces I3: a well-formed Op never ends in a Skip.
func trimTrailingSkip(op Op) Op {
	if op.components != nil {
		for len(op.components) > 0 && op.components[len(op.components)-1].Kind == KindSkip {
			op.components = op.components[:len(op.components)-1]
		}
		return op
	}
	if op.content.Kind == KindNone && op.skip > 0 {
		op.skip = 0
	}
	return op
}

// FromComponents builds an Op by appending each of components in order
// through the normalizer, then trimming any trailing Skip (I3).
func FromComponents(components []Component) Op {
	// Pre-emptively discard trailing skips/empty components from the input,
	// matching text_op_from_components2's upfront trim.
	end := len(components)
	for end > 0 && (components[end-1].Kind == KindSkip || components[end-1].isEmpty()) {
		end--
	}

	var op Op
	for i := 0; i < end; i++ {
		appendComponent(&op, components[i])
	}
	return trimTrailingSkip(op)
}

// InsertOp builds an Op in small form that skips pos characters then
// inserts s. An empty insert has no effect (I1) and yields the empty Op.
func InsertOp(pos uint64, s string) Op {
	if s == "" {
		return Empty
	}
	return Op{skip: pos, content: InsertStr(s)}
}

// DeleteOp builds an Op in small form that skips pos characters then
// deletes n characters. A zero-length delete has no effect (I1) and
// yields the empty Op regardless of pos, since a skip-only Op would
// violate I3.
func DeleteOp(pos, n uint64) Op {
	if n == 0 {
		return Empty
	}
	return Op{skip: pos, content: DeleteN(n)}
}

// Insert is the public construction entry point: callers work in ordinary
// int character offsets/counts, same as the Document interface, rather than
// the uint64 the component/iterator machinery uses internally. A negative
// pos is treated as 0.
func Insert(pos int, s string) Op {
	if pos < 0 {
		pos = 0
	}
	return InsertOp(uint64(pos), s)
}

// Delete is the public construction entry point: callers work in ordinary
// int character offsets/counts, same as the Document interface, rather than
// the uint64 the component/iterator machinery uses internally. A negative
// pos or n is treated as 0.
func Delete(pos, n int) Op {
	if pos < 0 {
		pos = 0
	}
	if n < 0 {
		n = 0
	}
	return DeleteOp(uint64(pos), uint64(n))
}
