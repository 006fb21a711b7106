package textop

import (
	"fmt"
	"strings"
)

// String renders op for debugging: one line per logical component, in the
// style of the original text_op_print.
//
// Grounded on the teacher's serde.go, which implements String() for debug
// display of an OperationSeq, rather than a bare print-to-stdout function —
// Go's fmt.Stringer convention over the original's print-to-stdout.
func (op Op) String() string {
	n := op.NumComponents()
	if n == 0 {
		return "(empty op)"
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		c := op.ComponentAt(i)
		switch c.Kind {
		case KindSkip:
			fmt.Fprintf(&b, "%d.\tSkip   : %d\n", i, c.N)
		case KindInsert:
			fmt.Fprintf(&b, "%d.\tInsert : %d (%q)\n", i, c.Str.CharLen(), c.Str.Raw())
		case KindDelete:
			fmt.Fprintf(&b, "%d.\tDelete : %d\n", i, c.N)
		}
	}
	return b.String()
}

// GoString renders op as a Go expression that reconstructs it, for use with
// the "%#v" verb.
func (op Op) GoString() string {
	n := op.NumComponents()
	if n == 0 {
		return "textop.Empty"
	}
	var b strings.Builder
	b.WriteString("textop.FromComponents([]textop.Component{")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		c := op.ComponentAt(i)
		switch c.Kind {
		case KindSkip:
			fmt.Fprintf(&b, "Skip(%d)", c.N)
		case KindInsert:
			fmt.Fprintf(&b, "InsertStr(%q)", c.Str.Raw())
		case KindDelete:
			fmt.Fprintf(&b, "DeleteN(%d)", c.N)
		}
	}
	b.WriteString("})")
	return b.String()
}
