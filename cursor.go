package textop

// Cursor is a (anchor, focus) pair of character positions representing an
// editor selection. Neither is required to precede the other; anchor ==
// focus denotes a caret.
type Cursor struct {
	Anchor int
	Focus  int
}

// TransformCursor moves cur through op.
//
// If isOwn (op is the one the cursor's owner just issued), both endpoints
// teleport to the position immediately following op's last Insert, or to
// the site of its last Delete — matching the editor UX where typing moves
// your own caret to the end of what you typed. Otherwise each endpoint
// transforms independently: Skip leaves positions within it unchanged,
// Insert pushes later positions forward, and Delete collapses positions
// inside the deleted range to its start. A selection straddling a delete
// may collapse to a caret.
//
// Ported from text.c's text_op_transform_cursor/transform_position.
func TransformCursor(cur Cursor, op Op, isOwn bool) Cursor {
	if isOwn {
		if op.IsEmpty() {
			return cur
		}
		pos := ownEndPosition(op)
		return Cursor{Anchor: pos, Focus: pos}
	}
	return Cursor{
		Anchor: transformPosition(cur.Anchor, op),
		Focus:  transformPosition(cur.Focus, op),
	}
}

// ownEndPosition walks op accumulating the position reached by its Skip and
// Insert components while ignoring Delete entirely. Because every Skip and
// Insert preceding a Delete already sums to that Delete's site, this single
// pass lands on "just after the last Insert" when op ends in an insert, and
// on "the last Delete's site" when it ends in a delete, without special
// casing either.
func ownEndPosition(op Op) int {
	pos := 0
	n := op.NumComponents()
	for i := 0; i < n; i++ {
		c := op.ComponentAt(i)
		switch c.Kind {
		case KindSkip:
			pos += int(c.N)
		case KindInsert:
			pos += c.Str.CharLen()
		}
	}
	return pos
}

// transformPosition moves a single position x through op.
func transformPosition(x int, op Op) int {
	pos := 0
	n := op.NumComponents()
	for i := 0; i < n && x > pos; i++ {
		c := op.ComponentAt(i)
		switch c.Kind {
		case KindSkip:
			if x <= pos+int(c.N) {
				return x
			}
			pos += int(c.N)
		case KindInsert:
			l := c.Str.CharLen()
			pos += l
			x += l
		case KindDelete:
			d := int(c.N)
			if d > x-pos {
				d = x - pos
			}
			x -= d
		}
	}
	return x
}
