// Package textop implements Operational Transformation for collaborative
// plain-text editing.
//
// This is a Go port of the composable text operation algebra from the
// classic "ottypes"/libot C implementation by Joseph Gentle, with the
// data model reshaped around a small/big representation so the common
// single-edit op never allocates a component slice.
//
// Operational transformation (OT) lets multiple users edit the same
// document concurrently. Each edit is expressed as an Op — an ordered
// sequence of components that walks the document from position 0:
//
//   - Skip(n):   move the cursor n characters forward, unchanged.
//   - Insert(s): insert the UTF-8 string s at the current position.
//   - Delete(n): remove n characters at the current position.
//
// Four functions over this type make concurrent edits commute:
// Apply executes an Op against a Document, Compose concatenates two
// sequential ops into one equivalent op, Transform rebases one op
// against a concurrent op so both sides converge, and TransformCursor
// carries a user's selection through a received op.
//
// Positions and lengths are always character (Unicode codepoint)
// counts, never byte offsets; byte offsets only appear where an Op
// touches the wire format or a Document's own storage.
package textop
