// Package document provides a reference implementation of textop.Document,
// the character-addressable ordered sequence the OT algebra applies
// operations to.
//
// spec.md §1 explicitly scopes the real document container — a rope, piece
// table, or gap buffer — out of this module: "any balanced sequence
// structure suffices; the algebra only consumes its interface." Text is the
// simplest structure satisfying that interface, suitable for tests, demos,
// and small-to-medium documents; callers who need rope/piece-table
// performance on large documents bring their own Document.
//
// Naming here (CharAt, InsertChar, LengthChars) follows the API-naming
// convention notes retrieved alongside this module's examples from
// nzinfo-texere's rope package, without adopting an actual rope structure.
package document

import (
	"errors"
	"unicode/utf8"

	"github.com/otlang/textop"
)

// ErrOutOfRange is returned when an operation's position or length falls
// outside the document's current bounds.
var ErrOutOfRange = errors.New("document: position out of range")

// Text is a []rune-backed character sequence satisfying textop.Document.
type Text struct {
	runes []rune
}

var _ textop.Document = (*Text)(nil)

// New returns a Text containing the given initial content.
func New(content string) *Text {
	return &Text{runes: []rune(content)}
}

// LengthChars returns the number of characters currently stored.
func (t *Text) LengthChars() int {
	return len(t.runes)
}

// CharCount implements textop.Document.
func (t *Text) CharCount() int {
	return t.LengthChars()
}

// CharAt returns the rune at character position pos.
func (t *Text) CharAt(pos int) (rune, error) {
	if pos < 0 || pos >= len(t.runes) {
		return 0, ErrOutOfRange
	}
	return t.runes[pos], nil
}

// InsertChar inserts text at character position pos. It implements
// textop.Document's Insert.
func (t *Text) InsertChar(pos int, text string) error {
	return t.Insert(pos, text)
}

// Insert implements textop.Document.
func (t *Text) Insert(pos int, text string) error {
	if pos < 0 || pos > len(t.runes) {
		return ErrOutOfRange
	}
	if text == "" {
		return nil
	}
	inserted := []rune(text)
	grown := make([]rune, 0, len(t.runes)+len(inserted))
	grown = append(grown, t.runes[:pos]...)
	grown = append(grown, inserted...)
	grown = append(grown, t.runes[pos:]...)
	t.runes = grown
	return nil
}

// DeleteChars removes n characters starting at character position pos. It
// implements textop.Document's Delete.
func (t *Text) DeleteChars(pos, n int) error {
	return t.Delete(pos, n)
}

// Delete implements textop.Document.
func (t *Text) Delete(pos, n int) error {
	if pos < 0 || n < 0 || pos+n > len(t.runes) {
		return ErrOutOfRange
	}
	if n == 0 {
		return nil
	}
	t.runes = append(t.runes[:pos], t.runes[pos+n:]...)
	return nil
}

// Clone implements textop.Document.
func (t *Text) Clone() textop.Document {
	return t.clone()
}

func (t *Text) clone() *Text {
	runes := make([]rune, len(t.runes))
	copy(runes, t.runes)
	return &Text{runes: runes}
}

// String returns the document's contents.
func (t *Text) String() string {
	return string(t.runes)
}

// ByteLen returns the number of bytes the document's contents occupy when
// encoded as UTF-8, without materializing the string.
func (t *Text) ByteLen() int {
	n := 0
	for _, r := range t.runes {
		n += utf8.RuneLen(r)
	}
	return n
}
