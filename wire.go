package textop

import (
	"bytes"
	"encoding/binary"
)

// Serialize encodes op as a sequence of component records terminated by a
// zero byte: each record is a 1-byte kind tag followed by either a 4-byte
// unsigned character count (Skip/Delete) or UTF-8 bytes plus a NUL
// terminator (Insert).
//
// The original text_op_to_bytes stores the 32-bit count in host byte
// order, which isn't a wire format at all — it breaks the moment a
// big-endian peer shows up. This port pins little-endian explicitly via
// encoding/binary, resolving the open compatibility question spec.md §9
// flags; the kind byte values are unchanged (see Kind's doc comment).
func Serialize(op Op) []byte {
	var buf []byte
	n := op.NumComponents()
	for i := 0; i < n; i++ {
		c := op.ComponentAt(i)
		switch c.Kind {
		case KindSkip, KindDelete:
			buf = append(buf, byte(c.Kind))
			buf = appendUint32(buf, uint32(c.N))
		case KindInsert:
			buf = append(buf, byte(KindInsert))
			buf = append(buf, c.Str.Bytes()...)
			buf = append(buf, 0)
		}
	}
	return append(buf, byte(KindNone))
}

func appendUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// Parse decodes an Op from the front of b, returning the decoded Op and the
// number of bytes consumed. It returns an error — never a negative count —
// on a truncated record, an unknown kind byte, or an Insert record missing
// its NUL terminator.
//
// Ported from text_op_from_bytes's CONSUME_BYTES-driven loop.
func Parse(b []byte) (Op, int, error) {
	var components []Component
	pos := 0

	for {
		if pos >= len(b) {
			return Op{}, 0, codedf(CodeMalformed, "truncated op: missing kind byte at offset %d", pos)
		}
		kind := Kind(b[pos])
		pos++

		switch kind {
		case KindNone:
			return FromComponents(components), pos, nil

		case KindSkip, KindDelete:
			if pos+4 > len(b) {
				return Op{}, 0, codedf(CodeMalformed, "truncated op: missing count at offset %d", pos)
			}
			n := binary.LittleEndian.Uint32(b[pos : pos+4])
			pos += 4
			if kind == KindSkip {
				components = append(components, Skip(uint64(n)))
			} else {
				components = append(components, DeleteN(uint64(n)))
			}

		case KindInsert:
			nul := bytes.IndexByte(b[pos:], 0)
			if nul < 0 {
				return Op{}, 0, codedf(CodeMalformed, "truncated op: insert missing NUL terminator at offset %d", pos)
			}
			// Copy the text out of b now: the caller may free/reuse b as
			// soon as Parse returns.
			s := string(b[pos : pos+nul])
			pos += nul + 1
			components = append(components, InsertStr(s))

		default:
			return Op{}, 0, codedf(CodeMalformed, "unknown component kind byte %d at offset %d", byte(kind), pos-1)
		}
	}
}
