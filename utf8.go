package textop

import "unicode/utf8"

// CharCount returns the number of Unicode codepoints encoded in b.
//
// This is the character-counting contract from the original utf8.c's
// strlen_utf8: the word-parallel bit tricks there exist because C has no
// builtin UTF-8 decoder; Go's unicode/utf8 package already counts runes
// without a hand-rolled scan, so we just defer to it.
func CharCount(b []byte) int {
	return utf8.RuneCount(b)
}

// CharCountString is CharCount for a string, avoiding a []byte conversion.
func CharCountString(s string) int {
	return utf8.RuneCountInString(s)
}

// AdvanceChars returns the byte offset reached by walking n codepoints
// forward from the start of b. Walking stops early only if b is exhausted
// before n codepoints are consumed, in which case len(b) is returned.
//
// Ported from utf8.c's count_utf8_chars: each leading byte is classified by
// its high bits into a codepoint width (1/2/3/4, with 5/6-byte lead bytes
// tolerated for forward progress though well-formed UTF-8 never emits them).
// Undefined results on invalid UTF-8 are acceptable per spec: this function,
// like its C original, assumes its input is well-formed.
func AdvanceChars(b []byte, n int) int {
	pos := 0
	for i := 0; i < n && pos < len(b); i++ {
		pos += codepointSize(b[pos])
		if pos > len(b) {
			pos = len(b)
		}
	}
	return pos
}

// codepointSize returns the byte width of the UTF-8 codepoint whose leading
// byte is b, classified the same way utf8.c's codepoint_size does.
func codepointSize(b byte) int {
	switch {
	case b <= 0x7f:
		return 1
	case b <= 0xbf:
		// Not a valid leading byte (it's a continuation byte). Treat as
		// width 1 so we still make forward progress on malformed input
		// rather than looping forever.
		return 1
	case b <= 0xdf:
		return 2
	case b <= 0xef:
		return 3
	case b <= 0xf7:
		return 4
	case b <= 0xfb:
		return 5
	default:
		return 6
	}
}
