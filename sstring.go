package textop

// String is a small, immutable-by-convention UTF-8 string value carrying
// both its byte length and its character (codepoint) length, so repeated
// CharLen calls don't re-scan the content.
//
// The original str.h hand-rolls a small-string optimization: strings under
// ~16 bytes are stored inline in the struct to avoid a heap allocation.
// Go's string type already gives us that for free — a string header is a
// pointer + length regardless of content size, slicing never copies the
// backing array, and the runtime interns short string constants — so String
// here is just a thin value type caching the char count rather than a
// hand-rolled inline buffer. See DESIGN.md for the full reasoning.
type String struct {
	s       string
	charLen int
}

// NewString wraps s, computing and caching its character length.
func NewString(s string) String {
	return String{s: s, charLen: CharCountString(s)}
}

// Bytes returns the string's raw UTF-8 bytes.
func (s String) Bytes() []byte {
	return []byte(s.s)
}

// Raw returns the underlying Go string.
func (s String) Raw() string {
	return s.s
}

// ByteLen returns the number of bytes in the string.
func (s String) ByteLen() int {
	return len(s.s)
}

// CharLen returns the number of Unicode codepoints in the string.
func (s String) CharLen() int {
	return s.charLen
}

// IsEmpty reports whether the string has zero bytes.
func (s String) IsEmpty() bool {
	return s.s == ""
}

// Append returns a new String with other's content concatenated onto s.
func (s String) Append(other String) String {
	return String{s: s.s + other.s, charLen: s.charLen + other.charLen}
}

// Substring returns the substring of s starting at character offset
// startChars and spanning lengthChars characters (clamped to the string's
// length), materializing a new String the way take() does when it slices
// an Insert component mid-range.
func (s String) Substring(startChars, lengthChars int) String {
	b := []byte(s.s)
	from := AdvanceChars(b, startChars)
	to := AdvanceChars(b[from:], lengthChars) + from
	return NewString(s.s[from:to])
}

// String implements fmt.Stringer.
func (s String) String() string {
	return s.s
}
