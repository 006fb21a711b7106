package textop

import "testing"

func TestCharCountString(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"日本語", 3},
		{"a\U0001F600b", 3},
	}
	for _, c := range cases {
		if got := CharCountString(c.s); got != c.want {
			t.Errorf("CharCountString(%q) = %d, want %d", c.s, got, c.want)
		}
		if got := CharCount([]byte(c.s)); got != c.want {
			t.Errorf("CharCount(%q) = %d, want %d", c.s, got, c.want)
		}
	}
}

func TestAdvanceChars(t *testing.T) {
	cases := []struct {
		s    string
		n    int
		want int
	}{
		{"hello", 0, 0},
		{"hello", 3, 3},
		{"hello", 10, 5}, // clamps at end of buffer
		{"日本語", 1, 3},
		{"日本語", 2, 6},
		{"日本語", 3, 9},
		{"a\U0001F600b", 2, 5}, // 'a' (1 byte) + emoji (4 bytes)
	}
	for _, c := range cases {
		if got := AdvanceChars([]byte(c.s), c.n); got != c.want {
			t.Errorf("AdvanceChars(%q, %d) = %d, want %d", c.s, c.n, got, c.want)
		}
	}
}
