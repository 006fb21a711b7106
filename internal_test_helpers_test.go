package textop

// testDoc is a minimal, unexported Document used only by this package's own
// tests. It can't reuse textop/document.Text: that package imports textop
// to satisfy the Document interface, and these are internal (package
// textop) tests, so importing it back would be a cycle.
type testDoc struct {
	runes []rune
}

func newTestDoc(content string) *testDoc {
	return &testDoc{runes: []rune(content)}
}

func (d *testDoc) CharCount() int { return len(d.runes) }

func (d *testDoc) Insert(pos int, text string) error {
	if pos < 0 || pos > len(d.runes) {
		return ErrOutOfBounds
	}
	ins := []rune(text)
	grown := make([]rune, 0, len(d.runes)+len(ins))
	grown = append(grown, d.runes[:pos]...)
	grown = append(grown, ins...)
	grown = append(grown, d.runes[pos:]...)
	d.runes = grown
	return nil
}

func (d *testDoc) Delete(pos, n int) error {
	if pos < 0 || n < 0 || pos+n > len(d.runes) {
		return ErrOutOfBounds
	}
	d.runes = append(d.runes[:pos], d.runes[pos+n:]...)
	return nil
}

func (d *testDoc) Clone() Document {
	runes := make([]rune, len(d.runes))
	copy(runes, d.runes)
	return &testDoc{runes: runes}
}

func (d *testDoc) String() string { return string(d.runes) }
