package textop

import "testing"

func componentsEqual(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].N != b[i].N || a[i].Str.Raw() != b[i].Str.Raw() {
			return false
		}
	}
	return true
}

// P3: rebuilding an op by appending each of its components yields an op
// whose components are identical to the original.
func TestNormalizationIdempotence(t *testing.T) {
	ops := []Op{
		InsertOp(0, "hi there"),
		DeleteOp(5, 3),
		FromComponents([]Component{Skip(10), InsertStr("oh hi"), Skip(5), DeleteN(20)}),
		FromComponents([]Component{DeleteN(1), InsertStr("x"), DeleteN(2)}),
		Empty,
	}
	for _, op := range ops {
		rebuilt := FromComponents(op.Components())
		if !componentsEqual(op.Components(), rebuilt.Components()) {
			t.Errorf("rebuilding %v produced %v", op.Components(), rebuilt.Components())
		}
	}
}

// P5: the empty op is the identity of Compose on both sides and of Apply.
func TestIdentityCompose(t *testing.T) {
	op := InsertOp(10, "hello")

	left := Compose(Empty, op)
	if !componentsEqual(left.Components(), op.Components()) {
		t.Errorf("Compose(Empty, op) = %v, want %v", left.Components(), op.Components())
	}

	right := Compose(op, Empty)
	if !componentsEqual(right.Components(), op.Components()) {
		t.Errorf("Compose(op, Empty) = %v, want %v", right.Components(), op.Components())
	}
}

func TestIdentityApply(t *testing.T) {
	doc := newTestDoc("hello world")
	if err := Apply(doc, Empty); err != nil {
		t.Fatalf("Apply(doc, Empty) returned error: %v", err)
	}
	if doc.String() != "hello world" {
		t.Errorf("document mutated by empty op: got %q", doc.String())
	}
}

func TestOpIsEmpty(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Error("Empty.IsEmpty() = false")
	}
	if InsertOp(0, "x").IsEmpty() {
		t.Error("InsertOp(0, \"x\").IsEmpty() = true")
	}
	if !InsertOp(5, "").IsEmpty() {
		t.Error("InsertOp(5, \"\").IsEmpty() = false, want true (empty insert has no effect)")
	}
	if !DeleteOp(5, 0).IsEmpty() {
		t.Error("DeleteOp(5, 0).IsEmpty() = false, want true (zero-length delete has no effect)")
	}
}

func TestAppendComponentMergesAdjacent(t *testing.T) {
	op := FromComponents([]Component{Skip(3), Skip(4), DeleteN(2), DeleteN(5), InsertStr("a"), InsertStr("b")})
	want := []Component{Skip(7), DeleteN(7), InsertStr("ab")}
	if !componentsEqual(op.Components(), want) {
		t.Errorf("got %v, want %v", op.Components(), want)
	}
}

func TestFromComponentsTrimsTrailingSkip(t *testing.T) {
	op := FromComponents([]Component{InsertStr("hi"), Skip(100)})
	n := op.NumComponents()
	if n == 0 {
		t.Fatal("expected a non-empty op")
	}
	if op.ComponentAt(n - 1).Kind == KindSkip {
		t.Errorf("op ends in a trailing Skip: %v", op.Components())
	}
}

func TestOpClone(t *testing.T) {
	op := FromComponents([]Component{Skip(1), InsertStr("x"), Skip(1), DeleteN(2)})
	cloned := Clone(op)
	if !componentsEqual(op.Components(), cloned.Components()) {
		t.Errorf("Clone produced different components: %v vs %v", op.Components(), cloned.Components())
	}
}

// Insert/Delete are the int-typed public constructors; they must agree with
// the uint64-typed InsertOp/DeleteOp they wrap.
func TestInsertMatchesInsertOp(t *testing.T) {
	got := Insert(3, "hi")
	want := InsertOp(3, "hi")
	if !componentsEqual(got.Components(), want.Components()) {
		t.Errorf("Insert(3, %q) = %v, want %v", "hi", got.Components(), want.Components())
	}
}

func TestDeleteMatchesDeleteOp(t *testing.T) {
	got := Delete(2, 5)
	want := DeleteOp(2, 5)
	if !componentsEqual(got.Components(), want.Components()) {
		t.Errorf("Delete(2, 5) = %v, want %v", got.Components(), want.Components())
	}
}

func TestInsertDeleteClampNegativeArguments(t *testing.T) {
	if got := Insert(-5, "x"); got.ComponentAt(0).Kind != KindInsert {
		t.Errorf("Insert(-5, \"x\") did not clamp pos to 0: %v", got.Components())
	}
	if got := Delete(-1, -1); !got.IsEmpty() {
		t.Errorf("Delete(-1, -1) = %v, want the empty op (n clamped to 0)", got.Components())
	}
}
