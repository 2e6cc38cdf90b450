package matrix

import (
	"testing"

	"github.com/mirath-rx/mirath-go/field"
)

func gf16() *field.Field { return field.New(4, 0x13) }

func TestTransposeSquare(t *testing.T) {
	f := gf16()
	a := FromRows(f, [][]byte{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	want := FromRows(f, [][]byte{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}})
	if !a.Transpose().Equal(want) {
		t.Fatal("transpose mismatch")
	}
}

func TestTransposeNonSquare(t *testing.T) {
	f := gf16()
	a := FromRows(f, [][]byte{{1, 2, 3}, {4, 5, 6}})
	want := FromRows(f, [][]byte{{1, 4}, {2, 5}, {3, 6}})
	if !a.Transpose().Equal(want) {
		t.Fatal("transpose mismatch")
	}
}

func TestAddIsSelfInverse(t *testing.T) {
	f := gf16()
	a := FromRows(f, [][]byte{{1, 2}, {3, 4}})
	b := FromRows(f, [][]byte{{5, 6}, {7, 8}})
	sum := a.Add(b)
	back := sum.Add(b)
	if !back.Equal(a) {
		t.Fatal("a+b+b should equal a over GF(2^m)")
	}
}

func TestMulIdentity(t *testing.T) {
	f := gf16()
	a := FromRows(f, [][]byte{{1, 2}, {3, 4}})
	id := Identity(f, 2)
	if !a.Mul(id).Equal(a) {
		t.Fatal("a*I should equal a")
	}
}

func TestRankOfIdentityIsFull(t *testing.T) {
	f := gf16()
	id := Identity(f, 5)
	if rank := id.Rank(); rank != 5 {
		t.Fatalf("rank of I_5 = %d, want 5", rank)
	}
}

func TestRankOfZeroIsZero(t *testing.T) {
	f := gf16()
	z := New(f, 3, 3)
	if rank := z.Rank(); rank != 0 {
		t.Fatalf("rank of zero matrix = %d, want 0", rank)
	}
}

func TestSolveRecoversX(t *testing.T) {
	f := gf16()
	a := FromRows(f, [][]byte{{1, 0}, {0, 1}})
	x, ok := Solve(a, []byte{7, 9})
	if !ok {
		t.Fatal("expected solvable system")
	}
	if x[0] != 7 || x[1] != 9 {
		t.Fatalf("unexpected solution %v", x)
	}
}

func TestHStack(t *testing.T) {
	f := gf16()
	a := FromRows(f, [][]byte{{1}, {2}})
	b := FromRows(f, [][]byte{{3}, {4}})
	want := FromRows(f, [][]byte{{1, 3}, {2, 4}})
	if !HStack(a, b).Equal(want) {
		t.Fatal("hstack mismatch")
	}
}
