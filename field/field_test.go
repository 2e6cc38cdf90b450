package field

import (
	"math/rand"
	"testing"
)

// GF16 with the x^4+x+1 reduction polynomial, same as AU-HC-mayo-go uses
// for MAYO's GF16, and the field the only shipped Mirath parameter set (tag
// 0x01, m=4) needs.
func gf16() *Field { return New(4, 0x13) }

func TestAddCommutativeAssociative(t *testing.T) {
	f := gf16()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 256; i++ {
		a, b, c := byte(r.Intn(16)), byte(r.Intn(16)), byte(r.Intn(16))
		if f.Add(a, b) != f.Add(b, a) {
			t.Fatalf("add not commutative for %d,%d", a, b)
		}
		if f.Add(f.Add(a, b), c) != f.Add(a, f.Add(b, c)) {
			t.Fatalf("add not associative for %d,%d,%d", a, b, c)
		}
		if f.Add(a, a) != 0 {
			t.Fatalf("a+a != 0 for %d", a)
		}
	}
}

func TestMulCommutativeDistributive(t *testing.T) {
	f := gf16()
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 256; i++ {
		a, b, c := byte(r.Intn(16)), byte(r.Intn(16)), byte(r.Intn(16))
		if f.Mul(a, b) != f.Mul(b, a) {
			t.Fatalf("mul not commutative for %d,%d", a, b)
		}
		lhs := f.Mul(a, f.Add(b, c))
		rhs := f.Add(f.Mul(a, b), f.Mul(a, c))
		if lhs != rhs {
			t.Fatalf("distributivity failed for %d,%d,%d", a, b, c)
		}
	}
}

func TestInverse(t *testing.T) {
	f := gf16()
	for a := byte(1); a < 16; a++ {
		inv := f.Inv(a)
		if f.Mul(a, inv) != 1 {
			t.Fatalf("a * a^-1 != 1 for a=%d (inv=%d)", a, inv)
		}
	}
	if f.Inv(0) != 0 {
		t.Fatalf("Inv(0) should be 0 by convention, got %d", f.Inv(0))
	}
}

func TestMulIdentityAndZero(t *testing.T) {
	f := gf16()
	for a := byte(0); a < 16; a++ {
		if f.Mul(a, 1) != a {
			t.Fatalf("a*1 != a for a=%d", a)
		}
		if f.Mul(a, 0) != 0 {
			t.Fatalf("a*0 != 0 for a=%d", a)
		}
	}
}
