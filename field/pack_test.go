package field

import (
	"math/rand"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	f := New(4, 0x13)
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{0, 1, 2, 15, 78, 225} {
		vals := make([]byte, n)
		for i := range vals {
			vals[i] = byte(r.Intn(f.Size()))
		}
		packed := f.PackBits(vals)
		got := f.UnpackBits(packed, n)
		for i := range vals {
			if got[i] != vals[i] {
				t.Fatalf("n=%d i=%d: got %x want %x", n, i, got[i], vals[i])
			}
		}
	}
}
