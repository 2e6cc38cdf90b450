package zeroize

import "testing"

func TestBytesZeroesInPlace(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Bytes(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not zeroed: %v", i, v)
		}
	}
}

func TestAllZeroesEverySlice(t *testing.T) {
	a := []byte{9, 9}
	b := []byte{8, 8, 8}
	All(a, b)
	for _, v := range a {
		if v != 0 {
			t.Fatal("a not zeroed")
		}
	}
	for _, v := range b {
		if v != 0 {
			t.Fatal("b not zeroed")
		}
	}
}
