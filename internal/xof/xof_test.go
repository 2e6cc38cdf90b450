package xof

import "testing"

func TestExpandDeterministic(t *testing.T) {
	seed := []byte("0123456789abcdef")
	a := Expand(seed, TagMatrix, 64)
	b := Expand(seed, TagMatrix, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expand not deterministic at byte %d", i)
		}
	}
}

func TestExpandTagsDiverge(t *testing.T) {
	seed := []byte("0123456789abcdef")
	a := Expand(seed, TagMatrix, 32)
	b := Expand(seed, TagSecret, 32)
	equal := true
	for i := range a {
		if a[i] != b[i] {
			equal = false
			break
		}
	}
	if equal {
		t.Fatal("expected different domain tags to diverge")
	}
}

func TestCommitBindsIndices(t *testing.T) {
	payload := []byte("party-state")
	salt := make([]byte, 32)
	c1 := Commit(32, salt, 0, 0, payload)
	c2 := Commit(32, salt, 0, 1, payload)
	if string(c1) == string(c2) {
		t.Fatal("expected different party indices to produce different commits")
	}
}

func TestFieldVectorMasksToSize(t *testing.T) {
	raw := []byte{0xFF, 0xAB, 0x10, 0x0F}
	out := FieldVector(raw, 16)
	for _, v := range out {
		if v >= 16 {
			t.Fatalf("unmasked element %d", v)
		}
	}
}
