package benchmark

import (
	"os"
	"testing"
	"time"

	"github.com/mirath-rx/mirath-go/mirath"
	"github.com/mirath-rx/mirath-go/params"
)

// BenchmarkKeygen mirrors AU-HC-mayo-go's BenchmarkMayo_APISign shape: a
// single setup block, a b.N-scaled loop around the operation under timing.
func BenchmarkKeygen(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, _, err := mirath.Keygen(params.Tag01); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSign(b *testing.B) {
	_, sk, err := mirath.Keygen(params.Tag01)
	if err != nil {
		b.Fatal(err)
	}
	message := []byte("ordonnance: amoxicilline 500mg, 3x/jour")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mirath.Sign(sk, message); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	_, sk, err := mirath.Keygen(params.Tag01)
	if err != nil {
		b.Fatal(err)
	}
	message := []byte("ordonnance: amoxicilline 500mg, 3x/jour")
	sig, pk, err := mirath.Sign(sk, message)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := mirath.Verify(pk, message, sig); err != nil {
			b.Fatal(err)
		}
	}
}

func TestParameterSetWritesResults(t *testing.T) {
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(prevDir)

	if err := ParameterSet(params.Tag01, 2, time.Now()); err != nil {
		t.Fatalf("ParameterSet: %v", err)
	}
}
