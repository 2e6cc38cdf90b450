// Package benchmark measures Keygen/Sign/Verify latency and writes the
// results out as JSON, grounded on AU-HC-mayo-go's benchmark/benchmark.go
// ParameterSet function — generalized from a single fixed security level
// to mirath's tag-indexed parameter sets.
package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mirath-rx/mirath-go/mirath"
	"github.com/mirath-rx/mirath-go/params"
)

const directory = "benchmark/results"

// Results holds n nanosecond-resolution timings per operation, matching
// the teacher's Results shape (one []int64 per pipeline stage).
type Results struct {
	Keygen []int64 `json:"keygen"`
	Sign   []int64 `json:"sign"`
	Verify []int64 `json:"verify"`
}

// ParameterSet runs n iterations of Keygen/Sign/Verify for tag and writes
// the timings to benchmark/results, matching the teacher's
// paramset-<level>-<timestamp>-results.json naming.
func ParameterSet(tag params.Tag, n int, now time.Time) error {
	message := []byte("consultation: amoxicilline 500mg, 3x/jour")

	keygenResults := make([]int64, n)
	keys := make([]*mirath.SecretKey, n)
	for i := 0; i < n; i++ {
		before := time.Now()
		_, sk, err := mirath.Keygen(tag)
		keygenResults[i] = time.Since(before).Nanoseconds()
		if err != nil {
			return fmt.Errorf("benchmark: keygen: %w", err)
		}
		keys[i] = sk
	}

	if _, err := params.Lookup(tag); err != nil {
		return err
	}

	signResults := make([]int64, n)
	sigs := make([]*mirath.Signature, n)
	pks := make([]*mirath.PublicKey, n)
	for i := 0; i < n; i++ {
		before := time.Now()
		sig, pk, err := mirath.Sign(keys[i], message)
		signResults[i] = time.Since(before).Nanoseconds()
		if err != nil {
			return fmt.Errorf("benchmark: sign: %w", err)
		}
		sigs[i] = sig
		pks[i] = pk
	}

	verifyResults := make([]int64, n)
	for i := 0; i < n; i++ {
		before := time.Now()
		err := mirath.Verify(pks[i], message, sigs[i])
		verifyResults[i] = time.Since(before).Nanoseconds()
		if err != nil {
			return fmt.Errorf("benchmark: verify: %w", err)
		}
	}

	results := Results{Keygen: keygenResults, Sign: signResults, Verify: verifyResults}
	resultsJSON, err := json.MarshalIndent(results, "", " ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return err
	}
	path := fmt.Sprintf("%s/paramset-%d-%s-results.json", directory, tag, now.Format("2006-01-02-15-04-05"))
	return os.WriteFile(path, resultsJSON, 0o644)
}
