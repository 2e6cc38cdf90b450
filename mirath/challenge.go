package mirath

import (
	"encoding/binary"

	"github.com/mirath-rx/mirath-go/field"
	"github.com/mirath-rx/mirath-go/internal/xof"
	"github.com/mirath-rx/mirath-go/params"
)

// gammaForExecution derives the round-one Fiat-Shamir challenge vector
// gamma_j (spec.md §4.D.2.c), one field element per MinRank column, from
// h1 and the execution index.
func gammaForExecution(f *field.Field, s *params.Set, h1 []byte, execIdx int) []byte {
	raw := xof.Expand(append(append([]byte(nil), h1...), execIndexBytes(execIdx)...), xof.TagChallenge, s.N)
	return xof.FieldVector(raw, f.Size())
}

// hiddenIndexForExecution derives which of the Parties simulated parties
// stays hidden in execution execIdx, from h2. Candidate 32-bit words are
// drawn from one Expand call and reduced into [0,Parties) with Lemire's
// nearly-divisionless bounded algorithm (spec.md §9's challenge rejection
// Open Question; see DESIGN.md for the resolution — this reduction runs
// over public data during both signing and verification, so it need not
// run in constant time).
func hiddenIndexForExecution(s *params.Set, h2 []byte, execIdx int) int {
	const candidates = 16
	raw := xof.Expand(append(append([]byte(nil), h2...), execIndexBytes(execIdx)...), xof.TagHidden, candidates*4)

	nu := uint64(s.Parties)
	thresh := uint32((uint64(1) << 32) % nu)

	for c := 0; c < candidates; c++ {
		x := uint64(binary.BigEndian.Uint32(raw[c*4 : c*4+4]))
		m := x * nu
		low := uint32(m)
		if low >= thresh {
			return int(m >> 32)
		}
	}
	// For the shipped parameter set (Parties=32) thresh is 0, so the first
	// candidate is always accepted. For other party counts each candidate
	// is rejected with probability below Parties/2^32; if all of them are,
	// fall back to a biased-but-terminating reduction rather than looping
	// forever.
	x := uint64(binary.BigEndian.Uint32(raw[:4]))
	return int((x * nu) >> 32)
}
