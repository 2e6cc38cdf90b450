// Package minrank generates and checks the MinRank public instance spec.md
// §3/§4.C describes: a family of matrices {M_0..M_k} over GF(2^m) with a
// secret low-rank witness (alpha, S, C) such that M_0 + sum(alpha_i * M_i)
// == S*C. Instance sampling follows the seed-expand-then-parse-as-matrices
// shape AU-HC-mayo-go's mayo.CompactKeyGen uses for its P1/P2 matrix
// families, generalized from MAYO's multivariate-quadratic matrices to
// MinRank's linear family.
package minrank

import (
	"github.com/mirath-rx/mirath-go/field"
	"github.com/mirath-rx/mirath-go/internal/xof"
	"github.com/mirath-rx/mirath-go/matrix"
	"github.com/mirath-rx/mirath-go/params"
)

// Instance is the full public MinRank instance: M_0..M_k plus the seed it
// was expanded from. M_1..M_k are reconstructible from seed_pub alone;
// M_0 is not (it depends on the witness chosen at keygen time), so it
// travels in the public key directly (spec.md §4.C, §6) rather than being
// re-derived here. The matrices are cached on this struct once expanded
// since every sign/verify execution needs them repeatedly.
type Instance struct {
	Set *params.Set
	F   *field.Field

	SeedPub []byte
	M       []*matrix.Matrix // M[0]..M[k], length Set.K+1
}

// Witness is the secret low-rank decomposition: M_0 + sum(alpha_i*M_i) ==
// S*C, with S n x r and C r x n, rank(S*C) <= r (spec.md §3's "MinRank
// secret witness").
type Witness struct {
	Alpha []byte // length K, field elements
	S     *matrix.Matrix
	C     *matrix.Matrix
}

// ExpandMatrices derives M_1..M_k from seed_pub via the seed expander,
// parsing the expanded stream as Set.K matrices of size n x n each — the
// "first k blocks of expand(seed_pub, TAG_M, ...)" spec.md §4.C specifies.
func ExpandMatrices(f *field.Field, s *params.Set, seedPub []byte) []*matrix.Matrix {
	cellsPerMatrix := s.N * s.N
	stream := xof.FieldVector(xof.Expand(seedPub, xof.TagMatrix, s.K*cellsPerMatrix), f.Size())
	out := make([]*matrix.Matrix, s.K)
	for i := 0; i < s.K; i++ {
		out[i] = matrix.FromFlat(f, s.N, s.N, stream[i*cellsPerMatrix:(i+1)*cellsPerMatrix])
	}
	return out
}

// DeriveWitness expands seed_sec into (alpha, S, C) via
// expand(seed_sec, TAG_SK, ...), following spec.md §4.C: "(alpha, S, C) come
// from expand(seed_sec, TAG_SK, ...)". C is built as [I_r | C'] so rank(S*C)
// <= r trivially holds for any S, matching the Python prototype's
// I_r/C_prime construction in original_source/mirath.py.
func DeriveWitness(f *field.Field, s *params.Set, seedSec []byte) *Witness {
	sCells := s.N * s.R
	cPrimeCells := s.R * (s.N - s.R)
	total := s.K + sCells + cPrimeCells
	stream := xof.FieldVector(xof.Expand(seedSec, xof.TagSecret, total), f.Size())

	alpha := stream[:s.K]
	sFlat := stream[s.K : s.K+sCells]
	cPrimeFlat := stream[s.K+sCells : total]

	sMat := matrix.FromFlat(f, s.N, s.R, append([]byte(nil), sFlat...))
	cPrime := matrix.FromFlat(f, s.R, s.N-s.R, append([]byte(nil), cPrimeFlat...))
	identity := matrix.Identity(f, s.R)
	c := matrix.HStack(identity, cPrime)

	return &Witness{Alpha: append([]byte(nil), alpha...), S: sMat, C: c}
}

// M0 computes M_0 = S*C - sum(alpha_i * M_i), closing the relation so that
// keygen's chosen witness satisfies it exactly (spec.md §4.C).
func M0(f *field.Field, alphaMi []*matrix.Matrix, alpha []byte, s, c *matrix.Matrix) *matrix.Matrix {
	sc := s.Mul(c)
	acc := sc
	for i, m := range alphaMi {
		if alpha[i] == 0 {
			continue
		}
		acc = acc.Sub(m.Scale(alpha[i]))
	}
	return acc
}

// CheckRelation confirms M_0 + sum(alpha_i*M_i) == S*C (spec.md §4.C's
// relation check, re-run by keygen before returning and available to tests
// that want to assert the Relation Invariant property directly).
func CheckRelation(f *field.Field, m0 *matrix.Matrix, mi []*matrix.Matrix, alpha []byte, s, c *matrix.Matrix) bool {
	lhs := m0.Clone()
	for i, mm := range mi {
		if alpha[i] == 0 {
			continue
		}
		lhs = lhs.Add(mm.Scale(alpha[i]))
	}
	rhs := s.Mul(c)
	return lhs.Equal(rhs)
}

// Build assembles the full Instance (public matrices + witness) from the
// two seeds, running the relation check before returning — matching
// spec.md §4.C's "Keygen re-checks this invariant before returning;
// failure is an implementation bug, not a runtime error."
func Build(f *field.Field, s *params.Set, seedPub, seedSec []byte) (*Instance, *Witness) {
	mi := ExpandMatrices(f, s, seedPub)
	w := DeriveWitness(f, s, seedSec)
	m0 := M0(f, mi, w.Alpha, w.S, w.C)

	if !CheckRelation(f, m0, mi, w.Alpha, w.S, w.C) {
		panic("minrank: keygen relation invariant failed — implementation bug")
	}

	all := append([]*matrix.Matrix{m0}, mi...)
	return &Instance{Set: s, F: f, SeedPub: seedPub, M: all}, w
}

// Rebuild reconstructs the full Instance from seed_pub and the public M_0
// carried in the signer's public key, for verification's instance
// re-derivation (spec.md §4.D Verification step 1).
func Rebuild(f *field.Field, s *params.Set, seedPub []byte, m0 *matrix.Matrix) *Instance {
	mi := ExpandMatrices(f, s, seedPub)
	all := append([]*matrix.Matrix{m0}, mi...)
	return &Instance{Set: s, F: f, SeedPub: seedPub, M: all}
}
