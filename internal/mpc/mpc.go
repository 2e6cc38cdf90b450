// Package mpc implements the MPC-in-the-head party simulation spec.md
// §4.D.2 describes: splitting the MinRank witness (alpha, S, C) additively
// across Parties simulated parties, and checking the bilinear relation
// M_0 + sum(alpha_t*M_t) == S*C without ever reconstructing the witness in
// one place.
//
// Additive secret sharing here follows the SecretShare naming convention
// eluv-io-circl-secp-hpke's group/secretsharing package uses, though the
// sharing itself is plain additive-over-GF(2^m) rather than Shamir: every
// party but the last derives its share pseudorandomly from a seed-tree leaf
// (internal/seedtree), and the last party's share is whatever correction
// makes the shares sum back to the real witness — the scheme only needs
// threshold-N-of-N reconstruction, never partial recovery, so Shamir's
// extra structure buys nothing here.
//
// Because S*C is bilinear, summing each party's local S_i*C_i does not
// recover S*C; it's missing the cross terms sum_{i != j} S_i*C_j. Rather
// than opening a Beaver triple (which would need extra committed
// randomness with no slot in spec.md §6's per-execution byte budget), this
// implementation folds the entire cross-term correction into the last
// party's local check value as a single n x n matrix CrossX, computed by
// the prover (who holds the full witness) and carried alongside the last
// party's share inside aux_j. See DESIGN.md's Open Question resolution for
// the reasoning.
package mpc

import (
	"github.com/mirath-rx/mirath-go/field"
	"github.com/mirath-rx/mirath-go/internal/xof"
	"github.com/mirath-rx/mirath-go/matrix"
	"github.com/mirath-rx/mirath-go/minrank"
	"github.com/mirath-rx/mirath-go/params"
)

// Share is one party's additive share of the witness.
type Share struct {
	Alpha []byte // length K
	S     *matrix.Matrix
	C     *matrix.Matrix
}

// Execution holds every party's share for one of the tau MPC-in-the-head
// repetitions, plus the cross-term corrector folded into the last party.
type Execution struct {
	Shares []*Share // length Parties; Shares[Parties-1] is the correction party
	CrossX *matrix.Matrix
}

// ExpandPartyState derives a non-last party's share pseudorandomly from its
// seed-tree leaf, via expand(leafSeed, TAG_SHARE, ...), in the same
// seed-then-parse-as-field-elements shape minrank.DeriveWitness uses for
// the real witness — except a share's C need not have the [I_r | C'] shape
// the secret witness does, since only the sum of shares is constrained.
func ExpandPartyState(f *field.Field, s *params.Set, leafSeed []byte) *Share {
	sCells := s.N * s.R
	cCells := s.R * s.N
	total := s.K + sCells + cCells
	stream := xof.FieldVector(xof.Expand(leafSeed, xof.TagShare, total), f.Size())

	alpha := append([]byte(nil), stream[:s.K]...)
	sMat := matrix.FromFlat(f, s.N, s.R, append([]byte(nil), stream[s.K:s.K+sCells]...))
	cMat := matrix.FromFlat(f, s.R, s.N, append([]byte(nil), stream[s.K+sCells:total]...))

	return &Share{Alpha: alpha, S: sMat, C: cMat}
}

// addAlpha XORs two field-element vectors (addition over GF(2^m)).
func addAlpha(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// BuildExecution derives Parties-1 pseudorandom shares from leafSeeds and
// computes the last party's correction share plus the cross-term
// corrector, so that the shares sum back to witness exactly (spec.md
// §4.D.2.a).
func BuildExecution(f *field.Field, s *params.Set, leafSeeds [][]byte, witness *minrank.Witness) *Execution {
	last := s.Parties - 1
	shares := make([]*Share, s.Parties)

	sumAlpha := make([]byte, s.K)
	sumS := matrix.New(f, s.N, s.R)
	sumC := matrix.New(f, s.R, s.N)
	sumSC := matrix.New(f, s.N, s.N)

	for i := 0; i < last; i++ {
		sh := ExpandPartyState(f, s, leafSeeds[i])
		shares[i] = sh
		sumAlpha = addAlpha(sumAlpha, sh.Alpha)
		sumS = sumS.Add(sh.S)
		sumC = sumC.Add(sh.C)
		sumSC = sumSC.Add(sh.S.Mul(sh.C))
	}

	lastShare := &Share{
		Alpha: addAlpha(witness.Alpha, sumAlpha),
		S:     witness.S.Sub(sumS),
		C:     witness.C.Sub(sumC),
	}
	shares[last] = lastShare
	sumSC = sumSC.Add(lastShare.S.Mul(lastShare.C))

	crossX := witness.S.Mul(witness.C).Sub(sumSC)

	return &Execution{Shares: shares, CrossX: crossX}
}

// LocalCheck computes party partyIdx's raw n x n relation-check
// contribution: its slice of sum(alpha_t*M_t) (plus M_0 for party 0), minus
// its local bilinear term S_i*C_i (plus the cross-term correction for the
// last party). Summed over every party, the result is exactly
// M_0 + sum(alpha_t*M_t) - S*C, which is the zero matrix for a valid
// witness (spec.md §4.D.2.c).
func LocalCheck(f *field.Field, s *params.Set, mats []*matrix.Matrix, ex *Execution, partyIdx int) *matrix.Matrix {
	sh := ex.Shares[partyIdx]
	l := matrix.New(f, s.N, s.N)
	for t := 0; t < s.K; t++ {
		if sh.Alpha[t] == 0 {
			continue
		}
		l = l.Add(mats[t+1].Scale(sh.Alpha[t]))
	}
	if partyIdx == 0 {
		l = l.Add(mats[0])
	}

	raw := l.Sub(sh.S.Mul(sh.C))
	if partyIdx == s.Parties-1 {
		raw = raw.Sub(ex.CrossX)
	}
	return raw
}

// CompressMessage applies the round-one Fiat-Shamir challenge vector gamma
// (length N, one field element per column) to compress a party's n x n raw
// check matrix into an n-element outbound message, via Freivalds'
// technique: raw == 0 implies raw*gamma == 0 always, and raw != 0 implies
// raw*gamma == 0 with probability at most 1/|F| over a random gamma
// (spec.md §4.D.2.c/d, DESIGN.md's Open Question resolution).
func CompressMessage(raw *matrix.Matrix, gamma []byte) []byte {
	return raw.VecMul(gamma)
}

// EncodeShare canonically serializes a party's share for hashing into its
// commitment.
func EncodeShare(sh *Share) []byte {
	out := make([]byte, 0, len(sh.Alpha)+len(sh.S.Flat())+len(sh.C.Flat()))
	out = append(out, sh.Alpha...)
	out = append(out, sh.S.Flat()...)
	out = append(out, sh.C.Flat()...)
	return out
}

// CommitParty computes commit(salt, execIdx, partyIdx, encode(share)),
// spec.md §4.B.2/§4.D.2.a's per-party commitment.
func CommitParty(s *params.Set, salt []byte, execIdx, partyIdx int, sh *Share) []byte {
	return xof.Commit(s.DigestBytes, salt, execIdx, partyIdx, EncodeShare(sh))
}

// SumMessages adds every party's outbound message vector together; a valid
// proof's sum is the all-zero vector (spec.md §4.D.2.d's verification
// check).
func SumMessages(msgs [][]byte) []byte {
	out := make([]byte, len(msgs[0]))
	for _, m := range msgs {
		for i, v := range m {
			out[i] ^= v
		}
	}
	return out
}

// IsZero reports whether every byte of v is zero.
func IsZero(v []byte) bool {
	for _, b := range v {
		if b != 0 {
			return false
		}
	}
	return true
}
