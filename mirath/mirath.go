package mirath

import (
	"crypto/rand"
	"fmt"

	"github.com/mirath-rx/mirath-go/field"
	"github.com/mirath-rx/mirath-go/internal/mpc"
	"github.com/mirath-rx/mirath-go/internal/seedtree"
	"github.com/mirath-rx/mirath-go/internal/xof"
	"github.com/mirath-rx/mirath-go/matrix"
	"github.com/mirath-rx/mirath-go/minrank"
	"github.com/mirath-rx/mirath-go/params"
)

// encodeAux packs the correction party's share plus the cross-term
// corrector matrix into aux_j's fixed-width slot (spec.md §6, DESIGN.md's
// aux-width Open Question resolution).
func encodeAux(f *field.Field, s *params.Set, ex *mpc.Execution) []byte {
	last := ex.Shares[s.Parties-1]
	elems := make([]byte, 0, s.K+s.N*s.R+s.R*s.N+s.N*s.N)
	elems = append(elems, last.Alpha...)
	elems = append(elems, last.S.Flat()...)
	elems = append(elems, last.C.Flat()...)
	elems = append(elems, ex.CrossX.Flat()...)
	return f.PackBits(elems)
}

// decodeAux reverses encodeAux, rebuilding the correction party's share
// and the cross-term corrector from aux_j.
func decodeAux(f *field.Field, s *params.Set, aux []byte) (*mpc.Share, *matrix.Matrix) {
	count := s.K + s.N*s.R + s.R*s.N + s.N*s.N
	elems := f.UnpackBits(aux, count)
	off := 0
	alpha := elems[off : off+s.K]
	off += s.K
	sFlat := elems[off : off+s.N*s.R]
	off += s.N * s.R
	cFlat := elems[off : off+s.R*s.N]
	off += s.R * s.N
	xFlat := elems[off : off+s.N*s.N]

	share := &mpc.Share{
		Alpha: alpha,
		S:     matrix.FromFlat(f, s.N, s.R, sFlat),
		C:     matrix.FromFlat(f, s.R, s.N, cFlat),
	}
	crossX := matrix.FromFlat(f, s.N, s.N, xFlat)
	return share, crossX
}

// decodeM0 unpacks pk.M0 into its matrix form.
func decodeM0(f *field.Field, s *params.Set, packed []byte) *matrix.Matrix {
	elems := f.UnpackBits(packed, s.N*s.N)
	return matrix.FromFlat(f, s.N, s.N, elems)
}

// Sign produces a Signature over message under sk, following spec.md
// §4.D.2's commit/challenge/response state machine, repeated Tau times and
// Fiat-Shamir-collapsed into the two challenge hashes h1 (commit phase) and
// h2 (hidden-party selection).
func Sign(sk *SecretKey, message []byte) (*Signature, *PublicKey, error) {
	s, err := params.Lookup(sk.Tag)
	if err != nil {
		return nil, nil, err
	}
	if err := params.EnsureSupported(s); err != nil {
		return nil, nil, err
	}
	f := field.New(s.M, s.Poly)

	inst, witness, seedPub := rebuildInstance(f, s, sk.SeedSec)
	pk := &PublicKey{Tag: sk.Tag, SeedPub: seedPub, M0: f.PackBits(inst.M[0].Flat())}

	salt := make([]byte, s.DigestBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("mirath: sign: %w", err)
	}

	trees := make([]*seedtree.Tree, s.Tau)
	executions := make([]*mpc.Execution, s.Tau)
	commits := make([][][]byte, s.Tau)

	for j := 0; j < s.Tau; j++ {
		masterSeed := xof.Hash(s.SeedBytes, sk.SeedSec, salt, message, execIndexBytes(j), []byte{xof.TagSig})
		tree := seedtree.New(masterSeed, s.Parties-1)
		ex := mpc.BuildExecution(f, s, tree.All(), witness)

		trees[j] = tree
		executions[j] = ex
		commits[j] = make([][]byte, s.Parties)
		for i := 0; i < s.Parties; i++ {
			commits[j][i] = mpc.CommitParty(s, salt, j, i, ex.Shares[i])
		}
	}

	allCommits := make([][]byte, 0, s.Tau*s.Parties)
	for j := 0; j < s.Tau; j++ {
		allCommits = append(allCommits, commits[j]...)
	}
	h1 := xof.ChallengeOne(s.DigestBytes, salt, EncodePK(pk), message, allCommits)

	msgs := make([][][]byte, s.Tau)
	msgsPacked := make([][]byte, 0, s.Tau*s.Parties)
	for j := 0; j < s.Tau; j++ {
		gamma := gammaForExecution(f, s, h1, j)
		msgs[j] = make([][]byte, s.Parties)
		for i := 0; i < s.Parties; i++ {
			raw := mpc.LocalCheck(f, s, inst.M, executions[j], i)
			msgs[j][i] = mpc.CompressMessage(raw, gamma)
			msgsPacked = append(msgsPacked, f.PackBits(msgs[j][i]))
		}
	}
	h2 := xof.ChallengeTwo(s.DigestBytes, salt, h1, msgsPacked)

	openings := make([]*Opening, s.Tau)
	for j := 0; j < s.Tau; j++ {
		hidden := hiddenIndexForExecution(s, h2, j)

		o := &Opening{
			Seeds:        make([][]byte, s.Parties-1),
			Aux:          make([]byte, s.AuxBytes),
			HiddenCommit: commits[j][hidden],
			HiddenMsg:    f.PackBits(msgs[j][hidden]),
		}
		for i := 0; i < s.Parties-1; i++ {
			if i == hidden {
				o.Seeds[i] = make([]byte, s.SeedBytes)
				continue
			}
			o.Seeds[i] = trees[j].Leaf(i)
		}
		if hidden != s.Parties-1 {
			o.Aux = encodeAux(f, s, executions[j])
		}
		openings[j] = o
	}

	sig := &Signature{Tag: sk.Tag, Salt: salt, H1: h1, H2: h2, Openings: openings}
	return sig, pk, nil
}

// Verify checks sig against message under pk, recomputing every
// committed and challenged value from the opened state and rejecting on
// any mismatch (spec.md §4.D.3).
func Verify(pk *PublicKey, message []byte, sig *Signature) error {
	if sig.Tag != pk.Tag {
		return params.ErrInvalidParams
	}
	s, err := params.Lookup(pk.Tag)
	if err != nil {
		return err
	}
	if err := params.EnsureSupported(s); err != nil {
		return err
	}
	f := field.New(s.M, s.Poly)

	if len(sig.Openings) != s.Tau {
		return ErrVerifyFailed
	}

	m0 := decodeM0(f, s, pk.M0)
	inst := minrank.Rebuild(f, s, pk.SeedPub, m0)

	// The hidden party's index for each execution is determined
	// structurally by the opening itself: the prover zero-fills exactly
	// the hidden party's seed slot (or, when the correction party is the
	// one hidden, zero-fills aux instead) and supplies its real commit
	// and message out of band via HiddenCommit/HiddenMsg. This lets h1 be
	// computed from a full per-party commit list before h2 (and the
	// Fiat-Shamir-derived hidden index) exist at all. Soundness comes
	// from checking, once h2 is known, that the independently derived
	// hidden index matches this structural one (see the final loop
	// below) — a prover cannot steer which party ends up blanked since
	// that would require predicting h2 before committing to h1.
	structuralHidden := make([]int, s.Tau)
	perExecShares := make([][]*mpc.Share, s.Tau)
	perExecCrossX := make([]*matrix.Matrix, s.Tau)
	perExecCommits := make([][][]byte, s.Tau)

	for j := 0; j < s.Tau; j++ {
		o := sig.Openings[j]
		if len(o.Seeds) != s.Parties-1 {
			return ErrVerifyFailed
		}

		hidden := -1
		if mpc.IsZero(o.Aux) {
			hidden = s.Parties - 1
		} else {
			for i, seed := range o.Seeds {
				if mpc.IsZero(seed) {
					hidden = i
					break
				}
			}
		}
		if hidden < 0 {
			return ErrVerifyFailed
		}
		structuralHidden[j] = hidden

		shares := make([]*mpc.Share, s.Parties)
		commitsJ := make([][]byte, s.Parties)
		for i := 0; i < s.Parties-1; i++ {
			if i == hidden {
				commitsJ[i] = o.HiddenCommit
				continue
			}
			shares[i] = mpc.ExpandPartyState(f, s, o.Seeds[i])
			commitsJ[i] = mpc.CommitParty(s, sig.Salt, j, i, shares[i])
		}
		if hidden == s.Parties-1 {
			commitsJ[s.Parties-1] = o.HiddenCommit
		} else {
			lastShare, crossX := decodeAux(f, s, o.Aux)
			shares[s.Parties-1] = lastShare
			perExecCrossX[j] = crossX
			commitsJ[s.Parties-1] = mpc.CommitParty(s, sig.Salt, j, s.Parties-1, lastShare)
		}

		perExecShares[j] = shares
		perExecCommits[j] = commitsJ
	}

	allCommits := make([][]byte, 0, s.Tau*s.Parties)
	for j := 0; j < s.Tau; j++ {
		allCommits = append(allCommits, perExecCommits[j]...)
	}
	h1 := xof.ChallengeOne(s.DigestBytes, sig.Salt, EncodePK(pk), message, allCommits)
	if !bytesEqual(h1, sig.H1) {
		return ErrVerifyFailed
	}

	msgsPacked := make([][]byte, 0, s.Tau*s.Parties)
	perExecMsgs := make([][][]byte, s.Tau)
	for j := 0; j < s.Tau; j++ {
		hidden := structuralHidden[j]
		gamma := gammaForExecution(f, s, h1, j)
		msgsJ := make([][]byte, s.Parties)
		for i := 0; i < s.Parties; i++ {
			if i == hidden {
				msgsJ[i] = f.UnpackBits(sig.Openings[j].HiddenMsg, s.N)
				continue
			}
			raw := mpc.LocalCheck(f, s, inst.M, &mpc.Execution{Shares: perExecShares[j], CrossX: perExecCrossX[j]}, i)
			msgsJ[i] = mpc.CompressMessage(raw, gamma)
		}
		perExecMsgs[j] = msgsJ
	}

	for j := 0; j < s.Tau; j++ {
		for i := 0; i < s.Parties; i++ {
			msgsPacked = append(msgsPacked, f.PackBits(perExecMsgs[j][i]))
		}
	}
	h2 := xof.ChallengeTwo(s.DigestBytes, sig.Salt, h1, msgsPacked)
	if !bytesEqual(h2, sig.H2) {
		return ErrVerifyFailed
	}

	for j := 0; j < s.Tau; j++ {
		if hiddenIndexForExecution(s, h2, j) != structuralHidden[j] {
			return ErrVerifyFailed
		}
		if !mpc.IsZero(mpc.SumMessages(perExecMsgs[j])) {
			return ErrVerifyFailed
		}
	}

	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
