// Package mirath implements the MinRank MPC-in-the-head signature scheme
// spec.md §4.D describes end to end: key generation, signing, and
// verification, wired on top of field, matrix, minrank, and internal/mpc.
// The key/sign/verify split and the CompactKeyGen/Sign/Verify naming follow
// AU-HC-mayo-go's mayo/mayo.go, generalized from MAYO's multivariate-
// quadratic relation to MinRank's bilinear one.
package mirath

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/mirath-rx/mirath-go/field"
	"github.com/mirath-rx/mirath-go/internal/xof"
	"github.com/mirath-rx/mirath-go/internal/zeroize"
	"github.com/mirath-rx/mirath-go/minrank"
	"github.com/mirath-rx/mirath-go/params"
)

// ErrVerifyFailed is returned by Verify whenever any consistency check
// fails, without distinguishing which one — spec.md §4.D.3/§7 treats
// verification as a single pass/fail boolean outcome, not a diagnostic.
var ErrVerifyFailed = errors.New("mirath: signature verification failed")

// PublicKey is PK = (tag, seed_pub, M_0), spec.md §6's public-key byte
// layout. M0 is packed (field.PackBits) since it cannot be re-derived from
// seed_pub the way M_1..M_k can — it depends on the witness chosen at
// keygen time (spec.md §4.C).
type PublicKey struct {
	Tag     params.Tag
	SeedPub []byte
	M0      []byte
}

// SecretKey is SK = (tag, seed_sec); everything else the signer needs is
// re-derived deterministically from seed_sec at sign time, matching
// spec.md §4.C's "the secret key is just seed_sec" design.
type SecretKey struct {
	Tag     params.Tag
	SeedSec []byte
}

// Keygen samples a fresh seed_sec, derives the MinRank instance, and
// returns (PK, SK). Keygen re-checks the relation invariant via
// minrank.Build before returning (spec.md §4.C).
func Keygen(tag params.Tag) (*PublicKey, *SecretKey, error) {
	s, err := params.Lookup(tag)
	if err != nil {
		return nil, nil, err
	}
	seedSec := make([]byte, s.SeedBytes)
	if _, err := rand.Read(seedSec); err != nil {
		return nil, nil, fmt.Errorf("mirath: keygen: %w", err)
	}
	return KeygenFromSeed(tag, seedSec)
}

// KeygenFromSeed runs keygen with an explicitly supplied seed_sec instead
// of sampling one, for known-answer-test reproducibility (kat package) —
// every other Keygen step is identical.
func KeygenFromSeed(tag params.Tag, seedSec []byte) (*PublicKey, *SecretKey, error) {
	s, err := params.Lookup(tag)
	if err != nil {
		return nil, nil, err
	}
	if err := params.EnsureSupported(s); err != nil {
		return nil, nil, err
	}
	if len(seedSec) != s.SeedBytes {
		return nil, nil, fmt.Errorf("mirath: keygen: seed_sec must be %d bytes, got %d", s.SeedBytes, len(seedSec))
	}

	f := field.New(s.M, s.Poly)
	seedPub := derivePublicSeed(s, seedSec)

	inst, witness := minrank.Build(f, s, seedPub, seedSec)
	m0Packed := f.PackBits(inst.M[0].Flat())
	zeroize.All(witness.Alpha, witness.S.Flat(), witness.C.Flat())

	pk := &PublicKey{Tag: tag, SeedPub: seedPub, M0: m0Packed}
	sk := &SecretKey{Tag: tag, SeedSec: append([]byte(nil), seedSec...)}
	return pk, sk, nil
}

// derivePublicSeed computes seed_pub = H(seed_sec, TAG_PUB) (spec.md §4.C).
func derivePublicSeed(s *params.Set, seedSec []byte) []byte {
	return xof.Hash(s.SeedBytes, seedSec, []byte{xof.TagPublic})
}

// rebuildInstance re-derives the full MinRank instance and witness from
// seed_sec alone, for Sign (which needs the witness). It derives seed_pub
// and calls minrank.Build the same way KeygenFromSeed does above.
func rebuildInstance(f *field.Field, s *params.Set, seedSec []byte) (*minrank.Instance, *minrank.Witness, []byte) {
	seedPub := derivePublicSeed(s, seedSec)
	inst, witness := minrank.Build(f, s, seedPub, seedSec)
	return inst, witness, seedPub
}
