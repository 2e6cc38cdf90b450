// Package params holds the immutable, tag-indexed parameter-set table
// spec.md §3/§6 describes, generalizing AU-HC-mayo-go's
// mayo/parameters.go InitMayo(SecurityLevel) lookup (there keyed by an
// enum of security levels, here keyed by the one-byte wire tag a
// PK/SK/blob carries).
package params

import (
	"errors"
)

// ErrInvalidParams is returned whenever a params_tag is unrecognized or a
// caller asks for dimensions that don't typecheck against the shipped set.
// Corresponds to spec.md §7's InvalidParams error kind.
var ErrInvalidParams = errors.New("mirath: invalid or unsupported parameter tag")

// Tag identifies a shipped parameter set (spec.md §6's "Params tag
// registry"). Only Tag01 is recognized; every other value is reserved.
type Tag byte

const Tag01 Tag = 0x01

// Set is an immutable record of one parameter set's dimensions and derived
// byte widths, matching spec.md §3's "Parameter set" data model.
type Set struct {
	Tag Tag

	// Field degree: GF(2^M). Only M=4 (GF16) is exercised by the shipped set.
	M int
	// Irreducible polynomial for GF(2^M), degree-M bit included.
	Poly uint16

	// MinRank instance dimensions.
	N, K, R int

	// MPC-in-the-head protocol dimensions.
	Parties int // N parties per execution (spec's "N", renamed to avoid
	// colliding with the matrix dimension N above)
	Tau int // repetitions

	// Digest / seed widths, in bytes. Lambda is λ; DigestBytes is 2λ.
	Lambda      int
	DigestBytes int

	// Derived byte widths (computed once in build, not stored redundantly
	// by hand, matching the teacher's initMayo deriving p1Bytes/p2Bytes/...
	// from the base parameters rather than hardcoding them per set).
	SeedBytes      int
	PKBytes        int
	SKBytes        int
	AuxBytes       int
	MsgBytes       int
	OpeningBytes   int // one execution's worth: (Parties-1) seeds + 1 commit + 1 aux + 1 msg
	SigBytes       int
}

// table is the immutable, read-only registry of shipped parameter sets.
// There is no global mutable state elsewhere in this module; this map is
// built once at package init and never written to again.
var table = map[Tag]*Set{}

func init() {
	table[Tag01] = build(Tag01, 4, 0x13, 15, 78, 6, 32, 39, 128)
}

// build derives every byte width from the base parameters, following the
// teacher's initMayo pattern of computing *Bytes fields from (n,m,o,k,q).
func build(tag Tag, m int, poly uint16, n, k, r, parties, tau, lambdaBits int) *Set {
	lambda := lambdaBits / 8
	digest := 2 * lambda
	seed := lambda

	// aux_j: the last party's correction share of (alpha in F^k, S in
	// F^{n x r}, C in F^{r x n}) plus the n x n cross-term corrector
	// matrix used by internal/mpc's relation check (see DESIGN.md's
	// resolution of the aux-width Open Question: this is wider than the
	// literal r*n*m-bit figure spec.md §6 states, because that figure
	// alone cannot carry a full additive-share correction).
	elemBits := m
	auxBits := (k+n*r+r*n+n*n) * elemBits
	auxBytes := (auxBits + 7) / 8

	// outbound message: n field elements (the gamma-compressed relation
	// check vector), per DESIGN.md's Open-Question resolution for
	// spec.md §4.D.2.c/d.
	msgBits := n * elemBits
	msgBytes := (msgBits + 7) / 8

	// M_0 travels inside the public key packed n*n field elements wide:
	// unlike M_1..M_k, M_0 depends on the witness chosen at keygen time
	// and so cannot be re-derived from seed_pub alone (spec.md §4.C).
	m0Bits := n * n * elemBits
	m0Bytes := (m0Bits + 7) / 8

	openingBytes := (parties-1)*seed + digest + auxBytes + msgBytes
	sigBytes := digest /*salt*/ + digest /*h1*/ + digest /*h2*/ + tau*openingBytes

	return &Set{
		Tag: tag, M: m, Poly: poly,
		N: n, K: k, R: r,
		Parties: parties, Tau: tau,
		Lambda: lambda, DigestBytes: digest,
		SeedBytes:    seed,
		PKBytes:      1 + seed + m0Bytes,
		SKBytes:      1 + seed,
		AuxBytes:     auxBytes,
		MsgBytes:     msgBytes,
		OpeningBytes: openingBytes,
		SigBytes:     1 + sigBytes,
	}
}

// Lookup returns the Set for tag, or ErrInvalidParams if tag is unrecognized.
func Lookup(tag Tag) (*Set, error) {
	s, ok := table[tag]
	if !ok {
		return nil, ErrInvalidParams
	}
	return s, nil
}

// ensureM4 is a guard used by packages whose arithmetic is only
// implemented for GF(16); catching a future, larger parameter set early
// rather than silently truncating.
func ensureM4(s *Set) error {
	if s.M != 4 {
		return errors.New("mirath: only GF(16) (m=4) parameter sets are implemented")
	}
	return nil
}

// EnsureSupported validates that s is one this implementation can execute,
// beyond the tag lookup succeeding.
func EnsureSupported(s *Set) error {
	if err := ensureM4(s); err != nil {
		return err
	}
	if s.R >= s.N || s.K <= 0 {
		return ErrInvalidParams
	}
	return nil
}

// init sanity-checks every shipped set the same way initMayo's k >= n-o
// guard does: the MinRank instance needs n*n - k >= 0 so H' has a
// nonnegative row count.
func init() {
	for _, s := range table {
		if s.N*s.N < s.K {
			panic("params: n*n < k for a shipped parameter set")
		}
	}
}
