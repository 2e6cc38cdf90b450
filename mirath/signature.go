package mirath

import (
	"encoding/binary"
	"fmt"

	"github.com/mirath-rx/mirath-go/params"
)

// Opening is one tau-execution's revealed state: every non-hidden party's
// seed or (for the correction party) its raw share, plus the hidden
// party's commitment and outbound message sent in the clear since its
// state cannot be recomputed from a seed (spec.md §4.D.2.a/e).
//
// Every field below is a fixed-width slot (per params.Set.OpeningBytes) so
// that a signature's wire size never depends on which party ends up
// hidden: whichever slot doesn't apply to a given execution's hidden index
// is zero-filled rather than omitted.
type Opening struct {
	Seeds        [][]byte // Parties-1 slots, SeedBytes each; hidden slot (if < Parties-1) is zero
	Aux          []byte   // AuxBytes; zero when the correction party itself is hidden
	HiddenCommit []byte   // DigestBytes
	HiddenMsg    []byte   // MsgBytes
}

// Signature is (tag, salt, h1, h2, {opening_j}_{j<tau}), spec.md §6's
// signature byte layout.
type Signature struct {
	Tag      params.Tag
	Salt     []byte
	H1       []byte
	H2       []byte
	Openings []*Opening
}

// EncodePK canonically serializes a public key for hashing into H_1.
func EncodePK(pk *PublicKey) []byte {
	out := make([]byte, 0, 1+len(pk.SeedPub)+len(pk.M0))
	out = append(out, byte(pk.Tag))
	out = append(out, pk.SeedPub...)
	out = append(out, pk.M0...)
	return out
}

// Bytes serializes a public key: tag || seed_pub || M0.
func (pk *PublicKey) Bytes() []byte { return EncodePK(pk) }

// DecodePublicKey parses a wire-format public key for the given parameter
// set.
func DecodePublicKey(s *params.Set, raw []byte) (*PublicKey, error) {
	if len(raw) != s.PKBytes {
		return nil, fmt.Errorf("mirath: public key length %d != expected %d", len(raw), s.PKBytes)
	}
	if params.Tag(raw[0]) != s.Tag {
		return nil, params.ErrInvalidParams
	}
	off := 1
	seedPub := raw[off : off+s.SeedBytes]
	off += s.SeedBytes
	m0 := raw[off:]
	return &PublicKey{Tag: s.Tag, SeedPub: seedPub, M0: m0}, nil
}

// Bytes serializes a secret key: tag || seed_sec.
func (sk *SecretKey) Bytes() []byte {
	out := make([]byte, 0, 1+len(sk.SeedSec))
	out = append(out, byte(sk.Tag))
	out = append(out, sk.SeedSec...)
	return out
}

// DecodeSecretKey parses a wire-format secret key for the given parameter
// set.
func DecodeSecretKey(s *params.Set, raw []byte) (*SecretKey, error) {
	if len(raw) != s.SKBytes {
		return nil, fmt.Errorf("mirath: secret key length %d != expected %d", len(raw), s.SKBytes)
	}
	if params.Tag(raw[0]) != s.Tag {
		return nil, params.ErrInvalidParams
	}
	return &SecretKey{Tag: s.Tag, SeedSec: append([]byte(nil), raw[1:]...)}, nil
}

// EncodeOpening serializes one execution's opening into its fixed-width
// slot layout, for the signature's wire form.
func EncodeOpening(s *params.Set, o *Opening) []byte {
	out := make([]byte, 0, s.OpeningBytes)
	for _, seed := range o.Seeds {
		out = append(out, seed...)
	}
	out = append(out, o.Aux...)
	out = append(out, o.HiddenCommit...)
	out = append(out, o.HiddenMsg...)
	return out
}

// Bytes serializes the full signature: tag || salt || h1 || h2 ||
// opening_0 || ... || opening_{tau-1}.
func (sig *Signature) Bytes(s *params.Set) []byte {
	out := make([]byte, 0, s.SigBytes)
	out = append(out, byte(sig.Tag))
	out = append(out, sig.Salt...)
	out = append(out, sig.H1...)
	out = append(out, sig.H2...)
	for _, o := range sig.Openings {
		out = append(out, EncodeOpening(s, o)...)
	}
	return out
}

// DecodeSignature parses a wire-format signature for the given parameter
// set.
func DecodeSignature(s *params.Set, raw []byte) (*Signature, error) {
	if len(raw) != s.SigBytes {
		return nil, fmt.Errorf("mirath: signature length %d != expected %d", len(raw), s.SigBytes)
	}
	if params.Tag(raw[0]) != s.Tag {
		return nil, params.ErrInvalidParams
	}
	off := 1
	salt := raw[off : off+s.DigestBytes]
	off += s.DigestBytes
	h1 := raw[off : off+s.DigestBytes]
	off += s.DigestBytes
	h2 := raw[off : off+s.DigestBytes]
	off += s.DigestBytes

	openings := make([]*Opening, s.Tau)
	for j := 0; j < s.Tau; j++ {
		o := &Opening{Seeds: make([][]byte, s.Parties-1)}
		for i := 0; i < s.Parties-1; i++ {
			o.Seeds[i] = raw[off : off+s.SeedBytes]
			off += s.SeedBytes
		}
		o.Aux = raw[off : off+s.AuxBytes]
		off += s.AuxBytes
		o.HiddenCommit = raw[off : off+s.DigestBytes]
		off += s.DigestBytes
		o.HiddenMsg = raw[off : off+s.MsgBytes]
		off += s.MsgBytes
		openings[j] = o
	}

	return &Signature{Tag: s.Tag, Salt: salt, H1: h1, H2: h2, Openings: openings}, nil
}

// execIndexBytes big-endian-encodes an execution or party index for domain
// separation inside hashes that need more than one byte of index space.
func execIndexBytes(i int) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(i))
	return b[:]
}
