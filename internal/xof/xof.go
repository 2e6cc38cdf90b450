// Package xof provides the three named symmetric-primitive uses spec.md
// §4.B calls for: a seed expander, a commitment hash, and the two
// Fiat–Shamir challenge hashes, all built on top of SHAKE256. The sponge
// construction itself comes from golang.org/x/crypto/sha3, the same
// SHAKE256 API AU-HC-mayo-go's mayo/utility.go shake256 helper and
// rand/random.go's SHAKE256 helper use.
package xof

import (
	"golang.org/x/crypto/sha3"
)

// Domain tags separate the XOF's uses so that, e.g., a matrix-sampling
// expansion can never collide with a tree-PRG expansion of the same seed.
const (
	TagMatrix byte = 0x01 // expand(seed_pub, TAG_M, ...) -> M_1..M_k
	TagSecret byte = 0x02 // expand(seed_sec, TAG_SK, ...) -> (alpha, S, C)
	TagPublic byte = 0x03 // H(seed_sec, TAG_PUB) -> seed_pub
	TagTree   byte = 0x04 // GGM seed-tree node expansion
	TagShare     byte = 0x05 // per-party share expansion from a leaf seed
	TagSig       byte = 0x06 // master_seed = H(seed_sec, salt, message, j, TAG_SIG)
	TagChallenge byte = 0x07 // gamma_j = expand(h1 || j, TAG_CHALLENGE, n)
	TagHidden    byte = 0x08 // hidden-party index derivation from h2
)

// FieldVector masks every byte of raw down to f's element width, turning a
// uniform byte stream from Expand/Hash into a uniform vector of field
// elements. Since every shipped field has size 2^m, masking the low m bits
// is itself uniform — no rejection sampling is needed, unlike schemes over
// a non-power-of-two modulus (spec.md §9's Open Question on challenge
// rejection sampling; see DESIGN.md for the resolution).
func FieldVector(raw []byte, size int) []byte {
	mask := byte(size - 1)
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = b & mask
	}
	return out
}

// Expand is the deterministic seed expander: expand(seed, domain_tag,
// length) -> bytes, used for matrix sampling, tree-PRG expansion, and
// per-party state derivation (spec.md §4.B.1).
func Expand(seed []byte, tag byte, length int) []byte {
	out := make([]byte, length)
	h := sha3.NewShake256()
	_, _ = h.Write(seed)
	_, _ = h.Write([]byte{tag})
	_, _ = h.Read(out)
	return out
}

// Hash computes a fixed-length SHAKE256 digest over the concatenation of
// its inputs, following the variadic hash_data helper the Python reference
// (original_source/mirath.py) uses, and the variadic shake256(inputs...)
// helper in AU-HC-mayo-go's mayo/utility.go.
func Hash(outputLength int, inputs ...[]byte) []byte {
	out := make([]byte, outputLength)
	h := sha3.NewShake256()
	for _, in := range inputs {
		_, _ = h.Write(in)
	}
	_, _ = h.Read(out)
	return out
}

// Commit implements commit(salt, exec_idx, party_idx, payload) -> 2λ bits
// (spec.md §4.B.2): binds a party's state within one MPC-in-the-head
// execution.
func Commit(digestBytes int, salt []byte, execIdx, partyIdx int, payload []byte) []byte {
	idx := []byte{byte(execIdx >> 8), byte(execIdx), byte(partyIdx >> 8), byte(partyIdx)}
	return Hash(digestBytes, salt, idx, payload)
}

// ChallengeOne implements H_1(salt, PK, message, {commits}) -> first-round
// challenge digest (spec.md §4.B.3).
func ChallengeOne(digestBytes int, salt, pk, message []byte, commits [][]byte) []byte {
	in := make([][]byte, 0, 3+len(commits))
	in = append(in, salt, pk, message)
	in = append(in, commits...)
	return Hash(digestBytes, in...)
}

// ChallengeTwo implements H_2(salt, h_1, {openings}) -> second-round
// challenge digest (spec.md §4.B.3).
func ChallengeTwo(digestBytes int, salt, h1 []byte, openings [][]byte) []byte {
	in := make([][]byte, 0, 2+len(openings))
	in = append(in, salt, h1)
	in = append(in, openings...)
	return Hash(digestBytes, in...)
}
