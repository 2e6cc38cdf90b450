// Package seedtree expands one master seed into N leaf seeds via a binary
// GGM tree, the way a one-time-signature scheme expands a single seed into
// many leaves. The doubling-expansion shape follows Yawning-sphincs256's
// horstExpandSeed/wotsExpandSeed (PRG-from-seed, built once per signature),
// adapted here from a flat one-shot PRG stretch to a genuine binary tree.
// The "all but one" opening (spec.md §4.D.2.a, the MPC-in-the-head
// all-but-one opening) reveals the N-1 non-hidden leaf seeds themselves;
// no sibling co-path (log2(N) seeds) opening is provided.
package seedtree

import "github.com/mirath-rx/mirath-go/internal/xof"

// SeedBytes is the width of every seed in the tree (λ bits for the only
// shipped parameter set, λ=128).
const SeedBytes = 16

// Tree holds every node's seed, indexed level-major, built once at
// construction time. N need not be a power of two; the tree pads to the
// next power of two internally and only the first N leaves are meaningful.
type Tree struct {
	n       int
	levels  [][][]byte // levels[0] = {root}, levels[last] = leaves (padded)
	leafCnt int        // padded leaf count, a power of two >= n
}

// New deterministically expands master into a tree with n meaningful
// leaves, using domain-tag TagTree so this expansion can never collide with
// any other use of the seed expander.
func New(master []byte, n int) *Tree {
	leafCnt := 1
	for leafCnt < n {
		leafCnt <<= 1
	}
	depth := 0
	for (1 << uint(depth)) < leafCnt {
		depth++
	}

	levels := make([][][]byte, depth+1)
	levels[0] = [][]byte{append([]byte(nil), master...)}
	for lvl := 0; lvl < depth; lvl++ {
		parent := levels[lvl]
		children := make([][]byte, 0, len(parent)*2)
		for _, seed := range parent {
			expanded := xof.AESCTRExpand(seed, xof.TagTree, 2*SeedBytes)
			children = append(children, expanded[:SeedBytes], expanded[SeedBytes:])
		}
		levels[lvl+1] = children
	}

	return &Tree{n: n, levels: levels, leafCnt: leafCnt}
}

// Leaf returns the i-th leaf seed (0-indexed, i < n).
func (t *Tree) Leaf(i int) []byte {
	return t.levels[len(t.levels)-1][i]
}

// All returns every leaf seed, in order.
func (t *Tree) All() [][]byte {
	return t.levels[len(t.levels)-1][:t.n]
}

// RevealAllButOne returns every leaf seed except index hidden, in the same
// N-1-element layout spec.md's byte table describes for a signature's
// per-execution opening.
func (t *Tree) RevealAllButOne(hidden int) [][]byte {
	leaves := t.All()
	out := make([][]byte, 0, len(leaves)-1)
	for i, seed := range leaves {
		if i == hidden {
			continue
		}
		out = append(out, seed)
	}
	return out
}

// Reconstruct rebuilds every leaf seed except hidden from the N-1 revealed
// seeds produced by RevealAllButOne, matching them back to their original
// index. Since this implementation reveals leaves directly (rather than
// internal sibling co-paths), reconstruction is a direct re-indexing: the
// verifier already holds every non-hidden leaf seed verbatim and only needs
// its index restored.
func Reconstruct(n, hidden int, revealed [][]byte) [][]byte {
	out := make([][]byte, n)
	j := 0
	for i := 0; i < n; i++ {
		if i == hidden {
			continue
		}
		out[i] = revealed[j]
		j++
	}
	return out
}
