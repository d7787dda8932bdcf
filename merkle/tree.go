package merkle

import (
	"github.com/calebcase/finmath"
)

// Tree is a merkle tree over a list of leaves, built bottom-up. A node
// without a sibling is promoted to the next level unchanged.
type Tree struct {
	levels [][]Hash
}

// Build hashes leaves and folds them into a tree.
func Build(leaves []string) (Tree, error) {
	if len(leaves) == 0 {
		return Tree{}, finmath.InvalidConfiguration.New("no leaves")
	}

	level := make([]Hash, len(leaves))
	for i, leaf := range leaves {
		level[i] = Leaf(leaf)
	}

	t := Tree{levels: [][]Hash{level}}

	for len(level) > 1 {
		next := make([]Hash, 0, (len(level)+1)/2)

		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}

			next = append(next, Parent(level[i], level[i+1]))
		}

		t.levels = append(t.levels, next)
		level = next
	}

	return t, nil
}

// Root returns the hex encoded root.
func (t Tree) Root() string {
	if len(t.levels) == 0 {
		return ""
	}

	return t.levels[len(t.levels)-1][0].String()
}

// Merkle returns a verifier for the tree's root.
func (t Tree) Merkle() Merkle {
	if len(t.levels) == 0 {
		return Merkle{}
	}

	return Merkle{root: t.levels[len(t.levels)-1][0]}
}

// Proof returns the proof for the first occurrence of leaf.
func (t Tree) Proof(leaf string) (Proof, error) {
	h := Leaf(leaf)

	idx := -1
	if len(t.levels) > 0 {
		for i, l := range t.levels[0] {
			if l == h {
				idx = i
				break
			}
		}
	}

	if idx < 0 {
		return nil, finmath.VerificationFailed.New("%q is not a leaf", leaf)
	}

	proof := Proof{}

	for _, level := range t.levels[:len(t.levels)-1] {
		sibling := idx ^ 1
		if sibling < len(level) {
			proof = append(proof, level[sibling].String())
		}

		idx /= 2
	}

	return proof, nil
}
