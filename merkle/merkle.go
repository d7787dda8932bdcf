// Package merkle verifies membership of a string in an allow-list committed to
// by a SHA-256 merkle root.
//
// A leaf is hashed as sha256(leaf). Each proof entry is the hex encoded
// sibling hash at the next level up. Pairs are sorted bytewise before being
// concatenated and hashed, so a proof carries no left/right flags:
//
//  parent = sha256(min(a, b) || max(a, b))
//
// Verification passes when folding the leaf hash with every proof entry in
// order reproduces the root.
package merkle

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/calebcase/finmath"
)

// Size is the length of every hash in bytes.
const Size = sha256.Size

// Hash is a single node of the tree.
type Hash [Size]byte

// String returns h in lower case hex.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Proof is the list of hex encoded sibling hashes from leaf to root.
type Proof []string

// Merkle holds a decoded root.
type Merkle struct {
	root Hash
}

// New decodes a hex root.
func New(root string) (m Merkle, err error) {
	m.root, err = decode(root)
	if err != nil {
		return Merkle{}, finmath.MalformedInput.Wrap(err)
	}

	return m, nil
}

// Root returns the decoded root.
func (m Merkle) Root() Hash {
	return m.root
}

// String returns the root in lower case hex.
func (m Merkle) String() string {
	return m.root.String()
}

// Verify checks that leaf is committed to by the root given proof.
func (m Merkle) Verify(proof Proof, leaf string) error {
	h := Leaf(leaf)

	for _, p := range proof {
		sibling, err := decode(p)
		if err != nil {
			return finmath.MalformedInput.Wrap(err)
		}

		h = Parent(h, sibling)
	}

	if h != m.root {
		return finmath.VerificationFailed.New("%s does not match root %s", h, m.root)
	}

	return nil
}

// Leaf returns the hash of a leaf.
func Leaf(leaf string) Hash {
	return sha256.Sum256([]byte(leaf))
}

// Parent returns the hash of the sorted pair a, b.
func Parent(a, b Hash) Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}

	buf := make([]byte, 0, 2*Size)
	buf = append(buf, a[:]...)
	buf = append(buf, b[:]...)

	return sha256.Sum256(buf)
}

func decode(s string) (h Hash, err error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}

	if len(buf) != Size {
		return h, finmath.WrongLength.New("got %d bytes, want %d", len(buf), Size)
	}

	copy(h[:], buf)

	return h, nil
}
