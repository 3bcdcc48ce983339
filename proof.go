// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package smt

import "fmt"

// Proof is an ordered sibling path, root-to-leaf, captured from a tree
// snapshot. It carries no reference to the tree: verification needs only
// the claimed root, the bit path and the leaf value.
type Proof[F any, S Scalar[F]] struct {
	siblingHashes []Digest
}

// NewProof wraps a captured sibling path, ordered root-to-leaf.
func NewProof[F any, S Scalar[F]](siblingHashes []Digest) Proof[F, S] {
	return Proof[F, S]{siblingHashes: siblingHashes}
}

// SiblingHashes returns the proof's sibling path in root-to-leaf order.
func (p Proof[F, S]) SiblingHashes() []Digest {
	return p.siblingHashes
}

// CalculateRoot recomputes the root the proof commits e to at path. It
// folds the siblings leaf-to-root, mirroring the ancestor hashing order of
// Tree.Add: starting from the leaf hash, each step combines with the
// leaf-nearest unconsumed sibling, on the side its bit selects.
//
// Returns ErrMalformedPath if path's length differs from the proof's level
// count.
func (p Proof[F, S]) CalculateRoot(path []bool, e *Element[F, S]) (Digest, error) {
	if len(path) != len(p.siblingHashes) {
		return Digest{}, fmt.Errorf("%w: got %d bits, proof has %d levels", ErrMalformedPath, len(path), len(p.siblingHashes))
	}
	current := e.Hash()
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] {
			current = combineHashes(p.siblingHashes[i], current)
		} else {
			current = combineHashes(current, p.siblingHashes[i])
		}
	}
	return current, nil
}

// Verify reports whether the proof binds e at path to root. A false result
// is the ordinary negative outcome of the protocol, not an error; the error
// is reserved for a malformed path.
func (p Proof[F, S]) Verify(path []bool, e *Element[F, S], root Digest) (bool, error) {
	computed, err := p.CalculateRoot(path, e)
	if err != nil {
		return false, err
	}
	return computed == root, nil
}
