// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package smt

import (
	"fmt"

	"github.com/consensys/smt/logger"
)

// Tree is a fixed-height binary hash tree over a content-addressed node
// store. The store is insert-only: every update writes fresh ancestor
// entries and leaves the old ones in place, so proofs captured against a
// previous root keep verifying against that root. Memory therefore grows
// with the number of updates; callers running long-lived trees should
// account for up to height new entries per update.
type Tree[F any, S Scalar[F]] struct {
	height int
	root   Digest
	store  map[Digest]children
}

// NewTree builds the canonical all-leaves-empty tree of the given height,
// bottom-up. All empty subtrees of the same depth share one digest, so the
// store holds exactly height entries after construction. A height of 0
// yields a root equal to the raw hash of empty, with no store entries.
func NewTree[F any, S Scalar[F]](empty Element[F, S], height int) *Tree[F, S] {
	t := &Tree[F, S]{
		height: height,
		store:  make(map[Digest]children, height),
	}
	current := empty.Hash()
	for level := 0; level < height; level++ {
		pair := children{left: current, right: current}
		current = combineHashes(current, current)
		t.store[current] = pair
	}
	t.root = current

	log := logger.Logger()
	log.Debug().Int("height", height).Hex("root", current[:]).Msg("initialized sparse merkle tree")
	return t
}

// Root returns the digest the tree currently commits to.
func (t *Tree[F, S]) Root() Digest {
	return t.root
}

// Height returns the number of levels between any leaf and the root. It is
// fixed at construction and determines the required bit-path length.
func (t *Tree[F, S]) Height() int {
	return t.height
}

// Add inserts or updates the leaf selected by path and recomputes every
// ancestor up to a new root. path must hold exactly Height() bits, most
// significant first; each bit selects the right (true) or left (false)
// child on the walk from root to leaf.
//
// The sibling extraction up front is the only failure point, so a failed
// Add leaves the tree untouched.
func (t *Tree[F, S]) Add(path []bool, e *Element[F, S]) error {
	siblings, err := t.SiblingHashes(path)
	if err != nil {
		return fmt.Errorf("add element: %w", err)
	}
	current := e.Hash()
	for i := len(path) - 1; i >= 0; i-- {
		var pair children
		if path[i] {
			pair = children{left: siblings[i], right: current}
		} else {
			pair = children{left: current, right: siblings[i]}
		}
		current = combineHashes(pair.left, pair.right)
		t.store[current] = pair
	}
	t.root = current
	return nil
}

// SiblingHashes walks from the root down to the leaf selected by path and
// collects, at each level, the digest of the child not taken. The result is
// in root-to-leaf order and has length Height().
//
// Returns ErrMalformedPath if path does not hold exactly Height() bits, and
// ErrInconsistentStore if a visited digest has no store entry.
func (t *Tree[F, S]) SiblingHashes(path []bool) ([]Digest, error) {
	if len(path) != t.height {
		return nil, fmt.Errorf("%w: got %d bits, height is %d", ErrMalformedPath, len(path), t.height)
	}
	siblings := make([]Digest, 0, t.height)
	node := t.root
	for _, right := range path {
		pair, ok := t.store[node]
		if !ok {
			return nil, fmt.Errorf("%w: %x", ErrInconsistentStore, node)
		}
		if right {
			node = pair.right
			siblings = append(siblings, pair.left)
		} else {
			node = pair.left
			siblings = append(siblings, pair.right)
		}
	}
	return siblings, nil
}

// Prove captures the sibling path for the leaf selected by path as a
// self-contained Proof against the current root.
func (t *Tree[F, S]) Prove(path []bool) (Proof[F, S], error) {
	siblings, err := t.SiblingHashes(path)
	if err != nil {
		return Proof[F, S]{}, err
	}
	return NewProof[F, S](siblings), nil
}
