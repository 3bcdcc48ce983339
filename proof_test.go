// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package smt_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/smt"
	"github.com/stretchr/testify/require"
)

// a verifier holding only the sibling hashes, the path, the element and the
// claimed root needs no access to the tree
func TestProofIsSelfContained(t *testing.T) {
	const height = 5
	empty := smt.DefaultElement[fr.Element]()
	tree := smt.NewTree(empty, height)

	element := randElement(t)
	path := smt.IndexToBits(height, 17)
	require.NoError(t, tree.Add(path, &element))

	siblings, err := tree.SiblingHashes(path)
	require.NoError(t, err)
	require.Len(t, siblings, height)
	root := tree.Root()

	// rebuilt on the verifier side from the captured digests only
	proof := smt.NewProof[fr.Element](siblings)
	require.Equal(t, siblings, proof.SiblingHashes())

	ok, err := proof.Verify(path, &element, root)
	require.NoError(t, err)
	require.True(t, ok)

	// flipping one path bit points at a different leaf
	badPath := append([]bool{}, path...)
	badPath[height-1] = !badPath[height-1]
	ok, err = proof.Verify(badPath, &element, root)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCalculateRootMatchesTree(t *testing.T) {
	const height = 7
	empty := smt.DefaultElement[fr.Element]()
	tree := smt.NewTree(empty, height)

	for _, index := range []uint64{0, 1, 63, 64, 127} {
		element := randElement(t)
		path := smt.IndexToBits(height, index)
		require.NoError(t, tree.Add(path, &element))

		proof, err := tree.Prove(path)
		require.NoError(t, err)
		root, err := proof.CalculateRoot(path, &element)
		require.NoError(t, err)
		require.Equal(t, tree.Root(), root, "index %d", index)
	}
}
