// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package smt_test

import (
	"testing"

	"github.com/consensys/smt"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestIndexToBits(t *testing.T) {
	// index 5 at depth 4 is 0101, most significant bit first
	require.Equal(t, []bool{false, true, false, true}, smt.IndexToBits(4, 5))
	require.Equal(t, []bool{true, false, false, false}, smt.IndexToBits(4, 8))
	require.Empty(t, smt.IndexToBits(0, 42))

	// bits above depth are truncated: 21 = 0b10101 ≡ 5 mod 2^4
	require.Equal(t, smt.IndexToBits(4, 5), smt.IndexToBits(4, 21))
}

func TestBitsRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("BitsToIndex(IndexToBits(depth, i)) == i mod 2^depth", prop.ForAll(
		func(depth int, index uint64) bool {
			mask := ^uint64(0)
			if depth < 64 {
				mask = (uint64(1) << uint(depth)) - 1
			}
			return smt.BitsToIndex(smt.IndexToBits(depth, index)) == index&mask
		},
		gen.IntRange(0, 64),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
