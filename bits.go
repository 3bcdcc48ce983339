// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package smt

// IndexToBits converts a numeric leaf index into its depth-bit path, most
// significant bit first, matching the root-to-leaf convention used by Tree
// and Proof. Bits of index above depth are silently truncated: the result
// encodes index mod 2^depth.
func IndexToBits(depth int, index uint64) []bool {
	bits := make([]bool, depth)
	for i := 0; i < depth; i++ {
		bits[depth-1-i] = (index>>uint(i))&1 == 1
	}
	return bits
}

// BitsToIndex reinterprets an MSB-first bit path as a numeric leaf index.
// It is the inverse of IndexToBits for indices below 2^len(bits).
func BitsToIndex(bits []bool) uint64 {
	var index uint64
	for _, b := range bits {
		index <<= 1
		if b {
			index |= 1
		}
	}
	return index
}
