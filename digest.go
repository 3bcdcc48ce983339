// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package smt

import "crypto/sha256"

// DigestSize is the byte length of node and leaf digests.
const DigestSize = sha256.Size

// Digest identifies a node by the hash of its content. It doubles as the
// key under which the node's child pair is stored.
type Digest [DigestSize]byte

// children is the digest pair a node commits to. A node's own digest is
// always combineHashes(left, right); the store never holds a pair under any
// other key.
type children struct {
	left  Digest
	right Digest
}

// combineHashes derives a parent digest from its two child digests.
func combineHashes(left, right Digest) Digest {
	h := sha256.New()
	h.Write(left[:])
	h.Write(right[:])
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}
