// Package smt implements a fixed-height, content-addressed sparse Merkle
// tree committing to a large, mostly-empty key space, with compact
// membership and update proofs against that commitment.
//
// Leaf values are sequences of finite field elements; the tree is generic
// over the scalar type and only requires its canonical byte encoding (every
// gnark-crypto fr.Element satisfies the constraint). Node digests are
// SHA-256; all same-depth empty subtrees share a single store entry, so an
// empty tree of height h costs h entries, not 2^h.
//
// A Tree is not safe for concurrent use; callers sharing an instance must
// serialize access themselves.
package smt

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
