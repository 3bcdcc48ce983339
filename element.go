// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package smt

import "crypto/sha256"

// Scalar lists the capabilities the tree needs from a field element type: a
// well-defined zero value and a deterministic, fixed-width canonical byte
// encoding. The encoding is the only place the scalar type is touched; no
// arithmetic is performed. All gnark-crypto fr.Element and fp.Element types
// satisfy it.
type Scalar[F any] interface {
	*F
	SetZero() *F
	Marshal() []byte
}

// Element is the value stored at one leaf: an ordered, non-empty sequence
// of field scalars.
type Element[F any, S Scalar[F]] struct {
	Value []F
}

// NewElement wraps the given scalars into a leaf value.
func NewElement[F any, S Scalar[F]](scalars ...F) Element[F, S] {
	return Element[F, S]{Value: scalars}
}

// DefaultElement returns the canonical empty leaf value, a single zero
// scalar.
func DefaultElement[F any, S Scalar[F]]() Element[F, S] {
	var zero F
	S(&zero).SetZero()
	return Element[F, S]{Value: []F{zero}}
}

// Hash returns the content digest of the element: SHA-256 over the
// canonical encodings of its scalars, concatenated in sequence order.
func (e *Element[F, S]) Hash() Digest {
	h := sha256.New()
	for i := range e.Value {
		h.Write(S(&e.Value[i]).Marshal())
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}
