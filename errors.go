// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package smt

import "errors"

var (
	// ErrMalformedPath is returned when a bit path's length does not match
	// the tree height (or the proof's level count).
	ErrMalformedPath = errors.New("bit path length does not match tree height")

	// ErrInconsistentStore is returned when a walk references a node digest
	// absent from the store. It signals a corrupted tree or a path that does
	// not correspond to the current root; the failed operation mutates
	// nothing.
	ErrInconsistentStore = errors.New("node digest not present in store")
)
