//go:build debug

// Package debug exposes the build-time debug flag used to keep logging
// alive under `go test`.
package debug

// Debug is true when the library is built with the debug tag.
const Debug = true
