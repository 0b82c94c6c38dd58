// SPDX-License-Identifier: MIT
// Package: qemesh/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf (method prefix + %w).
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrNoTriangles indicates that FromTriangles received an empty triangle list.
var ErrNoTriangles = errors.New("builder: no triangles")

// ErrIndexOutOfRange indicates a triangle corner outside [0, len(positions)).
var ErrIndexOutOfRange = errors.New("builder: vertex index out of range")

// ErrDegenerateTriangle indicates a triangle that repeats a corner index.
var ErrDegenerateTriangle = errors.New("builder: degenerate triangle")

// ErrNonManifoldEdge indicates a directed triangle side used twice: either an
// edge shared by more than two faces or two faces with opposite orientation.
var ErrNonManifoldEdge = errors.New("builder: non-manifold edge")

// ErrNonManifoldVertex indicates a vertex whose faces do not form a single fan.
var ErrNonManifoldVertex = errors.New("builder: non-manifold vertex")

// ErrUnknownSolid indicates an unsupported PlatonicName.
var ErrUnknownSolid = errors.New("builder: unknown solid")

// ErrBadSize indicates a negative subdivision level or a grid dimension < 1.
var ErrBadSize = errors.New("builder: invalid size")

// builderErrorf prefixes a sentinel with the constructor name and a formatted
// detail, keeping the sentinel reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
