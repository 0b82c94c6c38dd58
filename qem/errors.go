// SPDX-License-Identifier: MIT

package qem

import "errors"

// Sentinel errors returned by the simplifier.
var (
	// ErrNilMesh indicates that a nil *halfedge.Mesh was passed to NewSimplifier.
	ErrNilMesh = errors.New("qem: mesh is nil")

	// ErrBadRatio indicates a target ratio that is NaN or outside [0,1].
	ErrBadRatio = errors.New("qem: ratio must be within [0,1]")

	// ErrNotCollapsable indicates that collapsing the edge would produce a
	// non-manifold mesh. Nothing is mutated when it is returned.
	ErrNotCollapsable = errors.New("qem: edge is not collapsable")

	// ErrEdgeNotFound indicates an operation referenced a dead edge handle.
	ErrEdgeNotFound = errors.New("qem: edge not found")

	// ErrTargetNotReached indicates that the run stopped early because every
	// remaining edge is non-collapsable. The mesh stays valid.
	ErrTargetNotReached = errors.New("qem: target ratio not reached")
)
