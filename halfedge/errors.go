// SPDX-License-Identifier: MIT

package halfedge

import "errors"

// Sentinel errors for mesh operations. Match them with errors.Is.
var (
	// ErrVertexNotFound indicates an operation referenced a dead vertex handle.
	ErrVertexNotFound = errors.New("halfedge: vertex not found")

	// ErrHalfEdgeNotFound indicates an operation referenced a dead half-edge handle.
	ErrHalfEdgeNotFound = errors.New("halfedge: half-edge not found")

	// ErrEdgeNotFound indicates an operation referenced a dead edge handle.
	ErrEdgeNotFound = errors.New("halfedge: edge not found")

	// ErrFaceNotFound indicates an operation referenced a dead face handle.
	ErrFaceNotFound = errors.New("halfedge: face not found")

	// ErrInconsistent indicates that Validate found a link violating a mesh invariant.
	ErrInconsistent = errors.New("halfedge: inconsistent topology")
)
