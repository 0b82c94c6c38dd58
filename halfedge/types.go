// SPDX-License-Identifier: MIT

package halfedge

import "github.com/go-gl/mathgl/mgl64"

// VertexID is a stable handle to a mesh vertex.
type VertexID int

// HalfEdgeID is a stable handle to a directed half-edge.
type HalfEdgeID int

// EdgeID is a stable handle to an undirected edge (a pair of twin half-edges).
type EdgeID int

// FaceID is a stable handle to a triangular face.
type FaceID int

// Sentinel handles for "no element".
const (
	InvalidVertex   VertexID   = -1
	InvalidHalfEdge HalfEdgeID = -1
	InvalidEdge     EdgeID     = -1
	// NoFace marks a boundary half-edge.
	NoFace FaceID = -1
)

// vertex record: position plus one outgoing half-edge used as traversal anchor.
type vertex struct {
	pos mgl64.Vec3
	he  HalfEdgeID
}

// halfEdge record: the directed arc tail → tip and its links.
type halfEdge struct {
	tail, tip VertexID
	twin      HalfEdgeID
	next      HalfEdgeID
	face      FaceID
	edge      EdgeID
}

// edge record: one representative half-edge.
type edge struct {
	he HalfEdgeID
}

// face record: one half-edge of its three-cycle.
type face struct {
	he HalfEdgeID
}
