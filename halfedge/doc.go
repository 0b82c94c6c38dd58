// SPDX-License-Identifier: MIT

// Package halfedge provides a triangle mesh stored as a half-edge graph.
//
// Every element (vertex, half-edge, edge, face) lives in an arena and is
// addressed by a typed integer handle:
//
//	VertexID, HalfEdgeID, EdgeID, FaceID
//
// Handles are stable: removing an element never renumbers the survivors.
// Dead handles are recycled by later Create* calls. Each arena also keeps a
// dense container of live handles; removal swaps the last live handle into
// the freed position, so Vertices(), Edges(), ... and Index(...) reflect a
// compacted order that changes on deletion while the handles themselves do not.
//
// Links:
//
//	half-edge h:  Tail(h) ──h──▶ Tip(h)
//	              Twin(h) runs Tip(h) ──▶ Tail(h)
//	              Next(h) is the next half-edge around Face(h)
//	              HalfEdgeEdge(h) is the undirected edge shared with Twin(h)
//
// A half-edge with Face(h) == NoFace lies on the boundary. Boundary
// half-edges are chained by Next into boundary loops, which keeps
// OutgoingHalfEdges (walk h → Next(Twin(h))) closed on boundary vertices.
//
// Query methods return the Invalid* sentinel (or a zero value) for dead
// handles. Set* methods panic on dead handles: they are surgery primitives
// and a dead handle there is a programmer error.
//
// Errors:
//
//	ErrVertexNotFound   - vertex handle is dead or out of range.
//	ErrHalfEdgeNotFound - half-edge handle is dead or out of range.
//	ErrEdgeNotFound     - edge handle is dead or out of range.
//	ErrFaceNotFound     - face handle is dead or out of range.
//	ErrInconsistent     - Validate found a broken link.
//
// A Mesh is not safe for concurrent mutation.
package halfedge
