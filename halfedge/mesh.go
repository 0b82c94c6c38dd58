// SPDX-License-Identifier: MIT

package halfedge

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Method tags used in error wrapping.
const (
	methodRemoveVertex   = "RemoveVertex"
	methodRemoveHalfEdge = "RemoveHalfEdge"
	methodRemoveEdge     = "RemoveEdge"
	methodRemoveFace     = "RemoveFace"
)

// Mesh is an arena-backed half-edge mesh. The zero value is an empty mesh.
type Mesh struct {
	vertices  arena[vertex]
	halfEdges arena[halfEdge]
	edges     arena[edge]
	faces     arena[face]
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// Clone returns a deep copy. Handles, dense order and free lists are preserved,
// so IDs taken from m address the same elements in the copy.
// Complexity: O(V+H+E+F).
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		vertices:  m.vertices.clone(),
		halfEdges: m.halfEdges.clone(),
		edges:     m.edges.clone(),
		faces:     m.faces.clone(),
	}
}

// ---------- creation ----------

// CreateVertex adds an isolated vertex at p.
func (m *Mesh) CreateVertex(p mgl64.Vec3) VertexID {
	return VertexID(m.vertices.alloc(vertex{pos: p, he: InvalidHalfEdge}))
}

// CreateHalfEdge adds a half-edge with every link unset.
func (m *Mesh) CreateHalfEdge() HalfEdgeID {
	return HalfEdgeID(m.halfEdges.alloc(halfEdge{
		tail: InvalidVertex,
		tip:  InvalidVertex,
		twin: InvalidHalfEdge,
		next: InvalidHalfEdge,
		face: NoFace,
		edge: InvalidEdge,
	}))
}

// CreateEdge adds an edge represented by h. The caller links h and its twin back.
func (m *Mesh) CreateEdge(h HalfEdgeID) EdgeID {
	return EdgeID(m.edges.alloc(edge{he: h}))
}

// CreateFace adds a face whose cycle contains h. The caller sets Face on the cycle.
func (m *Mesh) CreateFace(h HalfEdgeID) FaceID {
	return FaceID(m.faces.alloc(face{he: h}))
}

// ---------- removal (swap-with-last compaction of the dense containers) ----------

// RemoveVertex deletes v. Links pointing at v are not touched.
func (m *Mesh) RemoveVertex(v VertexID) error {
	if !m.vertices.remove(int(v)) {
		return fmt.Errorf("%s(%d): %w", methodRemoveVertex, v, ErrVertexNotFound)
	}

	return nil
}

// RemoveHalfEdge deletes h. Links pointing at h are not touched.
func (m *Mesh) RemoveHalfEdge(h HalfEdgeID) error {
	if !m.halfEdges.remove(int(h)) {
		return fmt.Errorf("%s(%d): %w", methodRemoveHalfEdge, h, ErrHalfEdgeNotFound)
	}

	return nil
}

// RemoveEdge deletes e. Links pointing at e are not touched.
func (m *Mesh) RemoveEdge(e EdgeID) error {
	if !m.edges.remove(int(e)) {
		return fmt.Errorf("%s(%d): %w", methodRemoveEdge, e, ErrEdgeNotFound)
	}

	return nil
}

// RemoveFace deletes f. Links pointing at f are not touched.
func (m *Mesh) RemoveFace(f FaceID) error {
	if !m.faces.remove(int(f)) {
		return fmt.Errorf("%s(%d): %w", methodRemoveFace, f, ErrFaceNotFound)
	}

	return nil
}

// ---------- membership & counts ----------

// HasVertex reports whether v is alive.
func (m *Mesh) HasVertex(v VertexID) bool { return m.vertices.alive(int(v)) }

// HasHalfEdge reports whether h is alive.
func (m *Mesh) HasHalfEdge(h HalfEdgeID) bool { return m.halfEdges.alive(int(h)) }

// HasEdge reports whether e is alive.
func (m *Mesh) HasEdge(e EdgeID) bool { return m.edges.alive(int(e)) }

// HasFace reports whether f is alive.
func (m *Mesh) HasFace(f FaceID) bool { return m.faces.alive(int(f)) }

// NumVertices returns the number of live vertices.
func (m *Mesh) NumVertices() int { return m.vertices.len() }

// NumHalfEdges returns the number of live half-edges.
func (m *Mesh) NumHalfEdges() int { return m.halfEdges.len() }

// NumEdges returns the number of live edges.
func (m *Mesh) NumEdges() int { return m.edges.len() }

// NumFaces returns the number of live faces.
func (m *Mesh) NumFaces() int { return m.faces.len() }

// Vertices returns a snapshot of live vertex handles in dense order.
func (m *Mesh) Vertices() []VertexID { return handles[VertexID](&m.vertices) }

// HalfEdges returns a snapshot of live half-edge handles in dense order.
func (m *Mesh) HalfEdges() []HalfEdgeID { return handles[HalfEdgeID](&m.halfEdges) }

// Edges returns a snapshot of live edge handles in dense order.
func (m *Mesh) Edges() []EdgeID { return handles[EdgeID](&m.edges) }

// Faces returns a snapshot of live face handles in dense order.
func (m *Mesh) Faces() []FaceID { return handles[FaceID](&m.faces) }

// VertexIndex returns the dense position of v (-1 when dead). Diagnostics only:
// the position moves whenever another vertex is removed.
func (m *Mesh) VertexIndex(v VertexID) int { return m.vertices.index(int(v)) }

// HalfEdgeIndex returns the dense position of h (-1 when dead).
func (m *Mesh) HalfEdgeIndex(h HalfEdgeID) int { return m.halfEdges.index(int(h)) }

// EdgeIndex returns the dense position of e (-1 when dead).
func (m *Mesh) EdgeIndex(e EdgeID) int { return m.edges.index(int(e)) }

// FaceIndex returns the dense position of f (-1 when dead).
func (m *Mesh) FaceIndex(f FaceID) int { return m.faces.index(int(f)) }

// ---------- vertex links ----------

// Pos returns the position of v (zero vector when dead).
func (m *Mesh) Pos(v VertexID) mgl64.Vec3 {
	if !m.HasVertex(v) {
		return mgl64.Vec3{}
	}

	return m.vertices.at(int(v)).pos
}

// SetPos moves v to p.
func (m *Mesh) SetPos(v VertexID, p mgl64.Vec3) {
	m.mustVertex(v).pos = p
}

// VertexHalfEdge returns the anchor outgoing half-edge of v.
func (m *Mesh) VertexHalfEdge(v VertexID) HalfEdgeID {
	if !m.HasVertex(v) {
		return InvalidHalfEdge
	}

	return m.vertices.at(int(v)).he
}

// SetVertexHalfEdge sets the anchor of v. h must leave v.
func (m *Mesh) SetVertexHalfEdge(v VertexID, h HalfEdgeID) {
	m.mustVertex(v).he = h
}

// ---------- half-edge links ----------

// Tail returns the origin vertex of h.
func (m *Mesh) Tail(h HalfEdgeID) VertexID {
	if !m.HasHalfEdge(h) {
		return InvalidVertex
	}

	return m.halfEdges.at(int(h)).tail
}

// Tip returns the destination vertex of h.
func (m *Mesh) Tip(h HalfEdgeID) VertexID {
	if !m.HasHalfEdge(h) {
		return InvalidVertex
	}

	return m.halfEdges.at(int(h)).tip
}

// Twin returns the opposite half-edge of h.
func (m *Mesh) Twin(h HalfEdgeID) HalfEdgeID {
	if !m.HasHalfEdge(h) {
		return InvalidHalfEdge
	}

	return m.halfEdges.at(int(h)).twin
}

// Next returns the half-edge following h around its face (or boundary loop).
func (m *Mesh) Next(h HalfEdgeID) HalfEdgeID {
	if !m.HasHalfEdge(h) {
		return InvalidHalfEdge
	}

	return m.halfEdges.at(int(h)).next
}

// Face returns the face owning h, NoFace on the boundary.
func (m *Mesh) Face(h HalfEdgeID) FaceID {
	if !m.HasHalfEdge(h) {
		return NoFace
	}

	return m.halfEdges.at(int(h)).face
}

// HalfEdgeEdge returns the undirected edge h belongs to.
func (m *Mesh) HalfEdgeEdge(h HalfEdgeID) EdgeID {
	if !m.HasHalfEdge(h) {
		return InvalidEdge
	}

	return m.halfEdges.at(int(h)).edge
}

// SetTail sets the origin vertex of h.
func (m *Mesh) SetTail(h HalfEdgeID, v VertexID) { m.mustHalfEdge(h).tail = v }

// SetTip sets the destination vertex of h.
func (m *Mesh) SetTip(h HalfEdgeID, v VertexID) { m.mustHalfEdge(h).tip = v }

// SetTwin sets the opposite half-edge of h (one direction only).
func (m *Mesh) SetTwin(h, twin HalfEdgeID) { m.mustHalfEdge(h).twin = twin }

// SetNext sets the successor of h.
func (m *Mesh) SetNext(h, next HalfEdgeID) { m.mustHalfEdge(h).next = next }

// SetFace sets the owning face of h.
func (m *Mesh) SetFace(h HalfEdgeID, f FaceID) { m.mustHalfEdge(h).face = f }

// SetHalfEdgeEdge sets the edge back reference of h.
func (m *Mesh) SetHalfEdgeEdge(h HalfEdgeID, e EdgeID) { m.mustHalfEdge(h).edge = e }

// ---------- edge & face links ----------

// EdgeHalfEdge returns the representative half-edge of e.
func (m *Mesh) EdgeHalfEdge(e EdgeID) HalfEdgeID {
	if !m.HasEdge(e) {
		return InvalidHalfEdge
	}

	return m.edges.at(int(e)).he
}

// SetEdgeHalfEdge sets the representative half-edge of e.
func (m *Mesh) SetEdgeHalfEdge(e EdgeID, h HalfEdgeID) {
	if !m.HasEdge(e) {
		panic(fmt.Sprintf("halfedge: SetEdgeHalfEdge on dead edge %d", e))
	}
	m.edges.at(int(e)).he = h
}

// FirstVertex returns the tail of the representative half-edge of e.
func (m *Mesh) FirstVertex(e EdgeID) VertexID { return m.Tail(m.EdgeHalfEdge(e)) }

// SecondVertex returns the tip of the representative half-edge of e.
func (m *Mesh) SecondVertex(e EdgeID) VertexID { return m.Tip(m.EdgeHalfEdge(e)) }

// FaceHalfEdge returns one half-edge of the cycle of f.
func (m *Mesh) FaceHalfEdge(f FaceID) HalfEdgeID {
	if !m.HasFace(f) {
		return InvalidHalfEdge
	}

	return m.faces.at(int(f)).he
}

// ---------- internal guards ----------

func (m *Mesh) mustVertex(v VertexID) *vertex {
	if !m.HasVertex(v) {
		panic(fmt.Sprintf("halfedge: dead vertex %d", v))
	}

	return m.vertices.at(int(v))
}

func (m *Mesh) mustHalfEdge(h HalfEdgeID) *halfEdge {
	if !m.HasHalfEdge(h) {
		panic(fmt.Sprintf("halfedge: dead half-edge %d", h))
	}

	return m.halfEdges.at(int(h))
}
