// SPDX-License-Identifier: MIT

package halfedge

// OutgoingHalfEdges returns every half-edge whose tail is v, starting at the
// anchor of v and stepping h → Next(Twin(h)).
//
// The walk stops when it returns to the anchor, reaches a dead link, or has
// produced NumHalfEdges() items, so it always terminates even on corrupted
// topology. The result is a fresh slice; calling again restarts the walk.
//
// Complexity: O(deg(v)).
func (m *Mesh) OutgoingHalfEdges(v VertexID) []HalfEdgeID {
	start := m.VertexHalfEdge(v)
	if !m.HasHalfEdge(start) {
		return nil
	}

	limit := m.halfEdges.len()
	out := make([]HalfEdgeID, 0, 6)
	h := start
	for len(out) < limit {
		out = append(out, h)
		h = m.Next(m.Twin(h))
		if h == start || !m.HasHalfEdge(h) {
			break
		}
	}

	return out
}

// Neighbors returns the tips of the outgoing half-edges of v, in walk order.
func (m *Mesh) Neighbors(v VertexID) []VertexID {
	hs := m.OutgoingHalfEdges(v)
	out := make([]VertexID, len(hs))
	for i, h := range hs {
		out[i] = m.Tip(h)
	}

	return out
}

// IncidentEdges returns the edges of the outgoing half-edges of v.
func (m *Mesh) IncidentEdges(v VertexID) []EdgeID {
	hs := m.OutgoingHalfEdges(v)
	out := make([]EdgeID, len(hs))
	for i, h := range hs {
		out[i] = m.HalfEdgeEdge(h)
	}

	return out
}

// IncidentFaces returns the faces touching v; boundary gaps are skipped.
func (m *Mesh) IncidentFaces(v VertexID) []FaceID {
	var out []FaceID
	for _, h := range m.OutgoingHalfEdges(v) {
		if f := m.Face(h); f != NoFace {
			out = append(out, f)
		}
	}

	return out
}

// Degree returns the number of outgoing half-edges of v.
func (m *Mesh) Degree(v VertexID) int {
	return len(m.OutgoingHalfEdges(v))
}

// IsBoundaryHalfEdge reports whether h has no face.
func (m *Mesh) IsBoundaryHalfEdge(h HalfEdgeID) bool {
	return m.Face(h) == NoFace
}

// IsBoundaryEdge reports whether either side of e has no face.
func (m *Mesh) IsBoundaryEdge(e EdgeID) bool {
	h := m.EdgeHalfEdge(e)

	return m.IsBoundaryHalfEdge(h) || m.IsBoundaryHalfEdge(m.Twin(h))
}

// IsBoundaryVertex reports whether any edge around v lies on the boundary.
// An isolated vertex is not a boundary vertex.
func (m *Mesh) IsBoundaryVertex(v VertexID) bool {
	for _, h := range m.OutgoingHalfEdges(v) {
		if m.IsBoundaryHalfEdge(h) || m.IsBoundaryHalfEdge(m.Twin(h)) {
			return true
		}
	}

	return false
}
