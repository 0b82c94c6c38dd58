// SPDX-License-Identifier: MIT

package halfedge

// IsCollapsable reports whether merging the endpoints of e keeps the mesh a
// manifold made of triangles.
//
// Conditions, in order:
//  1. e is alive and its two half-edges are mutual twins.
//  2. Both sides of e own a triangular face (next³ == self).
//  3. Neither endpoint lies on the boundary.
//  4. The two opposite corners differ.
//  5. Link condition: the endpoints share exactly two neighbours, namely the
//     two opposite corners. A third common neighbour would leave two
//     vertices joined by more than one edge after the collapse.
//
// Complexity: O(deg(a) + deg(b)).
func (m *Mesh) IsCollapsable(e EdgeID) bool {
	h := m.EdgeHalfEdge(e)
	t := m.Twin(h)
	if !m.HasHalfEdge(h) || !m.HasHalfEdge(t) || m.Twin(t) != h {
		return false
	}
	if !m.isTriangle(h) || !m.isTriangle(t) {
		return false
	}

	a, b := m.Tail(h), m.Tip(h)
	if a == b || m.IsBoundaryVertex(a) || m.IsBoundaryVertex(b) {
		return false
	}

	left := m.Tip(m.Next(h))
	right := m.Tip(m.Next(t))
	if left == right {
		return false
	}

	ring := make(map[VertexID]struct{}, 8)
	for _, w := range m.Neighbors(a) {
		ring[w] = struct{}{}
	}
	common := make(map[VertexID]struct{}, 2)
	for _, w := range m.Neighbors(b) {
		if _, ok := ring[w]; !ok {
			continue
		}
		if w != left && w != right {
			return false
		}
		common[w] = struct{}{}
	}

	return len(common) == 2
}

// isTriangle reports whether h sits on a live three-cycle sharing one face.
func (m *Mesh) isTriangle(h HalfEdgeID) bool {
	f := m.Face(h)
	if f == NoFace || !m.HasFace(f) {
		return false
	}
	n1 := m.Next(h)
	n2 := m.Next(n1)

	return m.HasHalfEdge(n1) && m.HasHalfEdge(n2) &&
		m.Next(n2) == h && m.Face(n1) == f && m.Face(n2) == f
}
