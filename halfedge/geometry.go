// SPDX-License-Identifier: MIT

package halfedge

import "github.com/go-gl/mathgl/mgl64"

// degenerateArea2 is the squared cross-product length below which a face has no usable normal.
const degenerateArea2 = 1e-24

// FaceVertices returns the three corners of f in cycle order starting at its
// representative half-edge. Dead faces yield three InvalidVertex entries.
func (m *Mesh) FaceVertices(f FaceID) [3]VertexID {
	h := m.FaceHalfEdge(f)
	if !m.HasHalfEdge(h) {
		return [3]VertexID{InvalidVertex, InvalidVertex, InvalidVertex}
	}
	n := m.Next(h)

	return [3]VertexID{m.Tail(h), m.Tail(n), m.Tail(m.Next(n))}
}

// Normal returns the unit normal of f following the right-hand rule on its
// cycle. Degenerate (zero-area) or dead faces return the zero vector, which
// contributes nothing to a quadric.
func (m *Mesh) Normal(f FaceID) mgl64.Vec3 {
	c := m.cross(f)
	if c.Dot(c) < degenerateArea2 {
		return mgl64.Vec3{}
	}

	return c.Normalize()
}

// Area returns the area of triangle f (0 when dead).
func (m *Mesh) Area(f FaceID) float64 {
	return 0.5 * m.cross(f).Len()
}

func (m *Mesh) cross(f FaceID) mgl64.Vec3 {
	if !m.HasFace(f) {
		return mgl64.Vec3{}
	}
	vs := m.FaceVertices(f)
	p0, p1, p2 := m.Pos(vs[0]), m.Pos(vs[1]), m.Pos(vs[2])

	return p1.Sub(p0).Cross(p2.Sub(p0))
}
