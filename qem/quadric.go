// SPDX-License-Identifier: MIT

package qem

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/qemesh/halfedge"
)

// vertexQuadric sums p·pᵀ over the faces around v, with p = (n, -n·pos(v))
// the plane of each face. Boundary gaps contribute nothing; an isolated
// vertex yields the zero matrix.
//
// Complexity: O(deg(v)).
func vertexQuadric(m *halfedge.Mesh, v halfedge.VertexID) mgl64.Mat4 {
	var q mgl64.Mat4
	pos := m.Pos(v)
	for _, h := range m.OutgoingHalfEdges(v) {
		f := m.Face(h)
		if f == halfedge.NoFace {
			continue
		}
		n := m.Normal(f)
		plane := n.Vec4(-n.Dot(pos))
		q = q.Add(plane.OuterProd4(plane))
	}

	return q
}

// quadricError evaluates [p 1]·Q·[p 1]ᵀ.
func quadricError(q mgl64.Mat4, p mgl64.Vec3) float64 {
	h := p.Vec4(1)
	return h.Dot(q.Mul4x1(h))
}

// optimalPosition minimises quadricError(q, ·) for the edge (p1, p2).
//
// The last row of q is replaced by [0 0 0 1] and A·x = [0 0 0 1]ᵀ is solved
// when |det A| > eps. A near-singular system falls back to the cheapest of
// p1, p2 and their midpoint: the midpoint wins only when strictly cheaper
// than both endpoints, p1 only when strictly cheaper than p2.
func optimalPosition(q mgl64.Mat4, p1, p2 mgl64.Vec3, eps float64) mgl64.Vec3 {
	// Column-major storage: row 3 lives at indices 3, 7, 11, 15.
	a := q
	a[3], a[7], a[11], a[15] = 0, 0, 0, 1

	if det := a.Det(); det > eps || det < -eps {
		return a.Inv().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
	}

	mid := p1.Add(p2).Mul(0.5)
	c1 := quadricError(q, p1)
	c2 := quadricError(q, p2)
	cm := quadricError(q, mid)
	switch {
	case cm < c1 && cm < c2:
		return mid
	case c1 < c2:
		return p1
	default:
		return p2
	}
}

// computeQuadricMatrix returns the fundamental error quadric of v for the
// current geometry. It does not touch the store.
func (s *Simplifier) computeQuadricMatrix(v halfedge.VertexID) mgl64.Mat4 {
	return vertexQuadric(s.mesh, v)
}
