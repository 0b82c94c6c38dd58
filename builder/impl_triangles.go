// SPDX-License-Identifier: MIT
// Package: qemesh/builder
//
// impl_triangles.go: indexed triangles ⇄ half-edge mesh.
//
// Construction model:
//   • One vertex per input position (unused positions become isolated vertices).
//   • Three half-edges and one face per triangle, linked by Next in input order.
//   • Opposite directed sides are paired as twins under one edge; the edge is
//     represented by the side met first.
//   • An unpaired side gets a boundary twin (NoFace); boundary twins are chained
//     into boundary loops so every vertex fan is traversable.
//
// Complexity:
//   • Time O(V + T), Space O(T) for the directed-side index.

package builder

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/qemesh/halfedge"
)

const (
	methodFromTriangles = "FromTriangles"
)

// side is a directed triangle side (from → to) in input indices.
type side struct {
	from, to int
}

// FromTriangles builds a half-edge mesh from positions and counter-clockwise
// (outward) triangles of position indices.
//
// Errors (checked in this order):
//   - ErrNoTriangles         when triangles is empty.
//   - ErrIndexOutOfRange     when a corner is outside positions.
//   - ErrDegenerateTriangle  when a triangle repeats a corner.
//   - ErrNonManifoldEdge     when a directed side occurs twice.
//   - ErrNonManifoldVertex   when a vertex fan is split (bow-tie or two boundary gaps).
func FromTriangles(positions []mgl64.Vec3, triangles [][3]int) (*halfedge.Mesh, error) {
	// Stage 1: validate indices.
	if len(triangles) == 0 {
		return nil, builderErrorf(methodFromTriangles, ErrNoTriangles, "len=0")
	}
	n := len(positions)
	for ti, tri := range triangles {
		for _, c := range tri {
			if c < 0 || c >= n {
				return nil, builderErrorf(methodFromTriangles, ErrIndexOutOfRange, "triangle %d corner %d (n=%d)", ti, c, n)
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			return nil, builderErrorf(methodFromTriangles, ErrDegenerateTriangle, "triangle %d %v", ti, tri)
		}
	}

	// Stage 2: vertices in input order.
	m := halfedge.NewMesh()
	verts := make([]halfedge.VertexID, n)
	for i, p := range positions {
		verts[i] = m.CreateVertex(p)
	}

	// Stage 3: faces and their half-edge cycles.
	sides := make(map[side]halfedge.HalfEdgeID, 3*len(triangles))
	order := make([]side, 0, 3*len(triangles))
	for ti, tri := range triangles {
		var hs [3]halfedge.HalfEdgeID
		for k := 0; k < 3; k++ {
			s := side{from: tri[k], to: tri[(k+1)%3]}
			if _, dup := sides[s]; dup {
				return nil, builderErrorf(methodFromTriangles, ErrNonManifoldEdge, "triangle %d side %d→%d", ti, s.from, s.to)
			}
			h := m.CreateHalfEdge()
			m.SetTail(h, verts[s.from])
			m.SetTip(h, verts[s.to])
			sides[s] = h
			order = append(order, s)
			hs[k] = h
		}
		f := m.CreateFace(hs[0])
		for k := 0; k < 3; k++ {
			m.SetNext(hs[k], hs[(k+1)%3])
			m.SetFace(hs[k], f)
		}
	}

	// Stage 4: pair twins, create edges and boundary half-edges.
	boundaryFrom := make(map[halfedge.VertexID]halfedge.HalfEdgeID)
	var boundary []halfedge.HalfEdgeID
	for _, s := range order {
		h := sides[s]
		if m.Twin(h) != halfedge.InvalidHalfEdge {
			continue // paired from the other side
		}
		t, ok := sides[side{from: s.to, to: s.from}]
		if !ok {
			t = m.CreateHalfEdge()
			m.SetTail(t, verts[s.to])
			m.SetTip(t, verts[s.from])
			if _, split := boundaryFrom[verts[s.to]]; split {
				return nil, builderErrorf(methodFromTriangles, ErrNonManifoldVertex, "vertex %d has two boundary gaps", s.to)
			}
			boundaryFrom[verts[s.to]] = t
			boundary = append(boundary, t)
		}
		e := m.CreateEdge(h)
		m.SetTwin(h, t)
		m.SetTwin(t, h)
		m.SetHalfEdgeEdge(h, e)
		m.SetHalfEdgeEdge(t, e)
	}

	// Stage 5: chain boundary half-edges into loops.
	for _, b := range boundary {
		next, ok := boundaryFrom[m.Tip(b)]
		if !ok {
			return nil, builderErrorf(methodFromTriangles, ErrNonManifoldVertex, "boundary loop breaks at vertex %d", m.Tip(b))
		}
		m.SetNext(b, next)
	}

	// Stage 6: anchors, then check that each fan is reachable from its anchor.
	outDegree := make(map[halfedge.VertexID]int, n)
	for _, h := range m.HalfEdges() {
		v := m.Tail(h)
		outDegree[v]++
		if m.VertexHalfEdge(v) == halfedge.InvalidHalfEdge {
			m.SetVertexHalfEdge(v, h)
		}
	}
	for i, v := range verts {
		if got := m.Degree(v); got != outDegree[v] {
			return nil, builderErrorf(methodFromTriangles, ErrNonManifoldVertex, "vertex %d reaches %d of %d half-edges", i, got, outDegree[v])
		}
	}

	return m, nil
}

// ToTriangles exports m as compact positions (dense vertex order) and
// triangles (dense face order, cycle order from each face's representative).
// Complexity: O(V + F).
func ToTriangles(m *halfedge.Mesh) ([]mgl64.Vec3, [][3]int) {
	vs := m.Vertices()
	positions := make([]mgl64.Vec3, len(vs))
	for i, v := range vs {
		positions[i] = m.Pos(v)
	}

	fs := m.Faces()
	triangles := make([][3]int, len(fs))
	for i, f := range fs {
		corners := m.FaceVertices(f)
		for k, v := range corners {
			triangles[i][k] = m.VertexIndex(v)
		}
	}

	return positions, triangles
}
