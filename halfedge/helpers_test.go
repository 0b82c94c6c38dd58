package halfedge_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qemesh/builder"
	"github.com/katalvlaran/qemesh/halfedge"
)

// bipyramid returns a triangular bipyramid: apex 3, nadir 4, equator 0,1,2.
// Equator edges violate the link condition (three common neighbours).
func bipyramid(t *testing.T) *halfedge.Mesh {
	t.Helper()
	c, s := math.Cos(2*math.Pi/3), math.Sin(2*math.Pi/3)
	pos := []mgl64.Vec3{
		{1, 0, 0}, {c, s, 0}, {c, -s, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	tris := [][3]int{
		{0, 1, 3}, {1, 2, 3}, {2, 0, 3},
		{1, 0, 4}, {2, 1, 4}, {0, 2, 4},
	}
	m, err := builder.FromTriangles(pos, tris)
	require.NoError(t, err)
	return m
}

// pillow returns two triangles glued along all three sides.
func pillow(t *testing.T) *halfedge.Mesh {
	t.Helper()
	m, err := builder.FromTriangles(
		[]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[][3]int{{0, 1, 2}, {0, 2, 1}},
	)
	require.NoError(t, err)
	return m
}

// findEdge returns the edge joining the vertices at positions p and q.
func findEdge(t *testing.T, m *halfedge.Mesh, p, q mgl64.Vec3) halfedge.EdgeID {
	t.Helper()
	for _, e := range m.Edges() {
		a, b := m.Pos(m.FirstVertex(e)), m.Pos(m.SecondVertex(e))
		if (a.ApproxEqual(p) && b.ApproxEqual(q)) || (a.ApproxEqual(q) && b.ApproxEqual(p)) {
			return e
		}
	}
	t.Fatalf("no edge between %v and %v", p, q)
	return halfedge.InvalidEdge
}

// findVertex returns the vertex at position p.
func findVertex(t *testing.T, m *halfedge.Mesh, p mgl64.Vec3) halfedge.VertexID {
	t.Helper()
	for _, v := range m.Vertices() {
		if m.Pos(v).ApproxEqual(p) {
			return v
		}
	}
	t.Fatalf("no vertex at %v", p)
	return halfedge.InvalidVertex
}
