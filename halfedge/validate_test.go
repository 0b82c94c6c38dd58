package halfedge_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qemesh/builder"
	"github.com/katalvlaran/qemesh/halfedge"
)

func TestValidate_Fixtures(t *testing.T) {
	m, err := builder.Icosphere(2)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	g, err := builder.Grid(3, 4)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	require.NoError(t, bipyramid(t).Validate())
}

// TestValidate_Corruptions breaks one link at a time on a fresh tetrahedron.
func TestValidate_Corruptions(t *testing.T) {
	cases := map[string]func(m *halfedge.Mesh){
		"twin not mutual": func(m *halfedge.Mesh) {
			h := m.HalfEdges()[0]
			m.SetTwin(h, m.Next(h))
		},
		"endpoint": func(m *halfedge.Mesh) {
			h := m.HalfEdges()[0]
			m.SetTip(h, m.Tail(h))
		},
		"edge back reference": func(m *halfedge.Mesh) {
			h := m.HalfEdges()[0]
			m.SetHalfEdgeEdge(h, m.HalfEdgeEdge(m.Next(h)))
		},
		"anchor": func(m *halfedge.Mesh) {
			v := m.Vertices()[0]
			m.SetVertexHalfEdge(v, m.Twin(m.VertexHalfEdge(v)))
		},
		"dead face": func(m *halfedge.Mesh) {
			_ = m.RemoveFace(m.Faces()[0])
		},
		"edge representative": func(m *halfedge.Mesh) {
			e := m.Edges()[0]
			m.SetEdgeHalfEdge(e, m.Next(m.EdgeHalfEdge(e)))
		},
	}
	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := builder.PlatonicSolid(builder.Tetrahedron)
			require.NoError(t, err)
			corrupt(m)
			assert.ErrorIs(t, m.Validate(), halfedge.ErrInconsistent)
		})
	}
}

func TestGeometry_NormalArea(t *testing.T) {
	m, err := builder.Grid(1, 1)
	require.NoError(t, err)
	for _, f := range m.Faces() {
		assert.True(t, m.Normal(f).ApproxEqual(mgl64.Vec3{0, 0, 1}))
		assert.InDelta(t, 0.5, m.Area(f), 1e-12)
	}

	s, err := builder.Icosphere(1)
	require.NoError(t, err)
	for _, f := range s.Faces() {
		vs := s.FaceVertices(f)
		centroid := s.Pos(vs[0]).Add(s.Pos(vs[1])).Add(s.Pos(vs[2]))
		assert.Greater(t, s.Normal(f).Dot(centroid), 0.0, "face %d points inward", f)
		assert.InDelta(t, 1.0, s.Normal(f).Len(), 1e-12)
	}
}

func TestGeometry_Degenerate(t *testing.T) {
	m, err := builder.FromTriangles(
		[]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		[][3]int{{0, 1, 2}},
	)
	require.NoError(t, err)
	f := m.Faces()[0]
	assert.Equal(t, mgl64.Vec3{}, m.Normal(f))
	assert.Zero(t, m.Area(f))
	assert.False(t, math.IsNaN(m.Normal(f).Len()))
}
