package halfedge_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qemesh/builder"
	"github.com/katalvlaran/qemesh/halfedge"
)

// TestOutgoing_Degrees checks vertex valences of closed solids.
func TestOutgoing_Degrees(t *testing.T) {
	cases := []struct {
		name   builder.PlatonicName
		degree int
	}{
		{builder.Tetrahedron, 3},
		{builder.Octahedron, 4},
		{builder.Icosahedron, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name.String(), func(t *testing.T) {
			m, err := builder.PlatonicSolid(tc.name)
			require.NoError(t, err)
			for _, v := range m.Vertices() {
				out := m.OutgoingHalfEdges(v)
				require.Len(t, out, tc.degree)
				for _, h := range out {
					assert.Equal(t, v, m.Tail(h))
				}
				assert.Len(t, m.IncidentFaces(v), tc.degree)
				assert.False(t, m.IsBoundaryVertex(v))
			}
		})
	}
}

// TestOutgoing_Restartable verifies two walks give the same sequence.
func TestOutgoing_Restartable(t *testing.T) {
	m, err := builder.Icosphere(1)
	require.NoError(t, err)
	v := m.Vertices()[7]
	assert.Equal(t, m.OutgoingHalfEdges(v), m.OutgoingHalfEdges(v))
	assert.Len(t, m.Neighbors(v), m.Degree(v))
}

// TestOutgoing_Isolated expects an empty walk for a vertex without anchor.
func TestOutgoing_Isolated(t *testing.T) {
	m := halfedge.NewMesh()
	v := m.CreateVertex(mgl64.Vec3{})
	assert.Empty(t, m.OutgoingHalfEdges(v))
	assert.Zero(t, m.Degree(v))
	assert.False(t, m.IsBoundaryVertex(v))
}

// TestOutgoing_BrokenLink verifies the walk stops on a dead successor.
func TestOutgoing_BrokenLink(t *testing.T) {
	m, err := builder.PlatonicSolid(builder.Tetrahedron)
	require.NoError(t, err)
	v := m.Vertices()[0]
	first := m.VertexHalfEdge(v)
	require.NoError(t, m.RemoveHalfEdge(m.Twin(first)))
	assert.Equal(t, []halfedge.HalfEdgeID{first}, m.OutgoingHalfEdges(v))
}

// TestBoundary_Grid checks boundary classification on an open grid.
func TestBoundary_Grid(t *testing.T) {
	m, err := builder.Grid(2, 2)
	require.NoError(t, err)

	center := findVertex(t, m, mgl64.Vec3{1, 1, 0})
	corner := findVertex(t, m, mgl64.Vec3{0, 0, 0})
	assert.False(t, m.IsBoundaryVertex(center))
	assert.True(t, m.IsBoundaryVertex(corner))

	// Corner (0,0) touches two sides and one diagonal.
	assert.Equal(t, 3, m.Degree(corner))
	assert.Equal(t, 6, m.Degree(center))

	boundary := 0
	for _, e := range m.Edges() {
		if m.IsBoundaryEdge(e) {
			boundary++
		}
	}
	assert.Equal(t, 8, boundary)
}

// TestOutgoing_HandBuiltFan wires a three-spoke fan by hand, without faces,
// and walks it from the centre.
func TestOutgoing_HandBuiltFan(t *testing.T) {
	m := halfedge.NewMesh()
	c := m.CreateVertex(mgl64.Vec3{0, 0, 0})
	spokes := []halfedge.VertexID{
		m.CreateVertex(mgl64.Vec3{1, 0, 0}),
		m.CreateVertex(mgl64.Vec3{0, 1, 0}),
		m.CreateVertex(mgl64.Vec3{-1, -1, 0}),
	}

	out := make([]halfedge.HalfEdgeID, 3)
	in := make([]halfedge.HalfEdgeID, 3)
	for i, v := range spokes {
		out[i], in[i] = m.CreateHalfEdge(), m.CreateHalfEdge()
		m.SetTail(out[i], c)
		m.SetTip(out[i], v)
		m.SetTail(in[i], v)
		m.SetTip(in[i], c)
		m.SetTwin(out[i], in[i])
		m.SetTwin(in[i], out[i])
	}
	for i := range in {
		m.SetNext(in[i], out[(i+1)%3])
	}
	m.SetVertexHalfEdge(c, out[0])

	got := m.OutgoingHalfEdges(c)
	require.Equal(t, out, got)
	assert.Equal(t, spokes, m.Neighbors(c))
}
