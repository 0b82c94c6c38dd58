package qem_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/qemesh/builder"
	"github.com/katalvlaran/qemesh/halfedge"
	"github.com/katalvlaran/qemesh/qem"
)

// SimplifierSuite exercises RunSimplify end to end on fixture meshes.
type SimplifierSuite struct {
	suite.Suite
}

func (s *SimplifierSuite) solid(name builder.PlatonicName) *halfedge.Mesh {
	m, err := builder.PlatonicSolid(name)
	require.NoError(s.T(), err)
	return m
}

func (s *SimplifierSuite) icosphere(n int) *halfedge.Mesh {
	m, err := builder.Icosphere(n)
	require.NoError(s.T(), err)
	return m
}

func (s *SimplifierSuite) run(m *halfedge.Mesh, alpha float64, opts ...qem.Option) (qem.Stats, error) {
	sim, err := qem.NewSimplifier(m, opts...)
	require.NoError(s.T(), err)
	return sim.RunSimplify(alpha)
}

// TestNilMesh verifies constructor validation.
func (s *SimplifierSuite) TestNilMesh() {
	_, err := qem.NewSimplifier(nil)
	require.ErrorIs(s.T(), err, qem.ErrNilMesh)
}

// TestBadRatio rejects ratios outside [0,1] without touching the mesh.
func (s *SimplifierSuite) TestBadRatio() {
	m := s.solid(builder.Icosahedron)
	sim, err := qem.NewSimplifier(m)
	require.NoError(s.T(), err)

	for _, alpha := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err := sim.RunSimplify(alpha)
		require.ErrorIs(s.T(), err, qem.ErrBadRatio, "alpha=%v", alpha)
	}
	require.Equal(s.T(), 30, m.NumEdges())
}

// TestRatioOne leaves the mesh unchanged.
func (s *SimplifierSuite) TestRatioOne() {
	m := s.solid(builder.Icosahedron)
	st, err := s.run(m, 1)
	require.NoError(s.T(), err)
	require.True(s.T(), st.Reached)
	require.Zero(s.T(), st.Rounds)
	require.Equal(s.T(), 30, st.FinalEdges)
}

// TestTetrahedronHalf performs exactly one collapse: 6 edges → 3 ≤ 0.5·6.
func (s *SimplifierSuite) TestTetrahedronHalf() {
	m := s.solid(builder.Tetrahedron)
	st, err := s.run(m, 0.5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), qem.Stats{
		OriginalEdges: 6,
		InitialEdges:  6,
		FinalEdges:    3,
		FinalVertices: 3,
		FinalFaces:    2,
		Rounds:        1,
		Collapses:     1,
		Reached:       true,
	}, st)
	require.NoError(s.T(), m.Validate())
}

// TestTetrahedronStall terminates once every remaining edge is rejected.
func (s *SimplifierSuite) TestTetrahedronStall() {
	m := s.solid(builder.Tetrahedron)
	st, err := s.run(m, 0)
	require.ErrorIs(s.T(), err, qem.ErrTargetNotReached)
	require.False(s.T(), st.Reached)
	require.Equal(s.T(), 1, st.Collapses)
	require.Equal(s.T(), 3, st.Skipped)
	require.Equal(s.T(), 3, st.FinalEdges)
	require.NoError(s.T(), m.Validate())
}

// TestGridStall never collapses an edge touching the boundary.
func (s *SimplifierSuite) TestGridStall() {
	m, err := builder.Grid(1, 1)
	require.NoError(s.T(), err)
	st, err := s.run(m, 0)
	require.ErrorIs(s.T(), err, qem.ErrTargetNotReached)
	require.Zero(s.T(), st.Collapses)
	require.Equal(s.T(), 5, st.Skipped)
	require.Equal(s.T(), 5, st.FinalEdges)
}

// TestFlatGridStaysFlat checks that planar input yields planar output.
func (s *SimplifierSuite) TestFlatGridStaysFlat() {
	m, err := builder.Grid(6, 6)
	require.NoError(s.T(), err)
	st, err := s.run(m, 0.6)
	if err != nil {
		require.ErrorIs(s.T(), err, qem.ErrTargetNotReached)
	}
	require.Positive(s.T(), st.Collapses)
	require.NoError(s.T(), m.Validate())
	for _, v := range m.Vertices() {
		require.Zero(s.T(), m.Pos(v).Z())
	}
}

// TestOctahedronToTetrahedron: 12 → 9 → 6 edges.
func (s *SimplifierSuite) TestOctahedronToTetrahedron() {
	m := s.solid(builder.Octahedron)
	st, err := s.run(m, 0.5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, st.Collapses)
	require.Equal(s.T(), 6, st.FinalEdges)
	require.Equal(s.T(), 4, st.FinalVertices)
	require.Equal(s.T(), 4, st.FinalFaces)
	require.NoError(s.T(), m.Validate())
}

// TestIcosphereQuarter reduces a sphere and checks topology.
func (s *SimplifierSuite) TestIcosphereQuarter() {
	m := s.icosphere(2)
	st, err := s.run(m, 0.25)
	require.NoError(s.T(), err)
	require.True(s.T(), st.Reached)
	require.Equal(s.T(), 480, st.OriginalEdges)
	require.Equal(s.T(), 120, st.FinalEdges, "each collapse removes three edges")
	require.Equal(s.T(), 120, st.Collapses)
	require.Equal(s.T(), st.Rounds, st.Collapses+st.Skipped)
	require.Equal(s.T(), 2, m.NumVertices()-m.NumEdges()+m.NumFaces())
	require.NoError(s.T(), m.Validate())

	// Quadric-optimal points stay close to the unit sphere.
	for _, v := range m.Vertices() {
		require.InDelta(s.T(), 1.0, m.Pos(v).Len(), 0.25)
	}
}

// TestSuccessiveRuns keeps the original edge count as the reference.
func (s *SimplifierSuite) TestSuccessiveRuns() {
	m := s.icosphere(2)
	sim, err := qem.NewSimplifier(m)
	require.NoError(s.T(), err)

	prev := m.NumEdges()
	for _, alpha := range []float64{0.9, 0.6, 0.3} {
		st, err := sim.RunSimplify(alpha)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 480, st.OriginalEdges)
		require.Equal(s.T(), prev, st.InitialEdges)
		require.LessOrEqual(s.T(), float64(st.FinalEdges), alpha*480)
		require.NoError(s.T(), m.Validate())
		prev = st.FinalEdges
	}
	require.Equal(s.T(), sim.Mesh(), m)
	require.Equal(s.T(), 480, sim.OriginalEdges())
}

// TestDeterminism runs the same input twice.
func (s *SimplifierSuite) TestDeterminism() {
	a := s.icosphere(2)
	b := a.Clone()

	stA, errA := s.run(a, 0.3)
	stB, errB := s.run(b, 0.3)
	require.NoError(s.T(), errA)
	require.NoError(s.T(), errB)
	require.Equal(s.T(), stA, stB)

	posA, trisA := builder.ToTriangles(a)
	posB, trisB := builder.ToTriangles(b)
	require.Equal(s.T(), posA, posB)
	require.Equal(s.T(), trisA, trisB)
}

// TestContextCancel stops before the first round.
func (s *SimplifierSuite) TestContextCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := s.icosphere(1)
	st, err := s.run(m, 0.1, qem.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Zero(s.T(), st.Collapses)
	require.Equal(s.T(), 120, st.FinalEdges)
}

// TestLogging verifies one debug record per round and a run summary.
func (s *SimplifierSuite) TestLogging() {
	core, logs := observer.New(zapcore.DebugLevel)
	m := s.icosphere(1)
	st, err := s.run(m, 0.5, qem.WithLogger(zap.New(core)))
	require.NoError(s.T(), err)

	require.Equal(s.T(), st.Collapses, logs.FilterMessage("edge collapsed").Len())
	require.Equal(s.T(), st.Skipped, logs.FilterMessage("edge not collapsable, skipped").Len())
	summary := logs.FilterMessage("simplification finished").All()
	require.Len(s.T(), summary, 1)
	require.Equal(s.T(), zapcore.InfoLevel, summary[0].Level)
	require.Equal(s.T(), int64(st.FinalEdges), summary[0].ContextMap()["final_edges"])
	require.Equal(s.T(), "qem", summary[0].ContextMap()["component"])
}

// TestOptionDefaults checks the option set.
func (s *SimplifierSuite) TestOptionDefaults() {
	o := qem.DefaultOptions()
	require.NotNil(s.T(), o.Logger)
	require.NotNil(s.T(), o.Ctx)
	require.Equal(s.T(), qem.DefaultDetEpsilon, o.DetEpsilon)

	qem.WithLogger(nil)(&o)
	require.NotNil(s.T(), o.Logger)
	//nolint:staticcheck // SA1012
	qem.WithContext(nil)(&o)
	require.NotNil(s.T(), o.Ctx)

	require.Panics(s.T(), func() { qem.WithDetEpsilon(0) })
	require.Panics(s.T(), func() { qem.WithDetEpsilon(math.NaN()) })
	qem.WithDetEpsilon(1e-3)(&o)
	require.Equal(s.T(), 1e-3, o.DetEpsilon)
}

func TestSimplifierSuite(t *testing.T) {
	suite.Run(t, new(SimplifierSuite))
}
