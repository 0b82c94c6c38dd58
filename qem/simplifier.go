// SPDX-License-Identifier: MIT

package qem

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/katalvlaran/qemesh/halfedge"
)

// Method names used in error wrapping.
const (
	methodNewSimplifier = "NewSimplifier"
	methodRunSimplify   = "RunSimplify"
	methodCollapseEdge  = "collapseEdge"
	methodDestroyEdge   = "destroyEdge"
)

// Stats summarises one RunSimplify call.
type Stats struct {
	OriginalEdges int  // edge count when the Simplifier was created
	InitialEdges  int  // edge count when this run started
	FinalEdges    int  // edge count when this run stopped
	FinalVertices int  // vertex count when this run stopped
	FinalFaces    int  // face count when this run stopped
	Rounds        int  // loop iterations, collapses plus skips
	Collapses     int  // successful edge collapses
	Skipped       int  // edges found non-collapsable and parked at +Inf
	Reached       bool // NumEdges <= alpha*OriginalEdges on return
}

// Simplifier reduces a borrowed mesh in place.
type Simplifier struct {
	mesh          *halfedge.Mesh
	opts          Options
	log           *zap.Logger
	originalEdges int

	quadrics map[halfedge.VertexID]mgl64.Mat4
	costs    map[halfedge.EdgeID]float64
	index    *costIndex
}

// NewSimplifier binds a Simplifier to m and records its current edge count
// as the reference for every later RunSimplify ratio.
// Returns ErrNilMesh if m is nil.
func NewSimplifier(m *halfedge.Mesh, opts ...Option) (*Simplifier, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", methodNewSimplifier, ErrNilMesh)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Simplifier{
		mesh:          m,
		opts:          o,
		log:           o.Logger.With(zap.String("component", "qem")),
		originalEdges: m.NumEdges(),
	}, nil
}

// Mesh returns the mesh being simplified.
func (s *Simplifier) Mesh() *halfedge.Mesh { return s.mesh }

// OriginalEdges returns the edge count recorded by NewSimplifier.
func (s *Simplifier) OriginalEdges() int { return s.originalEdges }

// RunSimplify collapses cheapest-first until NumEdges <= alpha*OriginalEdges.
//
// Every quadric and edge cost is recomputed from the current mesh before the
// first round, so consecutive runs with decreasing alpha are allowed.
//
// Each round peeks the cheapest edge. A non-collapsable edge is parked at
// +Inf and the round ends; otherwise it is collapsed into its optimal
// position and the 1-ring of the survivor is re-costed.
//
// Errors:
//   - ErrBadRatio         alpha is NaN or outside [0,1]; the mesh is untouched.
//   - ErrTargetNotReached the cheapest remaining edge costs +Inf.
//   - ctx.Err()           the configured context was cancelled.
//
// Stats are filled in on every return path after validation.
func (s *Simplifier) RunSimplify(alpha float64) (Stats, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return Stats{}, fmt.Errorf("%s: alpha=%g: %w", methodRunSimplify, alpha, ErrBadRatio)
	}

	s.initialize()
	stats := Stats{OriginalEdges: s.originalEdges, InitialEdges: s.mesh.NumEdges()}
	target := alpha * float64(s.originalEdges)

	var err error
	for float64(s.mesh.NumEdges()) > target {
		if err = s.opts.Ctx.Err(); err != nil {
			break
		}

		e, cost, ok := s.index.peek()
		if !ok || math.IsInf(cost, 1) {
			err = fmt.Errorf("%s: %d edges left, target %.1f: %w",
				methodRunSimplify, s.mesh.NumEdges(), target, ErrTargetNotReached)
			break
		}
		stats.Rounds++

		if !s.mesh.IsCollapsable(e) {
			s.updateEdgeCost(e, math.Inf(1))
			stats.Skipped++
			s.log.Debug("edge not collapsable, skipped",
				zap.Int("round", stats.Rounds),
				zap.Int("edge", int(e)))
			continue
		}

		pos := s.computeOptimalCollapsePosition(e)
		v, cerr := s.collapseEdge(e)
		if cerr != nil {
			err = fmt.Errorf("%s: %w", methodRunSimplify, cerr)
			break
		}
		s.updateVertexPos(v, pos)
		stats.Collapses++

		s.log.Debug("edge collapsed",
			zap.Int("round", stats.Rounds),
			zap.Int("edge", int(e)),
			zap.Float64("cost", cost),
			zap.Int("vertex", int(v)),
			zap.Int("edges_left", s.mesh.NumEdges()))
	}

	stats.FinalEdges = s.mesh.NumEdges()
	stats.FinalVertices = s.mesh.NumVertices()
	stats.FinalFaces = s.mesh.NumFaces()
	stats.Reached = float64(stats.FinalEdges) <= target

	s.log.Info("simplification finished",
		zap.Float64("alpha", alpha),
		zap.Int("original_edges", stats.OriginalEdges),
		zap.Int("final_edges", stats.FinalEdges),
		zap.Int("collapses", stats.Collapses),
		zap.Int("skipped", stats.Skipped),
		zap.Bool("reached", stats.Reached),
		zap.Error(err))

	return stats, err
}

// initialize rebuilds the quadric store, the cost store and the index from
// the current mesh.
func (s *Simplifier) initialize() {
	vs := s.mesh.Vertices()
	es := s.mesh.Edges()

	s.quadrics = make(map[halfedge.VertexID]mgl64.Mat4, len(vs))
	for _, v := range vs {
		s.quadrics[v] = s.computeQuadricMatrix(v)
	}

	s.costs = make(map[halfedge.EdgeID]float64, len(es))
	s.index = newCostIndex(len(es))
	for _, e := range es {
		s.updateEdgeCost(e, s.computeEdgeCost(e))
	}
}

// updateVertexPos moves v to pos, then recomputes the quadrics of v and its
// neighbours and the costs of every edge touching them. Each edge is
// re-costed once, after all quadrics are fresh, in first-seen order.
func (s *Simplifier) updateVertexPos(v halfedge.VertexID, pos mgl64.Vec3) {
	s.mesh.SetPos(v, pos)

	ring := append([]halfedge.VertexID{v}, s.mesh.Neighbors(v)...)
	seen := make(map[halfedge.EdgeID]struct{}, 4*len(ring))
	edges := make([]halfedge.EdgeID, 0, 4*len(ring))
	for _, u := range ring {
		s.quadrics[u] = s.computeQuadricMatrix(u)
		for _, e := range s.mesh.IncidentEdges(u) {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}

	for _, e := range edges {
		s.updateEdgeCost(e, s.computeEdgeCost(e))
	}
}
