// SPDX-License-Identifier: MIT

package qem

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/qemesh/halfedge"
)

// edgeQuadric returns Q(first) + Q(second) from the store.
func (s *Simplifier) edgeQuadric(e halfedge.EdgeID) mgl64.Mat4 {
	return s.quadrics[s.mesh.FirstVertex(e)].Add(s.quadrics[s.mesh.SecondVertex(e)])
}

// computeOptimalCollapsePosition returns the point minimising the combined
// quadric error of the endpoints of e.
func (s *Simplifier) computeOptimalCollapsePosition(e halfedge.EdgeID) mgl64.Vec3 {
	return optimalPosition(
		s.edgeQuadric(e),
		s.mesh.Pos(s.mesh.FirstVertex(e)),
		s.mesh.Pos(s.mesh.SecondVertex(e)),
		s.opts.DetEpsilon,
	)
}

// computeEdgeCost returns the error of collapsing e to its optimal position.
// Pure: neither the cost store nor the index changes.
func (s *Simplifier) computeEdgeCost(e halfedge.EdgeID) float64 {
	return quadricError(s.edgeQuadric(e), s.computeOptimalCollapsePosition(e))
}

// updateEdgeCost replaces the cost of e in the store and the index.
// NaN is stored as +Inf so the index order stays total.
func (s *Simplifier) updateEdgeCost(e halfedge.EdgeID, cost float64) {
	if math.IsNaN(cost) {
		cost = math.Inf(1)
	}
	s.index.remove(e)
	s.costs[e] = cost
	s.index.insert(e, cost)
}

// destroyEdge drops e from the cost store, the index and the mesh, in that order.
func (s *Simplifier) destroyEdge(e halfedge.EdgeID) error {
	delete(s.costs, e)
	s.index.remove(e)
	if err := s.mesh.RemoveEdge(e); err != nil {
		return fmt.Errorf("%s: %w", methodDestroyEdge, err)
	}

	return nil
}
