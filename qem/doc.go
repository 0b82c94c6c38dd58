// Package qem simplifies triangle meshes by greedy edge collapse under the
// Quadric Error Metric (Garland & Heckbert).
//
// Every vertex v carries a quadric Q(v), the sum over its incident faces of
// p·pᵀ where p = (a,b,c,d) is the face plane through v. Merging the endpoints
// of an edge into the point x costs
//
//	cost(x) = [x 1] · (Q1 + Q2) · [x 1]ᵀ
//
// The optimal x solves the 4×4 system obtained by replacing the last row of
// Q1+Q2 with [0 0 0 1]; when that system is near-singular the cheapest of the
// two endpoints and their midpoint is taken instead.
//
// A Simplifier owns, for the duration of a run:
//
//   - the quadric store      vertex → Q
//   - the edge cost store    edge   → cost
//   - the cost-ordered index (min-heap with lazy deletion)
//
// and repeatedly pops the cheapest edge, collapses it, moves the surviving
// vertex to the optimum and recomputes quadrics and costs on its 1-ring.
// All three stores are keyed by stable mesh handles, so destroying elements
// never shifts the costs attached to surviving edges.
//
// Complexity:
//
//   - Time:  O(E log E) for initialisation, then O(d log E) per collapse,
//     d = number of edges around the 1-ring of the surviving vertex.
//   - Space: O(V + E). Stale heap entries are compacted when they exceed
//     the live ones.
//
// Options:
//
//   - WithLogger:     *zap.Logger receiving per-round debug records (default: no-op).
//   - WithContext:    cancellation checked before every round.
//   - WithDetEpsilon: determinant threshold for the optimal-position solve (default 1e-7).
//
// Errors (sentinel):
//
//   - ErrNilMesh          NewSimplifier received a nil mesh.
//   - ErrBadRatio         alpha is NaN or outside [0,1].
//   - ErrNotCollapsable   an edge collapse would break manifoldness.
//   - ErrEdgeNotFound     an edge handle is dead.
//   - ErrTargetNotReached every remaining edge is non-collapsable.
//
// Example usage:
//
//	m, _ := builder.Icosphere(3)
//	s, err := qem.NewSimplifier(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stats, err := s.RunSimplify(0.25)
//	if errors.Is(err, qem.ErrTargetNotReached) {
//	    // m is still valid, only less simplified than asked
//	}
//	fmt.Println(stats.FinalEdges)
//
// A Simplifier is not safe for concurrent use. Independent Simplifiers on
// independent meshes may run in parallel.
package qem
