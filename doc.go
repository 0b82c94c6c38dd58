// Package qemesh simplifies triangle meshes with the Quadric Error Metric.
//
// What is qemesh?
//
//	A small, deterministic library that brings together:
//		• halfedge/  arena half-edge mesh with stable handles, traversal, validation
//		• builder/   indexed triangles ⇄ mesh, Platonic solids, icospheres, grids
//		• qem/       quadric store, edge cost index, edge collapse, simplification driver
//
// Under the hood:
//
//	Every vertex accumulates the squared distances to the planes of its faces
//	in a 4×4 quadric. Edges are collapsed cheapest-first; the survivor moves to
//	the point minimising the combined quadric, and only the 1-ring around it
//	is re-costed. Collapses that would break manifoldness (boundary vertices,
//	link-condition failures) are parked at +Inf and skipped.
//
// Quick example:
//
//	m, _ := builder.Icosphere(3)           // 1920 edges
//	s, _ := qem.NewSimplifier(m)
//	stats, err := s.RunSimplify(0.25)      // down to 480 edges
//	if err != nil { ... }
//	positions, triangles := builder.ToTriangles(m)
//
// Logging goes through go.uber.org/zap (silent unless qem.WithLogger is set);
// vectors and matrices are github.com/go-gl/mathgl/mgl64.
//
// See cmd/qemsimplify for a command-line driver and examples/ for runnable
// scenarios.
package qemesh
