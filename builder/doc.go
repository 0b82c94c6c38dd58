// Package builder constructs half-edge meshes from indexed triangles and
// provides deterministic fixture shapes for tests, benchmarks and demos.
//
// The package offers the following key components:
//
//   - Construction:
//     – FromTriangles:  indexed triangle list → *halfedge.Mesh with boundary loops.
//     – ToTriangles:    compact indexed export of a (possibly simplified) mesh.
//   - Fixture shapes (closed, outward-oriented, circumradius 1 before options):
//     – PlatonicSolid:  Tetrahedron, Octahedron, Cube (12 triangles), Icosahedron.
//     – Icosphere:      icosahedron refined by midpoint subdivision onto the sphere.
//   - Open shapes:
//     – Grid:           flat rows×cols quad grid split into triangles, with boundary.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithScale, WithCenter.
//
// Guarantees:
//
//   - Deterministic element creation order: the same input always yields the
//     same handles, so simplification runs on fixtures are reproducible.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrIndexOutOfRange, ErrNonManifoldEdge, …)
//     wrapped with the constructor name.
//
// Counts for reference:
//
//	Tetrahedron  V=4   E=6    F=4
//	Octahedron   V=6   E=12   F=8
//	Cube         V=8   E=18   F=12
//	Icosahedron  V=12  E=30   F=20
//	Icosphere(n) V=10·4ⁿ+2  E=30·4ⁿ  F=20·4ⁿ
//	Grid(r,c)    V=(r+1)(c+1)  E=3rc+r+c  F=2rc
package builder
