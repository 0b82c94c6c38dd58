// SPDX-License-Identifier: MIT
// Package: qemesh/builder
//
// impl_platonic.go: PlatonicSolid(name, opts...) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Octahedron, Cube, Icosahedron}.
//   • Unknown name → ErrUnknownSolid.
//   • Positions are placed through builderConfig (scale, then translate).
//   • Faces are emitted in dataset order, so handles are deterministic.
//
// Complexity:
//   • Time O(V+F) for the selected solid (V≤12, F≤20).

package builder

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/qemesh/halfedge"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a closed, outward-oriented triangulation of the named solid.
func PlatonicSolid(name PlatonicName, opts ...BuilderOption) (*halfedge.Mesh, error) {
	s, ok := platonicSolids[name]
	if !ok {
		return nil, builderErrorf(methodPlatonicSolid, ErrUnknownSolid, "%d", int(name))
	}
	cfg := newBuilderConfig(opts...)

	positions := make([]mgl64.Vec3, len(s.positions))
	for i, p := range s.positions {
		positions[i] = cfg.place(p)
	}

	m, err := FromTriangles(positions, s.faces)
	if err != nil {
		return nil, builderErrorf(methodPlatonicSolid, err, "%s", name)
	}

	return m, nil
}
