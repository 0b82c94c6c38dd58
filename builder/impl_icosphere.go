// SPDX-License-Identifier: MIT
// Package: qemesh/builder
//
// impl_icosphere.go: Icosphere(subdivisions, opts...) constructor.
//
// Each level splits every triangle (a,b,c) into four through the edge
// midpoints ab, bc, ca, which are pushed back onto the unit sphere:
//
//	        c
//	       / \
//	     ca───bc
//	     / \ / \
//	    a───ab──b
//
// Midpoints are cached per undirected edge so neighbouring triangles share them.
//
// Complexity:
//   • Time O(20·4ⁿ), Space O(20·4ⁿ).

package builder

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/qemesh/halfedge"
)

const methodIcosphere = "Icosphere"

// Icosphere returns the icosahedron refined n times onto the unit sphere.
// n < 0 → ErrBadSize.
func Icosphere(n int, opts ...BuilderOption) (*halfedge.Mesh, error) {
	if n < 0 {
		return nil, builderErrorf(methodIcosphere, ErrBadSize, "subdivisions=%d", n)
	}
	base := platonicSolids[Icosahedron]
	positions := append([]mgl64.Vec3(nil), base.positions...)
	faces := append([][3]int(nil), base.faces...)

	for level := 0; level < n; level++ {
		mid := make(map[side]int, 3*len(faces)/2)
		midpoint := func(a, b int) int {
			key := side{from: a, to: b}
			if a > b {
				key = side{from: b, to: a}
			}
			if i, ok := mid[key]; ok {
				return i
			}
			p := positions[a].Add(positions[b]).Normalize()
			positions = append(positions, p)
			mid[key] = len(positions) - 1

			return mid[key]
		}

		next := make([][3]int, 0, 4*len(faces))
		for _, f := range faces {
			a, b, c := f[0], f[1], f[2]
			ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
			next = append(next,
				[3]int{a, ab, ca},
				[3]int{b, bc, ab},
				[3]int{c, ca, bc},
				[3]int{ab, bc, ca},
			)
		}
		faces = next
	}

	cfg := newBuilderConfig(opts...)
	for i := range positions {
		positions[i] = cfg.place(positions[i])
	}

	m, err := FromTriangles(positions, faces)
	if err != nil {
		return nil, builderErrorf(methodIcosphere, err, "subdivisions=%d", n)
	}

	return m, nil
}
