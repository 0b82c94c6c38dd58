// SPDX-License-Identifier: MIT
// Package: qemesh/builder
//
// variants_platonic.go: canonical data for the triangulated Platonic solids.
//
// Design:
//   • Single source of truth for vertex positions and outward (CCW) faces.
//   • Positions lie on the unit sphere; builders rescale via WithScale.
//   • Datasets are immutable package data; never mutate them in place.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PlatonicName enumerates the triangulated Platonic fixtures.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  E=6,  F=4
	Octahedron                      // V=6,  E=12, F=8
	Cube                            // V=8,  E=18, F=12 (each square split once)
	Icosahedron                     // V=12, E=30, F=20
)

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Octahedron:
		return "Octahedron"
	case Cube:
		return "Cube"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// solid bundles the canonical positions and faces of one fixture.
type solid struct {
	positions []mgl64.Vec3
	faces     [][3]int
}

var (
	invSqrt3 = 1 / math.Sqrt(3)
	golden   = (1 + math.Sqrt(5)) / 2
	icoNorm  = 1 / math.Sqrt(1+golden*golden)
)

// platonicSolids maps each PlatonicName to its dataset.
var platonicSolids = map[PlatonicName]solid{
	// Alternate corners of the cube (±1,±1,±1).
	Tetrahedron: {
		positions: []mgl64.Vec3{
			{invSqrt3, invSqrt3, invSqrt3},
			{invSqrt3, -invSqrt3, -invSqrt3},
			{-invSqrt3, invSqrt3, -invSqrt3},
			{-invSqrt3, -invSqrt3, invSqrt3},
		},
		faces: [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	},

	// 0:+x 1:-x 2:+y 3:-y 4:+z 5:-z
	Octahedron: {
		positions: []mgl64.Vec3{
			{1, 0, 0}, {-1, 0, 0},
			{0, 1, 0}, {0, -1, 0},
			{0, 0, 1}, {0, 0, -1},
		},
		faces: [][3]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	},

	// Corner i has x = bit0, y = bit1, z = bit2 (0 → -1, 1 → +1).
	Cube: {
		positions: cubeCorners(),
		faces: [][3]int{
			{0, 2, 3}, {0, 3, 1}, // -z
			{4, 5, 7}, {4, 7, 6}, // +z
			{0, 1, 5}, {0, 5, 4}, // -y
			{2, 6, 7}, {2, 7, 3}, // +y
			{0, 4, 6}, {0, 6, 2}, // -x
			{1, 3, 7}, {1, 7, 5}, // +x
		},
	},

	// Three orthogonal golden rectangles.
	Icosahedron: {
		positions: []mgl64.Vec3{
			{-icoNorm, golden * icoNorm, 0}, {icoNorm, golden * icoNorm, 0},
			{-icoNorm, -golden * icoNorm, 0}, {icoNorm, -golden * icoNorm, 0},
			{0, -icoNorm, golden * icoNorm}, {0, icoNorm, golden * icoNorm},
			{0, -icoNorm, -golden * icoNorm}, {0, icoNorm, -golden * icoNorm},
			{golden * icoNorm, 0, -icoNorm}, {golden * icoNorm, 0, icoNorm},
			{-golden * icoNorm, 0, -icoNorm}, {-golden * icoNorm, 0, icoNorm},
		},
		faces: [][3]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	},
}

func cubeCorners() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 8)
	for i := range out {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				out[i][axis] = invSqrt3
			} else {
				out[i][axis] = -invSqrt3
			}
		}
	}

	return out
}
