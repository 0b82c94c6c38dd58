// SPDX-License-Identifier: MIT
// Package: qemesh/builder
//
// impl_grid.go: Grid(rows, cols, opts...) constructor.
//
// Canonical model:
//   • Vertex (i,j) sits at (j, i, 0), index i*(cols+1)+j, for 0≤i≤rows, 0≤j≤cols.
//   • Cell (i,j) with corners a=(i,j) b=(i,j+1) c=(i+1,j+1) d=(i+1,j)
//     becomes triangles (a,b,c) and (a,c,d); normals point to +z.
//   • The outer ring of vertices and edges is boundary.
//
// Complexity:
//   • Time O(rows·cols).

package builder

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/qemesh/halfedge"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a flat triangulated rows×cols grid with unit cells.
// rows < 1 or cols < 1 → ErrBadSize.
func Grid(rows, cols int, opts ...BuilderOption) (*halfedge.Mesh, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, builderErrorf(methodGrid, ErrBadSize, "rows=%d cols=%d", rows, cols)
	}
	cfg := newBuilderConfig(opts...)

	stride := cols + 1
	positions := make([]mgl64.Vec3, 0, (rows+1)*stride)
	for i := 0; i <= rows; i++ {
		for j := 0; j <= cols; j++ {
			positions = append(positions, cfg.place(mgl64.Vec3{float64(j), float64(i), 0}))
		}
	}

	triangles := make([][3]int, 0, 2*rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a := i*stride + j
			b := a + 1
			d := a + stride
			c := d + 1
			triangles = append(triangles, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}

	m, err := FromTriangles(positions, triangles)
	if err != nil {
		return nil, builderErrorf(methodGrid, err, "rows=%d cols=%d", rows, cols)
	}

	return m, nil
}
