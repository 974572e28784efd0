// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package halfedge

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// NewBox returns an axis-aligned box centered at the origin as 8 vertices and
// 6 outward-facing quads.
func NewBox(half r3.Vec) *FaceVertexMesh {
	x, y, z := half.X, half.Y, half.Z
	return &FaceVertexMesh{
		Positions: []r3.Vec{
			{X: -x, Y: -y, Z: -z},
			{X: x, Y: -y, Z: -z},
			{X: x, Y: -y, Z: z},
			{X: -x, Y: -y, Z: z},

			{X: -x, Y: y, Z: z},
			{X: x, Y: y, Z: z},
			{X: x, Y: y, Z: -z},
			{X: -x, Y: y, Z: -z},
		},
		Indices: []int{
			0, 1, 2, 3,
			3, 2, 5, 4,
			4, 5, 6, 7,
			5, 2, 1, 6,
			7, 6, 1, 0,
			4, 7, 0, 3,
		},
		Stride: 4,
	}
}

// NewChips returns three quads of a box: its front, back and top faces.
func NewChips(half r3.Vec) *FaceVertexMesh {
	x, y, z := half.X, half.Y, half.Z
	return &FaceVertexMesh{
		Positions: []r3.Vec{
			{X: -x, Y: y, Z: -z},
			{X: x, Y: y, Z: -z},
			{X: x, Y: -y, Z: -z},
			{X: -x, Y: -y, Z: -z},

			{X: x, Y: y, Z: z},
			{X: -x, Y: y, Z: z},
			{X: -x, Y: -y, Z: z},
			{X: x, Y: -y, Z: z},
		},
		Indices: []int{
			0, 1, 2, 3,
			4, 5, 6, 7,
			4, 1, 0, 5,
		},
		Stride: 4,
	}
}

// NewRegularPolygon returns a flat regular polygon in the XZ plane as a fan of
// quads around its center. Each quad spans one sector: a corner on the circle
// and the midpoints of the two chords next to it.
func NewRegularPolygon(radius float64, sectors int) *FaceVertexMesh {
	if sectors < 3 {
		panic(fmt.Sprintf("halfedge: a regular polygon needs at least 3 sectors, got %d", sectors))
	}

	n := 2 * sectors
	ps := make([]r3.Vec, n+1)
	step := 2 * math.Pi / float64(sectors)
	for i := 0; i < sectors; i++ {
		a := step * float64(i+1)
		ps[2*i] = r3.Vec{X: math.Cos(a) * radius, Z: math.Sin(a) * radius}
	}
	for i := 1; i < n; i += 2 {
		ps[i] = midpoint(ps[i-1], ps[(i+1)%n])
	}
	center := n

	indices := make([]int, 0, 4*sectors)
	for i := 0; i < n; i += 2 {
		before := i - 1
		if i == 0 {
			before = n - 1
		}
		indices = append(indices, center, i+1, i, before)
	}
	return &FaceVertexMesh{
		Positions: ps,
		Indices:   indices,
		Stride:    4,
	}
}

// NewPacman is like NewRegularPolygon but only covers the angles from start to
// end, leaving a wedge open.
func NewPacman(radius float64, sectors int, start, end float64) *FaceVertexMesh {
	if sectors < 1 {
		panic(fmt.Sprintf("halfedge: a pacman needs at least 1 sector, got %d", sectors))
	}
	if !(start < end) || end-start >= 2*math.Pi {
		panic(fmt.Sprintf("halfedge: invalid pacman angles [%f, %f]", start, end))
	}

	n := 2 * sectors
	ps := make([]r3.Vec, n+2)
	step := (end - start) / float64(sectors)
	for i := 0; i <= sectors; i++ {
		a := start + step*float64(i)
		ps[2*i] = r3.Vec{X: math.Cos(a) * radius, Z: math.Sin(a) * radius}
	}
	for i := 1; i < n; i += 2 {
		ps[i] = midpoint(ps[i-1], ps[i+1])
	}
	center := n + 1

	indices := make([]int, 0, 4*sectors)
	for i := 1; i < n; i += 2 {
		indices = append(indices, center, i+1, i, i-1)
	}
	return &FaceVertexMesh{
		Positions: ps,
		Indices:   indices,
		Stride:    4,
	}
}

// NewGrid returns an open sheet of cols×rows unit quads in the XZ plane, with
// vertex (i, j) at (i, 0, j) and index j*(cols+1)+i.
func NewGrid(cols, rows int) *FaceVertexMesh {
	if cols < 1 || rows < 1 {
		panic(fmt.Sprintf("halfedge: invalid grid size %dx%d", cols, rows))
	}

	idx := func(i, j int) int {
		return j*(cols+1) + i
	}
	ps := make([]r3.Vec, 0, (cols+1)*(rows+1))
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			ps = append(ps, r3.Vec{X: float64(i), Z: float64(j)})
		}
	}
	indices := make([]int, 0, 4*cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			indices = append(indices, idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1))
		}
	}
	return &FaceVertexMesh{
		Positions: ps,
		Indices:   indices,
		Stride:    4,
	}
}

// NewTetrahedron returns a regular tetrahedron inscribed in the cube [-1, 1]³.
func NewTetrahedron() *FaceVertexMesh {
	return &FaceVertexMesh{
		Positions: []r3.Vec{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		Indices: []int{
			0, 1, 2,
			0, 3, 1,
			0, 2, 3,
			1, 3, 2,
		},
		Stride: 3,
	}
}
