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

// FaceVertexMesh is a flat mesh: a position array and an index array holding
// Stride vertex indices per face.
type FaceVertexMesh struct {
	Positions []r3.Vec
	Indices   []int
	Stride    int
}

func (fv *FaceVertexMesh) NumFaces() int {
	if fv.Stride <= 0 {
		return 0
	}
	return len(fv.Indices) / fv.Stride
}

// Face returns the vertex indices of the i-th face.
func (fv *FaceVertexMesh) Face(i int) []int {
	return fv.Indices[i*fv.Stride : (i+1)*fv.Stride]
}

// Validate reports ErrInvalidMesh if the buffers are inconsistent.
func (fv *FaceVertexMesh) Validate() error {
	if fv.Stride < 3 {
		return fmt.Errorf("halfedge: stride %d: %w", fv.Stride, ErrInvalidMesh)
	}
	if len(fv.Indices)%fv.Stride != 0 {
		return fmt.Errorf("halfedge: %d indices is not a multiple of stride %d: %w", len(fv.Indices), fv.Stride, ErrInvalidMesh)
	}
	for i, p := range fv.Positions {
		if math.IsNaN(p.X+p.Y+p.Z) || math.IsInf(p.X+p.Y+p.Z, 0) {
			return fmt.Errorf("halfedge: position %d is not finite: %w", i, ErrInvalidMesh)
		}
	}
	for i, idx := range fv.Indices {
		if idx < 0 || idx >= len(fv.Positions) {
			return fmt.Errorf("halfedge: index %d at %d out of range [0, %d): %w", idx, i, len(fv.Positions), ErrInvalidMesh)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the positions.
func (fv *FaceVertexMesh) Bounds() r3.Box {
	if len(fv.Positions) == 0 {
		return r3.Box{}
	}
	b := r3.Box{Min: fv.Positions[0], Max: fv.Positions[0]}
	for _, p := range fv.Positions[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}

// Normals returns one unit normal per position, the area-weighted sum of the
// normals of the faces around it. Positions no face uses get a zero normal.
func (fv *FaceVertexMesh) Normals() []r3.Vec {
	ns := make([]r3.Vec, len(fv.Positions))
	ps := make([]r3.Vec, fv.Stride)
	for i := 0; i < fv.NumFaces(); i++ {
		face := fv.Face(i)
		for j, idx := range face {
			ps[j] = fv.Positions[idx]
		}
		n := newellNormal(ps)
		for _, idx := range face {
			ns[idx] = r3.Add(ns[idx], n)
		}
	}
	for i, n := range ns {
		if r3.Norm(n) > 0 {
			ns[i] = r3.Unit(n)
		}
	}
	return ns
}

// FaceVertexMesh flattens m. Every face's corners are listed starting at the
// source of the half-edge before its representative one, which keeps the
// winding of the mesh m was built from.
func (m *Mesh) FaceVertexMesh() (*FaceVertexMesh, error) {
	fv := &FaceVertexMesh{
		Positions: make([]r3.Vec, len(m.vertices)),
	}
	for i, v := range m.vertices {
		fv.Positions[i] = v.Position
	}
	if len(m.faces) == 0 {
		fv.Stride = m.verticesPerFace
		return fv, nil
	}

	fv.Stride = m.FaceDegree(0)
	fv.Indices = make([]int, 0, len(m.faces)*fv.Stride)
	for f, face := range m.faces {
		if n := m.FaceDegree(f); n != fv.Stride {
			return nil, fmt.Errorf("halfedge: face %d has %d corners, face 0 has %d: %w", f, n, fv.Stride, ErrInvalidMesh)
		}
		start := m.halfEdges[face.Edge].Prev
		e := start
		for {
			fv.Indices = append(fv.Indices, m.halfEdges[e].Source)
			e = m.halfEdges[e].Next
			if e == start {
				break
			}
		}
	}
	return fv, nil
}
