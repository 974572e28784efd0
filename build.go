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
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrInvalidMesh is returned for malformed face-vertex buffers.
	ErrInvalidMesh = errors.New("invalid mesh")

	// ErrDegenerateFace is returned for a face that repeats a vertex or has
	// no area.
	ErrDegenerateFace = errors.New("degenerate face")

	// ErrNonManifold is returned when a directed edge is used by two faces.
	ErrNonManifold = errors.New("non-manifold edge")
)

// edgeKey packs a directed edge (from, to) into one map key.
type edgeKey uint64

func makeEdgeKey(from, to int) edgeKey {
	return edgeKey(uint64(uint32(from))<<32 | uint64(uint32(to)))
}

func (k edgeKey) reversed() edgeKey {
	return k<<32 | k>>32
}

// NewMesh builds a half-edge mesh from a flat face-vertex mesh. Vertex i of
// the result is fv.Positions[i], and face i is the i-th face of fv.
func NewMesh(fv *FaceVertexMesh) (*Mesh, error) {
	if err := validateTopology(fv); err != nil {
		return nil, err
	}

	stride := fv.Stride
	nf := fv.NumFaces()
	m := &Mesh{
		vertices:        make([]Vertex, 0, len(fv.Positions)),
		halfEdges:       make([]HalfEdge, 0, len(fv.Indices)),
		faces:           make([]Face, 0, nf),
		verticesPerFace: stride,
	}
	for _, p := range fv.Positions {
		m.addVertex(p, NoEdge)
	}

	edges := make(map[edgeKey]int, len(fv.Indices))
	for i := 0; i < nf; i++ {
		face := fv.Face(i)
		first := len(m.halfEdges)
		f := m.addFace(first)
		for j, v := range face {
			e := m.addHalfEdge(HalfEdge{
				Source: v,
				Face:   f,
				Prev:   first + (j+stride-1)%stride,
				Next:   first + (j+1)%stride,
				Twin:   NoTwin,
			})
			m.vertices[v].Outgoing = e
			edges[makeEdgeKey(v, face[(j+1)%stride])] = e
		}
	}

	for k, e := range edges {
		if t, ok := edges[k.reversed()]; ok {
			m.halfEdges[e].Twin = t
			m.halfEdges[t].Twin = e
		}
	}
	return m, nil
}

// validateTopology rejects everything NewMesh cannot turn into a valid
// half-edge mesh, before anything is allocated.
func validateTopology(fv *FaceVertexMesh) error {
	if err := fv.Validate(); err != nil {
		return err
	}

	seen := map[edgeKey]int{}
	ps := make([]r3.Vec, fv.Stride)
	for i := 0; i < fv.NumFaces(); i++ {
		face := fv.Face(i)
		for j, v := range face {
			for _, w := range face[:j] {
				if v == w {
					return fmt.Errorf("halfedge: face %d repeats vertex %d: %w", i, v, ErrDegenerateFace)
				}
			}
			ps[j] = fv.Positions[v]
		}
		if newellNormal(ps) == (r3.Vec{}) {
			return fmt.Errorf("halfedge: face %d has no area: %w", i, ErrDegenerateFace)
		}
		for j, v := range face {
			w := face[(j+1)%len(face)]
			k := makeEdgeKey(v, w)
			if other, ok := seen[k]; ok {
				return fmt.Errorf("halfedge: edge %d->%d is used by faces %d and %d in the same direction: %w", v, w, other, i, ErrNonManifold)
			}
			seen[k] = i
		}
	}
	return nil
}
