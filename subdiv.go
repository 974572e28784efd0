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

// ErrInvalidPasses is returned for a negative subdivision pass count.
var ErrInvalidPasses = errors.New("invalid pass count")

// SubdivisionPoints holds the points one Catmull-Clark pass moves to or
// inserts, indexed like the mesh they were computed from.
type SubdivisionPoints struct {
	// Face holds one point per face: the centroid of its corners.
	Face []r3.Vec

	// Edge holds one point per half-edge. Both half-edges of an edge get the
	// same point.
	Edge []r3.Vec

	// Vertex holds the new position of every vertex.
	Vertex []r3.Vec

	// Midpoint holds the plain midpoint of every half-edge.
	Midpoint []r3.Vec
}

// CatmullClarkPoints computes the points of one Catmull-Clark pass over the
// current mesh without changing it.
func (m *Mesh) CatmullClarkPoints() *SubdivisionPoints {
	pts := &SubdivisionPoints{
		Face:     make([]r3.Vec, len(m.faces)),
		Edge:     make([]r3.Vec, len(m.halfEdges)),
		Vertex:   make([]r3.Vec, len(m.vertices)),
		Midpoint: make([]r3.Vec, len(m.halfEdges)),
	}

	var ps []r3.Vec
	for f := range m.faces {
		ps = ps[:0]
		for _, v := range m.FaceVertices(f) {
			ps = append(ps, m.vertices[v].Position)
		}
		pts.Face[f] = centroid(ps)
	}

	for i, e := range m.halfEdges {
		a := m.vertices[e.Source].Position
		b := m.vertices[m.Dest(i)].Position
		pts.Midpoint[i] = midpoint(a, b)
		if e.Twin == NoTwin {
			pts.Edge[i] = pts.Midpoint[i]
			continue
		}
		c0 := pts.Face[e.Face]
		c1 := pts.Face[m.halfEdges[e.Twin].Face]
		pts.Edge[i] = centroid([]r3.Vec{a, b, c0, c1})
	}

	for v := range m.vertices {
		pts.Vertex[v] = m.vertexPoint(v, pts)
	}
	return pts
}

// vertexPoint returns the new position of v. pts must hold face points and
// midpoints already.
func (m *Mesh) vertexPoint(v int, pts *SubdivisionPoints) r3.Vec {
	p := m.vertices[v].Position
	adjacent := m.AdjacentEdges(v)
	if len(adjacent) == 0 {
		// Isolated vertices stay put.
		return p
	}

	var boundary r3.Vec
	onBoundary := false
	for _, pair := range adjacent {
		if pair.Twin == NoTwin {
			boundary = r3.Add(boundary, pts.Midpoint[pair.Edge])
			onBoundary = true
		}
	}
	if onBoundary {
		// Only the boundary edges count here, interior ones are ignored.
		return r3.Scale(1.0/3.0, r3.Add(boundary, p))
	}

	incident := m.IncidentEdges(v)
	faces := m.AdjacentFaces(v)
	n := float64(len(incident))

	var q, r r3.Vec
	for _, f := range faces {
		q = r3.Add(q, pts.Face[f])
	}
	q = r3.Scale(1/float64(len(faces)), q)
	for _, e := range incident {
		r = r3.Add(r, pts.Midpoint[e])
	}
	r = r3.Scale(1/n, r)

	// Q/n + 2R/n + (n-3)P/n
	return r3.Add(r3.Add(r3.Scale(1/n, q), r3.Scale(2/n, r)), r3.Scale((n-3)/n, p))
}

// Subdivide applies passes Catmull-Clark passes to m. After the first one
// every face is a quad. Zero passes leave m unchanged.
func (m *Mesh) Subdivide(passes int) error {
	if passes < 0 {
		return fmt.Errorf("halfedge: %d passes: %w", passes, ErrInvalidPasses)
	}
	for i := 0; i < passes; i++ {
		m.subdivideOnce()
	}
	return nil
}

func (m *Mesh) subdivideOnce() {
	pts := m.CatmullClarkPoints()

	for v := range m.vertices {
		m.vertices[v].Position = pts.Vertex[v]
	}

	// SplitEdge and SplitFace append to the arenas. Only what existed before
	// the pass is split.
	ne := len(m.halfEdges)
	nf := len(m.faces)
	for e := 0; e < ne; e++ {
		m.SplitEdge(e, pts.Edge[e])
	}
	for f := 0; f < nf; f++ {
		m.SplitFace(f, pts.Face[f])
	}

	m.verticesPerFace = 4
}
