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

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// NoEdge marks a missing half-edge reference.
	NoEdge = -1

	// NoFace marks a missing face reference.
	NoFace = -1

	// NoTwin marks a boundary half-edge: only one face touches its edge.
	NoTwin = -1
)

// Vertex is a mesh vertex. Outgoing is any half-edge whose source is the
// vertex, or NoEdge for a vertex no face refers to.
type Vertex struct {
	Position r3.Vec
	Outgoing int
}

// HalfEdge is one directed side of an edge. Prev and Next link the half-edges
// around Face into a closed loop. Twin is the half-edge running the other way
// along the same edge, or NoTwin.
type HalfEdge struct {
	Source int
	Face   int
	Prev   int
	Next   int
	Twin   int
}

// IsBoundary reports whether the half-edge has no twin.
func (e HalfEdge) IsBoundary() bool {
	return e.Twin == NoTwin
}

// Face is a polygon bounded by the loop of half-edges containing Edge.
type Face struct {
	Edge int
}

// Mesh is a half-edge mesh. Vertices, half-edges and faces live in arenas and
// are addressed by index. Nothing is ever removed, so an index stays valid for
// the lifetime of the mesh.
type Mesh struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face

	verticesPerFace int
}

func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

func (m *Mesh) NumHalfEdges() int {
	return len(m.halfEdges)
}

func (m *Mesh) NumFaces() int {
	return len(m.faces)
}

// VerticesPerFace returns the face degree the mesh was built with, or 4 once
// it has been subdivided.
func (m *Mesh) VerticesPerFace() int {
	return m.verticesPerFace
}

func (m *Mesh) Vertex(v int) Vertex {
	return m.vertices[v]
}

func (m *Mesh) HalfEdge(e int) HalfEdge {
	return m.halfEdges[e]
}

func (m *Mesh) Face(f int) Face {
	return m.faces[f]
}

// Position returns the position of the vertex v.
func (m *Mesh) Position(v int) r3.Vec {
	return m.vertices[v].Position
}

// Twin returns the twin of e. ok is false if e lies on the boundary.
func (m *Mesh) Twin(e int) (twin int, ok bool) {
	t := m.halfEdges[e].Twin
	return t, t != NoTwin
}

// Dest returns the destination vertex of e, which is the source of e.Next.
func (m *Mesh) Dest(e int) int {
	return m.halfEdges[m.halfEdges[e].Next].Source
}

// FaceEdges returns the half-edges bounding f, starting at its representative
// half-edge.
func (m *Mesh) FaceEdges(f int) []int {
	var edges []int
	start := m.faces[f].Edge
	e := start
	for {
		edges = append(edges, e)
		e = m.halfEdges[e].Next
		if e == start {
			break
		}
	}
	return edges
}

// FaceVertices returns the corners of f in loop order.
func (m *Mesh) FaceVertices(f int) []int {
	edges := m.FaceEdges(f)
	vs := make([]int, len(edges))
	for i, e := range edges {
		vs[i] = m.halfEdges[e].Source
	}
	return vs
}

func (m *Mesh) FaceDegree(f int) int {
	start := m.faces[f].Edge
	e := start
	n := 0
	for {
		n++
		e = m.halfEdges[e].Next
		if e == start {
			break
		}
	}
	return n
}

func (m *Mesh) addVertex(pos r3.Vec, outgoing int) int {
	m.vertices = append(m.vertices, Vertex{
		Position: pos,
		Outgoing: outgoing,
	})
	return len(m.vertices) - 1
}

func (m *Mesh) addHalfEdge(e HalfEdge) int {
	m.halfEdges = append(m.halfEdges, e)
	return len(m.halfEdges) - 1
}

func (m *Mesh) addFace(edge int) int {
	m.faces = append(m.faces, Face{Edge: edge})
	return len(m.faces) - 1
}

func assert(cond bool) {
	if !cond {
		panic("halfedge: assertion error")
	}
}

// Check checks the mesh for self-consistency and returns an error describing
// the first broken invariant.
func (m *Mesh) Check() error {
	ne := len(m.halfEdges)
	inRange := func(i, n int) bool {
		return i >= 0 && i < n
	}

	for i, e := range m.halfEdges {
		if !inRange(e.Next, ne) || !inRange(e.Prev, ne) {
			return fmt.Errorf("halfedge: half-edge %d: dangling prev/next (%d, %d)", i, e.Prev, e.Next)
		}
		if e.Twin != NoTwin && !inRange(e.Twin, ne) {
			return fmt.Errorf("halfedge: half-edge %d: twin %d out of range", i, e.Twin)
		}
		if !inRange(e.Source, len(m.vertices)) {
			return fmt.Errorf("halfedge: half-edge %d: source %d out of range", i, e.Source)
		}
		if !inRange(e.Face, len(m.faces)) {
			return fmt.Errorf("halfedge: half-edge %d: face %d out of range", i, e.Face)
		}
	}

	for i, e := range m.halfEdges {
		if m.halfEdges[e.Next].Prev != i {
			return fmt.Errorf("halfedge: half-edge %d: next.prev is %d", i, m.halfEdges[e.Next].Prev)
		}
		if m.halfEdges[e.Prev].Next != i {
			return fmt.Errorf("halfedge: half-edge %d: prev.next is %d", i, m.halfEdges[e.Prev].Next)
		}
		if m.halfEdges[e.Next].Face != e.Face {
			return fmt.Errorf("halfedge: half-edge %d: next lies on face %d, not %d", i, m.halfEdges[e.Next].Face, e.Face)
		}
		if e.Twin == NoTwin {
			continue
		}
		t := m.halfEdges[e.Twin]
		if t.Twin != i {
			return fmt.Errorf("halfedge: half-edge %d: twin.twin is %d", i, t.Twin)
		}
		if t.Source != m.Dest(i) || m.Dest(e.Twin) != e.Source {
			return fmt.Errorf("halfedge: half-edge %d: twin %d does not run the opposite way", i, e.Twin)
		}
	}

	total := 0
	for f, face := range m.faces {
		if !inRange(face.Edge, ne) {
			return fmt.Errorf("halfedge: face %d: edge %d out of range", f, face.Edge)
		}
		e := face.Edge
		n := 0
		for {
			if m.halfEdges[e].Face != f {
				return fmt.Errorf("halfedge: face %d: half-edge %d lies on face %d", f, e, m.halfEdges[e].Face)
			}
			n++
			if n > ne {
				return fmt.Errorf("halfedge: face %d: loop does not close", f)
			}
			e = m.halfEdges[e].Next
			if e == face.Edge {
				break
			}
		}
		if n < 3 {
			return fmt.Errorf("halfedge: face %d: degree %d", f, n)
		}
		total += n
	}
	if total != ne {
		return fmt.Errorf("halfedge: face loops cover %d of %d half-edges", total, ne)
	}

	for v, vert := range m.vertices {
		if vert.Outgoing == NoEdge {
			continue
		}
		if !inRange(vert.Outgoing, ne) || m.halfEdges[vert.Outgoing].Source != v {
			return fmt.Errorf("halfedge: vertex %d: outgoing half-edge %d does not start at it", v, vert.Outgoing)
		}
	}
	return nil
}
