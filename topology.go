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
	"gonum.org/v1/gonum/spatial/r3"
)

// SplitEdge inserts a vertex in the middle of the edge e lies on. The new
// half-edge eNew becomes e.Next, so eNew.Source is the new vertex and e keeps
// its source.
//
// The two half-edges of an edge are split one after the other. The first split
// creates a vertex at pos; the second finds that vertex through e.Twin, reuses
// it and ignores pos, then swaps the twins so that each half on one side faces
// the matching half on the other side.
//
// SplitEdge returns the new half-edge.
func (m *Mesh) SplitEdge(e int, pos r3.Vec) int {
	eOrg := m.halfEdges[e]
	eSym := eOrg.Twin

	// The twin was split already if it no longer runs exactly from e's
	// destination back to e's source.
	splitBefore := eSym != NoTwin &&
		(m.halfEdges[eSym].Source != m.Dest(e) || m.Dest(eSym) != eOrg.Source)

	var v int
	if splitBefore {
		v = m.Dest(eSym)
	} else {
		v = len(m.vertices)
	}

	eNew := m.addHalfEdge(HalfEdge{
		Source: v,
		Face:   eOrg.Face,
		Prev:   e,
		Next:   eOrg.Next,
		Twin:   NoTwin,
	})
	m.halfEdges[eOrg.Next].Prev = eNew
	m.halfEdges[e].Next = eNew

	if !splitBefore {
		m.addVertex(pos, eNew)
		return eNew
	}

	// eSym runs from e's destination to v, eSymNew from v to e's source.
	eSymNew := m.halfEdges[eSym].Next
	m.halfEdges[eSymNew].Twin = e
	m.halfEdges[e].Twin = eSymNew
	m.halfEdges[eNew].Twin = eSym
	m.halfEdges[eSym].Twin = eNew
	return eNew
}

// SplitFace inserts a vertex at pos and connects it to every other corner of
// f, turning f into quads. All edges of f must have been split with SplitEdge
// first, so that corners of f alternate between old vertices and edge
// midpoints; the spokes run to the midpoints.
//
// f itself becomes the quad holding its representative half-edge. The other
// quads are appended to the face list. SplitFace returns the new vertex.
func (m *Mesh) SplitFace(f int, pos r3.Vec) int {
	assert(m.FaceDegree(f)%2 == 0)

	center := m.addVertex(pos, NoEdge)

	eStart := m.faces[f].Edge
	e := m.halfEdges[eStart].Next
	firstIn := NoEdge
	lastOut := NoEdge
	for {
		// ePrev ends at the midpoint e starts from.
		ePrev := m.halfEdges[e].Prev
		eNext := m.halfEdges[e].Next

		face := f
		if lastOut != NoEdge {
			face = m.addFace(lastOut)
			m.halfEdges[lastOut].Face = face
		}

		// in runs from the midpoint to the center, out back again.
		in := m.addHalfEdge(HalfEdge{
			Source: m.halfEdges[e].Source,
			Face:   face,
			Prev:   ePrev,
			Next:   lastOut,
			Twin:   NoTwin,
		})
		out := m.addHalfEdge(HalfEdge{
			Source: center,
			Face:   NoFace,
			Prev:   NoEdge,
			Next:   e,
			Twin:   in,
		})
		m.halfEdges[in].Twin = out

		if lastOut != NoEdge {
			m.halfEdges[lastOut].Prev = in
		}
		m.halfEdges[ePrev].Face = face
		m.halfEdges[m.halfEdges[ePrev].Prev].Face = face
		m.halfEdges[ePrev].Next = in
		m.halfEdges[e].Prev = out
		m.vertices[center].Outgoing = out

		if firstIn == NoEdge {
			firstIn = in
		}
		lastOut = out

		e = m.halfEdges[eNext].Next
		if m.halfEdges[e].Prev == eStart {
			break
		}
	}

	// Close the ring: the last spoke belongs to f.
	m.halfEdges[lastOut].Face = f
	m.halfEdges[firstIn].Next = lastOut
	m.halfEdges[lastOut].Prev = firstIn
	return center
}
