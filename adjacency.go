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

// EdgePair is a half-edge together with its twin, NoTwin on the boundary.
type EdgePair struct {
	Edge int
	Twin int
}

// AdjacentEdges returns every edge touching v, in either direction, as
// (half-edge, twin) pairs. An edge is listed once even though both its
// half-edges touch v.
//
// AdjacentEdges scans all half-edges; there is no adjacency cache.
func (m *Mesh) AdjacentEdges(v int) []EdgePair {
	var pairs []EdgePair
	seen := map[int]struct{}{}
	for i, e := range m.halfEdges {
		if e.Source != v && m.Dest(i) != v {
			continue
		}
		if _, ok := seen[i]; ok {
			continue
		}
		pairs = append(pairs, EdgePair{Edge: i, Twin: e.Twin})
		seen[i] = struct{}{}
		if e.Twin != NoTwin {
			seen[e.Twin] = struct{}{}
		}
	}
	return pairs
}

// IncidentEdges returns the half-edges ending at v, leaving out v's outgoing
// half-edge.
func (m *Mesh) IncidentEdges(v int) []int {
	var edges []int
	out := m.vertices[v].Outgoing
	for i := range m.halfEdges {
		if i == out || m.Dest(i) != v {
			continue
		}
		edges = append(edges, i)
	}
	return edges
}

// AdjacentFaces returns the distinct faces around v in the order they are
// first met.
func (m *Mesh) AdjacentFaces(v int) []int {
	var faces []int
	seen := map[int]struct{}{}
	add := func(f int) {
		if _, ok := seen[f]; ok {
			return
		}
		seen[f] = struct{}{}
		faces = append(faces, f)
	}
	for _, p := range m.AdjacentEdges(v) {
		add(m.halfEdges[p.Edge].Face)
		if p.Twin != NoTwin {
			add(m.halfEdges[p.Twin].Face)
		}
	}
	return faces
}

// IsBoundaryVertex reports whether any edge touching v lacks a twin.
func (m *Mesh) IsBoundaryVertex(v int) bool {
	for _, p := range m.AdjacentEdges(v) {
		if p.Twin == NoTwin {
			return true
		}
	}
	return false
}
