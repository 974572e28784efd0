package halfedge

import (
	"reflect"
	"testing"
)

func TestAdjacencyStrip(t *testing.T) {
	// 3---4---5
	// |   |   |
	// 0---1---2
	m := mustMesh(t, NewGrid(2, 1))

	if got, want := m.AdjacentEdges(1), []EdgePair{{0, NoTwin}, {1, 7}, {4, NoTwin}}; !reflect.DeepEqual(got, want) {
		t.Errorf("AdjacentEdges(1): got %v, want %v", got, want)
	}
	if got, want := m.IncidentEdges(1), []int{0, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("IncidentEdges(1): got %v, want %v", got, want)
	}
	if got, want := m.AdjacentFaces(1), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("AdjacentFaces(1): got %v, want %v", got, want)
	}
	if got, want := m.AdjacentFaces(0), []int{0}; !reflect.DeepEqual(got, want) {
		t.Errorf("AdjacentFaces(0): got %v, want %v", got, want)
	}
	for v := 0; v < m.NumVertices(); v++ {
		if !m.IsBoundaryVertex(v) {
			t.Errorf("vertex %d: IsBoundaryVertex is false", v)
		}
	}
}

func TestAdjacencyBox(t *testing.T) {
	m := mustMesh(t, unitBox())
	for v := 0; v < m.NumVertices(); v++ {
		if m.IsBoundaryVertex(v) {
			t.Errorf("vertex %d: IsBoundaryVertex is true", v)
		}
		if got := len(m.AdjacentEdges(v)); got != 3 {
			t.Errorf("vertex %d: %d adjacent edges, want 3", v, got)
		}
		if got := len(m.IncidentEdges(v)); got != 3 {
			t.Errorf("vertex %d: %d incident edges, want 3", v, got)
		}
		if got := len(m.AdjacentFaces(v)); got != 3 {
			t.Errorf("vertex %d: %d adjacent faces, want 3", v, got)
		}
		for _, e := range m.IncidentEdges(v) {
			if m.Dest(e) != v {
				t.Errorf("vertex %d: incident half-edge %d ends at %d", v, e, m.Dest(e))
			}
		}
	}
}

func TestAdjacencyGridCenter(t *testing.T) {
	m := mustMesh(t, NewGrid(2, 2))
	const center = 4
	if m.IsBoundaryVertex(center) {
		t.Fatalf("center vertex is on the boundary")
	}
	if got := len(m.IncidentEdges(center)); got != 4 {
		t.Errorf("%d incident edges, want 4", got)
	}
	if got, want := m.AdjacentFaces(center), []int{0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("AdjacentFaces: got %v, want %v", got, want)
	}
	// Vertex 1 mixes two boundary edges with one interior edge.
	if !m.IsBoundaryVertex(1) {
		t.Errorf("vertex 1 is not on the boundary")
	}
	boundary := 0
	for _, p := range m.AdjacentEdges(1) {
		if p.Twin == NoTwin {
			boundary++
		}
	}
	if boundary != 2 || len(m.AdjacentEdges(1)) != 3 {
		t.Errorf("vertex 1: %d boundary edges out of %d, want 2 out of 3", boundary, len(m.AdjacentEdges(1)))
	}
}
