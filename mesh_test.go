package halfedge

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

func vecNear(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < eps
}

func mustMesh(t *testing.T, fv *FaceVertexMesh) *Mesh {
	t.Helper()
	m, err := NewMesh(fv)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	return m
}

func unitBox() *FaceVertexMesh {
	return NewBox(r3.Vec{X: 1, Y: 1, Z: 1})
}

func TestNewMeshBox(t *testing.T) {
	m := mustMesh(t, unitBox())

	if got, want := m.NumVertices(), 8; got != want {
		t.Errorf("NumVertices: got %d, want %d", got, want)
	}
	if got, want := m.NumHalfEdges(), 24; got != want {
		t.Errorf("NumHalfEdges: got %d, want %d", got, want)
	}
	if got, want := m.NumFaces(), 6; got != want {
		t.Errorf("NumFaces: got %d, want %d", got, want)
	}
	if got, want := m.VerticesPerFace(), 4; got != want {
		t.Errorf("VerticesPerFace: got %d, want %d", got, want)
	}

	for i := 0; i < m.NumHalfEdges(); i++ {
		twin, ok := m.Twin(i)
		if !ok {
			t.Fatalf("half-edge %d of a closed box has no twin", i)
		}
		if back, _ := m.Twin(twin); back != i {
			t.Errorf("twin of twin of %d: got %d", i, back)
		}
	}

	want := []int{0, 1, 2, 3}
	got := m.FaceVertices(0)
	if len(got) != len(want) {
		t.Fatalf("FaceVertices(0): got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FaceVertices(0): got %v, want %v", got, want)
		}
	}
}

func TestFaceLoopsClose(t *testing.T) {
	for _, tc := range []struct {
		name string
		fv   *FaceVertexMesh
	}{
		{"box", unitBox()},
		{"tetrahedron", NewTetrahedron()},
		{"grid", NewGrid(3, 2)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMesh(t, tc.fv)
			for f := 0; f < m.NumFaces(); f++ {
				deg := m.FaceDegree(f)
				if deg != tc.fv.Stride {
					t.Errorf("face %d: degree %d, want %d", f, deg, tc.fv.Stride)
				}
				start := m.Face(f).Edge
				e := start
				for i := 0; i < deg; i++ {
					e = m.HalfEdge(e).Next
				}
				if e != start {
					t.Errorf("face %d: %d steps from %d end at %d", f, deg, start, e)
				}
			}
		})
	}
}

func TestNewMeshStrip(t *testing.T) {
	m := mustMesh(t, NewGrid(2, 1))

	if got, want := m.NumHalfEdges(), 8; got != want {
		t.Fatalf("NumHalfEdges: got %d, want %d", got, want)
	}
	// Only the edge between vertex 1 and 4 is shared.
	for i := 0; i < m.NumHalfEdges(); i++ {
		twin, ok := m.Twin(i)
		switch i {
		case 1:
			if !ok || twin != 7 {
				t.Errorf("Twin(1): got %d, %t, want 7", twin, ok)
			}
		case 7:
			if !ok || twin != 1 {
				t.Errorf("Twin(7): got %d, %t, want 1", twin, ok)
			}
		default:
			if ok {
				t.Errorf("Twin(%d): got %d, want boundary", i, twin)
			}
			if !m.HalfEdge(i).IsBoundary() {
				t.Errorf("half-edge %d: IsBoundary is false", i)
			}
		}
	}
}

func TestNewMeshErrors(t *testing.T) {
	tri := []r3.Vec{{}, {X: 1}, {Y: 1}}
	for _, tc := range []struct {
		name string
		fv   *FaceVertexMesh
		err  error
	}{
		{
			name: "stride",
			fv:   &FaceVertexMesh{Positions: tri, Indices: []int{0, 1}, Stride: 2},
			err:  ErrInvalidMesh,
		},
		{
			name: "partial face",
			fv:   &FaceVertexMesh{Positions: tri, Indices: []int{0, 1, 2, 0}, Stride: 3},
			err:  ErrInvalidMesh,
		},
		{
			name: "index out of range",
			fv:   &FaceVertexMesh{Positions: tri, Indices: []int{0, 1, 3}, Stride: 3},
			err:  ErrInvalidMesh,
		},
		{
			name: "negative index",
			fv:   &FaceVertexMesh{Positions: tri, Indices: []int{0, -1, 2}, Stride: 3},
			err:  ErrInvalidMesh,
		},
		{
			name: "nan",
			fv:   &FaceVertexMesh{Positions: []r3.Vec{{}, {X: math.NaN()}, {Y: 1}}, Indices: []int{0, 1, 2}, Stride: 3},
			err:  ErrInvalidMesh,
		},
		{
			name: "repeated vertex",
			fv:   &FaceVertexMesh{Positions: tri, Indices: []int{0, 1, 1}, Stride: 3},
			err:  ErrDegenerateFace,
		},
		{
			name: "zero area",
			fv:   &FaceVertexMesh{Positions: []r3.Vec{{}, {X: 1}, {X: 2}}, Indices: []int{0, 1, 2}, Stride: 3},
			err:  ErrDegenerateFace,
		},
		{
			name: "duplicated directed edge",
			fv:   &FaceVertexMesh{Positions: tri, Indices: []int{0, 1, 2, 0, 1, 2}, Stride: 3},
			err:  ErrNonManifold,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMesh(tc.fv)
			if !errors.Is(err, tc.err) {
				t.Fatalf("got %v, want %v", err, tc.err)
			}
			if m != nil {
				t.Errorf("got a mesh along with the error")
			}
		})
	}
}

func TestCheckDetectsBrokenTwin(t *testing.T) {
	m := mustMesh(t, unitBox())
	m.halfEdges[0].Twin = 5
	if err := m.Check(); err == nil {
		t.Errorf("Check accepted a wrong twin")
	}
}

func TestCheckDetectsBrokenLoop(t *testing.T) {
	m := mustMesh(t, unitBox())
	m.halfEdges[0].Next = 2
	if err := m.Check(); err == nil {
		t.Errorf("Check accepted a broken loop")
	}
}
