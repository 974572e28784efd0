package halfedge_test

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	. "github.com/hajimehoshi/go-halfedge"
)

func ExampleMesh_Subdivide() {
	m, err := NewMesh(NewBox(r3.Vec{X: 1, Y: 1, Z: 1}))
	if err != nil {
		panic(err)
	}
	for i := 0; i < 3; i++ {
		fmt.Printf("%d: %d vertices, %d half-edges, %d faces\n", i, m.NumVertices(), m.NumHalfEdges(), m.NumFaces())
		if err := m.Subdivide(1); err != nil {
			panic(err)
		}
	}
	// Output:
	// 0: 8 vertices, 24 half-edges, 6 faces
	// 1: 26 vertices, 96 half-edges, 24 faces
	// 2: 98 vertices, 384 half-edges, 96 faces
}

func ExampleMesh_WriteTable() {
	m, err := NewMesh(&FaceVertexMesh{
		Positions: []r3.Vec{{}, {X: 1}, {Y: 1}},
		Indices:   []int{0, 1, 2},
		Stride:    3,
	})
	if err != nil {
		panic(err)
	}
	if err := m.WriteTable(os.Stdout, ','); err != nil {
		panic(err)
	}
	// Output:
	// HalfEdge,Src,Dst,Prev,Next,Twin,Face,HalfEdge,Vertex,X,Y,Z,Outgoing
	// 0,0,1,2,1,null,0,0,0,0.00,0.00,0.00,0
	// 1,1,2,0,2,null,,,1,1.00,0.00,0.00,1
	// 2,2,0,1,0,null,,,2,0.00,1.00,0.00,2
}

func ExampleMesh_FaceVertexMesh() {
	m, err := NewMesh(NewTetrahedron())
	if err != nil {
		panic(err)
	}
	if err := m.Subdivide(1); err != nil {
		panic(err)
	}
	fv, err := m.FaceVertexMesh()
	if err != nil {
		panic(err)
	}
	fmt.Println(len(fv.Positions), fv.NumFaces(), fv.Stride)
	// Output:
	// 14 12 4
}
