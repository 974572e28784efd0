//go:build example
// +build example

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hajimehoshi/go-halfedge"
)

const (
	screenWidth  = 640
	screenHeight = 480
	maxPasses    = 5
)

var (
	flagShape  = flag.String("shape", "box", "initial shape: box, chips, polygon, pacman, grid or tetrahedron")
	flagPasses = flag.Int("passes", 1, "number of Catmull-Clark passes")
	flagTable  = flag.Bool("table", false, "print the connectivity table and exit")
)

var (
	boundaryColor = color.RGBA{0xff, 0x40, 0x40, 0xff}
	interiorColor = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
)

func shape(name string) (*halfedge.FaceVertexMesh, error) {
	switch name {
	case "box":
		return halfedge.NewBox(r3.Vec{X: 1, Y: 1, Z: 1}), nil
	case "chips":
		return halfedge.NewChips(r3.Vec{X: 1, Y: 1, Z: 1}), nil
	case "polygon":
		return halfedge.NewRegularPolygon(4, 6), nil
	case "pacman":
		return halfedge.NewPacman(4, 6, math.Pi/3, 5*math.Pi/3), nil
	case "grid":
		return halfedge.NewGrid(4, 4), nil
	case "tetrahedron":
		return halfedge.NewTetrahedron(), nil
	}
	return nil, fmt.Errorf("unknown shape %q", name)
}

type viewer struct {
	base   *halfedge.FaceVertexMesh
	mesh   *halfedge.Mesh
	passes int
	angle  float64
	scale  float64
	center r3.Vec
}

func (v *viewer) rebuild() error {
	m, err := halfedge.NewMesh(v.base)
	if err != nil {
		return err
	}
	if err := m.Subdivide(v.passes); err != nil {
		return err
	}
	v.mesh = m
	slog.Info("subdivided",
		slog.Int("passes", v.passes),
		slog.Int("vertices", m.NumVertices()),
		slog.Int("half_edges", m.NumHalfEdges()),
		slog.Int("faces", m.NumFaces()))
	return nil
}

// project maps p to screen space with a turntable rotation around Y.
func (v *viewer) project(p r3.Vec) (float64, float64) {
	p = r3.Sub(p, v.center)
	s, c := math.Sincos(v.angle)
	x := c*p.X + s*p.Z
	z := -s*p.X + c*p.Z
	y := p.Y*0.9 - z*0.45
	return screenWidth/2 + x*v.scale, screenHeight/2 - y*v.scale
}

func (v *viewer) update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) && v.passes < maxPasses {
		v.passes++
		if err := v.rebuild(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && v.passes > 0 {
		v.passes--
		if err := v.rebuild(); err != nil {
			return err
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		v.angle -= 0.03
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		v.angle += 0.03
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	m := v.mesh
	for i := 0; i < m.NumHalfEdges(); i++ {
		twin, ok := m.Twin(i)
		if ok && twin < i {
			continue
		}
		clr := interiorColor
		if !ok {
			clr = boundaryColor
		}
		x1, y1 := v.project(m.Position(m.HalfEdge(i).Source))
		x2, y2 := v.project(m.Position(m.Dest(i)))
		ebitenutil.DrawLine(screen, x1, y1, x2, y2, clr)
	}

	msg := fmt.Sprintf("passes: %d (up/down)\nvertices: %d\nhalf-edges: %d\nfaces: %d",
		v.passes, m.NumVertices(), m.NumHalfEdges(), m.NumFaces())
	ebitenutil.DebugPrint(screen, msg)
	return nil
}

func main() {
	flag.Parse()

	base, err := shape(*flagShape)
	if err != nil {
		slog.Error("invalid shape", slog.String("error", err.Error()))
		os.Exit(2)
	}

	v := &viewer{
		base:   base,
		passes: *flagPasses,
	}
	if err := v.rebuild(); err != nil {
		slog.Error("building mesh failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *flagTable {
		if err := v.mesh.WriteTable(os.Stdout, '\t'); err != nil {
			slog.Error("writing table failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	b := base.Bounds()
	v.center = r3.Scale(0.5, r3.Add(b.Min, b.Max))
	size := r3.Norm(r3.Sub(b.Max, b.Min))
	if size == 0 {
		size = 1
	}
	v.scale = 0.8 * screenHeight / size

	if err := ebiten.Run(v.update, screenWidth, screenHeight, 1, "Catmull-Clark (go-halfedge)"); err != nil {
		panic(err)
	}
}
