package geometry

import (
	"reflect"
	"testing"

	"biolife/internal/universe"
)

const (
	cellSize float32 = 0.08
	padding  float32 = 0.02
)

func TestDeriveVertexCount(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {10, 10}, {4, 7}} {
		u, err := universe.New(dims[0], dims[1], nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		got := len(Derive(u, cellSize, padding))
		want := dims[0] * dims[1] * 6
		if got != want {
			t.Errorf("%dx%d board: %d vertices, want %d", dims[0], dims[1], got, want)
		}
	}
}

func TestDeriveDeterministic(t *testing.T) {
	u, err := universe.New(5, 5, []byte("GCATGCATGCATGCATGCATGCATG"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := Derive(u, cellSize, padding)
	b := Derive(u, cellSize, padding)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two derivations of an unmodified board differ")
	}

	u.Step()
	c := Derive(u, cellSize, padding)
	d := Derive(u, cellSize, padding)
	if !reflect.DeepEqual(c, d) {
		t.Fatal("derivations differ after a step")
	}
}

func TestDeriveQuadCorners(t *testing.T) {
	u, err := universe.New(2, 2, []byte("G")) // only cell (0,0) alive
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	verts := Derive(u, cellSize, padding)

	x, y := CellOffset(0, 0, cellSize, padding)
	if x != GridOrigin || y != GridOrigin {
		t.Fatalf("cell (0,0) offset = (%v,%v), want (%v,%v)", x, y, GridOrigin, GridOrigin)
	}

	want := [][2]float32{
		{x, y + cellSize},
		{x, y},
		{x + cellSize, y},
		{x, y + cellSize},
		{x + cellSize, y},
		{x + cellSize, y + cellSize},
	}
	for i, pos := range want {
		if verts[i].Position != pos {
			t.Errorf("vertex %d position = %v, want %v", i, verts[i].Position, pos)
		}
	}

	// Cell (1,1) sits one stride away on both axes.
	x11, y11 := CellOffset(1, 1, cellSize, padding)
	stride := cellSize + padding
	if x11 != GridOrigin+stride || y11 != GridOrigin+stride {
		t.Errorf("cell (1,1) offset = (%v,%v), want (%v,%v)", x11, y11, GridOrigin+stride, GridOrigin+stride)
	}
	if got := verts[3*6+1].Position; got != [2]float32{x11, y11} {
		t.Errorf("cell (1,1) anchor vertex = %v, want %v", got, [2]float32{x11, y11})
	}
}

func TestDeriveColors(t *testing.T) {
	u, err := universe.New(1, 2, []byte("GA")) // alive, dead
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	verts := Derive(u, cellSize, padding)

	for i := 0; i < 6; i++ {
		if verts[i].Color != aliveColor {
			t.Errorf("alive vertex %d color = %v, want %v", i, verts[i].Color, aliveColor)
		}
	}
	for i := 6; i < 12; i++ {
		if verts[i].Color != deadColor {
			t.Errorf("dead vertex %d color = %v, want %v", i, verts[i].Color, deadColor)
		}
	}
	if aliveColor == deadColor {
		t.Fatal("alive and dead colors must be distinguishable")
	}
}
