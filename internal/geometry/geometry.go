// Package geometry maps board state onto a flat triangle list for the
// rendering layer. Layout constants here are shared with the input adapter
// so clicks land on the cells the renderer drew.
package geometry

import (
	"biolife/internal/universe"
)

// GridOrigin offsets the grid so a small board sits centered in a [-1,1]
// normalized viewport. Fixed layout constant, shared with the input adapter.
const GridOrigin float32 = -0.6

var (
	aliveColor = [3]float32{0.2, 0.8, 0.2}
	deadColor  = [3]float32{0.1, 0.1, 0.1}
)

// Vertex is one corner of a cell triangle: 2 position floats followed by
// 3 color floats, the attribute layout the external renderer declares.
type Vertex struct {
	Position [2]float32
	Color    [3]float32
}

// CellOffset returns the lower-left corner of the cell at (row, col).
func CellOffset(row, col int, cellSize, padding float32) (x, y float32) {
	x = float32(col)*(cellSize+padding) + GridOrigin
	y = float32(row)*(cellSize+padding) + GridOrigin
	return x, y
}

// Derive converts the board snapshot into two triangles per cell, six
// vertices each, in row-major order. It is a pure function of its inputs:
// repeated calls on an unmodified board yield identical output, and the
// result always has exactly rows*cols*6 vertices.
func Derive(u *universe.Universe, cellSize, padding float32) []Vertex {
	rows, cols := u.Rows(), u.Cols()
	vertices := make([]Vertex, 0, rows*cols*6)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			color := deadColor
			if u.Alive(row, col) {
				color = aliveColor
			}

			x, y := CellOffset(row, col, cellSize, padding)

			vertices = append(vertices,
				Vertex{Position: [2]float32{x, y + cellSize}, Color: color},
				Vertex{Position: [2]float32{x, y}, Color: color},
				Vertex{Position: [2]float32{x + cellSize, y}, Color: color},

				Vertex{Position: [2]float32{x, y + cellSize}, Color: color},
				Vertex{Position: [2]float32{x + cellSize, y}, Color: color},
				Vertex{Position: [2]float32{x + cellSize, y + cellSize}, Color: color},
			)
		}
	}
	return vertices
}
