// Package input translates normalized pointer coordinates into board cells.
package input

import (
	"biolife/internal/geometry"
)

// Resolve maps a pointer position in normalized device coordinates (origin
// center, y-up) to the cell whose square contains it, using the same layout
// as the geometry mapper. Cells are scanned in row-major order and the first
// containing square wins, which keeps the result deterministic even if the
// caller passes layout constants that make squares overlap. ok is false when
// the point falls in a padding gap or outside the grid.
func Resolve(x, y float32, rows, cols int, cellSize, padding float32) (row, col int, ok bool) {
	for row = 0; row < rows; row++ {
		for col = 0; col < cols; col++ {
			xOff, yOff := geometry.CellOffset(row, col, cellSize, padding)
			if x >= xOff && x <= xOff+cellSize && y >= yOff && y <= yOff+cellSize {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}
