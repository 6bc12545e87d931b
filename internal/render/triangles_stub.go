//go:build !ebiten

package render

import (
	"biolife/internal/geometry"
)

// TriangleRenderer is a placeholder that satisfies the API expected by the
// GUI build.
type TriangleRenderer struct{}

// NewTriangleRenderer panics to indicate that the ebiten build tag is
// required for GUI support.
func NewTriangleRenderer() *TriangleRenderer {
	panic("render.NewTriangleRenderer requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (r *TriangleRenderer) Draw(any, []geometry.Vertex) {}
