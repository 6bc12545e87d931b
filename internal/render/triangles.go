//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"biolife/internal/geometry"
)

// DrawTriangles takes uint16 indices, so one call covers at most this many
// vertices (largest multiple of 3 below 1<<16).
const maxBatch = 65535 / 3 * 3

// TriangleRenderer uploads the derived vertex list as colored triangles.
type TriangleRenderer struct {
	pixel    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewTriangleRenderer allocates the 1x1 white source image the triangles
// sample their color from.
func NewTriangleRenderer() *TriangleRenderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &TriangleRenderer{pixel: pixel}
}

// Draw renders the vertex list onto dst as a triangle list, three vertices
// per triangle in input order.
func (r *TriangleRenderer) Draw(dst *ebiten.Image, verts []geometry.Vertex) {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	for start := 0; start < len(verts); start += maxBatch {
		end := start + maxBatch
		if end > len(verts) {
			end = len(verts)
		}
		batch := verts[start:end]

		r.vertices = r.vertices[:0]
		r.indices = r.indices[:0]
		for i, v := range batch {
			x, y := ScreenPosition(v.Position, w, h)
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   x,
				DstY:   y,
				ColorR: v.Color[0],
				ColorG: v.Color[1],
				ColorB: v.Color[2],
				ColorA: 1,
			})
			r.indices = append(r.indices, uint16(i))
		}
		dst.DrawTriangles(r.vertices, r.indices, r.pixel, nil)
	}
}
