// Package render draws the geometry mapper's triangle list onto the window.
package render

// ScreenPosition maps a normalized device coordinate (origin center, y-up)
// onto pixel coordinates (origin top-left, y-down).
func ScreenPosition(pos [2]float32, width, height int) (x, y float32) {
	x = (pos[0] + 1) / 2 * float32(width)
	y = (1 - pos[1]) / 2 * float32(height)
	return x, y
}

// NormalizedPosition maps a pixel coordinate back into normalized device
// space, the space the input adapter resolves clicks in.
func NormalizedPosition(px, py, width, height int) (x, y float32) {
	x = float32(px)/float32(width)*2 - 1
	y = float32(py)/float32(height)*-2 + 1
	return x, y
}
