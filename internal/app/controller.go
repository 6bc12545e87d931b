// Package app wires the board, geometry mapper and input adapter into a
// simulation controller driven by an external event shell.
package app

import (
	"biolife/internal/geometry"
	"biolife/internal/input"
	"biolife/internal/telemetry"
	"biolife/internal/universe"
)

var backgrounds = [2][3]float32{
	{0.05, 0.05, 0.15}, // dim blue
	{0.15, 0.05, 0.05}, // dim red
}

// Controller owns the board and the last-derived vertex list. All mutation
// goes through OnTick, OnClick and OnKey, so the event shell never touches
// the raw cells; it only reads Vertices after each event it handled.
type Controller struct {
	uni      *universe.Universe
	seed     []byte
	cellSize float32
	padding  float32

	vertices   []geometry.Vertex
	generation int
	background int
	prev       []bool
}

// NewController builds the board from the seed sequence and derives the
// initial vertex list.
func NewController(rows, cols int, seed []byte, cellSize, padding float32) (*Controller, error) {
	uni, err := universe.New(rows, cols, seed)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		uni:      uni,
		seed:     seed,
		cellSize: cellSize,
		padding:  padding,
		prev:     make([]bool, rows*cols),
	}
	c.vertices = geometry.Derive(uni, cellSize, padding)
	return c, nil
}

// Universe exposes the board for read access.
func (c *Controller) Universe() *universe.Universe { return c.uni }

// Vertices returns the vertex list derived after the most recent mutation.
// The slice is replaced wholesale on every tick and click, never patched.
func (c *Controller) Vertices() []geometry.Vertex { return c.vertices }

// Generation returns the number of completed steps.
func (c *Controller) Generation() int { return c.generation }

// Background returns the current clear color as RGB in [0,1].
func (c *Controller) Background() [3]float32 { return backgrounds[c.background] }

// OnTick advances the board one generation, re-derives the geometry and
// reports what changed.
func (c *Controller) OnTick() telemetry.GenerationStats {
	copy(c.prev, c.uni.Cells())
	c.uni.Step()
	c.generation++
	c.vertices = geometry.Derive(c.uni, c.cellSize, c.padding)

	births, deaths := telemetry.Diff(c.prev, c.uni.Cells())
	alive := c.uni.Population()
	return telemetry.GenerationStats{
		Generation: c.generation,
		Alive:      alive,
		Births:     births,
		Deaths:     deaths,
		AliveFrac:  float64(alive) / float64(len(c.prev)),
	}
}

// OnClick resolves a normalized pointer position to a cell, toggles it and
// re-derives the geometry. Clicks in padding gaps or outside the grid are
// ignored. It reports whether a cell was toggled.
func (c *Controller) OnClick(x, y float32) bool {
	row, col, ok := input.Resolve(x, y, c.uni.Rows(), c.uni.Cols(), c.cellSize, c.padding)
	if !ok {
		return false
	}
	if err := c.uni.Toggle(row, col); err != nil {
		return false
	}
	c.vertices = geometry.Derive(c.uni, c.cellSize, c.padding)
	return true
}

// OnKey cycles the background clear color.
func (c *Controller) OnKey() {
	c.background = (c.background + 1) % len(backgrounds)
}

// Reseed restores the board to its initial sequence-seeded state.
func (c *Controller) Reseed() {
	c.uni.Reseed(c.seed)
	c.generation = 0
	c.vertices = geometry.Derive(c.uni, c.cellSize, c.padding)
}

// Randomize replaces the board with a deterministic random fill.
func (c *Controller) Randomize(seed int64) {
	c.uni.Randomize(seed)
	c.generation = 0
	c.vertices = geometry.Derive(c.uni, c.cellSize, c.padding)
}
