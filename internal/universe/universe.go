// Package universe holds the automaton state and its evolution rule.
package universe

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrInvalidDimensions reports a construction attempt with an empty axis.
	ErrInvalidDimensions = errors.New("universe: rows and cols must be positive")
	// ErrOutOfBounds reports a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("universe: cell out of bounds")
)

// Universe is a toroidal Game of Life grid stored in row-major order.
type Universe struct {
	rows, cols int
	cur        []bool
	nxt        []bool
}

// New allocates a rows*cols grid, all dead, then seeds it from a nucleotide
// sequence: cell i becomes alive when seed[i] is 'G' or 'C'. A seed shorter
// than the grid leaves the remaining cells dead; excess symbols are ignored.
func New(rows, cols int, seed []byte) (*Universe, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	cells := make([]bool, rows*cols)
	u := &Universe{rows: rows, cols: cols, cur: cells, nxt: make([]bool, len(cells))}
	u.Reseed(seed)
	return u, nil
}

// Reseed clears the grid and re-applies the sequence seeding rule.
func (u *Universe) Reseed(seed []byte) {
	for i := range u.cur {
		u.cur[i] = false
	}
	for i, base := range seed {
		if i >= len(u.cur) {
			break
		}
		if base == 'G' || base == 'C' {
			u.cur[i] = true
		}
	}
}

// Rows returns the grid height.
func (u *Universe) Rows() int { return u.rows }

// Cols returns the grid width.
func (u *Universe) Cols() int { return u.cols }

// Cells exposes the current generation.
func (u *Universe) Cells() []bool { return u.cur }

// Alive reports whether the cell at (row, col) is alive. Out-of-range
// coordinates report dead.
func (u *Universe) Alive(row, col int) bool {
	if row < 0 || row >= u.rows || col < 0 || col >= u.cols {
		return false
	}
	return u.cur[row*u.cols+col]
}

// Population returns the number of live cells.
func (u *Universe) Population() int {
	n := 0
	for _, alive := range u.cur {
		if alive {
			n++
		}
	}
	return n
}

// Toggle flips the cell at (row, col). The grid is untouched on error.
func (u *Universe) Toggle(row, col int) error {
	if row < 0 || row >= u.rows || col < 0 || col >= u.cols {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, row, col, u.rows, u.cols)
	}
	idx := row*u.cols + col
	u.cur[idx] = !u.cur[idx]
	return nil
}

// Randomize fills the grid with a deterministic 50/50 live/dead pattern.
func (u *Universe) Randomize(seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range u.cur {
		u.cur[i] = rng.IntN(2) == 1
	}
}

// Step advances the universe by one generation. The next generation is
// computed entirely from the current one, then swapped in, so no cell ever
// observes an already-updated neighbor.
func (u *Universe) Step() {
	rows, cols := u.rows, u.cols
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr := (row + dr + rows) % rows
					nc := (col + dc + cols) % cols
					if u.cur[nr*cols+nc] {
						neighbors++
					}
				}
			}
			idx := row*cols + col
			alive := u.cur[idx]
			u.nxt[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
}
