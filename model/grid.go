package model

import (
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lifeterm/golife/rules"
)

// DefaultDensity is the probability of a cell starting alive
const DefaultDensity = 0.5

// Grid represents the game board plus the in-memory saved snapshot.
// cells and saved always share the same rows x cols dimensions.
type Grid struct {
	rows, cols int
	cells      [][]bool
	saved      [][]bool
	density    float64
	paused     bool
	pool       *BufferPool
}

// NewGrid creates a grid with each cell independently alive with the given
// probability. The snapshot starts as a copy of the initial state.
func NewGrid(rows, cols int, density float64) *Grid {
	if density <= 0 || density >= 1 {
		density = DefaultDensity
	}
	g := &Grid{
		rows:    rows,
		cols:    cols,
		cells:   randomCells(rows, cols, density),
		density: density,
		pool:    NewBufferPool(),
	}
	g.saved = cloneCells(g.cells)
	return g
}

// newGridFromCells wraps an already parsed matrix. The caller guarantees
// rectangular, non-empty cells.
func newGridFromCells(cells [][]bool) *Grid {
	g := &Grid{
		rows:    len(cells),
		cols:    len(cells[0]),
		cells:   cells,
		density: DefaultDensity,
		pool:    NewBufferPool(),
	}
	g.saved = cloneCells(cells)
	return g
}

// GetWidth returns the number of columns
func (g *Grid) GetWidth() int {
	return g.cols
}

// GetHeight returns the number of rows
func (g *Grid) GetHeight() int {
	return g.rows
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return false
	}
	return g.cells[y][x]
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.cols && y >= 0 && y < g.rows {
		g.cells[y][x] = alive
	}
}

// Restart replaces the cells with a fresh random matrix of the same dimensions
func (g *Grid) Restart() {
	g.cells = randomCells(g.rows, g.cols, g.density)
}

// SaveState copies the current cells into the in-memory snapshot,
// overwriting any prior snapshot.
func (g *Grid) SaveState() {
	copyCells(g.saved, g.cells)
}

// LoadState restores the cells from the in-memory snapshot. Before any
// explicit SaveState this restores the construction-time state, since the
// snapshot is seeded at construction.
func (g *Grid) LoadState() {
	copyCells(g.cells, g.saved)
}

// CountNeighbors counts living cells in the 3x3 neighborhood around (x, y),
// excluding the center. The neighborhood is clamped at the grid boundary, so
// edge and corner cells see fewer than 8 candidates and a 1x1 grid always
// counts 0.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	// Calculate bounds once using efficient integer min/max
	minX := max(0, x-1)
	maxX := min(g.cols-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.rows-1, y+1)

	// Count neighbors in the bounded region
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// Step computes the next generation into a double buffer and atomically
// swaps it in, so no cell reads an already updated neighbor. Rows are
// sharded across an errgroup for parallel processing.
func (g *Grid) Step() {
	next := g.pool.Get(g.rows, g.cols)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.cols; x++ {
					if rules.Survives(g.CountNeighbors(x, y), g.cells[y][x]) {
						next[y][x] = true
					}
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = eg.Wait()

	prev := g.cells
	g.cells = next
	g.pool.Put(prev)
}

// TogglePause flips the pause flag
func (g *Grid) TogglePause() {
	g.paused = !g.paused
}

// IsPaused reports whether the simulation is paused
func (g *Grid) IsPaused() bool {
	return g.paused
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.rows {
		for x := range g.cols {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// randomCells builds a rows x cols matrix with each cell independently alive
// with the given probability.
func randomCells(rows, cols int, density float64) [][]bool {
	cells := make([][]bool, rows)
	for y := range cells {
		cells[y] = make([]bool, cols)
		for x := range cells[y] {
			cells[y][x] = rand.Float64() < density
		}
	}
	return cells
}

// cloneCells returns an independent deep copy of a matrix
func cloneCells(src [][]bool) [][]bool {
	dst := make([][]bool, len(src))
	for i, row := range src {
		dst[i] = make([]bool, len(row))
		copy(dst[i], row)
	}
	return dst
}

// copyCells copies src into dst; both must share dimensions
func copyCells(dst, src [][]bool) {
	for i := range src {
		copy(dst[i], src[i])
	}
}
