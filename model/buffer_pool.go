package model

import "sync"

// BufferPool recycles cell matrices between generations so Step does not
// allocate a fresh matrix every frame.
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return [][]bool(nil)
			},
		},
	}
}

// Get retrieves a cleared matrix from the pool, resized to the requested dimensions
func (p *BufferPool) Get(rows, cols int) [][]bool {
	cells := p.pool.Get().([][]bool)

	if len(cells) != rows {
		cells = make([][]bool, rows)
	}
	for i := range cells {
		if len(cells[i]) != cols {
			cells[i] = make([]bool, cols)
		} else {
			// Clear existing cells
			for j := range cells[i] {
				cells[i][j] = false
			}
		}
	}

	return cells
}

// Put returns a matrix to the pool for reuse
func (p *BufferPool) Put(cells [][]bool) {
	if cells == nil {
		return
	}
	p.pool.Put(cells)
}
