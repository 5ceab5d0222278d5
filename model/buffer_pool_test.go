package model

import "testing"

func TestBufferPoolGetDimensions(t *testing.T) {
	pool := NewBufferPool()

	cells := pool.Get(3, 4)
	if len(cells) != 3 || len(cells[0]) != 4 {
		t.Fatalf("Expected a 3x4 matrix, got %dx%d", len(cells), len(cells[0]))
	}
	for y := range cells {
		for x := range cells[y] {
			if cells[y][x] {
				t.Fatalf("Expected a cleared matrix, cell (%d,%d) is alive", x, y)
			}
		}
	}
}

func TestBufferPoolReuseIsCleared(t *testing.T) {
	pool := NewBufferPool()

	cells := pool.Get(2, 2)
	cells[0][0] = true
	cells[1][1] = true
	pool.Put(cells)

	reused := pool.Get(2, 2)
	for y := range reused {
		for x := range reused[y] {
			if reused[y][x] {
				t.Errorf("Expected reused matrix to be cleared, cell (%d,%d) is alive", x, y)
			}
		}
	}
}

func TestBufferPoolResizes(t *testing.T) {
	pool := NewBufferPool()

	pool.Put(pool.Get(5, 5))
	cells := pool.Get(2, 7)
	if len(cells) != 2 || len(cells[0]) != 7 {
		t.Errorf("Expected a 2x7 matrix after resize, got %dx%d", len(cells), len(cells[0]))
	}
}
