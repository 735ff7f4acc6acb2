package model

import "testing"

func TestGridPoolReturnsDeadGrids(t *testing.T) {
	pool := NewGridPool()

	grid := pool.Get(3, 4)
	if grid.GetHeight() != 3 || grid.GetWidth() != 4 {
		t.Fatalf("pool grid is %dx%d, want 3x4", grid.GetHeight(), grid.GetWidth())
	}
	if grid.CountLivingCells() != 0 {
		t.Fatalf("pool grid has %d living cells", grid.CountLivingCells())
	}

	// Dirty the grid, recycle it, and ask for different dimensions
	grid.set(0, 0, Alive)
	grid.set(2, 3, Alive)
	pool.Put(grid)

	reused := pool.Get(5, 2)
	if reused.GetHeight() != 5 || reused.GetWidth() != 2 {
		t.Fatalf("reused grid is %dx%d, want 5x2", reused.GetHeight(), reused.GetWidth())
	}
	if reused.CountLivingCells() != 0 {
		t.Fatalf("reused grid has %d living cells", reused.CountLivingCells())
	}
}

func TestGridToPoolNilPool(t *testing.T) {
	grid := mustParse(t, "0")
	// Must not panic when pooling is disabled
	GridToPool(grid, nil)
}
