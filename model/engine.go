package model

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"golife/rules"
)

// CountLiveNeighbors counts the living cells among the 8 positions
// adjacent to (row, col). Positions outside the grid count as dead.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue // Skip the cell itself
			}
			if g.Get(row+dRow, col+dCol, Dead) == Alive {
				count++
			}
		}
	}
	return count
}

// NextGeneration computes the grid one generation forward and returns it
// as a newly allocated grid of the same dimensions. The receiver is never
// mutated; every next state is decided from the current generation only.
func (g *Grid) NextGeneration() *Grid {
	next := newGrid(g.height, g.width)
	g.stepInto(next, 0, g.height)
	return next
}

// NextGenerationParallel computes the next generation with one worker per
// CPU, each handling a band of rows. Results are identical to
// NextGeneration since workers only read the current grid and write
// disjoint rows of the output. Pass a pool to reuse a discarded grid for
// the output, or nil to allocate.
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.height, g.width)
	} else {
		next = newGrid(g.height, g.width)
	}

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.stepInto(next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	return next
}

// stepInto writes the next state of rows [startRow, endRow) into next
func (g *Grid) stepInto(next *Grid, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < g.width; col++ {
			neighbors := g.CountLiveNeighbors(row, col)
			alive := g.cells[row][col] == Alive

			if rules.ApplyConwayRules(neighbors, alive) {
				next.set(row, col, Alive)
			}
		}
	}
}
