package model

import (
	"github.com/pkg/errors"
)

// Cell is the binary state of a single grid position
type Cell bool

const (
	// Dead marks a position with no live cell
	Dead Cell = false
	// Alive marks a position holding a live cell
	Alive Cell = true
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive height or width
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrMalformedSeed is returned when a seed pattern cannot be parsed into a rectangular grid
	ErrMalformedSeed = errors.New("malformed seed pattern")
)

// Grid represents one immutable generation of the game board.
// Cells are stored row-major; height and width never change after construction.
type Grid struct {
	height int
	width  int
	cells  [][]Cell
}

// NewDeadGrid creates a grid of all-dead cells with the specified dimensions
func NewDeadGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewDeadGrid] got %dx%d", height, width)
	}
	return newGrid(height, width), nil
}

// newGrid allocates a dead grid for callers that have already validated dimensions
func newGrid(height, width int) *Grid {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  cells,
	}
}

// GetHeight returns the number of rows in the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// GetWidth returns the number of columns in the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// Get returns the cell at (row, col), or def when the coordinates fall outside the grid.
// Neighbor counting passes Dead so the board behaves as if surrounded by dead cells.
func (g *Grid) Get(row, col int, def Cell) Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return def
	}
	return g.cells[row][col]
}

// set writes a cell state. Only construction and the transition engine
// write cells, and both stay in bounds, so this is not exported.
func (g *Grid) set(row, col int, c Cell) {
	g.cells[row][col] = c
}

// Equal reports whether two grids have the same dimensions and cell values
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] == Alive {
				count++
			}
		}
	}
	return
}

// reset resizes the grid in place and kills every cell, for pool reuse
func (g *Grid) reset(height, width int) {
	g.height = height
	g.width = width

	if len(g.cells) != height {
		g.cells = make([][]Cell, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]Cell, width)
		} else {
			for j := range g.cells[i] {
				g.cells[i][j] = Dead
			}
		}
	}
}

// clear kills every cell before the grid returns to the pool
func (g *Grid) clear() {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col] = Dead
		}
	}
}
