package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grids so a driver that discards each generation after
// printing it does not allocate a fresh board every step
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid from the pool with the requested dimensions
func (p *GridPool) Get(height, width int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(height, width)
	return g
}

// Put returns a grid to the pool, clearing its state.
// The caller must hold the only reference to the grid.
func (p *GridPool) Put(g *Grid) {
	g.clear()
	p.pool.Put(g)
}
