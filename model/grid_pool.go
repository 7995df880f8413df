package model

import "sync"

// GridToPool returns a retired generation to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles generation buffers between Evolve calls
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

// Get retrieves a zeroed grid shaped like shape
func (p *GridPool) Get(shape *Grid) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(shape.rows, shape.columns, shape.pad)
	return g
}

// Put hands a grid back; the caller must not touch it afterwards
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
