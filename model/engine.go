package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Engine evolves grids one generation at a time with a fixed counting strategy
type Engine struct {
	strategy CountingStrategy
	workers  int
	pool     *GridPool
}

// NewEngine builds an engine. workers <= 0 means one worker per CPU; pool may be nil.
func NewEngine(strategy CountingStrategy, workers int, pool *GridPool) *Engine {
	if strategy == nil {
		strategy = ClampedStrategy{}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		strategy: strategy,
		workers:  workers,
		pool:     pool,
	}
}

// Strategy returns the counting strategy in use
func (e *Engine) Strategy() CountingStrategy {
	return e.strategy
}

// Pool returns the grid pool, nil when pooling is off
func (e *Engine) Pool() *GridPool {
	return e.pool
}

// Evolve returns the next generation of g. g is only read; the result is a fresh grid
// of the same shape.
func (e *Engine) Evolve(g *Grid) *Grid {
	var next *Grid
	if e.pool != nil {
		next = e.pool.Get(g)
	} else {
		next = newGrid(g.rows, g.columns, g.pad)
	}

	counts := make([][]int, g.rows)
	for r := range counts {
		counts[r] = make([]int, g.columns)
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, g.rows)
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
			e.strategy.Neighbors(g, counts, startRow, endRow)
			for r := startRow; r < endRow; r++ {
				for c := range g.columns {
					if e.strategy.Frozen(g, r, c) {
						next.cells[r][c] = g.cells[r][c]
						continue
					}
					if rules.ApplyConwayRules(counts[r][c], g.cells[r][c] == Alive) {
						next.cells[r][c] = Alive
					}
				}
			}
			return nil
		})
	}

	// workers only return nil
	_ = eg.Wait()

	return next
}

// Run evolves g the given number of generations. Intermediate grids go back to the
// pool; g itself is left untouched and is returned as is for zero generations.
func (e *Engine) Run(g *Grid, generations int) *Grid {
	current := g
	for range generations {
		next := e.Evolve(current)
		if current != g {
			GridToPool(current, e.pool)
		}
		current = next
	}
	return current
}
