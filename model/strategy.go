package model

import (
	"sort"
	"strings"
)

// CountingStrategy computes live-neighbor counts for a generation.
// Implementations must agree on every cell outside the pad border.
type CountingStrategy interface {
	Name() string
	// Neighbors writes the count of every cell in rows [startRow, endRow) into counts.
	// It only reads g and only writes those rows of counts.
	Neighbors(g *Grid, counts [][]int, startRow, endRow int)
	// Frozen reports whether the cell keeps its current value regardless of its neighbors.
	Frozen(g *Grid, row, col int) bool
}

// StrategyFactory builds a counting strategy
type StrategyFactory func() CountingStrategy

var strategies = map[string]StrategyFactory{}

// RegisterStrategy adds a strategy under the provided name
func RegisterStrategy(name string, f StrategyFactory) {
	if name == "" || f == nil {
		return
	}
	strategies[name] = f
}

// StrategyByName builds the named strategy
func StrategyByName(name string) (CountingStrategy, error) {
	f, ok := strategies[name]
	if !ok {
		return nil, NewInvalidConfiguration("strategy", "unknown strategy %q (want one of %s)",
			name, strings.Join(StrategyNames(), ", "))
	}
	return f(), nil
}

// StrategyNames lists the registered strategies in sorted order
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
