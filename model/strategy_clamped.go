package model

// ClampedStrategyName is the registry key of ClampedStrategy
const ClampedStrategyName = "clamped"

// ClampedStrategy counts neighbors cell by cell. Edge and corner cells have a smaller
// neighborhood instead of phantom dead neighbors, and with a pad the border is frozen.
type ClampedStrategy struct{}

func (ClampedStrategy) Name() string { return ClampedStrategyName }

// Frozen holds every cell within pad of an edge
func (ClampedStrategy) Frozen(g *Grid, row, col int) bool {
	return g.pad > 0 && g.InPad(row, col)
}

func (s ClampedStrategy) Neighbors(g *Grid, counts [][]int, startRow, endRow int) {
	thin := g.rows < 2 || g.columns < 2
	for r := startRow; r < endRow; r++ {
		for c := range g.columns {
			switch {
			case s.Frozen(g, r, c):
				counts[r][c] = 0
			case g.pad > 0:
				counts[r][c] = interiorCount(g.cells, r, c)
			case thin:
				counts[r][c] = g.CountNeighborsOptimized(r, c)
			default:
				counts[r][c] = edgeAwareCount(g, r, c)
			}
		}
	}
}

func interiorCount(cells [][]uint8, r, c int) int {
	return int(cells[r-1][c-1]) + int(cells[r-1][c]) + int(cells[r-1][c+1]) +
		int(cells[r][c-1]) + int(cells[r][c+1]) +
		int(cells[r+1][c-1]) + int(cells[r+1][c]) + int(cells[r+1][c+1])
}

// edgeAwareCount sums the in-bounds neighbors of a cell on a grid at least 2x2:
// 3 for corners, 5 for the rest of the boundary and 8 inside.
func edgeAwareCount(g *Grid, r, c int) int {
	var (
		cells   = g.cells
		lastRow = g.rows - 1
		lastCol = g.columns - 1
	)
	at := func(r, c int) int { return int(cells[r][c]) }

	switch {
	case r == 0 && c == 0:
		return at(0, 1) + at(1, 0) + at(1, 1)
	case r == 0 && c == lastCol:
		return at(0, lastCol-1) + at(1, lastCol-1) + at(1, lastCol)
	case r == lastRow && c == 0:
		return at(lastRow-1, 0) + at(lastRow-1, 1) + at(lastRow, 1)
	case r == lastRow && c == lastCol:
		return at(lastRow-1, lastCol) + at(lastRow-1, lastCol-1) + at(lastRow, lastCol-1)
	case r == 0:
		return at(0, c-1) + at(1, c-1) + at(1, c) + at(1, c+1) + at(0, c+1)
	case r == lastRow:
		return at(lastRow, c-1) + at(lastRow-1, c-1) + at(lastRow-1, c) + at(lastRow-1, c+1) + at(lastRow, c+1)
	case c == 0:
		return at(r-1, 0) + at(r-1, 1) + at(r, 1) + at(r+1, 1) + at(r+1, 0)
	case c == lastCol:
		return at(r-1, lastCol) + at(r-1, lastCol-1) + at(r, lastCol-1) + at(r+1, lastCol-1) + at(r+1, lastCol)
	default:
		return interiorCount(cells, r, c)
	}
}

// CountNeighborsOptimized counts living neighbors inside the 3x3 window clamped to the grid
func (g *Grid) CountNeighborsOptimized(row, col int) int {
	count := 0

	minR := max(0, row-1)
	maxR := min(g.rows-1, row+1)
	minC := max(0, col-1)
	maxC := min(g.columns-1, col+1)

	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue // Skip the cell itself
			}
			count += int(g.cells[r][c])
		}
	}

	return count
}

func init() {
	RegisterStrategy(ClampedStrategyName, func() CountingStrategy { return ClampedStrategy{} })
}
