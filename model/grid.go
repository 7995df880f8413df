package model

import (
	"crypto/md5"
	"fmt"
)

const (
	// Dead is the value of a dead cell
	Dead uint8 = 0
	// Alive is the value of a live cell
	Alive uint8 = 1

	historySize = 5
)

// Grid represents the board: a rows x columns array of binary cells plus the pad border
type Grid struct {
	rows    int
	columns int
	pad     int
	cells   [][]uint8
	history []string // Store recent grid hashes for cycle detection
}

// NewGrid creates a zero-filled grid, rejecting dimensions that break the grid invariants
func NewGrid(rows, columns, pad int) (*Grid, error) {
	if err := validateDimensions(rows, columns, pad); err != nil {
		return nil, err
	}
	return newGrid(rows, columns, pad), nil
}

// newGrid allocates without validation; callers have already checked the dimensions
func newGrid(rows, columns, pad int) *Grid {
	cells := make([][]uint8, rows)
	for i := range cells {
		cells[i] = make([]uint8, columns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		pad:     pad,
		cells:   cells,
	}
}

func validateDimensions(rows, columns, pad int) error {
	switch {
	case rows <= 0:
		return NewInvalidConfiguration("rows", "must be positive, got %d", rows)
	case columns <= 0:
		return NewInvalidConfiguration("columns", "must be positive, got %d", columns)
	case pad < 0:
		return NewInvalidConfiguration("pad", "must not be negative, got %d", pad)
	case 2*pad >= min(rows, columns):
		return NewInvalidConfiguration("pad", "pad %d leaves no interior in a %dx%d grid", pad, rows, columns)
	}
	return nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns
func (g *Grid) Columns() int {
	return g.columns
}

// Pad returns the width of the frozen border
func (g *Grid) Pad() int {
	return g.pad
}

// Reset resizes the grid and clears every cell
func (g *Grid) Reset(rows, columns, pad int) {
	g.rows = rows
	g.columns = columns
	g.pad = pad
	g.history = nil

	if len(g.cells) != rows {
		g.cells = make([][]uint8, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != columns {
			g.cells[i] = make([]uint8, columns)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for r := range g.rows {
		clear(g.cells[r])
	}
	g.history = nil
}

// Set marks a cell alive or dead; coordinates outside the grid are ignored
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	if alive {
		g.cells[row][col] = Alive
	} else {
		g.cells[row][col] = Dead
	}
}

// Get returns the value of a cell, Dead outside the grid
func (g *Grid) Get(row, col int) uint8 {
	if !g.InBounds(row, col) {
		return Dead
	}
	return g.cells[row][col]
}

// IsAlive reports whether the cell is alive
func (g *Grid) IsAlive(row, col int) bool {
	return g.Get(row, col) == Alive
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// InPad reports whether the cell lies within pad cells of any edge
func (g *Grid) InPad(row, col int) bool {
	return row < g.pad || col < g.pad || g.rows-row <= g.pad || g.columns-col <= g.pad
}

// Cells returns a copy of the current cell array, safe to hold across generations
func (g *Grid) Cells() [][]uint8 {
	snapshot := make([][]uint8, g.rows)
	for r := range g.rows {
		snapshot[r] = append([]uint8(nil), g.cells[r]...)
	}
	return snapshot
}

// Clone returns an independent copy of the grid, history excluded
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:    g.rows,
		columns: g.columns,
		pad:     g.pad,
		cells:   g.Cells(),
	}
}

// Equal reports whether both grids have the same shape and cell values
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.columns {
			count += int(g.cells[r][c])
		}
	}
	return
}

// Hash returns an MD5 digest of the cell values
func (g *Grid) Hash() string {
	h := md5.New()
	for r := range g.rows {
		h.Write(g.cells[r])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory records the current state, keeping the last few hashes
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// InheritHistory carries the recorded hashes of prev over to g
func (g *Grid) InheritHistory(prev *Grid) {
	g.history = append(g.history[:0], prev.history...)
}

// IsStagnant reports whether the current state repeats one of the last three recorded states
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}
	current := g.Hash()
	for _, past := range g.history[len(g.history)-3:] {
		if past == current {
			return true
		}
	}
	return false
}
