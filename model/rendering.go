package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws grid snapshots as text
type TerminalRenderer struct {
	out   io.Writer
	alive string
	dead  string
}

// NewTerminalRenderer writes to out; empty glyphs fall back to the block defaults
func NewTerminalRenderer(out io.Writer, alive, dead string) *TerminalRenderer {
	if alive == "" {
		alive = gridPosBlock
	}
	if dead == "" {
		dead = gridPosEmpty
	}
	return &TerminalRenderer{out: out, alive: alive, dead: dead}
}

// Display renders the grid, one text line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out)
	for _, row := range g.Cells() {
		for _, cell := range row {
			if cell == Alive {
				w.WriteString(r.alive)
			} else {
				w.WriteString(r.dead)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out, clearScreen)
	return err
}
