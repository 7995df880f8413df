package model

import "sort"

// Construct is a named shape given as (row, col) offsets of its live cells
type Construct struct {
	Name  string
	Cells [][2]int
}

var (
	// Blinker is a period-2 oscillator, vertical in its first phase
	Blinker = Construct{
		Name:  "blinker",
		Cells: [][2]int{{0, 1}, {1, 1}, {2, 1}},
	}

	// Glider travels one cell down and right every 4 generations
	Glider = Construct{
		Name:  "glider",
		Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	}

	// GliderGun is the Gosper glider gun, emitting a glider every 30 generations
	GliderGun = Construct{
		Name: "glider_gun",
		Cells: [][2]int{
			{1, 25},
			{2, 23}, {2, 25},
			{3, 13}, {3, 14}, {3, 21}, {3, 22}, {3, 35}, {3, 36},
			{4, 12}, {4, 16}, {4, 21}, {4, 22}, {4, 35}, {4, 36},
			{5, 1}, {5, 2}, {5, 11}, {5, 17}, {5, 21}, {5, 22},
			{6, 1}, {6, 2}, {6, 11}, {6, 15}, {6, 17}, {6, 18}, {6, 23}, {6, 25},
			{7, 11}, {7, 17}, {7, 25},
			{8, 12}, {8, 16},
			{9, 13}, {9, 14},
		},
	}

	constructs = map[string]Construct{
		Blinker.Name:   Blinker,
		Glider.Name:    Glider,
		GliderGun.Name: GliderGun,
	}
)

// ConstructByName looks up a built-in construct
func ConstructByName(name string) (Construct, bool) {
	c, ok := constructs[name]
	return c, ok
}

// ConstructNames lists the built-in constructs in sorted order
func ConstructNames() []string {
	names := make([]string, 0, len(constructs))
	for name := range constructs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Insert writes the construct's live cells with their origin at (row, col).
// Cells falling outside the grid are dropped.
func (g *Grid) Insert(c Construct, row, col int) {
	for _, cell := range c.Cells {
		g.Set(row+cell[0], col+cell[1], true)
	}
}

// InsertBlinker adds a blinker at (row, col)
func (g *Grid) InsertBlinker(row, col int) {
	g.Insert(Blinker, row, col)
}

// InsertGlider adds a glider at (row, col)
func (g *Grid) InsertGlider(row, col int) {
	g.Insert(Glider, row, col)
}

// InsertGliderGun adds a Gosper glider gun at (row, col)
func (g *Grid) InsertGliderGun(row, col int) {
	g.Insert(GliderGun, row, col)
}
