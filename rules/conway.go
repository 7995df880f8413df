package rules

// Rule is the only rule string the engine implements
const Rule = "B3/S23"

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

A live cell survives with 2 or 3 neighbors, a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// IsConway reports whether an RLE rule field names B3/S23, in either B/S or S/B notation
func IsConway(rule string) bool {
	switch normalize(rule) {
	case "B3/S23", "23/3":
		return true
	}
	return false
}

func normalize(rule string) string {
	out := make([]byte, 0, len(rule))
	for i := 0; i < len(rule); i++ {
		ch := rule[i]
		switch {
		case ch == ' ' || ch == '\t':
			continue
		case ch >= 'a' && ch <= 'z':
			ch -= 'a' - 'A'
		}
		out = append(out, ch)
	}
	return string(out)
}
