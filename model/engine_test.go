package model

import (
	"math/rand/v2"
	"testing"
)

func strategiesUnderTest() []CountingStrategy {
	return []CountingStrategy{ClampedStrategy{}, NewConvolutionStrategy()}
}

func randomGrid(t *testing.T, rng *rand.Rand, rows, columns, pad int, density float64) *Grid {
	t.Helper()
	g, err := NewGrid(rows, columns, pad)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d, %d): %v", rows, columns, pad, err)
	}
	for r := range rows {
		for c := range columns {
			g.Set(r, c, rng.Float64() < density)
		}
	}
	return g
}

func mustGrid(t *testing.T, rows, columns, pad int, alive ...[2]int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, columns, pad)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d, %d): %v", rows, columns, pad, err)
	}
	for _, cell := range alive {
		g.Set(cell[0], cell[1], true)
	}
	return g
}

func TestRuleCanonicalCases(t *testing.T) {
	around := [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}

	cases := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"dead with three is born", false, 3, true},
		{"dead with two stays dead", false, 2, false},
		{"dead with four stays dead", false, 4, false},
		{"alive with one dies", true, 1, false},
		{"alive with two survives", true, 2, true},
		{"alive with three survives", true, 3, true},
		{"alive with four dies", true, 4, false},
	}

	for _, strategy := range strategiesUnderTest() {
		for _, tc := range cases {
			t.Run(strategy.Name()+"/"+tc.name, func(t *testing.T) {
				g := mustGrid(t, 5, 5, 0, around[:tc.neighbors]...)
				g.Set(2, 2, tc.alive)

				next := NewEngine(strategy, 1, nil).Evolve(g)
				if got := next.IsAlive(2, 2); got != tc.want {
					t.Fatalf("center alive=%v, expected %v", got, tc.want)
				}
			})
		}
	}
}

func TestStrategyEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	shapes := [][2]int{{1, 1}, {1, 7}, {6, 1}, {2, 2}, {3, 3}, {7, 13}, {32, 32}, {17, 40}}

	for _, shape := range shapes {
		for _, density := range []float64{0.1, 0.35, 0.7} {
			g := randomGrid(t, rng, shape[0], shape[1], 0, density)
			clamped := NewEngine(ClampedStrategy{}, 3, nil)
			convolution := NewEngine(NewConvolutionStrategy(), 2, nil)

			a, b := g, g
			for gen := 1; gen <= 6; gen++ {
				a = clamped.Evolve(a)
				b = convolution.Evolve(b)
				if !a.Equal(b) {
					t.Fatalf("%dx%d density %.2f: strategies diverge at generation %d", shape[0], shape[1], density, gen)
				}
			}
		}
	}
}

func TestStrategyEquivalenceOutsidePad(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	g := randomGrid(t, rng, 20, 24, 3, 0.4)

	a := NewEngine(ClampedStrategy{}, 4, nil).Evolve(g)
	b := NewEngine(NewConvolutionStrategy(), 4, nil).Evolve(g)

	for r := range g.Rows() {
		for c := range g.Columns() {
			if g.InPad(r, c) {
				continue
			}
			if a.Get(r, c) != b.Get(r, c) {
				t.Fatalf("cell (%d,%d): clamped=%d convolution=%d", r, c, a.Get(r, c), b.Get(r, c))
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	for _, strategy := range strategiesUnderTest() {
		t.Run(strategy.Name(), func(t *testing.T) {
			g := mustGrid(t, 5, 5, 0)
			g.InsertBlinker(1, 1)
			engine := NewEngine(strategy, 2, nil)

			once := engine.Evolve(g)
			horizontal := mustGrid(t, 5, 5, 0, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
			if !once.Equal(horizontal) {
				t.Fatalf("after one generation expected horizontal blinker, got %v", once.Cells())
			}

			twice := engine.Evolve(once)
			if !twice.Equal(g) {
				t.Fatalf("after two generations expected original blinker, got %v", twice.Cells())
			}
		})
	}
}

func TestGliderTranslation(t *testing.T) {
	for _, strategy := range strategiesUnderTest() {
		t.Run(strategy.Name(), func(t *testing.T) {
			g := mustGrid(t, 12, 12, 0)
			g.InsertGlider(1, 1)

			moved := mustGrid(t, 12, 12, 0)
			moved.InsertGlider(2, 2)

			got := NewEngine(strategy, 3, NewGridPool()).Run(g, 4)
			if !got.Equal(moved) {
				t.Fatalf("glider did not move by (1,1) after 4 generations: %v", got.Cells())
			}
		})
	}
}

func TestPadBorderFrozen(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 0))
	g := randomGrid(t, rng, 14, 16, 2, 0.45)
	initial := g.Clone()
	engine := NewEngine(ClampedStrategy{}, 4, nil)

	current := g
	for gen := 1; gen <= 25; gen++ {
		current = engine.Evolve(current)
		for r := range current.Rows() {
			for c := range current.Columns() {
				if current.InPad(r, c) && current.Get(r, c) != initial.Get(r, c) {
					t.Fatalf("generation %d: border cell (%d,%d) changed", gen, r, c)
				}
			}
		}
	}
}

func TestBottomRightCornerCount(t *testing.T) {
	g := mustGrid(t, 3, 3, 0, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1})

	counts := [][]int{make([]int, 3), make([]int, 3), make([]int, 3)}
	ClampedStrategy{}.Neighbors(g, counts, 0, 3)
	if counts[2][2] != 3 {
		t.Fatalf("bottom-right corner count=%d, expected 3", counts[2][2])
	}

	next := NewEngine(ClampedStrategy{}, 1, nil).Evolve(g)
	block := mustGrid(t, 3, 3, 0, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
	if !next.Equal(block) {
		t.Fatalf("expected a block in the bottom-right corner, got %v", next.Cells())
	}
}

func TestEdgeNeighborhoodSizes(t *testing.T) {
	g := mustGrid(t, 4, 5, 0)
	for r := range 4 {
		for c := range 5 {
			g.Set(r, c, true)
		}
	}

	counts := make([][]int, 4)
	for r := range counts {
		counts[r] = make([]int, 5)
	}
	ClampedStrategy{}.Neighbors(g, counts, 0, 4)

	want := [][]int{
		{3, 5, 5, 5, 3},
		{5, 8, 8, 8, 5},
		{5, 8, 8, 8, 5},
		{3, 5, 5, 5, 3},
	}
	for r := range want {
		for c := range want[r] {
			if counts[r][c] != want[r][c] {
				t.Fatalf("cell (%d,%d) count=%d, expected %d", r, c, counts[r][c], want[r][c])
			}
		}
	}
}

func TestEvolveLeavesInputUntouched(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	g := randomGrid(t, rng, 9, 9, 0, 0.5)
	before := g.Clone()

	next := NewEngine(NewConvolutionStrategy(), 4, NewGridPool()).Evolve(g)
	if next == g {
		t.Fatal("Evolve must return a new grid")
	}
	if !g.Equal(before) {
		t.Fatal("Evolve mutated its input")
	}
	if next.Rows() != g.Rows() || next.Columns() != g.Columns() || next.Pad() != g.Pad() {
		t.Fatalf("shape changed: %dx%d pad %d", next.Rows(), next.Columns(), next.Pad())
	}
}

func TestWorkerCountDoesNotChangeResult(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 0))
	g := randomGrid(t, rng, 31, 29, 0, 0.3)

	want := NewEngine(ClampedStrategy{}, 1, nil).Run(g, 8)
	for _, workers := range []int{2, 3, 7, 64} {
		got := NewEngine(ClampedStrategy{}, workers, NewGridPool()).Run(g, 8)
		if !got.Equal(want) {
			t.Fatalf("%d workers diverge from single-worker result", workers)
		}
	}
}

func TestRunZeroGenerations(t *testing.T) {
	g := mustGrid(t, 3, 3, 0, [2]int{1, 1})
	if got := NewEngine(nil, 0, nil).Run(g, 0); got != g {
		t.Fatal("Run with zero generations should return its input")
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(nil, 0, nil)
	if e.Strategy().Name() != ClampedStrategyName {
		t.Fatalf("default strategy=%q, expected %q", e.Strategy().Name(), ClampedStrategyName)
	}
	if e.workers <= 0 {
		t.Fatalf("default workers=%d, expected positive", e.workers)
	}
	if e.Pool() != nil {
		t.Fatal("expected no pool")
	}
}

func BenchmarkEvolve(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 0))
	g := newGrid(256, 256, 0)
	for r := range 256 {
		for c := range 256 {
			if rng.IntN(2) == 1 {
				g.cells[r][c] = Alive
			}
		}
	}

	for _, strategy := range strategiesUnderTest() {
		b.Run(strategy.Name(), func(b *testing.B) {
			engine := NewEngine(strategy, 0, NewGridPool())
			for i := 0; i < b.N; i++ {
				next := engine.Evolve(g)
				GridToPool(next, engine.Pool())
			}
		})
	}
}
