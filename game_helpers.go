package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

const periodicRefresh = 200

// initializeGame sets up the engine and the first generation
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.Engine,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	strategy, err := model.StrategyByName(config.Strategy)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	engine := model.NewEngine(strategy, config.Workers, pool)

	grid, err := seedGrid(config)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	renderer := model.NewTerminalRenderer(os.Stdout, config.AliveGlyph, config.DeadGlyph)
	stats := utils.NewStats()

	return grid, engine, renderer, stats, nil
}

// seedGrid loads the configured pattern, or inserts the configured construct into an empty grid
func seedGrid(config utils.Config) (*model.Grid, error) {
	if config.PatternFile != "" {
		return patterns.LoadFile(config.PatternFile, config.PatternFormat, config.Pad)
	}

	grid, err := model.NewGrid(config.Rows, config.Columns, config.Pad)
	if err != nil {
		return nil, err
	}
	if construct, ok := model.ConstructByName(config.Seed); ok {
		// keep one dead cell between the construct and the frozen border
		grid.Insert(construct, config.Pad+1, config.Pad+1)
	}
	return grid, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid, engine *model.Engine) {
	source := config.PatternFile
	if source == "" {
		source = "construct " + config.Seed
	}
	fmt.Printf("Strategy: %s | Memory Pool: %v | Seed: %s\n",
		engine.Strategy().Name(), config.UseMemoryPool, source)
	fmt.Printf("Grid: %dx%d (pad %d) | Initial living cells: %d\n",
		grid.Rows(), grid.Columns(), grid.Pad(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState refreshes stats and stagnation history, returning a status line
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (string, bool) {
	livingCells := grid.CountLivingCells()
	stats.Update(generation, livingCells, grid.Rows()*grid.Columns(), time.Since(lastFrameTime))

	// compare against history before recording the current state
	isStagnant := grid.IsStagnant()
	grid.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(generation int, status string, stats *utils.Stats, lastRestartGen int) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, stats.Population, stats.Density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the board from the configured source
func restartGame(config utils.Config, reason string) (*model.Grid, error) {
	w := wow.New(os.Stdout, spin.Get(spin.Dots), fmt.Sprintf(" Restarting due to %s...", reason))
	w.Start()
	time.Sleep(1 * time.Second)

	grid, err := seedGrid(config)
	if err != nil {
		w.PersistWith(spin.Spinner{Frames: []string{"✗"}}, " Restart failed")
		return nil, err
	}

	w.PersistWith(spin.Spinner{Frames: []string{"✔"}}, fmt.Sprintf(" New generation seeded! Living cells: %d", grid.CountLivingCells()))
	return grid, nil
}

// runHeadless evolves the configured number of generations without drawing
func runHeadless(config utils.Config, grid *model.Grid, engine *model.Engine, stats *utils.Stats) *model.Grid {
	bar := pb.StartNew(config.MaxGenerations)
	for generation := 1; generation <= config.MaxGenerations; generation++ {
		frameStart := time.Now()
		next := engine.Evolve(grid)
		model.GridToPool(grid, engine.Pool())
		grid = next

		stats.Update(generation, grid.CountLivingCells(), grid.Rows()*grid.Columns(), time.Since(frameStart))
		bar.Increment()
	}
	bar.Finish()

	fmt.Printf("Final: %d generations | Living: %d | Density: %.1f%% | Runtime: %.1fs\n",
		stats.TotalGenerations, stats.Population, stats.Density, stats.Runtime().Seconds())
	return grid
}
