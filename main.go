package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "JSON configuration file")
	// bind overrides on top of the defaults first so -h lists them
	config := utils.DefaultConfig()
	config.Bind(flag.CommandLine)
	flag.Parse()

	overrides := map[string]string{}
	flag.Visit(func(f *flag.Flag) {
		overrides[f.Name] = f.Value.String()
	})

	// Load configuration - fallback to defaults if file doesn't exist
	if loaded, err := utils.LoadConfig(*configPath); err != nil {
		fmt.Println("Using default configuration (config file not loaded)")
	} else {
		config = loaded
		// command-line flags win over the file
		for name, value := range overrides {
			_ = flag.Set(name, value)
		}
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	grid, engine, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %+v\n", err)
		os.Exit(1)
	}

	if config.Headless {
		runHeadless(config, grid, engine, stats)
		return
	}

	displayGameInfo(config, grid, engine)
	time.Sleep(2 * time.Second)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
		}

		frameStart := time.Now()
		if err = renderer.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing terminal: %v\n", err)
		}

		status, isStagnant := updateGameState(grid, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, status, stats, lastRestartGen)
		if err = renderer.Display(grid); err != nil {
			fmt.Fprintf(os.Stderr, "Error drawing grid: %v\n", err)
		}

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		shouldRestart, restartReason := checkRestartConditions(stats.Population, stagnantCount, generation, config)
		if shouldRestart && config.AutoRestart {
			restarted, err := restartGame(config, restartReason)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to restart: %+v\n", err)
				return
			}
			model.GridToPool(grid, engine.Pool())
			grid = restarted
			lastRestartGen = generation
			stagnantCount = 0
		}

		next := engine.Evolve(grid)
		next.InheritHistory(grid)
		model.GridToPool(grid, engine.Pool())
		grid = next

		generation++

		time.Sleep(config.FrameRate)
	}
	model.GridToPool(grid, engine.Pool())
}
