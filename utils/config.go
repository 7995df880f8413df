package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
)

// Config holds the settings of one simulation session
type Config struct {
	Rows                int           `json:"rows"`
	Columns             int           `json:"columns"`
	Pad                 int           `json:"pad"`
	Strategy            string        `json:"strategy"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	PatternFile         string        `json:"pattern_file"`
	PatternFormat       string        `json:"pattern_format"`
	Seed                string        `json:"seed"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	AliveGlyph          string        `json:"alive_glyph"`
	DeadGlyph           string        `json:"dead_glyph"`
	Headless            bool          `json:"headless"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                40,
		Columns:             60,
		Pad:                 0,
		Strategy:            model.ClampedStrategyName,
		Workers:             0, // one per CPU
		UseMemoryPool:       true,
		Seed:                model.GliderGun.Name,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		AutoRestart:         false,
		StagnationThreshold: 5,
		AliveGlyph:          "██",
		DeadGlyph:           "  ",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind registers command-line overrides for the config fields
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows when no pattern file is given")
	fs.IntVar(&c.Columns, "columns", c.Columns, "grid columns when no pattern file is given")
	fs.IntVar(&c.Pad, "pad", c.Pad, "frozen border width around the pattern")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "neighbor counting strategy: clamped or convolution")
	fs.IntVar(&c.Workers, "workers", c.Workers, "evolution workers, 0 for one per CPU")
	fs.StringVar(&c.PatternFile, "pattern", c.PatternFile, "plaintext (.cells) or RLE (.rle) pattern file")
	fs.StringVar(&c.PatternFormat, "format", c.PatternFormat, "pattern format override: plaintext or rle")
	fs.StringVar(&c.Seed, "seed", c.Seed, "construct inserted when no pattern file is given")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "generations to run, 0 for no limit")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without drawing and report the final state")
}

// Validate rejects settings that break grid invariants or name unknown components
func (c Config) Validate() error {
	if c.PatternFile == "" {
		if _, err := model.NewGrid(c.Rows, c.Columns, c.Pad); err != nil {
			return err
		}
		if _, ok := model.ConstructByName(c.Seed); c.Seed != "" && !ok {
			return model.NewInvalidConfiguration("seed", "unknown construct %q", c.Seed)
		}
	} else if c.Pad < 0 {
		return model.NewInvalidConfiguration("pad", "must not be negative, got %d", c.Pad)
	}
	if c.PatternFormat != "" {
		if _, err := patterns.LoaderFor(c.PatternFormat); err != nil {
			return err
		}
	}
	if _, err := model.StrategyByName(c.Strategy); err != nil {
		return err
	}
	if c.Workers < 0 {
		return model.NewInvalidConfiguration("workers", "must not be negative, got %d", c.Workers)
	}
	if c.MaxGenerations < 0 {
		return model.NewInvalidConfiguration("max_generations", "must not be negative, got %d", c.MaxGenerations)
	}
	if c.Headless && c.MaxGenerations == 0 {
		return model.NewInvalidConfiguration("max_generations", "a headless run needs a generation limit")
	}
	return nil
}
