package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the demo driver
type Config struct {
	SeedFile      string        `json:"seed_file"`
	Generations   int           `json:"generations"`
	FrameRate     time.Duration `json:"frame_rate"`
	ShowGrids     bool          `json:"show_grids"`
	ClearScreen   bool          `json:"clear_screen"`
	UseMemoryPool bool          `json:"use_memory_pool"`
	UseParallel   bool          `json:"use_parallel"`
}

// DefaultConfig returns sensible defaults: the built-in glider seed
// printed for 15 generations
func DefaultConfig() Config {
	return Config{
		SeedFile:      "",
		Generations:   15,
		FrameRate:     150 * time.Millisecond,
		ShowGrids:     true,
		ClearScreen:   false,
		UseMemoryPool: true,
		UseParallel:   false,
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
