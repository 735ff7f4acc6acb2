package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
	"github.com/pkg/errors"

	"golife/model"
	"golife/utils"
)

const (
	configFile = "config.json"

	defaultSeedName = "Glider"
	gliderSeed      = "··0····\n" +
		"0·0····\n" +
		"·00····\n" +
		"·······\n" +
		"·······\n" +
		"·······"
)

// loadSeed builds generation 0 from the seed file named in the config,
// or from the built-in glider when no file is configured
func loadSeed(config utils.Config) (*model.Grid, string, error) {
	if config.SeedFile == "" {
		grid, err := model.ParseGrid(gliderSeed)
		return grid, defaultSeedName, err
	}

	w := wow.New(os.Stdout, spin.Get(spin.Dots), " reading seed "+config.SeedFile)
	w.Start()
	data, err := os.ReadFile(config.SeedFile)
	if err != nil {
		w.PersistWith(spin.Spinner{Frames: []string{"✗"}}, " failed")
		return nil, "", errors.Wrapf(err, "[loadSeed] failed to read file: %+v", config.SeedFile)
	}
	w.PersistWith(spin.Spinner{Frames: []string{"✓"}}, " seed loaded")

	grid, err := model.ParseGrid(string(data))
	if err != nil {
		return nil, "", errors.Wrapf(err, "[loadSeed] failed to parse seed: %+v", config.SeedFile)
	}
	return grid, filepath.Base(config.SeedFile), nil
}

// displayBanner shows the run header before the first generation
func displayBanner(config utils.Config, grid *model.Grid, seedName string) {
	fmt.Println("=========================")
	fmt.Println("| Conway's Game of Life |")
	fmt.Println("=========================")
	fmt.Printf("Seed: %q (%dx%d, %d living cells)\n",
		seedName, grid.GetHeight(), grid.GetWidth(), grid.CountLivingCells())
	fmt.Printf("Running for %d generations.\n\n", config.Generations)
	time.Sleep(1 * time.Second)
}

// displayGeneration prints one generation with its header
func displayGeneration(renderer *model.TerminalRenderer, grid *model.Grid, generation int, config utils.Config) {
	if config.ClearScreen {
		renderer.Clear()
	}
	fmt.Printf("Generation %d:\n", generation)
	renderer.Display(grid)
	fmt.Println()
}

// advance computes the next generation with the configured strategy
func advance(grid *model.Grid, config utils.Config, pool *model.GridPool) *model.Grid {
	if config.UseParallel {
		return grid.NextGenerationParallel(pool)
	}
	return grid.NextGeneration()
}

// displayFinalStats prints the run summary
func displayFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
