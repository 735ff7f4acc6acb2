package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"

	"golife/model"
	"golife/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	grid, seedName, err := loadSeed(config)
	if err != nil {
		fmt.Println("Failed to load seed:", err)
		os.Exit(1)
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	displayBanner(config, grid, seedName)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var bar *pb.ProgressBar
	if !config.ShowGrids {
		bar = pb.StartNew(config.Generations)
	}

	lastFrameTime := time.Now()
	for generation := 1; generation <= config.Generations; generation++ {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			displayFinalStats(stats)
			return
		default:
			// Continue with the run
		}

		frameStart := time.Now()
		stats.Update(generation, grid.CountLivingCells(), time.Since(lastFrameTime))
		lastFrameTime = frameStart

		if config.ShowGrids {
			displayGeneration(renderer, grid, generation, config)
			time.Sleep(config.FrameRate)
		} else {
			bar.Increment()
		}

		// Calculate next generation, recycling the one we just showed
		next := advance(grid, config, pool)
		model.GridToPool(grid, pool)
		grid = next
	}

	if bar != nil {
		bar.Finish()
		fmt.Println("Final board:")
		renderer.Display(grid)
	}

	fmt.Println("Done")
	displayFinalStats(stats)
}
