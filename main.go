package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// shutdownGrace bounds how long main waits for an animation to notice the signal
const shutdownGrace = 500 * time.Millisecond

func main() {
	logger := utils.NewLogger()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			logger.Warn("ignoring config.json: %v", err)
		}
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		stats = utils.NewStats()
		done  = make(chan error, 1)
	)
	go func() {
		done <- run(ctx, config, os.Stdin, os.Stdout, stats, logger)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		// Prompts block on stdin; only an animation can observe ctx
		select {
		case err = <-done:
		case <-time.After(shutdownGrace):
			err = ctx.Err()
		}
	}

	switch {
	case err == nil:
		fmt.Println("Have a nice Life!")
	case errors.Is(err, context.Canceled):
		fmt.Println("\nShutting down gracefully...")
		fmt.Printf("Final stats: %d generations in %.1f seconds, %.1f avg population\n",
			stats.TotalGenerations, time.Since(stats.StartTime).Seconds(), stats.AveragePopulation)
	case errors.Is(err, io.EOF):
		fmt.Println()
		fmt.Println("Have a nice Life!")
	default:
		logger.Error("%+v", err)
		os.Exit(1)
	}
}
