package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-analytics/internal/app"
	"marketplace-analytics/internal/shared/configs"
)

func main() {
	// Load configuration
	cfg, err := configs.LoadConfig("./configs/configs.yml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	// Start the pipeline in a goroutine
	go func() {
		if err := application.Start(); err != nil && err != http.ErrServerClosed {
			// Use a default logger for startup/shutdown (no context available)
			fmt.Fprintf(os.Stderr, "Consumer failed: %v\n", err)
			os.Exit(1)
		}
	}()

	fmt.Println("Consumer started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// Graceful shutdown: in-flight batch processing finishes first
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Consumer forced to shutdown: %v\n", err)
	}
}
