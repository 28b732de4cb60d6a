package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ngocvu0811/study-flow/internal/config"
	"github.com/ngocvu0811/study-flow/internal/engine"
	"github.com/ngocvu0811/study-flow/internal/logger"
	"github.com/ngocvu0811/study-flow/internal/processor"
	"github.com/ngocvu0811/study-flow/internal/summarizer"
	"github.com/ngocvu0811/study-flow/internal/transcriber"
	"github.com/ngocvu0811/study-flow/internal/watcher"
	"github.com/ngocvu0811/study-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Study Notes Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcriber mode: %s", cfg.Transcriber.Mode)
	log.Info(ctx, "Summarizer model: %s", cfg.Summarizer.Model)
	log.Info(ctx, "Max concurrent files: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()

	var tr transcriber.Transcriber
	switch cfg.Transcriber.Mode {
	case "local":
		tr = transcriber.NewLocal(cfg.Transcriber.Whisper, cfg.Paths.Temp, exec, log)
	default:
		tr = transcriber.NewAPI(cfg.Transcriber.API, log)
	}

	sum := summarizer.New(cfg.Summarizer.APIKeys, cfg.Summarizer.Model, log)
	eng := engine.New(tr, sum, log, cfg.Paths.Temp)
	proc := processor.New(cfg, eng, exec, log)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Pipeline ready. Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Study notes will be written to: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	// Start drains in-flight handlers before returning; exiting earlier
	// would kill files mid-processing.
	<-done

	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
