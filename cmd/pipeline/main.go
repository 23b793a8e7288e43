package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/speech-digest/internal/app"
	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/metrics"
	"github.com/nguyentantai21042004/speech-digest/internal/processor"
	"github.com/nguyentantai21042004/speech-digest/internal/watcher"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Speech Digest Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := app.EnsureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	components, err := app.Build(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize pipeline: %v", err)
		os.Exit(1)
	}

	w, err := watcher.New(cfg.Paths.Input, processor.IsSupported, components.Processor.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 2)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- fmt.Errorf("watcher: %w", err)
		}
	}()

	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, components.Registry, log); err != nil {
				errChan <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	// files dropped while the daemon was down
	go func() {
		res, err := components.Processor.ProcessAll(ctx, cfg.Paths.Input)
		if err != nil {
			log.Warn(ctx, "Backlog scan failed: %v", err)
			return
		}
		if res.Succeeded+res.Failed > 0 {
			log.Info(ctx, "Backlog processed: %d succeeded, %d failed", res.Succeeded, res.Failed)
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Summary: %d sentence(s), %s order", cfg.Summarizer.Sentences, cfg.Summarizer.Order)
	log.Info(ctx, "Translation: %t", cfg.Gemini.Translate)
	if cfg.Metrics.Enabled {
		log.Info(ctx, "Metrics: %s", cfg.Metrics.Addr)
	}
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Pipeline error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}
