// Package main is the entry point for rogue.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rogue/internal/config"
	"github.com/samdwyer/rogue/internal/game"
	"github.com/samdwyer/rogue/internal/telemetry"
	"github.com/samdwyer/rogue/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_ROGUE_API_KEY and the ROGUE_* settings available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// Set up OTEL environment variables from our .env variables
	setupOTelEnv(cfg)

	// The terminal belongs to tcell once the screen opens, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.LogLevel.Slog()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	tracer := telemetry.Tracer("game")
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		MetricsAddr: cfg.MetricsAddr,
		Logger:      logger,
	})
	if err != nil {
		logger.Warn("telemetry setup failed, game will run without observability", "err", err)
		tracer = telemetry.NoopTracer()
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("telemetry shutdown", "err", err)
			}
		}()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if !screen.Fits(cfg.MapWidth, cfg.MapHeight) {
		w, h := screen.Size()
		logger.Warn("terminal is smaller than the map, edges will be clipped",
			"terminal_width", w, "terminal_height", h,
			"map_width", cfg.MapWidth, "map_height", cfg.MapHeight)
	}

	g, err := game.New(cfg.Game(), game.Deps{
		Renderer: screen,
		Input:    screen,
		Logger:   logger,
		Metrics:  telemetry.DefaultMetrics(),
		Tracer:   tracer,
	})
	if err != nil {
		screen.Close()
		return fmt.Errorf("init game: %w", err)
	}

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv(cfg *config.Config) {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	if cfg.HoneycombAPIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.HoneycombAPIKey, cfg.HoneycombDataset))
	}
}
