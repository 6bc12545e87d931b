//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"biolife/internal/app"
	"biolife/internal/config"
	"biolife/internal/seq"
	"biolife/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (empty = use defaults)")
	outputDir := flag.String("output-dir", "", "directory for the generations CSV log")
	overrides := &config.Overrides{}
	overrides.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := overrides.Apply(cfg); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	seed, err := cfg.Seed()
	if err != nil {
		slog.Error("failed to read seed sequence", "error", err)
		os.Exit(1)
	}

	profile := seq.GCProfile(seed, cfg.Sequence.ProfileWindow)
	profStats := seq.Summarize(profile)
	slog.Info("seed sequence",
		"length", len(seed),
		"gc_content", seq.GCContent(seed),
		"gc_window_mean", profStats.Mean,
		"gc_window_stddev", profStats.StdDev,
	)

	ctrl, err := app.NewController(cfg.Grid.Rows, cfg.Grid.Cols, seed, cfg.Layout.CellSize, cfg.Layout.Padding)
	if err != nil {
		slog.Error("failed to build board", "error", err)
		os.Exit(1)
	}

	writer, err := telemetry.NewWriter(*outputDir)
	if err != nil {
		slog.Error("failed to open telemetry log", "error", err)
		os.Exit(1)
	}
	defer writer.Close()

	game := app.NewGame(ctrl, writer, cfg.Display.Width, cfg.Display.Height, cfg.Display.TicksPerSecond)

	ebiten.SetWindowTitle("biolife")
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
