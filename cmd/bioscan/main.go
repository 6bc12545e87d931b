// Command bioscan runs the automaton headless for a fixed number of
// generations and records per-generation statistics.
package main

import (
	"flag"
	"log/slog"
	"os"

	"biolife/internal/app"
	"biolife/internal/config"
	"biolife/internal/seq"
	"biolife/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (empty = use defaults)")
	generations := flag.Int("generations", 100, "generations to simulate")
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

	for i := 0; i < *generations; i++ {
		stats := ctrl.OnTick()
		if err := writer.Write(stats); err != nil {
			slog.Error("telemetry write failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("scan complete",
		"generations", ctrl.Generation(),
		"alive", ctrl.Universe().Population(),
		"cells", cfg.Grid.Rows*cfg.Grid.Cols,
	)
}
