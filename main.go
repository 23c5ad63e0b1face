package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/mnemotic/game-of-life/config"
	"github.com/mnemotic/game-of-life/game"
)

// framePeriod is the fixed frame delta fed to the scheduler. The simulation
// is frame-stepped, so a fixed delta makes headless runs deterministic.
const framePeriod = time.Second / 60

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	tps := flag.Int("tps", 0, "Ticks per second, clamped to [1, 64] (0 = use config)")
	maxGenerations := flag.Uint64("max-generations", 512, "Stop after N generations (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	realtime := flag.Bool("realtime", false, "Sleep between frames instead of free-running")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	g, err := game.New(game.Options{
		Config:    cfg,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	})
	if err != nil {
		slog.Error("failed to build game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	if *tps > 0 {
		g.Queue(game.SetRate(*tps))
	}

	slog.Info("starting simulation",
		"grid", cfg.Grid,
		"tps", cfg.Sim.TicksPerSecond,
		"max_generations", *maxGenerations,
		"population", g.Population(),
	)

	for {
		g.Update(framePeriod)

		if *maxGenerations > 0 && g.Generation() >= *maxGenerations {
			break
		}
		if *realtime {
			time.Sleep(framePeriod)
		}
	}

	slog.Info("simulation finished",
		"generation", g.Generation(),
		"population", g.Population(),
		"history_depth", g.HistoryDepth(),
	)
}
