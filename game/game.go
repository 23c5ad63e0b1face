// Package game wires the simulation engine, the tick scheduler, and the age
// palette behind a frame-stepped command/query boundary. The host queues
// commands at any time; Update drains them in order once per frame. All
// state is owned here; there is no ambient or global simulation state.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mnemotic/game-of-life/config"
	"github.com/mnemotic/game-of-life/gradient"
	"github.com/mnemotic/game-of-life/grid"
	"github.com/mnemotic/game-of-life/life"
	"github.com/mnemotic/game-of-life/telemetry"
	"github.com/mnemotic/game-of-life/tick"
)

// Options holds construction parameters for a Game.
type Options struct {
	Config    *config.Config
	OutputDir string // CSV + config snapshot destination ("" = disabled)
	LogStats  bool   // emit window stats via slog
}

// Game owns the simulation for one run.
type Game struct {
	engine  *life.Engine
	sched   *tick.Scheduler
	palette *gradient.Palette

	paused bool
	queue  []Command

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool
}

// New builds a game from the given options, seeds the configured pattern,
// and opens the output directory if one is set.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	g := &Game{
		engine:    life.New(cfg.Grid.Width, cfg.Grid.Height, cfg.Sim.HistorySize),
		sched:     tick.New(cfg.Sim.TicksPerSecond),
		palette:   cfg.BuildPalette(),
		collector: telemetry.NewCollector(cfg.Telemetry.WindowGenerations),
		logStats:  opts.LogStats,
	}
	g.engine.SeedPattern(cfg.SeedPoints())

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	g.output = output

	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	return g, nil
}

// Queue appends a command for the next Update. Safe to call any number of
// times between frames; ordering is preserved.
func (g *Game) Queue(cmd Command) {
	g.queue = append(g.queue, cmd)
}

// Update runs one frame: the scheduler is fed the frame's elapsed time and
// may enqueue one advance, then the command queue is drained in order, then
// any due telemetry window is flushed. Exactly one command mutates state at
// a time; queries must not interleave with Update.
func (g *Game) Update(elapsed time.Duration) {
	if !g.paused && g.sched.Tick(elapsed) {
		g.queue = append(g.queue, Advance())
	}

	cmds := g.queue
	g.queue = g.queue[:0]
	for _, cmd := range cmds {
		g.apply(cmd)
	}

	if g.collector.ShouldFlush() {
		stats := g.collector.Flush(g.engine)
		if g.logStats {
			stats.LogStats()
		}
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}

func (g *Game) apply(cmd Command) {
	switch cmd.Kind {
	case CmdAdvance:
		g.collector.RecordAdvance(g.engine.Advance())
	case CmdRewind:
		if !g.engine.Rewind() {
			slog.Info("history is empty")
			return
		}
		g.collector.RecordRewind()
	case CmdToggle:
		g.engine.Toggle(cmd.Pos)
	case CmdSetRate:
		g.sched.SetRate(cmd.Rate)
	case CmdPause:
		// Reset the scheduler so resuming does not fire a stale tick.
		g.paused = true
		g.sched.Reset()
	case CmdResume:
		g.paused = false
	}
}

// CellAt returns the cell at p and whether it is alive.
func (g *Game) CellAt(p grid.Point) (life.Cell, bool) { return g.engine.CellAt(p) }

// ColorAt returns the render color for position p: the age color for a live
// cell, the flat dead color otherwise.
func (g *Game) ColorAt(p grid.Point) gradient.Color {
	if c, ok := g.engine.CellAt(p); ok {
		return g.palette.ColorFor(c.Age)
	}
	return g.palette.DeadColor()
}

// Generation returns the current generation index.
func (g *Game) Generation() uint64 { return g.engine.Generation() }

// HistoryDepth returns the number of rewindable generations.
func (g *Game) HistoryDepth() int { return g.engine.HistoryDepth() }

// Population returns the number of live cells.
func (g *Game) Population() int { return g.engine.Population() }

// Bounds returns the grid bounds.
func (g *Game) Bounds() grid.Bounds { return g.engine.Bounds() }

// Paused reports whether scheduled advances are suspended.
func (g *Game) Paused() bool { return g.paused }

// Rate returns the scheduler's current ticks per second.
func (g *Game) Rate() int { return g.sched.Rate() }

// Close flushes and closes run output.
func (g *Game) Close() error {
	return g.output.Close()
}
