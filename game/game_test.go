package game

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mnemotic/game-of-life/config"
	"github.com/mnemotic/game-of-life/grid"
	"github.com/mnemotic/game-of-life/life"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	g, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestSchedulerDrivesAdvance(t *testing.T) {
	g := newTestGame(t) // 4 tps, period 250ms

	g.Update(100 * time.Millisecond)
	if g.Generation() != 0 {
		t.Fatalf("generation = %d before the period elapsed, want 0", g.Generation())
	}

	g.Update(200 * time.Millisecond)
	if g.Generation() != 1 {
		t.Fatalf("generation = %d after the period elapsed, want 1", g.Generation())
	}
}

func TestPauseStopsScheduledTicks(t *testing.T) {
	g := newTestGame(t)

	g.Queue(Pause())
	g.Update(0)
	if !g.Paused() {
		t.Fatal("not paused after Pause command")
	}

	g.Update(time.Second)
	if g.Generation() != 0 {
		t.Errorf("generation = %d while paused, want 0", g.Generation())
	}
}

func TestResumeDoesNotFireStaleTick(t *testing.T) {
	g := newTestGame(t)

	// Accumulate most of a period, then pause: the phase is discarded.
	g.Update(240 * time.Millisecond)
	g.Queue(Pause())
	g.Update(0)

	g.Queue(Resume())
	g.Update(0)
	g.Update(20 * time.Millisecond)
	if g.Generation() != 0 {
		t.Errorf("generation = %d right after resume, want 0 (no stale tick)", g.Generation())
	}

	g.Update(250 * time.Millisecond)
	if g.Generation() != 1 {
		t.Errorf("generation = %d a full period after resume, want 1", g.Generation())
	}
}

func TestManualAdvanceAndRewindWhilePaused(t *testing.T) {
	g := newTestGame(t)
	before := snapshotCells(g)

	// The control panel pauses alongside manual stepping; the pause must
	// apply before the mutation it accompanies.
	g.Queue(Pause())
	g.Queue(Advance())
	g.Update(0)

	if !g.Paused() {
		t.Fatal("not paused")
	}
	if g.Generation() != 1 {
		t.Fatalf("generation = %d after manual advance, want 1", g.Generation())
	}

	g.Queue(Pause())
	g.Queue(Rewind())
	g.Update(0)

	if g.Generation() != 0 {
		t.Fatalf("generation = %d after rewind, want 0", g.Generation())
	}
	if diff := cmp.Diff(before, snapshotCells(g)); diff != "" {
		t.Errorf("cells after advance+rewind (-want +got):\n%s", diff)
	}
}

func TestRewindOnEmptyHistoryLeavesStateUntouched(t *testing.T) {
	g := newTestGame(t)
	before := snapshotCells(g)

	g.Queue(Rewind())
	g.Update(0)

	if g.Generation() != 0 {
		t.Errorf("generation = %d, want 0", g.Generation())
	}
	if diff := cmp.Diff(before, snapshotCells(g)); diff != "" {
		t.Errorf("cells mutated by no-op rewind (-want +got):\n%s", diff)
	}
}

func TestToggleCommand(t *testing.T) {
	g := newTestGame(t)
	p := grid.Pt(10, 10)

	g.Queue(Toggle(p))
	g.Update(0)
	if _, ok := g.CellAt(p); !ok {
		t.Fatalf("cell %v absent after toggle", p)
	}

	g.Queue(Toggle(p))
	g.Update(0)
	if _, ok := g.CellAt(p); ok {
		t.Errorf("cell %v present after second toggle", p)
	}
}

func TestSetRateCommandClamps(t *testing.T) {
	g := newTestGame(t)

	g.Queue(SetRate(500))
	g.Update(0)
	if g.Rate() != 64 {
		t.Errorf("rate = %d, want clamped 64", g.Rate())
	}

	g.Queue(SetRate(0))
	g.Update(0)
	if g.Rate() != 1 {
		t.Errorf("rate = %d, want clamped 1", g.Rate())
	}
}

func TestCommandsApplyInQueueOrder(t *testing.T) {
	g := newTestGame(t)
	p := grid.Pt(20, 20)

	g.Queue(Toggle(p))
	g.Queue(Advance())
	g.Update(0)

	// The toggled cell existed before the advance, so it is part of the
	// rewindable pre-step snapshot.
	g.Queue(Rewind())
	g.Update(0)
	if _, ok := g.CellAt(p); !ok {
		t.Error("toggle was not applied before advance")
	}
}

func TestColorAt(t *testing.T) {
	g := newTestGame(t)

	// Seeded cell: base of the age ramp.
	live := g.ColorAt(grid.Pt(0, 0))
	// Far corner: dead.
	dead := g.ColorAt(grid.Pt(30, 17))

	if live == dead {
		t.Error("live and dead cells render with the same color")
	}
	if dead != g.ColorAt(grid.Pt(29, 17)) {
		t.Error("dead cells should share the flat dead color")
	}
}

func snapshotCells(g *Game) life.CellStore {
	out := make(life.CellStore)
	b := g.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c, ok := g.CellAt(grid.Pt(x, y)); ok {
				out[grid.Pt(x, y)] = c
			}
		}
	}
	return out
}
