package game

import "github.com/mnemotic/game-of-life/grid"

// CommandKind identifies simulation commands.
type CommandKind uint8

const (
	// CmdAdvance steps the simulation forward one generation.
	CmdAdvance CommandKind = iota
	// CmdRewind steps the simulation back one generation.
	CmdRewind
	// CmdToggle flips a single cell.
	CmdToggle
	// CmdSetRate changes the scheduler's ticks per second.
	CmdSetRate
	// CmdPause suspends scheduled advances.
	CmdPause
	// CmdResume resumes scheduled advances.
	CmdResume
)

// Command is one simulation mutation request. Commands are queued by the
// host and drained in order once per frame.
type Command struct {
	Kind CommandKind
	Pos  grid.Point // for CmdToggle
	Rate int        // for CmdSetRate
}

// Advance requests a single forward step.
func Advance() Command { return Command{Kind: CmdAdvance} }

// Rewind requests a single backward step.
func Rewind() Command { return Command{Kind: CmdRewind} }

// Toggle requests flipping the cell at p.
func Toggle(p grid.Point) Command { return Command{Kind: CmdToggle, Pos: p} }

// SetRate requests a tick rate change. The rate is clamped to [1, 64] when
// applied.
func SetRate(tps int) Command { return Command{Kind: CmdSetRate, Rate: tps} }

// Pause suspends scheduled ticks. Manual Advance and Rewind commands still
// apply while paused.
func Pause() Command { return Command{Kind: CmdPause} }

// Resume re-enables scheduled ticks.
func Resume() Command { return Command{Kind: CmdResume} }
