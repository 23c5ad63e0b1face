// Package life implements the cellular automaton: a sparse live-cell store
// over a toroidal grid, forward stepping under an inclusive-count rule
// variant, and a bounded history ring for step-by-step rewind.
package life

import "github.com/mnemotic/game-of-life/grid"

// DefaultHistorySize is the number of past generations retained for rewind.
const DefaultHistorySize = 32

// Cell holds the per-cell simulation state. Only live cells are materialized
// in the store; a position without an entry is dead.
type Cell struct {
	Alive bool
	Age   uint64
}

// NewCell returns the default cell inserted for newly born or toggled-on
// positions: alive, age zero.
func NewCell() Cell {
	return Cell{Alive: true, Age: 0}
}

// CellStore maps positions to live cells. Absence means dead.
type CellStore map[grid.Point]Cell

// Clone returns a shallow copy of the store.
func (s CellStore) Clone() CellStore {
	out := make(CellStore, len(s))
	for p, c := range s {
		out[p] = c
	}
	return out
}

// Delta summarizes the effect of one generation step.
type Delta struct {
	Born int
	Died int
}

// mooreOffsets are the 8 neighbor offsets around a cell. The cell itself is
// counted separately; see Advance.
var mooreOffsets = [8]grid.Point{
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
}

// Engine owns the mutable simulation state: the sparse cell store, the
// bounded rewind history, and the generation counter. It is single-threaded
// and frame-stepped; exactly one command mutates it at a time and queries
// must not interleave with a mutation.
type Engine struct {
	bounds     grid.Bounds
	cells      CellStore
	history    []CellStore // newest first
	historyCap int
	generation uint64
}

// New constructs an engine over a width x height toroidal grid with symmetric
// bounds. historyCap bounds the rewind depth; values below 1 fall back to
// DefaultHistorySize. Panics on non-positive dimensions.
func New(width, height, historyCap int) *Engine {
	if historyCap < 1 {
		historyCap = DefaultHistorySize
	}
	return &Engine{
		bounds:     grid.NewBounds(width, height),
		cells:      make(CellStore),
		history:    make([]CellStore, 0, historyCap),
		historyCap: historyCap,
	}
}

// Bounds returns the immutable grid bounds.
func (e *Engine) Bounds() grid.Bounds { return e.bounds }

// Generation returns the number of steps applied since seeding, net of
// rewinds.
func (e *Engine) Generation() uint64 { return e.generation }

// HistoryDepth returns the number of retained past generations.
func (e *Engine) HistoryDepth() int { return len(e.history) }

// Population returns the number of live cells.
func (e *Engine) Population() int { return len(e.cells) }

// CellAt returns the cell at p and whether it is alive. Positions outside
// the bounds are looked up as stored, without wrapping.
func (e *Engine) CellAt(p grid.Point) (Cell, bool) {
	c, ok := e.cells[p]
	return c, ok
}

// Cells returns the live-cell store. Callers must treat it as read-only.
func (e *Engine) Cells() CellStore { return e.cells }

// SeedPattern inserts default cells at the given positions.
func (e *Engine) SeedPattern(pts []grid.Point) {
	for _, p := range pts {
		e.cells[p] = NewCell()
	}
}

// Advance steps the simulation one generation.
//
// For every position in the bounds rectangle the count of live cells in its
// inclusive neighborhood is taken: the cell itself plus its 8 wrapped Moore
// neighbors, giving a count in [0, 9]. A count of 3 makes the cell live in
// the next generation (carrying its age + 1, or born at age 0); a count of 4
// keeps the cell exactly as it was, aged by 1; any other count kills it.
// This is deliberately not the classic B3/S23 rule.
//
// The pre-step store is pushed onto the history ring (dropping the oldest
// snapshot at capacity) and the generation counter is incremented. Returns
// the number of cells born and died this step.
func (e *Engine) Advance() Delta {
	next := make(CellStore, len(e.cells))

	var born int
	for y := e.bounds.Min.Y; y < e.bounds.Max.Y; y++ {
		for x := e.bounds.Min.X; x < e.bounds.Max.X; x++ {
			pt := grid.Pt(x, y)

			count := 0
			if c, ok := e.cells[pt]; ok && c.Alive {
				count++
			}
			for _, off := range mooreOffsets {
				if c, ok := e.cells[e.bounds.Wrap(pt.Add(off))]; ok && c.Alive {
					count++
				}
			}

			switch count {
			case 3:
				if c, ok := e.cells[pt]; ok {
					next[pt] = Cell{Alive: c.Alive, Age: c.Age + 1}
				} else {
					next[pt] = NewCell()
					born++
				}
			case 4:
				if c, ok := e.cells[pt]; ok {
					next[pt] = Cell{Alive: c.Alive, Age: c.Age + 1}
				}
			}
		}
	}

	died := 0
	for pt := range e.cells {
		if _, ok := next[pt]; !ok {
			died++
		}
	}

	e.pushHistory(e.cells)
	e.cells = next
	e.generation++

	return Delta{Born: born, Died: died}
}

// Rewind installs the most recent history snapshot as the current store and
// decrements the generation counter. Returns false without mutating anything
// when the history is empty; the caller decides whether to report that.
func (e *Engine) Rewind() bool {
	if len(e.history) == 0 {
		return false
	}
	e.cells = e.history[0]
	e.history = e.history[1:]
	e.generation--
	return true
}

// Toggle flips the cell at p: a live cell is removed, a dead one gets a
// default cell. p is stored as given, without wrapping. Re-adding a cell
// resets its age to zero, so toggling twice restores the alive flag but not
// the age.
func (e *Engine) Toggle(p grid.Point) {
	if _, ok := e.cells[p]; ok {
		delete(e.cells, p)
	} else {
		e.cells[p] = NewCell()
	}
}

// pushHistory prepends a snapshot, dropping the oldest at capacity.
func (e *Engine) pushHistory(s CellStore) {
	if len(e.history) >= e.historyCap {
		e.history = e.history[:e.historyCap-1]
	}
	e.history = append([]CellStore{s}, e.history...)
}
