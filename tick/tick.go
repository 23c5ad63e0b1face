// Package tick schedules simulation advances at a configurable rate by
// accumulating frame time against a period.
package tick

import "time"

// Rate bounds for SetRate, in ticks per second.
const (
	MinRate = 1
	MaxRate = 64
)

// DefaultRate is the stock simulation speed.
const DefaultRate = 4

// Scheduler accumulates elapsed frame time and reports when one simulation
// tick is due. It fires at most once per check: if a frame overshoots the
// period by several multiples the extra ticks are dropped, not replayed.
type Scheduler struct {
	tps    int
	period time.Duration
	acc    time.Duration
}

// New returns a scheduler firing at the given rate, clamped to
// [MinRate, MaxRate].
func New(tps int) *Scheduler {
	s := &Scheduler{}
	s.SetRate(tps)
	return s
}

// Tick adds the frame's elapsed time to the accumulator and reports whether
// a simulation advance is due. On fire the accumulator is zeroed.
func (s *Scheduler) Tick(elapsed time.Duration) bool {
	s.acc += elapsed
	if s.acc >= s.period {
		s.acc = 0
		return true
	}
	return false
}

// SetRate changes the tick rate, clamped to [MinRate, MaxRate]. The period
// is rebuilt and the accumulator reset, so timer phase is lost on a rate
// change.
func (s *Scheduler) SetRate(tps int) {
	if tps < MinRate {
		tps = MinRate
	}
	if tps > MaxRate {
		tps = MaxRate
	}
	s.tps = tps
	s.period = time.Second / time.Duration(tps)
	s.acc = 0
}

// Rate returns the current rate in ticks per second.
func (s *Scheduler) Rate() int { return s.tps }

// Period returns the current seconds-per-tick period.
func (s *Scheduler) Period() time.Duration { return s.period }

// Reset zeroes the accumulator. Invoked on pause so that resuming does not
// fire an immediate stale tick.
func (s *Scheduler) Reset() { s.acc = 0 }
