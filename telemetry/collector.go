package telemetry

import "github.com/mnemotic/game-of-life/life"

// Collector accumulates per-generation deltas within windows of N advances
// and produces WindowStats.
type Collector struct {
	windowGens int

	windowStartGen uint64
	advances       int

	// Event counters for current window
	born    int
	died    int
	rewinds int
}

// NewCollector creates a stats collector flushing every windowGens advances.
func NewCollector(windowGens int) *Collector {
	if windowGens < 1 {
		windowGens = 1
	}
	return &Collector{windowGens: windowGens}
}

// RecordAdvance records one generation step and its delta.
func (c *Collector) RecordAdvance(d life.Delta) {
	c.advances++
	c.born += d.Born
	c.died += d.Died
}

// RecordRewind records one successful rewind.
func (c *Collector) RecordRewind() {
	c.rewinds++
}

// ShouldFlush reports whether enough advances have accumulated to flush the
// window.
func (c *Collector) ShouldFlush() bool {
	return c.advances >= c.windowGens
}

// Flush samples the engine state, produces the window's stats, and starts the
// next window.
func (c *Collector) Flush(e *life.Engine) WindowStats {
	ages := make([]float64, 0, e.Population())
	var maxAge uint64
	for _, cell := range e.Cells() {
		ages = append(ages, float64(cell.Age))
		if cell.Age > maxAge {
			maxAge = cell.Age
		}
	}
	mean, p10, p50, p90 := ComputeAgeStats(ages)

	stats := WindowStats{
		WindowStartGen: c.windowStartGen,
		WindowEndGen:   e.Generation(),
		Population:     e.Population(),
		HistoryDepth:   e.HistoryDepth(),
		Born:           c.born,
		Died:           c.died,
		Rewinds:        c.rewinds,
		AgeMean:        mean,
		AgeP10:         p10,
		AgeP50:         p50,
		AgeP90:         p90,
		AgeMax:         maxAge,
	}

	c.windowStartGen = e.Generation()
	c.advances = 0
	c.born = 0
	c.died = 0
	c.rewinds = 0

	return stats
}
