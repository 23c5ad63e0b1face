// Package telemetry provides generation-windowed simulation statistics and
// CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of generations.
type WindowStats struct {
	WindowStartGen uint64 `csv:"-"`
	WindowEndGen   uint64 `csv:"window_end"`

	// Simulation state at window end
	Population   int `csv:"population"`
	HistoryDepth int `csv:"history_depth"`

	// Events during window
	Born    int `csv:"born"`
	Died    int `csv:"died"`
	Rewinds int `csv:"rewinds"`

	// Age distribution of live cells (sampled at window end)
	AgeMean float64 `csv:"age_mean"`
	AgeP10  float64 `csv:"age_p10"`
	AgeP50  float64 `csv:"age_p50"`
	AgeP90  float64 `csv:"age_p90"`
	AgeMax  uint64  `csv:"age_max"`
}

// ComputeAgeStats calculates mean and empirical percentiles from cell ages.
func ComputeAgeStats(ages []float64) (mean, p10, p50, p90 float64) {
	if len(ages) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(ages))
	copy(sorted, ages)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStartGen),
		slog.Uint64("window_end", s.WindowEndGen),
		slog.Int("population", s.Population),
		slog.Int("history_depth", s.HistoryDepth),
		slog.Int("born", s.Born),
		slog.Int("died", s.Died),
		slog.Int("rewinds", s.Rewinds),
		slog.Float64("age_mean", s.AgeMean),
		slog.Float64("age_p10", s.AgeP10),
		slog.Float64("age_p50", s.AgeP50),
		slog.Float64("age_p90", s.AgeP90),
		slog.Uint64("age_max", s.AgeMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndGen,
		"population", s.Population,
		"history_depth", s.HistoryDepth,
		"born", s.Born,
		"died", s.Died,
		"rewinds", s.Rewinds,
		"age_mean", s.AgeMean,
		"age_p10", s.AgeP10,
		"age_p50", s.AgeP50,
		"age_p90", s.AgeP90,
		"age_max", s.AgeMax,
	)
}
