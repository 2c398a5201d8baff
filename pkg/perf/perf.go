// Package perf holds benchmarks and performance budgets for the charting
// pipeline: gap filling, axis analysis, chart rendering and persistence.
// Private helpers are prefixed with "pf".
package perf

import (
	"fmt"
	"math"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
)

// Fixture builds a deterministic collection of series measurements spanning
// days days, starting 2024-01-01. Every gapEvery-th day is left unrecorded
// in each series (0 disables gaps), with the gap offset per series so the
// series do not share holes.
func Fixture(series, days, gapEvery int) *data.Collection {
	c := data.NewCollection()
	start := data.NewDate(2024, 1, 1)
	for s := 0; s < series; s++ {
		key := data.MeasurementKey(fmt.Sprintf("Metric %d", s+1), pfUnits[s%len(pfUnits)])
		if _, _, err := c.Add(key); err != nil {
			continue
		}
		base := 50 + 10*float64(s)
		for d := 0; d < days; d++ {
			if gapEvery > 0 && (d+s)%gapEvery == 0 && d != 0 && d != days-1 {
				continue
			}
			v := base + 5*math.Sin(float64(d)/7+float64(s))
			_ = c.Record(key, start.AddDays(d), math.Round(v*10)/10)
		}
	}
	return c
}

var pfUnits = []string{"kg", "cm", "bpm", "", "h"}
