// Package fill densifies sparse measurement series for plotting.
//
// Two policies are available. Forward-fill walks the global date span of the
// collection and carries each series' last known value forward; it is what
// the chart uses by default. Linear interpolation only fills gaps strictly
// between two real observations. Neither policy ever invents values before a
// series' first observation, and both return new collections rather than
// modifying their input.
package fill

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
)

// ErrNothingToRender is returned by Densify when the collection has no
// observations at all. It is a signal, not a failure.
var ErrNothingToRender = errors.New("fill: no data to visualize")

// Strategy selects a densification policy.
type Strategy int

const (
	// StrategyForwardFill carries the last known value forward through
	// every missing day up to the end of the global span.
	StrategyForwardFill Strategy = iota
	// StrategyLinear fills interior gaps by linear interpolation.
	StrategyLinear
)

var strategyNames = [...]string{
	StrategyForwardFill: "forward-fill",
	StrategyLinear:      "linear",
}

// String returns the canonical strategy name.
func (s Strategy) String() string {
	if int(s) >= 0 && int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "unknown"
}

// ParseStrategy maps a configuration value to a Strategy. Matching is case
// insensitive; "ffill" and "interpolate" are accepted as aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "forward-fill", "forwardfill", "ffill":
		return StrategyForwardFill, nil
	case "linear", "interpolate":
		return StrategyLinear, nil
	default:
		return 0, fmt.Errorf("fill: unknown strategy %q (want forward-fill or linear)", name)
	}
}

// Densify applies strategy to c and returns the dense result.
func Densify(c *data.Collection, strategy Strategy) (*data.Collection, error) {
	if c.Empty() {
		return nil, ErrNothingToRender
	}
	switch strategy {
	case StrategyForwardFill:
		return ForwardFill(c), nil
	case StrategyLinear:
		return Interpolate(c), nil
	default:
		return nil, fmt.Errorf("fill: unsupported strategy %v", strategy)
	}
}

// ForwardFill returns a copy of c in which every series covers each day of
// the collection's global span on or after its own first observation.
// Missing days take the most recent real value. A collection without
// observations is returned as a plain copy.
func ForwardFill(c *data.Collection) *data.Collection {
	start, end, ok := c.Span()
	if !ok {
		return c.Clone()
	}
	days := data.DateRange(start, end)

	return c.WithSeries(func(_ string, src *data.Series) *data.Series {
		out := data.NewSeries()
		var last float64
		seen := false
		for _, d := range days {
			if v, ok := src.Get(d); ok {
				last, seen = v, true
			}
			if seen {
				_ = out.Set(d, last)
			}
		}
		return out
	})
}

// Interpolate returns a copy of c where, for every pair of adjacent real
// observations more than one day apart, the days in between hold linearly
// interpolated values. Leading and trailing gaps are left alone.
func Interpolate(c *data.Collection) *data.Collection {
	return c.WithSeries(func(_ string, src *data.Series) *data.Series {
		out := src.Clone()
		pts := src.Points()
		for i := 0; i+1 < len(pts); i++ {
			for _, o := range interpolateGap(pts[i], pts[i+1]) {
				_ = out.Set(o.Date, o.Value)
			}
		}
		return out
	})
}

// interpolateGap returns the synthesized observations strictly between a and
// b. It returns nil when the two are on adjacent days.
func interpolateGap(a, b data.Observation) []data.Observation {
	delta := b.Date.DaysSince(a.Date)
	if delta <= 1 {
		return nil
	}
	out := make([]data.Observation, 0, delta-1)
	for j := 1; j < delta; j++ {
		ratio := float64(j) / float64(delta)
		out = append(out, data.Observation{
			Date:  a.Date.AddDays(j),
			Value: a.Value + (b.Value-a.Value)*ratio,
		})
	}
	return out
}
