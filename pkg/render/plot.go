// Package render draws a densified collection as a chart: a PNG built with
// go-chart, a Braille text chart for plain terminals, and the blocking
// display step that shows either one to the user.
package render

import (
	"fmt"
	"math"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/axis"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/theme"
)

// DefaultTitle is the chart title used when none is configured.
const DefaultTitle = "Metrics Tracker"

// Line is one measurement as drawn on the chart.
type Line struct {
	Key    string
	Color  string
	Points []data.Observation // ascending by date
}

// Plot is everything needed to draw one chart. It holds no reference to the
// collection it was built from.
type Plot struct {
	Title  string
	Policy axis.Policy
	Theme  theme.Theme
	Lines  []Line
	YMin   float64
	YMax   float64
}

// NewPlot builds a plot from dense series. Colors follow the collection's
// key order, including keys without points, so a measurement keeps its color
// whether or not its neighbours have data. Keys without points get no line.
func NewPlot(dense *data.Collection, policy axis.Policy, th theme.Theme, title string) *Plot {
	if title == "" {
		title = DefaultTitle
	}
	p := &Plot{Title: title, Policy: policy, Theme: th}
	for _, a := range theme.Assign(dense.Keys(), th) {
		s, _ := dense.Series(a.Key)
		pts := s.Points()
		if len(pts) == 0 {
			continue
		}
		p.Lines = append(p.Lines, Line{Key: a.Key, Color: a.Color, Points: pts})
	}
	p.YMin, p.YMax = yRange(p.Lines)
	return p
}

// Annotation formats a value label drawn next to each point.
func Annotation(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// yRange returns the value range of all lines padded by 10% on each side.
// A single distinct value v gets ±10% of |v|, and zero gets [0, 1].
func yRange(lines []Line) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, l := range lines {
		for _, p := range l.Points {
			lo = math.Min(lo, p.Value)
			hi = math.Max(hi, p.Value)
		}
	}
	switch {
	case math.IsInf(lo, 1):
		return 0, 1
	case lo == hi && lo == 0:
		return 0, 1
	case lo == hi:
		return lo - math.Abs(lo)*0.1, hi + math.Abs(hi)*0.1
	default:
		span := hi - lo
		return lo - span*0.1, hi + span*0.1
	}
}
