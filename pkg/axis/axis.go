// Package axis derives chart x-axis parameters from the span of the data:
// how much padding to put around it, how to label dates, and where to put
// ticks. Everything here is a pure function of the whole-day span.
package axis

import (
	"math"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
)

// LabelFormat is the class of date label used on the x axis.
type LabelFormat int

const (
	// FormatDayWeekday shows month, day and weekday ("Jan 02" / "Mon").
	FormatDayWeekday LabelFormat = iota
	// FormatMonthDay shows month and day ("Jan 02").
	FormatMonthDay
	// FormatMonthYear shows month and year ("Jan 2006").
	FormatMonthYear
)

var formatLayouts = [...]string{
	FormatDayWeekday: "Jan 02\nMon",
	FormatMonthDay:   "Jan 02",
	FormatMonthYear:  "Jan 2006",
}

var formatNames = [...]string{
	FormatDayWeekday: "day+weekday",
	FormatMonthDay:   "month+day",
	FormatMonthYear:  "month+year",
}

// Layout returns the Go time layout for the format. Day+weekday labels are
// two lines.
func (f LabelFormat) Layout() string {
	if int(f) >= 0 && int(f) < len(formatLayouts) {
		return formatLayouts[f]
	}
	return data.DateLayout
}

// Label formats d with the format's layout.
func (f LabelFormat) Label(d data.Date) string {
	return d.Format(f.Layout())
}

// String returns a short name for the format.
func (f LabelFormat) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// Policy is the complete set of x-axis rendering parameters for one chart.
type Policy struct {
	Min       data.Date // earliest data date
	Max       data.Date // latest data date
	DateRange int       // Max - Min in whole days
	Padding   int       // days added before Min and after Max
	Format    LabelFormat
	Bins      int         // tick budget
	Ticks     []data.Date // tick positions, ascending
}

// AxisMin returns the padded left edge of the axis.
func (p Policy) AxisMin() data.Date { return p.Min.AddDays(-p.Padding) }

// AxisMax returns the padded right edge of the axis.
func (p Policy) AxisMax() data.Date { return p.Max.AddDays(p.Padding) }

// Labels returns the formatted label for every tick.
func (p Policy) Labels() []string {
	out := make([]string, len(p.Ticks))
	for i, t := range p.Ticks {
		out[i] = p.Format.Label(t)
	}
	return out
}

// Analyze computes the policy for data spanning [min, max]. Arguments in
// the wrong order are swapped.
func Analyze(min, max data.Date) Policy {
	if max.Before(min) {
		min, max = max, min
	}
	r := max.DaysSince(min)
	bins := BinsFor(r)
	return Policy{
		Min:       min,
		Max:       max,
		DateRange: r,
		Padding:   PaddingDays(r),
		Format:    FormatFor(r),
		Bins:      bins,
		Ticks:     tickDates(min, r, bins),
	}
}

// PaddingDays returns the symmetric axis padding for a span of r days.
//
//	0      -> 3
//	1..6   -> 1
//	7..29  -> 2
//	>=30   -> max(round(r*0.05), 3)
func PaddingDays(r int) int {
	switch {
	case r <= 0:
		return 3
	case r < 7:
		return 1
	case r < 30:
		return 2
	default:
		p := int(math.Round(float64(r) * 0.05))
		if p < 3 {
			p = 3
		}
		return p
	}
}

// FormatFor returns the label format for a span of r days.
func FormatFor(r int) LabelFormat {
	switch {
	case r <= 14:
		return FormatDayWeekday
	case r <= 180:
		return FormatMonthDay
	default:
		return FormatMonthYear
	}
}

// BinsFor returns the tick budget for a span of r days.
//
//	0        -> 1 (single fixed tick)
//	1..7     -> r+1 (daily)
//	8..30    -> max(ceil(r/7)+1, 4)  (weekly-ish)
//	31..365  -> max(ceil(r/30)+1, 4) (monthly-ish)
//	>365     -> max(ceil(r/90)+1, 4) (quarterly-ish)
func BinsFor(r int) int {
	switch {
	case r <= 0:
		return 1
	case r <= 7:
		return r + 1
	case r <= 30:
		return atLeast4(ceilDiv(r, 7) + 1)
	case r <= 365:
		return atLeast4(ceilDiv(r, 30) + 1)
	default:
		return atLeast4(ceilDiv(r, 90) + 1)
	}
}

// tickDates spreads bins ticks evenly over [min, min+r], rounding each to a
// whole day and dropping duplicates.
func tickDates(min data.Date, r, bins int) []data.Date {
	if r <= 0 || bins <= 1 {
		return []data.Date{min}
	}
	out := make([]data.Date, 0, bins)
	prev := -1
	for i := 0; i < bins; i++ {
		off := int(math.Round(float64(r) * float64(i) / float64(bins-1)))
		if off == prev {
			continue
		}
		out = append(out, min.AddDays(off))
		prev = off
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func atLeast4(n int) int {
	if n < 4 {
		return 4
	}
	return n
}
