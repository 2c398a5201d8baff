package components

import "math"

// Sparkline block characters: 8 vertical levels per cell.
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders the last width values as block characters scaled
// between their own minimum and maximum. Flat data renders at mid height.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	out := make([]rune, len(values))
	for i, v := range values {
		idx := 3
		if hi > lo {
			idx = int(math.Round((v - lo) / (hi - lo) * 7))
		}
		out[i] = sparkBlocks[idx]
	}
	return string(out)
}

// Trend returns an arrow comparing the last value with the one before it.
func Trend(values []float64) string {
	if len(values) < 2 {
		return "·"
	}
	prev, curr := values[len(values)-2], values[len(values)-1]
	switch {
	case curr > prev:
		return "↑"
	case curr < prev:
		return "↓"
	default:
		return "→"
	}
}
