package perf

import "testing"

// Threshold is a performance budget for a named operation.
type Threshold struct {
	// Name identifies the operation and matches Result.Name.
	Name string

	// MaxNs is the maximum allowed nanoseconds per operation. Zero disables
	// the check.
	MaxNs int64

	// MaxAlloc is the maximum allowed bytes allocated per operation. Zero
	// disables the check.
	MaxAlloc int64
}

// Result is a benchmark result tagged with the operation it measured.
type Result struct {
	Name string
	testing.BenchmarkResult
}

// Violation records a threshold breach for a specific benchmark.
type Violation struct {
	Threshold Threshold
	Actual    int64

	// Field is "ns" for time or "alloc" for memory.
	Field string
}

// DefaultThresholds returns the budgets for a year of daily data across
// five measurements on a typical development machine.
//
//   - densify_year < 5ms: date-range walk plus a map lookup per day and series
//   - analyze < 10us: arithmetic on two dates
//   - text_chart < 20ms: braille grid for an 80x24 terminal
//   - png_chart < 1.5s: go-chart raster at the default 1200x800
//   - store_save < 20ms: encode plus temp file and rename
//   - store_load < 20ms: streaming decode of the saved file
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Name: "densify_year", MaxNs: 5_000_000, MaxAlloc: 4_194_304},
		{Name: "analyze", MaxNs: 10_000, MaxAlloc: 4096},
		{Name: "text_chart", MaxNs: 20_000_000, MaxAlloc: 2_097_152},
		{Name: "png_chart", MaxNs: 1_500_000_000, MaxAlloc: 134_217_728},
		{Name: "store_save", MaxNs: 20_000_000, MaxAlloc: 4_194_304},
		{Name: "store_load", MaxNs: 20_000_000, MaxAlloc: 8_388_608},
	}
}

// CheckRegression compares results against thresholds by name and returns
// every violation found. Results without a matching threshold are ignored.
func CheckRegression(results []Result, thresholds []Threshold) []Violation {
	if len(results) == 0 || len(thresholds) == 0 {
		return nil
	}

	byName := make(map[string]Threshold, len(thresholds))
	for _, t := range thresholds {
		byName[t.Name] = t
	}

	var violations []Violation
	for _, r := range results {
		t, ok := byName[r.Name]
		if !ok {
			continue
		}
		if ns := r.NsPerOp(); t.MaxNs > 0 && ns > t.MaxNs {
			violations = append(violations, Violation{Threshold: t, Actual: ns, Field: "ns"})
		}
		if alloc := r.AllocedBytesPerOp(); t.MaxAlloc > 0 && alloc > t.MaxAlloc {
			violations = append(violations, Violation{Threshold: t, Actual: alloc, Field: "alloc"})
		}
	}
	return violations
}
