package perf

import (
	"os"
	"testing"
	"time"
)

// --- Fixture ---------------------------------------------------------------

func TestFixtureShape(t *testing.T) {
	c := Fixture(3, 30, 0)
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if c.Observations() != 90 {
		t.Errorf("Observations = %d, want 90", c.Observations())
	}
	first, last, ok := c.Span()
	if !ok || last.DaysSince(first) != 29 {
		t.Errorf("span = %v..%v", first, last)
	}
	if keys := c.Keys(); keys[0] != "Metric 1 (kg)" || keys[1] != "Metric 2 (cm)" {
		t.Errorf("keys = %v", keys)
	}
}

func TestFixtureGapsKeepEndpoints(t *testing.T) {
	c := Fixture(2, 30, 3)
	for _, key := range c.Keys() {
		s, _ := c.Series(key)
		if s.Len() >= 30 {
			t.Errorf("%s: no gaps (len %d)", key, s.Len())
		}
		first, _ := s.First()
		last, _ := s.Last()
		if last.Date.DaysSince(first.Date) != 29 {
			t.Errorf("%s: endpoints dropped", key)
		}
	}
}

func TestFixtureIsDeterministic(t *testing.T) {
	a, b := Fixture(2, 10, 4), Fixture(2, 10, 4)
	for _, key := range a.Keys() {
		sa, _ := a.Series(key)
		sb, _ := b.Series(key)
		va, vb := sa.Values(), sb.Values()
		for i := range va {
			if va[i] != vb[i] {
				t.Fatalf("%s[%d]: %v != %v", key, i, va[i], vb[i])
			}
		}
	}
}

// --- CheckRegression -------------------------------------------------------

func TestCheckRegression(t *testing.T) {
	thresholds := []Threshold{
		{Name: "fast", MaxNs: 1_000_000, MaxAlloc: 1024},
		{Name: "slow", MaxNs: 1_000},
		{Name: "hungry", MaxAlloc: 100},
	}
	results := []Result{
		{Name: "hungry", BenchmarkResult: testing.BenchmarkResult{N: 1, T: time.Nanosecond, MemBytes: 1000}},
		{Name: "fast", BenchmarkResult: testing.BenchmarkResult{N: 1000, T: 100 * time.Microsecond, MemBytes: 64000}},
		{Name: "slow", BenchmarkResult: testing.BenchmarkResult{N: 1, T: 10 * time.Millisecond}},
		{Name: "unbudgeted", BenchmarkResult: testing.BenchmarkResult{N: 1, T: time.Hour}},
	}

	got := CheckRegression(results, thresholds)
	if len(got) != 2 {
		t.Fatalf("got %d violations, want 2: %+v", len(got), got)
	}
	if got[0].Threshold.Name != "hungry" || got[0].Field != "alloc" || got[0].Actual != 1000 {
		t.Errorf("violation 0 = %+v", got[0])
	}
	if got[1].Threshold.Name != "slow" || got[1].Field != "ns" {
		t.Errorf("violation 1 = %+v", got[1])
	}
}

func TestCheckRegressionEmptyInputs(t *testing.T) {
	if v := CheckRegression(nil, DefaultThresholds()); v != nil {
		t.Errorf("expected nil for nil results, got %v", v)
	}
	r := []Result{{Name: "analyze", BenchmarkResult: testing.BenchmarkResult{N: 1, T: time.Second}}}
	if v := CheckRegression(r, nil); v != nil {
		t.Errorf("expected nil for nil thresholds, got %v", v)
	}
}

func TestDefaultThresholdNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, th := range DefaultThresholds() {
		if seen[th.Name] {
			t.Errorf("duplicate threshold %q", th.Name)
		}
		seen[th.Name] = true
		if th.MaxNs <= 0 {
			t.Errorf("%s: MaxNs = %d", th.Name, th.MaxNs)
		}
	}
}

// --- budgets ---------------------------------------------------------------

// TestBudgets runs the benchmarks and checks them against DefaultThresholds.
// Timing depends on the machine, so it only runs with METRIC_TRACKER_PERF=1.
func TestBudgets(t *testing.T) {
	if testing.Short() || os.Getenv("METRIC_TRACKER_PERF") != "1" {
		t.Skip("set METRIC_TRACKER_PERF=1 to check performance budgets")
	}
	benches := []struct {
		name string
		fn   func(*testing.B)
	}{
		{"densify_year", BenchmarkDensifyYear},
		{"analyze", BenchmarkAnalyze},
		{"text_chart", BenchmarkTextChart},
		{"png_chart", BenchmarkPNGChart},
		{"store_save", BenchmarkStoreSave},
		{"store_load", BenchmarkStoreLoad},
	}
	var results []Result
	for _, bb := range benches {
		r := testing.Benchmark(bb.fn)
		if r.N == 0 {
			t.Errorf("%s did not run", bb.name)
			continue
		}
		t.Logf("%s: %s", bb.name, r.String())
		results = append(results, Result{Name: bb.name, BenchmarkResult: r})
	}
	for _, v := range CheckRegression(results, DefaultThresholds()) {
		t.Errorf("%s over budget: %s %d > %d/%d",
			v.Threshold.Name, v.Field, v.Actual, v.Threshold.MaxNs, v.Threshold.MaxAlloc)
	}
}
