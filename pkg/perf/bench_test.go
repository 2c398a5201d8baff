package perf

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/axis"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/components"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/fill"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/render"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/store"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/theme"
)

func pfYear() *data.Collection { return Fixture(5, 365, 3) }

func pfPlot(b *testing.B) *render.Plot {
	b.Helper()
	dense, err := fill.Densify(pfYear(), fill.StrategyForwardFill)
	if err != nil {
		b.Fatal(err)
	}
	first, last, _ := dense.Span()
	return render.NewPlot(dense, axis.Analyze(first, last), theme.Get("tab10"), "")
}

func pfQuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// BenchmarkDensifyYear fills a year of gappy data across five series.
func BenchmarkDensifyYear(b *testing.B) {
	c := pfYear()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fill.Densify(c, fill.StrategyForwardFill); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInterpolateYear is the linear variant of BenchmarkDensifyYear.
func BenchmarkInterpolateYear(b *testing.B) {
	c := pfYear()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fill.Densify(c, fill.StrategyLinear); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalyze(b *testing.B) {
	first, last := data.NewDate(2024, 1, 1), data.NewDate(2024, 12, 31)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = axis.Analyze(first, last)
	}
}

// BenchmarkTextChart renders the braille chart for an 80x24 terminal.
func BenchmarkTextChart(b *testing.B) {
	p := pfPlot(b)
	st := components.NewStyler(termenv.Ascii)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = render.Text(p, 80, 24, st)
	}
}

// BenchmarkPNGChart rasterizes the chart at the default size.
func BenchmarkPNGChart(b *testing.B) {
	p := pfPlot(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := render.PNG(p, render.DefaultWidth, render.DefaultHeight); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStoreSave(b *testing.B) {
	s := store.New(filepath.Join(b.TempDir(), "m.json"), store.FormatJSON, pfQuietLogger())
	c := pfYear()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Save(c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStoreLoad(b *testing.B) {
	s := store.New(filepath.Join(b.TempDir(), "m.json"), store.FormatJSON, pfQuietLogger())
	if err := s.Save(pfYear()); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Load(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSparkline(b *testing.B) {
	s, _ := pfYear().Series("Metric 1 (kg)")
	vals := s.Values()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = components.Sparkline(vals, 14)
	}
}
