// metric-tracker records one value per day for a set of personal
// measurements and charts their history.
//
// Each run asks for today's values, saves them, and then draws every series
// on a shared date axis. Days without a reading are filled so lines stay
// continuous.
//
// Usage:
//
//	metric-tracker [flags]
//
// Flags:
//
//	-g, -graph-only   Skip recording and only chart existing data
//
// Everything else comes from ~/.config/metric-tracker/config.toml and
// METRIC_TRACKER_* environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/axis"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/components"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/config"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/fill"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/recorder"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/render"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/store"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/terminal"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/theme"
)

func main() {
	graphOnly, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	logger, closeLog := setupLogging(cfg.Log, os.Stderr)
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	protocol, _ := terminal.ParseProtocol(cfg.Chart.Protocol)
	a := &app{
		cfg:    cfg,
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
		caps:   terminal.Inspect(protocol),
		styler: components.DetectStyler(),
		today:  data.Today(time.Local),
	}
	a.run(ctx, graphOnly)
}

// parseFlags accepts -g and its long form -graph-only.
func parseFlags(args []string, stderr io.Writer) (graphOnly bool, err error) {
	fs := flag.NewFlagSet("metric-tracker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&graphOnly, "g", false, "Only chart existing data, skip recording")
	fs.BoolVar(&graphOnly, "graph-only", false, "Only chart existing data, skip recording")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return false, fmt.Errorf("unexpected arguments %v", fs.Args())
	}
	return graphOnly, nil
}

// setupLogging writes to stderr and, when configured, to a log file as well.
func setupLogging(cfg config.LogConfig, stderr io.Writer) (*slog.Logger, func()) {
	w := stderr
	closeFn := func() {}
	if cfg.File != "" {
		f, err := openLogFile(cfg.File)
		if err != nil {
			fmt.Fprintf(stderr, "failed to open log file: %v\n", err)
		} else {
			w = io.MultiWriter(stderr, f)
			closeFn = func() { f.Close() }
		}
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	return logger, closeFn
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// app holds everything one run needs. Nothing in it is fatal: failures are
// reported and the run carries on doing less.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	caps   terminal.Capabilities
	styler *components.Styler
	today  data.Date
}

func (a *app) run(ctx context.Context, graphOnly bool) {
	format, _ := store.ParseFormat(a.cfg.Data.Format)
	st := store.New(a.cfg.Data.Path, format, a.logger)

	c, err := st.Load()
	if err != nil {
		a.logger.Warn("loading data failed", "path", st.Path(), "error", err)
		fmt.Fprintf(a.out, "Error loading data: %v\n", err)
		fmt.Fprintln(a.out, "Starting with empty data set.")
	}

	th := a.theme()

	if !graphOnly {
		err := recorder.Run(ctx, c, a.today, recorder.Options{
			In:     a.in,
			Out:    a.out,
			Styles: recorder.StylesFor(th),
			Logger: a.logger,
		})
		if errors.Is(err, recorder.ErrInterrupted) {
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, "Program interrupted. Saving data...")
			a.save(st, c)
			return
		}
		if err != nil {
			a.logger.Error("recording failed", "error", err)
		}
		a.save(st, c)
	}

	a.visualize(ctx, c, th)
}

func (a *app) save(st *store.Store, c *data.Collection) {
	if err := st.Save(c); err != nil {
		a.logger.Error("saving data failed", "path", st.Path(), "error", err)
		fmt.Fprintf(a.out, "Error saving data: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Data saved successfully to %s\n", st.Path())
}

// theme returns the palette file when one is configured, otherwise the
// named built-in.
func (a *app) theme() theme.Theme {
	if a.cfg.Chart.ThemeFile != "" {
		t, err := theme.LoadFile(a.cfg.Chart.ThemeFile)
		if err == nil {
			return t
		}
		a.logger.Warn("theme file unusable, using built-in theme",
			"file", a.cfg.Chart.ThemeFile, "theme", a.cfg.Chart.Theme, "error", err)
	}
	return theme.Get(a.cfg.Chart.Theme)
}

func (a *app) visualize(ctx context.Context, c *data.Collection, th theme.Theme) {
	strategy, _ := fill.ParseStrategy(a.cfg.Chart.Strategy)
	dense, err := fill.Densify(c, strategy)
	if errors.Is(err, fill.ErrNothingToRender) {
		fmt.Fprintln(a.out, "No data available to visualize.")
		return
	}
	if err != nil {
		a.logger.Error("filling gaps failed", "error", err)
		return
	}

	first, last, _ := dense.Span()
	policy := axis.Analyze(first, last)
	a.logger.Debug("axis policy",
		"min", policy.AxisMin().String(),
		"max", policy.AxisMax().String(),
		"days", policy.DateRange,
		"bins", policy.Bins,
	)
	plot := render.NewPlot(dense, policy, th, a.cfg.Chart.Title)

	if path := a.cfg.Chart.PNGPath; path != "" {
		if err := render.WritePNG(path, plot, a.cfg.Chart.Width, a.cfg.Chart.Height); err != nil {
			a.logger.Error("writing chart failed", "path", path, "error", err)
			fmt.Fprintf(a.out, "Error writing chart: %v\n", err)
		} else {
			fmt.Fprintf(a.out, "Chart saved to %s\n", path)
		}
	}

	mode, _ := render.ParseMode(a.cfg.Chart.Display)
	err = render.Display(ctx, plot, render.DisplayOptions{
		Mode:   mode,
		Caps:   a.caps,
		Width:  a.cfg.Chart.Width,
		Height: a.cfg.Chart.Height,
		In:     a.in,
		Out:    a.out,
		Styler: a.styler,
		Logger: a.logger,
	})
	if err != nil {
		a.logger.Error("displaying chart failed", "error", err)
	}
}
