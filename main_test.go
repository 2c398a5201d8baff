package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/config"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
)

func newTestApp(t *testing.T, dataFile string) (*app, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Data.Path = dataFile
	cfg.Chart.Display = "none"

	out := &bytes.Buffer{}
	return &app{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		in:     strings.NewReader(""),
		out:    out,
		today:  data.NewDate(2024, time.January, 5),
	}, out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		args    []string
		want    bool
		wantErr bool
	}{
		{nil, false, false},
		{[]string{"-g"}, true, false},
		{[]string{"-graph-only"}, true, false},
		{[]string{"--graph-only"}, true, false},
		{[]string{"-x"}, false, true},
		{[]string{"extra"}, false, true},
	}
	for _, tt := range tests {
		got, err := parseFlags(tt.args, io.Discard)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFlags(%v) error = %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFlags(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestGraphOnlyWritesPNG(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "metrics.json")
	writeFile(t, dataFile, `{
  "Weight (kg)": {"2024-01-01": 80, "2024-01-04": 78.5},
  "Steps": {"2024-01-02": 9000}
}`)
	before, _ := os.ReadFile(dataFile)

	a, out := newTestApp(t, dataFile)
	a.cfg.Chart.PNGPath = filepath.Join(dir, "charts", "metrics.png")
	a.run(context.Background(), true)

	png, err := os.ReadFile(a.cfg.Chart.PNGPath)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("chart is not a PNG")
	}
	if !strings.Contains(out.String(), "Chart saved to") {
		t.Errorf("output = %q", out.String())
	}

	after, _ := os.ReadFile(dataFile)
	if !bytes.Equal(before, after) {
		t.Error("graph-only run must not rewrite the data file")
	}
}

func TestGraphOnlyNoData(t *testing.T) {
	a, out := newTestApp(t, filepath.Join(t.TempDir(), "missing.json"))
	a.run(context.Background(), true)
	if !strings.Contains(out.String(), "No data available to visualize.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestMalformedDataWarnsAndContinues(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "metrics.json")
	writeFile(t, dataFile, `{"Weight": {"not-a-date": 1}}`)

	a, out := newTestApp(t, dataFile)
	a.run(context.Background(), true)

	for _, want := range []string{
		"Error loading data:",
		"Starting with empty data set.",
		"No data available to visualize.",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestInterruptedRecordingSaves(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "metrics.json")
	writeFile(t, dataFile, `{"Steps": {"2024-01-02": 9000}}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a, out := newTestApp(t, dataFile)
	a.run(ctx, false)

	s := out.String()
	if !strings.Contains(s, "Program interrupted. Saving data...") {
		t.Errorf("missing interrupt message:\n%s", s)
	}
	if !strings.Contains(s, "Data saved successfully to "+dataFile) {
		t.Errorf("missing save message:\n%s", s)
	}
	if strings.Contains(s, "No data available") {
		t.Error("interrupted run should not visualize")
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	writeFile(t, blocker, "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a, out := newTestApp(t, filepath.Join(blocker, "metrics.json"))
	a.run(ctx, false)
	if !strings.Contains(out.String(), "Error saving data:") {
		t.Errorf("output = %q", out.String())
	}
}

func TestThemeFileFallsBack(t *testing.T) {
	a, _ := newTestApp(t, "unused.json")
	a.cfg.Chart.Theme = "nord"
	a.cfg.Chart.ThemeFile = filepath.Join(t.TempDir(), "missing.toml")
	if got := a.theme().Name; got != "nord" {
		t.Errorf("theme = %q, want nord", got)
	}
}

func TestSetupLoggingTeesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mt.log")
	var stderr bytes.Buffer
	logger, closeLog := setupLogging(config.LogConfig{Level: "info", File: path}, &stderr)
	logger.Info("hello")
	logger.Debug("hidden")
	closeLog()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "msg=hello") || !strings.Contains(stderr.String(), "msg=hello") {
		t.Errorf("log not tee'd: file=%q stderr=%q", got, stderr.String())
	}
	if strings.Contains(stderr.String(), "hidden") {
		t.Error("debug record leaked at info level")
	}
}
