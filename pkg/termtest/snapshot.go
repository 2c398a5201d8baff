package termtest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/terminal"
)

// Snapshot captures rendered output for comparison testing.
type Snapshot struct {
	Name     string
	Terminal string // profile name
	Cols     int
	Rows     int
	Content  string // as rendered, escape sequences included
	Plain    string // Content with escape sequences removed
}

// CaptureSnapshot renders with the profile's capabilities at cols x rows.
func CaptureSnapshot(name string, p TerminalProfile, cols, rows int,
	renderFn func(caps terminal.Capabilities) string) Snapshot {
	caps := p.Capabilities(terminal.Size{Cols: cols, Rows: rows})
	out := renderFn(caps)
	return Snapshot{
		Name:     name,
		Terminal: p.Name,
		Cols:     cols,
		Rows:     rows,
		Content:  out,
		Plain:    ansi.Strip(out),
	}
}

// Diff describes a single line difference between two snapshots.
type Diff struct {
	Line     int // 1-based
	Expected string
	Actual   string
}

// CompareSnapshots compares the plain text of two snapshots line by line.
// It returns nil when they match.
func CompareSnapshots(expected, actual Snapshot) []Diff {
	expectedLines := ttSplitLines(expected.Plain)
	actualLines := ttSplitLines(actual.Plain)

	n := max(len(expectedLines), len(actualLines))
	var diffs []Diff
	for i := 0; i < n; i++ {
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			diffs = append(diffs, Diff{Line: i + 1, Expected: eLine, Actual: aLine})
		}
	}
	return diffs
}

// Overflow returns the 1-based numbers of lines wider than the snapshot's
// column count.
func Overflow(s Snapshot) []int {
	var lines []int
	for i, line := range ttSplitLines(s.Content) {
		if ansi.StringWidth(line) > s.Cols {
			lines = append(lines, i+1)
		}
	}
	return lines
}

// ttSplitLines splits s into lines; an empty string is one empty line.
func ttSplitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
