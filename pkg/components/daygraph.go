package components

import (
	"fmt"
	"math"
	"strings"
)

// Point is one plotted value. X is measured in days from the left edge of
// the axis. A point with a Label is drawn as a marker with the label one row
// above it.
type Point struct {
	X, Y  float64
	Label string
}

// markerRune marks a labelled point.
const markerRune = '●'

// Line is one named, colored series of points, ascending by X.
type Line struct {
	Name   string
	Color  string // "#RRGGBB"
	Points []Point
}

// Tick marks an x-axis position. Label may span two rows separated by "\n".
type Tick struct {
	X     float64
	Label string
}

// DayGraph draws line series over a day axis using Braille dots, each cell
// holding a 2x4 dot grid.
type DayGraph struct {
	Title string
	Lines []Line
	Ticks []Tick

	XMax       float64 // axis spans [0, XMax] days
	YMin, YMax float64
	YAxisWidth int // defaults to 8
}

// Render draws the graph into at most width x height cells.
func (g *DayGraph) Render(width, height int, st *Styler) string {
	yAxisW := g.YAxisWidth
	if yAxisW <= 0 {
		yAxisW = 8
	}

	labelRows := 0
	for _, t := range g.Ticks {
		labelRows = max(labelRows, strings.Count(t.Label, "\n")+1)
	}
	titleRows := 0
	if g.Title != "" {
		titleRows = 1
	}
	legendRows := 0
	if len(g.Lines) > 0 {
		legendRows = 1
	}

	chartW := width - yAxisW
	chartH := height - titleRows - legendRows - 1 - labelRows
	if chartW < 4 || chartH < 2 {
		return tooSmallMsg(width)
	}

	grid := newBrailleGrid(chartW, chartH)
	for si, l := range g.Lines {
		var prevX, prevY int
		for i, p := range l.Points {
			x, y := g.toDots(p, grid)
			if i == 0 {
				grid.set(x, y, si)
			} else {
				grid.line(prevX, prevY, x, y, si)
			}
			prevX, prevY = x, y
		}
	}

	ov := g.annotate(grid)

	var lines []string
	if g.Title != "" {
		lines = append(lines, PadLeft("", yAxisW)+st.Bold(Truncate(g.Title, chartW, "…")))
	}
	if legendRows > 0 {
		lines = append(lines, PadLeft("", yAxisW)+g.legend(chartW, st))
	}

	for r := 0; r < chartH; r++ {
		var sb strings.Builder
		sb.WriteString(st.Faint(g.yLabel(r, chartH, yAxisW)))
		for c := 0; c < chartW; c++ {
			if ch := ov.cells[r][c]; ch != 0 {
				if si := ov.owner[r][c]; si >= 0 {
					sb.WriteString(st.Fg(g.Lines[si].Color, string(ch)))
				} else {
					sb.WriteRune(ch)
				}
				continue
			}
			bits := grid.bits[r][c]
			ch := string(rune(0x2800 + int(bits)))
			if si := grid.owner[r][c]; bits != 0 && si >= 0 {
				sb.WriteString(st.Fg(g.Lines[si].Color, ch))
			} else {
				sb.WriteString(ch)
			}
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	lines = append(lines, st.Faint(g.rule(yAxisW, chartW)))
	for row := 0; row < labelRows; row++ {
		lines = append(lines, g.labelRow(row, yAxisW, chartW))
	}
	return strings.Join(lines, "\n")
}

// overlay holds characters drawn on top of the Braille grid. owner is the
// series of a marker cell, -1 for label text.
type overlay struct {
	w, h  int
	cells [][]rune
	owner [][]int
}

// annotate places a marker at every labelled point, then its label one row
// above (below on the top row). Markers are placed first so labels never
// cover them; labels that would touch an occupied cell are skipped.
func (g *DayGraph) annotate(grid *brailleGrid) *overlay {
	ov := &overlay{w: grid.w, h: grid.h, cells: make([][]rune, grid.h), owner: make([][]int, grid.h)}
	for r := range ov.cells {
		ov.cells[r] = make([]rune, grid.w)
		ov.owner[r] = make([]int, grid.w)
	}
	for si, l := range g.Lines {
		for _, p := range l.Points {
			if p.Label == "" {
				continue
			}
			x, y := g.toDots(p, grid)
			ov.cells[y/4][x/2] = markerRune
			ov.owner[y/4][x/2] = si
		}
	}
	for _, l := range g.Lines {
		for _, p := range l.Points {
			if p.Label == "" {
				continue
			}
			x, y := g.toDots(p, grid)
			row := y/4 - 1
			if row < 0 {
				row = y/4 + 1
			}
			ov.label(row, x/2, p.Label)
		}
	}
	return ov
}

// label writes text centred on col in row if the cells it needs, plus one
// on either side, are free.
func (ov *overlay) label(row, col int, text string) bool {
	rs := []rune(text)
	n := len(rs)
	if row < 0 || row >= ov.h || n == 0 || n > ov.w {
		return false
	}
	start := clamp(col-n/2, 0, ov.w-n)
	for c := max(start-1, 0); c < min(start+n+1, ov.w); c++ {
		if ov.cells[row][c] != 0 {
			return false
		}
	}
	for i, r := range rs {
		ov.cells[row][start+i] = r
		ov.owner[row][start+i] = -1
	}
	return true
}

// toDots maps a point to dot coordinates, row 0 at the top.
func (g *DayGraph) toDots(p Point, grid *brailleGrid) (int, int) {
	dotsW, dotsH := grid.w*2, grid.h*4
	x := dotsW / 2
	if g.XMax > 0 {
		x = int(math.Round(p.X / g.XMax * float64(dotsW-1)))
	}
	y := dotsH / 2
	if span := g.YMax - g.YMin; span > 0 {
		frac := math.Min(math.Max((p.Y-g.YMin)/span, 0), 1)
		y = int(math.Round((1 - frac) * float64(dotsH-1)))
	}
	return clamp(x, 0, dotsW-1), clamp(y, 0, dotsH-1)
}

func (g *DayGraph) xCol(x float64, chartW int) int {
	if g.XMax <= 0 {
		return chartW / 2
	}
	return clamp(int(math.Round(x/g.XMax*float64(chartW-1))), 0, chartW-1)
}

// yLabel labels the top, middle and bottom rows only.
func (g *DayGraph) yLabel(row, chartH, yAxisW int) string {
	if row != 0 && row != chartH-1 && row != chartH/2 {
		return PadLeft("│", yAxisW)
	}
	v := g.YMax - (g.YMax-g.YMin)*float64(row)/float64(chartH-1)
	return PadLeft(Truncate(formatSI(v), yAxisW-2, ""), yAxisW-2) + " ┤"
}

func (g *DayGraph) rule(yAxisW, chartW int) string {
	rule := []rune(strings.Repeat("─", chartW))
	for _, t := range g.Ticks {
		rule[g.xCol(t.X, chartW)] = '┬'
	}
	return strings.Repeat(" ", yAxisW-1) + "└" + string(rule)
}

// labelRow writes the row-th line of every tick label, centred under its
// tick. Labels that would overlap the previous one are skipped.
func (g *DayGraph) labelRow(row, yAxisW, chartW int) string {
	buf := []rune(strings.Repeat(" ", chartW))
	next := 0
	for _, t := range g.Ticks {
		parts := strings.Split(t.Label, "\n")
		if row >= len(parts) {
			continue
		}
		text := []rune(parts[row])
		start := clamp(g.xCol(t.X, chartW)-len(text)/2, 0, max(chartW-len(text), 0))
		if start < next {
			continue
		}
		n := copy(buf[start:], text)
		next = start + n + 1
	}
	return strings.TrimRight(strings.Repeat(" ", yAxisW)+string(buf), " ")
}

func (g *DayGraph) legend(width int, st *Styler) string {
	parts := make([]string, 0, len(g.Lines))
	for _, l := range g.Lines {
		parts = append(parts, st.Fg(l.Color, "━━")+" "+l.Name)
	}
	return Truncate(strings.Join(parts, "  "), width, "…")
}

// brailleGrid is a chart-sized matrix of Braille bitmasks. owner records the
// last series to touch each cell, -1 for none.
type brailleGrid struct {
	w, h  int
	bits  [][]uint8
	owner [][]int
}

func newBrailleGrid(w, h int) *brailleGrid {
	g := &brailleGrid{w: w, h: h, bits: make([][]uint8, h), owner: make([][]int, h)}
	for r := 0; r < h; r++ {
		g.bits[r] = make([]uint8, w)
		g.owner[r] = make([]int, w)
		for c := range g.owner[r] {
			g.owner[r][c] = -1
		}
	}
	return g
}

func (g *brailleGrid) set(x, y, series int) {
	r, c := y/4, x/2
	if r < 0 || r >= g.h || c < 0 || c >= g.w {
		return
	}
	g.bits[r][c] |= brailleBit(x%2, y%4)
	g.owner[r][c] = series
}

// line sets every dot on the straight segment between two dots.
func (g *brailleGrid) line(x0, y0, x1, y1, series int) {
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		g.set(x1, y1, series)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.set(
			int(math.Round(float64(x0)+t*float64(x1-x0))),
			int(math.Round(float64(y0)+t*float64(y1-y0))),
			series,
		)
	}
}

// brailleBit returns the bitmask for a dot at (offX, offY) within a cell.
//
//	1 4      bit: 0x01  0x08
//	2 5           0x02  0x10
//	3 6           0x04  0x20
//	7 8           0x40  0x80
func brailleBit(offX, offY int) uint8 {
	leftBits := [4]uint8{0x01, 0x02, 0x04, 0x40}
	rightBits := [4]uint8{0x08, 0x10, 0x20, 0x80}
	if offY < 0 || offY > 3 {
		return 0
	}
	if offX == 0 {
		return leftBits[offY]
	}
	return rightBits[offY]
}

// formatSI formats a float with K/M/G suffixes, keeping one decimal for
// small fractional values.
func formatSI(v float64) string {
	prefix := ""
	if v < 0 && trimDecimal(-v) != "0" {
		prefix = "-"
	}
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return prefix + trimDecimal(abs/1e9) + "G"
	case abs >= 1e6:
		return prefix + trimDecimal(abs/1e6) + "M"
	case abs >= 1e4:
		return prefix + trimDecimal(abs/1e3) + "K"
	default:
		return prefix + trimDecimal(abs)
	}
}

func trimDecimal(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

func tooSmallMsg(width int) string {
	msg := "too small"
	if width < len(msg) {
		return msg[:max(width, 0)]
	}
	return msg
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
