package render

import (
	"gitlab.com/tinyland/lab/metric-tracker/pkg/components"
)

// Text renders p as a Braille chart of at most cols x rows cells.
func Text(p *Plot, cols, rows int, st *components.Styler) string {
	origin := p.Policy.AxisMin()
	g := &components.DayGraph{
		Title: p.Title,
		XMax:  float64(p.Policy.AxisMax().DaysSince(origin)),
		YMin:  p.YMin,
		YMax:  p.YMax,
	}
	for _, l := range p.Lines {
		pts := make([]components.Point, len(l.Points))
		for i, o := range l.Points {
			pts[i] = components.Point{
				X:     float64(o.Date.DaysSince(origin)),
				Y:     o.Value,
				Label: Annotation(o.Value),
			}
		}
		g.Lines = append(g.Lines, components.Line{Name: l.Key, Color: l.Color, Points: pts})
	}
	labels := p.Policy.Labels()
	for i, d := range p.Policy.Ticks {
		g.Ticks = append(g.Ticks, components.Tick{
			X:     float64(d.DaysSince(origin)),
			Label: labels[i],
		})
	}
	return g.Render(cols, rows, st)
}
