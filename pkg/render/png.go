package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/store"
)

// Default PNG size in pixels.
const (
	DefaultWidth  = 1200
	DefaultHeight = 800
)

var errNoLines = errors.New("render: plot has no lines")

// Chart builds the go-chart definition for p: one line-and-marker series
// per measurement, value annotations, an upper-left legend and explicit
// date ticks over the padded axis range.
func Chart(p *Plot, width, height int) chart.Chart {
	th := p.Theme
	fg := hexColor(th.Foreground)
	bg := hexColor(th.Background)
	grid := hexColor(th.Grid)

	series := make([]chart.Series, 0, len(p.Lines)+1)
	var notes []chart.Value2
	for _, l := range p.Lines {
		c := hexColor(l.Color)
		xs := make([]time.Time, len(l.Points))
		ys := make([]float64, len(l.Points))
		for i, pt := range l.Points {
			xs[i] = pt.Date.Time()
			ys[i] = pt.Value
			notes = append(notes, chart.Value2{
				XValue: chart.TimeToFloat64(xs[i]),
				YValue: pt.Value,
				Label:  Annotation(pt.Value),
			})
		}
		series = append(series, chart.TimeSeries{
			Name: l.Key,
			Style: chart.Style{
				StrokeColor: c,
				StrokeWidth: 2,
				DotColor:    c,
				DotWidth:    3,
			},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(notes) > 0 {
		series = append(series, chart.AnnotationSeries{
			Style: chart.Style{
				FontSize:    7,
				FontColor:   fg,
				StrokeColor: grid,
				FillColor:   bg,
			},
			Annotations: notes,
		})
	}

	labels := p.Policy.Labels()
	ticks := make([]chart.Tick, len(p.Policy.Ticks))
	for i, d := range p.Policy.Ticks {
		ticks[i] = chart.Tick{
			Value: chart.TimeToFloat64(d.Time()),
			Label: strings.ReplaceAll(labels[i], "\n", " "),
		}
	}

	gridStyle := chart.Style{
		StrokeColor:     grid,
		StrokeWidth:     1,
		StrokeDashArray: []float64{4, 4},
	}
	axisStyle := chart.Style{FontColor: fg, StrokeColor: fg}

	ch := chart.Chart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontColor: fg, FontSize: 14},
		Width:      width,
		Height:     height,
		Background: chart.Style{
			FillColor: bg,
			Padding:   chart.Box{Top: 50, Left: 20, Right: 30, Bottom: 20},
		},
		Canvas: chart.Style{FillColor: bg},
		XAxis: chart.XAxis{
			Name:           "Date",
			NameStyle:      axisStyle,
			Style:          axisStyle,
			Ticks:          ticks,
			Range:          &chart.ContinuousRange{Min: chart.TimeToFloat64(p.Policy.AxisMin().Time()), Max: chart.TimeToFloat64(p.Policy.AxisMax().Time())},
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:      "Measurement",
			NameStyle: axisStyle,
			Style:     axisStyle,
			Range:     &chart.ContinuousRange{Min: p.YMin, Max: p.YMax},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return Annotation(f)
				}
				return ""
			},
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{
		chart.Legend(&ch, chart.Style{FillColor: bg, FontColor: fg, StrokeColor: grid}),
	}
	return ch
}

// PNG renders p as PNG bytes.
func PNG(p *Plot, width, height int) ([]byte, error) {
	if len(p.Lines) == 0 {
		return nil, errNoLines
	}
	ch := Chart(p, width, height)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: png: %w", err)
	}
	return buf.Bytes(), nil
}

// Image renders p to an in-memory bitmap for terminal display.
func Image(p *Plot, width, height int) (image.Image, error) {
	if len(p.Lines) == 0 {
		return nil, errNoLines
	}
	ch := Chart(p, width, height)
	iw := &chart.ImageWriter{}
	if err := ch.Render(chart.PNG, iw); err != nil {
		return nil, fmt.Errorf("render: image: %w", err)
	}
	img, err := iw.Image()
	if err != nil {
		return nil, fmt.Errorf("render: image: %w", err)
	}
	return img, nil
}

// WritePNG renders p and writes it to path atomically.
func WritePNG(path string, p *Plot, width, height int) error {
	raw, err := PNG(p, width, height)
	if err != nil {
		return err
	}
	if err := store.WriteFileAtomic(path, raw); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return nil
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
