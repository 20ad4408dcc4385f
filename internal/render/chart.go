// Package render turns layout hints into chart files. It is the drawing
// collaborator: all scheduling semantics live upstream, and everything
// here is presentation.
package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/maxkimambo/gantt/internal/layout"
)

const (
	// barHalfHeight is half the task bar height in row units.
	barHalfHeight = 0.31
	// bandHalfHeight is half the group header band height in row units.
	bandHalfHeight = 0.46
	// labelPadDays is the gap between a bar's right edge and its label.
	labelPadDays = 0.8
	// rightMarginDays keeps room for end labels past the last due date.
	rightMarginDays = 28
)

var (
	todayColor = color.NRGBA{R: 0xcc, G: 0x00, B: 0x00, A: 0xff}
	labelColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// Options controls output naming and formats.
type Options struct {
	// Output overrides the derived base filename (without extension).
	Output  string
	Formats []string
}

// Render draws the chart described by res and writes one file per
// requested format. It returns the written paths.
func Render(res *layout.Result, opts Options) ([]string, error) {
	p, err := buildPlot(res)
	if err != nil {
		return nil, err
	}

	base := opts.Output
	if base == "" {
		base = OutputBase(res.Title, res.Generated)
	}

	nRows := len(res.Rows)
	width := 22 * vg.Inch
	height := vg.Length(math.Max(10, float64(nRows)*0.58+3)) * vg.Inch

	var written []string
	for _, format := range opts.Formats {
		path := fmt.Sprintf("%s.%s", base, format)
		if err := p.Save(width, height, path); err != nil {
			return written, fmt.Errorf("failed to save chart %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func buildPlot(res *layout.Result) (*plot.Plot, error) {
	p := plot.New()

	title := res.Title
	if res.Subtitle != "" {
		title += " - " + res.Subtitle
	}
	p.Title.Text = fmt.Sprintf("%s\nGenerated %s %d, %d",
		title, res.Generated.Format("January"), res.Generated.Day(), res.Generated.Year())
	p.Title.TextStyle.Font.Size = vg.Points(15)

	nRows := len(res.Rows)
	p.X.Min = 0
	p.X.Max = res.X(res.Right) + rightMarginDays
	p.Y.Min = -1.2
	p.Y.Max = float64(nRows)

	// weekly Monday ticks from the layout engine
	xTicks := make([]plot.Tick, len(res.Ticks))
	for i, t := range res.Ticks {
		xTicks[i] = plot.Tick{Value: t.X, Label: t.Label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight

	yTicks := make([]plot.Tick, len(res.Rows))
	for i, row := range res.Rows {
		label := row.Label
		if row.Kind == layout.RowGroup {
			label = "> " + label
		}
		yTicks[i] = plot.Tick{Value: rowValue(res, row.Y), Label: label}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.Y.Tick.Length = 0

	grid := plotter.NewGrid()
	grid.Horizontal.Color = color.NRGBA{A: 0}
	grid.Vertical.Color = color.NRGBA{A: 0x33}
	grid.Vertical.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	p.Add(grid)

	bars := &ganttBars{res: res}
	p.Add(bars)

	labels, err := endLabels(res)
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	for _, entry := range res.Legend {
		p.Legend.Add(entry.Label, swatch{fill: paletteColor(entry.ColorIndex, 0xd9)})
	}
	if hasPastDue(res) {
		p.Legend.Add("Past due", swatch{fill: paletteColor(0, 0x66)})
	}
	p.Legend.Add("Today", todayLine{})
	p.Legend.Top = true

	return p, nil
}

func hasPastDue(res *layout.Result) bool {
	for _, row := range res.Rows {
		if row.Kind == layout.RowTask && row.Task.PastDue {
			return true
		}
	}
	return false
}

// rowValue flips row indices so row 0 renders at the top of the chart.
func rowValue(res *layout.Result, y int) float64 {
	return float64(len(res.Rows) - 1 - y)
}

// ganttBars draws group bands, task bars, past-due hatching and the
// today marker from layout hints.
type ganttBars struct {
	res *layout.Result
}

func (g *ganttBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, row := range g.res.Rows {
		v := rowValue(g.res, row.Y)
		switch row.Kind {
		case layout.RowGroup:
			// full-width tinted band behind the group label
			fillRect(c, c.Min.X, trY(v-bandHalfHeight), c.Max.X, trY(v+bandHalfHeight),
				paletteColor(row.ColorIndex, 0x1f))
		case layout.RowTask:
			g.drawBar(c, row, trX, trY, v)
		}
	}

	if m := g.res.Today; m != nil {
		x := trX(m.X)
		sty := draw.LineStyle{
			Color:  todayColor,
			Width:  vg.Points(1.8),
			Dashes: []vg.Length{vg.Points(6), vg.Points(4)},
		}
		c.StrokeLine2(sty, x, c.Min.Y, x, c.Max.Y)

		txt := draw.TextStyle{
			Color:   todayColor,
			Font:    plt.X.Tick.Label.Font,
			XAlign:  draw.XCenter,
			YAlign:  draw.YTop,
			Handler: plt.TextHandler,
		}
		c.FillText(txt, vg.Point{X: x, Y: c.Max.Y}, m.Label)
	}
}

func (g *ganttBars) drawBar(c draw.Canvas, row layout.Row, trX, trY func(float64) vg.Length, v float64) {
	bar := row.Task
	xEnd := bar.XEnd
	if xEnd-bar.XStart < 1 {
		// zero-length tasks still get a one-day sliver
		xEnd = bar.XStart + 1
	}

	x0, x1 := trX(bar.XStart), trX(xEnd)
	y0, y1 := trY(v-barHalfHeight), trY(v+barHalfHeight)

	alpha := uint8(0xd9)
	if bar.PastDue {
		alpha = 0x66
	}
	fillRect(c, x0, y0, x1, y1, paletteColor(row.ColorIndex, alpha))

	if bar.PastDue {
		hatchRect(c, x0, y0, x1, y1, paletteColor(row.ColorIndex, 0x59))
	}
}

func fillRect(c draw.Canvas, x0, y0, x1, y1 vg.Length, clr color.Color) {
	c.FillPolygon(clr, []vg.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	})
}

// hatchRect strokes 45 degree lines across the rectangle.
func hatchRect(c draw.Canvas, x0, y0, x1, y1 vg.Length, clr color.Color) {
	sty := draw.LineStyle{Color: clr, Width: vg.Points(0.8)}
	h := y1 - y0
	step := vg.Points(5)
	for x := x0 - h; x < x1; x += step {
		xa, xb := x, x+h
		if xa < x0 {
			xa = x0
		}
		if xb > x1 {
			xb = x1
		}
		if xa >= xb {
			continue
		}
		c.StrokeLine2(sty, xa, y0+(xa-x), xb, y0+(xb-x))
	}
}

// endLabels places each task's due date + assignee text right of its bar.
func endLabels(res *layout.Result) (*plotter.Labels, error) {
	var xys plotter.XYs
	var texts []string
	for _, row := range res.Rows {
		if row.Kind != layout.RowTask {
			continue
		}
		xys = append(xys, plotter.XY{
			X: row.Task.XEnd + labelPadDays,
			Y: rowValue(res, row.Y),
		})
		texts = append(texts, row.Task.EndLabel)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to build end labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = labelColor
		labels.TextStyle[i].Font.Size = vg.Points(9)
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	return labels, nil
}

// swatch is a solid legend thumbnail for a group color.
type swatch struct {
	fill color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	fillRect(*c, c.Min.X, c.Min.Y, c.Max.X, c.Max.Y, s.fill)
}

// todayLine is the legend thumbnail for the today marker.
type todayLine struct{}

func (todayLine) Thumbnail(c *draw.Canvas) {
	sty := draw.LineStyle{
		Color:  todayColor,
		Width:  vg.Points(1.8),
		Dashes: []vg.Length{vg.Points(4), vg.Points(3)},
	}
	y := (c.Min.Y + c.Max.Y) / 2
	c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
}
