// Package chart draws data charts onto a braille canvas.
//
// All data charts map their input into the full pixel area of the canvas
// using Cartesian coordinates: the smallest y value lands on the bottom
// pixel row. Ranges are computed from the data unless pinned with
// SetRange.
package chart

import (
	"errors"
	"math"

	"github.com/san-kum/termplot/internal/braille"
)

// ErrNoData indicates a chart call had no finite data to draw.
var ErrNoData = errors.New("chart: no drawable data")

const (
	epsilon        = 1e-9
	DefaultPadding = 0.05
	pieScale       = 0.95
)

// Range is a closed interval on one axis.
type Range struct {
	Min, Max float64
}

func (r Range) span() float64 {
	return math.Max(r.Max-r.Min, epsilon)
}

// Bar is one bar or pie slice.
type Bar struct {
	Value float64
	Color braille.Color
}

type ChartContext struct {
	Canvas  *braille.Canvas
	Padding float64

	pinned bool
	xr, yr Range
}

func New(width, height int) *ChartContext {
	return Wrap(braille.New(width, height))
}

// Wrap draws charts onto an existing canvas.
func Wrap(c *braille.Canvas) *ChartContext {
	return &ChartContext{Canvas: c, Padding: DefaultPadding}
}

// SetRange pins the axis ranges used by Scatter, LineChart, Polygon and
// PlotFunction until ResetRange is called.
func (c *ChartContext) SetRange(x, y Range) {
	c.pinned = true
	c.xr, c.yr = x, y
}

func (c *ChartContext) ResetRange() {
	c.pinned = false
}

// Ranges returns the pinned ranges, or the auto ranges for points.
func (c *ChartContext) Ranges(points []braille.Point) (Range, Range) {
	if c.pinned {
		return c.xr, c.yr
	}
	return AutoRange(points, c.Padding)
}

// AutoRange returns the bounding ranges of the finite points, each widened
// by padding times its extent. A degenerate extent counts as 1. Without
// finite points both ranges are [0, 1].
func AutoRange(points []braille.Point, padding float64) (Range, Range) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	n := 0
	for _, p := range points {
		if !finitePoint(p) {
			continue
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		n++
	}
	if n == 0 {
		return Range{0, 1}, Range{0, 1}
	}

	rx, ry := maxX-minX, maxY-minY
	if math.Abs(rx) < epsilon {
		rx = 1
	}
	if math.Abs(ry) < epsilon {
		ry = 1
	}
	return Range{minX - rx*padding, maxX + rx*padding},
		Range{minY - ry*padding, maxY + ry*padding}
}

// mapCoords converts a data point to a rounded Cartesian pixel position.
func (c *ChartContext) mapCoords(p braille.Point, xr, yr Range) (float64, float64) {
	w := float64(c.Canvas.PixelWidth())
	h := float64(c.Canvas.PixelHeight())
	px := math.Round((p.X - xr.Min) / xr.span() * (w - 1))
	py := math.Round((p.Y - yr.Min) / yr.span() * (h - 1))
	return px, py
}

func (c *ChartContext) Scatter(points []braille.Point, color braille.Color) error {
	xr, yr := c.Ranges(points)
	drawn := 0
	for _, p := range points {
		if !finitePoint(p) {
			continue
		}
		px, py := c.mapCoords(p, xr, yr)
		c.Canvas.Plot(px, py, color)
		drawn++
	}
	if drawn == 0 {
		return ErrNoData
	}
	return nil
}

// LineChart connects consecutive points. Segments touching a non-finite
// point are skipped.
func (c *ChartContext) LineChart(points []braille.Point, color braille.Color) error {
	if len(points) < 2 {
		return ErrNoData
	}
	xr, yr := c.Ranges(points)
	drawn := 0
	for i := 1; i < len(points); i++ {
		if c.segment(points[i-1], points[i], xr, yr, color) {
			drawn++
		}
	}
	if drawn == 0 {
		return ErrNoData
	}
	return nil
}

// Polygon draws a closed outline through the vertices.
func (c *ChartContext) Polygon(vertices []braille.Point, color braille.Color) error {
	if len(vertices) < 2 {
		return ErrNoData
	}
	xr, yr := c.Ranges(vertices)
	drawn := 0
	for i := range vertices {
		if c.segment(vertices[i], vertices[(i+1)%len(vertices)], xr, yr, color) {
			drawn++
		}
	}
	if drawn == 0 {
		return ErrNoData
	}
	return nil
}

func (c *ChartContext) segment(a, b braille.Point, xr, yr Range, color braille.Color) bool {
	if !finitePoint(a) || !finitePoint(b) {
		return false
	}
	x0, y0 := c.mapCoords(a, xr, yr)
	x1, y1 := c.mapCoords(b, xr, yr)
	c.Canvas.Line(x0, y0, x1, y1, color)
	return true
}

// BarChart draws one bar per value, scaled so the largest value fills the
// canvas height. Non-positive and non-finite values leave a gap.
func (c *ChartContext) BarChart(bars []Bar) error {
	if len(bars) == 0 {
		return ErrNoData
	}
	maxVal := 0.0
	for _, b := range bars {
		if finite(b.Value) {
			maxVal = math.Max(maxVal, b.Value)
		}
	}
	if maxVal <= epsilon {
		return ErrNoData
	}

	w, h := c.Canvas.PixelWidth(), c.Canvas.PixelHeight()
	barWidth := max(w/len(bars), 1)
	for i, b := range bars {
		xStart := i * barWidth
		if xStart >= w {
			break
		}
		if !finite(b.Value) || b.Value <= 0 {
			continue
		}
		height := min(int(math.Round(b.Value/maxVal*float64(h))), h)
		xEnd := min(xStart+barWidth, w)
		c.Canvas.RectFilled(float64(xStart), 0, float64(xEnd-xStart), float64(height), b.Color)
	}
	return nil
}

// PieChart draws an uncolored rim and one colored spoke at the end angle of
// each positive slice, counter-clockwise from the positive x axis.
func (c *ChartContext) PieChart(slices []Bar) error {
	total := 0.0
	for _, s := range slices {
		if finite(s.Value) && s.Value > 0 {
			total += s.Value
		}
	}
	if total <= epsilon {
		return ErrNoData
	}

	w, h := c.Canvas.PixelWidth(), c.Canvas.PixelHeight()
	cx, cy := float64(w/2), float64(h/2)
	radius := math.Trunc(float64(min(w, h)) / 2 * pieScale)
	c.Canvas.Circle(cx, cy, radius, braille.NoColor)

	angle := 0.0
	for _, s := range slices {
		if !finite(s.Value) || s.Value <= 0 {
			continue
		}
		angle += s.Value / total * 2 * math.Pi
		ex := cx + math.Trunc(radius*math.Cos(angle))
		ey := cy + math.Trunc(radius*math.Sin(angle))
		c.Canvas.Line(cx, cy, ex, ey, s.Color)
	}
	return nil
}

// DrawCircle draws an outline at a normalized center with a radius given as
// a fraction of the smaller pixel dimension.
func (c *ChartContext) DrawCircle(center braille.Point, radius float64, color braille.Color) {
	w := float64(c.Canvas.PixelWidth())
	h := float64(c.Canvas.PixelHeight())
	r := math.Trunc(radius * math.Min(w, h))
	cx := math.Trunc(center.X * (w - 1))
	cy := math.Trunc(center.Y * (h - 1))
	c.Canvas.Circle(cx, cy, r, color)
}

// PlotFunction samples f once per pixel column across [minX, maxX] and
// draws the finite samples as a line chart.
func (c *ChartContext) PlotFunction(f func(float64) float64, minX, maxX float64, color braille.Color) error {
	return c.LineChart(Sample(f, minX, maxX, c.Canvas.PixelWidth()), color)
}

// Sample evaluates f at steps+1 evenly spaced x values and keeps the
// finite results.
func Sample(f func(float64) float64, minX, maxX float64, steps int) []braille.Point {
	if steps <= 0 {
		return nil
	}
	points := make([]braille.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		x := minX + float64(i)/float64(steps)*(maxX-minX)
		if y := f(x); finite(y) {
			points = append(points, braille.Pt(x, y))
		}
	}
	return points
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finitePoint(p braille.Point) bool {
	return finite(p.X) && finite(p.Y)
}
