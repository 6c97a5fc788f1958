package chart

import (
	"math"
	"strconv"

	"github.com/san-kum/termplot/internal/braille"
)

const tickCount = 4

// Text places s at a normalized cell position; (0,0) is the bottom-left
// cell and (1,1) the top-right.
func (c *ChartContext) Text(s string, x, y float64, color braille.Color) {
	col := int(math.Round(x * float64(max(c.Canvas.Width-1, 0))))
	row := int(math.Round(y * float64(max(c.Canvas.Height-1, 0))))
	c.Canvas.Text(s, col, row, color)
}

// DrawAxes draws the left and bottom axes and labels four evenly spaced
// ticks on each. X labels stay between 5% and 90% of the width so the
// outer ones are not cut off.
func (c *ChartContext) DrawAxes(x, y Range, color braille.Color) {
	w := float64(c.Canvas.PixelWidth())
	h := float64(c.Canvas.PixelHeight())
	c.Canvas.Line(0, 0, 0, h-1, color)
	c.Canvas.Line(0, 0, w-1, 0, color)

	for i, v := range ticks(y) {
		c.Text(formatTick(v), 0, float64(i)/(tickCount-1), color)
	}
	for i, v := range ticks(x) {
		pos := min(max(float64(i)/(tickCount-1), 0.05), 0.90)
		c.Text(formatTick(v), pos, 0, color)
	}
}

// DrawGrid draws divsX-1 vertical and divsY-1 horizontal division lines.
func (c *ChartContext) DrawGrid(divsX, divsY int, color braille.Color) {
	w := float64(c.Canvas.PixelWidth())
	h := float64(c.Canvas.PixelHeight())
	for i := 1; i < divsX; i++ {
		x := math.Round(float64(i) / float64(divsX) * w)
		c.Canvas.Line(x, 0, x, h, color)
	}
	for i := 1; i < divsY; i++ {
		y := math.Round(float64(i) / float64(divsY) * h)
		c.Canvas.Line(0, y, w, y, color)
	}
}

// Title centers s on the top row.
func (c *ChartContext) Title(s string, color braille.Color) {
	col := max((c.Canvas.Width-len([]rune(s)))/2, 0)
	c.Canvas.Text(s, col, c.Canvas.Height-1, color)
}

func ticks(r Range) [tickCount]float64 {
	step := (r.Max - r.Min) / (tickCount - 1)
	return [tickCount]float64{r.Min, r.Min + step, r.Min + 2*step, r.Max}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
