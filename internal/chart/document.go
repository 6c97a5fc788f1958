package chart

import (
	"fmt"

	"github.com/san-kum/termplot/internal/braille"
	"github.com/san-kum/termplot/internal/config"
)

// Draw renders a chart document. Series without an explicit color take
// palette entries in order; an empty palette leaves them uncolored.
func Draw(c *ChartContext, doc *config.ChartDoc, palette []braille.Color) error {
	if doc.Padding > 0 {
		c.Padding = doc.Padding
	}
	if doc.Grid.X > 1 || doc.Grid.Y > 1 {
		gridColor := braille.BrightBlack
		if doc.Grid.Color != "" {
			gc, err := braille.ParseColor(doc.Grid.Color)
			if err != nil {
				return err
			}
			gridColor = gc
		}
		c.DrawGrid(doc.Grid.X, doc.Grid.Y, gridColor)
	}

	xr, yr, err := drawSeries(c, doc, palette)
	if err != nil {
		return err
	}

	axisColor := pick(palette, len(doc.Series))
	if doc.Axes && doc.Kind != config.KindPie {
		c.DrawAxes(xr, yr, axisColor)
	}
	if doc.Title != "" {
		c.Title(doc.Title, axisColor)
	}
	return nil
}

func drawSeries(c *ChartContext, doc *config.ChartDoc, palette []braille.Color) (Range, Range, error) {
	switch doc.Kind {
	case config.KindBar, config.KindPie:
		bars, err := collectBars(doc, palette)
		if err != nil {
			return Range{}, Range{}, err
		}
		if doc.Kind == config.KindPie {
			return Range{}, Range{}, c.PieChart(bars)
		}
		maxVal := 0.0
		for _, b := range bars {
			maxVal = max(maxVal, b.Value)
		}
		return Range{0, float64(len(bars))}, Range{0, maxVal}, c.BarChart(bars)

	case config.KindFunction:
		series := make([][]braille.Point, len(doc.Series))
		var all []braille.Point
		for i, s := range doc.Series {
			f, err := Function(s.Function)
			if err != nil {
				return Range{}, Range{}, err
			}
			lo, hi := f.Min, f.Max
			if s.Min != 0 || s.Max != 0 {
				lo, hi = s.Min, s.Max
			}
			series[i] = Sample(f.Eval, lo, hi, c.Canvas.PixelWidth())
			all = append(all, series[i]...)
		}
		return c.drawPointSeries(doc, palette, series, all)

	default:
		series := make([][]braille.Point, len(doc.Series))
		var all []braille.Point
		for i, s := range doc.Series {
			series[i] = toPoints(s.Points)
			all = append(all, series[i]...)
		}
		return c.drawPointSeries(doc, palette, series, all)
	}
}

func (c *ChartContext) drawPointSeries(doc *config.ChartDoc, palette []braille.Color, series [][]braille.Point, all []braille.Point) (Range, Range, error) {
	xr, yr := AutoRange(all, c.Padding)
	c.SetRange(xr, yr)
	defer c.ResetRange()

	drawn := 0
	for i, pts := range series {
		color, err := seriesColor(doc.Series[i].Color, palette, i)
		if err != nil {
			return xr, yr, err
		}
		switch doc.Kind {
		case config.KindScatter:
			err = c.Scatter(pts, color)
		case config.KindPolygon:
			err = c.Polygon(pts, color)
		default:
			err = c.LineChart(pts, color)
		}
		if err == nil {
			drawn++
		}
	}
	if drawn == 0 {
		return xr, yr, ErrNoData
	}
	return xr, yr, nil
}

func collectBars(doc *config.ChartDoc, palette []braille.Color) ([]Bar, error) {
	var bars []Bar
	for i, s := range doc.Series {
		base, err := seriesColor(s.Color, palette, i)
		if err != nil {
			return nil, err
		}
		for j, v := range s.Values {
			color := base
			if j < len(s.Colors) {
				if color, err = braille.ParseColor(s.Colors[j]); err != nil {
					return nil, fmt.Errorf("series %d value %d: %w", i, j, err)
				}
			} else if len(doc.Series) == 1 && s.Color == "" && len(palette) > 0 {
				color = pick(palette, j)
			}
			bars = append(bars, Bar{Value: v, Color: color})
		}
	}
	return bars, nil
}

func seriesColor(spec string, palette []braille.Color, i int) (braille.Color, error) {
	if spec != "" {
		return braille.ParseColor(spec)
	}
	return pick(palette, i), nil
}

func pick(palette []braille.Color, i int) braille.Color {
	if len(palette) == 0 {
		return braille.NoColor
	}
	return palette[i%len(palette)]
}

func toPoints(raw [][2]float64) []braille.Point {
	out := make([]braille.Point, len(raw))
	for i, p := range raw {
		out[i] = braille.Pt(p[0], p[1])
	}
	return out
}
