package viz

import (
	"math"

	"github.com/san-kum/termplot/internal/braille"
	"github.com/san-kum/termplot/internal/chart"
)

// Showcase draws every primitive once: a grid, outlined and filled
// circles and rectangles, a line fan, a star polygon and labels.
func Showcase(c *braille.Canvas, t Theme) {
	w, h := float64(c.PixelWidth()), float64(c.PixelHeight())
	if w == 0 || h == 0 {
		return
	}
	ctx := chart.Wrap(c)
	ctx.DrawGrid(6, 3, t.GridColor())

	r := math.Min(w/6, h/2) * 0.8
	c.Circle(w/6, h/2, r, t.Color(0, 6))
	c.CircleFilled(w/6, h/2, r/2, t.Color(1, 6))

	c.Rect(w/3, h*0.15, w/6, h*0.7, t.Color(2, 6))
	c.RectFilled(w/3+w/24, h*0.3, w/12, h*0.4, t.Color(3, 6))

	fx, fy := w*0.58, h*0.1
	for i := 0; i <= 8; i++ {
		a := float64(i) / 8 * math.Pi / 2
		c.Line(fx, fy, fx+r*2*math.Cos(a), fy+r*2*math.Sin(a), t.Color(4, 6))
	}

	c.Polygon(star(w*0.86, h/2, r, r*0.45, 5), true, t.Color(5, 6))

	ctx.Text("circle", 0.02, 0.02, t.HUDColor())
	ctx.Text("rect", 0.36, 0.02, t.HUDColor())
	ctx.Text("lines", 0.6, 0.02, t.HUDColor())
	ctx.Text("polygon", 0.8, 0.02, t.HUDColor())
}

func star(cx, cy, outer, inner float64, points int) []braille.Point {
	pts := make([]braille.Point, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		rad := outer
		if i%2 == 1 {
			rad = inner
		}
		a := math.Pi/2 + float64(i)*math.Pi/float64(points)
		pts = append(pts, braille.Pt(cx+rad*math.Cos(a), cy+rad*math.Sin(a)))
	}
	return pts
}
