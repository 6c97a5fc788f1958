package braille

import "math"

// All primitives take float64 sub-pixel coordinates. A NaN or infinite
// coordinate turns the whole call into a no-op; everything else is floored
// and clipped against the canvas.

// Plot sets the pixel containing the cartesian point (x, y).
func (c *Canvas) Plot(x, y float64, color Color) {
	c.PlotScreen(x, c.canonY(y), color)
}

func (c *Canvas) PlotScreen(x, y float64, color Color) {
	px, okx := toPixel(x)
	py, oky := toPixel(y)
	if okx && oky {
		c.set(px, py, color)
	}
}

// Line draws a clipped Bresenham line between two cartesian points.
func (c *Canvas) Line(x0, y0, x1, y1 float64, color Color) {
	c.line(x0, c.canonY(y0), x1, c.canonY(y1), color)
}

func (c *Canvas) LineScreen(x0, y0, x1, y1 float64, color Color) {
	c.line(x0, y0, x1, y1, color)
}

func (c *Canvas) line(x0, y0, x1, y1 float64, color Color) {
	if !finite4(x0, y0, x1, y1) {
		return
	}
	ix0, iy0, ix1, iy1, ok := c.clipLine(math.Floor(x0), math.Floor(y0), math.Floor(x1), math.Floor(y1))
	if !ok {
		return
	}
	c.bresenham(ix0, iy0, ix1, iy1, color)
}

// bresenham walks the major axis one unit per step. Endpoints must be on the
// canvas.
func (c *Canvas) bresenham(x0, y0, x1, y1 int, color Color) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}

	x, y := x0, y0
	if dx >= dy {
		err := 2*dy - dx
		for i := 0; i <= dx; i++ {
			c.plot(x, y, color)
			if err > 0 {
				y += sy
				err -= 2 * dx
			}
			err += 2 * dy
			x += sx
		}
		return
	}
	err := 2*dx - dy
	for i := 0; i <= dy; i++ {
		c.plot(x, y, color)
		if err > 0 {
			x += sx
			err -= 2 * dy
		}
		err += 2 * dx
		y += sy
	}
}

// Circle draws a midpoint circle outline centered on a cartesian point.
func (c *Canvas) Circle(cx, cy, r float64, color Color) {
	c.circle(cx, c.canonY(cy), r, color, false)
}

func (c *Canvas) CircleScreen(cx, cy, r float64, color Color) {
	c.circle(cx, cy, r, color, false)
}

// CircleFilled fills a disc with horizontal spans between the symmetric
// extents of the midpoint circle.
func (c *Canvas) CircleFilled(cx, cy, r float64, color Color) {
	c.circle(cx, c.canonY(cy), r, color, true)
}

func (c *Canvas) CircleFilledScreen(cx, cy, r float64, color Color) {
	c.circle(cx, cy, r, color, true)
}

func (c *Canvas) circle(cxf, cyf, rf float64, color Color, filled bool) {
	cx, ok1 := toPixel(cxf)
	cy, ok2 := toPixel(cyf)
	r, ok3 := toPixel(rf)
	if !ok1 || !ok2 || !ok3 || r < 0 {
		return
	}
	if cx+r < 0 || cy+r < 0 || cx-r >= c.PixelWidth() || cy-r >= c.PixelHeight() {
		return
	}

	x, y := 0, r
	d := 3 - 2*r
	for y >= x {
		if filled {
			c.span(cx-x, cx+x, cy+y, color)
			c.span(cx-x, cx+x, cy-y, color)
			c.span(cx-y, cx+y, cy+x, color)
			c.span(cx-y, cx+y, cy-x, color)
		} else {
			c.set(cx+x, cy+y, color)
			c.set(cx-x, cy+y, color)
			c.set(cx+x, cy-y, color)
			c.set(cx-x, cy-y, color)
			c.set(cx+y, cy+x, color)
			c.set(cx-y, cy+x, color)
			c.set(cx+y, cy-x, color)
			c.set(cx-y, cy-x, color)
		}
		if d > 0 {
			d += 4*(x-y) + 10
			y--
		} else {
			d += 4*x + 6
		}
		x++
	}
}

// span fills [x0, x1] on canonical row y, clamped to the canvas.
func (c *Canvas) span(x0, x1, y int, color Color) {
	if y < 0 || y >= c.PixelHeight() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > c.PixelWidth()-1 {
		x1 = c.PixelWidth() - 1
	}
	for x := x0; x <= x1; x++ {
		c.plot(x, y, color)
	}
}

// Rect outlines a rectangle whose bottom-left corner is the cartesian point
// (x, y), growing right and up.
func (c *Canvas) Rect(x, y, w, h float64, color Color) {
	c.rect(x, c.canonY(y)-math.Floor(h)+1, w, h, color, false)
}

// RectScreen outlines a rectangle whose top-left corner is (x, y), growing
// right and down.
func (c *Canvas) RectScreen(x, y, w, h float64, color Color) {
	c.rect(x, y, w, h, color, false)
}

func (c *Canvas) RectFilled(x, y, w, h float64, color Color) {
	c.rect(x, c.canonY(y)-math.Floor(h)+1, w, h, color, true)
}

func (c *Canvas) RectFilledScreen(x, y, w, h float64, color Color) {
	c.rect(x, y, w, h, color, true)
}

func (c *Canvas) rect(x, y, w, h float64, color Color, filled bool) {
	if !finite4(x, y, w, h) {
		return
	}
	x, y, w, h = math.Floor(x), math.Floor(y), math.Floor(w), math.Floor(h)
	if w < 1 || h < 1 {
		return
	}
	if !filled {
		x1, y1 := x+w-1, y+h-1
		c.line(x, y, x1, y, color)
		c.line(x1, y, x1, y1, color)
		c.line(x1, y1, x, y1, color)
		c.line(x, y1, x, y, color)
		return
	}

	x0f := math.Max(x, 0)
	y0f := math.Max(y, 0)
	x1f := math.Min(x+w, float64(c.PixelWidth()))
	y1f := math.Min(y+h, float64(c.PixelHeight()))
	if x0f >= x1f || y0f >= y1f {
		return
	}
	x0, y0, x1, y1 := int(x0f), int(y0f), int(x1f), int(y1f)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.plot(px, py, color)
		}
	}
}

// Polygon connects consecutive cartesian vertices; closed also joins the
// last vertex to the first.
func (c *Canvas) Polygon(points []Point, closed bool, color Color) {
	c.polygon(points, closed, color, true)
}

func (c *Canvas) PolygonScreen(points []Point, closed bool, color Color) {
	c.polygon(points, closed, color, false)
}

func (c *Canvas) polygon(points []Point, closed bool, color Color, cartesian bool) {
	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return
		}
	}
	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		p := points[0]
		if cartesian {
			c.Plot(p.X, p.Y, color)
		} else {
			c.PlotScreen(p.X, p.Y, color)
		}
		return
	}

	edge := func(a, b Point) {
		if cartesian {
			c.Line(a.X, a.Y, b.X, b.Y, color)
		} else {
			c.LineScreen(a.X, a.Y, b.X, b.Y, color)
		}
	}
	for i := 1; i < len(points); i++ {
		edge(points[i-1], points[i])
	}
	if closed && len(points) > 2 {
		edge(points[len(points)-1], points[0])
	}
}

// plot writes a canonical pixel that is known to be on the canvas.
func (c *Canvas) plot(x, y int, color Color) {
	c.setAt((y/cellH)*c.Width+x/cellW, pixelMap[y%cellH][x%cellW], color)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
