package braille

import "math"

// Cohen-Sutherland region codes.
const (
	outLeft   = 1
	outRight  = 2
	outTop    = 4
	outBottom = 8
)

// at most one pass per boundary per endpoint
const maxClipPasses = 8

func (c *Canvas) outcode(x, y float64) uint8 {
	var code uint8
	xmax := float64(c.PixelWidth() - 1)
	ymax := float64(c.PixelHeight() - 1)
	if x < 0 {
		code |= outLeft
	} else if x > xmax {
		code |= outRight
	}
	if y < 0 {
		code |= outTop
	} else if y > ymax {
		code |= outBottom
	}
	return code
}

// clipLine clips a canonical segment to [0, W-1]x[0, H-1] and returns the
// integer endpoints of the visible part. Inputs must be finite and already
// floored.
func (c *Canvas) clipLine(x0, y0, x1, y1 float64) (ix0, iy0, ix1, iy1 int, ok bool) {
	if c.PixelWidth() == 0 || c.PixelHeight() == 0 {
		return 0, 0, 0, 0, false
	}
	xmax := float64(c.PixelWidth() - 1)
	ymax := float64(c.PixelHeight() - 1)

	code0 := c.outcode(x0, y0)
	code1 := c.outcode(x1, y1)
	for pass := 0; ; pass++ {
		if code0|code1 == 0 {
			break
		}
		if code0&code1 != 0 || pass == maxClipPasses {
			return 0, 0, 0, 0, false
		}

		out := code0
		if out == 0 {
			out = code1
		}
		var x, y float64
		switch {
		case out&outBottom != 0:
			x = x0 + (x1-x0)*(ymax-y0)/(y1-y0)
			y = ymax
		case out&outTop != 0:
			x = x0 + (x1-x0)*(0-y0)/(y1-y0)
			y = 0
		case out&outRight != 0:
			y = y0 + (y1-y0)*(xmax-x0)/(x1-x0)
			x = xmax
		case out&outLeft != 0:
			y = y0 + (y1-y0)*(0-x0)/(x1-x0)
			x = 0
		}

		if out == code0 {
			x0, y0 = x, y
			code0 = c.outcode(x0, y0)
		} else {
			x1, y1 = x, y
			code1 = c.outcode(x1, y1)
		}
	}
	return int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), true
}
