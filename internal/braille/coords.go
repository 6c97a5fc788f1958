package braille

import "math"

// MaxCoord bounds the magnitude of circle centers and radii. Larger finite
// values are treated as out of bounds.
const MaxCoord = 1 << 20

// Point is a sub-pixel position in either coordinate convention.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

// Cartesian calls have their origin bottom-left with Y growing upward. The
// canonical space every algorithm runs in is screen-like: row 0 on top.

func (c *Canvas) flipY(y int) int {
	return c.PixelHeight() - 1 - y
}

// canonY floors a cartesian y and flips it. NaN and Inf pass through.
func (c *Canvas) canonY(y float64) float64 {
	return float64(c.PixelHeight()-1) - math.Floor(y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finite4(a, b, d, e float64) bool {
	return finite(a) && finite(b) && finite(d) && finite(e)
}

// toPixel floors v into an integer pixel coordinate. It fails for NaN, Inf
// and magnitudes beyond MaxCoord.
func toPixel(v float64) (int, bool) {
	if !finite(v) || v > MaxCoord || v < -MaxCoord {
		return 0, false
	}
	return int(math.Floor(v)), true
}

// locate maps a canonical sub-pixel to its cell index and bit.
func (c *Canvas) locate(x, y int) (int, byte, bool) {
	if x < 0 || y < 0 || x >= c.PixelWidth() || y >= c.PixelHeight() {
		return 0, 0, false
	}
	return (y/cellH)*c.Width + x/cellW, pixelMap[y%cellH][x%cellW], true
}
