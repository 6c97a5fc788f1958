package viz

import (
	"math"

	"github.com/san-kum/termplot/internal/braille"
)

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapeCross
	// ShapeEraser punches a transparent disc into whatever was drawn before.
	ShapeEraser
)

// Shape is a bouncing primitive in screen pixel coordinates.
type Shape struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Kind   ShapeKind
	Color  braille.Color
}

// bounceMargin lets shapes leave the canvas partly so clipping shows.
const bounceMargin = 10

// Step moves the shape one frame and reverses its velocity once it is more
// than its size plus a margin outside the w by h pixel area.
func (s *Shape) Step(w, h float64) {
	s.X += s.VX
	s.Y += s.VY
	limit := s.Size + bounceMargin
	if s.X < -limit || s.X > w+limit {
		s.VX = -s.VX
	}
	if s.Y < -limit || s.Y > h+limit {
		s.VY = -s.VY
	}
}

func (s *Shape) Draw(c *braille.Canvas) {
	x, y, r := math.Trunc(s.X), math.Trunc(s.Y), math.Trunc(s.Size)
	switch s.Kind {
	case ShapeRect:
		c.RectFilledScreen(x-r, y-r, 2*r, 2*r, s.Color)
	case ShapeCircle:
		c.CircleFilledScreen(x, y, r, s.Color)
	case ShapeCross:
		c.LineScreen(x-2*r, y-2*r, x+2*r, y+2*r, s.Color)
		c.LineScreen(x-2*r, y+2*r, x+2*r, y-2*r, s.Color)
	case ShapeEraser:
		erase(c, int(x), int(y), int(r))
	}
}

func erase(c *braille.Canvas, cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.UnsetPixelScreen(cx+dx, cy+dy)
			}
		}
	}
}

// DefaultShapes is the demo scene: two discs, a square, a cross and an
// eraser, colored from the theme.
func DefaultShapes(t Theme) []Shape {
	return []Shape{
		{X: 20, Y: 20, VX: 1.5, VY: 1.1, Size: 25, Kind: ShapeCircle, Color: t.Color(0, 4)},
		{X: 80, Y: 40, VX: -1.2, VY: 1.8, Size: 20, Kind: ShapeRect, Color: t.Color(1, 4)},
		{X: 50, Y: 10, VX: 2.0, VY: -1.5, Size: 15, Kind: ShapeCircle, Color: t.Color(2, 4)},
		{X: 10, Y: 60, VX: 2.5, VY: 0.5, Size: 30, Kind: ShapeCross, Color: t.Color(3, 4)},
		{X: 60, Y: 30, VX: -1.0, VY: -1.0, Size: 12, Kind: ShapeEraser},
	}
}

// Recolor applies a new theme to shapes in order, leaving erasers alone.
func Recolor(shapes []Shape, t Theme) {
	for i := range shapes {
		if shapes[i].Kind != ShapeEraser {
			shapes[i].Color = t.Color(i, len(shapes)-1)
		}
	}
}
