// Package export writes braille canvases and data series as SVG or PNG.
package export

import (
	"fmt"
	"image/color"

	"github.com/san-kum/termplot/internal/braille"
	"github.com/unilibs/uniwidth"
)

// Options controls raster and vector snapshots.
type Options struct {
	// Scale is the size of one braille dot in output pixels.
	Scale int
	// Background fills the image; Foreground paints uncolored dots and text.
	Background color.RGBA
	Foreground color.RGBA
}

const DefaultScale = 4

func DefaultOptions() Options {
	return Options{
		Scale:      DefaultScale,
		Background: color.RGBA{0x0a, 0x0a, 0x0a, 0xff},
		Foreground: color.RGBA{0x00, 0xff, 0x00, 0xff},
	}
}

func (o Options) scale() int {
	if o.Scale <= 0 {
		return DefaultScale
	}
	return o.Scale
}

// paint resolves a canvas color to RGBA, using the foreground for NoColor.
func (o Options) paint(c braille.Color) color.RGBA {
	r, g, b, ok := c.RGBA()
	if !ok {
		return o.Foreground
	}
	return color.RGBA{r, g, b, 0xff}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// overlayCells marks cells whose dots are hidden by overlay text, including
// the right half of double-width runes.
func overlayCells(c *braille.Canvas) []bool {
	hidden := make([]bool, c.Width*c.Height)
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r, _, ok := c.TextAt(col, row)
			if !ok {
				continue
			}
			hidden[row*c.Width+col] = true
			if uniwidth.RuneWidth(r) == 2 && col+1 < c.Width {
				hidden[row*c.Width+col+1] = true
			}
		}
	}
	return hidden
}
