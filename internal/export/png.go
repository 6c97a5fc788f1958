package export

import (
	"image"
	"image/png"
	"io"

	"github.com/san-kum/termplot/internal/braille"
	"github.com/unilibs/uniwidth"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CanvasToImage rasterizes a canvas. Each cell covers 2*Scale by 4*Scale
// pixels; overlay glyphs are drawn with a fixed 7x13 face and stretched to
// fill their cells.
func CanvasToImage(c *braille.Canvas, opts Options) *image.RGBA {
	scale := opts.scale()
	if c == nil {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewRGBA(image.Rect(0, 0, c.PixelWidth()*scale, c.PixelHeight()*scale))
	draw.Draw(img, img.Bounds(), &image.Uniform{opts.Background}, image.Point{}, draw.Src)

	inset := scale / 5
	hidden := overlayCells(c)
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			col, row := x/2, y/4
			if hidden[row*c.Width+col] || !c.PixelScreen(x, y) {
				continue
			}
			dot := image.Rect(x*scale+inset, y*scale+inset, (x+1)*scale-inset, (y+1)*scale-inset)
			draw.Draw(img, dot, &image.Uniform{opts.paint(c.CellColor(col, row))}, image.Point{}, draw.Src)
		}
	}

	face := basicfont.Face7x13
	glyph := image.NewRGBA(image.Rect(0, 0, face.Width, face.Height))
	cellW, cellH := 2*scale, 4*scale
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r, clr, ok := c.TextAt(col, row)
			if !ok {
				continue
			}
			draw.Draw(glyph, glyph.Bounds(), image.Transparent, image.Point{}, draw.Src)
			d := &font.Drawer{
				Dst:  glyph,
				Src:  &image.Uniform{opts.paint(clr)},
				Face: face,
				Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
			}
			d.DrawString(string(r))

			span := 1
			if uniwidth.RuneWidth(r) == 2 && col+1 < c.Width {
				span = 2
			}
			dst := image.Rect(col*cellW, row*cellH, (col+span)*cellW, (row+1)*cellH)
			draw.NearestNeighbor.Scale(img, dst, glyph, glyph.Bounds(), draw.Over, nil)
		}
	}
	return img
}

// WritePNG encodes a canvas snapshot as PNG.
func WritePNG(w io.Writer, c *braille.Canvas, opts Options) error {
	return png.Encode(w, CanvasToImage(c, opts))
}

// Thumbnail downsamples a snapshot to the given width, keeping the aspect
// ratio.
func Thumbnail(src image.Image, width int) *image.RGBA {
	b := src.Bounds()
	if width <= 0 || b.Dx() == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
