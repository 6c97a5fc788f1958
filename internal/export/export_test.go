package export

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/san-kum/termplot/internal/braille"
)

func TestCanvasToSVG(t *testing.T) {
	c := braille.New(4, 2)
	c.SetPixelScreen(0, 0, braille.NoColor)
	c.SetPixelScreen(7, 7, braille.RGB(255, 0, 0))
	c.TextScreen("<", 1, 0, braille.NoColor)

	svg := CanvasToSVG(c, DefaultOptions())
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("malformed document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("colored dot lost its color")
	}
	if !strings.Contains(svg, "&lt;</text>") {
		t.Error("overlay text not escaped")
	}
	if !strings.Contains(svg, `width="32" height="32"`) {
		t.Error("unexpected document size")
	}
}

func TestCanvasToSVG_OverlayHidesDots(t *testing.T) {
	c := braille.New(2, 1)
	c.RectFilledScreen(0, 0, 4, 4, braille.NoColor)
	c.TextScreen("a", 0, 0, braille.NoColor)

	svg := CanvasToSVG(c, Options{Scale: 1})
	if n := strings.Count(svg, "<circle"); n != 8 {
		t.Errorf("expected only the second cell's 8 dots, got %d", n)
	}
}

func TestPointsToSVG(t *testing.T) {
	if PointsToSVG([]braille.Point{{X: 1, Y: 1}}, 100, 50, "#fff") != "" {
		t.Error("a single point should produce nothing")
	}
	pts := []braille.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	svg := PointsToSVG(pts, 100, 50, "#00ff00")
	if strings.Count(svg, "M") != 1 || strings.Count(svg, " L") != 2 {
		t.Errorf("unexpected path in %s", svg)
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("stroke color missing")
	}
}

func TestCanvasToImage(t *testing.T) {
	c := braille.New(2, 1)
	c.SetPixelScreen(0, 0, braille.RGB(255, 0, 0))
	opts := Options{Scale: 5, Background: color.RGBA{0, 0, 0, 255}, Foreground: color.RGBA{255, 255, 255, 255}}

	img := CanvasToImage(c, opts)
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if got := img.RGBAAt(2, 2); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("dot pixel = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != opts.Background {
		t.Errorf("inset pixel = %v, want background", got)
	}
	if got := img.RGBAAt(7, 2); got != opts.Background {
		t.Errorf("unset dot = %v, want background", got)
	}
}

func TestCanvasToImage_Text(t *testing.T) {
	c := braille.New(2, 1)
	c.TextScreen("W", 0, 0, braille.NoColor)
	opts := DefaultOptions()
	img := CanvasToImage(c, opts)

	lit := 0
	for y := 0; y < 4*opts.Scale; y++ {
		for x := 0; x < 2*opts.Scale; x++ {
			if img.RGBAAt(x, y) == opts.Foreground {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("glyph not drawn")
	}
}

func TestWritePNG(t *testing.T) {
	c := braille.New(3, 2)
	c.LineScreen(0, 0, 5, 7, braille.NoColor)

	var buf bytes.Buffer
	if err := WritePNG(&buf, c, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 6*DefaultScale || b.Dy() != 8*DefaultScale {
		t.Errorf("unexpected bounds %v", b)
	}

	thumb := Thumbnail(img, 12)
	if b := thumb.Bounds(); b.Dx() != 12 || b.Dy() != 16 {
		t.Errorf("thumbnail bounds %v", b)
	}
}
