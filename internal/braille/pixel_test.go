package braille

import (
	"math"
	"testing"
)

func TestPixelMap_Bijective(t *testing.T) {
	c := New(1, 1)
	var seen byte
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			_, bit, ok := c.locate(x, y)
			if !ok {
				t.Fatalf("locate(%d,%d) out of range", x, y)
			}
			if seen&bit != 0 {
				t.Errorf("bit %#x reused at (%d,%d)", bit, x, y)
			}
			seen |= bit
		}
	}
	if seen != 0xFF {
		t.Errorf("covered bits = %#x, want 0xff", seen)
	}
}

func TestSetUnsetToggle_RoundTrip(t *testing.T) {
	c := New(3, 2)
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			c.SetPixel(x, y, Red)
			if !c.Pixel(x, y) {
				t.Fatalf("SetPixel(%d,%d) not set", x, y)
			}
			c.UnsetPixel(x, y)
			if c.Pixel(x, y) {
				t.Fatalf("UnsetPixel(%d,%d) still set", x, y)
			}

			before := c.PixelScreen(x, y)
			c.TogglePixelScreen(x, y, Blue)
			c.TogglePixelScreen(x, y, Blue)
			if c.PixelScreen(x, y) != before {
				t.Fatalf("double toggle changed (%d,%d)", x, y)
			}
		}
	}
	if !c.Empty() {
		t.Error("canvas should be empty after round trips")
	}
}

func TestSetPixel_CartesianOrigin(t *testing.T) {
	c := New(10, 5)
	if c.PixelWidth() != 20 || c.PixelHeight() != 20 {
		t.Fatalf("pixel size = %dx%d, want 20x20", c.PixelWidth(), c.PixelHeight())
	}

	c.SetPixel(0, 0, NoColor)

	if got := c.Mask(0, 4); got != 0x40 {
		t.Errorf("bottom-left cell mask = %#x, want 0x40", got)
	}
	if !c.PixelScreen(0, 19) {
		t.Error("cartesian (0,0) should be screen (0,19)")
	}
	for row := 0; row < 4; row++ {
		if c.Mask(0, row) != 0 {
			t.Errorf("row %d unexpectedly touched", row)
		}
	}
}

func TestSetPixel_OutOfBounds(t *testing.T) {
	c := New(3, 2)
	points := [][2]int{
		{-1, 0}, {0, -1}, {6, 0}, {0, 8},
		{math.MaxInt, 0}, {math.MinInt, math.MinInt},
	}
	for _, p := range points {
		c.SetPixel(p[0], p[1], Red)
		c.SetPixelScreen(p[0], p[1], Red)
		c.TogglePixel(p[0], p[1], Red)
		c.UnsetPixelScreen(p[0], p[1])
		if c.Pixel(p[0], p[1]) {
			t.Errorf("Pixel(%d,%d) reported set", p[0], p[1])
		}
	}
	if !c.Empty() {
		t.Error("out of bounds writes mutated the canvas")
	}
}

func TestBlendMode(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want Color
	}{
		{Overwrite, Blue},
		{KeepFirst, Red},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			c := New(2, 1)
			c.SetBlendMode(tt.mode)
			c.SetPixelScreen(0, 0, Red)
			c.SetPixelScreen(1, 3, Blue)

			if got := c.CellColor(0, 0); got != tt.want {
				t.Errorf("cell color = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendMode_KeepFirstResetsWhenEmpty(t *testing.T) {
	c := New(1, 1)
	c.SetBlendMode(KeepFirst)
	c.SetPixelScreen(0, 0, Red)
	c.UnsetPixelScreen(0, 0)
	if got := c.CellColor(0, 0); got.IsSet() {
		t.Fatalf("empty cell kept color %v", got)
	}
	c.SetPixelScreen(1, 1, Green)
	if got := c.CellColor(0, 0); got != Green {
		t.Errorf("cell color = %v, want green", got)
	}
}

func TestBlendMode_NotRetroactive(t *testing.T) {
	c := New(1, 1)
	c.SetPixelScreen(0, 0, Red)
	c.SetPixelScreen(0, 1, Blue)
	c.SetBlendMode(KeepFirst)
	if got := c.CellColor(0, 0); got != Blue {
		t.Fatalf("mode change altered color: %v", got)
	}
	c.SetPixelScreen(0, 2, Yellow)
	if got := c.CellColor(0, 0); got != Blue {
		t.Errorf("keep-first write changed color to %v", got)
	}
}

func TestUncoloredWriteKeepsColor(t *testing.T) {
	c := New(1, 1)
	c.SetPixelScreen(0, 0, Magenta)
	c.SetPixelScreen(1, 0, NoColor)
	if got := c.CellColor(0, 0); got != Magenta {
		t.Errorf("cell color = %v, want magenta", got)
	}
}

func TestToggle_ClearsColorWhenEmpty(t *testing.T) {
	c := New(1, 1)
	c.TogglePixel(0, 0, Cyan)
	if c.CellColor(0, 0) != Cyan {
		t.Fatal("toggle on should apply color")
	}
	c.TogglePixel(0, 0, Cyan)
	if c.CellColor(0, 0).IsSet() || c.Mask(0, 0) != 0 {
		t.Error("toggle off should leave an empty, uncolored cell")
	}
}

func TestColorInvariant_EmptyCellHasNoColor(t *testing.T) {
	c := New(2, 2)
	c.CircleFilledScreen(2, 4, 3, Green)
	c.RectFilledScreen(0, 0, 4, 8, NoColor)
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			c.UnsetPixelScreen(x, y)
		}
	}
	for i := range c.masks {
		if c.masks[i] == 0 && c.colors[i].IsSet() {
			t.Errorf("cell %d empty but colored", i)
		}
	}
}

func TestClear(t *testing.T) {
	c := New(4, 2)
	c.LineScreen(0, 0, 7, 7, Red)
	c.TextScreen("ab", 0, 0, Blue)
	c.Clear()
	if !c.Empty() {
		t.Error("Clear left state behind")
	}
	for i := range c.colors {
		if c.colors[i].IsSet() {
			t.Fatalf("color survived Clear at %d", i)
		}
	}
}

func TestNew_NegativeSize(t *testing.T) {
	c := New(-3, -1)
	if c.Width != 0 || c.Height != 0 {
		t.Fatalf("size = %dx%d, want 0x0", c.Width, c.Height)
	}
	c.SetPixel(0, 0, Red)
	c.Line(0, 0, 10, 10, Red)
	c.Text("x", 0, 0, Red)
	if got := c.Render(); got != "\n" {
		t.Errorf("Render() = %q, want newline only", got)
	}
}
