// Package braille provides a sub-pixel raster surface that renders to a text
// terminal as Unicode Braille patterns with ANSI colors.
//
// Every terminal cell packs a 2x4 dot matrix into one byte:
//
//   - [Canvas]: bitmask, color and text-overlay buffers
//   - [BlendMode]: which color a cell keeps when dots of several colors land in it
//   - [CellRenderer]: glyph sets ([Braille], [HalfBlock], [Quadrant])
//   - [Canvas.RenderTo]: allocation-free serialization into a reusable [Sink]
//
// # Coordinates
//
// Each operation comes in two flavors. The plain name takes cartesian
// coordinates (origin bottom-left, Y up); the Screen suffix takes screen
// coordinates (origin top-left, Y down). Both funnel into one screen-like
// implementation.
//
// # Example
//
//	c := braille.New(40, 10)
//	c.Line(0, 0, 79, 39, braille.Cyan)
//	c.CircleFilled(40, 20, 8, braille.Red)
//	c.Text("hello", 1, 9, braille.BrightWhite)
//	fmt.Print(c.Render())
//
// # Thread Safety
//
// Canvas instances are NOT thread-safe. Render from the goroutine that draws,
// or use one Canvas per goroutine.
package braille
