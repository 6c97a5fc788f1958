package braille

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]byte{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const (
	// BrailleBase is the codepoint of the empty Braille pattern.
	BrailleBase = 0x2800

	cellW = 2
	cellH = 4
)

// Canvas is a bit-packed sub-pixel framebuffer. Each terminal cell holds a
// 2x4 dot matrix in one byte, one resolved color and an optional overlay
// rune. A Canvas is not safe for concurrent use.
type Canvas struct {
	Width, Height int

	blend  BlendMode
	glyphs CellRenderer
	masks  []byte
	colors []Color
	text   []overlayCell
	nText  int
}

// New allocates a canvas of width x height cells. Negative sizes are treated
// as zero.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n := width * height
	return &Canvas{
		Width:  width,
		Height: height,
		blend:  Overwrite,
		glyphs: Braille{},
		masks:  make([]byte, n),
		colors: make([]Color, n),
		text:   make([]overlayCell, n),
	}
}

// PixelWidth is the horizontal sub-pixel extent.
func (c *Canvas) PixelWidth() int { return c.Width * cellW }

// PixelHeight is the vertical sub-pixel extent.
func (c *Canvas) PixelHeight() int { return c.Height * cellH }

// SetBlendMode changes how subsequent writes resolve a cell's color.
func (c *Canvas) SetBlendMode(m BlendMode) { c.blend = m }

func (c *Canvas) BlendMode() BlendMode { return c.blend }

// SetCellRenderer selects the glyph set used for dot cells. nil restores
// Braille.
func (c *Canvas) SetCellRenderer(r CellRenderer) {
	if r == nil {
		r = Braille{}
	}
	c.glyphs = r
}

func (c *Canvas) CellRenderer() CellRenderer { return c.glyphs }

// Clear resets dots, colors and the text overlay.
func (c *Canvas) Clear() {
	clear(c.masks)
	clear(c.colors)
	c.ClearText()
}

// Mask returns the dot bitmask of a cell in screen rows, or 0 when out of
// range.
func (c *Canvas) Mask(col, row int) byte {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return 0
	}
	return c.masks[row*c.Width+col]
}

// CellColor returns the resolved color of a cell in screen rows.
func (c *Canvas) CellColor(col, row int) Color {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return NoColor
	}
	return c.colors[row*c.Width+col]
}

// Empty reports whether no dot and no overlay rune is set.
func (c *Canvas) Empty() bool {
	if c.nText > 0 {
		return false
	}
	for _, m := range c.masks {
		if m != 0 {
			return false
		}
	}
	return true
}
