package braille

import "github.com/unilibs/uniwidth"

type overlayCell struct {
	r     rune
	color Color
	set   bool
	// cont marks the right half of a double-width rune; it renders nothing.
	cont bool
}

// Text writes s into the overlay starting at cell (col, row), where row 0
// is the bottom row. The start is clamped into the grid and the text stops
// at the right edge. The overlay hides the dots beneath it but never
// modifies them.
func (c *Canvas) Text(s string, col, row int, color Color) {
	if c.Height == 0 {
		return
	}
	c.TextScreen(s, col, c.Height-1-clampInt(row, 0, c.Height-1), color)
}

// TextScreen is Text with row 0 at the top.
func (c *Canvas) TextScreen(s string, col, row int, color Color) {
	if c.Width == 0 || c.Height == 0 {
		return
	}
	col = clampInt(col, 0, c.Width-1)
	row = clampInt(row, 0, c.Height-1)
	base := row * c.Width
	for _, r := range s {
		if col >= c.Width {
			return
		}
		switch uniwidth.RuneWidth(r) {
		case 0:
			continue
		case 2:
			if col+1 >= c.Width {
				return
			}
			c.putText(base+col, overlayCell{r: r, color: color, set: true})
			c.putText(base+col+1, overlayCell{color: color, set: true, cont: true})
			col += 2
		default:
			c.putText(base+col, overlayCell{r: r, color: color, set: true})
			col++
		}
	}
}

// SetChar places a single rune at cartesian cell (col, row). Out of range
// cells are ignored.
func (c *Canvas) SetChar(col, row int, r rune, color Color) {
	if row < 0 || row >= c.Height {
		return
	}
	c.SetCharScreen(col, c.Height-1-row, r, color)
}

func (c *Canvas) SetCharScreen(col, row int, r rune, color Color) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.putText(row*c.Width+col, overlayCell{r: r, color: color, set: true})
}

// ClearText drops the overlay and leaves the dots alone.
func (c *Canvas) ClearText() {
	if c.nText == 0 {
		return
	}
	clear(c.text)
	c.nText = 0
}

// TextAt returns the overlay rune at a screen cell.
func (c *Canvas) TextAt(col, row int) (rune, Color, bool) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return 0, NoColor, false
	}
	t := c.text[row*c.Width+col]
	return t.r, t.color, t.set && !t.cont
}

// putText stores one overlay cell and repairs any double-width rune it
// splits, so every row keeps its column count.
func (c *Canvas) putText(i int, cell overlayCell) {
	old := c.text[i]
	if !old.set {
		c.nText++
	}
	if old.cont && !cell.cont && i%c.Width != 0 {
		c.text[i-1].r = ' '
	}
	if old.set && !old.cont && (i+1)%c.Width != 0 && c.text[i+1].cont {
		c.text[i+1] = overlayCell{}
		c.nText--
	}
	c.text[i] = cell
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
