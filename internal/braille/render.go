package braille

import "strings"

// StatusLine is an extra line appended below the grid by RenderTo.
type StatusLine struct {
	Text  string
	Color Color
}

// SizeHint estimates the bytes of one colored frame, for pre-growing a
// reusable render buffer.
func (c *Canvas) SizeHint() int {
	return c.Width*c.Height*8 + c.Height + 64
}

// Render returns the frame as a string. It matches RenderTo(sink, true, nil)
// byte for byte.
func (c *Canvas) Render() string {
	var b strings.Builder
	b.Grow(c.SizeHint())
	_ = c.RenderTo(&b, true, nil)
	return b.String()
}

// RenderTo writes the frame into sink without allocating: rows top to
// bottom, cells left to right, one color escape per color change. Overlay
// runes replace the dot glyph and color of their cell. With resetAtEnd an
// active color is reset before the final newline. A non-nil status is
// written as one more line in its own color.
//
// The first failed write aborts the frame and is returned as a *RenderError;
// whatever was written before stays in the sink.
func (c *Canvas) RenderTo(sink Sink, resetAtEnd bool, status *StatusLine) error {
	w := frameWriter{sink: sink}
	last := NoColor

	for row := 0; row < c.Height; row++ {
		w.row = row
		if row > 0 {
			w.putByte('\n')
		}
		base := row * c.Width
		for col := 0; col < c.Width; col++ {
			i := base + col
			r, clr := ' ', NoColor
			if t := c.text[i]; t.set {
				if t.cont {
					continue
				}
				r, clr = t.r, t.color
			} else if m := c.masks[i]; m != 0 {
				r, clr = c.glyphs.Glyph(m), c.colors[i]
			}
			if clr != last {
				w.sgr(clr)
				last = clr
			}
			w.putRune(r)
			if w.err != nil {
				return w.fail()
			}
		}
	}

	w.row = c.Height
	if status != nil {
		if c.Height > 0 {
			w.putByte('\n')
		}
		if status.Color != last {
			w.sgr(status.Color)
			last = status.Color
		}
		w.putString(status.Text)
	}
	if resetAtEnd && last.IsSet() {
		w.putString(sgrReset)
	}
	w.putByte('\n')
	if w.err != nil {
		return w.fail()
	}
	return nil
}

// RenderPlain returns the frame without any escape sequences.
func (c *Canvas) RenderPlain() string {
	var b strings.Builder
	b.Grow(c.Width*c.Height*3 + c.Height + 1)
	_ = c.RenderPlainTo(&b)
	return b.String()
}

// RenderPlainTo is RenderTo without colors, resets or status line.
func (c *Canvas) RenderPlainTo(sink Sink) error {
	w := frameWriter{sink: sink}
	for row := 0; row < c.Height; row++ {
		w.row = row
		if row > 0 {
			w.putByte('\n')
		}
		base := row * c.Width
		for col := 0; col < c.Width; col++ {
			i := base + col
			r := ' '
			if t := c.text[i]; t.set {
				if t.cont {
					continue
				}
				r = t.r
			} else if m := c.masks[i]; m != 0 {
				r = c.glyphs.Glyph(m)
			}
			w.putRune(r)
		}
		if w.err != nil {
			return w.fail()
		}
	}
	w.putByte('\n')
	if w.err != nil {
		return w.fail()
	}
	return nil
}

// String renders the frame with colors.
func (c *Canvas) String() string {
	return c.Render()
}
