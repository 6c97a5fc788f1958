package braille

// SetPixel sets a pixel at (x, y) where x,y are cartesian sub-pixel
// coordinates. The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) SetPixel(x, y int, color Color) {
	c.set(x, c.flipY(y), color)
}

// SetPixelScreen is SetPixel with the origin at the top-left.
func (c *Canvas) SetPixelScreen(x, y int, color Color) {
	c.set(x, y, color)
}

// UnsetPixel clears a pixel.
func (c *Canvas) UnsetPixel(x, y int) {
	c.unset(x, c.flipY(y))
}

func (c *Canvas) UnsetPixelScreen(x, y int) {
	c.unset(x, y)
}

// TogglePixel flips a pixel. The color applies only if the pixel turns on.
func (c *Canvas) TogglePixel(x, y int, color Color) {
	c.toggle(x, c.flipY(y), color)
}

func (c *Canvas) TogglePixelScreen(x, y int, color Color) {
	c.toggle(x, y, color)
}

// Pixel reports whether a cartesian sub-pixel is set.
func (c *Canvas) Pixel(x, y int) bool {
	return c.PixelScreen(x, c.flipY(y))
}

func (c *Canvas) PixelScreen(x, y int) bool {
	i, bit, ok := c.locate(x, y)
	return ok && c.masks[i]&bit != 0
}

func (c *Canvas) set(x, y int, color Color) {
	i, bit, ok := c.locate(x, y)
	if !ok {
		return
	}
	c.setAt(i, bit, color)
}

// setAt writes an already located bit.
func (c *Canvas) setAt(i int, bit byte, color Color) {
	c.masks[i] |= bit
	c.colors[i] = c.blend.resolve(c.colors[i], color)
}

func (c *Canvas) unset(x, y int) {
	i, bit, ok := c.locate(x, y)
	if !ok {
		return
	}
	c.masks[i] &^= bit
	if c.masks[i] == 0 {
		c.colors[i] = NoColor
	}
}

func (c *Canvas) toggle(x, y int, color Color) {
	i, bit, ok := c.locate(x, y)
	if !ok {
		return
	}
	if c.masks[i]&bit != 0 {
		c.masks[i] &^= bit
		if c.masks[i] == 0 {
			c.colors[i] = NoColor
		}
		return
	}
	c.setAt(i, bit, color)
}
