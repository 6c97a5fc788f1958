package braille

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type colorKind uint8

const (
	kindNone colorKind = iota
	kindANSI
	kindIndexed
	kindRGB
)

// Color is a terminal foreground color. The zero value means "no color".
// Colors are comparable with ==.
type Color struct {
	kind    colorKind
	code    uint8
	r, g, b uint8
}

// NoColor leaves the terminal default foreground in place.
var NoColor = Color{}

// Named ANSI colors (SGR 30-37, 90-97).
var (
	Black         = Color{kind: kindANSI, code: 30}
	Red           = Color{kind: kindANSI, code: 31}
	Green         = Color{kind: kindANSI, code: 32}
	Yellow        = Color{kind: kindANSI, code: 33}
	Blue          = Color{kind: kindANSI, code: 34}
	Magenta       = Color{kind: kindANSI, code: 35}
	Cyan          = Color{kind: kindANSI, code: 36}
	White         = Color{kind: kindANSI, code: 37}
	BrightBlack   = Color{kind: kindANSI, code: 90}
	BrightRed     = Color{kind: kindANSI, code: 91}
	BrightGreen   = Color{kind: kindANSI, code: 92}
	BrightYellow  = Color{kind: kindANSI, code: 93}
	BrightBlue    = Color{kind: kindANSI, code: 94}
	BrightMagenta = Color{kind: kindANSI, code: 95}
	BrightCyan    = Color{kind: kindANSI, code: 96}
	BrightWhite   = Color{kind: kindANSI, code: 97}
)

var colorNames = map[string]Color{
	"none":          NoColor,
	"black":         Black,
	"red":           Red,
	"green":         Green,
	"yellow":        Yellow,
	"blue":          Blue,
	"magenta":       Magenta,
	"cyan":          Cyan,
	"white":         White,
	"brightblack":   BrightBlack,
	"gray":          BrightBlack,
	"brightred":     BrightRed,
	"brightgreen":   BrightGreen,
	"brightyellow":  BrightYellow,
	"brightblue":    BrightBlue,
	"brightmagenta": BrightMagenta,
	"brightcyan":    BrightCyan,
	"brightwhite":   BrightWhite,
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// Indexed returns a color from the xterm 256-color palette.
func Indexed(n uint8) Color {
	return Color{kind: kindIndexed, code: n}
}

// IsSet reports whether c is an actual color.
func (c Color) IsSet() bool { return c.kind != kindNone }

// RGBA approximates c as 8-bit RGB using the xterm palette. NoColor yields
// ok=false.
func (c Color) RGBA() (r, g, b uint8, ok bool) {
	switch c.kind {
	case kindRGB:
		return c.r, c.g, c.b, true
	case kindIndexed:
		p := palette256[c.code]
		return p[0], p[1], p[2], true
	case kindANSI:
		idx := c.code - 30
		if c.code >= 90 {
			idx = c.code - 90 + 8
		}
		p := palette256[idx]
		return p[0], p[1], p[2], true
	}
	return 0, 0, 0, false
}

// Hex formats the color as #rrggbb, or "" for NoColor.
func (c Color) Hex() string {
	r, g, b, ok := c.RGBA()
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (c Color) String() string {
	switch c.kind {
	case kindANSI:
		for name, v := range colorNames {
			if v == c && name != "gray" {
				return name
			}
		}
	case kindIndexed:
		return "256:" + strconv.Itoa(int(c.code))
	case kindRGB:
		return c.Hex()
	}
	return "none"
}

// ParseColor accepts a color name ("red", "brightcyan", "none"), a hex
// triplet ("#ff8800") or a palette index ("256:208").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return NoColor, nil
	}
	if c, ok := colorNames[strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		cf, err := colorful.Hex(s)
		if err != nil {
			return NoColor, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		r, g, b := cf.RGB255()
		return RGB(r, g, b), nil
	}
	if rest, ok := strings.CutPrefix(s, "256:"); ok {
		n, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			return NoColor, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		return Indexed(uint8(n)), nil
	}
	return NoColor, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// Blend linearly interpolates between two colors in Lab space and returns a
// true color. Unset endpoints fall back to the other endpoint.
func Blend(a, b Color, t float64) Color {
	ar, ag, ab, aok := a.RGBA()
	br, bg, bb, bok := b.RGBA()
	switch {
	case !aok && !bok:
		return NoColor
	case !aok:
		return b
	case !bok:
		return a
	}
	ca := colorful.Color{R: float64(ar) / 255, G: float64(ag) / 255, B: float64(ab) / 255}
	cb := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return RGB(r, g, bl)
}

// palette256 is the xterm default palette.
var palette256 = func() [256][3]uint8 {
	var p [256][3]uint8
	base := [16][3]uint8{
		{0, 0, 0}, {205, 49, 49}, {13, 188, 121}, {229, 229, 16},
		{36, 114, 200}, {188, 63, 188}, {17, 168, 205}, {229, 229, 229},
		{102, 102, 102}, {241, 76, 76}, {35, 209, 139}, {245, 245, 67},
		{59, 142, 234}, {214, 112, 214}, {41, 184, 219}, {255, 255, 255},
	}
	copy(p[:16], base[:])
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = [3]uint8{uint8(r * 51), uint8(g * 51), uint8(b * 51)}
				i++
			}
		}
	}
	for j := 0; j < 24; j++ {
		v := uint8(8 + j*10)
		p[232+j] = [3]uint8{v, v, v}
	}
	return p
}()
