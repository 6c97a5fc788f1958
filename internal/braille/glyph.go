package braille

import (
	"fmt"
	"sort"
	"strings"
)

// CellRenderer turns a cell's 2x4 dot mask into the glyph printed for it.
// Glyph is only called for nonzero masks; empty cells always print a space.
type CellRenderer interface {
	Glyph(mask byte) rune
}

// Braille maps every mask to its own pattern codepoint, keeping the full
// 2x4 resolution.
type Braille struct{}

func (Braille) Glyph(mask byte) rune { return BrailleBase + rune(mask) }

const (
	topDots   = 0x01 | 0x02 | 0x08 | 0x10
	lowerDots = 0x04 | 0x40 | 0x20 | 0x80
)

// HalfBlock folds each cell into an upper and a lower half.
type HalfBlock struct{}

func (HalfBlock) Glyph(mask byte) rune {
	top, low := mask&topDots != 0, mask&lowerDots != 0
	switch {
	case top && low:
		return '█'
	case top:
		return '▀'
	case low:
		return '▄'
	}
	return ' '
}

// quadrantCells is indexed by UL<<3 | UR<<2 | LL<<1 | LR.
var quadrantCells = [16]rune{
	' ', '▗', '▖', '▄', '▝', '▐', '▞', '▟',
	'▘', '▚', '▌', '▙', '▀', '▜', '▛', '█',
}

// Quadrant folds each cell into a 2x2 block.
type Quadrant struct{}

func (Quadrant) Glyph(mask byte) rune {
	var q byte
	if mask&(0x01|0x02) != 0 {
		q |= 0b1000
	}
	if mask&(0x08|0x10) != 0 {
		q |= 0b0100
	}
	if mask&(0x04|0x40) != 0 {
		q |= 0b0010
	}
	if mask&(0x20|0x80) != 0 {
		q |= 0b0001
	}
	return quadrantCells[q]
}

var cellRenderers = map[string]CellRenderer{
	"braille":   Braille{},
	"halfblock": HalfBlock{},
	"quadrant":  Quadrant{},
}

// CellRendererByName resolves "braille", "halfblock" or "quadrant".
func CellRendererByName(name string) (CellRenderer, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(name)))
	if key == "" {
		return Braille{}, nil
	}
	r, ok := cellRenderers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownRenderer, name, CellRendererNames())
	}
	return r, nil
}

func CellRendererNames() []string {
	names := make([]string, 0, len(cellRenderers))
	for name := range cellRenderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
