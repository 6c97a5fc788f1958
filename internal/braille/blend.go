package braille

import (
	"fmt"
	"strings"
)

// BlendMode decides which color a cell keeps when several colored dots land
// in it.
type BlendMode uint8

const (
	// Overwrite lets the last colored write win.
	Overwrite BlendMode = iota
	// KeepFirst fixes the color of the first colored write since the cell
	// was last empty.
	KeepFirst
)

func (m BlendMode) String() string {
	switch m {
	case Overwrite:
		return "overwrite"
	case KeepFirst:
		return "keep-first"
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// ParseBlendMode maps "overwrite" and "keep-first" (also "keepfirst",
// "keep_first") to a BlendMode.
func ParseBlendMode(s string) (BlendMode, bool) {
	switch strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(s))) {
	case "", "overwrite":
		return Overwrite, true
	case "keepfirst":
		return KeepFirst, true
	}
	return Overwrite, false
}

// resolve returns the color a cell holds after a write of c.
func (m BlendMode) resolve(cur, c Color) Color {
	if !c.IsSet() {
		return cur
	}
	if m == KeepFirst && cur.IsSet() {
		return cur
	}
	return c
}
