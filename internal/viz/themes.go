package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/termplot/internal/braille"
)

// Theme defines the color scheme for the TUI chrome and the canvas.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color

	// Series overrides the Primary to Secondary gradient for data colors.
	Series []braille.Color
	Grid   braille.Color
	HUD    braille.Color
	// Mono disables canvas colors entirely.
	Mono bool
}

// Available themes
var (
	ThemeDefault = Theme{
		Name:      "default",
		Primary:   lipgloss.Color("#00ffff"),
		Secondary: lipgloss.Color("#ff00ff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Series: []braille.Color{
			braille.Blue, braille.Red, braille.Green,
			braille.BrightYellow, braille.Cyan, braille.Magenta,
		},
		Grid: braille.BrightBlack,
		HUD:  braille.White,
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#005500"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Grid:      braille.RGB(0, 85, 0),
		HUD:       braille.BrightGreen,
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00ff88"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Grid:      braille.RGB(0x44, 0x88, 0xaa),
		HUD:       braille.RGB(0xe0, 0xf0, 0xff),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Grid:      braille.RGB(0x8b, 0x6b, 0x8c),
		HUD:       braille.RGB(0xff, 0xf5, 0xf5),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Mono:      true,
	}

	// All available themes
	Themes = []Theme{
		ThemeDefault,
		ThemeRetro,
		ThemeOcean,
		ThemeSunset,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to the default theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDefault
}

// Palette returns n data colors, or nil for monochrome themes.
func (t Theme) Palette(n int) []braille.Color {
	if t.Mono || n <= 0 {
		return nil
	}
	if len(t.Series) > 0 {
		return t.Series
	}
	return Gradient(t.Primary, t.Secondary, n)
}

// Color picks the i-th palette entry of an n-color palette.
func (t Theme) Color(i, n int) braille.Color {
	p := t.Palette(n)
	if len(p) == 0 {
		return braille.NoColor
	}
	return p[i%len(p)]
}

func (t Theme) GridColor() braille.Color {
	if t.Mono {
		return braille.NoColor
	}
	return t.Grid
}

func (t Theme) HUDColor() braille.Color {
	if t.Mono {
		return braille.NoColor
	}
	return t.HUD
}

// Gradient blends n true colors from one lipgloss hex color to another.
func Gradient(from, to lipgloss.Color, n int) []braille.Color {
	a, errA := braille.ParseColor(string(from))
	b, errB := braille.ParseColor(string(to))
	if errA != nil || errB != nil || n <= 0 {
		return nil
	}
	out := make([]braille.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = braille.Blend(a, b, t)
	}
	return out
}
