package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"compact": {
		Width: 40, Height: 12, Blend: "overwrite", Renderer: "braille",
		Theme: "default", FPS: 30, Status: true,
	},
	"wide": {
		Width: 120, Height: 36, Blend: "overwrite", Renderer: "braille",
		Theme: "default", FPS: 30, Status: true,
	},
	"retro": {
		Width: 60, Height: 20, Blend: "keep-first", Renderer: "quadrant",
		Color: "green", Theme: "retro", FPS: 20, Status: true,
	},
	"blocks": {
		Width: 60, Height: 20, Blend: "overwrite", Renderer: "half-block",
		Theme: "ocean", FPS: 30, Status: true,
	},
	"mono": {
		Width: 60, Height: 20, Blend: "overwrite", Renderer: "braille",
		Theme: "mono", FPS: 30, NoColor: true,
	},
	"smooth": {
		Width: 80, Height: 24, Blend: "overwrite", Renderer: "braille",
		Theme: "sunset", FPS: 60, Status: true,
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
