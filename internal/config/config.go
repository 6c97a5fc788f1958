package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/termplot/internal/braille"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 60
	DefaultHeight   = 20
	DefaultFPS      = 30
	DefaultBlend    = "overwrite"
	DefaultRenderer = "braille"
	DefaultTheme    = "default"

	MaxCells = 1000
	MaxFPS   = 240
)

var (
	ErrInvalidSize     = errors.New("config: canvas size out of range")
	ErrUnknownBlend    = errors.New("config: unknown blend mode")
	ErrUnknownRenderer = errors.New("config: unknown cell renderer")
)

type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Blend    string `yaml:"blend"`
	Renderer string `yaml:"renderer"`
	Color    string `yaml:"color"`
	Theme    string `yaml:"theme"`
	FPS      int    `yaml:"fps"`
	Status   bool   `yaml:"status"`
	NoColor  bool   `yaml:"no_color"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Blend:    DefaultBlend,
		Renderer: DefaultRenderer,
		Theme:    DefaultTheme,
		FPS:      DefaultFPS,
		Status:   true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that every field maps onto something the canvas accepts.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxCells || c.Height > MaxCells {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.FPS < 0 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d", ErrInvalidSize, c.FPS)
	}
	if _, err := c.BlendMode(); err != nil {
		return err
	}
	if _, err := c.CellRenderer(); err != nil {
		return err
	}
	if _, err := c.Foreground(); err != nil {
		return err
	}
	return nil
}

func (c *Config) BlendMode() (braille.BlendMode, error) {
	m, ok := braille.ParseBlendMode(c.Blend)
	if !ok {
		return m, fmt.Errorf("%w: %q", ErrUnknownBlend, c.Blend)
	}
	return m, nil
}

func (c *Config) CellRenderer() (braille.CellRenderer, error) {
	r, err := braille.CellRendererByName(c.Renderer)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, c.Renderer)
	}
	return r, nil
}

// Foreground is the default drawing color, NoColor when colors are off.
func (c *Config) Foreground() (braille.Color, error) {
	if c.NoColor {
		return braille.NoColor, nil
	}
	return braille.ParseColor(c.Color)
}

// NewCanvas builds a canvas with the configured size, blend mode and
// cell renderer.
func (c *Config) NewCanvas() (*braille.Canvas, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mode, _ := c.BlendMode()
	glyphs, _ := c.CellRenderer()
	cv := braille.New(c.Width, c.Height)
	cv.SetBlendMode(mode)
	cv.SetCellRenderer(glyphs)
	return cv, nil
}

// Clone returns a copy safe to modify without touching presets.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
