package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownChart = errors.New("config: unknown chart kind")
	ErrEmptyChart   = errors.New("config: chart has no series")
)

// Chart kinds understood by ChartDoc.
const (
	KindScatter  = "scatter"
	KindLine     = "line"
	KindBar      = "bar"
	KindPie      = "pie"
	KindPolygon  = "polygon"
	KindFunction = "function"
)

var chartKinds = []string{KindScatter, KindLine, KindBar, KindPie, KindPolygon, KindFunction}

// ChartDoc describes a chart in YAML:
//
//	title: latency
//	kind: line
//	axes: true
//	grid: {x: 4, y: 3}
//	series:
//	  - name: p99
//	    color: "#ff8800"
//	    points: [[0, 1.2], [1, 3.4], [2, 2.2]]
type ChartDoc struct {
	Title   string      `yaml:"title"`
	Kind    string      `yaml:"kind"`
	Width   int         `yaml:"width,omitempty"`
	Height  int         `yaml:"height,omitempty"`
	Axes    bool        `yaml:"axes"`
	Grid    GridDoc     `yaml:"grid,omitempty"`
	Padding float64     `yaml:"padding,omitempty"`
	Series  []SeriesDoc `yaml:"series"`
}

type GridDoc struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Color string `yaml:"color,omitempty"`
}

// SeriesDoc holds one data series. Points feed scatter, line and polygon
// charts; Values (with optional per-value Colors) feed bar and pie charts;
// Function, Min and Max feed function plots.
type SeriesDoc struct {
	Name     string       `yaml:"name,omitempty"`
	Color    string       `yaml:"color,omitempty"`
	Points   [][2]float64 `yaml:"points,omitempty"`
	Values   []float64    `yaml:"values,omitempty"`
	Colors   []string     `yaml:"colors,omitempty"`
	Function string       `yaml:"function,omitempty"`
	Min      float64      `yaml:"min,omitempty"`
	Max      float64      `yaml:"max,omitempty"`
}

const DefaultPadding = 0.05

func LoadChart(path string) (*ChartDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseChart(data)
}

func ParseChart(data []byte) (*ChartDoc, error) {
	doc := &ChartDoc{Kind: KindLine, Padding: DefaultPadding}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("config: parse chart: %w", err)
	}
	doc.Kind = strings.ToLower(strings.TrimSpace(doc.Kind))
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *ChartDoc) Validate() error {
	known := false
	for _, k := range chartKinds {
		if d.Kind == k {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownChart, d.Kind)
	}
	if len(d.Series) == 0 {
		return ErrEmptyChart
	}
	if d.Width < 0 || d.Height < 0 || d.Width > MaxCells || d.Height > MaxCells {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, d.Width, d.Height)
	}
	return nil
}

// AllPoints concatenates the points of every series, for shared ranges.
func (d *ChartDoc) AllPoints() [][2]float64 {
	var out [][2]float64
	for _, s := range d.Series {
		out = append(out, s.Points...)
	}
	return out
}

// Apply overrides the canvas size of cfg with the document's own size.
func (d *ChartDoc) Apply(cfg *Config) {
	if d.Width > 0 {
		cfg.Width = d.Width
	}
	if d.Height > 0 {
		cfg.Height = d.Height
	}
}
