package main

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/termplot/internal/braille"
	"github.com/san-kum/termplot/internal/chart"
	"github.com/san-kum/termplot/internal/config"
	"github.com/san-kum/termplot/internal/export"
	"github.com/san-kum/termplot/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	blend      string
	renderer   string
	noColor    bool
	verbose    bool
	theme      string
	// plot
	minX float64
	maxX float64
	// chart
	asciiMode bool
	// live
	scene     string
	frameRate int
	// export
	outFile  string
	scale    int
	thumbW   int
	vectorSz string
)

var logger = log.New(io.Discard, "termplot: ", log.Ltime)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree, binding flags to their package-level
// variables with fresh defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "termplot",
		Short:         "braille terminal plotting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetOutput(os.Stderr)
			}
		},
		RunE: runDemo,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&width, "width", config.DefaultWidth, "canvas width in cells")
	pf.IntVar(&height, "height", config.DefaultHeight, "canvas height in cells")
	pf.StringVar(&blend, "blend", config.DefaultBlend, "color blend mode (overwrite, keep-first)")
	pf.StringVar(&renderer, "renderer", config.DefaultRenderer, "cell renderer ("+strings.Join(braille.CellRendererNames(), ", ")+")")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.BoolVar(&noColor, "no-color", false, "disable colors")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "draw every primitive once",
		RunE:  runDemo,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [function]",
		Short: "plot a built-in function (" + strings.Join(chart.FunctionNames(), ", ") + ")",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&minX, "min", 0, "domain start (default: function's own)")
	plotCmd.Flags().Float64Var(&maxX, "max", 0, "domain end (default: function's own)")

	chartCmd := &cobra.Command{
		Use:   "chart [file.yaml]",
		Short: "draw a chart document",
		Args:  cobra.ExactArgs(1),
		RunE:  runChart,
	}
	chartCmd.Flags().BoolVar(&asciiMode, "ascii", false, "plot the first series with asciigraph instead")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animated primitives and blending demo",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&scene, "scene", "shapes", "scene to animate (shapes, cube, attractor)")
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	exportCmd := &cobra.Command{
		Use:   "export [file.yaml]",
		Short: "render a chart document to PNG or SVG",
		Long:  "Render a chart document to PNG or SVG. Without a document the primitive demo is exported.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "termplot.png", "output file (.png or .svg)")
	exportCmd.Flags().IntVar(&scale, "scale", export.DefaultScale, "output pixels per braille dot")
	exportCmd.Flags().IntVar(&thumbW, "thumb", 0, "downsample PNG output to this width")
	exportCmd.Flags().StringVar(&vectorSz, "vector", "", "write the first series as a vector path of WxH pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [file.yaml]",
		Short: "write the effective configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(demoCmd, plotCmd, chartCmd, liveCmd, exportCmd, presetsCmd, initCmd)
	return rootCmd
}

// loadConfig merges defaults, preset, config file and explicit flags, in
// that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		logger.Printf("using preset %s", preset)
	}
	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
		logger.Printf("loaded %s", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("width") || (preset == "" && configFile == "") {
		cfg.Width = width
	}
	if flags.Changed("height") || (preset == "" && configFile == "") {
		cfg.Height = height
	}
	if flags.Changed("blend") {
		cfg.Blend = blend
	}
	if flags.Changed("renderer") {
		cfg.Renderer = renderer
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("no-color") {
		cfg.NoColor = noColor
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func themeFor(cfg *config.Config) viz.Theme {
	if cfg.NoColor {
		return viz.ThemeMono
	}
	return viz.GetTheme(cfg.Theme)
}

// show renders the canvas through a buffered sink, resetting the color at
// the end.
func show(w io.Writer, c *braille.Canvas) error {
	bw := bufio.NewWriterSize(w, c.SizeHint())
	if err := c.RenderTo(bw, true, nil); err != nil {
		return err
	}
	return bw.Flush()
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := cfg.NewCanvas()
	if err != nil {
		return err
	}
	viz.Showcase(c, themeFor(cfg))
	logger.Printf("demo %dx%d cells, %s blend", c.Width, c.Height, c.BlendMode())
	return show(cmd.OutOrStdout(), c)
}

func runPlot(cmd *cobra.Command, args []string) error {
	f, err := chart.Function(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("min") {
		f.Min = minX
	}
	if cmd.Flags().Changed("max") {
		f.Max = maxX
	}
	if f.Min >= f.Max {
		return fmt.Errorf("empty domain [%g, %g]", f.Min, f.Max)
	}

	c, err := cfg.NewCanvas()
	if err != nil {
		return err
	}
	fg, err := cfg.Foreground()
	if err != nil {
		return err
	}
	t := themeFor(cfg)
	if !fg.IsSet() {
		fg = t.Color(0, 1)
	}

	ctx := chart.Wrap(c)
	ctx.DrawGrid(10, 5, t.GridColor())
	if err := ctx.PlotFunction(f.Eval, f.Min, f.Max, fg); err != nil {
		return err
	}
	xr, yr := ctx.Ranges(chart.Sample(f.Eval, f.Min, f.Max, c.PixelWidth()))
	ctx.DrawAxes(xr, yr, t.HUDColor())
	ctx.Title(f.Name, t.HUDColor())
	return show(cmd.OutOrStdout(), c)
}

func runChart(cmd *cobra.Command, args []string) error {
	doc, err := config.LoadChart(args[0])
	if err != nil {
		return err
	}
	logger.Printf("chart %q: %s, %d series", doc.Title, doc.Kind, len(doc.Series))

	if asciiMode {
		return asciiChart(cmd.OutOrStdout(), doc)
	}

	c, t, err := chartCanvas(cmd, doc)
	if err != nil {
		return err
	}
	if err := chart.Draw(chart.Wrap(c), doc, t.Palette(len(doc.Series))); err != nil {
		return err
	}
	return show(cmd.OutOrStdout(), c)
}

func chartCanvas(cmd *cobra.Command, doc *config.ChartDoc) (*braille.Canvas, viz.Theme, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, viz.Theme{}, err
	}
	if !cmd.Flags().Changed("width") && !cmd.Flags().Changed("height") {
		doc.Apply(cfg)
	}
	c, err := cfg.NewCanvas()
	if err != nil {
		return nil, viz.Theme{}, err
	}
	return c, themeFor(cfg), nil
}

func asciiChart(w io.Writer, doc *config.ChartDoc) error {
	s := doc.Series[0]
	data := s.Values
	if len(data) == 0 {
		for _, p := range s.Points {
			data = append(data, p[1])
		}
	}
	if len(data) == 0 {
		return fmt.Errorf("series %q has no values for an ascii plot", s.Name)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(min(width, 80)),
		asciigraph.Caption(doc.Title),
	)
	fmt.Fprintln(w, graph)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sc, ok := viz.ParseScene(scene)
	if !ok {
		return fmt.Errorf("unknown scene: %s", scene)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := cfg.NewCanvas()
	if err != nil {
		return err
	}

	m := viz.NewModel(c, themeFor(cfg), viz.Options{
		FPS:       cfg.FPS,
		Status:    cfg.Status,
		Scene:     sc,
		FitWindow: !cmd.Flags().Changed("width") && !cmd.Flags().Changed("height"),
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	var (
		doc *config.ChartDoc
		c   *braille.Canvas
		t   viz.Theme
		err error
	)
	if len(args) == 1 {
		if doc, err = config.LoadChart(args[0]); err != nil {
			return err
		}
		if c, t, err = chartCanvas(cmd, doc); err != nil {
			return err
		}
		if err := chart.Draw(chart.Wrap(c), doc, t.Palette(len(doc.Series))); err != nil {
			return err
		}
	} else {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if c, err = cfg.NewCanvas(); err != nil {
			return err
		}
		viz.Showcase(c, themeFor(cfg))
	}

	if vectorSz != "" {
		return exportVector(cmd.OutOrStdout(), doc)
	}

	ext := strings.ToLower(filepath.Ext(outFile))
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("unsupported output format: %s", outFile)
	}
	opts := export.DefaultOptions()
	opts.Scale = scale

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if ext == ".svg" {
		_, err = f.WriteString(export.CanvasToSVG(c, opts))
	} else {
		img := export.CanvasToImage(c, opts)
		if thumbW > 0 {
			img = export.Thumbnail(img, thumbW)
		}
		err = png.Encode(f, img)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outFile)
	return nil
}

func exportVector(out io.Writer, doc *config.ChartDoc) error {
	if doc == nil {
		return fmt.Errorf("--vector needs a chart document")
	}
	var w, h int
	if _, err := fmt.Sscanf(vectorSz, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return fmt.Errorf("invalid --vector size %q, want WxH", vectorSz)
	}
	s := doc.Series[0]
	pts := make([]braille.Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = braille.Pt(p[0], p[1])
	}
	svg := export.PointsToSVG(pts, w, h, "#00ff00")
	if svg == "" {
		return fmt.Errorf("series %q needs at least two points", s.Name)
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	header := viz.HeaderStyle(viz.ThemeDefault).Render("presets")
	fmt.Fprintln(out, header)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tBLEND\tRENDERER\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		th := p.Theme
		if p.NoColor {
			th = "mono"
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\t%s\n", name, p.Width, p.Height, p.Blend, p.Renderer, th)
	}
	return w.Flush()
}
