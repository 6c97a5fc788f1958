package viz

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/termplot/internal/braille"
	"github.com/san-kum/termplot/internal/chart"
)

const (
	historyCapacity = 120
	// chromeRows and chromeCols are the terminal cells taken by the header,
	// status line, graph and padding around the canvas.
	chromeRows = 13
	chromeCols = 4
	minCells   = 4
	trailLen   = 600
)

type TickMsg time.Time

// Scene selects what the live view animates.
type Scene int

const (
	SceneShapes Scene = iota
	SceneCube
	SceneAttractor
	sceneCount
)

func (s Scene) String() string {
	switch s {
	case SceneCube:
		return "cube"
	case SceneAttractor:
		return "attractor"
	}
	return "shapes"
}

// ParseScene maps "shapes", "cube" and "attractor" to a Scene.
func ParseScene(name string) (Scene, bool) {
	switch name {
	case "", "shapes":
		return SceneShapes, true
	case "cube":
		return SceneCube, true
	case "attractor", "lorenz":
		return SceneAttractor, true
	}
	return SceneShapes, false
}

// Options configures the live demo.
type Options struct {
	FPS    int
	Status bool
	Scene  Scene
	// FitWindow resizes the canvas to the terminal on WindowSizeMsg.
	FitWindow bool
}

// Model animates a scene on a braille canvas. One render buffer is
// reused for every frame.
type Model struct {
	canvas   *braille.Canvas
	chart    *chart.ChartContext
	shapes   []Shape
	cube     *Wireframe
	lorenz   *Attractor
	camera   *Camera
	scene    Scene
	theme    Theme
	opts     Options
	interval time.Duration

	running  bool
	showHelp bool

	buf        *bytes.Buffer
	frames     int
	fps        int
	lastFPS    time.Time
	renderTime []float64
	err        error
}

// NewModel initializes the scene on an existing canvas.
func NewModel(c *braille.Canvas, theme Theme, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	buf := &bytes.Buffer{}
	buf.Grow(c.SizeHint())
	return Model{
		canvas:     c,
		chart:      chart.Wrap(c),
		shapes:     DefaultShapes(theme),
		cube:       cubeFor(theme),
		lorenz:     NewAttractor(trailLen),
		camera:     NewCamera(),
		scene:      opts.Scene,
		theme:      theme,
		opts:       opts,
		interval:   time.Second / time.Duration(opts.FPS),
		running:    true,
		buf:        buf,
		lastFPS:    time.Now(),
		renderTime: make([]float64, 0, historyCapacity+1),
	}
}

func cubeFor(t Theme) *Wireframe {
	return CreateCubeWireframe(1.5, [3]braille.Color{t.Color(0, 3), t.Color(1, 3), t.Color(2, 3)})
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "b":
			m.toggleBlend()
		case "t":
			m.theme = NextTheme(m.theme)
			Recolor(m.shapes, m.theme)
			m.cube = cubeFor(m.theme)
		case "s":
			m.scene = (m.scene + 1) % sceneCount
		case "r":
			m.shapes = DefaultShapes(m.theme)
			m.lorenz = NewAttractor(trailLen)
			m.camera = NewCamera()
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		if m.opts.FitWindow {
			m.resize(msg.Width-chromeCols, msg.Height-chromeRows)
		}
	case TickMsg:
		m.frames++
		if now := time.Time(msg); now.Sub(m.lastFPS) >= time.Second {
			m.fps = m.frames
			m.frames = 0
			m.lastFPS = now
		}
		if m.running {
			m.step()
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) toggleBlend() {
	if m.canvas.BlendMode() == braille.Overwrite {
		m.canvas.SetBlendMode(braille.KeepFirst)
	} else {
		m.canvas.SetBlendMode(braille.Overwrite)
	}
}

// resize replaces the canvas, keeping blend mode and cell renderer.
func (m *Model) resize(cols, rows int) {
	cols, rows = max(cols, minCells), max(rows, minCells)
	if cols == m.canvas.Width && rows == m.canvas.Height {
		return
	}
	next := braille.New(cols, rows)
	next.SetBlendMode(m.canvas.BlendMode())
	next.SetCellRenderer(m.canvas.CellRenderer())
	m.canvas = next
	m.chart = chart.Wrap(next)
	m.buf.Grow(next.SizeHint())
}

func (m *Model) step() {
	switch m.scene {
	case SceneCube:
		m.camera.Rotate(0.03, 0.05, 0.01)
		return
	case SceneAttractor:
		m.lorenz.Step(2)
		m.camera.Rotate(0, 0.01, 0)
		return
	}
	w, h := float64(m.canvas.PixelWidth()), float64(m.canvas.PixelHeight())
	for i := range m.shapes {
		m.shapes[i].Step(w, h)
	}
}

// draw rebuilds the scene and renders it into the shared buffer.
func (m *Model) draw() {
	m.canvas.Clear()
	m.chart.DrawGrid(10, 5, m.theme.GridColor())
	switch m.scene {
	case SceneCube:
		Render3D(m.canvas, m.cube, m.camera)
	case SceneAttractor:
		m.lorenz.Draw(m.canvas, m.camera, m.theme.Palette(8))
	default:
		for i := range m.shapes {
			m.shapes[i].Draw(m.canvas)
		}
	}

	var status *braille.StatusLine
	if m.opts.Status {
		status = &braille.StatusLine{Text: m.statusText(), Color: m.theme.HUDColor()}
	}

	start := time.Now()
	m.buf.Reset()
	m.err = m.canvas.RenderTo(m.buf, true, status)
	m.renderTime = append(m.renderTime, float64(time.Since(start).Microseconds()))
	if len(m.renderTime) > historyCapacity {
		n := copy(m.renderTime, m.renderTime[1:])
		m.renderTime = m.renderTime[:n]
	}
}

func (m *Model) statusText() string {
	return fmt.Sprintf(" FPS: %d | blend [b]: %s | scene [s]: %s | theme [t]: %s | quit [q] ",
		m.fps, m.canvas.BlendMode(), m.scene, m.theme.Name)
}

// Frame returns the most recently rendered frame.
func (m Model) Frame() string { return m.buf.String() }

func (m Model) Canvas() *braille.Canvas { return m.canvas }

func (m Model) Err() error { return m.err }

// View renders the TUI interface.
func (m Model) View() string {
	if m.buf.Len() == 0 {
		m.draw()
	}
	var s strings.Builder
	s.WriteString(HeaderStyle(m.theme).Render(
		GradientText("TERMPLOT PRIMITIVES & BLENDING", m.theme.Primary, m.theme.Secondary)) + "\n")

	state := StatusRunning.Render("RUNNING")
	if !m.running {
		state = StatusPaused.Render("PAUSED")
	}
	s.WriteString(state + "  " +
		MetricLabel.Render("cells ") + MetricValue.Render(fmt.Sprintf("%dx%d", m.canvas.Width, m.canvas.Height)) + "  " +
		MetricLabel.Render("blend ") + MetricValue.Render(m.canvas.BlendMode().String()) + "\n")

	if m.err != nil {
		s.WriteString(StatusPaused.Render(m.err.Error()) + "\n")
	}
	s.WriteString(Separator(m.canvas.Width+2) + "\n")
	s.WriteString(canvasStyle.Render(m.Frame()))

	if len(m.renderTime) > 1 {
		graph := asciigraph.Plot(m.renderTime,
			asciigraph.Height(3),
			asciigraph.Width(min(m.canvas.Width, 60)),
			asciigraph.Caption("render µs"))
		s.WriteString("\n" + graphStyle.Render(graph))
	}

	s.WriteString("\n" + KeyHint.Render("SP:Pause B:Blend S:Scene T:Theme R:Reset ?:Help Q:Quit"))
	if m.showHelp {
		help := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.Muted).
			Padding(0, 1).
			Render("Space  pause/resume\nB      toggle overwrite/keep-first\nS      switch shapes/cube/attractor\nT      cycle themes\n+/-    zoom the cube\nR      reset the scene\nQ      quit")
		return help + "\n" + s.String()
	}
	return s.String()
}
