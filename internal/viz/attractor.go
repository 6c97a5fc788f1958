package viz

import "github.com/san-kum/termplot/internal/braille"

// attractorScale maps Lorenz coordinates into the camera's unit cube.
const attractorScale = 1.0 / 25

// Attractor integrates the Lorenz system with RK4 and keeps a bounded
// trail of recent states.
type Attractor struct {
	Sigma, Rho, Beta float64
	Dt               float64

	state Vec3
	trail []Vec3
	limit int
}

func NewAttractor(trail int) *Attractor {
	return &Attractor{
		Sigma: 10,
		Rho:   28,
		Beta:  8.0 / 3.0,
		Dt:    0.01,
		state: Vec3{1, 1, 1},
		trail: make([]Vec3, 0, trail),
		limit: trail,
	}
}

func (a *Attractor) derive(s Vec3) Vec3 {
	return Vec3{a.Sigma * (s.Y - s.X), s.X*(a.Rho-s.Z) - s.Y, s.X*s.Y - a.Beta*s.Z}
}

// rk4 advances the state by one Dt.
func (a *Attractor) rk4() {
	x, dt := a.state, a.Dt
	k1 := a.derive(x)
	k2 := a.derive(x.Add(k1.Scale(dt / 2)))
	k3 := a.derive(x.Add(k2.Scale(dt / 2)))
	k4 := a.derive(x.Add(k3.Scale(dt)))
	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	a.state = x.Add(sum.Scale(dt / 6))
}

// Step integrates n substeps and records the final state.
func (a *Attractor) Step(n int) {
	for i := 0; i < n; i++ {
		a.rk4()
	}
	if len(a.trail) == a.limit && a.limit > 0 {
		copy(a.trail, a.trail[1:])
		a.trail = a.trail[:len(a.trail)-1]
	}
	a.trail = append(a.trail, a.state)
}

func (a *Attractor) State() Vec3 { return a.state }

func (a *Attractor) Trail() []Vec3 { return a.trail }

// Draw projects the trail and connects consecutive points, older segments
// taking earlier palette colors.
func (a *Attractor) Draw(c *braille.Canvas, cam *Camera, palette []braille.Color) {
	if c == nil || cam == nil || len(a.trail) < 2 {
		return
	}
	pw, ph := c.PixelWidth(), c.PixelHeight()
	center := Vec3{0, 0, -a.Rho + 1}
	project := func(p Vec3) (float64, float64, bool) {
		p = p.Add(center).Scale(attractorScale)
		x, y, _, ok := cam.Project(Vec3{p.X, p.Z, p.Y}, pw, ph)
		return x, y, ok
	}

	px, py, pok := project(a.trail[0])
	for i := 1; i < len(a.trail); i++ {
		x, y, ok := project(a.trail[i])
		if ok && pok {
			color := braille.NoColor
			if len(palette) > 0 {
				color = palette[i*len(palette)/len(a.trail)]
			}
			c.LineScreen(px, py, x, y, color)
		}
		px, py, pok = x, y, ok
	}
}
