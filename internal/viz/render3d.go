package viz

import (
	"math"
	"sort"

	"github.com/san-kum/termplot/internal/braille"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Camera looks down the -Z axis from Distance and rotates the scene.
type Camera struct {
	Distance         float64
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, Near: 0.1, Zoom: 1.0}
}

func (c *Camera) Rotate(dx, dy, dz float64) {
	c.RotX += dx
	c.RotY += dy
	c.RotZ += dz
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// RotatePoint rotates a point around the X, then Y, then Z axis.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a world point to screen pixels on a sw by sh canvas. ok is
// false for points behind the near plane. Points off screen are returned
// as is; the canvas clips them.
func (c *Camera) Project(p Vec3, sw, sh int) (x, y, depth float64, ok bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	pScale := float64(min(sw, sh)) / 3.0
	x = rot.X*scale*pScale + float64(sw/2)
	y = -rot.Y*scale*pScale + float64(sh/2)
	return x, y, rot.Z, true
}

type Edge struct {
	Start, End Vec3
	Color      braille.Color
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{} }

func (w *Wireframe) AddEdge(s, e Vec3, c braille.Color) {
	w.Edges = append(w.Edges, Edge{s, e, c})
}

type projectedEdge struct {
	x1, y1, x2, y2 float64
	depth          float64
	color          braille.Color
}

// Render3D draws the wireframe far to near, so with Overwrite blending the
// nearest edge colors a shared cell.
func Render3D(c *braille.Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	pw, ph := c.PixelWidth(), c.PixelHeight()
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, ok1 := cam.Project(e.Start, pw, ph)
		x2, y2, d2, ok2 := cam.Project(e.End, pw, ph)
		if ok1 && ok2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Color})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		c.LineScreen(e.x1, e.y1, e.x2, e.y2, e.color)
	}
}

// CreateCubeWireframe builds a cube centered on the origin. Each group of
// parallel edges takes the next color.
func CreateCubeWireframe(size float64, colors [3]braille.Color) *Wireframe {
	w, s := NewWireframe(), size/2
	v := []Vec3{{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s}, {-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}
	groups := [3][][2]int{
		{{0, 1}, {3, 2}, {4, 5}, {7, 6}},
		{{1, 2}, {0, 3}, {5, 6}, {4, 7}},
		{{0, 4}, {1, 5}, {2, 6}, {3, 7}},
	}
	for g, edges := range groups {
		for _, e := range edges {
			w.AddEdge(v[e[0]], v[e[1]], colors[g])
		}
	}
	return w
}
