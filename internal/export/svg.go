package export

import (
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/termplot/internal/braille"
	"github.com/san-kum/termplot/internal/chart"
)

// CanvasToSVG converts a braille canvas to SVG, one circle per set dot.
// Overlay text becomes monospace text elements.
func CanvasToSVG(canvas *braille.Canvas, opts Options) string {
	if canvas == nil {
		return ""
	}
	scale := float64(opts.scale())
	width := float64(canvas.PixelWidth()) * scale
	height := float64(canvas.PixelHeight()) * scale

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, hex(opts.Background), hex(opts.Foreground))

	dotRadius := scale * 0.4
	hidden := overlayCells(canvas)

	for y := 0; y < canvas.PixelHeight(); y++ {
		for x := 0; x < canvas.PixelWidth(); x++ {
			col, row := x/2, y/4
			if hidden[row*canvas.Width+col] || !canvas.PixelScreen(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			if clr := canvas.CellColor(col, row); clr.IsSet() {
				fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, hex(opts.paint(clr)))
			} else {
				fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius)
			}
		}
	}
	sb.WriteString("</g>\n")

	cellW, cellH := 2*scale, 4*scale
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r, clr, ok := canvas.TextAt(col, row)
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" fill="%s">`,
				float64(col)*cellW, float64(row+1)*cellH-cellH*0.2, cellH*0.8, hex(opts.paint(clr)))
			_ = xml.EscapeText(&sb, []byte(string(r)))
			sb.WriteString("</text>\n")
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// PointsToSVG draws a data series as a vector polyline, auto-ranged with
// 10% padding and y growing upward.
func PointsToSVG(points []braille.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}
	xr, yr := chart.AutoRange(points, 0.1)
	rangeX := xr.Max - xr.Min
	rangeY := yr.Max - yr.Min

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		width, height, width, height, strokeColor)

	move := true
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			move = true
			continue
		}
		x := (p.X - xr.Min) / rangeX * float64(width)
		y := float64(height) - (p.Y-yr.Min)/rangeY*float64(height)
		if move {
			fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
			move = false
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
