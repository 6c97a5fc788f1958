package chart_test

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/termplot/internal/braille"
	"github.com/san-kum/termplot/internal/chart"
	"github.com/san-kum/termplot/internal/config"
)

func countPixels(c *braille.Canvas) int {
	n := 0
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			if c.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

var _ = Describe("AutoRange", func() {
	It("defaults to the unit square without finite points", func() {
		x, y := chart.AutoRange(nil, 0.05)
		Expect(x).To(Equal(chart.Range{Min: 0, Max: 1}))
		Expect(y).To(Equal(chart.Range{Min: 0, Max: 1}))

		x, y = chart.AutoRange([]braille.Point{{X: math.NaN(), Y: 1}, {X: 2, Y: math.Inf(1)}}, 0.05)
		Expect(x).To(Equal(chart.Range{Min: 0, Max: 1}))
		Expect(y).To(Equal(chart.Range{Min: 0, Max: 1}))
	})

	It("pads the bounding box by the extent", func() {
		x, y := chart.AutoRange([]braille.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 99}, {X: 10, Y: 20}}, 0.05)
		Expect(x.Min).To(BeNumerically("~", -0.5, 1e-12))
		Expect(x.Max).To(BeNumerically("~", 10.5, 1e-12))
		Expect(y.Min).To(BeNumerically("~", -1, 1e-12))
		Expect(y.Max).To(BeNumerically("~", 21, 1e-12))
	})

	It("treats a degenerate extent as one unit", func() {
		x, y := chart.AutoRange([]braille.Point{{X: 3, Y: 4}}, 0.5)
		Expect(x).To(Equal(chart.Range{Min: 2.5, Max: 3.5}))
		Expect(y).To(Equal(chart.Range{Min: 3.5, Max: 4.5}))
	})
})

var _ = Describe("ChartContext", func() {
	var ctx *chart.ChartContext

	BeforeEach(func() {
		ctx = chart.New(10, 5)
		ctx.Padding = 0
	})

	Describe("Scatter", func() {
		It("maps the data extremes to the canvas corners", func() {
			Expect(ctx.Scatter([]braille.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, braille.Red)).To(Succeed())
			Expect(ctx.Canvas.Pixel(0, 0)).To(BeTrue())
			Expect(ctx.Canvas.Pixel(19, 19)).To(BeTrue())
			Expect(countPixels(ctx.Canvas)).To(Equal(2))
		})

		It("reports missing data", func() {
			Expect(ctx.Scatter(nil, braille.Red)).To(MatchError(chart.ErrNoData))
			Expect(ctx.Scatter([]braille.Point{{X: math.NaN(), Y: 0}}, braille.Red)).To(MatchError(chart.ErrNoData))
			Expect(ctx.Canvas.Empty()).To(BeTrue())
		})
	})

	Describe("LineChart", func() {
		It("draws a flat series along the bottom row", func() {
			Expect(ctx.LineChart([]braille.Point{{X: 0, Y: 5}, {X: 1, Y: 5}}, braille.NoColor)).To(Succeed())
			for x := 0; x < 20; x++ {
				Expect(ctx.Canvas.Pixel(x, 0)).To(BeTrue(), "x=%d", x)
			}
			Expect(countPixels(ctx.Canvas)).To(Equal(20))
		})

		It("needs two points", func() {
			Expect(ctx.LineChart([]braille.Point{{X: 1, Y: 1}}, braille.NoColor)).To(MatchError(chart.ErrNoData))
		})

		It("skips segments touching non-finite points", func() {
			pts := []braille.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}, {X: 1, Y: 1}}
			Expect(ctx.LineChart(pts, braille.NoColor)).To(MatchError(chart.ErrNoData))
			Expect(ctx.Canvas.Empty()).To(BeTrue())
		})
	})

	Describe("Polygon", func() {
		It("closes the outline", func() {
			tri := []braille.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
			Expect(ctx.Polygon(tri, braille.NoColor)).To(Succeed())
			Expect(ctx.Canvas.Pixel(0, 10)).To(BeTrue())
			Expect(ctx.Canvas.Pixel(10, 9)).To(BeTrue())
			Expect(ctx.Canvas.Pixel(10, 0)).To(BeTrue())
		})
	})

	Describe("BarChart", func() {
		It("scales bars to the tallest value", func() {
			ctx = chart.New(4, 2)
			Expect(ctx.BarChart([]chart.Bar{{Value: 4, Color: braille.Red}, {Value: 2, Color: braille.Blue}})).To(Succeed())

			Expect(ctx.Canvas.Pixel(0, 7)).To(BeTrue())
			Expect(ctx.Canvas.Pixel(5, 3)).To(BeTrue())
			Expect(ctx.Canvas.Pixel(5, 4)).To(BeFalse())
			Expect(countPixels(ctx.Canvas)).To(Equal(48))
			Expect(ctx.Canvas.CellColor(0, 0)).To(Equal(braille.Red))
			Expect(ctx.Canvas.CellColor(3, 1)).To(Equal(braille.Blue))
			Expect(ctx.Canvas.CellColor(3, 0)).To(Equal(braille.NoColor))
		})

		It("leaves gaps for unusable values", func() {
			ctx = chart.New(4, 2)
			Expect(ctx.BarChart([]chart.Bar{{Value: -1}, {Value: 2}})).To(Succeed())
			Expect(ctx.Canvas.Pixel(0, 0)).To(BeFalse())
			Expect(ctx.Canvas.Pixel(4, 0)).To(BeTrue())
		})

		It("rejects all-zero input", func() {
			Expect(ctx.BarChart([]chart.Bar{{Value: 0}, {Value: math.NaN()}})).To(MatchError(chart.ErrNoData))
			Expect(ctx.BarChart(nil)).To(MatchError(chart.ErrNoData))
		})
	})

	Describe("PieChart", func() {
		It("draws a rim and a spoke per slice", func() {
			Expect(ctx.PieChart([]chart.Bar{{Value: 1, Color: braille.Red}})).To(Succeed())
			Expect(ctx.Canvas.Pixel(15, 10)).To(BeTrue())
			Expect(ctx.Canvas.Pixel(10, 19)).To(BeTrue())
			Expect(ctx.Canvas.CellColor(7, 2)).To(Equal(braille.Red))
		})

		It("rejects an empty pie", func() {
			Expect(ctx.PieChart([]chart.Bar{{Value: -3}})).To(MatchError(chart.ErrNoData))
		})
	})

	Describe("DrawCircle", func() {
		It("uses normalized center and radius", func() {
			ctx.DrawCircle(braille.Pt(0.5, 0.5), 0.25, braille.NoColor)
			Expect(ctx.Canvas.Pixel(14, 9)).To(BeTrue())
			Expect(ctx.Canvas.Pixel(4, 9)).To(BeTrue())
			Expect(ctx.Canvas.Pixel(9, 9)).To(BeFalse())
		})
	})

	Describe("PlotFunction", func() {
		It("plots finite samples", func() {
			Expect(ctx.PlotFunction(math.Sin, 0, 2*math.Pi, braille.Green)).To(Succeed())
			Expect(ctx.Canvas.Empty()).To(BeFalse())
		})

		It("reports a function with no finite samples", func() {
			nan := func(float64) float64 { return math.NaN() }
			Expect(ctx.PlotFunction(nan, 0, 1, braille.Green)).To(MatchError(chart.ErrNoData))
		})
	})

	Describe("SetRange", func() {
		It("keeps the pinned range across calls", func() {
			ctx.SetRange(chart.Range{Min: 0, Max: 2}, chart.Range{Min: 0, Max: 2})
			Expect(ctx.Scatter([]braille.Point{{X: 1, Y: 1}}, braille.NoColor)).To(Succeed())
			Expect(ctx.Canvas.Pixel(10, 10)).To(BeTrue())

			ctx.ResetRange()
			x, _ := ctx.Ranges([]braille.Point{{X: 1, Y: 1}})
			Expect(x).To(Equal(chart.Range{Min: 1, Max: 1}))
		})
	})
})

var _ = Describe("Decorations", func() {
	It("draws axes with four labels per axis", func() {
		ctx := chart.New(20, 6)
		ctx.DrawAxes(chart.Range{Min: 0, Max: 3}, chart.Range{Min: 0, Max: 3}, braille.NoColor)

		for y := 0; y < 24; y++ {
			Expect(ctx.Canvas.Pixel(0, y)).To(BeTrue())
		}
		for x := 0; x < 40; x++ {
			Expect(ctx.Canvas.Pixel(x, 0)).To(BeTrue())
		}

		lines := strings.Split(strings.TrimSuffix(ctx.Canvas.RenderPlain(), "\n"), "\n")
		Expect(lines).To(HaveLen(6))
		Expect(lines[0]).To(HavePrefix("3.0"))
		Expect(lines[5]).To(HaveSuffix("3.0"))
		Expect(lines[5]).To(ContainSubstring("1.0"))
	})

	It("draws grid divisions", func() {
		ctx := chart.New(4, 2)
		ctx.DrawGrid(2, 2, braille.NoColor)
		for i := 0; i < 8; i++ {
			Expect(ctx.Canvas.Pixel(4, i)).To(BeTrue())
			Expect(ctx.Canvas.Pixel(i, 4)).To(BeTrue())
		}
		Expect(countPixels(ctx.Canvas)).To(Equal(15))
	})

	It("places text at normalized cells", func() {
		ctx := chart.New(10, 3)
		ctx.Text("hi", 1, 1, braille.Yellow)
		r, color, ok := ctx.Canvas.TextAt(9, 0)
		Expect(ok).To(BeTrue())
		Expect(r).To(Equal('h'))
		Expect(color).To(Equal(braille.Yellow))
	})

	It("centers the title on the top row", func() {
		ctx := chart.New(10, 3)
		ctx.Title("abcd", braille.NoColor)
		r, _, ok := ctx.Canvas.TextAt(3, 0)
		Expect(ok).To(BeTrue())
		Expect(r).To(Equal('a'))
	})
})

var _ = Describe("Functions", func() {
	It("lists every built-in function", func() {
		Expect(chart.FunctionNames()).To(Equal([]string{"cos", "gauss", "parabola", "sin", "sinc", "tan"}))
	})

	It("rejects unknown names", func() {
		_, err := chart.Function("zeta")
		Expect(err).To(HaveOccurred())
	})

	It("samples inclusive endpoints", func() {
		f, err := chart.Function("parabola")
		Expect(err).NotTo(HaveOccurred())
		pts := chart.Sample(f.Eval, -1, 1, 4)
		Expect(pts).To(HaveLen(5))
		Expect(pts[0]).To(Equal(braille.Pt(-1, 1)))
		Expect(pts[2]).To(Equal(braille.Pt(0, 0)))
	})
})

var _ = Describe("Draw", func() {
	palette := []braille.Color{braille.Cyan, braille.Magenta}

	It("renders a line document with axes and a title", func() {
		doc, err := config.ParseChart([]byte(`
title: demo
kind: line
axes: true
grid: {x: 3, y: 3}
series:
  - points: [[0, 0], [1, 2], [2, 1]]
  - color: red
    points: [[0, 1], [2, 0]]
`))
		Expect(err).NotTo(HaveOccurred())

		ctx := chart.New(30, 8)
		Expect(chart.Draw(ctx, doc, palette)).To(Succeed())
		Expect(ctx.Canvas.Empty()).To(BeFalse())
		Expect(ctx.Canvas.RenderPlain()).To(ContainSubstring("demo"))
	})

	It("colors bars from the palette", func() {
		doc, err := config.ParseChart([]byte("kind: bar\nseries: [{values: [1, 1]}]\n"))
		Expect(err).NotTo(HaveOccurred())

		ctx := chart.New(4, 1)
		Expect(chart.Draw(ctx, doc, palette)).To(Succeed())
		Expect(ctx.Canvas.CellColor(0, 0)).To(Equal(braille.Cyan))
		Expect(ctx.Canvas.CellColor(3, 0)).To(Equal(braille.Magenta))
	})

	It("fails on unknown functions", func() {
		doc, err := config.ParseChart([]byte("kind: function\nseries: [{function: zeta}]\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(chart.Draw(chart.New(10, 4), doc, nil)).To(HaveOccurred())
	})

	It("plots named functions over their default domain", func() {
		doc, err := config.ParseChart([]byte("kind: function\nseries: [{function: gauss}, {function: sinc, min: -5, max: 5}]\n"))
		Expect(err).NotTo(HaveOccurred())
		ctx := chart.New(20, 6)
		Expect(chart.Draw(ctx, doc, palette)).To(Succeed())
		Expect(ctx.Canvas.Empty()).To(BeFalse())
	})
})
