package chart

import (
	"fmt"
	"math"
	"sort"
)

// Func is a named plottable function with a sensible default domain.
type Func struct {
	Name     string
	Eval     func(float64) float64
	Min, Max float64
}

var functions = map[string]Func{
	"sin":      {"sin", math.Sin, -2 * math.Pi, 2 * math.Pi},
	"cos":      {"cos", math.Cos, -2 * math.Pi, 2 * math.Pi},
	"tan":      {"tan", clampTan, -math.Pi, math.Pi},
	"sinc":     {"sinc", sinc, -20, 20},
	"gauss":    {"gauss", func(x float64) float64 { return math.Exp(-x * x / 2) }, -4, 4},
	"parabola": {"parabola", func(x float64) float64 { return x * x }, -3, 3},
}

// clampTan drops samples near the asymptotes so they do not stretch the
// auto range.
func clampTan(x float64) float64 {
	y := math.Tan(x)
	if math.Abs(y) > 10 {
		return math.NaN()
	}
	return y
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

func Function(name string) (Func, error) {
	f, ok := functions[name]
	if !ok {
		return Func{}, fmt.Errorf("chart: unknown function %q (available: %v)", name, FunctionNames())
	}
	return f, nil
}

func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
