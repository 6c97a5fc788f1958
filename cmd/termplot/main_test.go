package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/termplot/internal/config"
)

const lineChart = `
title: latency
kind: line
series:
  - name: p99
    color: red
    points: [[0, 1], [1, 4], [2, 2], [3, 5]]
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func hasBraille(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r > 0x2800 && r <= 0x28ff })
}

func TestRenderCommands(t *testing.T) {
	dir := t.TempDir()
	chartPath := filepath.Join(dir, "latency.yaml")
	if err := os.WriteFile(chartPath, []byte(lineChart), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		rows    int
		noColor bool
	}{
		{"demo", []string{"demo", "--width", "30", "--height", "8"}, 8, false},
		{"root runs demo", []string{"--width", "24", "--height", "6"}, 6, false},
		{"demo mono", []string{"demo", "--width", "30", "--height", "8", "--no-color"}, 8, true},
		{"plot sin", []string{"plot", "sin", "--width", "40", "--height", "10"}, 10, false},
		{"plot sin mono", []string{"plot", "sin", "--width", "40", "--height", "10", "--no-color"}, 10, true},
		{"plot domain", []string{"plot", "parabola", "--min", "-1", "--max", "2", "--width", "20", "--height", "5"}, 5, false},
		{"chart document", []string{"chart", chartPath, "--width", "32", "--height", "9"}, 9, false},
		{"preset", []string{"demo", "--preset", "compact"}, config.GetPreset("compact").Height, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute %v: %v", tt.args, err)
			}
			if !hasBraille(out) {
				t.Fatalf("no braille glyphs in output:\n%s", out)
			}
			if n := strings.Count(out, "\n"); n != tt.rows {
				t.Errorf("expected %d rows, got %d newlines", tt.rows, n)
			}
			if tt.noColor && strings.Contains(out, "\x1b[") {
				t.Error("--no-color output contains escape sequences")
			}
			if i := strings.LastIndex(out, "\x1b["); i >= 0 && !strings.HasPrefix(out[i:], "\x1b[0m") {
				t.Error("output leaves a color active at the end")
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown function", []string{"plot", "bogus"}},
		{"empty domain", []string{"plot", "sin", "--min", "2", "--max", "1"}},
		{"unknown preset", []string{"demo", "--preset", "nope"}},
		{"bad blend", []string{"demo", "--blend", "mix"}},
		{"missing chart", []string{"chart", filepath.Join(t.TempDir(), "missing.yaml")}},
		{"unknown scene", []string{"live", "--scene", "teapot"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("expected an error for %v", tt.args)
			}
		})
	}
}

func TestChartASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latency.yaml")
	if err := os.WriteFile(path, []byte(lineChart), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "chart", path, "--ascii")
	if err != nil {
		t.Fatal(err)
	}
	if hasBraille(out) || !strings.Contains(out, "latency") {
		t.Errorf("expected an asciigraph plot with its caption:\n%s", out)
	}
}

func TestPresetsAndInit(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("preset %s missing from listing", name)
		}
	}

	path := filepath.Join(t.TempDir(), "termplot.yaml")
	if _, err := execute(t, "init", path, "--preset", "retro", "--width", "33"); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	retro := config.GetPreset("retro")
	if cfg.Width != 33 || cfg.Height != retro.Height || cfg.Renderer != retro.Renderer {
		t.Errorf("saved config %+v does not merge preset and flags", cfg)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"demo.png", "demo.svg"} {
		path := filepath.Join(dir, name)
		if _, err := execute(t, "export", "--out", path, "--width", "10", "--height", "4"); err != nil {
			t.Fatalf("export %s: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s not written", name)
		}
	}
	if _, err := execute(t, "export", "--out", filepath.Join(dir, "demo.bmp")); err == nil {
		t.Error("unsupported extension should fail")
	}
}
