package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/plotter"
)

func TestResolveMaxYExplicit(t *testing.T) {
	xys := plotter.XYs{{X: 0, Y: 500}}
	if got := resolveMaxY(42, xys); got != 42 {
		t.Errorf("explicit flag: got %v, want 42", got)
	}
}

func TestResolveMaxYNegativePassesThrough(t *testing.T) {
	// No validation here — the figure stores whatever it is given and
	// the plotting library decides what a negative range means.
	if got := resolveMaxY(-5, nil); got != -5 {
		t.Errorf("negative flag: got %v, want -5", got)
	}
}

func TestResolveMaxYFromData(t *testing.T) {
	xys := plotter.XYs{{X: 0, Y: 10}, {X: 60, Y: 200}, {X: 120, Y: 40}}
	if got := resolveMaxY(0, xys); got != 210 {
		t.Errorf("derived: got %v, want 210", got)
	}
}

func TestResolveMaxYBlankFigure(t *testing.T) {
	if got := resolveMaxY(0, nil); got != defaultMaxY {
		t.Errorf("blank figure: got %v, want %v", got, defaultMaxY)
	}
}

func TestRunWritesSVG(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "counts.csv")
	if err := os.WriteFile(data, []byte("0,5\n3600,12\n7200,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.svg")

	if err := run(0, data, out, ""); err != nil {
		t.Fatalf("run: %v", err)
	}

	body, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	svg := string(body)
	if !strings.Contains(svg, "<svg") {
		t.Error("output does not look like SVG")
	}
	if !strings.Contains(svg, "00:00:00") {
		t.Error("output missing first hour tick label")
	}
}

func TestRunBlankFigure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "blank.svg")

	if err := run(100, "", out, ""); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file: %v", err)
	}
}

func TestRunMissingDataFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.svg")

	err := run(0, filepath.Join(t.TempDir(), "nope.csv"), out, "")
	if err == nil {
		t.Fatal("expected error for missing data file")
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("output file should not exist after a load error")
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.bogus")

	err := run(100, "", out, "")
	if err == nil {
		t.Fatal("expected error for unknown output format")
	}
}
