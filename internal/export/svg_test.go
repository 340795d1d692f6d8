package export

import (
	"strings"
	"testing"
)

func TestProfileSVG(t *testing.T) {
	curves := []Curve{
		{X: []float64{0, 1, 2}, Y: []float64{0, 0.5, 1}, Label: "u/u_inf", Color: "#1f77b4"},
		{X: []float64{0, 1, 2}, Y: []float64{1.2, 1.1, 1.0}, Label: "T/T_inf", Color: "#d62728"},
	}

	svg := ProfileSVG(curves, 640, 480)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if strings.Count(svg, "<path") != 2 {
		t.Errorf("expected 2 paths, got %d", strings.Count(svg, "<path"))
	}
	if !strings.Contains(svg, "u/u_inf") || !strings.Contains(svg, "T/T_inf") {
		t.Error("curve labels missing")
	}
	if !strings.Contains(svg, `width="640" height="480"`) {
		t.Error("dimensions missing")
	}
}

func TestProfileSVGEmpty(t *testing.T) {
	if svg := ProfileSVG(nil, 100, 100); svg != "" {
		t.Error("expected empty output for no curves")
	}
	if svg := ProfileSVG([]Curve{{X: []float64{1}, Y: []float64{1}}}, 100, 100); svg != "" {
		t.Error("expected empty output for degenerate curve")
	}
}

func TestProfileSVGFlatCurve(t *testing.T) {
	curves := []Curve{{X: []float64{0, 1}, Y: []float64{2, 2}}}
	svg := ProfileSVG(curves, 100, 100)
	if !strings.Contains(svg, "<path") {
		t.Error("flat curve should still render")
	}
}
