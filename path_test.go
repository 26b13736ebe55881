package motion

import (
	"math"
	"testing"
)

// --- PathLinear ---

func TestPathLinear(t *testing.T) {
	pts := []float64{0, 10, 20}
	tests := []struct {
		name string
		k    float64
		want float64
	}{
		{"start", 0, 0},
		{"end", 1, 20},
		{"segment boundary", 0.5, 10},
		{"mid first segment", 0.25, 5},
		{"mid second segment", 0.75, 15},
		{"extrapolate below", -0.25, -5},
		{"extrapolate above", 1.25, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathLinear(pts, tt.k); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("PathLinear(%v) = %v, want %v", tt.k, got, tt.want)
			}
		})
	}
}

// --- PathBezier ---

func TestPathBezierEndpoints(t *testing.T) {
	pts := []float64{0, 50, 10}
	if got := PathBezier(pts, 0); got != 0 {
		t.Errorf("PathBezier(0) = %v, want 0", got)
	}
	if got := PathBezier(pts, 1); got != 10 {
		t.Errorf("PathBezier(1) = %v, want 10", got)
	}
}

func TestPathBezierQuadraticMidpoint(t *testing.T) {
	// B(0.5) = 0.25*p0 + 0.5*p1 + 0.25*p2 for a quadratic.
	pts := []float64{0, 40, 20}
	want := 0.25*0 + 0.5*40 + 0.25*20
	if got := PathBezier(pts, 0.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("PathBezier(0.5) = %v, want %v", got, want)
	}
}

func TestPathBezierControlPointsNotInterpolatedThrough(t *testing.T) {
	// The curve pulls toward the middle control point without reaching it.
	pts := []float64{0, 100, 0}
	mid := PathBezier(pts, 0.5)
	if mid <= 0 || mid >= 100 {
		t.Errorf("PathBezier midpoint = %v, want strictly between 0 and 100", mid)
	}
}

// --- PathCatmullRom ---

func TestPathCatmullRomPassesThroughPoints(t *testing.T) {
	pts := []float64{0, 10, 5, 20}
	m := float64(len(pts) - 1)
	for i, p := range pts {
		k := float64(i) / m
		if got := PathCatmullRom(pts, k); math.Abs(got-p) > 1e-9 {
			t.Errorf("PathCatmullRom(%v) = %v, want knot %v", k, got, p)
		}
	}
}

func TestPathCatmullRomClosedLoop(t *testing.T) {
	// First == last closes the spline; the endpoints meet.
	pts := []float64{0, 10, 20, 0}
	start := PathCatmullRom(pts, 0)
	end := PathCatmullRom(pts, 1)
	if math.Abs(start-end) > 1e-9 {
		t.Errorf("closed loop endpoints differ: %v vs %v", start, end)
	}
}

func TestPathCatmullRomOutOfRange(t *testing.T) {
	pts := []float64{0, 10, 20}
	// Out-of-range progress reflects off the ends instead of exploding.
	lo := PathCatmullRom(pts, -0.1)
	hi := PathCatmullRom(pts, 1.1)
	if math.IsNaN(lo) || math.IsNaN(hi) {
		t.Fatalf("out-of-range progress produced NaN: %v, %v", lo, hi)
	}
}
