package motion

import (
	"math"
	"reflect"
	"testing"
)

// --- InterpolateNumber ---

func TestInterpolateNumberEndpointsAndLinearity(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"forward", 0, 10},
		{"backward", 10, 0},
		{"negative", -5, 5},
		{"equal", 3, 3},
		{"fractional", 0.25, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := InterpolateNumber(tt.a, tt.b)
			if got := f(0); got != tt.a {
				t.Errorf("f(0) = %v, want %v", got, tt.a)
			}
			if got := f(1); got != tt.b {
				t.Errorf("f(1) = %v, want %v", got, tt.b)
			}
			if got, want := f(0.5), (tt.a+tt.b)/2; math.Abs(got-want) > 1e-12 {
				t.Errorf("f(0.5) = %v, want %v", got, want)
			}
		})
	}
}

func TestInterpolateNumberExtrapolates(t *testing.T) {
	// Progress is never clamped.
	f := InterpolateNumber(0, 10)
	if got := f(2); got != 20 {
		t.Errorf("f(2) = %v, want 20", got)
	}
	if got := f(-1); got != -10 {
		t.Errorf("f(-1) = %v, want -10", got)
	}
}

func TestInterpolateRound(t *testing.T) {
	f := InterpolateRound(0, 10)
	if got := f(0.33); got != 3 {
		t.Errorf("f(0.33) = %v, want 3", got)
	}
	if got := f(0.35); got != 4 {
		t.Errorf("f(0.35) = %v, want 4", got)
	}
}

// --- InterpolateRGB ---

func TestInterpolateRGBEndpoints(t *testing.T) {
	tests := []struct {
		name string
		a, b any
	}{
		{"hex strings", "#ff0000", "#0000ff"},
		{"named", "steelblue", "tomato"},
		{"short hex", "#f00", "#00f"},
		{"mixed forms", Color{10, 20, 30}, "rgb(200, 100, 50)"},
		{"hsl endpoint", "hsl(120, 100%, 50%)", "#102030"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ca, _ := coerceColor(tt.a)
			cb, _ := coerceColor(tt.b)
			f := InterpolateRGB(tt.a, tt.b)
			if got := f(0); got != ca.Hex() {
				t.Errorf("f(0) = %q, want normalized a %q", got, ca.Hex())
			}
			if got := f(1); got != cb.Hex() {
				t.Errorf("f(1) = %q, want normalized b %q", got, cb.Hex())
			}
		})
	}
}

func TestInterpolateRGBMidpoint(t *testing.T) {
	f := InterpolateRGB("#000000", "#ffffff")
	if got := f(0.5); got != "#808080" {
		t.Errorf("f(0.5) = %q, want #808080", got)
	}
}

// --- InterpolateArray ---

func TestInterpolateArrayPairwise(t *testing.T) {
	f := InterpolateArray([]any{0.0, 10.0}, []any{10.0, 20.0})
	got := f(0.5)
	want := []any{5.0, 15.0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("f(0.5) = %v, want %v", got, want)
	}
}

// Surplus elements of the longer array are copied verbatim, never
// interpolated. This is inherited behavior that downstream callers depend
// on; the result length always equals the longer input.
func TestInterpolateArraySurplusCopied(t *testing.T) {
	t.Run("b longer", func(t *testing.T) {
		f := InterpolateArray([]any{0.0}, []any{10.0, 99.0, 98.0})
		got := f(0.5)
		want := []any{5.0, 99.0, 98.0}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("f(0.5) = %v, want %v", got, want)
		}
	})
	t.Run("a longer", func(t *testing.T) {
		f := InterpolateArray([]any{0.0, 7.0, 8.0}, []any{10.0})
		got := f(0.5)
		want := []any{5.0, 7.0, 8.0}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("f(0.5) = %v, want %v", got, want)
		}
	})
}

func TestInterpolateArrayNestedDispatch(t *testing.T) {
	// Elements go back through generic dispatch, so colors and strings work.
	f := InterpolateArray([]any{"#000000"}, []any{"#ffffff"})
	got := f(0.5)
	if got[0] != "#808080" {
		t.Errorf("nested color element = %v, want #808080", got[0])
	}
}

// --- InterpolateObject ---

func TestInterpolateObjectKeyRules(t *testing.T) {
	a := map[string]any{"x": 0.0, "onlyA": 1.0}
	b := map[string]any{"x": 10.0, "onlyB": 2.0}
	f := InterpolateObject(a, b)
	got := f(0.5)

	if got["x"] != 5.0 {
		t.Errorf("shared key x = %v, want 5", got["x"])
	}
	if got["onlyA"] != 1.0 {
		t.Errorf("a-only key = %v, want constant 1", got["onlyA"])
	}
	if got["onlyB"] != 2.0 {
		t.Errorf("b-only key = %v, want constant 2", got["onlyB"])
	}
}

// --- generic dispatch ---

func TestInterpolateDispatch(t *testing.T) {
	tests := []struct {
		name   string
		a, b   any
		k      float64
		expect any
	}{
		{"numbers", 0.0, 10.0, 0.5, 5.0},
		{"ints coerce", 0, 10, 0.5, 5.0},
		{"colors", "#000000", "#ffffff", 0.5, "#808080"},
		{"strings", "a: 1px", "a: 10px", 0.5, "a: 5.5px"},
		{"malformed color falls through", "#zzz", "#yyy", 0.5, "#yyy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(tt.a, tt.b)(tt.k); got != tt.expect {
				t.Errorf("Interpolate(%v, %v)(%v) = %v, want %v", tt.a, tt.b, tt.k, got, tt.expect)
			}
		})
	}
}

func TestInterpolateDispatchShapes(t *testing.T) {
	if got := Interpolate([]any{0.0, 10.0}, []any{10.0, 20.0})(0.5); !reflect.DeepEqual(got, []any{5.0, 15.0}) {
		t.Errorf("array dispatch = %v", got)
	}
	got := Interpolate(map[string]any{"x": 0.0}, map[string]any{"x": 10.0})(0.5)
	if m, ok := got.(map[string]any); !ok || m["x"] != 5.0 {
		t.Errorf("object dispatch = %v", got)
	}
}

// The most recently registered detector wins, allowing overrides of the
// built-in chain.
func TestRegisterDetectorLastWins(t *testing.T) {
	defer func(saved []Detector) { detectors = saved }(detectors)

	RegisterDetector(func(a, b any) (Interpolator, bool) {
		if b == "special" {
			return func(t float64) any { return "overridden" }, true
		}
		return nil, false
	})

	if got := Interpolate("x", "special")(0.5); got != "overridden" {
		t.Errorf("override detector not consulted first, got %v", got)
	}
	// Everything else still reaches the default chain.
	if got := Interpolate(0.0, 10.0)(0.5); got != 5.0 {
		t.Errorf("default chain broken after override, got %v", got)
	}
}

func TestRegisterDetectorNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil detector")
		}
	}()
	RegisterDetector(nil)
}
