package motion

import (
	"fmt"
	"math"
)

// Interpolator maps normalized progress to a value. Progress is commonly in
// [0, 1] but is never clamped; callers may extrapolate. Interpolators are
// pure closures over their two endpoints and are safe to call repeatedly
// and in any order.
type Interpolator func(t float64) any

// Detector inspects an endpoint pair and either claims it, returning an
// Interpolator, or declines with ok=false so the next detector is consulted.
type Detector func(a, b any) (Interpolator, bool)

// detectors is the ordered probe list. Interpolate consults it from the end,
// so the most recently registered detector wins. The defaults installed by
// init occupy the front.
var detectors []Detector

// RegisterDetector appends a detector to the dispatch chain. Detectors
// registered later take precedence over earlier ones, including the
// built-in chain, which allows callers to override any default behavior.
func RegisterDetector(d Detector) {
	if d == nil {
		panic("motion: RegisterDetector called with nil detector")
	}
	detectors = append(detectors, d)
}

func init() {
	// Reverse priority order: the color probe is consulted first,
	// the number/string fallback last.
	detectors = append(detectors,
		detectFallback,
		detectObject,
		detectArray,
		detectColor,
	)
}

// Interpolate dispatches on the runtime shape of b (colors, arrays, maps,
// numbers, strings) and returns an interpolator between a and b. It never
// fails: anything unrecognized degrades to string interpolation over the
// fmt.Sprint forms of the endpoints.
func Interpolate(a, b any) Interpolator {
	for i := len(detectors) - 1; i >= 0; i-- {
		if fn, ok := detectors[i](a, b); ok {
			return fn
		}
	}
	// detectFallback always claims, so this is unreachable unless the
	// default chain has been cleared.
	return func(t float64) any { return b }
}

// InterpolateNumber returns the linear interpolator a + (b-a)*t.
// t is not clamped.
func InterpolateNumber(a, b float64) func(t float64) float64 {
	d := b - a
	return func(t float64) float64 { return a + d*t }
}

// InterpolateRound is InterpolateNumber with each output rounded to the
// nearest integer. Useful for pixel positions and other integral targets.
func InterpolateRound(a, b float64) func(t float64) float64 {
	f := InterpolateNumber(a, b)
	return func(t float64) float64 { return math.Round(f(t)) }
}

// InterpolateRGB interpolates channel-wise between two colors, each given as
// a Color, an HSL, or any string ParseColor accepts. Output is the lowercase
// "#rrggbb" encoding at every step. Endpoints that fail to coerce are
// treated as black.
func InterpolateRGB(a, b any) func(t float64) string {
	ca, _ := coerceColor(a)
	cb, _ := coerceColor(b)
	r := InterpolateNumber(float64(ca.R), float64(cb.R))
	g := InterpolateNumber(float64(ca.G), float64(cb.G))
	bl := InterpolateNumber(float64(ca.B), float64(cb.B))
	return func(t float64) string {
		return rgbFloat(r(t), g(t), bl(t)).Hex()
	}
}

func coerceColor(v any) (Color, bool) {
	switch c := v.(type) {
	case Color:
		return RGB(c.R, c.G, c.B), true
	case HSL:
		return c.RGB(), true
	case string:
		return ParseColor(c)
	default:
		return Color{}, false
	}
}

// InterpolateArray interpolates two slices element-wise up to the shorter
// length. Surplus elements from the longer input are copied verbatim at
// their original indices, NOT interpolated — a long-standing quirk of the
// original behavior that downstream callers rely on, so the result slice
// always has the length of the longer input.
func InterpolateArray(a, b []any) func(t float64) []any {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	total := len(a)
	if len(b) > total {
		total = len(b)
	}

	fns := make([]Interpolator, n)
	for i := 0; i < n; i++ {
		fns[i] = Interpolate(a[i], b[i])
	}
	rest := make([]any, total)
	for i := n; i < len(a); i++ {
		rest[i] = a[i]
	}
	for i := n; i < len(b); i++ {
		rest[i] = b[i]
	}

	return func(t float64) []any {
		out := make([]any, total)
		for i := 0; i < n; i++ {
			out[i] = fns[i](t)
		}
		copy(out[n:], rest[n:])
		return out
	}
}

// InterpolateObject interpolates two maps key-wise. Keys present in both
// maps are interpolated; a key present on only one side is carried through
// as a constant, preferring a's value when both rules would apply.
func InterpolateObject(a, b map[string]any) func(t float64) map[string]any {
	fns := make(map[string]Interpolator)
	consts := make(map[string]any)

	for k, av := range a {
		if bv, ok := b[k]; ok {
			fns[k] = Interpolate(av, bv)
		} else {
			consts[k] = av
		}
	}
	for k, bv := range b {
		if _, ok := a[k]; !ok {
			consts[k] = bv
		}
	}

	return func(t float64) map[string]any {
		out := make(map[string]any, len(fns)+len(consts))
		for k, fn := range fns {
			out[k] = fn(t)
		}
		for k, v := range consts {
			out[k] = v
		}
		return out
	}
}

// --- default detector chain ---

// detectColor classifies by b alone: a color-valued b claims the pair even
// when a does not coerce (it then normalizes to black).
func detectColor(a, b any) (Interpolator, bool) {
	if _, ok := coerceColor(b); !ok {
		return nil, false
	}
	fn := InterpolateRGB(a, b)
	return func(t float64) any { return fn(t) }, true
}

func detectArray(a, b any) (Interpolator, bool) {
	bs, ok := toAnySlice(b)
	if !ok {
		return nil, false
	}
	as, _ := toAnySlice(a)
	fn := InterpolateArray(as, bs)
	return func(t float64) any { return fn(t) }, true
}

func detectObject(a, b any) (Interpolator, bool) {
	bm, ok := b.(map[string]any)
	if !ok {
		return nil, false
	}
	am, _ := a.(map[string]any)
	fn := InterpolateObject(am, bm)
	return func(t float64) any { return fn(t) }, true
}

func detectFallback(a, b any) (Interpolator, bool) {
	bf, bok := toFloat(b)
	if bok {
		if af, ok := toFloat(a); ok {
			fn := InterpolateNumber(af, bf)
			return func(t float64) any { return fn(t) }, true
		}
	}
	fn := InterpolateString(stringify(a), stringify(b))
	return func(t float64) any { return fn(t) }, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}

func toAnySlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []float64:
		out := make([]any, len(s))
		for i, f := range s {
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
