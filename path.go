package motion

import "math"

// PathFunc interpolates over a set of keyframe control points at normalized
// progress k. Used by Tween for array-valued end properties; the provided
// implementations (PathLinear, PathBezier, PathCatmullRom) are part of the
// external contract and their curve formulas are frozen.
type PathFunc func(points []float64, k float64) float64

// PathLinear interpolates piecewise-linearly through the points.
// Progress outside [0, 1] extrapolates along the first or last segment.
func PathLinear(points []float64, k float64) float64 {
	m := len(points) - 1
	f := float64(m) * k
	i := int(math.Floor(f))

	switch {
	case k < 0:
		return lerp(points[0], points[1], f)
	case k > 1:
		return lerp(points[m], points[m-1], float64(m)-f)
	default:
		j := i + 1
		if j > m {
			j = m
		}
		return lerp(points[i], points[j], f-float64(i))
	}
}

// PathBezier evaluates the Bernstein-form Bezier curve defined by the
// points. All points are control points; the curve only passes through the
// first and last.
func PathBezier(points []float64, k float64) float64 {
	var b float64
	n := len(points) - 1
	for i := 0; i <= n; i++ {
		b += math.Pow(1-k, float64(n-i)) * math.Pow(k, float64(i)) * points[i] * binomial(n, i)
	}
	return b
}

// PathCatmullRom interpolates with a Catmull-Rom spline through the points.
// If the first and last points coincide the spline closes into a loop and
// progress wraps; otherwise out-of-range progress reflects off the ends.
func PathCatmullRom(points []float64, k float64) float64 {
	m := len(points) - 1
	f := float64(m) * k
	i := int(math.Floor(f))

	if points[0] == points[m] {
		// Closed loop.
		if k < 0 {
			f = float64(m) * (1 + k)
			i = int(math.Floor(f))
		}
		p := func(j int) float64 { return points[((j%m)+m)%m] }
		return catmullRom(p(i-1), p(i), p(i+1), p(i+2), f-float64(i))
	}

	switch {
	case k < 0:
		return points[0] - (catmullRom(points[0], points[0], points[1], points[1], -f) - points[0])
	case k > 1:
		return points[m] - (catmullRom(points[m], points[m], points[m-1], points[m-1], f-float64(m)) - points[m])
	default:
		at := func(j int) float64 {
			if j < 0 {
				j = 0
			}
			if j > m {
				j = m
			}
			return points[j]
		}
		return catmullRom(at(i-1), at(i), at(i+1), at(i+2), f-float64(i))
	}
}

func lerp(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

// catmullRom evaluates the uniform Catmull-Rom basis for the segment
// p1 -> p2 with neighbors p0 and p3.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	t2 := t * t
	t3 := t * t2
	return (2*p1-2*p2+v0+v1)*t3 + (-3*p1+3*p2-2*v0-v1)*t2 + v0*t + p1
}

// binomial returns n choose i with a small factorial cache; keyframe sets
// are short so overflow is not a practical concern.
func binomial(n, i int) float64 {
	return factorial(n) / (factorial(i) * factorial(n-i))
}

var factorialCache = [...]float64{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800}

func factorial(n int) float64 {
	if n < len(factorialCache) {
		return factorialCache[n]
	}
	f := factorialCache[len(factorialCache)-1]
	for i := len(factorialCache); i <= n; i++ {
		f *= float64(i)
	}
	return f
}
