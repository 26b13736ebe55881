package motion

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// decomposed is a 2D transform split into interpolable components.
// Angles are in degrees.
type decomposed struct {
	translateX, translateY float64
	rotate                 float64
	skewX                  float64
	scaleX, scaleY         float64
}

// multiplyAffine multiplies two 2D affine matrices: result = left * right.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// decompose extracts translate/rotate/skewX/scale from an affine matrix via
// Gram-Schmidt on the two basis columns: normalize the first, remove its
// projection from the second to isolate shear, then normalize the second
// for the y scale. A negative signed area means a reflection; the x basis
// and shear flip sign so the rotation stays in range.
func decompose(m [6]float64) decomposed {
	a, b, c, d := m[0], m[1], m[2], m[3]

	scaleX := math.Sqrt(a*a + b*b)
	if scaleX != 0 {
		a /= scaleX
		b /= scaleX
	}
	skew := a*c + b*d
	if skew != 0 {
		c -= a * skew
		d -= b * skew
	}
	scaleY := math.Sqrt(c*c + d*d)
	if scaleY != 0 {
		c /= scaleY
		d /= scaleY
		skew /= scaleY
	}
	if a*d < b*c {
		a = -a
		b = -b
		skew = -skew
		scaleX = -scaleX
	}

	return decomposed{
		translateX: m[4],
		translateY: m[5],
		rotate:     math.Atan2(b, a) * 180 / math.Pi,
		skewX:      math.Atan(skew) * 180 / math.Pi,
		scaleX:     scaleX,
		scaleY:     scaleY,
	}
}

var reTransformFn = regexp.MustCompile(`([a-zA-Z]+)\s*\(([^)]*)\)`)

// parseTransform composes a CSS-style 2D transform string into an affine
// matrix. Recognized functions: translate, translateX, translateY, rotate,
// scale, scaleX, scaleY, skewX, skewY, matrix. Unknown functions and
// malformed input degrade to the identity transform, never an error.
func parseTransform(s string) [6]float64 {
	m := identityTransform
	for _, fn := range reTransformFn.FindAllStringSubmatch(s, -1) {
		name := strings.ToLower(fn[1])
		args := parseTransformArgs(fn[2])
		m = multiplyAffine(m, transformMatrix(name, args))
	}
	return m
}

// parseTransformArgs extracts the numeric tokens from an argument list,
// ignoring units (px, deg) and separators.
func parseTransformArgs(s string) []float64 {
	tokens := reNumber.FindAllString(s, -1)
	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		out[i], _ = strconv.ParseFloat(tok, 64)
	}
	return out
}

func transformMatrix(name string, args []float64) [6]float64 {
	arg := func(i int, def float64) float64 {
		if i < len(args) {
			return args[i]
		}
		return def
	}
	switch name {
	case "translate":
		return [6]float64{1, 0, 0, 1, arg(0, 0), arg(1, 0)}
	case "translatex":
		return [6]float64{1, 0, 0, 1, arg(0, 0), 0}
	case "translatey":
		return [6]float64{1, 0, 0, 1, 0, arg(0, 0)}
	case "rotate":
		sin, cos := math.Sincos(arg(0, 0) * math.Pi / 180)
		return [6]float64{cos, sin, -sin, cos, 0, 0}
	case "scale":
		sx := arg(0, 1)
		return [6]float64{sx, 0, 0, arg(1, sx), 0, 0}
	case "scalex":
		return [6]float64{arg(0, 1), 0, 0, 1, 0, 0}
	case "scaley":
		return [6]float64{1, 0, 0, arg(0, 1), 0, 0}
	case "skewx":
		return [6]float64{1, 0, math.Tan(arg(0, 0) * math.Pi / 180), 1, 0, 0}
	case "skewy":
		return [6]float64{1, math.Tan(arg(0, 0) * math.Pi / 180), 0, 1, 0, 0}
	case "matrix":
		if len(args) >= 6 {
			return [6]float64{args[0], args[1], args[2], args[3], args[4], args[5]}
		}
	}
	return identityTransform
}

// transformPiece is one segment of the output transform string, mirroring
// the spliced-string machinery in interpstring.go.
type transformPiece struct {
	text string
	fn   func(t float64) string // nil for constant pieces
}

// InterpolateTransform interpolates two CSS-style 2D transform strings by
// decomposed components. The output string is built piecewise: translate is
// emitted only when an endpoint is non-origin or the two differ; rotate,
// skewX, and scale are appended only when non-identity or differing.
// Rotation always takes the shorter arc: when the delta exceeds 180 degrees
// the smaller endpoint is wrapped by 360 before interpolating.
func InterpolateTransform(a, b string) func(t float64) string {
	da := decompose(parseTransform(a))
	db := decompose(parseTransform(b))

	var pieces []transformPiece
	constant := func(s string) {
		pieces = append(pieces, transformPiece{text: s})
	}
	animated := func(fn func(t float64) string) {
		pieces = append(pieces, transformPiece{fn: fn})
	}

	// translate
	if da.translateX != db.translateX || da.translateY != db.translateY {
		x := InterpolateNumber(da.translateX, db.translateX)
		y := InterpolateNumber(da.translateY, db.translateY)
		animated(func(t float64) string {
			return "translate(" + formatNumber(x(t)) + "," + formatNumber(y(t)) + ")"
		})
	} else if db.translateX != 0 || db.translateY != 0 {
		constant("translate(" + formatNumber(db.translateX) + "," + formatNumber(db.translateY) + ")")
	}

	// rotate, shortest arc
	ra, rb := da.rotate, db.rotate
	if ra != rb {
		if rb-ra > 180 {
			ra += 360
		} else if ra-rb > 180 {
			rb += 360
		}
		r := InterpolateNumber(ra, rb)
		animated(func(t float64) string {
			return "rotate(" + formatNumber(r(t)) + "deg)"
		})
	} else if rb != 0 {
		constant("rotate(" + formatNumber(rb) + "deg)")
	}

	// skewX
	if da.skewX != db.skewX {
		k := InterpolateNumber(da.skewX, db.skewX)
		animated(func(t float64) string {
			return "skewX(" + formatNumber(k(t)) + "deg)"
		})
	} else if db.skewX != 0 {
		constant("skewX(" + formatNumber(db.skewX) + "deg)")
	}

	// scale
	if da.scaleX != db.scaleX || da.scaleY != db.scaleY {
		sx := InterpolateNumber(da.scaleX, db.scaleX)
		sy := InterpolateNumber(da.scaleY, db.scaleY)
		animated(func(t float64) string {
			return "scale(" + formatNumber(sx(t)) + "," + formatNumber(sy(t)) + ")"
		})
	} else if db.scaleX != 1 || db.scaleY != 1 {
		constant("scale(" + formatNumber(db.scaleX) + "," + formatNumber(db.scaleY) + ")")
	}

	return func(t float64) string {
		var sb strings.Builder
		for i, p := range pieces {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if p.fn != nil {
				sb.WriteString(p.fn(t))
			} else {
				sb.WriteString(p.text)
			}
		}
		return sb.String()
	}
}
