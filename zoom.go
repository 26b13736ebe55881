package motion

import "math"

// ZoomView describes a viewport for zoom interpolation: a center point and
// a width, where the width acts as the zoom scale proxy (larger is farther
// out).
type ZoomView struct {
	X, Y, W float64
}

// ZoomPath is a smooth pan-and-zoom trajectory between two views, following
// van Wijk and Nuij's "Smooth and efficient zooming and panning". Duration
// is the recommended animation length in milliseconds, derived from the
// path's hyperbolic arc length so that playback has constant perceived
// speed.
type ZoomPath struct {
	Duration float64

	at func(t float64) ZoomView
}

// At evaluates the path at normalized progress t in [0, 1].
func (p *ZoomPath) At(t float64) ZoomView {
	return p.at(t)
}

// zoomRho is the fixed expansion rate of the zoom-out arc. sqrt(2) is the
// paper's recommended balance between panning and zooming.
var (
	zoomRho  = math.Sqrt2
	zoomRho2 = 2.0
	zoomRho4 = 4.0
)

// zoomEpsilon2 guards the coincident-centers case, where the general form
// divides by the center distance.
const zoomEpsilon2 = 1e-12

// InterpolateZoom computes the smooth zoom path from view a to view b.
// When the two centers coincide the path degenerates to a straight line
// with exponential width interpolation.
func InterpolateZoom(a, b ZoomView) *ZoomPath {
	dx := b.X - a.X
	dy := b.Y - a.Y
	d2 := dx*dx + dy*dy

	if d2 < zoomEpsilon2 {
		s := math.Log(b.W/a.W) / zoomRho
		return &ZoomPath{
			Duration: math.Abs(s) * 1000,
			at: func(t float64) ZoomView {
				return ZoomView{
					X: a.X + t*dx,
					Y: a.Y + t*dy,
					W: a.W * math.Exp(zoomRho*t*s),
				}
			},
		}
	}

	d1 := math.Sqrt(d2)
	b0 := (b.W*b.W - a.W*a.W + zoomRho4*d2) / (2 * a.W * zoomRho2 * d1)
	b1 := (b.W*b.W - a.W*a.W - zoomRho4*d2) / (2 * b.W * zoomRho2 * d1)
	r0 := math.Log(math.Sqrt(b0*b0+1) - b0)
	r1 := math.Log(math.Sqrt(b1*b1+1) - b1)
	s := (r1 - r0) / zoomRho

	coshr0 := math.Cosh(r0)
	sinhr0 := math.Sinh(r0)

	return &ZoomPath{
		Duration: math.Abs(s) * 1000,
		at: func(t float64) ZoomView {
			z := t*s*zoomRho + r0
			u := a.W / (zoomRho2 * d1) * (coshr0*math.Tanh(z) - sinhr0)
			return ZoomView{
				X: a.X + u*dx,
				Y: a.Y + u*dy,
				W: a.W * coshr0 / math.Cosh(z),
			}
		},
	}
}
