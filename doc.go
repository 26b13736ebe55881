// Package motion is a value-interpolation and tweening engine.
//
// Motion has two cooperating halves: an interpolator registry that turns a
// pair of endpoint values into a pure progress function, and a tween
// scheduler that drives time-based animations of numeric property maps with
// easing, repeats, yoyo, chaining, and lifecycle events.
//
// # Quick start
//
// Create a scheduler, build a tween against a property map, and step the
// scheduler from your frame loop:
//
//	s := motion.NewScheduler()
//	obj := map[string]float64{"x": 0, "y": 0}
//
//	s.Tween(obj).
//		To(motion.Props{"x": 100, "y": 50}, 1000).
//		Easing(ease.OutBounce).
//		On(motion.EventComplete, func(tw *motion.Tween) { fmt.Println("done") }).
//		Start()
//
//	for s.Update(s.Now()) {
//		// render obj between ticks
//	}
//
// The package-level functions (Add, Update, NewTween, ...) operate on a
// shared Default scheduler for programs that only need one context. Call
// AutoPlay(true) to have a scheduler drive itself from an internal loop
// instead of manual Update calls.
//
// # Interpolators
//
// Interpolate dispatches on the runtime shape of its endpoints — numbers,
// colors, strings with embedded numbers, slices, maps — and returns a pure
// function of progress:
//
//	f := motion.Interpolate("10px", "20px")
//	f(0.5) // "15px"
//
//	c := motion.InterpolateRGB("steelblue", "#ff8800")
//	c(0.25) // "#748487"
//
// Typed entry points (InterpolateNumber, InterpolateRGB, InterpolateString,
// InterpolateArray, InterpolateObject, InterpolateTransform,
// InterpolateZoom, InterpolateRound) skip the dispatch. RegisterDetector
// extends the dispatch chain; the most recently registered detector wins,
// so defaults can be overridden.
//
// Interpolation is best-effort by design: malformed colors, mismatched
// shapes, and unknown values degrade to a sensible fallback instead of
// returning errors.
//
// # Easing and paths
//
// The [ease] subpackage holds the easing curve table (ease.Linear,
// ease.OutBounce, ease.InOutCubic, ...). PathLinear, PathBezier, and
// PathCatmullRom interpolate []float64 keyframe values inside tweens.
//
// # Timelines
//
// LoadTimeline builds whole tween sequences from a YAML document, with
// easing curves referenced by name and `after` keys resolved into chains.
//
// [ease]: https://pkg.go.dev/github.com/larchwood/motion/ease
package motion
