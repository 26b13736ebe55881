package motion

import (
	"strconv"
	"strings"

	"github.com/larchwood/motion/ease"
)

// RepeatForever makes a tween repeat until stopped.
const RepeatForever = -1

// delayUnset marks the repeat/reverse delay fields as not configured, in
// which case the base delay applies between cycles.
const delayUnset = -1

// Tween animates the numeric properties of a target map from their values
// at Start toward configured end values over a duration, driven by
// scheduler ticks. The target map is caller-owned and mutated in place;
// the tween never copies it.
//
// Configuration is fluent — every setter returns the tween:
//
//	tw := s.Tween(obj).
//		To(motion.Props{"x": 100, "y": "+50"}, 1000).
//		Easing(ease.OutBounce).
//		Repeat(2).Yoyo(true).
//		On(motion.EventComplete, done).
//		Start()
type Tween struct {
	sched  *Scheduler
	target map[string]float64

	valuesStart       map[string]float64
	valuesStartRepeat map[string]float64
	valuesEnd         map[string]any

	durationMS   float64
	delayTime    float64
	repeat       int
	repeatLeft   int
	repeatDelay  float64
	reverseDelay float64
	yoyo         bool
	reversed     bool

	easing ease.Func
	path   PathFunc

	chained   []*Tween
	listeners map[EventType][]listenerEntry

	startTime  float64
	registered bool
	playing    bool
	startFired bool
	pausedAt   float64
}

// Props is the end-value map for To. Values may be:
//   - float64 / int: an absolute target
//   - string with a leading "+" or "-": an offset from the start value,
//     re-applied cumulatively on every repeat cycle
//   - []float64: keyframes interpolated with the configured path function
//
// Any other value is skipped during update rather than treated as an error.
type Props map[string]any

func newTween(s *Scheduler, target map[string]float64) *Tween {
	return &Tween{
		sched:        s,
		target:       target,
		valuesEnd:    make(map[string]any),
		durationMS:   1000,
		repeatDelay:  delayUnset,
		reverseDelay: delayUnset,
		easing:       ease.Linear,
		path:         PathLinear,
	}
}

// NewTween creates a tween on the package-level Default scheduler.
// Use Scheduler.Tween for an isolated scheduling context.
func NewTween(target map[string]float64) *Tween {
	return newTween(Default, target)
}

// Tween creates a tween bound to this scheduler.
func (s *Scheduler) Tween(target map[string]float64) *Tween {
	return newTween(s, target)
}

// Target returns the tween's target map.
func (t *Tween) Target() map[string]float64 { return t.target }

// To sets the end-value map and, optionally, the duration in milliseconds.
func (t *Tween) To(props Props, duration ...float64) *Tween {
	t.valuesEnd = make(map[string]any, len(props))
	for k, v := range props {
		t.valuesEnd[k] = v
	}
	if len(duration) > 0 {
		t.durationMS = duration[0]
	}
	return t
}

// Duration sets the animation length in milliseconds.
func (t *Tween) Duration(ms float64) *Tween {
	t.durationMS = ms
	return t
}

// Delay postpones the start by the given milliseconds. The same delay
// separates repeat cycles unless RepeatDelay or ReverseDelay is set.
func (t *Tween) Delay(ms float64) *Tween {
	t.delayTime = ms
	return t
}

// Repeat sets how many additional cycles run after the first.
// Pass RepeatForever to repeat until stopped.
func (t *Tween) Repeat(n int) *Tween {
	t.repeat = n
	t.repeatLeft = n
	return t
}

// RepeatDelay sets the pause in milliseconds before each repeat cycle.
func (t *Tween) RepeatDelay(ms float64) *Tween {
	t.repeatDelay = ms
	return t
}

// ReverseDelay sets the pause in milliseconds before each reversed (yoyo)
// cycle, taking precedence over RepeatDelay for those cycles.
func (t *Tween) ReverseDelay(ms float64) *Tween {
	t.reverseDelay = ms
	return t
}

// Yoyo makes alternate repeat cycles run backwards, ping-ponging between
// the endpoints. Only meaningful together with Repeat.
func (t *Tween) Yoyo(on bool) *Tween {
	t.yoyo = on
	return t
}

// Easing sets the easing curve. The default is ease.Linear.
// A nil function panics at call time rather than failing mid-animation.
func (t *Tween) Easing(fn ease.Func) *Tween {
	if fn == nil {
		panic("motion: Easing called with nil function")
	}
	t.easing = fn
	return t
}

// Interpolation sets the path function used for []float64 end values.
// The default is PathLinear. A nil function panics at call time.
func (t *Tween) Interpolation(fn PathFunc) *Tween {
	if fn == nil {
		panic("motion: Interpolation called with nil function")
	}
	t.path = fn
	return t
}

// Chain appends successor tweens that start automatically when this tween
// completes. Chaining a tween to itself (or into a cycle) is a programming
// mistake with undefined behavior.
func (t *Tween) Chain(tweens ...*Tween) *Tween {
	t.chained = append(t.chained, tweens...)
	return t
}

// IsPlaying reports whether the tween is registered and not paused.
func (t *Tween) IsPlaying() bool { return t.registered && t.playing }

// IsStarted reports whether the first due tick has fired the start event.
func (t *Tween) IsStarted() bool { return t.startFired }

// Start snapshots the current target values and registers the tween with
// its scheduler. The animation becomes due at (time + delay), where time
// defaults to the scheduler clock. Starting an already registered tween
// restarts its snapshot and timing.
func (t *Tween) Start(time ...float64) *Tween {
	now := t.sched.Now()
	if len(time) > 0 {
		now = time[0]
	}
	t.startTime = now + t.delayTime
	t.startFired = false
	t.reversed = false
	t.repeatLeft = t.repeat

	t.valuesStart = make(map[string]float64)
	t.valuesStartRepeat = make(map[string]float64)
	for prop, end := range t.valuesEnd {
		start, ok := t.target[prop]
		if !ok {
			// Keys of the start snapshots stay a subset of the end map;
			// properties absent from the target are never animated.
			continue
		}
		if pts, ok := end.([]float64); ok {
			if len(pts) == 0 {
				// Nothing to animate along; skipped like any other
				// non-animatable end value.
				continue
			}
			// Keyframe paths begin at the captured start value.
			resolved := make([]float64, 0, len(pts)+1)
			resolved = append(resolved, start)
			resolved = append(resolved, pts...)
			t.valuesEnd[prop] = resolved
		}
		t.valuesStart[prop] = start
		t.valuesStartRepeat[prop] = start
	}

	t.playing = true
	t.registered = true
	t.sched.add(t)
	return t
}

// Stop removes the tween from its scheduler without firing a complete
// event, then stops every chained successor recursively. Stopping a tween
// that is not registered is a no-op.
func (t *Tween) Stop() *Tween {
	if !t.registered {
		return t
	}
	t.registered = false
	t.playing = false
	t.sched.remove(t)
	t.emit(EventStop)
	for _, c := range t.chained {
		c.Stop()
	}
	return t
}

// Pause suspends the tween, preserving its elapsed progress. Pausing a
// tween that is already paused (or never started) is a no-op.
func (t *Tween) Pause() *Tween {
	if !t.playing || !t.registered {
		return t
	}
	t.playing = false
	t.pausedAt = t.sched.Now()
	t.sched.remove(t)
	t.emit(EventPause)
	return t
}

// Play resumes a paused tween, shifting its start time by the wall-clock
// span spent paused so progress continues where it left off. Playing a
// tween that is not paused is a no-op.
func (t *Tween) Play() *Tween {
	if t.playing || !t.registered {
		return t
	}
	t.playing = true
	t.startTime += t.sched.Now() - t.pausedAt
	t.sched.add(t)
	t.emit(EventPlay)
	return t
}

// Seek aligns the tween's internal clock to read the given time (clamped
// to [0, duration]) as of the current scheduler time; the next tick applies
// the corresponding values. With keepPlaying false the tween pauses after
// seeking; with keepPlaying true a paused tween resumes from the sought
// position.
func (t *Tween) Seek(time float64, keepPlaying bool) *Tween {
	if time < 0 {
		time = 0
	} else if time > t.durationMS {
		time = t.durationMS
	}
	now := t.sched.Now()
	t.startTime = now - time
	if t.registered && !t.playing {
		// Re-anchor a paused tween so a later Play resumes at the sought
		// position instead of reapplying the span spent paused.
		t.pausedAt = now
	}
	t.emit(EventSeek)
	if !keepPlaying {
		t.Pause()
	} else if t.registered && !t.playing {
		t.Play()
	}
	return t
}

// End jumps the tween to its final state immediately, firing the same
// events a natural last tick would.
func (t *Tween) End() *Tween {
	if !t.update(t.startTime + t.durationMS) {
		t.sched.remove(t)
	}
	return t
}

// Reverse flips the animation direction in place: endpoints swap and the
// elapsed progress inverts, so a tween 30% through plays back over the
// remaining 30%.
func (t *Tween) Reverse() *Tween {
	t.swapEndpoints()
	t.reversed = !t.reversed

	now := t.sched.Now()
	elapsed := t.progressAt(now)
	t.startTime = now - (1-elapsed)*t.durationMS
	t.emit(EventReverse)
	return t
}

// Restart rewinds the tween to its configured initial state and registers
// it again: repeats are restored, the delay applies anew, and the start
// event will fire again on the next due tick.
func (t *Tween) Restart() *Tween {
	t.repeatLeft = t.repeat
	t.reversed = false
	t.startTime = t.sched.Now() + t.delayTime
	t.startFired = false
	t.playing = true
	t.registered = true
	t.sched.add(t)
	t.emit(EventRestart)
	return t
}

func (t *Tween) progressAt(time float64) float64 {
	if t.durationMS <= 0 {
		return 1
	}
	e := (time - t.startTime) / t.durationMS
	if e > 1 {
		e = 1
	}
	if e < 0 {
		e = 0
	}
	return e
}

// Update advances the tween to the given scheduler time and reports whether
// it remains active. Normally the scheduler calls this on every tick, but
// manual stepping (tests, non-frame hosts) is fully supported.
func (t *Tween) Update(time float64) bool {
	return t.update(time)
}

func (t *Tween) update(time float64) bool {
	if time < t.startTime {
		// Not yet due; stays registered.
		return true
	}

	if !t.startFired {
		t.startFired = true
		t.emit(EventStart)
	}

	var elapsed float64 = 1
	if t.durationMS > 0 {
		elapsed = (time - t.startTime) / t.durationMS
		if elapsed > 1 {
			elapsed = 1
		}
	}
	value := t.easing(elapsed)

	for prop, end := range t.valuesEnd {
		start, ok := t.valuesStart[prop]
		if !ok {
			continue
		}
		switch e := end.(type) {
		case []float64:
			t.target[prop] = t.path(e, value)
		default:
			if ev, ok := t.resolveEnd(start, end); ok {
				t.target[prop] = start + (ev-start)*value
			}
			// Unresolvable end values are skipped, not an error.
		}
	}

	t.emit(EventUpdate)

	if elapsed < 1 {
		return true
	}

	if t.repeatLeft > 0 || t.repeat == RepeatForever {
		if t.repeatLeft > 0 {
			t.repeatLeft--
		}
		t.rewind()

		switch {
		case t.reversed && t.reverseDelay != delayUnset:
			t.startTime = time + t.reverseDelay
		case t.repeatDelay != delayUnset:
			t.startTime = time + t.repeatDelay
		default:
			t.startTime = time + t.delayTime
		}

		if t.reversed {
			t.emit(EventReverse)
		} else {
			t.emit(EventRepeat)
		}
		return true
	}

	t.registered = false
	t.playing = false
	t.emit(EventComplete)
	for _, c := range t.chained {
		c.Start(t.startTime + t.durationMS)
	}
	t.repeatLeft = t.repeat
	return false
}

// rewind prepares the value maps for the next repeat cycle: relative ends
// accumulate their offset, and under yoyo the endpoints swap and the
// direction flips.
func (t *Tween) rewind() {
	for prop := range t.valuesStartRepeat {
		if s, ok := t.valuesEnd[prop].(string); ok {
			if off, ok := parseRelative(s); ok {
				t.valuesStartRepeat[prop] += off
			}
		}
		if t.yoyo {
			t.swapEndpoint(prop)
		}
		t.valuesStart[prop] = t.valuesStartRepeat[prop]
	}
	if t.yoyo {
		t.reversed = !t.reversed
	}
}

func (t *Tween) swapEndpoints() {
	for prop := range t.valuesStartRepeat {
		t.swapEndpoint(prop)
		t.valuesStart[prop] = t.valuesStartRepeat[prop]
	}
}

func (t *Tween) swapEndpoint(prop string) {
	switch e := t.valuesEnd[prop].(type) {
	case []float64:
		// Keyframe paths reverse instead of swapping scalar endpoints.
		rev := make([]float64, len(e))
		for i, v := range e {
			rev[len(e)-1-i] = v
		}
		t.valuesEnd[prop] = rev
	default:
		start := t.valuesStartRepeat[prop]
		if ev, ok := t.resolveEnd(start, e); ok {
			t.valuesStartRepeat[prop] = ev
			t.valuesEnd[prop] = start
		}
	}
}

// resolveEnd turns a configured end value into an absolute number given the
// cycle's start value. Relative strings ("+10", "-3.5") offset the start.
func (t *Tween) resolveEnd(start float64, end any) (float64, bool) {
	switch e := end.(type) {
	case string:
		if off, ok := parseRelative(e); ok {
			return start + off, true
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(e), 64); err == nil {
			return v, true
		}
		return 0, false
	default:
		return toFloat(end)
	}
}

func parseRelative(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
