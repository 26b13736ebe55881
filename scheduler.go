package motion

import (
	"sync"
	"time"
)

// Scheduler owns a registry of active tweens and a monotonic clock, and
// advances every registered tween on each Update call. Each scheduler is an
// independent scheduling context: create one per test, per window, or per
// subsystem, and tear it down with RemoveAll. The package-level Default
// scheduler serves callers that only ever need one.
//
// All tween state transitions happen synchronously inside Update (or inside
// explicit calls like Stop). Listeners run during dispatch and may mutate
// the registry freely: Update iterates a snapshot taken at tick start, so
// removals and additions mid-tick never skip or double-advance a tween.
type Scheduler struct {
	mu      sync.Mutex
	tweens  []*Tween
	epoch   time.Time
	auto    bool
	driving bool
}

// NewScheduler returns an empty scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{epoch: time.Now()}
}

// Default is the package-level scheduler used by NewTween and the
// package-level registry functions.
var Default = NewScheduler()

// Now returns the scheduler clock in milliseconds since creation.
// The clock is monotonic.
func (s *Scheduler) Now() float64 {
	return float64(time.Since(s.epoch)) / float64(time.Millisecond)
}

// add registers a tween, keeping the invariant that a tween appears at most
// once in the registry. With auto-play enabled, adding to an idle scheduler
// kicks off the self-driving loop.
func (s *Scheduler) add(t *Tween) {
	s.mu.Lock()
	for _, existing := range s.tweens {
		if existing == t {
			s.mu.Unlock()
			return
		}
	}
	s.tweens = append(s.tweens, t)
	startLoop := s.auto && !s.driving
	if startLoop {
		s.driving = true
	}
	s.mu.Unlock()

	if startLoop {
		go s.drive()
	}
}

func (s *Scheduler) remove(t *Tween) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tweens {
		if existing == t {
			s.tweens = append(s.tweens[:i:i], s.tweens[i+1:]...)
			return
		}
	}
}

// Add registers a tween directly, without going through Tween.Start.
// Mostly useful for re-adding a tween configured earlier.
func (s *Scheduler) Add(t *Tween) {
	t.registered = true
	t.playing = true
	s.add(t)
}

// Remove unregisters a tween without firing any events.
// Removing a tween that is not registered is a no-op.
func (s *Scheduler) Remove(t *Tween) {
	t.registered = false
	t.playing = false
	s.remove(t)
}

// RemoveAll clears the registry. No events fire; this is the scheduler's
// teardown.
func (s *Scheduler) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tweens {
		t.registered = false
		t.playing = false
	}
	s.tweens = nil
}

// GetAll returns a copy of the registry in insertion order.
func (s *Scheduler) GetAll() []*Tween {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Tween, len(s.tweens))
	copy(out, s.tweens)
	return out
}

// Update advances every registered tween to the given time (milliseconds on
// the scheduler clock) and reports whether any tween is still actively
// playing. Completed tweens are removed from the registry unless preserve is
// true, in which case they stay registered in a paused state: Seek, Play, or
// Restart replays them, and only Remove, RemoveAll, or Stop takes them out.
// Listeners invoked during the tick may mutate the registry; the snapshot
// taken at tick start keeps iteration index-stable.
func (s *Scheduler) Update(now float64, preserve ...bool) bool {
	keep := len(preserve) > 0 && preserve[0]

	snapshot := s.GetAll()
	if len(snapshot) == 0 {
		return false
	}

	for _, t := range snapshot {
		if !t.registered || !t.playing {
			// Stopped by an earlier listener this tick, paused, or
			// completed under preserve on a prior tick.
			continue
		}
		if !t.update(now) {
			if keep {
				t.registered = true
			} else {
				s.remove(t)
			}
		}
	}

	s.mu.Lock()
	active := 0
	for _, t := range s.tweens {
		if t.playing {
			active++
		}
	}
	s.mu.Unlock()
	return active > 0
}

// AutoPlay enables or disables the self-driving update loop. While enabled,
// adding the first tween to an idle scheduler starts an internal ~60 Hz
// loop that calls Update(Now()) until the registry drains, then goes idle
// again so an empty scheduler costs nothing.
func (s *Scheduler) AutoPlay(on bool) {
	s.mu.Lock()
	s.auto = on
	start := on && !s.driving && len(s.tweens) > 0
	if start {
		s.driving = true
	}
	s.mu.Unlock()

	if start {
		go s.drive()
	}
}

// drive is the auto-play loop. It exits when auto-play is switched off or
// the registry drains with no tween re-added in the same tick.
func (s *Scheduler) drive() {
	const frame = time.Second / 60
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for range ticker.C {
		active := s.Update(s.Now())

		s.mu.Lock()
		stop := !s.auto || (!active && len(s.tweens) == 0)
		if stop {
			s.driving = false
		}
		s.mu.Unlock()
		if stop {
			return
		}
	}
}

// --- package-level surface over the Default scheduler ---

// Add registers a tween with the Default scheduler.
func Add(t *Tween) { Default.Add(t) }

// Remove unregisters a tween from the Default scheduler.
func Remove(t *Tween) { Default.Remove(t) }

// RemoveAll clears the Default scheduler's registry.
func RemoveAll() { Default.RemoveAll() }

// GetAll returns the Default scheduler's registered tweens.
func GetAll() []*Tween { return Default.GetAll() }

// Update advances the Default scheduler.
func Update(now float64, preserve ...bool) bool { return Default.Update(now, preserve...) }

// Now returns the Default scheduler's clock in milliseconds.
func Now() float64 { return Default.Now() }

// AutoPlay toggles the Default scheduler's self-driving loop.
func AutoPlay(on bool) { Default.AutoPlay(on) }
