package motion

import "reflect"

// EventType identifies a tween lifecycle event.
type EventType uint8

const (
	EventStart    EventType = iota // fires once, on the first due tick after Start
	EventUpdate                    // fires every tick while the tween is due
	EventRepeat                    // fires when a repeat cycle begins in the forward direction
	EventReverse                   // fires when a yoyo cycle flips direction
	EventComplete                  // fires when the final cycle finishes
	EventStop                      // fires on Stop; Complete does not follow
	EventPause                     // fires when a playing tween is paused
	EventPlay                      // fires when a paused tween resumes
	EventSeek                      // fires on Seek
	EventRestart                   // fires on Restart
)

// Listener observes a tween lifecycle event. Listeners run synchronously
// during dispatch and may freely start, stop, or pause tweens — including
// the one that fired.
type Listener func(tw *Tween)

type listenerEntry struct {
	fn   Listener
	once bool
}

// On registers a listener for the event. Multiple listeners may be attached
// to the same event; they fire in registration order. A nil listener is a
// programming mistake and panics at registration time.
func (t *Tween) On(e EventType, fn Listener) *Tween {
	if fn == nil {
		panic("motion: On called with nil listener")
	}
	if t.listeners == nil {
		t.listeners = make(map[EventType][]listenerEntry)
	}
	t.listeners[e] = append(t.listeners[e], listenerEntry{fn: fn})
	return t
}

// Once registers a listener that is removed after its first invocation.
func (t *Tween) Once(e EventType, fn Listener) *Tween {
	if fn == nil {
		panic("motion: Once called with nil listener")
	}
	if t.listeners == nil {
		t.listeners = make(map[EventType][]listenerEntry)
	}
	t.listeners[e] = append(t.listeners[e], listenerEntry{fn: fn, once: true})
	return t
}

// Off removes a previously registered listener, matched by function
// identity. Removing a listener that was never registered is a no-op.
func (t *Tween) Off(e EventType, fn Listener) *Tween {
	if fn == nil {
		panic("motion: Off called with nil listener")
	}
	entries := t.listeners[e]
	ptr := reflect.ValueOf(fn).Pointer()
	for i, entry := range entries {
		if reflect.ValueOf(entry.fn).Pointer() == ptr {
			t.listeners[e] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	return t
}

// emit fires all listeners for the event. Emission for an event with no
// listeners is a no-op. The listener slice is snapshotted first so handlers
// may register or remove listeners during dispatch.
func (t *Tween) emit(e EventType) {
	entries := t.listeners[e]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)

	for _, entry := range snapshot {
		if entry.once {
			t.Off(e, entry.fn)
		}
		entry.fn(t)
	}
}
