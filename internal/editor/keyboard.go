package editor

import (
	"github.com/markpane/markpane/internal/event"
	"github.com/markpane/markpane/internal/key"
)

// KeyListener binds a key combination to a callback. Listeners are
// registered and removed by pointer identity, so the same value can be
// taken on and off without bookkeeping.
type KeyListener struct {
	Combo key.Combo
	Fn    func(ev key.Event)
}

// OnKeyboard registers a shortcut listener. Matching is first-match-wins
// in registration order.
func (e *Editor) OnKeyboard(l *KeyListener) {
	if l == nil {
		return
	}
	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()
}

// OffKeyboard removes a previously registered listener.
func (e *Editor) OffKeyboard(l *KeyListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, existing := range e.listeners {
		if existing == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// HandleKey publishes the key event and dispatches it to the first
// matching listener. It reports whether a listener consumed the event.
func (e *Editor) HandleKey(ev key.Event) bool {
	event.Publish(e.bus, ChanKeyDown, ev)

	e.mu.Lock()
	listeners := make([]*KeyListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()

	for _, l := range listeners {
		if l.Combo.Matches(ev) {
			if l.Fn != nil {
				l.Fn(ev)
			}
			return true
		}
	}
	return false
}
