package editor

import (
	"github.com/markpane/markpane/internal/event"
	"github.com/markpane/markpane/internal/key"
	"github.com/markpane/markpane/internal/scrollsync"
)

// Source marks a text mutation as externally sourced (toolbar click, key
// press, paste). A nil *Source on a change event means the mutation was
// programmatic.
type Source struct {
	// Name describes the originating interaction, e.g. "keyboard",
	// "toolbar", "paste".
	Name string
}

// ChangeEvent is the payload of ChanChange.
type ChangeEvent struct {
	// Text is the markdown source at emission time.
	Text string

	// HTML is the rendered output paired with the emission. On a
	// before-render notification it may lag Text by one render cycle; on an
	// after-render notification the pair is consistent.
	HTML string

	// Source is non-nil when the mutation was externally sourced.
	Source *Source
}

// ScrollEvent is the payload of ChanScroll.
type ScrollEvent struct {
	// Pane is the pane the user scrolled.
	Pane scrollsync.Source

	// Top is that pane's scroll offset at emission time.
	Top int
}

// FocusEvent is the payload of ChanFocus and ChanBlur.
type FocusEvent struct {
	// Focused is true on focus, false on blur.
	Focused bool
}

// View holds the pane-visibility toggles. The toggles are independent;
// nothing forces at least one pane visible, that is the host's call.
type View struct {
	Menu    bool
	Editor  bool
	Preview bool
}

// The editor's host-facing event channels.
var (
	// ChanChange fires on every text mutation, per the configured
	// before/after-render notification points.
	ChanChange = event.NewChannel[ChangeEvent]("change")

	// ChanFullscreen fires when the full-screen flag flips.
	ChanFullscreen = event.NewChannel[bool]("fullscreen")

	// ChanViewChange fires when pane visibility changes.
	ChanViewChange = event.NewChannel[View]("viewchange")

	// ChanKeyDown fires for every key event handed to the editor.
	ChanKeyDown = event.NewChannel[key.Event]("keydown")

	// ChanFocus and ChanBlur track the edit surface's focus.
	ChanFocus = event.NewChannel[FocusEvent]("focus")
	ChanBlur  = event.NewChannel[FocusEvent]("blur")

	// ChanScroll fires for every user scroll on either pane.
	ChanScroll = event.NewChannel[ScrollEvent]("scroll")
)

// On subscribes fn to ch on the editor's bus.
func On[T any](e *Editor, ch event.Channel[T], fn func(T)) (event.Subscription, error) {
	return event.Subscribe(e.bus, ch, fn)
}

// Off removes a subscription made with On.
func (e *Editor) Off(sub event.Subscription) error {
	return e.bus.Unsubscribe(sub)
}

// Events exposes the underlying bus for hosts that prefer it directly.
func (e *Editor) Events() *event.Bus {
	return e.bus
}
