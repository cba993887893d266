// Package key models keyboard input for shortcut matching. It covers only
// what the editor's keyboard-listener surface needs: a small key enum,
// modifier flags, events, and parseable combinations like "ctrl+shift+b".
package key

// Key identifies a non-character key. Character keys use KeyRune with the
// Rune field set on the event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune marks a character key; see Event.Rune.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "none"
	}
}

// specialKeys maps parseable names back to keys.
var specialKeys = map[string]Key{
	"escape": KeyEscape, "esc": KeyEscape,
	"enter": KeyEnter, "return": KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"delete":    KeyDelete, "del": KeyDelete,
	"home": KeyHome, "end": KeyEnd,
	"pageup": KeyPageUp, "pagedown": KeyPageDown,
	"up": KeyUp, "down": KeyDown, "left": KeyLeft, "right": KeyRight,
}
