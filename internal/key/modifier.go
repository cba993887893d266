package key

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// modifierNames maps parseable names to modifier flags.
var modifierNames = map[string]Modifier{
	"shift": ModShift,
	"ctrl":  ModCtrl, "control": ModCtrl,
	"alt": ModAlt, "option": ModAlt,
	"meta": ModMeta, "cmd": ModMeta, "win": ModMeta,
}
