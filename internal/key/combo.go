package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Mod contains the active modifier keys.
	Mod Modifier
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mod Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mod: mod}
}

// Combo is a key combination a shortcut listener matches against.
type Combo struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// Matches reports whether ev satisfies the combination. Rune comparison is
// case-insensitive so "ctrl+B" and "ctrl+b" behave alike.
func (c Combo) Matches(ev Event) bool {
	if ev.Mod != c.Mod {
		return false
	}
	if c.Key != KeyRune {
		return ev.Key == c.Key
	}
	return ev.Key == KeyRune && unicode.ToLower(ev.Rune) == unicode.ToLower(c.Rune)
}

// String returns the canonical "mod+mod+key" form.
func (c Combo) String() string {
	var parts []string
	if c.Mod.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if c.Mod.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if c.Mod.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if c.Mod.Has(ModMeta) {
		parts = append(parts, "meta")
	}
	if c.Key == KeyRune {
		parts = append(parts, string(c.Rune))
	} else {
		parts = append(parts, c.Key.String())
	}
	return strings.Join(parts, "+")
}

// ParseCombo parses a combination like "ctrl+b" or "ctrl+shift+enter".
// The final segment is either a special key name or a single character.
func ParseCombo(s string) (Combo, error) {
	segments := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(segments) == 0 || segments[0] == "" {
		return Combo{}, fmt.Errorf("empty key combination %q", s)
	}

	var combo Combo
	for i, seg := range segments {
		last := i == len(segments)-1
		if mod, ok := modifierNames[seg]; ok && !last {
			combo.Mod = combo.Mod.With(mod)
			continue
		}
		if !last {
			return Combo{}, fmt.Errorf("unknown modifier %q in %q", seg, s)
		}
		if k, ok := specialKeys[seg]; ok {
			combo.Key = k
			return combo, nil
		}
		runes := []rune(seg)
		if len(runes) != 1 {
			return Combo{}, fmt.Errorf("unknown key %q in %q", seg, s)
		}
		combo.Key = KeyRune
		combo.Rune = runes[0]
		return combo, nil
	}
	return Combo{}, fmt.Errorf("missing key in %q", s)
}
