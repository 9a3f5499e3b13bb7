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

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// FromFlags builds an event from a key name and modifier flags, the shape
// in which hosts commonly report key presses. A single-character name
// becomes a character event; anything else is looked up as a key name.
func FromFlags(name string, ctrl, meta bool) Event {
	var mods Modifier
	if ctrl {
		mods = mods.With(ModCtrl)
	}
	if meta {
		mods = mods.With(ModMeta)
	}
	if runes := []rune(name); len(runes) == 1 {
		return NewRuneEvent(runes[0], mods)
	}
	return NewSpecialEvent(KeyFromName(name), mods)
}

// Name returns the symbolic key identifier used for shortcut matching.
func (e Event) Name() string {
	switch e.Key {
	case KeyRune:
		if e.Rune == 0 {
			return ""
		}
		return string(e.Rune)
	case KeyNone:
		return ""
	default:
		return e.Key.String()
	}
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.Key == KeyRune && e.Rune != 0 && unicode.IsPrint(e.Rune)
}

// IsModified returns true if Ctrl, Alt or Meta is pressed.
// Shift alone changes the character and does not count.
func (e Event) IsModified() bool {
	return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
}

// String returns a canonical representation like "Ctrl+b" or "Enter".
func (e Event) String() string {
	name := e.Name()
	if e.Key == KeyRune && e.Rune == ' ' {
		name = "Space"
	}
	if e.Modifiers.IsEmpty() {
		return name
	}
	return e.Modifiers.String() + "+" + name
}

// VimString returns a Vim-style representation like "<C-b>" or "<CR>".
func (e Event) VimString() string {
	if e.Key == KeyRune && !e.IsModified() {
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers&ModCtrl != 0 {
		parts = append(parts, "C")
	}
	if e.Modifiers&ModAlt != 0 {
		parts = append(parts, "A")
	}
	if e.Modifiers&ModMeta != 0 {
		parts = append(parts, "D")
	}
	if e.Modifiers&ModShift != 0 && e.Key != KeyRune {
		parts = append(parts, "S")
	}

	switch e.Key {
	case KeyRune:
		parts = append(parts, strings.ToLower(string(e.Rune)))
	case KeyEnter:
		parts = append(parts, "CR")
	case KeyEscape:
		parts = append(parts, "Esc")
	default:
		parts = append(parts, e.Key.String())
	}
	return "<" + strings.Join(parts, "-") + ">"
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
