package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// SpecError describes an unparseable key specification.
type SpecError struct {
	Spec   string
	Reason string
}

// Error implements error.
func (e *SpecError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidSpec, e.Spec, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidSpec.
func (e *SpecError) Unwrap() error {
	return ErrInvalidSpec
}

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "b", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+B", "Meta+m", "Ctrl+Shift+P"
//   - Vim-style: "<C-b>", "<D-m>", "<CR>", "<Esc>"
//
// Character keys combined with Ctrl or Meta are lowercased, so "Ctrl+B"
// and "Ctrl+b" describe the same shortcut.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseParts(spec, strings.Split(spec[1:len(spec)-1], "-"))
	}
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseParts(spec, strings.Split(spec, "+"))
	}
	return parseKey(spec, spec, ModNone)
}

// parseParts treats every part but the last as a modifier.
func parseParts(spec string, parts []string) (Event, error) {
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, &SpecError{Spec: spec, Reason: fmt.Sprintf("unknown modifier %q", p)}
		}
		mods = mods.With(mod)
	}
	return parseKey(spec, strings.TrimSpace(parts[len(parts)-1]), mods)
}

func parseKey(spec, keyPart string, mods Modifier) (Event, error) {
	if keyPart == "" {
		return Event{}, &SpecError{Spec: spec, Reason: "missing key"}
	}
	if strings.EqualFold(keyPart, "space") {
		return NewRuneEvent(' ', mods), nil
	}
	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, &SpecError{Spec: spec, Reason: fmt.Sprintf("unknown key %q", keyPart)}
	}
	r := runes[0]
	if mods&(ModCtrl|ModMeta) != 0 {
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
