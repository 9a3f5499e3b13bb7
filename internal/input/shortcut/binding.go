package shortcut

import (
	"errors"
	"fmt"

	"github.com/dshills/inkwell/internal/input"
	"github.com/dshills/inkwell/internal/input/key"
)

// ErrInvalidBinding is returned when a binding cannot become a plugin.
var ErrInvalidBinding = errors.New("shortcut: invalid binding")

// Binding is the serialized form of a plugin as it appears in config files.
//
//	[[shortcuts]]
//	name = "underline"
//	keys = "Ctrl+u"
//	command = "toggle_mark"
//	mark = "underline"
type Binding struct {
	Name    string         `toml:"name" yaml:"name" json:"name"`
	Keys    string         `toml:"keys" yaml:"keys" json:"keys"`
	Command string         `toml:"command" yaml:"command" json:"command"`
	Mark    string         `toml:"mark,omitempty" yaml:"mark,omitempty" json:"mark,omitempty"`
	Type    string         `toml:"type,omitempty" yaml:"type,omitempty" json:"type,omitempty"`
	Payload map[string]any `toml:"payload,omitempty" yaml:"payload,omitempty" json:"payload,omitempty"`
}

// Plugin converts the binding into a plugin.
func (b Binding) Plugin() (Plugin, error) {
	if b.Command == "" {
		return Plugin{}, fmt.Errorf("%w: %q has no command", ErrInvalidBinding, b.Name)
	}
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return Plugin{}, fmt.Errorf("%w: %q: %w", ErrInvalidBinding, b.Name, err)
	}

	payload := input.Payload(b.Payload).Clone()
	if b.Mark != "" {
		payload[input.PayloadMark] = b.Mark
	}
	if b.Type != "" {
		payload[input.PayloadType] = b.Type
	}

	name := b.Name
	if name == "" {
		name = b.Keys
	}
	return NewPlugin(name, ev.Name(), ev.Modifiers, b.Command, payload), nil
}

// BindingOf converts a plugin back into its serialized form.
func BindingOf(p Plugin) Binding {
	b := Binding{Name: p.Name, Keys: p.Shortcut(), Command: p.Command}
	rest := p.Payload.Clone()
	if m := rest.GetString(input.PayloadMark); m != "" {
		b.Mark = m
		delete(rest, input.PayloadMark)
	}
	if t := rest.GetString(input.PayloadType); t != "" {
		b.Type = t
		delete(rest, input.PayloadType)
	}
	if len(rest) > 0 {
		b.Payload = rest
	}
	return b
}

// FromBindings converts bindings into plugins, preserving order.
// All bindings are checked; the returned error joins every failure.
func FromBindings(bindings []Binding) ([]Plugin, error) {
	plugins := make([]Plugin, 0, len(bindings))
	var errs []error
	for _, b := range bindings {
		p, err := b.Plugin()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		plugins = append(plugins, p)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return plugins, nil
}
