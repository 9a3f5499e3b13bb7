package input

import (
	"maps"

	"github.com/dshills/inkwell/internal/document"
)

// Well-known payload keys.
const (
	// PayloadScope holds the document.Range a command applies to.
	PayloadScope = "scope"

	// PayloadMark holds the mark tag for mark commands.
	PayloadMark = "mark"

	// PayloadType holds the block type for block commands.
	PayloadType = "type"
)

// Source indicates the origin of a command.
type Source uint8

const (
	// SourceAPI indicates the command was issued directly by the host.
	SourceAPI Source = iota
	// SourceKeyboard indicates the command came from a shortcut plugin.
	SourceKeyboard
	// SourceScript indicates the command came from a Lua script.
	SourceScript
)

// String returns a string representation of the command source.
func (s Source) String() string {
	switch s {
	case SourceAPI:
		return "api"
	case SourceKeyboard:
		return "keyboard"
	case SourceScript:
		return "script"
	default:
		return "unknown"
	}
}

// Payload maps option names to values.
type Payload map[string]any

// Clone returns a shallow copy of the payload.
func (p Payload) Clone() Payload {
	if p == nil {
		return Payload{}
	}
	return maps.Clone(p)
}

// Get retrieves a value from the payload.
func (p Payload) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p[key]
	return v, ok
}

// GetString retrieves a string value. Mark values are accepted as strings.
func (p Payload) GetString(key string) string {
	v, ok := p.Get(key)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case document.Mark:
		return string(s)
	}
	return ""
}

// GetBool retrieves a bool value from the payload.
func (p Payload) GetBool(key string) bool {
	if v, ok := p.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Scope retrieves the scope and whether one was present.
func (p Payload) Scope() (document.Range, bool) {
	v, ok := p.Get(PayloadScope)
	if !ok {
		return document.Range{}, false
	}
	switch r := v.(type) {
	case document.Range:
		return r, true
	case *document.Range:
		if r != nil {
			return *r, true
		}
	}
	return document.Range{}, false
}

// Command is a data-only request to perform a mutation. It is interpreted
// by the dispatcher, never applied directly.
type Command struct {
	// Name is the command identifier (e.g., "toggle_mark", "toggle_block").
	Name string

	// Payload contains command-specific options.
	Payload Payload

	// Source indicates where this command originated.
	Source Source
}

// NewCommand creates a command with a copy of payload.
func NewCommand(name string, payload Payload) Command {
	return Command{Name: name, Payload: payload.Clone()}
}

// With returns a copy of the command with key set in its payload.
func (c Command) With(key string, value any) Command {
	c.Payload = c.Payload.Clone()
	c.Payload[key] = value
	return c
}

// WithScope returns a copy of the command carrying scope.
func (c Command) WithScope(scope document.Range) Command {
	return c.With(PayloadScope, scope)
}

// WithSource returns a copy of the command with the given source.
func (c Command) WithSource(src Source) Command {
	c.Source = src
	return c
}
