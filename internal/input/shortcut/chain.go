package shortcut

import (
	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/input"
	"github.com/dshills/inkwell/internal/input/key"
)

// Chain is an ordered, immutable list of plugins.
// Registration order decides which plugin wins when several match.
type Chain struct {
	plugins []Plugin
}

// NewChain creates a chain holding plugins in the given order.
func NewChain(plugins ...Plugin) Chain {
	return Chain{plugins: clonePlugins(plugins)}
}

// Default returns the standard chain: italic on Ctrl+i, bold on Ctrl+b and
// code block on Meta+m, checked in that order.
func Default() Chain {
	return NewChain(
		MarkHotkey("i", string(document.MarkItalic)),
		MarkHotkey("b", string(document.MarkBold)),
		BlockHotkey("m", document.TypeCode),
	)
}

// With returns a new chain with plugins appended after the existing ones.
func (c Chain) With(plugins ...Plugin) Chain {
	out := make([]Plugin, 0, len(c.plugins)+len(plugins))
	out = append(out, c.plugins...)
	out = append(out, plugins...)
	return Chain{plugins: clonePlugins(out)}
}

// Prepend returns a new chain with plugins placed before the existing ones.
func (c Chain) Prepend(plugins ...Plugin) Chain {
	return NewChain(plugins...).With(c.plugins...)
}

// Len returns the number of plugins.
func (c Chain) Len() int {
	return len(c.plugins)
}

// Plugins returns a copy of the plugin list.
func (c Chain) Plugins() []Plugin {
	return clonePlugins(c.plugins)
}

// Match returns the first plugin matching ev.
func (c Chain) Match(ev key.Event) (Plugin, bool) {
	for _, p := range c.plugins {
		if p.Matches(ev) {
			return p, true
		}
	}
	return Plugin{}, false
}

// Handle offers ev to the chain. When a plugin matches, the event is
// consumed and the returned command carries the plugin payload plus scope.
// When nothing matches, Handle returns false and the host should apply its
// default key behavior.
func (c Chain) Handle(ev key.Event, scope document.Range) (input.Command, bool) {
	p, ok := c.Match(ev)
	if !ok {
		return input.Command{}, false
	}
	cmd := input.NewCommand(p.Command, p.Payload).
		WithScope(scope).
		WithSource(input.SourceKeyboard)
	return cmd, true
}

func clonePlugins(plugins []Plugin) []Plugin {
	out := make([]Plugin, len(plugins))
	for i, p := range plugins {
		p.Payload = p.Payload.Clone()
		out[i] = p
	}
	return out
}
