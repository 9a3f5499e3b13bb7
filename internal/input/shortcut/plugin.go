package shortcut

import (
	"fmt"

	"github.com/dshills/inkwell/internal/input"
	"github.com/dshills/inkwell/internal/input/key"
)

// Plugin binds a keyboard shortcut to a command.
type Plugin struct {
	// Name identifies the plugin in logs and listings.
	Name string

	// Trigger is the symbolic key name the event must carry (see key.Event.Name).
	Trigger string

	// Modifier is the set of modifiers that must be held.
	// Extra modifiers on the event do not prevent a match.
	Modifier key.Modifier

	// Command is the name of the command to emit.
	Command string

	// Payload is merged into the emitted command's payload.
	Payload input.Payload
}

// NewPlugin creates a plugin. The payload is copied.
func NewPlugin(name, trigger string, mod key.Modifier, command string, payload input.Payload) Plugin {
	return Plugin{
		Name:     name,
		Trigger:  trigger,
		Modifier: mod,
		Command:  command,
		Payload:  payload.Clone(),
	}
}

// MarkHotkey creates a plugin that toggles mark when Ctrl+trigger is pressed.
func MarkHotkey(trigger, mark string) Plugin {
	return NewPlugin(mark, trigger, key.ModCtrl, "toggle_mark", input.Payload{input.PayloadMark: mark})
}

// BlockHotkey creates a plugin that toggles the block type when Meta+trigger is pressed.
func BlockHotkey(trigger, blockType string) Plugin {
	return NewPlugin(blockType, trigger, key.ModMeta, "toggle_block", input.Payload{input.PayloadType: blockType})
}

// Matches reports whether ev triggers the plugin.
func (p Plugin) Matches(ev key.Event) bool {
	return p.Trigger != "" && ev.Modifiers.Has(p.Modifier) && ev.Name() == p.Trigger
}

// Shortcut returns the key spec for the plugin, e.g. "Ctrl+b".
func (p Plugin) Shortcut() string {
	if p.Modifier.IsEmpty() {
		return p.Trigger
	}
	return p.Modifier.String() + "+" + p.Trigger
}

// String returns a short description like "bold: Ctrl+b -> toggle_mark".
func (p Plugin) String() string {
	return fmt.Sprintf("%s: %s -> %s", p.Name, p.Shortcut(), p.Command)
}
