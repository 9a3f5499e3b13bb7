// Package key provides key event types and parsing for shortcut handling.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (a special key or a character)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "b", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+B", "Meta+m", "Ctrl+Shift+P"
//   - Vim-style: "<C-b>", "<D-m>", "<CR>", "<Esc>"
//
// # Key Names
//
// Every event has a symbolic Name used for shortcut matching: the character
// itself for character keys ("b", "M") and the key name for special keys
// ("Enter", "Tab").
package key
