// Package input defines the Command record that connects key handling to
// the dispatcher.
//
// A Command is pure data: a name, a payload of options and a source. The
// shortcut chain (package shortcut) produces commands from key events, the
// host may build them directly, and the dispatcher interprets them:
//
//	cmd := input.NewCommand("toggle_mark", input.Payload{input.PayloadMark: "bold"}).
//	    WithScope(document.Whole(doc))
//
// Sub-packages:
//
//   - key: key events, modifiers and key specification parsing
//   - shortcut: the ordered shortcut plugin chain
package input
