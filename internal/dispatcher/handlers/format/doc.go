// Package format provides the formatting command handlers: mark and block
// toggles plus their explicit add, remove and set variants.
//
// Commands read their options from the payload:
//
//	scope  document.Range  the range to format (required; empty is a no-op)
//	mark   string          mark tag for mark commands
//	type   string          block type for block commands
//
// The legacy names toggle_bold_mark and toggle_code_block carry a fixed
// mark or block type and need only a scope.
package format
