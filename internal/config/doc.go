// Package config provides configuration for the inkwell editor.
//
// A Config starts from Default, is overlaid with a TOML or YAML file, and
// finally with INKWELL_* environment variables:
//
//	cfg, err := config.Load("inkwell.toml")
//	if err != nil {
//	    return err
//	}
//	chain, err := cfg.Chain()
//
// File format is chosen by extension (.toml, .yaml, .yml). A Watcher
// reloads the file when it changes on disk so shortcut tables can be
// edited while the editor runs.
//
// Example inkwell.toml:
//
//	[log]
//	level = "debug"
//
//	[render]
//	mode = "term"
//	code_background = "#282a36"
//
//	[render.aliases]
//	quote = "code"
//
//	[keymap]
//	defaults = true
//
//	[[shortcuts]]
//	name = "underline"
//	keys = "Ctrl+u"
//	command = "toggle_mark"
//	mark = "underline"
package config
