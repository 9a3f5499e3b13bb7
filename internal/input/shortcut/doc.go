// Package shortcut turns key events into commands.
//
// A Plugin is a plain configuration record binding a trigger key and a
// required modifier to a command name and payload. A Chain holds an ordered
// list of plugins and interprets them: the first plugin whose trigger and
// modifier match a key event consumes it and yields a command carrying the
// plugin payload plus the current scope. Events that match nothing are left
// to the host.
//
// Plugins are data. They hold no state between events and carry no custom
// code, so the same Chain logic serves plugins declared in Go, in config
// files, or in Lua scripts.
package shortcut
