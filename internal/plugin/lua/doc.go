// Package lua runs user scripts that extend the shortcut chain and the
// render aliases.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. The editor API lives in the global inkwell
// table:
//
//	inkwell.bind{name = "underline", keys = "Ctrl+u",
//	             command = "toggle_mark", mark = "underline"}
//	inkwell.mark_hotkey("s", "strikethrough")   -- Ctrl+s
//	inkwell.block_hotkey("q", "quote")          -- Meta+q
//	inkwell.alias("quote", "code")
//	inkwell.mark_alias("strong", "bold")
//
// Usage:
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(time.Second))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	if err := state.DoFile("keys.lua"); err != nil {
//	    return err
//	}
//	chain = chain.Prepend(state.Plugins()...)
//
// A State is safe for use from multiple goroutines; script execution is
// serialized.
package lua
