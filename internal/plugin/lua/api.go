package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/input/shortcut"
)

// installAPI registers the inkwell global table and replaces print.
func (s *State) installAPI() {
	L := s.L
	mod := L.NewTable()
	L.SetField(mod, "bind", L.NewFunction(s.bind))
	L.SetField(mod, "mark_hotkey", L.NewFunction(s.markHotkey))
	L.SetField(mod, "block_hotkey", L.NewFunction(s.blockHotkey))
	L.SetField(mod, "alias", L.NewFunction(s.alias))
	L.SetField(mod, "mark_alias", L.NewFunction(s.markAlias))
	L.SetField(mod, "log", L.NewFunction(s.print))
	L.SetGlobal("inkwell", mod)

	L.SetGlobal("print", L.NewFunction(s.print))
}

// bind{name, keys, command, mark?, type?, payload?} -> name
func (s *State) bind(L *lua.LState) int {
	tbl := L.CheckTable(1)

	b := shortcut.Binding{
		Name:    stringField(L, tbl, "name"),
		Keys:    stringField(L, tbl, "keys"),
		Command: stringField(L, tbl, "command"),
		Mark:    stringField(L, tbl, "mark"),
		Type:    stringField(L, tbl, "type"),
	}
	switch v := L.GetField(tbl, "payload").(type) {
	case *lua.LTable:
		b.Payload = toMap(v)
	case *lua.LNilType:
	default:
		L.ArgError(1, "payload must be a table")
		return 0
	}

	p, err := b.Plugin()
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	s.plugins = append(s.plugins, p)
	L.Push(lua.LString(p.Name))
	return 1
}

// mark_hotkey(trigger, mark) -> name
// Ctrl+trigger toggles mark.
func (s *State) markHotkey(L *lua.LState) int {
	trigger := L.CheckString(1)
	mark := L.CheckString(2)
	if trigger == "" || mark == "" {
		L.ArgError(1, "trigger and mark cannot be empty")
		return 0
	}
	p := shortcut.MarkHotkey(trigger, mark)
	s.plugins = append(s.plugins, p)
	L.Push(lua.LString(p.Name))
	return 1
}

// block_hotkey(trigger, type) -> name
// Meta+trigger toggles the block type.
func (s *State) blockHotkey(L *lua.LState) int {
	trigger := L.CheckString(1)
	typ := L.CheckString(2)
	if trigger == "" || typ == "" {
		L.ArgError(1, "trigger and type cannot be empty")
		return 0
	}
	p := shortcut.BlockHotkey(trigger, typ)
	s.plugins = append(s.plugins, p)
	L.Push(lua.LString(p.Name))
	return 1
}

// alias(from, to)
func (s *State) alias(L *lua.LState) int {
	from, to := L.CheckString(1), L.CheckString(2)
	if from == "" || to == "" {
		L.ArgError(1, "alias names cannot be empty")
		return 0
	}
	s.aliases = append(s.aliases, Alias{From: from, To: to})
	return 0
}

// mark_alias(from, to)
func (s *State) markAlias(L *lua.LState) int {
	from, to := L.CheckString(1), L.CheckString(2)
	if from == "" || to == "" {
		L.ArgError(1, "alias names cannot be empty")
		return 0
	}
	s.markAliases = append(s.markAliases, Alias{From: from, To: to})
	return 0
}

func (s *State) print(L *lua.LState) int {
	s.logger.Info(printArgs(L), "script", s.script)
	return 0
}

// stringField reads an optional string field of tbl.
func stringField(L *lua.LState, tbl *lua.LTable, name string) string {
	switch v := L.GetField(tbl, name).(type) {
	case lua.LString:
		return string(v)
	case *lua.LNilType:
		return ""
	default:
		L.ArgError(1, fmt.Sprintf("%s must be a string, got %s", name, v.Type()))
		return ""
	}
}

// toMap converts a table with string keys into Go values.
// Nested tables become maps; functions and userdata are skipped.
func toMap(tbl *lua.LTable) map[string]any {
	out := make(map[string]any)
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		if gv, ok := toValue(v); ok {
			out[string(ks)] = gv
		}
	})
	return out
}

func toValue(v lua.LValue) (any, bool) {
	switch v := v.(type) {
	case lua.LString:
		return string(v), true
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f), true
		}
		return f, true
	case lua.LBool:
		return bool(v), true
	case *lua.LTable:
		return toMap(v), true
	default:
		return nil, false
	}
}
