package lua

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/input"
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/input/shortcut"
)

func newState(t *testing.T, opts ...StateOption) *State {
	t.Helper()
	s, err := NewState(opts...)
	if err != nil {
		t.Fatalf("NewState() error = %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestStateDoString(t *testing.T) {
	s := newState(t)

	if err := s.DoString("test", `x = 1 + 1`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	v, ok := s.GetGlobal("x").(glua.LNumber)
	if !ok || float64(v) != 2 {
		t.Errorf("x = %v, want 2", s.GetGlobal("x"))
	}
}

func TestStateSyntaxError(t *testing.T) {
	s := newState(t)

	err := s.DoString("bad", `invalid lua code !!!`)
	if !errors.Is(err, ErrScript) {
		t.Errorf("DoString() error = %v, want ErrScript", err)
	}
	if err != nil && !strings.Contains(err.Error(), "bad") {
		t.Errorf("error %q does not name the chunk", err)
	}
}

func TestSandbox(t *testing.T) {
	s := newState(t)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "io", "os", "debug"} {
		t.Run(name, func(t *testing.T) {
			if v := s.GetGlobal(name); v != glua.LNil {
				t.Errorf("global %s = %v, want nil", name, v)
			}
		})
	}

	if err := s.DoString("escape", `os.execute("true")`); !errors.Is(err, ErrScript) {
		t.Errorf("os.execute error = %v", err)
	}
	if err := s.DoString("safe", `assert(string.upper("a") == "A" and math.max(1, 2) == 2)`); err != nil {
		t.Errorf("safe libraries unavailable: %v", err)
	}
}

func TestExecutionTimeout(t *testing.T) {
	s := newState(t, WithExecutionTimeout(50*time.Millisecond))

	err := s.DoString("spin", `while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Fatalf("DoString() error = %v, want ErrExecutionTimeout", err)
	}

	// The state stays usable after a timeout.
	if err := s.DoString("after", `y = 3`); err != nil {
		t.Errorf("DoString() after timeout error = %v", err)
	}
}

func TestBind(t *testing.T) {
	s := newState(t)

	err := s.DoString("keys", `
		local name = inkwell.bind{
			name = "underline",
			keys = "Ctrl+u",
			command = "toggle_mark",
			mark = "underline",
		}
		assert(name == "underline")
		inkwell.bind{
			name = "heading",
			keys = "<M-h>",
			command = "toggle_block",
			type = "heading",
			payload = { level = 2 },
		}
	`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	plugins := s.Plugins()
	if len(plugins) != 2 {
		t.Fatalf("Plugins() = %d, want 2", len(plugins))
	}

	u := plugins[0]
	if !u.Matches(key.NewRuneEvent('u', key.ModCtrl)) {
		t.Errorf("%v does not match Ctrl+u", u)
	}
	if u.Command != "toggle_mark" || u.Payload.GetString(input.PayloadMark) != "underline" {
		t.Errorf("underline plugin = %v", u)
	}

	h := plugins[1]
	if !h.Matches(key.NewRuneEvent('h', key.ModMeta)) {
		t.Errorf("%v does not match Meta+h", h)
	}
	if got, _ := h.Payload.Get("level"); got != int64(2) {
		t.Errorf("payload level = %#v, want int64(2)", got)
	}
}

func TestHotkeys(t *testing.T) {
	s := newState(t)

	if err := s.DoString("hotkeys", `
		inkwell.mark_hotkey("s", "strikethrough")
		inkwell.block_hotkey("q", "quote")
	`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	want := []shortcut.Plugin{
		shortcut.MarkHotkey("s", "strikethrough"),
		shortcut.BlockHotkey("q", "quote"),
	}
	got := s.Plugins()
	if len(got) != len(want) {
		t.Fatalf("Plugins() = %v", got)
	}
	for i := range want {
		if got[i].String() != want[i].String() {
			t.Errorf("plugin %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"not a table", `inkwell.bind("Ctrl+u")`},
		{"missing command", `inkwell.bind{keys = "Ctrl+u"}`},
		{"bad keys", `inkwell.bind{keys = "Hyper+u", command = "toggle_mark"}`},
		{"keys not string", `inkwell.bind{keys = 5, command = "toggle_mark"}`},
		{"payload not table", `inkwell.bind{keys = "Ctrl+u", command = "x", payload = 1}`},
		{"empty hotkey", `inkwell.mark_hotkey("", "bold")`},
		{"empty alias", `inkwell.alias("", "code")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState(t)
			if err := s.DoString(tt.name, tt.code); !errors.Is(err, ErrScript) {
				t.Errorf("DoString() error = %v, want ErrScript", err)
			}
		})
	}
}

func TestFailedChunkDeclaresNothing(t *testing.T) {
	s := newState(t)

	err := s.DoString("partial", `
		inkwell.mark_hotkey("s", "strikethrough")
		inkwell.alias("quote", "code")
		error("boom")
	`)
	if !errors.Is(err, ErrScript) {
		t.Fatalf("DoString() error = %v", err)
	}
	if len(s.Plugins()) != 0 || len(s.Aliases()) != 0 {
		t.Errorf("failed chunk left plugins %v, aliases %v", s.Plugins(), s.Aliases())
	}
}

func TestPanicDeclaresNothing(t *testing.T) {
	s := newState(t)

	err := s.run("panicky", func() error {
		s.plugins = append(s.plugins, shortcut.MarkHotkey("s", "strikethrough"))
		s.aliases = append(s.aliases, Alias{From: "quote", To: "code"})
		panic("boom")
	})
	if !errors.Is(err, ErrScript) {
		t.Fatalf("run() error = %v, want ErrScript", err)
	}
	if len(s.Plugins()) != 0 || len(s.Aliases()) != 0 {
		t.Errorf("panicking chunk left plugins %v, aliases %v", s.Plugins(), s.Aliases())
	}
}

func TestAliases(t *testing.T) {
	s := newState(t)

	if err := s.DoString("aliases", `
		inkwell.alias("quote", "code")
		inkwell.mark_alias("strong", "bold")
	`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if got := s.Aliases(); len(got) != 1 || got[0] != (Alias{From: "quote", To: "code"}) {
		t.Errorf("Aliases() = %v", got)
	}
	if got := s.MarkAliases(); len(got) != 1 || got[0] != (Alias{From: "strong", To: "bold"}) {
		t.Errorf("MarkAliases() = %v", got)
	}
}

func TestPrintLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := newState(t, WithLogger(logger))

	if err := s.DoString("hello.lua", `print("hello", 42)`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "hello\t42") && !strings.Contains(out, `hello\t42`) {
		t.Errorf("log output %q missing message", out)
	}
	if !strings.Contains(out, "script=hello.lua") {
		t.Errorf("log output %q missing script attr", out)
	}
}

func TestClosedState(t *testing.T) {
	s, err := NewState()
	if err != nil {
		t.Fatalf("NewState() error = %v", err)
	}
	s.Close()
	s.Close()

	if !s.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	if err := s.DoString("x", `x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString() error = %v, want ErrStateClosed", err)
	}
}

func TestLoadScripts(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.lua")
	bad := filepath.Join(dir, "bad.lua")
	if err := os.WriteFile(good, []byte(`inkwell.mark_hotkey("u", "underline")`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`inkwell.bind{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScripts([]string{good, bad, filepath.Join(dir, "missing.lua")})
	if s == nil {
		t.Fatal("LoadScripts() returned nil state")
	}
	defer s.Close()

	if !errors.Is(err, ErrScript) {
		t.Errorf("LoadScripts() error = %v, want ErrScript", err)
	}
	if got := s.Plugins(); len(got) != 1 || got[0].Name != "underline" {
		t.Errorf("Plugins() = %v", got)
	}
}
