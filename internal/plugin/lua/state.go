package lua

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/input/shortcut"
	"github.com/dshills/inkwell/internal/logging"
)

// DefaultExecutionTimeout bounds a single DoFile or DoString call.
const DefaultExecutionTimeout = 2 * time.Second

// Alias maps one renderer type or mark name onto another.
type Alias struct {
	From string
	To   string
}

// State wraps a sandboxed gopher-lua state and collects what scripts
// declare through the inkwell API.
type State struct {
	L *lua.LState

	mu sync.Mutex

	timeout time.Duration
	logger  *slog.Logger

	// script is the name of the chunk currently running.
	script string

	plugins     []shortcut.Plugin
	aliases     []Alias
	markAliases []Alias

	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the deadline for each script run. Zero disables it.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// WithLogger routes script print output to logger.
func WithLogger(logger *slog.Logger) StateOption {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewState creates a new sandboxed Lua state with the inkwell API installed.
func NewState(opts ...StateOption) (*State, error) {
	s := &State{
		timeout: DefaultExecutionTimeout,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)
	installSandbox(L)
	s.L = L
	s.installAPI()

	return s, nil
}

// DoFile executes a Lua file.
func (s *State) DoFile(path string) error {
	return s.run(filepath.Base(path), func() error {
		return s.L.DoFile(path)
	})
}

// DoString executes a Lua chunk. name identifies it in errors and logs.
// A chunk that fails declares nothing.
func (s *State) DoString(name, code string) error {
	return s.run(name, func() error {
		return s.L.DoString(code)
	})
}

func (s *State) run(name string, fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	s.script = name
	defer func() { s.script = "" }()

	np, na, nm := len(s.plugins), len(s.aliases), len(s.markAliases)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: panic: %v", ErrScript, name, r)
		}
		if err != nil {
			s.plugins, s.aliases, s.markAliases = s.plugins[:np], s.aliases[:na], s.markAliases[:nm]
		}
	}()

	if err := fn(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %s", ErrExecutionTimeout, name)
		}
		return fmt.Errorf("%w: %s: %v", ErrScript, name, err)
	}
	return nil
}

// Plugins returns the shortcut plugins declared so far, in declaration order.
func (s *State) Plugins() []shortcut.Plugin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shortcut.Plugin(nil), s.plugins...)
}

// Aliases returns the block type aliases declared so far.
func (s *State) Aliases() []Alias {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Alias(nil), s.aliases...)
}

// MarkAliases returns the mark aliases declared so far.
func (s *State) MarkAliases() []Alias {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Alias(nil), s.markAliases...)
}

// GetGlobal returns a global variable.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// Close releases the Lua state.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// IsClosed reports whether Close has been called.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// printArgs joins print arguments the way Lua's print does.
func printArgs(L *lua.LState) string {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	return strings.Join(parts, "\t")
}
