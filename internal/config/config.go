package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dshills/inkwell/internal/input/shortcut"
	"github.com/dshills/inkwell/internal/renderer/term"
)

// Render modes.
const (
	RenderMarkup = "markup"
	RenderTerm   = "term"
)

// Config is the complete editor configuration.
type Config struct {
	Log       LogConfig          `toml:"log" yaml:"log"`
	Render    RenderConfig       `toml:"render" yaml:"render"`
	Keymap    KeymapConfig       `toml:"keymap" yaml:"keymap"`
	Shortcuts []shortcut.Binding `toml:"shortcuts" yaml:"shortcuts"`

	// Scripts are Lua files that declare additional shortcuts and aliases.
	Scripts []string `toml:"scripts" yaml:"scripts"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
}

// RenderConfig configures view production.
type RenderConfig struct {
	// Mode selects the view family: markup or term.
	Mode string `toml:"mode" yaml:"mode"`

	CodeBackground string `toml:"code_background" yaml:"code_background"`
	CodeForeground string `toml:"code_foreground" yaml:"code_foreground"`

	// Aliases render a block type the way another type renders.
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`

	// MarkAliases render a mark the way another mark renders.
	MarkAliases map[string]string `toml:"mark_aliases" yaml:"mark_aliases"`
}

// KeymapConfig configures the shortcut chain.
type KeymapConfig struct {
	// Defaults keeps the built-in italic, bold and code plugins after
	// the configured shortcuts.
	Defaults bool `toml:"defaults" yaml:"defaults"`

	// AltAsMeta reports the terminal Alt key as Meta.
	AltAsMeta bool `toml:"alt_as_meta" yaml:"alt_as_meta"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Render: RenderConfig{
			Mode:           RenderMarkup,
			CodeBackground: term.DefaultCodeBackground,
			CodeForeground: term.DefaultCodeForeground,
		},
		Keymap: KeymapConfig{
			Defaults:  true,
			AltAsMeta: true,
		},
	}
}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Render.Mode {
	case RenderMarkup, RenderTerm:
	default:
		return &ValidationError{Setting: "render.mode", Value: c.Render.Mode, Message: "must be markup or term"}
	}
	if _, err := c.Theme(); err != nil {
		return err
	}
	if _, err := shortcut.FromBindings(c.Shortcuts); err != nil {
		return &ValidationError{Setting: "shortcuts", Value: len(c.Shortcuts), Message: err.Error()}
	}
	return nil
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(c.Log.Level))); err != nil {
		return slog.LevelInfo, &ValidationError{Setting: "log.level", Value: c.Log.Level, Message: "unknown level"}
	}
	return level, nil
}

// Theme builds the terminal theme from the render colors.
func (c Config) Theme() (term.Theme, error) {
	t, err := term.NewTheme(c.Render.CodeBackground, c.Render.CodeForeground)
	if err != nil {
		return term.Theme{}, &ValidationError{Setting: "render.code_*", Value: c.Render.CodeBackground + "/" + c.Render.CodeForeground, Message: err.Error()}
	}
	return t, nil
}

// Chain builds the shortcut chain: configured shortcuts first, then the
// defaults when Keymap.Defaults is set.
func (c Config) Chain() (shortcut.Chain, error) {
	plugins, err := shortcut.FromBindings(c.Shortcuts)
	if err != nil {
		return shortcut.Chain{}, fmt.Errorf("config: shortcuts: %w", err)
	}
	if !c.Keymap.Defaults {
		return shortcut.NewChain(plugins...), nil
	}
	return shortcut.Default().Prepend(plugins...), nil
}

// AliasPairs returns the block aliases sorted by source type.
func (c Config) AliasPairs() [][2]string {
	return sortedPairs(c.Render.Aliases)
}

// MarkAliasPairs returns the mark aliases sorted by source mark.
func (c Config) MarkAliasPairs() [][2]string {
	return sortedPairs(c.Render.MarkAliases)
}

func sortedPairs(m map[string]string) [][2]string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, m[k]})
	}
	return pairs
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	out := c
	out.Shortcuts = append([]shortcut.Binding(nil), c.Shortcuts...)
	out.Scripts = append([]string(nil), c.Scripts...)
	out.Render.Aliases = cloneMap(c.Render.Aliases)
	out.Render.MarkAliases = cloneMap(c.Render.MarkAliases)
	return out
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
