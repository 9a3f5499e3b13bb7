package config

import (
	"path/filepath"
	"strconv"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "INKWELL_"

// LookupFunc reports the value of an environment variable.
type LookupFunc func(name string) (string, bool)

// envSetting applies one environment variable to a config.
type envSetting struct {
	setting string
	apply   func(c *Config, v string) error
}

func stringSetting(setting string, field func(c *Config) *string) envSetting {
	return envSetting{setting: setting, apply: func(c *Config, v string) error {
		*field(c) = v
		return nil
	}}
}

func boolSetting(setting string, field func(c *Config) *bool) envSetting {
	return envSetting{setting: setting, apply: func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ValidationError{Setting: setting, Value: v, Message: "not a boolean"}
		}
		*field(c) = b
		return nil
	}}
}

// envMapping maps variable names, without prefix, to settings.
var envMapping = map[string]envSetting{
	"LOG_LEVEL": stringSetting("log.level", func(c *Config) *string { return &c.Log.Level }),
	"RENDER":    stringSetting("render.mode", func(c *Config) *string { return &c.Render.Mode }),
	"CODE_BG":   stringSetting("render.code_background", func(c *Config) *string { return &c.Render.CodeBackground }),
	"CODE_FG":   stringSetting("render.code_foreground", func(c *Config) *string { return &c.Render.CodeForeground }),
	"DEFAULTS":  boolSetting("keymap.defaults", func(c *Config) *bool { return &c.Keymap.Defaults }),
	"ALT_META":  boolSetting("keymap.alt_as_meta", func(c *Config) *bool { return &c.Keymap.AltAsMeta }),
	"SCRIPTS": {setting: "scripts", apply: func(c *Config, v string) error {
		c.Scripts = append(c.Scripts, filepath.SplitList(v)...)
		return nil
	}},
}

// EnvNames returns the recognized environment variable names.
func EnvNames() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, EnvPrefix+name)
	}
	return names
}

// ApplyEnv overlays environment variables onto cfg. Empty values are
// treated as set. INKWELL_SCRIPTS is a path list appended to Scripts.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for name, s := range envMapping {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		if err := s.apply(cfg, v); err != nil {
			return err
		}
	}
	return nil
}
