// Package config loads the parser's tunable constants — the things
// spec.md §9 calls out as process-wide globals in the original
// compiler (DIMEN_MAX, tab size, whether old-style declarators are
// diagnosed) — from an optional TOML file, falling back to defaults
// that match the language reference.
package config

import (
	"os"

	"github.com/naoina/toml"
)

// Config holds every parser-tunable value. Config instances are never
// mutated after Load returns; share one across parses freely.
type Config struct {
	// DimenMax bounds the number of array dimensions a declarator may
	// carry (spec.md §4.2); overflow truncates and reports an error.
	DimenMax int `toml:"dimen_max"`

	// TabSize is the tab width setting for caret-column reporting. No
	// package reads it: diag.Sink.Print counts a tab as 4 columns
	// regardless of this value.
	TabSize int `toml:"tab_size"`

	// RequireNewDecls, when true, makes the declarator grammar
	// diagnose old-style ("Tag:name") declarators on sight — the
	// require_new_decls scoped flag's default, configurable instead
	// of a compile-time pragma.
	RequireNewDecls bool `toml:"require_new_decls"`

	// WarnAssignInTest controls whether `=` inside a condition
	// expression emits the "possibly unintended assignment" warning.
	WarnAssignInTest bool `toml:"warn_assign_in_test"`
}

// Default returns the built-in configuration used when no TOML file is
// supplied.
func Default() *Config {
	return &Config{
		DimenMax:         4,
		TabSize:          4,
		RequireNewDecls:  false,
		WarnAssignInTest: true,
	}
}

// Load reads a TOML configuration file, applying its values on top of
// Default so a partial file only overrides what it mentions.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
