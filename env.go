package fmtspec

import (
	"fmt"
	"os"
)

// Environment variables read by [ConfigFromEnv].
const (
	EnvLevel      = "FMTSPEC_LEVEL"
	EnvColor      = "FMTSPEC_COLOR"
	EnvNoColor    = "NO_COLOR"
	EnvForceColor = "FORCE_COLOR"
)

// ConfigFromEnv returns base with overrides from the environment.
//
// FMTSPEC_LEVEL and FMTSPEC_COLOR set the level and colour mode. A non-empty
// NO_COLOR forces ColorNever and takes precedence over everything else; a
// non-empty FORCE_COLOR forces ColorAlways.
func ConfigFromEnv(base Config) (Config, error) {
	cfg := base
	if v, ok := os.LookupEnv(EnvLevel); ok && v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvLevel, err)
		}
		cfg.Level = lvl
	}
	if v, ok := os.LookupEnv(EnvColor); ok && v != "" {
		mode, err := ParseColorMode(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvColor, err)
		}
		cfg.Color = mode
	}
	switch {
	case os.Getenv(EnvNoColor) != "":
		cfg.Color = ColorNever
	case os.Getenv(EnvForceColor) != "":
		cfg.Color = ColorAlways
	}
	return cfg, nil
}
