package fmtspec

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// buildLevel is the default threshold, set at link time with
//
//	-ldflags "-X github.com/bjaus/fmtspec.buildLevel=vv"
var buildLevel = "critical"

// ColorMode controls whether sink labels and location lines are coloured.
type ColorMode uint8

const (
	ColorAuto   ColorMode = iota // colour when the stream is a terminal and NO_COLOR is unset
	ColorAlways                  // always emit escape sequences
	ColorNever                   // never emit escape sequences
)

var colorModeNames = [...]string{"auto", "always", "never"}

// String returns the mode name.
func (m ColorMode) String() string {
	if int(m) < len(colorModeNames) {
		return colorModeNames[m]
	}
	return fmt.Sprintf("colormode(%d)", int(m))
}

// ParseColorMode accepts "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorModeNames {
		if s == name {
			return ColorMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColorMode, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *ColorMode) UnmarshalText(text []byte) error {
	v, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (m *ColorMode) UnmarshalYAML(node *yaml.Node) error {
	return m.UnmarshalText([]byte(node.Value))
}

// Config is the process-wide output configuration.
type Config struct {
	// Level is the verbosity threshold. Sinks created above it discard.
	Level Level `yaml:"level" toml:"level"`
	// Color controls escape sequences in labels and location lines.
	Color ColorMode `yaml:"color" toml:"color"`
	// Stdout receives Print and Debug output. Nil means os.Stdout.
	Stdout io.Writer `yaml:"-" toml:"-"`
	// Stderr receives Alert and Error output. Nil means os.Stderr.
	Stderr io.Writer `yaml:"-" toml:"-"`
}

// DefaultConfig returns the configuration in effect before any call to
// [Configure]: the link-time level, automatic colour and the process streams.
func DefaultConfig() Config {
	lvl, err := ParseLevel(buildLevel)
	if err != nil {
		lvl = CriticalOnly
	}
	return Config{Level: lvl}
}

type state struct {
	level  Level
	mode   ColorMode
	stdout *console
	stderr *console
}

var (
	active atomic.Pointer[state]
	logger atomic.Pointer[slog.Logger]
)

func init() {
	Configure(DefaultConfig())
}

// Configure replaces the process-wide configuration. It is meant to be
// called once during start-up, before anything is rendered.
func Configure(cfg Config) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	s := &state{
		level:  cfg.Level,
		mode:   cfg.Color,
		stdout: newConsole(cfg.Stdout, cfg.Color),
	}
	if cfg.Stderr == cfg.Stdout {
		s.stderr = s.stdout
	} else {
		s.stderr = newConsole(cfg.Stderr, cfg.Color)
	}
	active.Store(s)
}

func current() *state {
	return active.Load()
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	s := current()
	return Config{
		Level:  s.level,
		Color:  s.mode,
		Stdout: s.stdout.w,
		Stderr: s.stderr.w,
	}
}

// LoadConfig reads the level and colour settings from a YAML (.yaml, .yml)
// or TOML (.toml) file. Unset fields keep the values of [DefaultConfig].
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedConfig, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// SetLogger replaces the logger used for invalid-argument reports and write
// failures. A nil logger restores [slog.Default].
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func pkgLogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
