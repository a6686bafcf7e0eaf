package fmtspec

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level is a verbosity level. A sink created at a level above the configured
// threshold discards everything written to it.
type Level uint8

const (
	CriticalOnly Level = iota // always printed
	V                         // verbose
	VV                        // very verbose
	VVV                       // everything
)

var levelNames = [...]string{"critical", "v", "vv", "vvv"}

// String returns the level name.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// ParseLevel accepts a level name ("critical", "v", "vv", "vvv") or its
// number ("0" to "3").
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if s == name || s == strconv.Itoa(i) {
			return Level(i), nil
		}
	}
	if s == "critical_only" || s == "critical-only" {
		return CriticalOnly, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] so both `level: vv` and
// `level: 2` decode.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	return l.UnmarshalText([]byte(node.Value))
}

// Enabled reports whether sinks created at l produce output under the
// current configuration.
func (l Level) Enabled() bool {
	return l <= current().level
}

// LevelIsCriticalOnly reports whether the configured threshold is CriticalOnly.
func LevelIsCriticalOnly() bool { return current().level == CriticalOnly }

// LevelIsAtLeastV reports whether the configured threshold is V or higher.
func LevelIsAtLeastV() bool { return current().level >= V }

// LevelIsAtLeastVV reports whether the configured threshold is VV or higher.
func LevelIsAtLeastVV() bool { return current().level >= VV }

// LevelIsAtLeastVVV reports whether the configured threshold is VVV.
func LevelIsAtLeastVVV() bool { return current().level >= VVV }
