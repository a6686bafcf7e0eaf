// Package fmtspec renders primitive values with compact format
// specifications and writes them to labelled, verbosity-gated sinks.
//
// A specification is a short string parsed left to right:
//
//	[[fill]align][sign][#][0][width][type]
//
//   - fill: any character, default space; only recognised before an align character
//   - align: '<' left, '>' right, '^' center
//   - sign: '+' always, '-' negative only (default), ' ' space for positive
//   - '#': alternate form, adds a 0b or 0x prefix to binary and hex output
//   - '0': sign aware, pads with zeros between the sign or prefix and the digits
//   - width: up to three digits, at most [MaxWidth]
//   - type: 'b'/'B' binary, 'c' char, 'd' decimal, 's' string, 'x'/'X' hex
//
// Parsing never fails; an unrecognised field keeps its default and anything
// after the type character is ignored. See [Parse].
//
// # Rendering
//
// [F] pairs a value with a specification; a [Sink] renders it:
//
//	fmtspec.Print().Putln(fmtspec.F("#010x", uint32(42)))   // 0x0000002a
//	fmtspec.Print().Putln(fmtspec.F("^10s", "hi"))          //     hi
//	fmtspec.Print().Putln(fmtspec.F("+d", 7), " ", true)    // +7 true
//
// Values without an [Arg] render with [Defaults]. Text (bool, [Char], string)
// aligns left by default and integers align right. Non-nil pointers always
// render as zero-padded hex; nil renders "nullptr".
//
// Go's byte and rune are integer aliases, so they render as numbers. Wrap a
// character in [Char] to render it as text.
//
// # Sinks
//
// [Print] and [Debug] write to stdout, [Alert] and [Error] to stderr. Debug,
// Alert and Error start with a coloured "DEBUG ", "ALERT " or "ERROR " label.
// A sink created at a [Level] above the configured threshold discards, and a
// discarding sink skips all rendering work:
//
//	fmtspec.VV.Debug().Putln("cache miss: ", key)
//
// # Configuration
//
// The threshold, colour mode and destinations are process-wide and set once
// at start-up with [Configure]. [LoadConfig] reads YAML or TOML files and
// [ConfigFromEnv] applies FMTSPEC_LEVEL, FMTSPEC_COLOR, NO_COLOR and
// FORCE_COLOR. The default threshold can be fixed at link time:
//
//	go build -ldflags "-X github.com/bjaus/fmtspec.buildLevel=vv"
//
// # Errors
//
// Rendering never returns errors. A width longer than three digits, or a
// width override outside [0, MaxWidth], is clamped to MaxWidth and reported
// to the handler installed with [SetInvalidArgumentHandler]. A [Checked]
// value that overflowed renders "[error]". The package exports sentinel
// errors for configuration parsing:
//
//   - [ErrInvalidArgument]: clamped width
//   - [ErrInvalidLevel]: unknown level name
//   - [ErrInvalidColorMode]: unknown colour mode
//   - [ErrUnsupportedConfig]: unknown config file extension
package fmtspec
