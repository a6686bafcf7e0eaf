package fmtspec_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/fmtspec"
)

// capture points stdout and stderr at buffers for the duration of t.
func capture(t *testing.T, lvl fmtspec.Level, mode fmtspec.ColorMode) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	prev := fmtspec.CurrentConfig()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	fmtspec.Configure(fmtspec.Config{Level: lvl, Color: mode, Stdout: stdout, Stderr: stderr})
	t.Cleanup(func() { fmtspec.Configure(prev) })
	return stdout, stderr
}

// captureLog points the package logger at a buffer for the duration of t.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	fmtspec.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { fmtspec.SetLogger(nil) })
	return &buf
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

type countingStringer struct{ calls *int }

func (c countingStringer) String() string {
	*c.calls++
	return "counted"
}

func TestSinkDestinationsAndLabels(t *testing.T) {
	stdout, stderr := capture(t, fmtspec.CriticalOnly, fmtspec.ColorNever)

	fmtspec.Print().Put("p")
	fmtspec.Debug().Putln("hi ", 1)
	assert.Equal(t, "pDEBUG hi 1\n", stdout.String())

	fmtspec.Alert().Putln("a")
	fmtspec.Error().Putln("e")
	assert.Equal(t, "ALERT a\nERROR e\n", stderr.String())
}

func TestSinkKinds(t *testing.T) {
	capture(t, fmtspec.V, fmtspec.ColorNever)

	assert.Equal(t, fmtspec.KindPrint, fmtspec.Print().Kind())
	assert.Equal(t, fmtspec.KindDebug, fmtspec.Debug().Kind())
	assert.Equal(t, fmtspec.KindAlert, fmtspec.Alert().Kind())
	assert.Equal(t, fmtspec.KindError, fmtspec.Error().Kind())
	assert.Equal(t, fmtspec.KindPrint, fmtspec.V.Print().Kind())
	assert.Equal(t, fmtspec.KindDiscard, fmtspec.VV.Print().Kind())
	assert.Equal(t, fmtspec.KindDiscard, fmtspec.VV.Debug().Kind())
	assert.Equal(t, fmtspec.KindDiscard, fmtspec.VVV.Alert().Kind())
	assert.False(t, fmtspec.Sink{}.Enabled())
	assert.True(t, fmtspec.Print().Enabled())

	assert.Equal(t, "discard", fmtspec.KindDiscard.String())
	assert.Equal(t, "print", fmtspec.KindPrint.String())
	assert.Equal(t, "debug", fmtspec.KindDebug.String())
	assert.Equal(t, "alert", fmtspec.KindAlert.String())
	assert.Equal(t, "error", fmtspec.KindError.String())
	assert.Equal(t, "unknown", fmtspec.Kind(42).String())
}

func TestSinkLevelGating(t *testing.T) {
	stdout, stderr := capture(t, fmtspec.VV, fmtspec.ColorNever)

	fmtspec.V.Print().Put("v ")
	fmtspec.VV.Debug().Put("vv ")
	fmtspec.VVV.Print().Put("vvv ")
	fmtspec.VVV.Debug().Put("vvv")
	assert.Equal(t, "v DEBUG vv ", stdout.String())

	fmtspec.VVV.Alert().Put("hidden")
	assert.Empty(t, stderr.String())

	assert.True(t, fmtspec.VV.Enabled())
	assert.False(t, fmtspec.VVV.Enabled())
}

func TestErrorSinkIgnoresLevel(t *testing.T) {
	stdout, stderr := capture(t, fmtspec.CriticalOnly, fmtspec.ColorNever)

	fmtspec.V.Print().Put("x")
	fmtspec.V.Alert().Put("x")
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())

	fmtspec.Error().Put("still here")
	assert.Equal(t, "ERROR still here", stderr.String())
}

func TestDiscardSkipsRendering(t *testing.T) {
	capture(t, fmtspec.CriticalOnly, fmtspec.ColorNever)
	errs := captureInvalid(t)

	calls := 0
	fmtspec.V.Print().Put(countingStringer{&calls}, fmtspec.F("1234", 1)).Putln(countingStringer{&calls})
	assert.Zero(t, calls)
	assert.Empty(t, *errs, "a discarded Arg is never parsed")

	fmtspec.Print().Put(countingStringer{&calls})
	assert.Equal(t, 1, calls)

	assert.NotPanics(t, func() { fmtspec.Sink{}.Put("x").Putln("y") })
}

func TestSinkColor(t *testing.T) {
	stdout, stderr := capture(t, fmtspec.CriticalOnly, fmtspec.ColorAlways)

	fmtspec.Debug().Put("x")
	fmtspec.Print().Put("y")
	assert.Equal(t, "\x1b[1;92mDEBUG\x1b[0m xy", stdout.String())

	fmtspec.Alert().Put("a")
	fmtspec.Error().Put("e")
	assert.Equal(t, "\x1b[1;93mALERT\x1b[0m a\x1b[1;91mERROR\x1b[0m e", stderr.String())
}

func TestSinkColorAutoOnBuffer(t *testing.T) {
	stdout, _ := capture(t, fmtspec.CriticalOnly, fmtspec.ColorAuto)
	fmtspec.Debug().Put("x")
	assert.Equal(t, "DEBUG x", stdout.String())
}

func TestSharedDestination(t *testing.T) {
	prev := fmtspec.CurrentConfig()
	t.Cleanup(func() { fmtspec.Configure(prev) })

	var buf bytes.Buffer
	fmtspec.Configure(fmtspec.Config{Color: fmtspec.ColorNever, Stdout: &buf, Stderr: &buf})
	fmtspec.Debug().Putln("d")
	fmtspec.Alert().Putln("a")
	assert.Equal(t, "DEBUG d\nALERT a\n", buf.String())

	cfg := fmtspec.CurrentConfig()
	assert.Same(t, &buf, cfg.Stdout)
	assert.Same(t, &buf, cfg.Stderr)
}

func TestConfigureNilWritersUseProcessStreams(t *testing.T) {
	prev := fmtspec.CurrentConfig()
	t.Cleanup(func() { fmtspec.Configure(prev) })

	fmtspec.Configure(fmtspec.Config{Level: fmtspec.VVV})
	cfg := fmtspec.CurrentConfig()
	assert.NotNil(t, cfg.Stdout)
	assert.NotNil(t, cfg.Stderr)
	assert.Equal(t, fmtspec.VVV, cfg.Level)
}

func TestConcurrentPutDoesNotInterleave(t *testing.T) {
	stdout, _ := capture(t, fmtspec.CriticalOnly, fmtspec.ColorNever)

	lines := map[string]string{
		"a": strings.Repeat("a", 200),
		"b": strings.Repeat("b", 200),
		"c": strings.Repeat("c", 200),
	}
	var wg sync.WaitGroup
	for _, line := range lines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				fmtspec.Print().Putln(fmtspec.F(">210", line))
			}
		}()
	}
	wg.Wait()

	got := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, got, 150)
	for _, line := range got {
		trimmed := strings.TrimLeft(line, " ")
		assert.Len(t, line, 210)
		assert.Contains(t, lines, trimmed[:1])
		assert.Equal(t, lines[trimmed[:1]], trimmed)
	}
}

func TestToConfiguredStdoutDoesNotInterleave(t *testing.T) {
	stdout, _ := capture(t, fmtspec.CriticalOnly, fmtspec.ColorNever)

	var wg sync.WaitGroup
	for _, c := range []string{"x", "y"} {
		wg.Add(2)
		line := strings.Repeat(c, 300)
		go func() {
			defer wg.Done()
			for range 40 {
				fmtspec.To(stdout).Putln(line)
			}
		}()
		go func() {
			defer wg.Done()
			for range 40 {
				fmtspec.Print().Putln(line)
			}
		}()
	}
	wg.Wait()

	got := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, got, 160)
	for _, line := range got {
		require.Len(t, line, 300)
		assert.Equal(t, strings.Repeat(line[:1], 300), line)
	}
}

func TestWriteErrorIsLogged(t *testing.T) {
	logs := captureLog(t)

	assert.NotPanics(t, func() {
		fmtspec.To(errWriter{}).Put("x", strings.Repeat("y", 500))
	})
	assert.Contains(t, logs.String(), "write failed")
	assert.Equal(t, 1, strings.Count(logs.String(), "level=ERROR"), "one report per Put")
}

func TestInvalidArgumentDefaultHandlerLogs(t *testing.T) {
	logs := captureLog(t)
	fmtspec.SetInvalidArgumentHandler(nil)

	ops := fmtspec.Parse("12345")
	assert.Equal(t, fmtspec.MaxWidth, ops.Width())
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "invalid argument")
}

func TestLevelPredicates(t *testing.T) {
	tests := []struct {
		level               fmtspec.Level
		critical, v, vv, vvv bool
	}{
		{fmtspec.CriticalOnly, true, false, false, false},
		{fmtspec.V, false, true, false, false},
		{fmtspec.VV, false, true, true, false},
		{fmtspec.VVV, false, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			capture(t, tt.level, fmtspec.ColorNever)
			assert.Equal(t, tt.critical, fmtspec.LevelIsCriticalOnly())
			assert.Equal(t, tt.v, fmtspec.LevelIsAtLeastV())
			assert.Equal(t, tt.vv, fmtspec.LevelIsAtLeastVV())
			assert.Equal(t, tt.vvv, fmtspec.LevelIsAtLeastVVV())
		})
	}
}

func TestLocation(t *testing.T) {
	stdout, _ := capture(t, fmtspec.V, fmtspec.ColorNever)

	loc := fmtspec.Here()
	assert.True(t, strings.HasSuffix(loc.File, "sink_test.go"))
	assert.Positive(t, loc.Line)
	assert.Contains(t, loc.Function, "TestLocation")

	fmtspec.Print().Put(loc)
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "  --> "))
	assert.Contains(t, out, "sink_test.go [")
	assert.Contains(t, out, "]: ")
	assert.Contains(t, out, "TestLocation")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestLocationHiddenAtCriticalOnly(t *testing.T) {
	stdout, _ := capture(t, fmtspec.CriticalOnly, fmtspec.ColorNever)
	fmtspec.Print().Put(fmtspec.Here())
	assert.Empty(t, stdout.String())
}

func TestLocationColor(t *testing.T) {
	stdout, _ := capture(t, fmtspec.VVV, fmtspec.ColorAlways)
	fmtspec.Print().Put(fmtspec.Location{File: "main.go", Line: 7, Function: "main.main"})
	assert.Equal(t, "  --> \x1b[93mmain.go\x1b[0m\x1b[96m [7]\x1b[0m: main.main\n", stdout.String())
}
