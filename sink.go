package fmtspec

import (
	"io"
	"reflect"
	"sync"
)

// Kind identifies a sink variant.
type Kind uint8

const (
	KindDiscard Kind = iota // accepts everything, writes nothing
	KindPrint               // stdout, no label
	KindDebug               // stdout, "DEBUG " label
	KindAlert               // stderr, "ALERT " label
	KindError               // stderr, "ERROR " label
)

var kindNames = [...]string{"discard", "print", "debug", "alert", "error"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// console serialises writes to one destination so that the output of two
// Put calls never interleaves.
type console struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

func newConsole(w io.Writer, mode ColorMode) *console {
	return &console{w: w, color: colorEnabled(mode, w)}
}

// Sink is an output destination. Its kind is fixed when it is created: a
// sink created at a level above the configured threshold is a discard sink,
// and everything written to it is dropped before any rendering work is done.
//
// Sinks are small values; pass them by value and chain Put calls:
//
//	fmtspec.Print().Put("answer: ", fmtspec.F("#06x", 42), fmtspec.Endl)
type Sink struct {
	kind  Kind
	out   *console
	level Level
}

// Print returns a label-free stdout sink at the CriticalOnly level.
func Print() Sink { return CriticalOnly.Print() }

// Debug returns a stdout sink at the CriticalOnly level that starts with a
// "DEBUG " label.
func Debug() Sink { return CriticalOnly.Debug() }

// Alert returns a stderr sink at the CriticalOnly level that starts with an
// "ALERT " label.
func Alert() Sink { return CriticalOnly.Alert() }

// Error returns a stderr sink that starts with an "ERROR " label. Error
// sinks ignore the verbosity threshold.
func Error() Sink {
	s := current()
	return newSink(KindError, s.stderr, s.level)
}

// Print returns a label-free stdout sink at level l.
func (l Level) Print() Sink {
	s := current()
	if l > s.level {
		return Sink{}
	}
	return newSink(KindPrint, s.stdout, s.level)
}

// Debug returns a labelled stdout sink at level l.
func (l Level) Debug() Sink {
	s := current()
	if l > s.level {
		return Sink{}
	}
	return newSink(KindDebug, s.stdout, s.level)
}

// Alert returns a labelled stderr sink at level l.
func (l Level) Alert() Sink {
	s := current()
	if l > s.level {
		return Sink{}
	}
	return newSink(KindAlert, s.stderr, s.level)
}

// To returns a label-free sink writing to w. It is never discarded.
//
// When w is the configured stdout or stderr the sink shares that
// destination's lock with the level-gated sinks. Any other writer gets a lock
// of its own per call, so goroutines writing to the same w should share one
// sink returned by To rather than call To separately.
func To(w io.Writer) Sink {
	s := current()
	return Sink{kind: KindPrint, out: s.consoleFor(w), level: s.level}
}

// consoleFor returns the configured console writing to w, or a new one.
func (s *state) consoleFor(w io.Writer) *console {
	if t := reflect.TypeOf(w); t != nil && t.Comparable() {
		switch w {
		case s.stdout.w:
			return s.stdout
		case s.stderr.w:
			return s.stderr
		}
	}
	return newConsole(w, s.mode)
}

func newSink(kind Kind, out *console, level Level) Sink {
	sk := Sink{kind: kind, out: out, level: level}
	switch kind {
	case KindDebug:
		sk.label(seqBoldGreen, "DEBUG")
	case KindAlert:
		sk.label(seqBoldYellow, "ALERT")
	case KindError:
		sk.label(seqBoldRed, "ERROR")
	}
	return sk
}

func (s Sink) label(seq, text string) {
	s.emit(func(e *emitter) {
		paint(e, seq, text)
		e.writeByte(' ')
	})
}

// Kind returns the sink variant.
func (s Sink) Kind() Kind { return s.kind }

// Enabled reports whether s produces output.
func (s Sink) Enabled() bool { return s.kind != KindDiscard }

// Put renders each value in order with the default options; an [Arg]
// renders with its own options. An empty string renders as
// "[empty string]". Put returns s for chaining.
func (s Sink) Put(vals ...any) Sink {
	if s.kind == KindDiscard {
		return s
	}
	s.emit(func(e *emitter) {
		for _, v := range vals {
			putValue(e, Defaults, v)
		}
	})
	return s
}

// Putln is Put followed by a newline.
func (s Sink) Putln(vals ...any) Sink {
	if s.kind == KindDiscard {
		return s
	}
	s.emit(func(e *emitter) {
		for _, v := range vals {
			putValue(e, Defaults, v)
		}
		e.writeByte('\n')
	})
	return s
}

// emit runs fn with exclusive access to the sink's destination.
func (s Sink) emit(fn func(e *emitter)) {
	s.out.mu.Lock()
	defer s.out.mu.Unlock()
	e := emitter{w: s.out.w, color: s.out.color, level: s.level}
	fn(&e)
	e.flush()
	if e.err != nil {
		reportWriteError(e.err)
	}
}

// putValue renders v with ops. With the default options a bare string goes
// through the generic path and an empty one renders a placeholder.
func putValue(e *emitter, ops Options, v any) {
	val := ValueOf(v)
	if s, ok := val.(Str); ok && s == "" && ops == Defaults {
		e.writeString(emptyStringText)
		return
	}
	val.render(e, ops)
}
