package fmtspec

import (
	"io"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// SGR sequences are built once so colouring never allocates while rendering.
var (
	seqReset      = termenv.CSI + termenv.ResetSeq + "m"
	seqBoldGreen  = sgr(termenv.BoldSeq, termenv.ANSIBrightGreen)
	seqBoldYellow = sgr(termenv.BoldSeq, termenv.ANSIBrightYellow)
	seqBoldRed    = sgr(termenv.BoldSeq, termenv.ANSIBrightRed)
	seqYellow     = sgr("", termenv.ANSIBrightYellow)
	seqCyan       = sgr("", termenv.ANSIBrightCyan)
)

func sgr(attr string, c termenv.ANSIColor) string {
	seq := c.Sequence(false)
	if attr != "" {
		seq = attr + ";" + seq
	}
	return termenv.CSI + seq + "m"
}

// colorEnabled resolves mode for w. ColorAuto colours only terminals, and
// only when the environment does not opt out (NO_COLOR, CLICOLOR=0).
func colorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// paint emits s wrapped in seq when e colours its output.
func paint(e *emitter, seq, s string) {
	if !e.color {
		e.writeString(s)
		return
	}
	e.writeString(seq)
	e.writeString(s)
	e.writeString(seqReset)
}
