package fmtspec

import (
	"runtime"
)

// Location is a source position captured by [Here]. It renders as
//
//	  --> file [line]: function
//
// followed by a newline, and renders nothing while the threshold is
// CriticalOnly.
type Location struct {
	File     string
	Line     int
	Function string
}

// Here returns the location of its caller.
func Here() Location {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return Location{}
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}

func (l Location) render(e *emitter, _ Options) {
	if e.level == CriticalOnly {
		return
	}
	e.writeString("  --> ")
	paint(e, seqYellow, l.File)
	if e.color {
		e.writeString(seqCyan)
	}
	e.writeString(" [")
	renderIntegral(e, Defaults, l.Line)
	e.writeByte(']')
	if e.color {
		e.writeString(seqReset)
	}
	e.writeString(": ")
	e.writeString(l.Function)
	e.writeByte('\n')
}
