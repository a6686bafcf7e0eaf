package fmtspec

import (
	"io"
	"unicode/utf8"
)

// emitter is the character emission primitive behind every render. Output
// is staged in a fixed array and flushed to w when the array fills and when a
// Put completes. After the first write error all further output is dropped.
type emitter struct {
	w     io.Writer
	color bool
	level Level
	n     int
	depth int // list nesting
	err   error
	buf   [128]byte
}

func (e *emitter) writeByte(c byte) {
	if e.n == len(e.buf) {
		e.flush()
	}
	e.buf[e.n] = c
	e.n++
}

func (e *emitter) writeString(s string) {
	for len(s) > 0 {
		if e.n == len(e.buf) {
			e.flush()
		}
		k := copy(e.buf[e.n:], s)
		e.n += k
		s = s[k:]
	}
}

func (e *emitter) writeRune(r rune) {
	if r < utf8.RuneSelf {
		e.writeByte(byte(r))
		return
	}
	if len(e.buf)-e.n < utf8.UTFMax {
		e.flush()
	}
	e.n += utf8.EncodeRune(e.buf[e.n:], r)
}

// fill emits r count times.
func (e *emitter) fill(r rune, count int) {
	for range count {
		e.writeRune(r)
	}
}

func (e *emitter) flush() {
	if e.n == 0 {
		return
	}
	if e.err == nil {
		_, e.err = e.w.Write(e.buf[:e.n])
	}
	e.n = 0
}
