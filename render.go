package fmtspec

import (
	"unsafe"

	"github.com/mattn/go-runewidth"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

const (
	nullptrText     = "nullptr"
	errorText       = "[error]"
	emptyStringText = "[empty string]"
)

// Bool renders "true" or "false" for the default and s types and 1 or 0
// through the integral engine for every other type.
type Bool bool

func (b Bool) render(e *emitter, ops Options) {
	switch ops.typ {
	case TypeDefault, TypeString:
		if b {
			aligned(e, ops, "true", 4)
		} else {
			aligned(e, ops, "false", 5)
		}
	default:
		var v uint32
		if b {
			v = 1
		}
		renderIntegral(e, ops, v)
	}
}

// Char renders a single character for the default, c and s types and its
// ordinal through the integral engine for b, d and x.
type Char byte

// Endl is the newline character.
const Endl Char = '\n'

func (c Char) render(e *emitter, ops Options) {
	switch ops.typ {
	case TypeDefault, TypeChar, TypeString:
		renderChar(e, ops, byte(c))
	default:
		renderIntegral(e, ops, uint8(c))
	}
}

func renderChar(e *emitter, ops Options, c byte) {
	alignPre(e, ops, 1, true)
	e.writeByte(c)
	alignPost(e, ops, 1, true)
}

// Str renders text. Its natural length is its display width in terminal
// columns, so wide characters pad correctly.
type Str string

func (s Str) render(e *emitter, ops Options) {
	aligned(e, ops, string(s), runewidth.StringWidth(string(s)))
}

// Nil renders "nullptr" and ignores every option.
type Nil struct{}

func (Nil) render(e *emitter, _ Options) {
	e.writeString(nullptrText)
}

// Pointer renders an address as zero-padded hex with a 0x prefix, always
// using [PointerOptions]. A zero address renders as "nullptr".
type Pointer uintptr

func pointerOf(p uintptr) Value {
	if p == 0 {
		return Nil{}
	}
	return Pointer(p)
}

func (p Pointer) render(e *emitter, _ Options) {
	if p == 0 {
		e.writeString(nullptrText)
		return
	}
	renderIntegral(e, PointerOptions, uintptr(p))
}
