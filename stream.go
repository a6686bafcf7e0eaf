package fmtspec

import (
	"iter"
)

// seqValue renders the elements of an iterator like a [List] without
// collecting them first.
type seqValue struct {
	each func(yield func(any) bool)
}

// Seq returns a Value that renders the elements of seq as "[a, b, c]". The
// iterator is consumed once per render.
func Seq[T any](seq iter.Seq[T]) Value {
	return seqValue{each: func(yield func(any) bool) {
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}}
}

// Chan returns a Value that renders the values received from ch until it is
// closed. Rendering blocks while ch is open and empty.
func Chan[T any](ch <-chan T) Value {
	return Seq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func (s seqValue) render(e *emitter, ops Options) {
	if !e.enterList() {
		return
	}
	defer e.leaveList()
	e.writeByte('[')
	first := true
	for v := range s.each {
		if !first {
			e.writeString(listSep)
		}
		first = false
		putValue(e, ops, v)
	}
	e.writeByte(']')
}
