package fmtspec

import (
	"fmt"
	"io"
	"strings"
)

// plainValue renders a value outside the supported set as its %v text.
func plainValue(v any) Value {
	if isNilPointer(v) {
		return Nil{}
	}
	if str, ok := v.(fmt.Stringer); ok {
		return Str(str.String())
	}
	return Str(fmt.Sprintf("%v", v))
}

// Sprint renders vals like [Sink.Put] and returns the result.
func Sprint(vals ...any) string {
	var sb strings.Builder
	To(&sb).Put(vals...)
	return sb.String()
}

// Fprint renders vals like [Sink.Put] to w.
func Fprint(w io.Writer, vals ...any) {
	To(w).Put(vals...)
}
