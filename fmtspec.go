package fmtspec

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidLevel      = errors.New("invalid level")
	ErrInvalidColorMode  = errors.New("invalid color mode")
	ErrUnsupportedConfig = errors.New("unsupported config format")
)

// Value is a renderable value. The set of implementations is closed: [Bool],
// [Char], [Str], [Nil], [Pointer], [Int], [Checked], [List], [Arg], [Location]
// and the values returned by [Seq] and [Chan]. Use [ValueOf] to convert a
// built-in Go value.
type Value interface {
	render(e *emitter, ops Options)
}

// Arg pairs a value with the format options it is rendered with. Arg is the
// explicit formatting entry point; the options are resolved at render time,
// so an Arg written to a discarding [Sink] is never parsed.
type Arg struct {
	spec     string
	ops      Options
	parsed   bool
	width    int
	hasWidth bool
	val      any
}

// F formats v with the format string spec.
func F(spec string, v any) Arg {
	return Arg{spec: spec, val: v}
}

// FW formats v with the format string spec and overrides its width with
// width. See [Options.WithWidth] for the clamping rules.
func FW(spec string, v any, width int) Arg {
	return Arg{spec: spec, val: v, width: width, hasWidth: true}
}

// FO formats v with already parsed options.
func FO(ops Options, v any) Arg {
	return Arg{ops: ops, parsed: true, val: v}
}

// Options returns the resolved options of a.
func (a Arg) Options() Options {
	ops := a.ops
	if !a.parsed {
		ops = Parse(a.spec)
	}
	if a.hasWidth {
		ops = ops.WithWidth(a.width)
	}
	return ops
}

func (a Arg) render(e *emitter, _ Options) {
	ValueOf(a.val).render(e, a.Options())
}

// ValueOf converts v to a [Value].
//
// bool, every integer kind, string, error, [fmt.Stringer], nil, unsafe.Pointer,
// pointers, slices and arrays are supported directly. Since byte and rune are
// aliases of uint8 and int32 they render as integers; wrap them in [Char] to
// render a character. Anything else renders as its default %v text. A nil
// pointer renders as "nullptr" even when its type has methods.
func ValueOf(v any) Value {
	if isNilPointer(v) {
		return Nil{}
	}
	switch v := v.(type) {
	case nil:
		return Nil{}
	case Value:
		return v
	case bool:
		return Bool(v)
	case string:
		return Str(v)
	case int:
		return Int[int]{v}
	case int8:
		return Int[int8]{v}
	case int16:
		return Int[int16]{v}
	case int32:
		return Int[int32]{v}
	case int64:
		return Int[int64]{v}
	case uint:
		return Int[uint]{v}
	case uint8:
		return Int[uint8]{v}
	case uint16:
		return Int[uint16]{v}
	case uint32:
		return Int[uint32]{v}
	case uint64:
		return Int[uint64]{v}
	case uintptr:
		return Int[uintptr]{v}
	case unsafe.Pointer:
		return pointerOf(uintptr(v))
	case error:
		return Str(v.Error())
	case fmt.Stringer:
		return Str(v.String())
	}
	return reflectValue(reflect.ValueOf(v))
}

// reflectValue handles named types whose underlying kind is supported.
func reflectValue(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return Str(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int[int64]{rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int[uint64]{rv.Uint()}
	case reflect.Pointer, reflect.UnsafePointer:
		if rv.IsNil() {
			return Nil{}
		}
		return Pointer(rv.Pointer())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return List(nil)
		}
		elems := make(List, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return elems
	default:
		return plainValue(rv.Interface())
	}
}

// isNilPointer reports whether v holds a typed nil pointer. Such values must
// not reach their Error or String methods.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
