package fmtspec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// MaxWidth is the largest width an [Options] value can carry.
const MaxWidth = 999

// maxWidthDigits is the longest width numeral the parser accepts.
const maxWidthDigits = 3

// Align controls where fill characters are placed around a rendered value.
type Align uint8

const (
	AlignDefault Align = iota // left for text, right for numbers
	AlignLeft                 // <
	AlignRight                // >
	AlignCenter               // ^
)

// String returns the format character for the alignment, or "" for AlignDefault.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "<"
	case AlignRight:
		return ">"
	case AlignCenter:
		return "^"
	default:
		return ""
	}
}

// Sign controls when a sign character is emitted for integral values.
type Sign uint8

const (
	SignNegOnly     Sign = iota // -
	SignPosNeg                  // +
	SignSpaceForPos             // space
)

// String returns the format character for the sign mode, or "" for SignNegOnly.
func (s Sign) String() string {
	switch s {
	case SignPosNeg:
		return "+"
	case SignSpaceForPos:
		return " "
	default:
		return ""
	}
}

// Type selects the presentation of a value.
type Type uint8

const (
	TypeDefault Type = iota
	TypeBinary       // b, B
	TypeChar         // c
	TypeDecimal      // d
	TypeString       // s
	TypeHex          // x, X
)

// String returns the lowercase format character for the type, or "" for TypeDefault.
func (t Type) String() string {
	switch t {
	case TypeBinary:
		return "b"
	case TypeChar:
		return "c"
	case TypeDecimal:
		return "d"
	case TypeString:
		return "s"
	case TypeHex:
		return "x"
	default:
		return ""
	}
}

// base returns the numeric base used when rendering an integral with t.
func (t Type) base() uint64 {
	switch t {
	case TypeBinary:
		return 2
	case TypeHex:
		return 16
	default:
		return 10
	}
}

// Options is a parsed format specification. The zero value is equivalent to
// Parse("") and renders every value in its natural form.
//
// Options are immutable once built; [Options.WithWidth] returns a copy.
type Options struct {
	fill          rune // 0 means the default space
	align         Align
	sign          Sign
	alternateForm bool
	signAware     bool
	width         int
	typ           Type
	upper         bool
}

var (
	// Defaults renders every value in its natural form.
	Defaults = Options{}

	// PointerOptions is the fixed specification used for non-nil pointers.
	PointerOptions = pointerOptions()
)

func pointerOptions() Options {
	if ptrSize == 4 {
		return Parse("#010x")
	}
	return Parse("#018x")
}

// Fill returns the fill character. It is never the null character.
func (o Options) Fill() rune {
	if o.fill == 0 {
		return ' '
	}
	return o.fill
}

// Align returns the alignment.
func (o Options) Align() Align { return o.align }

// Sign returns the sign mode.
func (o Options) Sign() Sign { return o.sign }

// AlternateForm reports whether a 0b/0x prefix is emitted for non-decimal integrals.
func (o Options) AlternateForm() bool { return o.alternateForm }

// SignAware reports whether padding is emitted as zeros between the sign or
// prefix and the digits instead of as fill.
func (o Options) SignAware() bool { return o.signAware }

// Width returns the minimum rendered width, in the range [0, MaxWidth].
func (o Options) Width() int { return o.width }

// Type returns the presentation type.
func (o Options) Type() Type { return o.typ }

// Upper reports whether hex digits are emitted in uppercase (the X type).
func (o Options) Upper() bool { return o.upper }

// WithWidth returns a copy of o with its width replaced by w. A width outside
// [0, MaxWidth] is reported as an invalid argument and clamped to MaxWidth.
func (o Options) WithWidth(w int) Options {
	if w < 0 || w > MaxWidth {
		reportInvalidArgument(fmt.Errorf("%w: width %d outside [0, %d]", ErrInvalidArgument, w, MaxWidth))
		o.width = MaxWidth
		return o
	}
	o.width = w
	return o
}

// String returns a canonical format string that parses back to o.
func (o Options) String() string {
	var sb strings.Builder
	if o.align != AlignDefault {
		if o.fill != 0 && o.fill != ' ' {
			sb.WriteRune(o.fill)
		}
		sb.WriteString(o.align.String())
	}
	sb.WriteString(o.sign.String())
	if o.alternateForm {
		sb.WriteByte('#')
	}
	if o.signAware {
		sb.WriteByte('0')
	}
	if o.width > 0 {
		fmt.Fprintf(&sb, "%d", o.width)
	}
	if o.typ == TypeHex && o.upper {
		sb.WriteByte('X')
	} else {
		sb.WriteString(o.typ.String())
	}
	return sb.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (o Options) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Options) UnmarshalText(text []byte) error {
	*o = Parse(string(text))
	return nil
}

// MarshalYAML implements [yaml.Marshaler]. Options encode as their format string.
func (o Options) MarshalYAML() (any, error) {
	return o.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: format options must be a string, got YAML kind %d", ErrInvalidArgument, node.Kind)
	}
	*o = Parse(node.Value)
	return nil
}

// --- Parser ---

// parseState is a state of the format string machine. States run strictly in
// declaration order; each consumes zero or more characters.
type parseState uint8

const (
	stateAlign parseState = iota
	stateSign
	stateAlternateForm
	stateSignAware
	stateWidth
	stateType
	stateDone
)

// Parse builds Options from a format string of the form
//
//	[[fill]align][sign][#][0][width][type]
//
// Parsing never fails. Unrecognized fields fall back to their defaults, and
// anything after the type character is ignored. A width longer than three
// digits is reported as an invalid argument and clamped to [MaxWidth].
func Parse(f string) Options {
	p := parser{src: f}
	state := stateAlign
	for state != stateDone && p.idx < len(p.src) {
		switch state {
		case stateAlign:
			p.parseAlign()
			state = stateSign
		case stateSign:
			p.parseSign()
			state = stateAlternateForm
		case stateAlternateForm:
			p.parseAlternateForm()
			state = stateSignAware
		case stateSignAware:
			p.parseSignAware()
			state = stateWidth
		case stateWidth:
			p.parseWidth()
			state = stateType
		case stateType:
			p.parseType()
			state = stateDone
		}
	}
	return p.ops
}

type parser struct {
	src string
	idx int
	ops Options
}

func alignOf(c byte) (Align, bool) {
	switch c {
	case '<':
		return AlignLeft, true
	case '>':
		return AlignRight, true
	case '^':
		return AlignCenter, true
	default:
		return AlignDefault, false
	}
}

// parseAlign looks at up to two characters. When the second is an align
// character the first is the fill; otherwise the first alone may be the align
// character with the default fill.
func (p *parser) parseAlign() {
	first, size := utf8.DecodeRuneInString(p.src[p.idx:])
	if next := p.idx + size; next < len(p.src) {
		if a, ok := alignOf(p.src[next]); ok {
			p.ops.align = a
			p.setFill(first)
			p.idx = next + 1
			return
		}
	}
	if a, ok := alignOf(p.src[p.idx]); ok {
		p.ops.align = a
		p.idx++
	}
}

func (p *parser) setFill(r rune) {
	if r == 0 || r == ' ' || r == utf8.RuneError {
		p.ops.fill = 0
		return
	}
	p.ops.fill = r
}

func (p *parser) parseSign() {
	switch p.src[p.idx] {
	case '+':
		p.ops.sign = SignPosNeg
	case '-':
		p.ops.sign = SignNegOnly
	case ' ':
		p.ops.sign = SignSpaceForPos
	default:
		return
	}
	p.idx++
}

func (p *parser) parseAlternateForm() {
	if p.src[p.idx] == '#' {
		p.ops.alternateForm = true
		p.idx++
	}
}

func (p *parser) parseSignAware() {
	if p.src[p.idx] == '0' {
		p.ops.signAware = true
		p.idx++
	}
}

func (p *parser) parseWidth() {
	width := Safe(0)
	start := p.idx
	for p.idx-start < maxWidthDigits && p.idx < len(p.src) && isDigit(p.src[p.idx]) {
		width = width.Mul(Safe(10)).Add(Safe(int(p.src[p.idx] - '0')))
		p.idx++
	}
	if p.idx < len(p.src) && p.idx-start == maxWidthDigits && isDigit(p.src[p.idx]) {
		reportInvalidArgument(fmt.Errorf("%w: width in %q longer than %d digits", ErrInvalidArgument, p.src, maxWidthDigits))
		p.ops.width = MaxWidth
		return
	}
	if width.IsInvalid() {
		p.ops.width = MaxWidth
		return
	}
	p.ops.width = width.Get()
}

// parseType maps the next character to a type and always ends parsing.
func (p *parser) parseType() {
	switch p.src[p.idx] {
	case 'b', 'B':
		p.ops.typ = TypeBinary
	case 'c':
		p.ops.typ = TypeChar
	case 'd':
		p.ops.typ = TypeDecimal
	case 's':
		p.ops.typ = TypeString
	case 'x':
		p.ops.typ = TypeHex
	case 'X':
		p.ops.typ = TypeHex
		p.ops.upper = true
	}
	p.idx = len(p.src)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
