package fmtspec

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integer types the integral engine renders.
type Integer interface {
	Signed | Unsigned
}

// maxDigits is the longest digit run of a 64-bit magnitude (base 2).
const maxDigits = 64

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// Int renders an integer of any width.
type Int[T Integer] struct {
	V T
}

func (i Int[T]) render(e *emitter, ops Options) {
	if ops.typ == TypeChar {
		renderChar(e, ops, byte(i.V))
		return
	}
	renderIntegral(e, ops, i.V)
}

// renderIntegral renders v through the integral engine. The magnitude is
// taken on the uint64 representation so the most negative value of every
// signed width negates without overflow.
func renderIntegral[T Integer](e *emitter, ops Options, v T) {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}
	renderMagnitude(e, ops, neg, mag)
}

// integralInfo is the bookkeeping of one integral render.
type integralInfo struct {
	base   uint64
	extras int // sign and prefix characters
	digits int
	buf    [maxDigits]byte // least significant digit first
}

func newIntegralInfo(ops Options, neg bool, mag uint64) integralInfo {
	info := integralInfo{base: ops.typ.base()}

	switch ops.sign {
	case SignPosNeg, SignSpaceForPos:
		info.extras++
	default:
		if neg {
			info.extras++
		}
	}
	if ops.alternateForm && info.base != 10 {
		info.extras += 2
	}

	if mag == 0 {
		info.buf[0] = '0'
		info.digits = 1
		return info
	}
	digits := lowerDigits
	if ops.upper {
		digits = upperDigits
	}
	for mag != 0 {
		info.buf[info.digits] = digits[mag%info.base]
		info.digits++
		mag /= info.base
	}
	return info
}

func renderMagnitude(e *emitter, ops Options, neg bool, mag uint64) {
	info := newIntegralInfo(ops, neg, mag)
	n := info.digits + info.extras
	pad := alignPre(e, ops, n, false)

	switch ops.sign {
	case SignPosNeg:
		if neg {
			e.writeByte('-')
		} else {
			e.writeByte('+')
		}
	case SignSpaceForPos:
		if neg {
			e.writeByte('-')
		} else {
			e.writeByte(' ')
		}
	default:
		if neg {
			e.writeByte('-')
		}
	}

	if ops.alternateForm {
		switch info.base {
		case 2:
			e.writeString("0b")
		case 16:
			e.writeString("0x")
		}
	}

	if ops.signAware {
		e.fill('0', pad)
	}

	for i := info.digits - 1; i >= 0; i-- {
		e.writeByte(info.buf[i])
	}

	alignPost(e, ops, n, false)
}
