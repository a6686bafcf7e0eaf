package fmtspec

// padding returns how many fill characters are needed to bring a value of
// natural length n up to the width in ops.
func padding(ops Options, n int) int {
	if n < ops.width {
		return ops.width - n
	}
	return 0
}

// alignPre emits the fill that precedes a value of natural length n and
// returns the total padding. left selects the side used by AlignDefault.
// Nothing is emitted when ops is sign aware; the integral engine uses the
// returned padding as its zero count instead.
func alignPre(e *emitter, ops Options, n int, left bool) int {
	pad := padding(ops, n)
	if ops.signAware || pad == 0 {
		return pad
	}
	switch ops.align {
	case AlignCenter:
		e.fill(ops.Fill(), pad/2)
	case AlignRight:
		e.fill(ops.Fill(), pad)
	case AlignDefault:
		if !left {
			e.fill(ops.Fill(), pad)
		}
	}
	return pad
}

// alignPost emits the fill that follows a value of natural length n. It is
// the mirror of alignPre: together they emit exactly padding(ops, n) fill
// characters.
func alignPost(e *emitter, ops Options, n int, left bool) {
	pad := padding(ops, n)
	if ops.signAware || pad == 0 {
		return
	}
	switch ops.align {
	case AlignLeft:
		e.fill(ops.Fill(), pad)
	case AlignCenter:
		e.fill(ops.Fill(), pad-pad/2)
	case AlignDefault:
		if left {
			e.fill(ops.Fill(), pad)
		}
	}
}

// aligned emits s between the pre and post fill for natural length n.
func aligned(e *emitter, ops Options, s string, n int) {
	alignPre(e, ops, n, true)
	e.writeString(s)
	alignPost(e, ops, n, true)
}
