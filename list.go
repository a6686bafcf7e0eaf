package fmtspec

// List renders its elements as "[a, b, c]". Every element is rendered with
// the options the list is rendered with, so F("#04x", []uint8{1, 2})
// produces "[0x01, 0x02]". With the default options elements follow the
// same rules as [Sink.Put].
type List []any

const listSep = ", "

// maxListDepth bounds list nesting. A deeper list, including one that
// contains itself, renders as "[...]".
const maxListDepth = 16

const truncatedList = "[...]"

// enterList reports whether another nesting level may be rendered. Callers
// that get true must call e.leaveList when done.
func (e *emitter) enterList() bool {
	if e.depth >= maxListDepth {
		e.writeString(truncatedList)
		return false
	}
	e.depth++
	return true
}

func (e *emitter) leaveList() { e.depth-- }

func (l List) render(e *emitter, ops Options) {
	if !e.enterList() {
		return
	}
	defer e.leaveList()
	e.writeByte('[')
	for i, v := range l {
		if i > 0 {
			e.writeString(listSep)
		}
		putValue(e, ops, v)
	}
	e.writeByte(']')
}
