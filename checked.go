package fmtspec

// Checked is an integer that becomes invalid instead of wrapping when an
// operation overflows. An invalid Checked stays invalid through every
// further operation and renders as "[error]"; its digits are never
// extracted.
type Checked[T Integer] struct {
	v     T
	valid bool
}

// Safe returns a valid Checked holding v.
func Safe[T Integer](v T) Checked[T] {
	return Checked[T]{v: v, valid: true}
}

// Invalid returns an invalid Checked.
func Invalid[T Integer]() Checked[T] {
	return Checked[T]{}
}

// IsValid reports whether c holds a value.
func (c Checked[T]) IsValid() bool { return c.valid }

// IsInvalid reports whether an operation producing c overflowed.
func (c Checked[T]) IsInvalid() bool { return !c.valid }

// Get returns the held value, or zero when c is invalid.
func (c Checked[T]) Get() T {
	if !c.valid {
		return 0
	}
	return c.v
}

// Add returns c + o.
func (c Checked[T]) Add(o Checked[T]) Checked[T] {
	if !c.valid || !o.valid {
		return Invalid[T]()
	}
	s := c.v + o.v
	if (o.v > 0 && s < c.v) || (o.v < 0 && s > c.v) {
		return Invalid[T]()
	}
	return Safe(s)
}

// Sub returns c - o.
func (c Checked[T]) Sub(o Checked[T]) Checked[T] {
	if !c.valid || !o.valid {
		return Invalid[T]()
	}
	d := c.v - o.v
	if (o.v > 0 && d > c.v) || (o.v < 0 && d < c.v) {
		return Invalid[T]()
	}
	return Safe(d)
}

// Mul returns c * o.
func (c Checked[T]) Mul(o Checked[T]) Checked[T] {
	if !c.valid || !o.valid {
		return Invalid[T]()
	}
	if c.v == 0 || o.v == 0 {
		return Safe[T](0)
	}
	p := c.v * o.v
	sameSign := (c.v < 0) == (o.v < 0)
	if p/o.v != c.v || (sameSign && p < 0) || (!sameSign && p > 0) {
		return Invalid[T]()
	}
	return Safe(p)
}

func (c Checked[T]) render(e *emitter, ops Options) {
	if !c.valid {
		aligned(e, ops, errorText, len(errorText))
		return
	}
	Int[T]{c.v}.render(e, ops)
}
