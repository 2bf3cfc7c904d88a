package largenum

import "fmt"

// MustAdd is like [Number.Add] but panics if computing error.
func (x *Number) MustAdd(y *Number) *Number {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustSub is like [Number.Sub] but panics if computing error.
func (x *Number) MustSub(y *Number) *Number {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", y, err))
	}
	return z
}

// MustMul is like [Number.Mul] but panics if computing error.
func (x *Number) MustMul(y *Number) *Number {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", y, err))
	}
	return z
}

// MustQuo is like [Number.Quo] but panics if computing error.
func (x *Number) MustQuo(y *Number) *Number {
	z, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return z
}
