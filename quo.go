package largenum

import "fmt"

// QuoRem returns the truncated quotient q and remainder r of x / y,
// such that x = y * q + r and |r| < |y|.
// The quotient is rounded towards zero and the remainder has the sign of x.
//
// If both |x| and |y| are less than 10^18, the division is carried out
// using uint64 arithmetic. Otherwise, QuoRem uses long division, which takes
// exactly x.Len() steps.
//
// QuoRem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x *Number) QuoRem(y *Number) (q, r *Number, err error) {
	xm, ym := x.limbs(), y.limbs()
	if ym.isZero() {
		return nil, nil, fmt.Errorf("computing [%v-limb number / 0]: %w", x.Len(), ErrDivisionByZero)
	}

	var qm, rm mag
	switch {
	case xm.fits2() && ym.fits2():
		qm, rm = quoRemFast(xm, ym)
	case cmpMag(xm, ym) < 0:
		qm, rm = zeroMag.clone(), xm.clone()
	default:
		qm, rm = quoRemLong(xm, ym)
	}
	return newNumber(x.Sign().Mul(y.Sign()), qm), newNumber(x.Sign(), rm), nil
}

// Quo returns the truncated quotient of x / y, rounded towards zero.
// Also see method [Number.QuoRem].
//
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x *Number) Quo(y *Number) (*Number, error) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		return nil, err
	}
	r.Release()
	return q, nil
}

// Rem returns the remainder of the truncated division x / y.
// The remainder has the sign of x.
// Also see method [Number.QuoRem].
//
// Rem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x *Number) Rem(y *Number) (*Number, error) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		return nil, err
	}
	q.Release()
	return r, nil
}

// QuoInt returns the truncated quotient of x / divisor, rounded towards zero.
//
// QuoInt returns an error wrapping [ErrDivisionByZero] if divisor is 0.
func (x *Number) QuoInt(divisor int64) (*Number, error) {
	y := New(divisor)
	defer y.Release()
	return x.Quo(y)
}
