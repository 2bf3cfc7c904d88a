package largenum

import "fmt"

// splitInt64 returns the sign and the absolute value of v.
func splitInt64(v int64) (Sign, uint64) {
	if v < 0 {
		return Negative, uint64(-v)
	}
	return Positive, uint64(v)
}

// AddInt returns a number equal to x + delta.
// If delta and x have opposite signs, the operation is carried out
// as a subtraction of |delta|.
//
// AddInt returns an error if the result has more than [MaxLimbs] limbs.
func (x *Number) AddInt(delta int64) (*Number, error) {
	s, u := splitInt64(delta)
	if s != x.Sign() {
		return x.subAbs(u)
	}
	z, err := x.addAbs(u)
	if err != nil {
		return nil, fmt.Errorf("computing [%v-limb number + %v]: %w", x.Len(), delta, err)
	}
	return z, nil
}

// SubInt returns a number equal to x - delta.
// If delta and x have opposite signs, the operation is carried out
// as an addition of |delta|.
//
// SubInt returns an error if the result has more than [MaxLimbs] limbs.
func (x *Number) SubInt(delta int64) (*Number, error) {
	s, u := splitInt64(delta)
	if s == x.Sign() {
		return x.subAbs(u)
	}
	z, err := x.addAbs(u)
	if err != nil {
		return nil, fmt.Errorf("computing [%v-limb number - %v]: %w", x.Len(), delta, err)
	}
	return z, nil
}

// addAbs moves x away from zero by u, keeping the sign of x.
func (x *Number) addAbs(u uint64) (*Number, error) {
	z := addScalar(x.limbs(), u)
	if err := checkLimbs(len(z)); err != nil {
		putMag(z)
		return nil, err
	}
	return newNumber(x.Sign(), z), nil
}

// subAbs moves x towards zero by u.
// Passing zero flips the sign of the result.
func (x *Number) subAbs(u uint64) (*Number, error) {
	m, s := x.limbs(), x.Sign()
	switch {
	case u >= limbBase:
		// Multi-limb deltas go through the magnitude subtraction.
		return diffMag(s, m, magFromUint64(u)), nil
	case len(m) > 1 || uint64(m[0]) >= u:
		// The borrow is always satisfied by a more-significant limb.
		return newNumber(s, subScalar(m, u)), nil
	default:
		// Subtracting past the top limb flips the sign.
		return newNumber(s.Neg(), magFromUint64(u-uint64(m[0]))), nil
	}
}

// diffMag returns a number equal to s * (x - y).
// If |y| > |x|, the operands are swapped and the sign is flipped.
func diffMag(s Sign, x, y mag) *Number {
	switch cmpMag(x, y) {
	case 0:
		return Zero()
	case -1:
		return newNumber(s.Neg(), subMag(y, x))
	default:
		return newNumber(s, subMag(x, y))
	}
}

// sumMag returns a number equal to s * (x + y).
func sumMag(s Sign, x, y mag) (*Number, error) {
	z := addMag(x, y)
	if err := checkLimbs(len(z)); err != nil {
		putMag(z)
		return nil, err
	}
	return newNumber(s, z), nil
}

// Add returns a number equal to x + y.
// Numbers of different signs are subtracted by magnitude.
//
// Add returns an error if the result has more than [MaxLimbs] limbs.
func (x *Number) Add(y *Number) (*Number, error) {
	if x.Sign() != y.Sign() {
		return diffMag(x.Sign(), x.limbs(), y.limbs()), nil
	}
	z, err := sumMag(x.Sign(), x.limbs(), y.limbs())
	if err != nil {
		return nil, fmt.Errorf("computing [%v-limb number + %v-limb number]: %w", x.Len(), y.Len(), err)
	}
	return z, nil
}

// Sub returns a number equal to x - y.
// Numbers of different signs are added by magnitude.
//
// Sub returns an error if the result has more than [MaxLimbs] limbs.
func (x *Number) Sub(y *Number) (*Number, error) {
	if x.Sign() == y.Sign() {
		return diffMag(x.Sign(), x.limbs(), y.limbs()), nil
	}
	z, err := sumMag(x.Sign(), x.limbs(), y.limbs())
	if err != nil {
		return nil, fmt.Errorf("computing [%v-limb number - %v-limb number]: %w", x.Len(), y.Len(), err)
	}
	return z, nil
}
