package largenum

import (
	"errors"
	"fmt"
	"math"
)

// Number type is a representation of an arbitrary-precision signed integer.
// Its magnitude is stored as a sequence of limbs in radix 10^9,
// least-significant limb first.
//
// Arithmetic methods never modify their receiver or arguments;
// each result is a freshly allocated number that shares no limbs with
// any other number.
// A nil *Number and a released number both read as 0.
//
// A number also carries two reserved fields, the decimal position and
// the maximum number of decimal places.
// They are preserved by [Number.Copy] and affect only [Number.String],
// never arithmetic.
type Number struct {
	sign         Sign // sign of the number, Positive for 0
	mag          mag  // magnitude, least-significant limb first
	decPos       int  // number of least-significant limbs after the implied decimal point
	maxDecPlaces int  // maximum number of decimal places, reserved
}

var (
	// ErrInvalidNumber is returned when a string does not represent an integer.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrDivisionByZero is returned when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrAllocation is returned when a result would need more than [MaxLimbs] limbs.
	ErrAllocation = errors.New("allocation failure")
	// ErrOverflow is returned when a number does not fit into the requested type.
	ErrOverflow = errors.New("overflow")
)

// newNumber wraps z into a number, normalizing it and canonicalizing
// the sign of 0 to Positive.
// z must not be referenced by anything else.
func newNumber(s Sign, z mag) *Number {
	z = z.norm()
	if z.isZero() {
		s = Positive
	}
	return &Number{sign: s, mag: z}
}

// checkLimbs returns an error if n exceeds [MaxLimbs].
func checkLimbs(n int) error {
	if n > MaxLimbs {
		return fmt.Errorf("%v limbs exceed the limit of %v: %w", n, MaxLimbs, ErrAllocation)
	}
	return nil
}

// New returns a number equal to v.
func New(v int64) *Number {
	if v < 0 {
		// -v overflows for math.MinInt64, but uint64(-v) is still correct.
		return newNumber(Negative, magFromUint64(uint64(-v)))
	}
	return newNumber(Positive, magFromUint64(uint64(v)))
}

// NewFromUint64 returns a number equal to u.
func NewFromUint64(u uint64) *Number {
	return newNumber(Positive, magFromUint64(u))
}

// Zero returns a new number equal to 0.
func Zero() *Number {
	return newNumber(Positive, zeroMag.clone())
}

// limbs returns the magnitude of x, treating nil and released numbers as 0.
func (x *Number) limbs() mag {
	if x == nil || len(x.mag) == 0 {
		return zeroMag
	}
	return x.mag
}

// Copy returns an independent copy of x with the same sign, decimal position,
// and maximum number of decimal places.
func (x *Number) Copy() *Number {
	z := newNumber(x.Sign(), x.limbs().clone())
	if x != nil {
		z.decPos = x.decPos
		z.maxDecPlaces = x.maxDecPlaces
	}
	return z
}

// Release returns the limbs of x to an internal pool, so they can be reused
// by subsequent operations.
// After Release, x reads as 0, but it must not be used as a long-lived value
// anymore. Release on nil is a no-op.
func (x *Number) Release() {
	if x == nil {
		return
	}
	putMag(x.mag)
	*x = Number{}
}

// Sign returns the sign tag of x.
// The sign of 0 is [Positive].
func (x *Number) Sign() Sign {
	if x == nil || x.limbs().isZero() {
		return Positive
	}
	return x.sign
}

// Signum returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x *Number) Signum() int {
	switch {
	case x.IsZero():
		return 0
	case x.IsNeg():
		return -1
	default:
		return 1
	}
}

// IsZero returns true if x == 0.
func (x *Number) IsZero() bool {
	return x.limbs().isZero()
}

// IsNeg returns true if x < 0.
func (x *Number) IsNeg() bool {
	return x.Sign() == Negative
}

// IsPos returns true if x > 0.
func (x *Number) IsPos() bool {
	return !x.IsZero() && x.Sign() == Positive
}

// Len returns the number of limbs in the magnitude of x.
// Len of 0 is 1.
func (x *Number) Len() int {
	return len(x.limbs())
}

// Prec returns the number of decimal digits in the magnitude of x.
// Prec of 0 is 1.
func (x *Number) Prec() int {
	return x.limbs().prec()
}

// Limbs returns a copy of the limbs of x, least-significant limb first.
// Every limb is less than 10^9.
func (x *Number) Limbs() []uint32 {
	m := x.limbs()
	z := make([]uint32, len(m))
	for i, l := range m {
		z[i] = uint32(l)
	}
	return z
}

// DecimalPosition returns the number of least-significant limbs placed after
// the implied decimal point, or 0 if x has no decimal point.
func (x *Number) DecimalPosition() int {
	if x == nil {
		return 0
	}
	return x.decPos
}

// MaxDecPlaces returns the reserved maximum number of decimal places of x.
func (x *Number) MaxDecPlaces() int {
	if x == nil {
		return 0
	}
	return x.maxDecPlaces
}

// WithDecimalPosition returns a copy of x with an implied decimal point placed
// before the pos least-significant limbs.
// The decimal position only affects [Number.String]; arithmetic methods ignore
// it and return numbers without a decimal point.
//
// WithDecimalPosition returns an error if pos is negative or not less than
// the number of limbs, or if maxDecPlaces is negative.
func (x *Number) WithDecimalPosition(pos, maxDecPlaces int) (*Number, error) {
	if pos < 0 || pos >= x.Len() {
		return nil, fmt.Errorf("decimal position %v is out of range [0, %v)", pos, x.Len())
	}
	if maxDecPlaces < 0 {
		return nil, fmt.Errorf("maximum number of decimal places %v is negative", maxDecPlaces)
	}
	z := x.Copy()
	z.decPos = pos
	z.maxDecPlaces = maxDecPlaces
	return z, nil
}

// Neg returns a number equal to -x.
func (x *Number) Neg() *Number {
	return newNumber(x.Sign().Neg(), x.limbs().clone())
}

// Abs returns a number equal to |x|.
func (x *Number) Abs() *Number {
	return newNumber(Positive, x.limbs().clone())
}

// CopySign returns a number with the magnitude of x and the sign of y.
func (x *Number) CopySign(y *Number) *Number {
	return newNumber(y.Sign(), x.limbs().clone())
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x *Number) Cmp(y *Number) int {
	// Special case: different signs
	switch {
	case y.Signum() < x.Signum():
		return 1
	case x.Signum() < y.Signum():
		return -1
	}
	// General case
	r := cmpMag(x.limbs(), y.limbs())
	if x.IsNeg() {
		return -r
	}
	return r
}

// CmpAbs compares |x| and |y| and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| == |y|
//	+1 if |x| > |y|
func (x *Number) CmpAbs(y *Number) int {
	return cmpMag(x.limbs(), y.limbs())
}

// Equal returns true if x and y are numerically equal.
func (x *Number) Equal(y *Number) bool {
	return x.Cmp(y) == 0
}

// Max returns a copy of the larger of x and y.
func (x *Number) Max(y *Number) *Number {
	if x.Cmp(y) >= 0 {
		return x.Copy()
	}
	return y.Copy()
}

// Min returns a copy of the smaller of x and y.
func (x *Number) Min(y *Number) *Number {
	if x.Cmp(y) <= 0 {
		return x.Copy()
	}
	return y.Copy()
}

// Uint64 returns x as uint64.
// If x is negative or does not fit into uint64, the result is (0, false).
func (x *Number) Uint64() (uint64, bool) {
	if x.IsNeg() {
		return 0, false
	}
	return x.limbs().uint64()
}

// Int64 returns x as int64.
// If x does not fit into int64, the result is (0, false).
func (x *Number) Int64() (int64, bool) {
	u, ok := x.limbs().uint64()
	if !ok {
		return 0, false
	}
	if x.IsNeg() {
		if u > math.MaxInt64+1 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}
