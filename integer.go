package largenum

import (
	"math"
	"sync"
)

// limb is a single digit of a magnitude in radix limbBase.
type limb uint32

const (
	limbBase   = 1_000_000_000 // radix of a limb, the largest power of 10 that fits into uint32
	limbDigits = 9             // number of decimal digits in a limb
)

// MaxLimbs is the maximum number of limbs a number can hold.
// Operations whose result would need more limbs return [ErrAllocation].
const MaxLimbs = 1 << 24

// maxPooledLimbs is the capacity above which magnitudes are not returned
// to the pool.
const maxPooledLimbs = 1 << 16

// mag is an unsigned integer x of the form
//
//	x = x[n-1]*B^(n-1) + x[n-2]*B^(n-2) + ... + x[1]*B + x[0]
//
// where B = limbBase and 0 <= x[i] < B.
//
// A mag is normalized if it is non-empty and has no most-significant zero limbs.
// The normalized representation of 0 is mag{0}.
// During arithmetic operations denormalized values may occur, but they
// are always normalized before being wrapped into a [Number].
type mag []limb

// zeroMag is the shared read-only representation of 0.
// Shared magnitudes must never be modified or returned to the pool.
var zeroMag = mag{0}

// oneMag is the shared read-only representation of 1.
var oneMag = mag{1}

// magFromUint64 splits u into limbs, least-significant first.
func magFromUint64(u uint64) mag {
	if u < limbBase {
		return mag{limb(u)}
	}
	z := make(mag, 0, 3)
	for u > 0 {
		z = append(z, limb(u%limbBase))
		u /= limbBase
	}
	return z
}

// isZero assumes that x is normalized.
func (x mag) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

// norm removes most-significant zero limbs, keeping a single zero limb for 0.
func (x mag) norm() mag {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	if i == 0 {
		return append(x, 0)
	}
	return x[:i]
}

// clone returns an independent copy of x.
func (x mag) clone() mag {
	z := getMag(len(x))
	return append(z, x...)
}

// appendLimb adds l as the new most-significant limb.
func (x mag) appendLimb(l limb) mag {
	return append(x, l)
}

// prependLimb adds l as the new least-significant limb, that is z = x * B + l.
func (x mag) prependLimb(l limb) mag {
	x = append(x, 0)
	copy(x[1:], x)
	x[0] = l
	return x
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has one digit.
func (x mag) prec() int {
	n := (len(x) - 1) * limbDigits
	for l := x[len(x)-1]; ; l /= 10 {
		n++
		if l < 10 {
			break
		}
	}
	return n
}

// fits2 returns true if x has no more than two limbs, that is x < B^2.
func (x mag) fits2() bool {
	return len(x) <= 2
}

// uint64 converts x to uint64 and reports whether the conversion was exact.
func (x mag) uint64() (uint64, bool) {
	var u uint64
	for i := len(x) - 1; i >= 0; i-- {
		if u > (math.MaxUint64-uint64(x[i]))/limbBase {
			return 0, false
		}
		u = u*limbBase + uint64(x[i])
	}
	return u, true
}

// cmpMag compares magnitudes x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Both x and y must be normalized.
func cmpMag(x, y mag) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// addScalar calculates x + u with carry propagation.
func addScalar(x mag, u uint64) mag {
	z := getMag(len(x) + 3)
	carry := u
	for _, l := range x {
		s := uint64(l) + carry
		z = append(z, limb(s%limbBase))
		carry = s / limbBase
	}
	for carry > 0 {
		z = z.appendLimb(limb(carry % limbBase))
		carry /= limbBase
	}
	return z.norm()
}

// addMag calculates x + y by walking both magnitudes in lockstep.
func addMag(x, y mag) mag {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := getMag(len(x) + 1)
	var carry uint64
	for i := range x {
		s := uint64(x[i]) + carry
		if i < len(y) {
			s += uint64(y[i])
		}
		z = append(z, limb(s%limbBase))
		carry = s / limbBase
	}
	if carry > 0 {
		z = z.appendLimb(limb(carry))
	}
	return z
}

// subMag calculates x - y.
// If x < y, the result is unpredictable.
func subMag(x, y mag) mag {
	z := x.clone()
	subMagInPlace(z, y)
	return z.norm()
}

// subMagInPlace calculates z = z - y, borrowing from the next nonzero limb
// of z whenever a limb of y exceeds the corresponding limb of z.
// The caller must ensure that z >= y.
func subMagInPlace(z, y mag) {
	for i := range y {
		if y[i] <= z[i] {
			z[i] -= y[i]
			continue
		}
		z[i] = limbBase - y[i] + z[i]
		// Borrow
		j := i + 1
		for z[j] == 0 {
			z[j] = limbBase - 1
			j++
		}
		z[j]--
	}
}

// subScalar calculates x - u for u < B and x >= u.
func subScalar(x mag, u uint64) mag {
	z := x.clone()
	if uint64(z[0]) >= u {
		z[0] -= limb(u)
		return z.norm()
	}
	z[0] = limb(limbBase - u + uint64(z[0]))
	// Borrow
	j := 1
	for z[j] == 0 {
		z[j] = limbBase - 1
		j++
	}
	z[j]--
	return z.norm()
}

// mulScalar calculates x * u for u < B.
func mulScalar(x mag, u uint64) mag {
	if u == 0 || x.isZero() {
		return zeroMag.clone()
	}
	z := getMag(len(x) + 1)
	var carry uint64
	for _, l := range x {
		// l * u + carry < B^2 + B fits into uint64.
		p := uint64(l)*u + carry
		z = append(z, limb(p%limbBase))
		carry = p / limbBase
	}
	if carry > 0 {
		z = z.appendLimb(limb(carry))
	}
	return z
}

// addAt calculates z = z + x * B^shift in place.
// The caller must ensure that z has enough limbs to hold the result.
func addAt(z, x mag, shift int) {
	var carry uint64
	i := 0
	for ; i < len(x); i++ {
		s := uint64(z[i+shift]) + uint64(x[i]) + carry
		z[i+shift] = limb(s % limbBase)
		carry = s / limbBase
	}
	for k := i + shift; carry > 0; k++ {
		s := uint64(z[k]) + carry
		z[k] = limb(s % limbBase)
		carry = s / limbBase
	}
}

// mulMag calculates x * y using the schoolbook algorithm:
// the partial product y * x[k] is accumulated at limb offset k.
func mulMag(x, y mag) mag {
	if x.isZero() || y.isZero() {
		return zeroMag.clone()
	}
	z := getMag(len(x) + len(y))
	z = z[:len(x)+len(y)]
	clear(z)
	for k, l := range x {
		if l == 0 {
			continue
		}
		p := mulScalar(y, uint64(l))
		addAt(z, p, k)
		putMag(p)
	}
	return z.norm()
}

// quoRemFast calculates ⌊x / y⌋ and x - y * ⌊x / y⌋ using uint64 arithmetic.
// Both x and y must have no more than two limbs and y must not be zero.
func quoRemFast(x, y mag) (q, r mag) {
	u, _ := x.uint64()
	v, _ := y.uint64()
	return magFromUint64(u / v), magFromUint64(u % v)
}

// quoRemLong calculates ⌊x / y⌋ and x - y * ⌊x / y⌋ using long division.
// The dividend's limbs are brought down into the remainder one by one,
// most-significant first, and each quotient digit is the largest d in [0, B)
// such that y * d does not exceed the remainder.
// y must not be zero.
func quoRemLong(x, y mag) (q, r mag) {
	n := len(y)
	q = getMag(len(x))
	q = q[:len(x)]
	r = getMag(n + 1)
	r = append(r, 0)
	for i := len(x) - 1; i >= 0; i-- {
		// Bring down the next limb
		r = r.prependLimb(x[i]).norm()
		if cmpMag(r, y) < 0 {
			q[i] = 0
			continue
		}
		// Bounds for the quotient digit from the leading limbs, r < y * B holds
		rt := uint64(r[n-1])
		if len(r) > n {
			rt += uint64(r[n]) * limbBase
		}
		yt := uint64(y[n-1])
		lo, hi := rt/(yt+1), min(rt/yt, limbBase-1)
		// Binary search for the largest d with y * d <= r
		for lo < hi {
			mid := (lo + hi + 1) / 2
			p := mulScalar(y, mid).norm()
			if cmpMag(p, r) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
			putMag(p)
		}
		p := mulScalar(y, lo).norm()
		subMagInPlace(r, p)
		putMag(p)
		r = r.norm()
		q[i] = limb(lo)
	}
	return q.norm(), r
}

// magPool is a cache of reusable magnitudes.
var magPool sync.Pool

// getMag obtains an empty magnitude with at least the given capacity.
func getMag(capacity int) mag {
	if v := magPool.Get(); v != nil {
		if z := *v.(*mag); cap(z) >= capacity {
			return z[:0]
		}
	}
	// Most numbers start small and stay that way; don't over-allocate.
	const e = 4 // extra capacity
	return make(mag, 0, capacity+e)
}

// putMag returns x into the pool.
// x must not be referenced after the call.
func putMag(x mag) {
	if cap(x) == 0 || cap(x) > maxPooledLimbs {
		return
	}
	magPool.Put(&x)
}
