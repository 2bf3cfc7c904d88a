package largenum

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the minimum number of limbs in both operands
// for [Number.MulParallel] to split the work between goroutines.
const parallelThreshold = 64

// MulInt returns a number equal to x * factor.
// A zero factor returns 0 without scanning the limbs of x.
//
// MulInt returns an error if the result has more than [MaxLimbs] limbs.
func (x *Number) MulInt(factor int64) (*Number, error) {
	s, u := splitInt64(factor)
	if u == 0 {
		return Zero(), nil
	}
	sign := x.Sign().Mul(s)
	m := x.limbs()
	var z mag
	if u < limbBase {
		if err := checkLimbs(len(m) + 1); err != nil {
			return nil, fmt.Errorf("computing [%v-limb number * %v]: %w", x.Len(), factor, err)
		}
		z = mulScalar(m, u)
	} else {
		f := magFromUint64(u)
		if err := checkLimbs(len(m) + len(f)); err != nil {
			return nil, fmt.Errorf("computing [%v-limb number * %v]: %w", x.Len(), factor, err)
		}
		z = mulMag(m, f)
	}
	return newNumber(sign, z), nil
}

// Mul returns a number equal to x * y.
// The product is computed with the schoolbook algorithm
// in O(x.Len() * y.Len()) limb multiplications.
//
// Mul returns an error if the result has more than [MaxLimbs] limbs.
func (x *Number) Mul(y *Number) (*Number, error) {
	if err := checkLimbs(x.Len() + y.Len()); err != nil {
		return nil, fmt.Errorf("computing [%v-limb number * %v-limb number]: %w", x.Len(), y.Len(), err)
	}
	return newNumber(x.Sign().Mul(y.Sign()), mulMag(x.limbs(), y.limbs())), nil
}

// MulParallel is like [Number.Mul] but splits x into chunks of limbs
// and computes the partial product of each chunk and y in its own goroutine.
// Partial products are merged sequentially once all of them are ready.
// Operands with fewer than 64 limbs are multiplied by [Number.Mul].
func (x *Number) MulParallel(y *Number) (*Number, error) {
	if x.Len() < parallelThreshold || y.Len() < parallelThreshold {
		return x.Mul(y)
	}
	if err := checkLimbs(x.Len() + y.Len()); err != nil {
		return nil, fmt.Errorf("computing [%v-limb number * %v-limb number]: %w", x.Len(), y.Len(), err)
	}

	xm, ym := x.limbs(), y.limbs()
	workers := runtime.GOMAXPROCS(0)
	chunk := max((len(xm)+workers-1)/workers, parallelThreshold/2)

	// Partial products
	parts := make([]mag, (len(xm)+chunk-1)/chunk)
	g := errgroup.Group{}
	g.SetLimit(workers)
	for i := range parts {
		lo, hi := i*chunk, min((i+1)*chunk, len(xm))
		g.Go(func() error {
			parts[i] = mulMag(xm[lo:hi].norm(), ym)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, p := range parts {
			putMag(p)
		}
		return nil, fmt.Errorf("computing partial products: %w", err)
	}

	// Sequential merge
	z := getMag(len(xm) + len(ym))
	z = z[:len(xm)+len(ym)]
	clear(z)
	for i, p := range parts {
		addAt(z, p, i*chunk)
		putMag(p)
	}
	return newNumber(x.Sign().Mul(y.Sign()), z), nil
}

// Sqr returns a number equal to x * x.
func (x *Number) Sqr() (*Number, error) {
	return x.Mul(x)
}

// Pow returns a number equal to x raised to the power of exp.
// The result is computed by repeated squaring.
// Pow returns 1 if exp is 0, including when x is 0.
//
// Pow returns an error if the result could have more than [MaxLimbs] limbs.
func (x *Number) Pow(exp uint) (*Number, error) {
	// Special cases
	switch {
	case exp == 0:
		return New(1), nil
	case x.IsZero():
		return Zero(), nil
	case exp == 1:
		return newNumber(x.Sign(), x.limbs().clone()), nil
	case cmpMag(x.limbs(), oneMag) == 0:
		if exp%2 == 0 {
			return New(1), nil
		}
		return newNumber(x.Sign(), oneMag.clone()), nil
	}

	// Upper bound of the result length
	prec := uint64(x.Prec())
	if uint64(exp) > math.MaxUint64/prec || (prec*uint64(exp)+limbDigits-1)/limbDigits > MaxLimbs {
		return nil, fmt.Errorf("computing [%v-limb number ^ %v]: %w", x.Len(), exp, ErrAllocation)
	}

	// General case
	z := New(1)
	b := newNumber(x.Sign(), x.limbs().clone())
	for {
		if exp&1 != 0 {
			t, err := z.Mul(b)
			if err != nil {
				z.Release()
				b.Release()
				return nil, err
			}
			z.Release()
			z = t
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		t, err := b.Sqr()
		if err != nil {
			z.Release()
			b.Release()
			return nil, err
		}
		b.Release()
		b = t
	}
	b.Release()
	return z, nil
}
