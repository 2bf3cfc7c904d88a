/*
Package largenum implements immutable arbitrary-precision signed integers.

# Representation

[Number] is a struct with two essential fields:

  - Sign: a [Sign] tag, either [Positive] or [Negative].
  - Magnitude: an unsigned integer stored as a sequence of limbs,
    least-significant limb first.
    Each limb is a digit in radix 10^9, that is, it holds exactly 9 decimal
    digits, except for the most-significant limb, which may hold fewer.
    For example, the number 1234567890123 is stored as two limbs:
    567890123 and 1234.

The numerical value of a number is calculated as:

  - -Magnitude, if Sign is Negative.
  - Magnitude, if Sign is Positive.

The magnitude is always normalized: it never has most-significant zero limbs,
and 0 is represented by exactly one zero limb with a positive sign.
Negative zeros are not supported.

Decimal radix makes conversions to and from strings linear in the number of
digits: parsing groups digits into chunks of 9, formatting writes each limb
zero-padded to 9 digits.

# Constraints

The number of limbs in a single number is limited by [MaxLimbs], which
corresponds to roughly 150 million decimal digits.
Operations that would produce a larger result return [ErrAllocation].

# Conversions

The package provides methods for converting numbers:

  - from/to string:
    [Parse], [Number.String], [Number.Format], [Number.WriteTo].
  - from/to int64 and uint64:
    [New], [NewFromUint64], [Number.Int64], [Number.Uint64].
  - from/to [decimal.Decimal]:
    [FromDecimal], [Number.Decimal].

[Number] also implements [encoding.TextMarshaler], [encoding.TextUnmarshaler],
[sql.Scanner], and [driver.Valuer].

# Operations

Arithmetic methods never modify their receiver or arguments.
Each of them returns a newly allocated number.

  - [Number.AddInt], [Number.SubInt], [Number.Add], [Number.Sub]:
    Addition and subtraction propagate carries and borrows limb by limb.
    Numbers of different signs are dispatched to the opposite operation
    on magnitudes.
  - [Number.MulInt], [Number.Mul], [Number.MulParallel]:
    Multiplication uses the schoolbook algorithm.
    [Number.MulParallel] computes partial products in separate goroutines
    and merges them sequentially.
  - [Number.Quo], [Number.QuoRem], [Number.Rem], [Number.QuoInt]:
    Division is truncated towards zero.
    If both operands are less than 10^18, division is carried out using
    uint64 arithmetic.
    Otherwise, long division is used: the dividend's limbs are brought down
    one by one and each quotient limb is found by binary search.

Intermediate magnitudes are recycled through an internal pool.
Numbers that are no longer needed can be returned to the pool with
[Number.Release].

# Errors

All methods are panic-free for valid input and pure.
Errors are returned in the following cases:

  - Invalid Number.
    [Parse] accepts only an optional leading '-' followed by decimal digits.
    Any other character, including '+' and '.', is an error.

  - Division by Zero.
    [Number.Quo], [Number.QuoRem], [Number.Rem], and [Number.QuoInt]
    return [ErrDivisionByZero] when dividing by 0.

  - Allocation Failure.
    Operations whose result would have more than [MaxLimbs] limbs return
    [ErrAllocation] without modifying any operand.

  - Overflow.
    Conversions to fixed-size types return [ErrOverflow] or false when
    the number does not fit.

[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
[encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
[encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
[sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
[driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
*/
package largenum
