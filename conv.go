package largenum

import (
	"database/sql/driver"
	"fmt"
	"io"
	"strconv"

	"github.com/govalues/decimal"
)

// Parse converts a string to a number.
// The input string must be in the following format:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digit digits
//
// Leading zeros are allowed and removed, and "-0" is parsed as 0.
// Plus signs, decimal points, exponents, and digit separators are not supported.
//
// Parse returns an error wrapping [ErrInvalidNumber] if the string is not
// a valid integer, or [ErrAllocation] if it has too many digits.
func Parse(s string) (*Number, error) {
	x, err := parse(s)
	if err != nil {
		return nil, fmt.Errorf("parsing number: %w", err)
	}
	return x, nil
}

func parse(s string) (*Number, error) {
	var (
		pos   int
		width int
		neg   bool
		start int
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Digits
	start = pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}

	if pos != width {
		return nil, fmt.Errorf("invalid character %q at position %v: %w", s[pos], pos, ErrInvalidNumber)
	}
	if start == width {
		return nil, fmt.Errorf("no digits: %w", ErrInvalidNumber)
	}

	n := (width - start + limbDigits - 1) / limbDigits
	if err := checkLimbs(n); err != nil {
		return nil, err
	}

	// Chunks of limbDigits digits, starting from the least-significant end.
	// The last chunk may be shorter.
	z := getMag(n)
	for end := width; end > start; end -= limbDigits {
		var v limb
		for i := max(end-limbDigits, start); i < end; i++ {
			v = v*10 + limb(s[i]-'0')
		}
		z = z.appendLimb(v)
	}

	sign := Positive
	if neg {
		sign = Negative
	}
	return newNumber(sign, z), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) *Number {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// appendDigits appends the decimal digits of |x| to buf.
// The most-significant limb is written without padding, every other limb
// is zero-padded to 9 digits.
// If x has a decimal position, a decimal point is written in front of
// the fractional limbs.
func (x *Number) appendDigits(buf []byte) []byte {
	m := x.limbs()
	pos := x.DecimalPosition()
	buf = strconv.AppendUint(buf, uint64(m[len(m)-1]), 10)
	for i := len(m) - 2; i >= 0; i-- {
		if i == pos-1 {
			buf = append(buf, '.')
		}
		buf = appendLimbPadded(buf, m[i])
	}
	return buf
}

// appendLimbPadded appends l to buf as exactly limbDigits decimal digits.
func appendLimbPadded(buf []byte, l limb) []byte {
	var d [limbDigits]byte
	for i := limbDigits - 1; i >= 0; i-- {
		d[i] = byte(l%10) + '0'
		l /= 10
	}
	return append(buf, d[:]...)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a number.
// The returned string is formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits ['.' digits]
//
// The decimal point appears only if the number has a decimal position,
// see [Number.WithDecimalPosition].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x *Number) String() string {
	buf := make([]byte, 0, x.Len()*limbDigits+2)
	if x.IsNeg() {
		buf = append(buf, '-')
	}
	return string(x.appendDigits(buf))
}

// WriteTo implements the [io.WriterTo] interface and writes the string
// representation of x to w.
//
// [io.WriterTo]: https://pkg.go.dev/io#WriterTo
func (x *Number) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, x.String())
	return int64(n), err
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Number) UnmarshalText(text []byte) error {
	z, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = *z
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Number.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x *Number) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts strings, byte slices, and 64-bit integers.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *Number) Scan(value any) error {
	var (
		z   *Number
		err error
	)
	switch value := value.(type) {
	case string:
		z, err = Parse(value)
	case []byte:
		z, err = Parse(string(value))
	case int64:
		z = New(value)
	case uint64:
		z = NewFromUint64(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T: %w", value, Number{}, ErrInvalidNumber)
	}
	if err != nil {
		return err
	}
	*x = *z
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x *Number) Value() (driver.Value, error) {
	return x.String(), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -123456789
//	%q:        "-123456789"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x *Number) Format(state fmt.State, verb rune) {
	digs := x.appendDigits(nil)

	// Arithmetic sign
	rsign := 0
	if x.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(digs) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case x.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digs...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(largenum.Number="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// FromDecimal returns a number equal to the integer part of d.
// The fractional part is truncated towards zero.
func FromDecimal(d decimal.Decimal) *Number {
	t := d.Trunc(0)
	z := magFromUint64(t.Coef())
	if t.IsNeg() {
		return newNumber(Negative, z)
	}
	return newNumber(Positive, z)
}

// Decimal converts x to a [decimal.Decimal] with a scale of 0.
// Decimal returns an error wrapping [ErrOverflow] if x does not fit
// into int64.
//
// [decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
func (x *Number) Decimal() (decimal.Decimal, error) {
	v, ok := x.Int64()
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("converting %v limbs to %T: %w", x.Len(), decimal.Decimal{}, ErrOverflow)
	}
	d, err := decimal.New(v, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting to %T: %w", decimal.Decimal{}, err)
	}
	return d, nil
}
