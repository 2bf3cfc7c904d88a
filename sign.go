package largenum

// Sign is the sign tag of a [Number].
// The zero value is [Positive].
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

// Neg returns the opposite sign.
func (s Sign) Neg() Sign {
	return s ^ 1
}

// Mul returns the sign of a product (or quotient) of two numbers
// with signs s and t.
func (s Sign) Mul(t Sign) Sign {
	return s ^ t
}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}
