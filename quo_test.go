package largenum

import (
	"errors"
	"testing"
)

func TestNumber_QuoRem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, wantQuo, wantRem string
		}{
			// Fast path
			{"0", "1", "0", "0"},
			{"0", "-7", "0", "0"},
			{"7", "2", "3", "1"},
			{"-7", "2", "-3", "-1"},
			{"7", "-2", "-3", "1"},
			{"-7", "-2", "3", "-1"},
			{"1000000000000", "3", "333333333333", "1"},
			{"999999999999999999", "999999999999999999", "1", "0"},
			{"5", "999999999999999999", "0", "5"},

			// Long division
			{"1000000000000000000", "3", "333333333333333333", "1"},
			{"-1000000000000000000", "3", "-333333333333333333", "-1"},
			{"1000000000000000000000000000000", "7", "142857142857142857142857142857", "1"},
			{"987654321098765432109876543210", "123456789012345678901234567890", "8", "9000000000900000000090"},
			{"-987654321098765432109876543210", "123456789012345678901234567890", "-8", "-9000000000900000000090"},
			{"100000000000000000000000000000000000000000000012345", "100000000000000000001", "999999999999999999990000000000", "10000012345"},
			{"123456789012345678901234567890", "123456789012345678901234567890", "1", "0"},
			{"123456789012345678901234567889", "123456789012345678901234567890", "0", "123456789012345678901234567889"},
			{"-5", "1000000000000000000000", "0", "-5"},
		}
		for _, tt := range tests {
			x, y := MustParse(tt.x), MustParse(tt.y)
			q, r, err := x.QuoRem(y)
			if err != nil {
				t.Errorf("%q.QuoRem(%q) failed: %v", tt.x, tt.y, err)
				continue
			}
			if q.String() != tt.wantQuo || r.String() != tt.wantRem {
				t.Errorf("%q.QuoRem(%q) = (%q, %q), want (%q, %q)", tt.x, tt.y, q, r, tt.wantQuo, tt.wantRem)
			}
			// x = y * q + r
			got := y.MustMul(q).MustAdd(r)
			if !got.Equal(x) {
				t.Errorf("%q * %q + %q = %q, want %q", tt.y, q, r, got, tt.x)
			}
			if r.CmpAbs(y) >= 0 {
				t.Errorf("|%q| >= |%q|", r, tt.y)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"0", "1", "-1", "123456789012345678901234567890"}
		for _, s := range tests {
			x := MustParse(s)
			_, _, err := x.QuoRem(Zero())
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("%q.QuoRem(0) failed with %v, want %v", s, err, ErrDivisionByZero)
			}
			_, err = x.Quo(MustParse("-0"))
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("%q.Quo(-0) failed with %v, want %v", s, err, ErrDivisionByZero)
			}
			_, err = x.Rem(Zero())
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("%q.Rem(0) failed with %v, want %v", s, err, ErrDivisionByZero)
			}
			_, err = x.QuoInt(0)
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("%q.QuoInt(0) failed with %v, want %v", s, err, ErrDivisionByZero)
			}
		}
	})
}

func TestNumber_Quo(t *testing.T) {
	tests := []struct {
		x, y, wantQuo, wantRem string
	}{
		{"-7", "2", "-3", "-1"},
		{"1000000000000", "3", "333333333333", "1"},
		{"121932631112635269", "987654321", "123456789", "0"},
		{"1000000000000000000000000000000", "-7", "-142857142857142857142857142857", "1"},
	}
	for _, tt := range tests {
		x, y := MustParse(tt.x), MustParse(tt.y)
		q, err := x.Quo(y)
		if err != nil {
			t.Errorf("%q.Quo(%q) failed: %v", tt.x, tt.y, err)
			continue
		}
		if q.String() != tt.wantQuo {
			t.Errorf("%q.Quo(%q) = %q, want %q", tt.x, tt.y, q, tt.wantQuo)
		}
		r, err := x.Rem(y)
		if err != nil {
			t.Errorf("%q.Rem(%q) failed: %v", tt.x, tt.y, err)
			continue
		}
		if r.String() != tt.wantRem {
			t.Errorf("%q.Rem(%q) = %q, want %q", tt.x, tt.y, r, tt.wantRem)
		}
	}
}

func TestNumber_QuoInt(t *testing.T) {
	tests := []struct {
		x       string
		divisor int64
		want    string
	}{
		{"0", 5, "0"},
		{"1000000000000", 3, "333333333333"},
		{"-1000000000000000000000", 1000000000, "-1000000000000"},
		{"9223372036854775808", -9223372036854775808, "-1"},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.x).QuoInt(tt.divisor)
		if err != nil {
			t.Errorf("%q.QuoInt(%v) failed: %v", tt.x, tt.divisor, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.QuoInt(%v) = %q, want %q", tt.x, tt.divisor, got, tt.want)
		}
	}
}

func TestMustQuo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got := MustParse("10").MustQuo(MustParse("-3"))
		if got.String() != "-3" {
			t.Errorf("MustQuo() = %q, want \"-3\"", got)
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustQuo(0) did not panic")
			}
		}()
		MustParse("10").MustQuo(Zero())
	})
}
