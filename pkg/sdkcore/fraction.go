// Package sdkcore holds the exact-arithmetic number types shared by the AMM
// code: Fraction, Percent, Currency, CurrencyAmount and Price. Values are
// immutable; every operation returns a fresh value and never goes through
// floating point.
package sdkcore

import (
	"fmt"
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	ten  = big.NewInt(10)
)

// Fraction is an exact rational numerator/denominator. The denominator is
// never zero and always positive; fractions are not reduced implicitly.
// The zero value is 0/1.
type Fraction struct {
	num *big.Int
	den *big.Int
}

// NewFraction returns num/den. The inputs are copied.
func NewFraction(num, den *big.Int) (Fraction, error) {
	if den == nil || den.Sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	if num == nil {
		num = zero
	}
	n, d := new(big.Int).Set(num), new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return Fraction{num: n, den: d}, nil
}

// MustFraction is NewFraction for constant inputs; it panics on a zero denominator.
func MustFraction(num, den int64) Fraction {
	f, err := NewFraction(big.NewInt(num), big.NewInt(den))
	if err != nil {
		panic(err)
	}
	return f
}

// FractionFromInt returns n/1.
func FractionFromInt(n *big.Int) Fraction {
	f, _ := NewFraction(n, one)
	return f
}

// fraction builds from freshly allocated values the caller no longer touches.
func fraction(num, den *big.Int) Fraction {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return Fraction{num: num, den: den}
}

func (f Fraction) n() *big.Int {
	if f.num == nil {
		return zero
	}
	return f.num
}

func (f Fraction) d() *big.Int {
	if f.den == nil {
		return one
	}
	return f.den
}

// Numerator returns a copy of the numerator.
func (f Fraction) Numerator() *big.Int { return new(big.Int).Set(f.n()) }

// Denominator returns a copy of the denominator.
func (f Fraction) Denominator() *big.Int { return new(big.Int).Set(f.d()) }

// Quotient is the integer part, truncated toward zero.
func (f Fraction) Quotient() *big.Int { return new(big.Int).Quo(f.n(), f.d()) }

// QuotientRounded is the integer quotient rounded with mode.
func (f Fraction) QuotientRounded(mode Rounding) *big.Int { return divRound(f.n(), f.d(), mode) }

// Remainder returns (num mod den)/den, truncated like Quotient.
func (f Fraction) Remainder() Fraction {
	return fraction(new(big.Int).Rem(f.n(), f.d()), new(big.Int).Set(f.d()))
}

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int { return f.n().Sign() }

// IsZero reports whether the value is zero.
func (f Fraction) IsZero() bool { return f.n().Sign() == 0 }

// Invert swaps numerator and denominator.
func (f Fraction) Invert() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	return fraction(new(big.Int).Set(f.d()), new(big.Int).Set(f.n())), nil
}

// Add returns f + o.
func (f Fraction) Add(o Fraction) Fraction {
	if f.d().Cmp(o.d()) == 0 {
		return fraction(new(big.Int).Add(f.n(), o.n()), new(big.Int).Set(f.d()))
	}
	a := new(big.Int).Mul(f.n(), o.d())
	b := new(big.Int).Mul(o.n(), f.d())
	return fraction(a.Add(a, b), new(big.Int).Mul(f.d(), o.d()))
}

// Sub returns f - o.
func (f Fraction) Sub(o Fraction) Fraction {
	if f.d().Cmp(o.d()) == 0 {
		return fraction(new(big.Int).Sub(f.n(), o.n()), new(big.Int).Set(f.d()))
	}
	a := new(big.Int).Mul(f.n(), o.d())
	b := new(big.Int).Mul(o.n(), f.d())
	return fraction(a.Sub(a, b), new(big.Int).Mul(f.d(), o.d()))
}

// Mul returns f * o.
func (f Fraction) Mul(o Fraction) Fraction {
	return fraction(new(big.Int).Mul(f.n(), o.n()), new(big.Int).Mul(f.d(), o.d()))
}

// MulInt returns f * n.
func (f Fraction) MulInt(n *big.Int) Fraction {
	return fraction(new(big.Int).Mul(f.n(), n), new(big.Int).Set(f.d()))
}

// Div returns f / o, or ErrDivisionByZero when o is zero.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if o.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	return fraction(new(big.Int).Mul(f.n(), o.d()), new(big.Int).Mul(f.d(), o.n())), nil
}

// Cmp compares f and o by cross products: -1, 0 or +1.
func (f Fraction) Cmp(o Fraction) int {
	a := new(big.Int).Mul(f.n(), o.d())
	b := new(big.Int).Mul(o.n(), f.d())
	return a.Cmp(b)
}

// LessThan reports f < o.
func (f Fraction) LessThan(o Fraction) bool { return f.Cmp(o) < 0 }

// EqualTo reports f == o as rationals.
func (f Fraction) EqualTo(o Fraction) bool { return f.Cmp(o) == 0 }

// GreaterThan reports f > o.
func (f Fraction) GreaterThan(o Fraction) bool { return f.Cmp(o) > 0 }

// Reduced divides numerator and denominator by their gcd.
func (f Fraction) Reduced() Fraction {
	if f.IsZero() {
		return fraction(new(big.Int), big.NewInt(1))
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(f.n()), f.d())
	return fraction(new(big.Int).Quo(f.n(), g), new(big.Int).Quo(f.d(), g))
}

// Rat converts to a big.Rat.
func (f Fraction) Rat() *big.Rat { return new(big.Rat).SetFrac(f.n(), f.d()) }

// ToFixed renders the value with exactly places decimals.
func (f Fraction) ToFixed(places int, rounding Rounding) string {
	return toFixed(f.n(), f.d(), places, rounding)
}

// ToSignificant renders the value rounded to digits significant digits,
// without trailing zeros.
func (f Fraction) ToSignificant(digits int, rounding Rounding) string {
	return toSignificant(f.n(), f.d(), digits, rounding)
}

// String prints num/den.
func (f Fraction) String() string { return fmt.Sprintf("%s/%s", f.n(), f.d()) }
