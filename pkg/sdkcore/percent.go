package sdkcore

import "math/big"

var hundred = FractionFromInt(big.NewInt(100))

// Percent is a Fraction rendered as a percentage: 1/100 prints as "1".
type Percent struct {
	Fraction
}

// NewPercent returns num/den as a percent.
func NewPercent(num, den *big.Int) (Percent, error) {
	f, err := NewFraction(num, den)
	if err != nil {
		return Percent{}, err
	}
	return Percent{f}, nil
}

// PercentFromFraction tags f as a percent.
func PercentFromFraction(f Fraction) Percent { return Percent{f} }

// PercentFromBips returns bips/10000; 50 bips is 0.5%.
func PercentFromBips(bips int64) Percent {
	return Percent{MustFraction(bips, 10_000)}
}

// ZeroPercent is 0%.
func ZeroPercent() Percent { return Percent{MustFraction(0, 1)} }

// OneHundredPercent is 100%.
func OneHundredPercent() Percent { return Percent{MustFraction(1, 1)} }

// Add returns p + o.
func (p Percent) Add(o Percent) Percent { return Percent{p.Fraction.Add(o.Fraction)} }

// Sub returns p - o.
func (p Percent) Sub(o Percent) Percent { return Percent{p.Fraction.Sub(o.Fraction)} }

// Mul returns p * o.
func (p Percent) Mul(o Percent) Percent { return Percent{p.Fraction.Mul(o.Fraction)} }

// Div returns p / o.
func (p Percent) Div(o Percent) (Percent, error) {
	f, err := p.Fraction.Div(o.Fraction)
	if err != nil {
		return Percent{}, err
	}
	return Percent{f}, nil
}

// Neg returns -p.
func (p Percent) Neg() Percent {
	return Percent{p.Fraction.MulInt(big.NewInt(-1))}
}

// ToSignificant renders the percentage value (x100).
func (p Percent) ToSignificant(digits int, rounding Rounding) string {
	return p.Fraction.Mul(hundred).ToSignificant(digits, rounding)
}

// ToFixed renders the percentage value (x100).
func (p Percent) ToFixed(places int, rounding Rounding) string {
	return p.Fraction.Mul(hundred).ToFixed(places, rounding)
}

// String renders with two decimals and a percent sign.
func (p Percent) String() string { return p.ToFixed(2, RoundHalfUp) + "%" }
