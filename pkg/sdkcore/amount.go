package sdkcore

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxUint256 is the largest raw amount a contract can hold.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// CurrencyAmount is a Fraction of a currency's smallest unit. Raw amounts read
// from chain have denominator 1; intermediate results may be fractional.
type CurrencyAmount struct {
	currency Currency
	frac     Fraction
}

// FromRawAmount tags a smallest-unit integer with its currency.
func FromRawAmount(c Currency, raw *big.Int) (CurrencyAmount, error) {
	if raw == nil {
		return CurrencyAmount{}, fmt.Errorf("%w: nil raw amount", ErrInvalidAmount)
	}
	if raw.Cmp(MaxUint256) > 0 {
		return CurrencyAmount{}, ErrAmountOverflow
	}
	return CurrencyAmount{currency: c, frac: FractionFromInt(raw)}, nil
}

// FromRawString parses a base-10 smallest-unit integer.
func FromRawString(c Currency, raw string) (CurrencyAmount, error) {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return CurrencyAmount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return FromRawAmount(c, v)
}

// FromFractionalAmount builds an amount from num/den smallest units.
func FromFractionalAmount(c Currency, num, den *big.Int) (CurrencyAmount, error) {
	f, err := NewFraction(num, den)
	if err != nil {
		return CurrencyAmount{}, err
	}
	if f.Quotient().Cmp(MaxUint256) > 0 {
		return CurrencyAmount{}, ErrAmountOverflow
	}
	return CurrencyAmount{currency: c, frac: f}, nil
}

// ParseAmount converts a human decimal string ("1.5") into smallest units by
// scaling with 10^decimals. Inputs with more fractional digits than the
// currency supports are rejected instead of rounded.
func ParseAmount(c Currency, human string) (CurrencyAmount, error) {
	d, err := decimal.NewFromString(human)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, human, err)
	}
	scaled := d.Shift(int32(c.Decimals()))
	if !scaled.IsInteger() {
		return CurrencyAmount{}, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, human, c.Decimals())
	}
	if scaled.IsNegative() {
		return CurrencyAmount{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, human)
	}
	return FromRawAmount(c, scaled.BigInt())
}

// Currency returns the currency tag.
func (a CurrencyAmount) Currency() Currency { return a.currency }

// Fraction returns the smallest-unit value as a Fraction.
func (a CurrencyAmount) Fraction() Fraction { return a.frac }

// Quotient is the integer smallest-unit amount, truncated.
func (a CurrencyAmount) Quotient() *big.Int { return a.frac.Quotient() }

// Numerator returns a copy of the numerator.
func (a CurrencyAmount) Numerator() *big.Int { return a.frac.Numerator() }

// Denominator returns a copy of the denominator.
func (a CurrencyAmount) Denominator() *big.Int { return a.frac.Denominator() }

// Sign returns the sign of the amount.
func (a CurrencyAmount) Sign() int { return a.frac.Sign() }

// IsZero reports a zero amount.
func (a CurrencyAmount) IsZero() bool { return a.frac.IsZero() }

func (a CurrencyAmount) sameCurrency(o CurrencyAmount) error {
	if !a.currency.Equal(o.currency) {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, a.currency, o.currency)
	}
	return nil
}

// Add returns a + o; both must be in the same currency.
func (a CurrencyAmount) Add(o CurrencyAmount) (CurrencyAmount, error) {
	if err := a.sameCurrency(o); err != nil {
		return CurrencyAmount{}, err
	}
	return CurrencyAmount{currency: a.currency, frac: a.frac.Add(o.frac)}, nil
}

// Sub returns a - o; both must be in the same currency.
func (a CurrencyAmount) Sub(o CurrencyAmount) (CurrencyAmount, error) {
	if err := a.sameCurrency(o); err != nil {
		return CurrencyAmount{}, err
	}
	return CurrencyAmount{currency: a.currency, frac: a.frac.Sub(o.frac)}, nil
}

// Mul scales the amount by f, keeping the currency.
func (a CurrencyAmount) Mul(f Fraction) CurrencyAmount {
	return CurrencyAmount{currency: a.currency, frac: a.frac.Mul(f)}
}

// MulPercent scales the amount by p.
func (a CurrencyAmount) MulPercent(p Percent) CurrencyAmount {
	return a.Mul(p.Fraction)
}

// Div divides the amount by f, keeping the currency.
func (a CurrencyAmount) Div(f Fraction) (CurrencyAmount, error) {
	q, err := a.frac.Div(f)
	if err != nil {
		return CurrencyAmount{}, err
	}
	return CurrencyAmount{currency: a.currency, frac: q}, nil
}

// Cmp compares the values of a and o. It does not check currencies.
func (a CurrencyAmount) Cmp(o CurrencyAmount) int { return a.frac.Cmp(o.frac) }

func (a CurrencyAmount) LessThan(o CurrencyAmount) bool    { return a.Cmp(o) < 0 }
func (a CurrencyAmount) EqualTo(o CurrencyAmount) bool     { return a.Cmp(o) == 0 }
func (a CurrencyAmount) GreaterThan(o CurrencyAmount) bool { return a.Cmp(o) > 0 }

// Equal reports same currency and same value.
func (a CurrencyAmount) Equal(o CurrencyAmount) bool {
	return a.currency.Equal(o.currency) && a.EqualTo(o)
}

func (a CurrencyAmount) decimalScale() *big.Int {
	return pow10(int(a.currency.Decimals()))
}

// ToSignificant renders the human value to digits significant digits,
// truncating.
func (a CurrencyAmount) ToSignificant(digits int) string {
	return toSignificant(a.frac.n(), new(big.Int).Mul(a.frac.d(), a.decimalScale()), digits, RoundDown)
}

// ToFixed renders the human value with places decimals, truncating.
func (a CurrencyAmount) ToFixed(places int) string {
	return toFixed(a.frac.n(), new(big.Int).Mul(a.frac.d(), a.decimalScale()), places, RoundDown)
}

// ToFixedFormat is ToFixed with presentation options.
func (a CurrencyAmount) ToFixedFormat(places int, opts FormatOptions) string {
	return opts.Apply(a.ToFixed(places))
}

// ToExact renders the integer part of the raw amount at full precision,
// trailing zeros removed.
func (a CurrencyAmount) ToExact() string {
	return decimal.NewFromBigInt(a.Quotient(), -int32(a.currency.Decimals())).String()
}

func (a CurrencyAmount) String() string {
	return a.ToExact() + " " + a.currency.String()
}
