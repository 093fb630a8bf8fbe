package sdkcore

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Price is the amount of quote currency per unit of base currency. The
// underlying fraction is kept in smallest units (raw quote per raw base), so
// Quote works directly on raw amounts; the scalar 10^baseDecimals /
// 10^quoteDecimals converts to the human-readable price for display.
type Price struct {
	base   Currency
	quote  Currency
	raw    Fraction
	scalar Fraction
}

// NewPrice returns the price numerator/denominator in raw units, i.e.
// denominator raw base buys numerator raw quote.
func NewPrice(base, quote Currency, denominator, numerator *big.Int) (Price, error) {
	raw, err := NewFraction(numerator, denominator)
	if err != nil {
		return Price{}, err
	}
	return newPrice(base, quote, raw), nil
}

func newPrice(base, quote Currency, raw Fraction) Price {
	scalar := fraction(pow10(int(base.Decimals())), pow10(int(quote.Decimals())))
	return Price{base: base, quote: quote, raw: raw, scalar: scalar}
}

// PriceFromAmounts is the price implied by exchanging baseAmount for quoteAmount.
func PriceFromAmounts(baseAmount, quoteAmount CurrencyAmount) (Price, error) {
	raw, err := quoteAmount.frac.Div(baseAmount.frac)
	if err != nil {
		return Price{}, err
	}
	return newPrice(baseAmount.currency, quoteAmount.currency, raw), nil
}

// ParsePrice converts a human price ("1900.5 quote per base") into raw units:
// raw = human * 10^quoteDecimals / 10^baseDecimals.
func ParsePrice(base, quote Currency, human string) (Price, error) {
	d, err := decimal.NewFromString(human)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, human, err)
	}
	if d.Sign() <= 0 {
		return Price{}, fmt.Errorf("%w: price %q must be positive", ErrInvalidAmount, human)
	}
	// d = coefficient * 10^exp
	num := new(big.Int).Set(d.Coefficient())
	den := big.NewInt(1)
	if exp := int(d.Exponent()); exp >= 0 {
		num.Mul(num, pow10(exp))
	} else {
		den = pow10(-exp)
	}
	human10 := fraction(num, den)
	scalar := fraction(pow10(int(base.Decimals())), pow10(int(quote.Decimals())))
	raw, err := human10.Div(scalar)
	if err != nil {
		return Price{}, err
	}
	return Price{base: base, quote: quote, raw: raw, scalar: scalar}, nil
}

// Base returns the base currency.
func (p Price) Base() Currency { return p.base }

// QuoteCurrency returns the quote currency.
func (p Price) QuoteCurrency() Currency { return p.quote }

// Raw returns the smallest-unit ratio.
func (p Price) Raw() Fraction { return p.raw }

// Scalar returns 10^baseDecimals / 10^quoteDecimals.
func (p Price) Scalar() Fraction { return p.scalar }

// AdjustedForDecimals is the human-readable ratio.
func (p Price) AdjustedForDecimals() Fraction { return p.raw.Mul(p.scalar) }

// Invert swaps base and quote.
func (p Price) Invert() (Price, error) {
	inv, err := p.raw.Invert()
	if err != nil {
		return Price{}, err
	}
	return newPrice(p.quote, p.base, inv), nil
}

// Mul chains p (A->B) with o (B->C) into A->C.
func (p Price) Mul(o Price) (Price, error) {
	if !p.quote.Equal(o.base) {
		return Price{}, fmt.Errorf("%w: %s quote vs %s base", ErrCurrencyMismatch, p.quote, o.base)
	}
	return newPrice(p.base, o.quote, p.raw.Mul(o.raw)), nil
}

// Quote converts an amount of base currency into quote currency.
func (p Price) Quote(amount CurrencyAmount) (CurrencyAmount, error) {
	if !amount.currency.Equal(p.base) {
		return CurrencyAmount{}, fmt.Errorf("%w: %s is not %s", ErrCurrencyMismatch, amount.currency, p.base)
	}
	return CurrencyAmount{currency: p.quote, frac: p.raw.Mul(amount.frac)}, nil
}

// Cmp compares the raw ratios of two prices.
func (p Price) Cmp(o Price) int { return p.raw.Cmp(o.raw) }

// ToSignificant renders the decimal-adjusted price.
func (p Price) ToSignificant(digits int) string {
	return p.AdjustedForDecimals().ToSignificant(digits, RoundHalfUp)
}

// ToFixed renders the decimal-adjusted price.
func (p Price) ToFixed(places int) string {
	return p.AdjustedForDecimals().ToFixed(places, RoundHalfUp)
}

func (p Price) String() string {
	return fmt.Sprintf("%s %s/%s", p.ToSignificant(6), p.quote, p.base)
}
