// Package uniswapv2 implements the raw integer formulas of a constant-product
// pair. All functions operate on smallest-unit integers and never round in the
// trader's favour.
package uniswapv2

import (
	"errors"
	"math/big"
)

// ErrInvalidFee is returned by Fee.Validate for a fee that is not a proper
// fraction in (0, 1].
var ErrInvalidFee = errors.New("invalid swap fee")

// one is never written to.
var one = big.NewInt(1)

// Fee is the fraction of the input amount that reaches the pool after the
// swap fee is taken. 0.3% => 997/1000.
type Fee struct {
	Numerator   *big.Int
	Denominator *big.Int
}

// DefaultFee returns the legacy 0.3% fee.
func DefaultFee() Fee {
	return Fee{Numerator: big.NewInt(997), Denominator: big.NewInt(1000)}
}

// NewFee builds a fee multiplier from numerator/denominator.
func NewFee(numerator, denominator int64) (Fee, error) {
	f := Fee{Numerator: big.NewInt(numerator), Denominator: big.NewInt(denominator)}
	if err := f.Validate(); err != nil {
		return Fee{}, err
	}
	return f, nil
}

// Validate checks 0 < Numerator <= Denominator.
func (f Fee) Validate() error {
	if f.Numerator == nil || f.Denominator == nil {
		return ErrInvalidFee
	}
	if f.Numerator.Sign() <= 0 || f.Denominator.Sign() <= 0 || f.Numerator.Cmp(f.Denominator) > 0 {
		return ErrInvalidFee
	}
	return nil
}

// GetAmountOut computes floor(amountIn*feeN*reserveOut / (reserveIn*feeD + amountIn*feeN)).
// dst, t1 and t2 are caller-owned temporaries so the hot path does not allocate;
// the result is stored in dst.
func GetAmountOut(dst, t1, t2 *big.Int, amountIn, reserveIn, reserveOut *big.Int, fee Fee) *big.Int {
	// t1 = amountIn * feeN
	t1.Mul(amountIn, fee.Numerator)
	// t2 = reserveIn * feeD
	t2.Mul(reserveIn, fee.Denominator)
	// t2 = t2 + t1  (denominator)
	t2.Add(t2, t1)
	// dst = t1 * reserveOut (numerator)
	dst.Mul(t1, reserveOut)
	// dst = dst / t2  (avoid aliasing z==y)
	return dst.Quo(dst, t2)
}

// GetAmountIn computes floor(reserveIn*amountOut*feeD / ((reserveOut-amountOut)*feeN)) + 1.
// The caller guarantees amountOut < reserveOut.
func GetAmountIn(dst, t1, t2 *big.Int, amountOut, reserveIn, reserveOut *big.Int, fee Fee) *big.Int {
	// t1 = reserveIn * amountOut * feeD
	t1.Mul(reserveIn, amountOut)
	t1.Mul(t1, fee.Denominator)
	// t2 = (reserveOut - amountOut) * feeN
	t2.Sub(reserveOut, amountOut)
	t2.Mul(t2, fee.Numerator)
	dst.Quo(t1, t2)
	return dst.Add(dst, one)
}

// Sqrt returns floor(sqrt(y)) for y >= 0.
func Sqrt(y *big.Int) *big.Int {
	return new(big.Int).Sqrt(y)
}

// Min returns the smaller of a and b.
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
