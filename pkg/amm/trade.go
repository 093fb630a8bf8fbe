package amm

import (
	"fmt"
	"math/big"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

// TradeType says which side of a trade is fixed.
type TradeType int

const (
	ExactInput TradeType = iota
	ExactOutput
)

func (t TradeType) String() string {
	if t == ExactOutput {
		return "exact_out"
	}
	return "exact_in"
}

// Trade is the result of pushing an amount through a route.
type Trade struct {
	route          Route
	tradeType      TradeType
	inputAmount    sdkcore.CurrencyAmount
	outputAmount   sdkcore.CurrencyAmount
	executionPrice sdkcore.Price
	priceImpact    sdkcore.Percent
}

// ExactInputTrade sells exactly amountIn along route.
func ExactInputTrade(route Route, amountIn sdkcore.CurrencyAmount) (Trade, error) {
	return NewTrade(route, amountIn, ExactInput)
}

// ExactOutputTrade buys exactly amountOut along route.
func ExactOutputTrade(route Route, amountOut sdkcore.CurrencyAmount) (Trade, error) {
	return NewTrade(route, amountOut, ExactOutput)
}

// NewTrade walks the route forward for ExactInput and backward for
// ExactOutput, threading each hop's result into the next.
func NewTrade(route Route, amount sdkcore.CurrencyAmount, tradeType TradeType) (Trade, error) {
	if len(route.pairs) == 0 {
		return Trade{}, ErrEmptyRoute
	}
	cfg := route.pairs[0].Config()
	wrapped, err := cfg.WrapAmount(amount)
	if err != nil {
		return Trade{}, err
	}

	var input, output sdkcore.CurrencyAmount
	switch tradeType {
	case ExactInput:
		if !amount.Currency().Equal(route.input) {
			return Trade{}, fmt.Errorf("%w: trade input %s, route input %s", sdkcore.ErrCurrencyMismatch, amount.Currency(), route.input)
		}
		cur := wrapped
		for i, p := range route.pairs {
			if cur, _, err = p.GetOutputAmount(cur); err != nil {
				return Trade{}, fmt.Errorf("hop %d %s: %w", i, p, err)
			}
		}
		input = amount
		if output, err = retag(cur, route.output); err != nil {
			return Trade{}, err
		}
	case ExactOutput:
		if !amount.Currency().Equal(route.output) {
			return Trade{}, fmt.Errorf("%w: trade output %s, route output %s", sdkcore.ErrCurrencyMismatch, amount.Currency(), route.output)
		}
		cur := wrapped
		for i := len(route.pairs) - 1; i >= 0; i-- {
			p := route.pairs[i]
			if cur, _, err = p.GetInputAmount(cur); err != nil {
				return Trade{}, fmt.Errorf("hop %d %s: %w", i, p, err)
			}
		}
		output = amount
		if input, err = retag(cur, route.input); err != nil {
			return Trade{}, err
		}
	default:
		return Trade{}, fmt.Errorf("unknown trade type %d", tradeType)
	}

	execution, err := sdkcore.NewPrice(input.Currency(), output.Currency(), input.Quotient(), output.Quotient())
	if err != nil {
		return Trade{}, fmt.Errorf("execution price: %w", err)
	}
	mid, err := route.MidPrice()
	if err != nil {
		return Trade{}, err
	}
	impact, err := computePriceImpact(mid, input, output)
	if err != nil {
		return Trade{}, err
	}

	return Trade{
		route:          route,
		tradeType:      tradeType,
		inputAmount:    input,
		outputAmount:   output,
		executionPrice: execution,
		priceImpact:    impact,
	}, nil
}

// retag moves a wrapped-token amount onto the route's own currency.
func retag(a sdkcore.CurrencyAmount, c sdkcore.Currency) (sdkcore.CurrencyAmount, error) {
	return sdkcore.FromFractionalAmount(c, a.Numerator(), a.Denominator())
}

// computePriceImpact is (mid.Quote(in) - out) / mid.Quote(in).
func computePriceImpact(mid sdkcore.Price, input, output sdkcore.CurrencyAmount) (sdkcore.Percent, error) {
	quoted, err := mid.Quote(input)
	if err != nil {
		return sdkcore.Percent{}, err
	}
	diff := quoted.Fraction().Sub(output.Fraction())
	impact, err := diff.Div(quoted.Fraction())
	if err != nil {
		return sdkcore.Percent{}, fmt.Errorf("price impact: %w", err)
	}
	return sdkcore.PercentFromFraction(impact), nil
}

func (t Trade) Route() Route                         { return t.route }
func (t Trade) TradeType() TradeType                 { return t.tradeType }
func (t Trade) InputAmount() sdkcore.CurrencyAmount  { return t.inputAmount }
func (t Trade) OutputAmount() sdkcore.CurrencyAmount { return t.outputAmount }
func (t Trade) ExecutionPrice() sdkcore.Price        { return t.executionPrice }
func (t Trade) PriceImpact() sdkcore.Percent         { return t.priceImpact }

func validateSlippage(s sdkcore.Percent) error {
	if s.Sign() < 0 || s.GreaterThan(sdkcore.OneHundredPercent().Fraction) {
		return fmt.Errorf("%w: %s", ErrInvalidSlippage, s)
	}
	return nil
}

// MinimumAmountOut is the least output accepted under slippage, floored in
// the output's smallest unit. Exact-output trades return the output as is.
func (t Trade) MinimumAmountOut(slippage sdkcore.Percent) (sdkcore.CurrencyAmount, error) {
	if err := validateSlippage(slippage); err != nil {
		return sdkcore.CurrencyAmount{}, err
	}
	if t.tradeType == ExactOutput {
		return t.outputAmount, nil
	}
	f := sdkcore.OneHundredPercent().Sub(slippage).Fraction.Mul(t.outputAmount.Fraction())
	return sdkcore.FromRawAmount(t.outputAmount.Currency(), f.QuotientRounded(sdkcore.RoundDown))
}

// MaximumAmountIn is the most input spent under slippage, rounded up in the
// input's smallest unit. Exact-input trades return the input as is.
func (t Trade) MaximumAmountIn(slippage sdkcore.Percent) (sdkcore.CurrencyAmount, error) {
	if err := validateSlippage(slippage); err != nil {
		return sdkcore.CurrencyAmount{}, err
	}
	if t.tradeType == ExactInput {
		return t.inputAmount, nil
	}
	f := sdkcore.OneHundredPercent().Add(slippage).Fraction.Mul(t.inputAmount.Fraction())
	return sdkcore.FromRawAmount(t.inputAmount.Currency(), f.QuotientRounded(sdkcore.RoundUp))
}

// WorstExecutionPrice is MinimumAmountOut per MaximumAmountIn.
func (t Trade) WorstExecutionPrice(slippage sdkcore.Percent) (sdkcore.Price, error) {
	in, err := t.MaximumAmountIn(slippage)
	if err != nil {
		return sdkcore.Price{}, err
	}
	out, err := t.MinimumAmountOut(slippage)
	if err != nil {
		return sdkcore.Price{}, err
	}
	return sdkcore.NewPrice(in.Currency(), out.Currency(), in.Quotient(), out.Quotient())
}

// IsTradeBetter reports whether b beats a by at least minimumDelta in
// execution price. A missing trade loses to any present one.
func IsTradeBetter(a, b *Trade, minimumDelta sdkcore.Percent) (bool, error) {
	switch {
	case a == nil && b == nil:
		return false, nil
	case a == nil:
		return true, nil
	case b == nil:
		return false, nil
	}
	if a.tradeType != b.tradeType {
		return false, ErrTradeTypeMismatch
	}
	if !a.inputAmount.Currency().Equal(b.inputAmount.Currency()) || !a.outputAmount.Currency().Equal(b.outputAmount.Currency()) {
		return false, fmt.Errorf("%w: %s vs %s", sdkcore.ErrCurrencyMismatch, a.route, b.route)
	}
	if minimumDelta.IsZero() {
		return a.executionPrice.Raw().LessThan(b.executionPrice.Raw()), nil
	}
	threshold := a.executionPrice.Raw().Mul(sdkcore.OneHundredPercent().Add(minimumDelta).Fraction)
	return threshold.LessThan(b.executionPrice.Raw()), nil
}

// hops is used to order equally priced trades.
func (t Trade) hops() int { return len(t.route.pairs) }

// rawIn and rawOut are the integer amounts the search compares.
func (t Trade) rawIn() *big.Int  { return t.inputAmount.Quotient() }
func (t Trade) rawOut() *big.Int { return t.outputAmount.Quotient() }
