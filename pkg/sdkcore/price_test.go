package sdkcore

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceDecimalAdjustment(t *testing.T) {
	weth := mustToken(t, testChain, "0x5300000000000000000000000000000000000004", 18, "WETH").Currency()
	usdc := mustToken(t, testChain, "0xf56dc6695cF1f5c364eDEbC7Dc7077ac9B586068", 6, "USDC").Currency()

	base, err := ParseAmount(weth, "100")
	require.NoError(t, err)
	quote, err := ParseAmount(usdc, "190000")
	require.NoError(t, err)

	p, err := PriceFromAmounts(base, quote)
	require.NoError(t, err)
	require.Equal(t, "1900", p.ToSignificant(6))
	require.Equal(t, "1900.00", p.ToFixed(2))
	require.True(t, p.Base().Equal(weth))
	require.True(t, p.QuoteCurrency().Equal(usdc))

	inv, err := p.Invert()
	require.NoError(t, err)
	require.Equal(t, "0.000526316", inv.ToSignificant(6))
	require.True(t, inv.Base().Equal(usdc))

	parsed, err := ParsePrice(weth, usdc, "1900")
	require.NoError(t, err)
	require.Zero(t, parsed.Cmp(p))

	one, err := ParseAmount(weth, "1")
	require.NoError(t, err)
	out, err := p.Quote(one)
	require.NoError(t, err)
	require.True(t, out.Currency().Equal(usdc))
	require.Equal(t, "1900000000", out.Quotient().String())

	_, err = p.Quote(quote)
	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestPriceMul(t *testing.T) {
	weth := mustToken(t, testChain, "0x5300000000000000000000000000000000000004", 18, "WETH").Currency()
	usdc := mustToken(t, testChain, "0xf56dc6695cF1f5c364eDEbC7Dc7077ac9B586068", 6, "USDC").Currency()
	dai := mustToken(t, testChain, "0xcA77eB3fEFe3725Dc33bccB54eDEFc3D9f764f97", 18, "DAI").Currency()

	wethUSDC, err := ParsePrice(weth, usdc, "1900")
	require.NoError(t, err)
	usdcDAI, err := NewPrice(usdc, dai, big.NewInt(1_000_000), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
	require.NoError(t, err)
	require.Equal(t, "1", usdcDAI.ToSignificant(4))

	wethDAI, err := wethUSDC.Mul(usdcDAI)
	require.NoError(t, err)
	require.True(t, wethDAI.Base().Equal(weth))
	require.True(t, wethDAI.QuoteCurrency().Equal(dai))
	require.Equal(t, "1900", wethDAI.ToSignificant(6))

	_, err = wethUSDC.Mul(wethUSDC)
	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestParsePriceRejects(t *testing.T) {
	weth := mustToken(t, testChain, "0x5300000000000000000000000000000000000004", 18, "WETH").Currency()
	usdc := mustToken(t, testChain, "0xf56dc6695cF1f5c364eDEbC7Dc7077ac9B586068", 6, "USDC").Currency()

	_, err := ParsePrice(weth, usdc, "0")
	require.ErrorIs(t, err, ErrInvalidAmount)
	_, err = ParsePrice(weth, usdc, "abc")
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewPrice(weth, usdc, big.NewInt(0), big.NewInt(1))
	require.ErrorIs(t, err, ErrDivisionByZero)
}
