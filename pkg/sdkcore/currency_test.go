package sdkcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testChain = 534352

func mustToken(t *testing.T, chainID uint64, addr string, decimals uint8, symbol string) Token {
	t.Helper()
	tok, err := NewToken(chainID, addr, decimals, symbol, symbol)
	require.NoError(t, err)
	return tok
}

func TestNewTokenValidatesAddress(t *testing.T) {
	_, err := NewToken(testChain, "0x1234", 18, "BAD", "bad")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestTokenEqual(t *testing.T) {
	lower := mustToken(t, testChain, "0x5300000000000000000000000000000000000004", 18, "WETH")
	upper := mustToken(t, testChain, "0x5300000000000000000000000000000000000004", 18, "weth")
	other := mustToken(t, 534351, "0x5300000000000000000000000000000000000004", 18, "WETH")

	require.True(t, lower.Equal(upper))
	require.True(t, lower.Currency().Equal(upper.Currency()))
	require.False(t, lower.Equal(other))

	usdc := mustToken(t, testChain, "0xf56dc6695cF1f5c364eDEbC7Dc7077ac9B586068", 6, "USDC")
	require.Equal(t, usdc, mustToken(t, testChain, "0xF56DC6695CF1F5C364EDEBC7DC7077AC9B586068", 6, "USDC"))
}

func TestTokenSortsBefore(t *testing.T) {
	a := mustToken(t, testChain, "0x0000000000000000000000000000000000000001", 18, "A")
	b := mustToken(t, testChain, "0x00000000000000000000000000000000000000Ff", 18, "B")

	before, err := a.SortsBefore(b)
	require.NoError(t, err)
	require.True(t, before)

	before, err = b.SortsBefore(a)
	require.NoError(t, err)
	require.False(t, before)

	_, err = a.SortsBefore(a)
	require.ErrorIs(t, err, ErrIdenticalAddresses)

	_, err = a.SortsBefore(mustToken(t, 1, "0x0000000000000000000000000000000000000002", 18, "C"))
	require.ErrorIs(t, err, ErrChainMismatch)
}

func TestCurrencyUnion(t *testing.T) {
	eth := NewNative(testChain, 18, "ETH", "Ether").Currency()
	weth := mustToken(t, testChain, "0x5300000000000000000000000000000000000004", 18, "WETH").Currency()

	require.True(t, eth.IsNative())
	require.True(t, weth.IsToken())
	require.False(t, eth.Equal(weth))
	require.False(t, weth.Equal(eth))
	require.True(t, eth.Equal(NewNative(testChain, 18, "ETH", "Ether").Currency()))
	require.False(t, eth.Equal(NewNative(1, 18, "ETH", "Ether").Currency()))

	_, ok := eth.Token()
	require.False(t, ok)
	require.Equal(t, uint64(testChain), eth.ChainID())
	require.Equal(t, "WETH", weth.Symbol())
}

func TestRegistry(t *testing.T) {
	native := NewNative(testChain, 18, "ETH", "Ether")
	weth := mustToken(t, testChain, "0x5300000000000000000000000000000000000004", 18, "WETH")
	usdc := mustToken(t, testChain, "0xf56dc6695cF1f5c364eDEbC7Dc7077ac9B586068", 6, "USDC")

	reg, err := NewRegistry(ChainCurrencies{Native: native, Wrapped: weth})
	require.NoError(t, err)

	wrapped, err := reg.Wrap(native.Currency())
	require.NoError(t, err)
	require.True(t, wrapped.Equal(weth))

	wrapped, err = reg.Wrap(usdc.Currency())
	require.NoError(t, err)
	require.True(t, wrapped.Equal(usdc))

	_, err = reg.Wrap(NewNative(1, 18, "ETH", "Ether").Currency())
	require.ErrorIs(t, err, ErrNoWrappedToken)

	require.True(t, reg.Unwrap(weth).IsNative())
	require.True(t, reg.Unwrap(usdc).IsToken())

	eth, err := reg.Native(testChain)
	require.NoError(t, err)
	require.Equal(t, "ETH", eth.Symbol())

	amt, err := ParseAmount(native.Currency(), "1.5")
	require.NoError(t, err)
	wAmt, err := reg.WrapAmount(amt)
	require.NoError(t, err)
	require.True(t, wAmt.Currency().Equal(weth.Currency()))
	require.Equal(t, "1500000000000000000", wAmt.Quotient().String())

	_, err = NewRegistry(ChainCurrencies{Native: NewNative(1, 18, "ETH", "Ether"), Wrapped: weth})
	require.ErrorIs(t, err, ErrChainMismatch)
}
