package amm

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
	"github.com/devxmone/brownfi-hackathon/pkg/uniswapv2"
)

func TestChainConfigValidate(t *testing.T) {
	require.NoError(t, testConfig().Validate())

	cfg := testConfig()
	cfg.Factory = common.Address{}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = testConfig()
	cfg.Fee = uniswapv2.Fee{Numerator: big.NewInt(1001), Denominator: big.NewInt(1000)}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, uniswapv2.ErrInvalidFee)

	cfg = testConfig()
	cfg.Native = sdkcore.NewNative(1, 18, "ETH", "Ether")
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestPairAddress(t *testing.T) {
	mainnetWETH := sdkcore.NewTokenFromAddress(1, common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), 18, "WETH", "Wrapped Ether")
	cfg := NewChainConfig(
		sdkcore.ChainCurrencies{Native: sdkcore.NewNative(1, 18, "ETH", "Ether"), Wrapped: mainnetWETH},
		common.HexToAddress("0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f"),
		common.HexToHash("0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f"),
	)
	usdc := sdkcore.NewTokenFromAddress(1, common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), 6, "USDC", "USD Coin")
	dai := sdkcore.NewTokenFromAddress(1, common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), 18, "DAI", "Dai")

	want := common.HexToAddress("0xAE461cA67B15dc8dc81CE7615e0320dA1A9aB8D5")

	got, err := PairAddress(cfg, usdc, dai)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = PairAddress(cfg, dai, usdc)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = PairAddress(cfg, dai, dai)
	require.ErrorIs(t, err, sdkcore.ErrIdenticalAddresses)
}

func TestNewPair(t *testing.T) {
	t0, t1 := testToken(0), testToken(1)

	p := newPair(t, raw(t, t1, 200), raw(t, t0, 100))
	require.True(t, p.Token0().Equal(t0))
	require.True(t, p.Token1().Equal(t1))
	require.Equal(t, "100", p.Reserve0().Quotient().String())
	require.Equal(t, "200", p.Reserve1().Quotient().String())

	addr, err := PairAddress(testConfig(), t0, t1)
	require.NoError(t, err)
	require.Equal(t, addr, p.Address())
	require.Equal(t, addr, p.LiquidityToken().Address())
	require.Equal(t, DefaultLiquiditySymbol, p.LiquidityToken().Symbol())

	_, err = NewPair(testConfig(), raw(t, t0, 1), raw(t, t0, 1))
	require.ErrorIs(t, err, sdkcore.ErrIdenticalAddresses)

	eth, err := sdkcore.FromRawAmount(ether.Currency(), big.NewInt(1))
	require.NoError(t, err)
	_, err = NewPair(testConfig(), eth, raw(t, t0, 1))
	require.ErrorIs(t, err, ErrNotToken)

	foreign := sdkcore.NewTokenFromAddress(1, common.BigToAddress(big.NewInt(9)), 18, "F", "F")
	_, err = NewPair(testConfig(), raw(t, foreign, 1), raw(t, t0, 1))
	require.ErrorIs(t, err, sdkcore.ErrChainMismatch)
}

func TestPairReservesAndPrices(t *testing.T) {
	t0, t2, t3 := testToken(0), testToken(2), testToken(3)
	p := newPair(t, raw(t, t0, 1000), raw(t, t2, 1100))

	r, err := p.ReserveOf(t2)
	require.NoError(t, err)
	require.Equal(t, "1100", r.Quotient().String())

	_, err = p.ReserveOf(t3)
	require.ErrorIs(t, err, ErrTokenNotInPair)
	require.False(t, p.InvolvesToken(t3))

	price, err := p.PriceOf(t0)
	require.NoError(t, err)
	require.Equal(t, "1.1", price.ToSignificant(6))

	price, err = p.PriceOf(t2)
	require.NoError(t, err)
	require.Equal(t, "0.909091", price.ToSignificant(6))

	_, err = p.PriceOf(t3)
	require.ErrorIs(t, err, ErrTokenNotInPair)
}

func TestPairPriceAdjustsDecimals(t *testing.T) {
	usdc := sdkcore.NewTokenFromAddress(testChain, common.HexToAddress("0xf56dc6695cF1f5c364eDEbC7Dc7077ac9B586068"), 6, "USDC", "USD Coin")
	p := newPair(t, human(t, weth, "100"), human(t, usdc, "190000"))

	price, err := p.PriceOf(weth)
	require.NoError(t, err)
	require.Equal(t, "1900", price.ToSignificant(6))

	// one WETH quotes to 1900 USDC in raw units
	quoted, err := price.Quote(human(t, weth, "1"))
	require.NoError(t, err)
	require.Equal(t, "1900000000", quoted.Quotient().String())
	require.Equal(t, "1900", quoted.ToExact())
}

func TestGetOutputAmount(t *testing.T) {
	a, b := testToken(0), testToken(1)
	p := newPair(t, human(t, a, "1000000"), human(t, b, "2000000"))

	in := human(t, a, "1000")
	out, next, err := p.GetOutputAmount(in)
	require.NoError(t, err)
	require.True(t, out.Currency().Equal(b.Currency()))
	require.Equal(t, "1992013962079806432986", out.Quotient().String())
	// fee and slippage keep the output below the naive 2000 B
	require.True(t, out.LessThan(human(t, b, "2000")))

	r0, _ := next.ReserveOf(a)
	r1, _ := next.ReserveOf(b)
	require.Equal(t, "1001000000000000000000000", r0.Quotient().String())
	require.Equal(t, new(big.Int).Sub(human(t, b, "2000000").Quotient(), out.Quotient()).String(), r1.Quotient().String())

	// the original snapshot is untouched
	r0, _ = p.ReserveOf(a)
	require.Equal(t, "1000000000000000000000000", r0.Quotient().String())

	back, _, err := p.GetInputAmount(out)
	require.NoError(t, err)
	require.False(t, back.LessThan(in))
}

func TestGetOutputAmountErrors(t *testing.T) {
	a, b, c := testToken(0), testToken(1), testToken(2)
	p := newPair(t, raw(t, a, 1000), raw(t, b, 1000))

	_, _, err := p.GetOutputAmount(raw(t, a, 0))
	require.ErrorIs(t, err, ErrInsufficientInputAmount)

	// 1 wei rounds down to nothing
	_, _, err = p.GetOutputAmount(raw(t, a, 1))
	require.ErrorIs(t, err, ErrInsufficientInputAmount)

	_, _, err = p.GetOutputAmount(raw(t, c, 10))
	require.ErrorIs(t, err, ErrTokenNotInPair)

	empty := newPair(t, raw(t, a, 0), raw(t, b, 1000))
	_, _, err = empty.GetOutputAmount(raw(t, a, 10))
	require.ErrorIs(t, err, ErrInsufficientReserves)
	_, _, err = empty.GetInputAmount(raw(t, b, 10))
	require.ErrorIs(t, err, ErrInsufficientReserves)
}

func TestGetInputAmount(t *testing.T) {
	t0, t2 := testToken(0), testToken(2)
	p := newPair(t, raw(t, t0, 1000), raw(t, t2, 1100))

	in, next, err := p.GetInputAmount(raw(t, t2, 100))
	require.NoError(t, err)
	require.True(t, in.Currency().Equal(t0.Currency()))
	require.Equal(t, "101", in.Quotient().String())

	r, _ := next.ReserveOf(t2)
	require.Equal(t, "1000", r.Quotient().String())

	_, _, err = p.GetInputAmount(raw(t, t2, 1100))
	require.ErrorIs(t, err, ErrInsufficientLiquidity)

	_, _, err = p.GetInputAmount(raw(t, t2, 0))
	require.ErrorIs(t, err, ErrInsufficientOutputAmount)
}

func TestSwapConservation(t *testing.T) {
	a, b := testToken(0), testToken(1)
	r := rand.New(rand.NewSource(11))
	limit := new(big.Int).Lsh(big.NewInt(1), 100)

	for i := 0; i < 300; i++ {
		r0 := new(big.Int).Add(new(big.Int).Rand(r, limit), big.NewInt(1_000))
		r1 := new(big.Int).Add(new(big.Int).Rand(r, limit), big.NewInt(1_000))
		p, err := NewPairFromReserves(testConfig(), a, b, r0, r1)
		require.NoError(t, err)

		x := new(big.Int).Add(new(big.Int).Rand(r, r0), big.NewInt(1))
		in, err := sdkcore.FromRawAmount(a.Currency(), x)
		require.NoError(t, err)

		out, next, err := p.GetOutputAmount(in)
		if err != nil {
			require.ErrorIs(t, err, ErrInsufficientInputAmount)
			continue
		}
		k := new(big.Int).Mul(r0, r1)
		k2 := new(big.Int).Mul(next.Reserve0().Quotient(), next.Reserve1().Quotient())
		require.Equal(t, 1, k2.Cmp(k), "k must grow: in=%s r0=%s r1=%s", x, r0, r1)

		// the pool is never shorted: paying back the quoted input buys at
		// least the same output
		back, _, err := p.GetInputAmount(out)
		require.NoError(t, err)
		again, _, err := p.GetOutputAmount(back)
		require.NoError(t, err)
		require.False(t, again.LessThan(out))
	}
}

func TestGetLiquidityMinted(t *testing.T) {
	a, b := testToken(0), testToken(1)

	empty := newPair(t, raw(t, a, 0), raw(t, b, 0))
	lp := empty.LiquidityToken()

	_, err := empty.GetLiquidityMinted(raw(t, lp, 0), raw(t, a, 1000), raw(t, b, 1000))
	require.ErrorIs(t, err, ErrInsufficientLiquidityMinted)

	minted, err := empty.GetLiquidityMinted(raw(t, lp, 0), raw(t, a, 1001), raw(t, b, 1001))
	require.NoError(t, err)
	require.Equal(t, "1", minted.Quotient().String())

	// sqrt(1e6 * 4e6) less the locked minimum
	minted, err = empty.GetLiquidityMinted(raw(t, lp, 0), raw(t, a, 1_000_000), raw(t, b, 4_000_000))
	require.NoError(t, err)
	require.Equal(t, "1999000", minted.Quotient().String())
	require.True(t, minted.Currency().Equal(lp.Currency()))

	p := newPair(t, raw(t, a, 10_000), raw(t, b, 10_000))
	minted, err = p.GetLiquidityMinted(raw(t, lp, 10_000), raw(t, b, 2000), raw(t, a, 2000))
	require.NoError(t, err)
	require.Equal(t, "2000", minted.Quotient().String())

	// the smaller side wins
	minted, err = p.GetLiquidityMinted(raw(t, lp, 10_000), raw(t, a, 2000), raw(t, b, 1000))
	require.NoError(t, err)
	require.Equal(t, "1000", minted.Quotient().String())

	share, err := p.PoolShare(raw(t, lp, 10_000), raw(t, lp, 2000))
	require.NoError(t, err)
	require.Equal(t, "16.67%", share.String())

	_, err = p.GetLiquidityMinted(raw(t, a, 10_000), raw(t, a, 2000), raw(t, b, 2000))
	require.ErrorIs(t, err, ErrInvalidLiquidity)

	_, err = p.GetLiquidityMinted(raw(t, lp, 10_000), raw(t, a, 2000), raw(t, testToken(2), 2000))
	require.ErrorIs(t, err, ErrTokenNotInPair)
}

func TestGetLiquidityValue(t *testing.T) {
	a, b := testToken(0), testToken(1)
	p := newPair(t, raw(t, a, 1000), raw(t, b, 1000))
	lp := p.LiquidityToken()

	v, err := p.GetLiquidityValue(a, raw(t, lp, 1000), raw(t, lp, 1000), false, nil)
	require.NoError(t, err)
	require.Equal(t, "1000", v.Quotient().String())
	require.True(t, v.Currency().Equal(a.Currency()))

	v, err = p.GetLiquidityValue(b, raw(t, lp, 1000), raw(t, lp, 500), false, nil)
	require.NoError(t, err)
	require.Equal(t, "500", v.Quotient().String())

	// rootK 1000, rootKLast 500: supply grows by 500*500/5500 = 45
	v, err = p.GetLiquidityValue(a, raw(t, lp, 500), raw(t, lp, 500), true, big.NewInt(500*500))
	require.NoError(t, err)
	require.Equal(t, "917", v.Quotient().String())

	// kLast of zero means the fee was off until now
	v, err = p.GetLiquidityValue(a, raw(t, lp, 500), raw(t, lp, 500), true, big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, "1000", v.Quotient().String())

	_, err = p.GetLiquidityValue(a, raw(t, lp, 500), raw(t, lp, 500), true, nil)
	require.ErrorIs(t, err, ErrMissingKLast)

	_, err = p.GetLiquidityValue(a, raw(t, lp, 500), raw(t, lp, 501), false, nil)
	require.ErrorIs(t, err, ErrInvalidLiquidity)

	_, err = p.GetLiquidityValue(testToken(2), raw(t, lp, 500), raw(t, lp, 500), false, nil)
	require.ErrorIs(t, err, ErrTokenNotInPair)
}
