package amm

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
	"github.com/devxmone/brownfi-hackathon/pkg/uniswapv2"
)

// Pair is a snapshot of a pool's reserves. token0 sorts before token1.
type Pair struct {
	cfg            ChainConfig
	address        common.Address
	liquidityToken sdkcore.Token
	reserve0       sdkcore.CurrencyAmount
	reserve1       sdkcore.CurrencyAmount
}

// NewPair sorts the two reserves and derives the pair address and its
// liquidity token. Both amounts must be tokens on the config's chain.
func NewPair(cfg ChainConfig, amountA, amountB sdkcore.CurrencyAmount) (Pair, error) {
	tokenA, ok := amountA.Currency().Token()
	if !ok {
		return Pair{}, fmt.Errorf("%w: %s", ErrNotToken, amountA.Currency())
	}
	tokenB, ok := amountB.Currency().Token()
	if !ok {
		return Pair{}, fmt.Errorf("%w: %s", ErrNotToken, amountB.Currency())
	}
	if tokenA.ChainID() != cfg.ChainID() {
		return Pair{}, fmt.Errorf("pair on chain %d, config chain %d: %w", tokenA.ChainID(), cfg.ChainID(), sdkcore.ErrChainMismatch)
	}
	before, err := tokenA.SortsBefore(tokenB)
	if err != nil {
		return Pair{}, err
	}
	if !before {
		amountA, amountB = amountB, amountA
		tokenA, tokenB = tokenB, tokenA
	}
	addr, err := PairAddress(cfg, tokenA, tokenB)
	if err != nil {
		return Pair{}, err
	}
	return Pair{
		cfg:            cfg,
		address:        addr,
		liquidityToken: sdkcore.NewTokenFromAddress(cfg.ChainID(), addr, liquidityDecimals, cfg.LiquiditySymbol, cfg.LiquidityName),
		reserve0:       amountA,
		reserve1:       amountB,
	}, nil
}

// NewPairFromReserves is NewPair for raw reserves already read from chain.
func NewPairFromReserves(cfg ChainConfig, tokenA, tokenB sdkcore.Token, reserveA, reserveB *big.Int) (Pair, error) {
	a, err := sdkcore.FromRawAmount(tokenA.Currency(), reserveA)
	if err != nil {
		return Pair{}, err
	}
	b, err := sdkcore.FromRawAmount(tokenB.Currency(), reserveB)
	if err != nil {
		return Pair{}, err
	}
	return NewPair(cfg, a, b)
}

func (p Pair) Config() ChainConfig              { return p.cfg }
func (p Pair) Address() common.Address          { return p.address }
func (p Pair) LiquidityToken() sdkcore.Token    { return p.liquidityToken }
func (p Pair) ChainID() uint64                  { return p.cfg.ChainID() }
func (p Pair) Reserve0() sdkcore.CurrencyAmount { return p.reserve0 }
func (p Pair) Reserve1() sdkcore.CurrencyAmount { return p.reserve1 }

func (p Pair) Token0() sdkcore.Token {
	t, _ := p.reserve0.Currency().Token()
	return t
}

func (p Pair) Token1() sdkcore.Token {
	t, _ := p.reserve1.Currency().Token()
	return t
}

// InvolvesToken reports whether t is token0 or token1.
func (p Pair) InvolvesToken(t sdkcore.Token) bool {
	return t.Equal(p.Token0()) || t.Equal(p.Token1())
}

func (p Pair) String() string { return p.Token0().String() + "/" + p.Token1().String() }

// Other returns the token of the pair that is not t.
func (p Pair) Other(t sdkcore.Token) (sdkcore.Token, error) {
	switch {
	case t.Equal(p.Token0()):
		return p.Token1(), nil
	case t.Equal(p.Token1()):
		return p.Token0(), nil
	default:
		return sdkcore.Token{}, fmt.Errorf("%w: %s in %s", ErrTokenNotInPair, t, p)
	}
}

// ReserveOf returns the reserve held in token t.
func (p Pair) ReserveOf(t sdkcore.Token) (sdkcore.CurrencyAmount, error) {
	switch {
	case t.Equal(p.Token0()):
		return p.reserve0, nil
	case t.Equal(p.Token1()):
		return p.reserve1, nil
	default:
		return sdkcore.CurrencyAmount{}, fmt.Errorf("%w: %s in %s", ErrTokenNotInPair, t, p)
	}
}

// Token0Price is the spot price of token0 in token1.
func (p Pair) Token0Price() (sdkcore.Price, error) {
	return sdkcore.NewPrice(p.reserve0.Currency(), p.reserve1.Currency(), p.reserve0.Quotient(), p.reserve1.Quotient())
}

// Token1Price is the spot price of token1 in token0.
func (p Pair) Token1Price() (sdkcore.Price, error) {
	return sdkcore.NewPrice(p.reserve1.Currency(), p.reserve0.Currency(), p.reserve1.Quotient(), p.reserve0.Quotient())
}

// PriceOf is the spot price of t denominated in the other token.
func (p Pair) PriceOf(t sdkcore.Token) (sdkcore.Price, error) {
	switch {
	case t.Equal(p.Token0()):
		return p.Token0Price()
	case t.Equal(p.Token1()):
		return p.Token1Price()
	default:
		return sdkcore.Price{}, fmt.Errorf("%w: %s in %s", ErrTokenNotInPair, t, p)
	}
}

// reserves returns the raw (in, out) reserves for a swap starting at t.
func (p Pair) reserves(t sdkcore.Token) (in, out *big.Int, outToken sdkcore.Token, err error) {
	rIn, err := p.ReserveOf(t)
	if err != nil {
		return nil, nil, sdkcore.Token{}, err
	}
	outToken, _ = p.Other(t)
	rOut, _ := p.ReserveOf(outToken)
	return rIn.Quotient(), rOut.Quotient(), outToken, nil
}

func (p Pair) withReserves(t sdkcore.Token, reserveT, reserveOther *big.Int) (Pair, error) {
	other, _ := p.Other(t)
	return NewPairFromReserves(p.cfg, t, other, reserveT, reserveOther)
}

func amountToken(a sdkcore.CurrencyAmount) (sdkcore.Token, error) {
	t, ok := a.Currency().Token()
	if !ok {
		return sdkcore.Token{}, fmt.Errorf("%w: %s", ErrNotToken, a.Currency())
	}
	return t, nil
}

// GetOutputAmount swaps an exact input through the pair. The output is
// floored so the pool never pays more than the invariant allows. The returned
// pair holds the post-swap reserves.
func (p Pair) GetOutputAmount(input sdkcore.CurrencyAmount) (sdkcore.CurrencyAmount, Pair, error) {
	inToken, err := amountToken(input)
	if err != nil {
		return sdkcore.CurrencyAmount{}, Pair{}, err
	}
	rIn, rOut, outToken, err := p.reserves(inToken)
	if err != nil {
		return sdkcore.CurrencyAmount{}, Pair{}, err
	}
	if rIn.Sign() == 0 || rOut.Sign() == 0 {
		return sdkcore.CurrencyAmount{}, Pair{}, fmt.Errorf("%w: %s", ErrInsufficientReserves, p)
	}
	amountIn := input.Quotient()
	if amountIn.Sign() <= 0 {
		return sdkcore.CurrencyAmount{}, Pair{}, ErrInsufficientInputAmount
	}

	out := uniswapv2.GetAmountOut(new(big.Int), new(big.Int), new(big.Int), amountIn, rIn, rOut, p.cfg.Fee)
	if out.Sign() == 0 {
		return sdkcore.CurrencyAmount{}, Pair{}, fmt.Errorf("%w: %s %s yields nothing", ErrInsufficientInputAmount, amountIn, inToken)
	}
	output, err := sdkcore.FromRawAmount(outToken.Currency(), out)
	if err != nil {
		return sdkcore.CurrencyAmount{}, Pair{}, err
	}
	next, err := p.withReserves(inToken, new(big.Int).Add(rIn, amountIn), new(big.Int).Sub(rOut, out))
	if err != nil {
		return sdkcore.CurrencyAmount{}, Pair{}, err
	}
	return output, next, nil
}

// GetInputAmount is the smallest input that buys exactly output. The returned
// pair holds the post-swap reserves.
func (p Pair) GetInputAmount(output sdkcore.CurrencyAmount) (sdkcore.CurrencyAmount, Pair, error) {
	outToken, err := amountToken(output)
	if err != nil {
		return sdkcore.CurrencyAmount{}, Pair{}, err
	}
	rOut, rIn, inToken, err := p.reserves(outToken)
	if err != nil {
		return sdkcore.CurrencyAmount{}, Pair{}, err
	}
	amountOut := output.Quotient()
	if amountOut.Sign() <= 0 {
		return sdkcore.CurrencyAmount{}, Pair{}, ErrInsufficientOutputAmount
	}
	if rIn.Sign() == 0 || rOut.Sign() == 0 {
		return sdkcore.CurrencyAmount{}, Pair{}, fmt.Errorf("%w: %s", ErrInsufficientReserves, p)
	}
	if amountOut.Cmp(rOut) >= 0 {
		return sdkcore.CurrencyAmount{}, Pair{}, fmt.Errorf("%w: want %s %s, reserve %s", ErrInsufficientLiquidity, amountOut, outToken, rOut)
	}

	in := uniswapv2.GetAmountIn(new(big.Int), new(big.Int), new(big.Int), amountOut, rIn, rOut, p.cfg.Fee)
	input, err := sdkcore.FromRawAmount(inToken.Currency(), in)
	if err != nil {
		return sdkcore.CurrencyAmount{}, Pair{}, err
	}
	next, err := p.withReserves(inToken, new(big.Int).Add(rIn, in), new(big.Int).Sub(rOut, amountOut))
	if err != nil {
		return sdkcore.CurrencyAmount{}, Pair{}, err
	}
	return input, next, nil
}

// sorted maps two amounts onto (token0, token1) order.
func (p Pair) sorted(a, b sdkcore.CurrencyAmount) (sdkcore.CurrencyAmount, sdkcore.CurrencyAmount, error) {
	ta, err := amountToken(a)
	if err != nil {
		return a, b, err
	}
	tb, err := amountToken(b)
	if err != nil {
		return a, b, err
	}
	switch {
	case ta.Equal(p.Token0()) && tb.Equal(p.Token1()):
		return a, b, nil
	case ta.Equal(p.Token1()) && tb.Equal(p.Token0()):
		return b, a, nil
	default:
		return a, b, fmt.Errorf("%w: %s/%s in %s", ErrTokenNotInPair, ta, tb, p)
	}
}

func (p Pair) checkLiquidityToken(a sdkcore.CurrencyAmount) error {
	if !a.Currency().Equal(p.liquidityToken.Currency()) {
		return fmt.Errorf("%w: %s is not the liquidity token of %s", ErrInvalidLiquidity, a.Currency(), p)
	}
	return nil
}

// GetLiquidityMinted is the amount of liquidity tokens a deposit of amountA
// and amountB mints. The first deposit mints sqrt(a*b) less the locked
// minimum; later deposits mint in proportion to the smaller side.
func (p Pair) GetLiquidityMinted(totalSupply, amountA, amountB sdkcore.CurrencyAmount) (sdkcore.CurrencyAmount, error) {
	if err := p.checkLiquidityToken(totalSupply); err != nil {
		return sdkcore.CurrencyAmount{}, err
	}
	amount0, amount1, err := p.sorted(amountA, amountB)
	if err != nil {
		return sdkcore.CurrencyAmount{}, err
	}
	a0, a1 := amount0.Quotient(), amount1.Quotient()
	ts := totalSupply.Quotient()

	var liquidity *big.Int
	if ts.Sign() == 0 {
		liquidity = uniswapv2.Sqrt(new(big.Int).Mul(a0, a1))
		liquidity.Sub(liquidity, p.cfg.MinimumLiquidity)
	} else {
		r0, r1 := p.reserve0.Quotient(), p.reserve1.Quotient()
		if r0.Sign() == 0 || r1.Sign() == 0 {
			return sdkcore.CurrencyAmount{}, fmt.Errorf("%w: supply %s over empty reserves", ErrInsufficientReserves, ts)
		}
		l0 := new(big.Int).Mul(a0, ts)
		l0.Quo(l0, r0)
		l1 := new(big.Int).Mul(a1, ts)
		l1.Quo(l1, r1)
		liquidity = uniswapv2.Min(l0, l1)
	}
	if liquidity.Sign() <= 0 {
		return sdkcore.CurrencyAmount{}, ErrInsufficientLiquidityMinted
	}
	return sdkcore.FromRawAmount(p.liquidityToken.Currency(), liquidity)
}

// GetLiquidityValue is the amount of token that liquidity redeems for.
//
// With feeOn the supply is first grown by the liquidity the protocol would
// mint on the next mint or burn:
//
//	rootK = sqrt(r0*r1), rootKLast = sqrt(kLast)
//	ts' = ts + ts*(rootK-rootKLast) / (rootK*divisor + rootKLast)   if rootK > rootKLast
//
// and the value is then floor(liquidity*reserve/ts').
func (p Pair) GetLiquidityValue(t sdkcore.Token, totalSupply, liquidity sdkcore.CurrencyAmount, feeOn bool, kLast *big.Int) (sdkcore.CurrencyAmount, error) {
	reserve, err := p.ReserveOf(t)
	if err != nil {
		return sdkcore.CurrencyAmount{}, err
	}
	if err := p.checkLiquidityToken(totalSupply); err != nil {
		return sdkcore.CurrencyAmount{}, err
	}
	if err := p.checkLiquidityToken(liquidity); err != nil {
		return sdkcore.CurrencyAmount{}, err
	}
	ts, liq := totalSupply.Quotient(), liquidity.Quotient()
	if ts.Sign() <= 0 {
		return sdkcore.CurrencyAmount{}, fmt.Errorf("%w: zero total supply", ErrInvalidLiquidity)
	}
	if liq.Sign() < 0 || liq.Cmp(ts) > 0 {
		return sdkcore.CurrencyAmount{}, fmt.Errorf("%w: %s of %s", ErrInvalidLiquidity, liq, ts)
	}

	adjusted := ts
	if feeOn {
		if kLast == nil {
			return sdkcore.CurrencyAmount{}, ErrMissingKLast
		}
		adjusted = p.adjustedSupply(ts, kLast)
	}
	value := new(big.Int).Mul(liq, reserve.Quotient())
	value.Quo(value, adjusted)
	return sdkcore.FromRawAmount(t.Currency(), value)
}

func (p Pair) adjustedSupply(ts, kLast *big.Int) *big.Int {
	if kLast.Sign() == 0 {
		return ts
	}
	rootK := uniswapv2.Sqrt(new(big.Int).Mul(p.reserve0.Quotient(), p.reserve1.Quotient()))
	rootKLast := uniswapv2.Sqrt(kLast)
	if rootK.Cmp(rootKLast) <= 0 {
		return ts
	}
	num := new(big.Int).Sub(rootK, rootKLast)
	num.Mul(num, ts)
	den := new(big.Int).Mul(rootK, p.cfg.ProtocolFeeDivisor)
	den.Add(den, rootKLast)
	fee := num.Quo(num, den)
	return fee.Add(fee, ts)
}

// PoolShare is the fraction of the pool that minted liquidity will own once
// added to totalSupply.
func (p Pair) PoolShare(totalSupply, minted sdkcore.CurrencyAmount) (sdkcore.Percent, error) {
	if err := p.checkLiquidityToken(totalSupply); err != nil {
		return sdkcore.Percent{}, err
	}
	if err := p.checkLiquidityToken(minted); err != nil {
		return sdkcore.Percent{}, err
	}
	after, _ := totalSupply.Add(minted)
	return sdkcore.NewPercent(minted.Quotient(), after.Quotient())
}
