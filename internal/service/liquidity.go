package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/devxmone/brownfi-hackathon/internal/eth"
	"github.com/devxmone/brownfi-hackathon/internal/tokenlist"
	"github.com/devxmone/brownfi-hackathon/pkg/amm"
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

// LiquidityService prices deposits into and withdrawals from a single pair.
type LiquidityService struct {
	market
	feeOn bool
}

// NewLiquidityService builds the service. feeOn reports whether the factory
// mints the protocol's share of fees, which dilutes withdrawals.
func NewLiquidityService(logger *slog.Logger, reader *eth.PairReader, chain amm.ChainConfig, tokens *tokenlist.List, feeOn bool) *LiquidityService {
	return &LiquidityService{
		market: market{BaseService: newBaseService(logger, reader, chain), tokens: tokens},
		feeOn:  feeOn,
	}
}

// MintRequest deposits AmountA of TokenA against TokenB. AmountB may be left
// empty for an existing pair, in which case it is quoted at the pool price.
type MintRequest struct {
	TokenA  string
	TokenB  string
	AmountA string
	AmountB string
}

type MintQuote struct {
	Block     uint64     `json:"block"`
	Pair      string     `json:"pair"`
	NewPool   bool       `json:"new_pool"`
	AmountA   AmountView `json:"amount_a"`
	AmountB   AmountView `json:"amount_b"`
	Liquidity AmountView `json:"liquidity"`
	PoolShare string     `json:"pool_share"`
	PriceAB   string     `json:"price_a_b"`
	PriceBA   string     `json:"price_b_a"`
}

func (s *LiquidityService) Mint(ctx context.Context, req MintRequest) (*MintQuote, error) {
	s.logger.Debug("pricing mint", "a", req.TokenA, "b", req.TokenB, "amount_a", req.AmountA, "amount_b", req.AmountB)

	_, _, tokenA, tokenB, err := s.resolvePair(req.TokenA, req.TokenB)
	if err != nil {
		return nil, err
	}
	amountA, err := sdkcore.ParseAmount(tokenA.Currency(), req.AmountA)
	if err != nil {
		return nil, err
	}

	block, err := s.reader.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}
	pair, deployed, err := s.loadPair(ctx, tokenA, tokenB, block)
	if err != nil {
		return nil, err
	}

	totalSupply := big.NewInt(0)
	if deployed {
		st, err := s.reader.ReadLiquidity(ctx, pair.Address(), block)
		if err != nil {
			return nil, err
		}
		totalSupply = st.TotalSupply
	}
	supply, err := sdkcore.FromRawAmount(pair.LiquidityToken().Currency(), totalSupply)
	if err != nil {
		return nil, err
	}

	var amountB sdkcore.CurrencyAmount
	switch {
	case req.AmountB != "":
		if amountB, err = sdkcore.ParseAmount(tokenB.Currency(), req.AmountB); err != nil {
			return nil, err
		}
	case totalSupply.Sign() == 0:
		return nil, fmt.Errorf("%w: amount_b is required for a new pool", sdkcore.ErrInvalidAmount)
	default:
		price, err := pair.PriceOf(tokenA)
		if err != nil {
			return nil, err
		}
		if amountB, err = price.Quote(amountA); err != nil {
			return nil, err
		}
	}

	minted, err := pair.GetLiquidityMinted(supply, amountA, amountB)
	if err != nil {
		return nil, err
	}
	share, err := pair.PoolShare(supply, minted)
	if err != nil {
		return nil, err
	}

	var priceAB sdkcore.Price
	if totalSupply.Sign() == 0 {
		priceAB, err = sdkcore.PriceFromAmounts(amountA, amountB)
	} else {
		priceAB, err = pair.PriceOf(tokenA)
	}
	if err != nil {
		return nil, err
	}
	priceBA, err := priceAB.Invert()
	if err != nil {
		return nil, err
	}

	return &MintQuote{
		Block:     block.Uint64(),
		Pair:      pair.Address().Hex(),
		NewPool:   totalSupply.Sign() == 0,
		AmountA:   viewOf(amountA),
		AmountB:   viewOf(amountB),
		Liquidity: viewOf(minted),
		PoolShare: share.String(),
		PriceAB:   priceAB.ToSignificant(6),
		PriceBA:   priceBA.ToSignificant(6),
	}, nil
}

// LiquidityValue is what an LP balance redeems for.
type LiquidityValue struct {
	Block       uint64     `json:"block"`
	Pair        string     `json:"pair"`
	Liquidity   AmountView `json:"liquidity"`
	TotalSupply AmountView `json:"total_supply"`
	Share       string     `json:"share"`
	AmountA     AmountView `json:"amount_a"`
	AmountB     AmountView `json:"amount_b"`
}

// Value prices liquidity, given in human LP token units, against the pair's
// reserves at the latest block.
func (s *LiquidityService) Value(ctx context.Context, tokenA, tokenB, liquidity string) (*LiquidityValue, error) {
	s.logger.Debug("pricing liquidity", "a", tokenA, "b", tokenB, "liquidity", liquidity)

	_, _, ta, tb, err := s.resolvePair(tokenA, tokenB)
	if err != nil {
		return nil, err
	}
	block, err := s.reader.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}
	pair, deployed, err := s.loadPair(ctx, ta, tb, block)
	if err != nil {
		return nil, err
	}
	if !deployed {
		return nil, fmt.Errorf("%w: %s", ErrPairNotFound, pair.Address().Hex())
	}
	st, err := s.reader.ReadLiquidity(ctx, pair.Address(), block)
	if err != nil {
		return nil, err
	}

	lp := pair.LiquidityToken().Currency()
	supply, err := sdkcore.FromRawAmount(lp, st.TotalSupply)
	if err != nil {
		return nil, err
	}
	liq, err := sdkcore.ParseAmount(lp, liquidity)
	if err != nil {
		return nil, err
	}

	amountA, err := pair.GetLiquidityValue(ta, supply, liq, s.feeOn, st.KLast)
	if err != nil {
		return nil, err
	}
	amountB, err := pair.GetLiquidityValue(tb, supply, liq, s.feeOn, st.KLast)
	if err != nil {
		return nil, err
	}
	share, err := sdkcore.NewPercent(liq.Quotient(), supply.Quotient())
	if err != nil {
		return nil, err
	}

	return &LiquidityValue{
		Block:       block.Uint64(),
		Pair:        pair.Address().Hex(),
		Liquidity:   viewOf(liq),
		TotalSupply: viewOf(supply),
		Share:       share.String(),
		AmountA:     viewOf(amountA),
		AmountB:     viewOf(amountB),
	}, nil
}
