package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devxmone/brownfi-hackathon/internal/eth"
	"github.com/devxmone/brownfi-hackathon/internal/tokenlist"
	"github.com/devxmone/brownfi-hackathon/pkg/amm"
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

// QuoteService routes swaps across every pair between the two currencies and
// the configured bases.
type QuoteService struct {
	market
	bases   []sdkcore.Token
	maxHops int
}

func NewQuoteService(logger *slog.Logger, reader *eth.PairReader, chain amm.ChainConfig, tokens *tokenlist.List, bases []sdkcore.Token, maxHops int) *QuoteService {
	return &QuoteService{
		market:  market{BaseService: newBaseService(logger, reader, chain), tokens: tokens},
		bases:   bases,
		maxHops: maxHops,
	}
}

// QuoteRequest asks for a swap of Amount, given in human units of the input
// currency for ExactInput and of the output currency for ExactOutput.
type QuoteRequest struct {
	Src       string
	Dst       string
	Amount    string
	TradeType amm.TradeType
	Slippage  sdkcore.Percent
}

// Quote is the best trade and the figures a swap form shows for it.
type Quote struct {
	Block                 uint64      `json:"block"`
	TradeType             string      `json:"type"`
	Input                 AmountView  `json:"input"`
	Output                AmountView  `json:"output"`
	MinimumReceived       *AmountView `json:"minimum_received,omitempty"`
	MaximumSold           *AmountView `json:"maximum_sold,omitempty"`
	Slippage              string      `json:"slippage"`
	ExecutionPrice        string      `json:"execution_price"`
	MidPrice              string      `json:"mid_price"`
	PriceImpact           string      `json:"price_impact"`
	PriceImpactWithoutFee string      `json:"price_impact_without_fee"`
	LPFee                 AmountView  `json:"lp_fee"`
	LPFeePercent          string      `json:"lp_fee_percent"`
	Severity              string      `json:"severity"`
	Route                 []string    `json:"route"`
	Pairs                 []string    `json:"pairs"`
}

func (q *QuoteService) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	q.logger.Debug("quoting", "src", req.Src, "dst", req.Dst, "amount", req.Amount, "type", req.TradeType)

	in, out, tokenIn, tokenOut, err := q.resolvePair(req.Src, req.Dst)
	if err != nil {
		return nil, err
	}
	fixed := in
	if req.TradeType == amm.ExactOutput {
		fixed = out
	}
	amount, err := sdkcore.ParseAmount(fixed, req.Amount)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", sdkcore.ErrInvalidAmount)
	}

	block, err := q.reader.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}
	pairs, err := q.loadPairs(ctx, amm.AllCurrencyCombinations(tokenIn, tokenOut, q.bases), block)
	if err != nil {
		return nil, err
	}

	var trade amm.Trade
	if req.TradeType == amm.ExactOutput {
		trade, err = amm.PreferredTradeExactOut(pairs, in, amount, q.maxHops)
	} else {
		trade, err = amm.PreferredTradeExactIn(pairs, amount, out, q.maxHops)
	}
	if errors.Is(err, amm.ErrNoRouteFound) {
		return nil, ErrNoRoute
	}
	if err != nil {
		return nil, err
	}

	quote, err := q.describe(trade, req.Slippage)
	if err != nil {
		return nil, err
	}
	quote.Block = block.Uint64()
	q.logger.Debug("quote computed", "route", trade.Route().String(), "in", quote.Input.Raw, "out", quote.Output.Raw)
	return quote, nil
}

func (q *QuoteService) describe(trade amm.Trade, slippage sdkcore.Percent) (*Quote, error) {
	mid, err := trade.Route().MidPrice()
	if err != nil {
		return nil, err
	}
	feePct, feeAmount := amm.RealizedLPFee(trade)
	impact := amm.PriceImpactWithoutFee(trade)

	quote := &Quote{
		TradeType:             trade.TradeType().String(),
		Input:                 viewOf(trade.InputAmount()),
		Output:                viewOf(trade.OutputAmount()),
		Slippage:              slippage.String(),
		ExecutionPrice:        trade.ExecutionPrice().ToSignificant(6),
		MidPrice:              mid.ToSignificant(6),
		PriceImpact:           trade.PriceImpact().String(),
		PriceImpactWithoutFee: impact.String(),
		LPFee:                 viewOf(feeAmount),
		LPFeePercent:          feePct.String(),
		Severity:              amm.WarningSeverity(impact).String(),
	}
	if trade.TradeType() == amm.ExactOutput {
		maxIn, err := trade.MaximumAmountIn(slippage)
		if err != nil {
			return nil, err
		}
		v := viewOf(maxIn)
		quote.MaximumSold = &v
	} else {
		minOut, err := trade.MinimumAmountOut(slippage)
		if err != nil {
			return nil, err
		}
		v := viewOf(minOut)
		quote.MinimumReceived = &v
	}
	for _, t := range trade.Route().Path() {
		quote.Route = append(quote.Route, t.Symbol())
	}
	for _, p := range trade.Route().Pairs() {
		quote.Pairs = append(quote.Pairs, p.Address().Hex())
	}
	return quote, nil
}
