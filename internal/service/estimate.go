package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/devxmone/brownfi-hackathon/internal/eth"
	"github.com/devxmone/brownfi-hackathon/pkg/amm"
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

// EstimateService provides V2 output amount estimations for a single pool by
// reading its storage directly.
type EstimateService struct {
	BaseService
}

// NewEstimateService constructs an EstimateService using the provided logger,
// pair reader and chain settings.
func NewEstimateService(logger *slog.Logger, reader *eth.PairReader, chain amm.ChainConfig) *EstimateService {
	return &EstimateService{BaseService: newBaseService(logger, reader, chain)}
}

// Estimate computes the expected output amount for swapping amountIn of src to
// dst in the provided pool at the latest block. Amounts are raw integers; an
// input too small to move the pool yields zero.
func (e *EstimateService) Estimate(ctx context.Context, pool, src, dst common.Address, amountIn *big.Int) (*big.Int, error) {
	e.logger.Debug("estimating swap", "pool", pool.Hex(), "src", src.Hex(), "dst", dst.Hex(), "in", amountIn.String())

	if src == dst {
		return nil, ErrSameToken
	}

	block, err := e.reader.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}
	st, err := e.reader.ReadPair(ctx, pool, block)
	if errors.Is(err, eth.ErrPairNotDeployed) {
		return nil, fmt.Errorf("%w: %s", ErrPairNotFound, pool.Hex())
	}
	if err != nil {
		return nil, err
	}

	switch {
	case src == st.Token0 && dst == st.Token1:
	case src == st.Token1 && dst == st.Token0:
	default:
		return nil, ErrPairMismatch
	}
	if st.Reserve0.Sign() == 0 || st.Reserve1.Sign() == 0 {
		return nil, ErrEmptyReserves
	}

	// Only raw amounts cross this endpoint, so decimals are irrelevant.
	chainID := e.chain.ChainID()
	t0 := sdkcore.NewTokenFromAddress(chainID, st.Token0, 18, "", "")
	t1 := sdkcore.NewTokenFromAddress(chainID, st.Token1, 18, "", "")
	pair, err := amm.NewPairFromReserves(e.chain, t0, t1, st.Reserve0, st.Reserve1)
	if err != nil {
		return nil, err
	}
	in := t0
	if src == st.Token1 {
		in = t1
	}
	input, err := sdkcore.FromRawAmount(in.Currency(), amountIn)
	if err != nil {
		return nil, err
	}

	output, _, err := pair.GetOutputAmount(input)
	if errors.Is(err, amm.ErrInsufficientInputAmount) {
		return new(big.Int), nil
	}
	if err != nil {
		return nil, err
	}
	out := output.Quotient()
	e.logger.Debug("amount out computed", "out", out.String(), "block", block.String())
	return out, nil
}
