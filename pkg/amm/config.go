// Package amm models constant-product pairs and the routes and trades built
// on them. Everything here is a pure value: pairs are reserve snapshots and
// every operation returns new values.
package amm

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
	"github.com/devxmone/brownfi-hackathon/pkg/uniswapv2"
)

const (
	DefaultLiquiditySymbol = "UNI-V2"
	DefaultLiquidityName   = "Uniswap V2"
	liquidityDecimals      = 18
)

// ChainConfig holds the per-deployment constants a pair depends on.
type ChainConfig struct {
	sdkcore.ChainCurrencies

	Factory      common.Address
	InitCodeHash common.Hash
	Fee          uniswapv2.Fee
	// MinimumLiquidity is locked forever on the first mint.
	MinimumLiquidity *big.Int
	// ProtocolFeeDivisor d mints 1/(d+1) of fee growth to the protocol.
	ProtocolFeeDivisor *big.Int
	LiquiditySymbol    string
	LiquidityName      string
}

// NewChainConfig returns a config with the stock V2 fee, lock and protocol
// share.
func NewChainConfig(currencies sdkcore.ChainCurrencies, factory common.Address, initCodeHash common.Hash) ChainConfig {
	return ChainConfig{
		ChainCurrencies:    currencies,
		Factory:            factory,
		InitCodeHash:       initCodeHash,
		Fee:                uniswapv2.DefaultFee(),
		MinimumLiquidity:   big.NewInt(1000),
		ProtocolFeeDivisor: big.NewInt(5),
		LiquiditySymbol:    DefaultLiquiditySymbol,
		LiquidityName:      DefaultLiquidityName,
	}
}

// ChainID is the chain of the wrapped token.
func (c ChainConfig) ChainID() uint64 { return c.Wrapped.ChainID() }

func (c ChainConfig) Validate() error {
	if c.Native.ChainID() != c.Wrapped.ChainID() {
		return fmt.Errorf("%w: native chain %d, wrapped chain %d", ErrInvalidConfig, c.Native.ChainID(), c.Wrapped.ChainID())
	}
	if c.Factory == (common.Address{}) {
		return fmt.Errorf("%w: zero factory address", ErrInvalidConfig)
	}
	if c.InitCodeHash == (common.Hash{}) {
		return fmt.Errorf("%w: zero init code hash", ErrInvalidConfig)
	}
	if err := c.Fee.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MinimumLiquidity == nil || c.MinimumLiquidity.Sign() < 0 {
		return fmt.Errorf("%w: minimum liquidity must be non-negative", ErrInvalidConfig)
	}
	if c.ProtocolFeeDivisor == nil || c.ProtocolFeeDivisor.Sign() <= 0 {
		return fmt.Errorf("%w: protocol fee divisor must be positive", ErrInvalidConfig)
	}
	return nil
}

// feeFraction is the share of an input that reaches the pool.
func (c ChainConfig) feeFraction() sdkcore.Fraction {
	f, _ := sdkcore.NewFraction(c.Fee.Numerator, c.Fee.Denominator)
	return f
}
