package amm

import "errors"

var (
	ErrInvalidConfig               = errors.New("invalid chain config")
	ErrNotToken                    = errors.New("pair reserves must be tokens")
	ErrTokenNotInPair              = errors.New("token not in pair")
	ErrEmptyRoute                  = errors.New("route has no pairs")
	ErrDisconnectedRoute           = errors.New("route pairs are not connected")
	ErrCurrencyNotInRoute          = errors.New("currency not in route")
	ErrInsufficientReserves        = errors.New("insufficient reserves")
	ErrInsufficientLiquidity       = errors.New("insufficient liquidity")
	ErrInsufficientInputAmount     = errors.New("insufficient input amount")
	ErrInsufficientOutputAmount    = errors.New("insufficient output amount")
	ErrInsufficientLiquidityMinted = errors.New("insufficient liquidity minted")
	ErrInvalidLiquidity            = errors.New("invalid liquidity amount")
	ErrMissingKLast                = errors.New("kLast required when protocol fee is on")
	ErrInvalidSlippage             = errors.New("slippage tolerance must be between 0 and 100%")
	ErrTradeTypeMismatch           = errors.New("trades have different types")

	// ErrNoRouteFound is not a failure of the inputs: no candidate path
	// connects the two currencies within the hop limit.
	ErrNoRouteFound = errors.New("no route found")
)

// isPrunable reports errors that rule out a single path during a search
// without invalidating the search itself.
func isPrunable(err error) bool {
	return errors.Is(err, ErrInsufficientReserves) ||
		errors.Is(err, ErrInsufficientInputAmount) ||
		errors.Is(err, ErrInsufficientLiquidity) ||
		errors.Is(err, ErrInsufficientOutputAmount)
}
