package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrSameAddresses is returned when src and dst addresses are identical.
var ErrSameAddresses = fiber.NewError(fiber.StatusBadRequest, "src and dst addresses cannot be the same")

// ErrAmountRequired is returned when the amount parameter is missing.
var ErrAmountRequired = fiber.NewError(fiber.StatusBadRequest, "amount is required")

// ErrInvalidAmountFormat is returned when the amount cannot be parsed as a
// base-10 integer.
var ErrInvalidAmountFormat = fiber.NewError(fiber.StatusBadRequest, "invalid amount format")

// ErrAmountNonPositive is returned when the amount is zero or negative.
var ErrAmountNonPositive = fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")

// ErrSameTokenBadRequest maps a same-token validation failure to a 400 error.
var ErrSameTokenBadRequest = fiber.NewError(fiber.StatusBadRequest, "src and dst tokens cannot be the same")

// ErrEmptyReservesBadRequest maps empty-reserve pool state to a 400 error.
var ErrEmptyReservesBadRequest = fiber.NewError(fiber.StatusBadRequest, "pool has insufficient reserves")

// ErrPairMismatchBadRequest is returned when the pool does not trade src/dst.
var ErrPairMismatchBadRequest = fiber.NewError(fiber.StatusBadRequest, "pool does not trade src and dst")

// ErrInvalidTradeType is returned for a type other than exact_in or exact_out.
var ErrInvalidTradeType = fiber.NewError(fiber.StatusBadRequest, "type must be exact_in or exact_out")

// ErrInvalidSlippage is returned for slippage_bps outside 0..10000.
var ErrInvalidSlippage = fiber.NewError(fiber.StatusBadRequest, "slippage_bps must be an integer between 0 and 10000")

// ErrInsufficientLiquidityMinted is returned when a deposit is too small to
// mint any liquidity.
var ErrInsufficientLiquidityMinted = fiber.NewError(fiber.StatusBadRequest, "deposit too small to mint liquidity")

// ErrInvalidLiquidity is returned when the liquidity exceeds the total supply.
var ErrInvalidLiquidity = fiber.NewError(fiber.StatusBadRequest, "liquidity exceeds total supply")

// ErrPairNotFound is returned when no pair is deployed for the tokens.
var ErrPairNotFound = fiber.NewError(fiber.StatusNotFound, "pair not found")

// ErrNoRoute is returned when no route can fill the trade.
var ErrNoRoute = fiber.NewError(fiber.StatusNotFound, "insufficient liquidity for this trade")

// ErrEstimationFailedInternal signals a generic server-side estimation error.
var ErrEstimationFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "estimation failed")

// ErrQuoteFailedInternal signals a generic server-side quote error.
var ErrQuoteFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "quote failed")

// ErrLiquidityFailedInternal signals a generic server-side liquidity error.
var ErrLiquidityFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "liquidity computation failed")

// ErrNodeUnavailable is returned by the health check when the node does not
// answer.
var ErrNodeUnavailable = fiber.NewError(fiber.StatusServiceUnavailable, "ethereum node unavailable")

// NewInvalidAmountIn wraps an amount parsing error into a 400 Bad Request with
// a descriptive message.
func NewInvalidAmountIn(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid amount_in: "+err.Error())
}

// NewInvalidAmount is NewInvalidAmountIn for human-unit amounts.
func NewInvalidAmount(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

// NewAddressRequired returns a 400 Bad Request for a missing address field.
func NewAddressRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" address is required")
}

// NewInvalidAddress returns a 400 Bad Request for an invalid address format.
func NewInvalidAddress(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" address")
}

// NewParamRequired returns a 400 Bad Request for a missing query parameter.
func NewParamRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" is required")
}

// NewUnknownToken returns a 404 for a token missing from the token list.
func NewUnknownToken(err error) error {
	return fiber.NewError(fiber.StatusNotFound, err.Error())
}
