// Package handler defines HTTP request handlers and related utilities.
package handler

import (
	"errors"
	"log/slog"

	"github.com/devxmone/brownfi-hackathon/internal/eth"
	"github.com/devxmone/brownfi-hackathon/internal/service"
	"github.com/devxmone/brownfi-hackathon/pkg/amm"
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

// BaseHandler provides common dependencies for HTTP handlers.
type BaseHandler struct {
	logger *slog.Logger
}

// handleServiceError maps a service failure to its HTTP error. Anything
// unrecognised is logged and reported as fallback.
func (h *BaseHandler) handleServiceError(err error, fallback error) error {
	switch {
	case errors.Is(err, service.ErrSameToken):
		return ErrSameTokenBadRequest
	case errors.Is(err, service.ErrEmptyReserves):
		return ErrEmptyReservesBadRequest
	case errors.Is(err, service.ErrPairMismatch):
		return ErrPairMismatchBadRequest
	case errors.Is(err, service.ErrUnknownToken):
		return NewUnknownToken(err)
	case errors.Is(err, service.ErrPairNotFound), errors.Is(err, eth.ErrPairNotDeployed):
		return ErrPairNotFound
	case errors.Is(err, service.ErrNoRoute):
		return ErrNoRoute
	case errors.Is(err, sdkcore.ErrInvalidAmount), errors.Is(err, sdkcore.ErrAmountOverflow):
		return NewInvalidAmount(err)
	case errors.Is(err, amm.ErrInsufficientLiquidityMinted):
		return ErrInsufficientLiquidityMinted
	case errors.Is(err, amm.ErrInvalidLiquidity):
		return ErrInvalidLiquidity
	case errors.Is(err, amm.ErrInvalidSlippage):
		return ErrInvalidSlippage
	default:
		h.logger.Error("service call failed", "err", err)
		return fallback
	}
}
