package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/devxmone/brownfi-hackathon/internal/service"
)

type LiquidityHandler struct {
	BaseHandler
	service *service.LiquidityService
}

func NewLiquidityHandler(logger *slog.Logger, svc *service.LiquidityService) *LiquidityHandler {
	return &LiquidityHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

type MintRequest struct {
	TokenA  string `query:"token_a" json:"token_a"`
	TokenB  string `query:"token_b" json:"token_b"`
	AmountA string `query:"amount_a" json:"amount_a"`
	AmountB string `query:"amount_b" json:"amount_b"`
}

type ValueRequest struct {
	TokenA    string `query:"token_a" json:"token_a"`
	TokenB    string `query:"token_b" json:"token_b"`
	Liquidity string `query:"liquidity" json:"liquidity"`
}

// Mint prices a deposit. amount_b is optional for an existing pool.
func (h *LiquidityHandler) Mint() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req MintRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}
		if err := required("token_a", req.TokenA, "token_b", req.TokenB, "amount_a", req.AmountA); err != nil {
			return err
		}

		quote, err := h.service.Mint(c.Context(), service.MintRequest{
			TokenA:  req.TokenA,
			TokenB:  req.TokenB,
			AmountA: req.AmountA,
			AmountB: req.AmountB,
		})
		if err != nil {
			return h.handleServiceError(err, ErrLiquidityFailedInternal)
		}
		return c.JSON(quote)
	}
}

// Value prices an LP balance.
func (h *LiquidityHandler) Value() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req ValueRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}
		if err := required("token_a", req.TokenA, "token_b", req.TokenB, "liquidity", req.Liquidity); err != nil {
			return err
		}

		value, err := h.service.Value(c.Context(), req.TokenA, req.TokenB, req.Liquidity)
		if err != nil {
			return h.handleServiceError(err, ErrLiquidityFailedInternal)
		}
		return c.JSON(value)
	}
}

// required takes field/value pairs and reports the first empty value.
func required(kv ...string) error {
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			return NewParamRequired(kv[i])
		}
	}
	return nil
}
