package handler

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/devxmone/brownfi-hackathon/internal/service"
	"github.com/devxmone/brownfi-hackathon/pkg/amm"
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

type QuoteHandler struct {
	BaseHandler
	service *service.QuoteService
}

func NewQuoteHandler(logger *slog.Logger, svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// QuoteRequest names currencies by symbol, address or "native". Amount is in
// human units of the fixed side.
type QuoteRequest struct {
	Src         string `query:"src" json:"src"`
	Dst         string `query:"dst" json:"dst"`
	Amount      string `query:"amount" json:"amount"`
	Type        string `query:"type" json:"type"`
	SlippageBps string `query:"slippage_bps" json:"slippage_bps"`
}

func (h *QuoteHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req QuoteRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}
		sreq, err := h.validate(&req)
		if err != nil {
			return err
		}

		quote, err := h.service.Quote(c.Context(), sreq)
		if err != nil {
			return h.handleServiceError(err, ErrQuoteFailedInternal)
		}
		return c.JSON(quote)
	}
}

func (h *QuoteHandler) validate(req *QuoteRequest) (service.QuoteRequest, error) {
	if err := required("src", req.Src, "dst", req.Dst, "amount", req.Amount); err != nil {
		return service.QuoteRequest{}, err
	}

	tradeType, err := parseTradeType(req.Type)
	if err != nil {
		return service.QuoteRequest{}, err
	}
	slippage, err := parseSlippage(req.SlippageBps)
	if err != nil {
		return service.QuoteRequest{}, err
	}
	return service.QuoteRequest{
		Src:       req.Src,
		Dst:       req.Dst,
		Amount:    req.Amount,
		TradeType: tradeType,
		Slippage:  slippage,
	}, nil
}

func parseTradeType(s string) (amm.TradeType, error) {
	switch s {
	case "", amm.ExactInput.String():
		return amm.ExactInput, nil
	case amm.ExactOutput.String():
		return amm.ExactOutput, nil
	default:
		return 0, ErrInvalidTradeType
	}
}

func parseSlippage(s string) (sdkcore.Percent, error) {
	if s == "" {
		return amm.DefaultSlippage, nil
	}
	bps, err := strconv.ParseInt(s, 10, 64)
	if err != nil || bps < 0 || bps > 10_000 {
		return sdkcore.Percent{}, ErrInvalidSlippage
	}
	return sdkcore.PercentFromBips(bps), nil
}
