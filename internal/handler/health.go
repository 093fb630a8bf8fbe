package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/devxmone/brownfi-hackathon/internal/eth"
)

type HealthHandler struct {
	BaseHandler
	reader *eth.PairReader
}

func NewHealthHandler(logger *slog.Logger, reader *eth.PairReader) *HealthHandler {
	return &HealthHandler{
		BaseHandler: BaseHandler{logger: logger},
		reader:      reader,
	}
}

// Handle reports the node's head block, or 503 when it does not answer.
func (h *HealthHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		block, err := h.reader.LatestBlock(c.Context())
		if err != nil {
			h.logger.Warn("health check failed", "err", err)
			return ErrNodeUnavailable
		}
		return c.JSON(fiber.Map{"status": "ok", "block": block.Uint64()})
	}
}
