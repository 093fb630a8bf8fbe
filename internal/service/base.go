// Package service contains business logic and integrations backing HTTP handlers.
package service

import (
	"log/slog"

	"github.com/devxmone/brownfi-hackathon/internal/eth"
	"github.com/devxmone/brownfi-hackathon/pkg/amm"
)

// BaseService provides common dependencies for service types.
type BaseService struct {
	logger *slog.Logger
	reader *eth.PairReader
	chain  amm.ChainConfig
}

func newBaseService(logger *slog.Logger, reader *eth.PairReader, chain amm.ChainConfig) BaseService {
	return BaseService{logger: logger, reader: reader, chain: chain}
}
