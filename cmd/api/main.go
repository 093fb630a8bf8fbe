package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/devxmone/brownfi-hackathon/internal/config"
	"github.com/devxmone/brownfi-hackathon/internal/eth"
	"github.com/devxmone/brownfi-hackathon/internal/handler"
	"github.com/devxmone/brownfi-hackathon/internal/logging"
	"github.com/devxmone/brownfi-hackathon/internal/service"
	"github.com/devxmone/brownfi-hackathon/internal/tokenlist"
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	chain, err := cfg.Chain()
	if err != nil {
		return fmt.Errorf("chain config: %w", err)
	}
	list, err := tokenlist.Load(cfg.TokenListPath, cfg.ChainID)
	if err != nil {
		return err
	}
	tokens := list.With(chain.Wrapped)

	bases := make([]sdkcore.Token, 0, len(cfg.Bases))
	for _, addr := range cfg.Bases {
		t, ok := tokens.Token(addr)
		if !ok {
			return fmt.Errorf("base %s is not in token list %q", addr.Hex(), tokens.Name())
		}
		bases = append(bases, t)
	}
	logger.Info("token list loaded", "name", tokens.Name(), "chain", cfg.ChainID, "tokens", tokens.Len(), "bases", len(bases))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ethereumClient, err := eth.Dial(ctx, cfg.RPCEndpoint)
	if err != nil {
		return fmt.Errorf("failed to connect to Ethereum node: %w", err)
	}
	reader := eth.NewPairReader(ethereumClient)

	estimateService := service.NewEstimateService(logger, reader, chain)
	quoteService := service.NewQuoteService(logger, reader, chain, tokens, bases, cfg.MaxHops)
	liquidityService := service.NewLiquidityService(logger, reader, chain, tokens, cfg.ProtocolFeeOn)

	liquidityHandler := handler.NewLiquidityHandler(logger, liquidityService)

	app := fiber.New()
	app.Get("/estimate", handler.NewEstimateHandler(logger, estimateService).Handle())
	app.Get("/quote", handler.NewQuoteHandler(logger, quoteService).Handle())
	app.Get("/liquidity/mint", liquidityHandler.Mint())
	app.Get("/liquidity/value", liquidityHandler.Value())
	app.Get("/healthz", handler.NewHealthHandler(logger, reader).Handle())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			ethereumClient.Close()
			return fmt.Errorf("server error: %w", err)
		}
		ethereumClient.Close()
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("shutdown", "err", err)
	}

	ethereumClient.Close()
	return nil
}
