package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/devxmone/brownfi-hackathon/pkg/amm"
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
	"github.com/devxmone/brownfi-hackathon/pkg/uniswapv2"
)

// Scroll mainnet periphery.
const (
	DefaultChainID      = 534352
	DefaultFactory      = "0x77876Cf69B8B0C6802E5A882a39E08f9CfC20F33"
	DefaultInitCodeHash = "0x016ed0e2790ae367899a0290a0ddb891c2847ee2fc5f4eedcf3b364934cdb112"
	DefaultWETH         = "0x5300000000000000000000000000000000000004"
)

type Config struct {
	Addr        string
	RPCEndpoint string
	LogLevel    string
	LogFormat   string

	ChainID        uint64
	Factory        common.Address
	InitCodeHash   common.Hash
	WETH           common.Address
	FeeNumerator   int64
	FeeDenominator int64
	ProtocolFeeOn  bool

	TokenListPath string
	MaxHops       int
	// Bases are the intermediate tokens routes may pass through.
	Bases []common.Address
}

func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		return nil, ErrMissingRPCEndpoint
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	cfg := &Config{
		Addr:          addr,
		RPCEndpoint:   rpcURL,
		LogLevel:      logLevel,
		LogFormat:     getenv("LOG_FORMAT", "text"),
		TokenListPath: os.Getenv("TOKEN_LIST_PATH"),
	}

	var err error
	if cfg.ChainID, err = uintEnv("CHAIN_ID", DefaultChainID); err != nil {
		return nil, err
	}
	if cfg.Factory, err = addressEnv("FACTORY_ADDRESS", DefaultFactory); err != nil {
		return nil, err
	}
	if cfg.WETH, err = addressEnv("WETH_ADDRESS", DefaultWETH); err != nil {
		return nil, err
	}
	if cfg.InitCodeHash, err = hashEnv("INIT_CODE_HASH", DefaultInitCodeHash); err != nil {
		return nil, err
	}
	if cfg.FeeNumerator, err = intEnv("SWAP_FEE_NUMERATOR", 997); err != nil {
		return nil, err
	}
	if cfg.FeeDenominator, err = intEnv("SWAP_FEE_DENOMINATOR", 1000); err != nil {
		return nil, err
	}
	if cfg.ProtocolFeeOn, err = boolEnv("PROTOCOL_FEE_ON", false); err != nil {
		return nil, err
	}
	maxHops, err := intEnv("MAX_HOPS", amm.DefaultMaxHops)
	if err != nil {
		return nil, err
	}
	if maxHops < 1 {
		return nil, fmt.Errorf("%w: MAX_HOPS must be at least 1", ErrInvalidValue)
	}
	cfg.MaxHops = int(maxHops)

	cfg.Bases = []common.Address{cfg.WETH}
	if raw := os.Getenv("BASES"); raw != "" {
		cfg.Bases = cfg.Bases[:0]
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if !common.IsHexAddress(s) {
				return nil, fmt.Errorf("%w: BASES entry %q", ErrInvalidValue, s)
			}
			cfg.Bases = append(cfg.Bases, common.HexToAddress(s))
		}
	}

	return cfg, nil
}

// Chain builds the SDK chain config. The native currency is ETH.
func (c *Config) Chain() (amm.ChainConfig, error) {
	fee, err := uniswapv2.NewFee(c.FeeNumerator, c.FeeDenominator)
	if err != nil {
		return amm.ChainConfig{}, fmt.Errorf("swap fee %d/%d: %w", c.FeeNumerator, c.FeeDenominator, err)
	}
	currencies := sdkcore.ChainCurrencies{
		Native:  sdkcore.NewNative(c.ChainID, 18, "ETH", "Ether"),
		Wrapped: sdkcore.NewTokenFromAddress(c.ChainID, c.WETH, 18, "WETH", "Wrapped Ether"),
	}
	chain := amm.NewChainConfig(currencies, c.Factory, c.InitCodeHash)
	chain.Fee = fee
	if err := chain.Validate(); err != nil {
		return amm.ChainConfig{}, err
	}
	return chain, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return n, nil
}

func uintEnv(key string, def uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return b, nil
}

func addressEnv(key, def string) (common.Address, error) {
	v := getenv(key, def)
	if !common.IsHexAddress(v) {
		return common.Address{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return common.HexToAddress(v), nil
}

func hashEnv(key, def string) (common.Hash, error) {
	v := getenv(key, def)
	b, err := hexutil.Decode(v)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return common.BytesToHash(b), nil
}
