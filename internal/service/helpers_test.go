package service

import (
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/devxmone/brownfi-hackathon/internal/eth"
	"github.com/devxmone/brownfi-hackathon/internal/eth/ethtest"
	"github.com/devxmone/brownfi-hackathon/internal/tokenlist"
	"github.com/devxmone/brownfi-hackathon/pkg/amm"
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

const scroll = 534352

var (
	wethAddr  = common.HexToAddress("0x5300000000000000000000000000000000000004")
	usdcAddr  = common.HexToAddress("0xf56dc6695cF1f5c364eDEbC7Dc7077ac9B586068")
	brownAddr = common.HexToAddress("0x8E9851cF4edd2Cf688Ef4964236087754621bF12")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testChain() amm.ChainConfig {
	currencies := sdkcore.ChainCurrencies{
		Native:  sdkcore.NewNative(scroll, 18, "ETH", "Ether"),
		Wrapped: sdkcore.NewTokenFromAddress(scroll, wethAddr, 18, "WETH", "Wrapped Ether"),
	}
	return amm.NewChainConfig(currencies,
		common.HexToAddress("0x77876Cf69B8B0C6802E5A882a39E08f9CfC20F33"),
		common.HexToHash("0x016ed0e2790ae367899a0290a0ddb891c2847ee2fc5f4eedcf3b364934cdb112"))
}

func testTokens(t *testing.T) *tokenlist.List {
	t.Helper()
	l, err := tokenlist.Default(scroll)
	if err != nil {
		t.Fatalf("default token list: %v", err)
	}
	return l
}

func dialReader(t *testing.T, fe *ethtest.FakeEth) *eth.PairReader {
	t.Helper()
	return eth.NewPairReader(ethtest.Dial(t, fe))
}

func bigString(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad integer %q", s)
	}
	return v
}

// setPool deploys the a/b pair at its derived address with the given
// reserves, in whichever order the pair sorts them.
func setPool(t *testing.T, fe *ethtest.FakeEth, a, b common.Address, reserveA, reserveB *big.Int) common.Address {
	t.Helper()
	l := testTokens(t)
	ta, _ := l.Token(a)
	tb, _ := l.Token(b)
	addr, err := amm.PairAddress(testChain(), ta, tb)
	if err != nil {
		t.Fatalf("pair address: %v", err)
	}
	if before, _ := ta.SortsBefore(tb); !before {
		a, b = b, a
		reserveA, reserveB = reserveB, reserveA
	}
	fe.SetPair(addr, a, b, reserveA, reserveB)
	return addr
}

// wethUSDC is 100 WETH against 190,000 USDC.
func wethUSDC(t *testing.T, fe *ethtest.FakeEth) common.Address {
	t.Helper()
	return setPool(t, fe, wethAddr, usdcAddr, bigString(t, "100000000000000000000"), big.NewInt(190_000_000_000))
}
