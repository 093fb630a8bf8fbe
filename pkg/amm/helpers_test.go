package amm

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

const testChain = 534352

var (
	scrollFactory  = common.HexToAddress("0x77876Cf69B8B0C6802E5A882a39E08f9CfC20F33")
	scrollInitHash = common.HexToHash("0x016ed0e2790ae367899a0290a0ddb891c2847ee2fc5f4eedcf3b364934cdb112")

	ether = sdkcore.NewNative(testChain, 18, "ETH", "Ether")
	weth  = sdkcore.NewTokenFromAddress(testChain, common.HexToAddress("0x5300000000000000000000000000000000000004"), 18, "WETH", "Wrapped Ether")
)

func testConfig() ChainConfig {
	return NewChainConfig(sdkcore.ChainCurrencies{Native: ether, Wrapped: weth}, scrollFactory, scrollInitHash)
}

// testToken returns token n at address n+1, so tokens sort by n.
func testToken(n int) sdkcore.Token {
	addr := common.BigToAddress(big.NewInt(int64(n + 1)))
	return sdkcore.NewTokenFromAddress(testChain, addr, 18, fmt.Sprintf("T%d", n), fmt.Sprintf("Token %d", n))
}

func raw(t testing.TB, tok sdkcore.Token, v int64) sdkcore.CurrencyAmount {
	t.Helper()
	a, err := sdkcore.FromRawAmount(tok.Currency(), big.NewInt(v))
	require.NoError(t, err)
	return a
}

func human(t testing.TB, tok sdkcore.Token, v string) sdkcore.CurrencyAmount {
	t.Helper()
	a, err := sdkcore.ParseAmount(tok.Currency(), v)
	require.NoError(t, err)
	return a
}

func newPair(t testing.TB, a, b sdkcore.CurrencyAmount) Pair {
	t.Helper()
	p, err := NewPair(testConfig(), a, b)
	require.NoError(t, err)
	return p
}

// fixturePairs are the pairs the route search tests run over:
// 0/1 1000:1000, 0/2 1000:1100, 0/3 1000:900, 1/2 1200:1000, 1/3 1200:1300.
func fixturePairs(t testing.TB) []Pair {
	t.Helper()
	t0, t1, t2, t3 := testToken(0), testToken(1), testToken(2), testToken(3)
	return []Pair{
		newPair(t, raw(t, t0, 1000), raw(t, t1, 1000)),
		newPair(t, raw(t, t0, 1000), raw(t, t2, 1100)),
		newPair(t, raw(t, t0, 1000), raw(t, t3, 900)),
		newPair(t, raw(t, t1, 1200), raw(t, t2, 1000)),
		newPair(t, raw(t, t1, 1200), raw(t, t3, 1300)),
	}
}

func pathOf(tr Trade) []string {
	path := tr.Route().Path()
	out := make([]string, len(path))
	for i, tok := range path {
		out[i] = tok.Symbol()
	}
	return out
}
