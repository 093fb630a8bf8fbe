package tokenlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

func TestDefault(t *testing.T) {
	l, err := Default(534352)
	require.NoError(t, err)
	require.Equal(t, 4, l.Len())

	usdc, err := l.Lookup("usdc")
	require.NoError(t, err)
	require.Equal(t, uint8(6), usdc.Decimals())

	weth, ok := l.Token(common.HexToAddress("0x5300000000000000000000000000000000000004"))
	require.True(t, ok)
	require.Equal(t, "WETH", weth.Symbol())

	testnet, err := Default(534351)
	require.NoError(t, err)
	musdc, err := testnet.Lookup("0xf56dc6695cf1f5c364edebc7dc7077ac9b586068")
	require.NoError(t, err)
	require.Equal(t, uint8(18), musdc.Decimals())
}

func TestParse(t *testing.T) {
	data := []byte(`{
		"name": "test",
		"tokens": [
			{"chainId": 1, "address": "0x6B175474E89094C44Da98b954EedeAC495271d0F", "decimals": 18, "symbol": "DAI", "name": "Dai", "logoURI": "ipfs://dai"},
			{"chainId": 1, "address": "0x6b175474e89094c44da98b954eedeac495271d0f", "decimals": 6, "symbol": "DUP", "name": "dup"},
			{"chainId": 10, "address": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", "decimals": 6, "symbol": "USDC", "name": "USD Coin"}
		]
	}`)
	l, err := Parse(data, 1)
	require.NoError(t, err)
	require.Equal(t, "test", l.Name())
	require.Equal(t, 1, l.Len())

	dai, err := l.Lookup("DAI")
	require.NoError(t, err)
	require.Equal(t, uint8(18), dai.Decimals())
	require.Equal(t, "ipfs://dai", dai.LogoURI())

	_, err = l.Lookup("USDC")
	require.ErrorIs(t, err, ErrUnknownToken)
	_, err = l.Lookup("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	require.ErrorIs(t, err, ErrUnknownToken)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"not json":    `{"tokens": [`,
		"no tokens":   `{"name": "x"}`,
		"bad address": `{"tokens": [{"chainId": 1, "address": "0x12", "decimals": 18}]}`,
		"no decimals": `{"tokens": [{"chainId": 1, "address": "0x6B175474E89094C44Da98b954EedeAC495271d0F"}]}`,
	}
	for name, data := range cases {
		_, err := Parse([]byte(data), 1)
		require.ErrorIs(t, err, ErrInvalidList, name)
	}
}

func TestLoadAndWith(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"file","tokens":[]}`), 0o600))

	l, err := Load(path, 1)
	require.NoError(t, err)
	require.Equal(t, 0, l.Len())

	extra := sdkcore.NewTokenFromAddress(1, common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), 18, "WETH", "Wrapped Ether")
	foreign := sdkcore.NewTokenFromAddress(2, common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc3"), 18, "X", "X")
	l2 := l.With(extra, foreign)
	require.Equal(t, 0, l.Len())
	require.Equal(t, 1, l2.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"), 1)
	require.Error(t, err)

	def, err := Load("", 534352)
	require.NoError(t, err)
	require.Equal(t, "BrownFi Default", def.Name())
}
