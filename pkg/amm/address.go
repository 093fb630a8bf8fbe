package amm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

// SortTokens orders two tokens the way the factory does.
func SortTokens(a, b sdkcore.Token) (sdkcore.Token, sdkcore.Token, error) {
	before, err := a.SortsBefore(b)
	if err != nil {
		return sdkcore.Token{}, sdkcore.Token{}, err
	}
	if before {
		return a, b, nil
	}
	return b, a, nil
}

// PairAddress derives the CREATE2 address of the pair for tokenA and tokenB:
// keccak256(0xff ++ factory ++ keccak256(token0 ++ token1) ++ initCodeHash).
func PairAddress(cfg ChainConfig, tokenA, tokenB sdkcore.Token) (common.Address, error) {
	token0, token1, err := SortTokens(tokenA, tokenB)
	if err != nil {
		return common.Address{}, err
	}
	var salt [32]byte
	copy(salt[:], crypto.Keccak256(token0.Address().Bytes(), token1.Address().Bytes()))
	return crypto.CreateAddress2(cfg.Factory, salt, cfg.InitCodeHash.Bytes()), nil
}
