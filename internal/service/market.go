package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/devxmone/brownfi-hackathon/internal/eth"
	"github.com/devxmone/brownfi-hackathon/internal/tokenlist"
	"github.com/devxmone/brownfi-hackathon/pkg/amm"
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

// NativeKeyword selects the chain's native currency in requests.
const NativeKeyword = "native"

// market resolves request currencies against the token list and loads pairs
// from chain.
type market struct {
	BaseService
	tokens *tokenlist.List
}

func (m *market) resolve(s string) (sdkcore.Currency, error) {
	if strings.EqualFold(s, NativeKeyword) || strings.EqualFold(s, m.chain.Native.Symbol()) {
		return m.chain.Native.Currency(), nil
	}
	t, err := m.tokens.Lookup(s)
	if err != nil {
		return sdkcore.Currency{}, fmt.Errorf("%w: %s", ErrUnknownToken, s)
	}
	return t.Currency(), nil
}

// resolvePair resolves both sides and their wrapped tokens. ETH against WETH
// counts as the same token.
func (m *market) resolvePair(a, b string) (ca, cb sdkcore.Currency, ta, tb sdkcore.Token, err error) {
	if ca, err = m.resolve(a); err != nil {
		return
	}
	if cb, err = m.resolve(b); err != nil {
		return
	}
	if ta, err = m.chain.Wrap(ca); err != nil {
		return
	}
	if tb, err = m.chain.Wrap(cb); err != nil {
		return
	}
	if ta.Equal(tb) {
		err = ErrSameToken
	}
	return
}

// loadPairs reads every deployed pair among combos at block. Pairs that do
// not hold the tokens their address was derived from are skipped.
func (m *market) loadPairs(ctx context.Context, combos [][2]sdkcore.Token, block *big.Int) ([]amm.Pair, error) {
	addrs := make([]common.Address, 0, len(combos))
	known := make(map[common.Address]sdkcore.Token)
	for _, c := range combos {
		addr, err := amm.PairAddress(m.chain, c[0], c[1])
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
		known[c[0].Address()] = c[0]
		known[c[1].Address()] = c[1]
	}

	states, err := m.reader.ReadPairs(ctx, addrs, block)
	if err != nil {
		return nil, err
	}
	pairs := make([]amm.Pair, 0, len(states))
	for _, st := range states {
		t0, ok0 := known[st.Token0]
		t1, ok1 := known[st.Token1]
		if !ok0 || !ok1 {
			m.logger.Warn("pair tokens do not match derived address", "pair", st.Address.Hex())
			continue
		}
		p, err := amm.NewPairFromReserves(m.chain, t0, t1, st.Reserve0, st.Reserve1)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	// ReadPairs returns in completion order
	slices.SortFunc(pairs, func(a, b amm.Pair) int {
		return bytes.Compare(a.Address().Bytes(), b.Address().Bytes())
	})
	m.logger.Debug("pairs loaded", "candidates", len(combos), "deployed", len(pairs), "block", block.String())
	return pairs, nil
}

// loadPair reads the a/b pair. The bool is false when it is not deployed yet.
func (m *market) loadPair(ctx context.Context, a, b sdkcore.Token, block *big.Int) (amm.Pair, bool, error) {
	addr, err := amm.PairAddress(m.chain, a, b)
	if err != nil {
		return amm.Pair{}, false, err
	}
	st, err := m.reader.ReadPair(ctx, addr, block)
	if errors.Is(err, eth.ErrPairNotDeployed) {
		p, err := amm.NewPairFromReserves(m.chain, a, b, new(big.Int), new(big.Int))
		return p, false, err
	}
	if err != nil {
		return amm.Pair{}, false, err
	}
	if st.Token0 == b.Address() {
		a, b = b, a
	}
	p, err := amm.NewPairFromReserves(m.chain, a, b, st.Reserve0, st.Reserve1)
	return p, true, err
}

// AmountView is a currency amount as the API renders it.
type AmountView struct {
	Symbol    string `json:"symbol"`
	Address   string `json:"address,omitempty"`
	Raw       string `json:"raw"`
	Formatted string `json:"formatted"`
}

func viewOf(a sdkcore.CurrencyAmount) AmountView {
	v := AmountView{
		Symbol:    a.Currency().Symbol(),
		Raw:       a.Quotient().String(),
		Formatted: a.ToSignificant(6),
	}
	if t, ok := a.Currency().Token(); ok {
		v.Address = t.Address().Hex()
	}
	return v
}
