// Package tokenlist loads token metadata in the Uniswap token-list JSON
// format. Only entries for the configured chain are kept.
package tokenlist

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tidwall/gjson"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

//go:embed default.json
var defaultList []byte

var (
	ErrInvalidList  = errors.New("invalid token list")
	ErrUnknownToken = errors.New("unknown token")
)

// List is an immutable, chain-filtered token list.
type List struct {
	name      string
	chainID   uint64
	tokens    []sdkcore.Token
	byAddress map[common.Address]sdkcore.Token
	bySymbol  map[string]sdkcore.Token
}

// Default returns the built-in list for chainID.
func Default(chainID uint64) (*List, error) {
	return Parse(defaultList, chainID)
}

// Load reads a list from path, or the built-in list when path is empty.
func Load(path string, chainID uint64) (*List, error) {
	if path == "" {
		return Default(chainID)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token list: %w", err)
	}
	return Parse(data, chainID)
}

// Parse decodes a token list, keeping the first entry seen per address.
// Entries with an invalid address or decimals are rejected.
func Parse(data []byte, chainID uint64) (*List, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidList)
	}
	root := gjson.ParseBytes(data)
	entries := root.Get("tokens")
	if !entries.IsArray() {
		return nil, fmt.Errorf("%w: missing tokens array", ErrInvalidList)
	}

	l := newList(root.Get("name").String(), chainID)
	var parseErr error
	entries.ForEach(func(i, e gjson.Result) bool {
		if e.Get("chainId").Uint() != chainID {
			return true
		}
		addr := e.Get("address").String()
		if !common.IsHexAddress(addr) {
			parseErr = fmt.Errorf("%w: token %d: bad address %q", ErrInvalidList, i.Int(), addr)
			return false
		}
		dec := e.Get("decimals")
		if !dec.Exists() || dec.Int() < 0 || dec.Int() > 255 {
			parseErr = fmt.Errorf("%w: token %d: bad decimals %q", ErrInvalidList, i.Int(), dec.Raw)
			return false
		}
		tok := sdkcore.NewTokenFromAddress(chainID, common.HexToAddress(addr), uint8(dec.Int()), e.Get("symbol").String(), e.Get("name").String())
		if logo := e.Get("logoURI").String(); logo != "" {
			tok = tok.WithLogoURI(logo)
		}
		l.add(tok)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return l, nil
}

func newList(name string, chainID uint64) *List {
	return &List{
		name:      name,
		chainID:   chainID,
		byAddress: make(map[common.Address]sdkcore.Token),
		bySymbol:  make(map[string]sdkcore.Token),
	}
}

func (l *List) add(t sdkcore.Token) {
	if _, ok := l.byAddress[t.Address()]; ok {
		return
	}
	l.tokens = append(l.tokens, t)
	l.byAddress[t.Address()] = t
	sym := strings.ToUpper(t.Symbol())
	if _, ok := l.bySymbol[sym]; !ok && sym != "" {
		l.bySymbol[sym] = t
	}
}

// With returns a copy of l that also holds extra. Existing entries win.
func (l *List) With(extra ...sdkcore.Token) *List {
	out := newList(l.name, l.chainID)
	for _, t := range l.tokens {
		out.add(t)
	}
	for _, t := range extra {
		if t.ChainID() == l.chainID {
			out.add(t)
		}
	}
	return out
}

func (l *List) Name() string            { return l.name }
func (l *List) ChainID() uint64         { return l.chainID }
func (l *List) Tokens() []sdkcore.Token { return l.tokens }
func (l *List) Len() int                { return len(l.tokens) }

// Token looks a token up by address.
func (l *List) Token(addr common.Address) (sdkcore.Token, bool) {
	t, ok := l.byAddress[addr]
	return t, ok
}

// Lookup resolves a hex address or a symbol (case-insensitive).
func (l *List) Lookup(s string) (sdkcore.Token, error) {
	if common.IsHexAddress(s) {
		if t, ok := l.byAddress[common.HexToAddress(s)]; ok {
			return t, nil
		}
		return sdkcore.Token{}, fmt.Errorf("%w: %s", ErrUnknownToken, s)
	}
	if t, ok := l.bySymbol[strings.ToUpper(s)]; ok {
		return t, nil
	}
	return sdkcore.Token{}, fmt.Errorf("%w: %s", ErrUnknownToken, s)
}
