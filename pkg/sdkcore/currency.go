package sdkcore

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Kind tags the variant held by a Currency.
type Kind uint8

const (
	KindNative Kind = iota + 1
	KindToken
)

// Token is an ERC20 asset on a chain.
type Token struct {
	chainID  uint64
	address  common.Address
	decimals uint8
	symbol   string
	name     string
	logoURI  string
}

// NewToken validates hexAddress and builds a Token.
func NewToken(chainID uint64, hexAddress string, decimals uint8, symbol, name string) (Token, error) {
	if !common.IsHexAddress(hexAddress) {
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidAddress, hexAddress)
	}
	return NewTokenFromAddress(chainID, common.HexToAddress(hexAddress), decimals, symbol, name), nil
}

// NewTokenFromAddress builds a Token from an already parsed address.
func NewTokenFromAddress(chainID uint64, address common.Address, decimals uint8, symbol, name string) Token {
	return Token{chainID: chainID, address: address, decimals: decimals, symbol: symbol, name: name}
}

// WithLogoURI returns a copy carrying a logo reference.
func (t Token) WithLogoURI(uri string) Token {
	t.logoURI = uri
	return t
}

func (t Token) ChainID() uint64         { return t.chainID }
func (t Token) Address() common.Address { return t.address }
func (t Token) Decimals() uint8         { return t.decimals }
func (t Token) Symbol() string          { return t.symbol }
func (t Token) Name() string            { return t.name }
func (t Token) LogoURI() string         { return t.logoURI }

// Currency lifts the token into the Currency union.
func (t Token) Currency() Currency { return Currency{kind: KindToken, token: t} }

// Equal compares chain and address.
func (t Token) Equal(o Token) bool {
	return t.chainID == o.chainID && t.address == o.address
}

// SortsBefore reports whether t orders before o by address. The order is the
// byte order of the address, which is the same as comparing lower-case hex.
func (t Token) SortsBefore(o Token) (bool, error) {
	if t.chainID != o.chainID {
		return false, ErrChainMismatch
	}
	if t.address == o.address {
		return false, ErrIdenticalAddresses
	}
	return bytes.Compare(t.address[:], o.address[:]) < 0, nil
}

func (t Token) String() string {
	if t.symbol != "" {
		return t.symbol
	}
	return t.address.Hex()
}

// Native is a chain's gas currency.
type Native struct {
	chainID  uint64
	decimals uint8
	symbol   string
	name     string
}

// NewNative builds the native currency descriptor of a chain.
func NewNative(chainID uint64, decimals uint8, symbol, name string) Native {
	return Native{chainID: chainID, decimals: decimals, symbol: symbol, name: name}
}

func (n Native) ChainID() uint64 { return n.chainID }
func (n Native) Decimals() uint8 { return n.decimals }
func (n Native) Symbol() string  { return n.symbol }
func (n Native) Name() string    { return n.name }

// Currency lifts the native descriptor into the Currency union.
func (n Native) Currency() Currency { return Currency{kind: KindNative, native: n} }

// Currency is either a Native or a Token. The zero value is invalid.
type Currency struct {
	kind   Kind
	native Native
	token  Token
}

func (c Currency) Kind() Kind     { return c.kind }
func (c Currency) IsNative() bool { return c.kind == KindNative }
func (c Currency) IsToken() bool  { return c.kind == KindToken }

// Token returns the token variant.
func (c Currency) Token() (Token, bool) {
	return c.token, c.kind == KindToken
}

func (c Currency) ChainID() uint64 {
	if c.kind == KindNative {
		return c.native.chainID
	}
	return c.token.chainID
}

func (c Currency) Decimals() uint8 {
	if c.kind == KindNative {
		return c.native.decimals
	}
	return c.token.decimals
}

func (c Currency) Symbol() string {
	if c.kind == KindNative {
		return c.native.symbol
	}
	return c.token.symbol
}

func (c Currency) Name() string {
	if c.kind == KindNative {
		return c.native.name
	}
	return c.token.name
}

func (c Currency) LogoURI() string {
	if c.kind == KindNative {
		return ""
	}
	return c.token.logoURI
}

// Equal is true for the same token, or for natives of the same chain.
func (c Currency) Equal(o Currency) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case KindNative:
		return c.native.chainID == o.native.chainID
	case KindToken:
		return c.token.Equal(o.token)
	default:
		return false
	}
}

func (c Currency) String() string {
	switch c.kind {
	case KindNative:
		return c.native.symbol
	case KindToken:
		return c.token.String()
	default:
		return "<invalid currency>"
	}
}
