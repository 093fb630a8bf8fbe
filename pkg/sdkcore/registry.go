package sdkcore

import "fmt"

// ChainCurrencies pairs a chain's native currency with its canonical wrapped
// token.
type ChainCurrencies struct {
	Native  Native
	Wrapped Token
}

// Wrap returns c itself for a token on this chain and the wrapped token for
// the native currency.
func (cc ChainCurrencies) Wrap(c Currency) (Token, error) {
	switch c.Kind() {
	case KindToken:
		if c.ChainID() != cc.Wrapped.chainID {
			return Token{}, ErrChainMismatch
		}
		return c.token, nil
	case KindNative:
		if c.ChainID() != cc.Wrapped.chainID {
			return Token{}, fmt.Errorf("%w: chain %d", ErrNoWrappedToken, c.ChainID())
		}
		return cc.Wrapped, nil
	default:
		return Token{}, ErrCurrencyMismatch
	}
}

// Unwrap maps the wrapped token back to the native currency.
func (cc ChainCurrencies) Unwrap(t Token) Currency {
	if t.Equal(cc.Wrapped) {
		return cc.Native.Currency()
	}
	return t.Currency()
}

// WrapAmount re-tags a native amount with the wrapped token.
func (cc ChainCurrencies) WrapAmount(a CurrencyAmount) (CurrencyAmount, error) {
	t, err := cc.Wrap(a.currency)
	if err != nil {
		return CurrencyAmount{}, err
	}
	return CurrencyAmount{currency: t.Currency(), frac: a.frac}, nil
}

// Registry resolves per-chain native and wrapped currencies. It is built once
// at startup and never mutated, so it is safe for concurrent use.
type Registry struct {
	chains map[uint64]ChainCurrencies
}

// NewRegistry indexes the given chains by the wrapped token's chain id.
func NewRegistry(chains ...ChainCurrencies) (*Registry, error) {
	r := &Registry{chains: make(map[uint64]ChainCurrencies, len(chains))}
	for _, cc := range chains {
		if cc.Native.chainID != cc.Wrapped.chainID {
			return nil, fmt.Errorf("native %d / wrapped %d: %w", cc.Native.chainID, cc.Wrapped.chainID, ErrChainMismatch)
		}
		r.chains[cc.Wrapped.chainID] = cc
	}
	return r, nil
}

// Chain returns the currencies registered for chainID.
func (r *Registry) Chain(chainID uint64) (ChainCurrencies, error) {
	cc, ok := r.chains[chainID]
	if !ok {
		return ChainCurrencies{}, fmt.Errorf("%w: chain %d", ErrNoWrappedToken, chainID)
	}
	return cc, nil
}

// Native returns the native currency of chainID.
func (r *Registry) Native(chainID uint64) (Currency, error) {
	cc, err := r.Chain(chainID)
	if err != nil {
		return Currency{}, err
	}
	return cc.Native.Currency(), nil
}

// Wrap resolves c to a token on its own chain.
func (r *Registry) Wrap(c Currency) (Token, error) {
	if t, ok := c.Token(); ok {
		return t, nil
	}
	cc, err := r.Chain(c.ChainID())
	if err != nil {
		return Token{}, err
	}
	return cc.Wrap(c)
}

// Unwrap maps a registered wrapped token to its native currency.
func (r *Registry) Unwrap(t Token) Currency {
	cc, ok := r.chains[t.chainID]
	if !ok {
		return t.Currency()
	}
	return cc.Unwrap(t)
}

// WrapAmount re-tags a native amount with its wrapped token.
func (r *Registry) WrapAmount(a CurrencyAmount) (CurrencyAmount, error) {
	t, err := r.Wrap(a.currency)
	if err != nil {
		return CurrencyAmount{}, err
	}
	return CurrencyAmount{currency: t.Currency(), frac: a.frac}, nil
}
