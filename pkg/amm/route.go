package amm

import (
	"fmt"
	"strings"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

// Route is a connected sequence of pairs from input to output. Input and
// output may be native; the path holds their wrapped tokens.
type Route struct {
	pairs  []Pair
	path   []sdkcore.Token
	input  sdkcore.Currency
	output sdkcore.Currency
}

// NewRoute validates that pairs walk from input to output, each hop leaving
// through the token it did not enter by.
func NewRoute(pairs []Pair, input, output sdkcore.Currency) (Route, error) {
	if len(pairs) == 0 {
		return Route{}, ErrEmptyRoute
	}
	cfg := pairs[0].Config()
	chainID := pairs[0].ChainID()
	for _, p := range pairs[1:] {
		if p.ChainID() != chainID {
			return Route{}, fmt.Errorf("route pair %s on chain %d, want %d: %w", p, p.ChainID(), chainID, sdkcore.ErrChainMismatch)
		}
	}

	wrappedIn, err := cfg.Wrap(input)
	if err != nil {
		return Route{}, fmt.Errorf("route input: %w", err)
	}
	wrappedOut, err := cfg.Wrap(output)
	if err != nil {
		return Route{}, fmt.Errorf("route output: %w", err)
	}
	if !pairs[0].InvolvesToken(wrappedIn) {
		return Route{}, fmt.Errorf("%w: input %s not in %s", ErrCurrencyNotInRoute, input, pairs[0])
	}
	if last := pairs[len(pairs)-1]; !last.InvolvesToken(wrappedOut) {
		return Route{}, fmt.Errorf("%w: output %s not in %s", ErrCurrencyNotInRoute, output, last)
	}

	path := make([]sdkcore.Token, 0, len(pairs)+1)
	path = append(path, wrappedIn)
	for i, p := range pairs {
		if i > 0 && sharesBothTokens(pairs[i-1], p) {
			return Route{}, fmt.Errorf("%w: hops %d and %d both trade %s", ErrDisconnectedRoute, i-1, i, p)
		}
		next, err := p.Other(path[i])
		if err != nil {
			return Route{}, fmt.Errorf("%w: hop %d %s does not trade %s", ErrDisconnectedRoute, i, p, path[i])
		}
		path = append(path, next)
	}
	if !path[len(path)-1].Equal(wrappedOut) {
		return Route{}, fmt.Errorf("%w: route ends at %s, not %s", ErrCurrencyNotInRoute, path[len(path)-1], output)
	}

	return Route{pairs: pairs, path: path, input: input, output: output}, nil
}

func sharesBothTokens(a, b Pair) bool {
	return a.Token0().Equal(b.Token0()) && a.Token1().Equal(b.Token1())
}

func (r Route) Pairs() []Pair            { return r.pairs }
func (r Route) Path() []sdkcore.Token    { return r.path }
func (r Route) Input() sdkcore.Currency  { return r.input }
func (r Route) Output() sdkcore.Currency { return r.output }
func (r Route) Hops() int                { return len(r.pairs) }

// ChainID is zero for the zero Route.
func (r Route) ChainID() uint64 {
	if len(r.pairs) == 0 {
		return 0
	}
	return r.pairs[0].ChainID()
}

// MidPrice is the product of the spot prices along the path, expressed as
// output per input.
func (r Route) MidPrice() (sdkcore.Price, error) {
	var acc sdkcore.Price
	for i, p := range r.pairs {
		hop, err := p.PriceOf(r.path[i])
		if err != nil {
			return sdkcore.Price{}, fmt.Errorf("mid price hop %d: %w", i, err)
		}
		if i == 0 {
			acc = hop
			continue
		}
		if acc, err = acc.Mul(hop); err != nil {
			return sdkcore.Price{}, err
		}
	}
	raw := acc.Raw()
	return sdkcore.NewPrice(r.input, r.output, raw.Denominator(), raw.Numerator())
}

func (r Route) String() string {
	symbols := make([]string, len(r.path))
	for i, t := range r.path {
		symbols[i] = t.String()
	}
	return strings.Join(symbols, " > ")
}
