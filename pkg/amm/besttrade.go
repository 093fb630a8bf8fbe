package amm

import (
	"bytes"
	"errors"
	"slices"
	"sync"

	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

const (
	DefaultMaxNumResults = 3
	DefaultMaxHops       = 3
)

// BestTradeOptions bounds a best-trade search. Zero fields take defaults.
type BestTradeOptions struct {
	MaxNumResults int
	MaxHops       int
}

func (o BestTradeOptions) withDefaults() BestTradeOptions {
	if o.MaxNumResults <= 0 {
		o.MaxNumResults = DefaultMaxNumResults
	}
	if o.MaxHops <= 0 {
		o.MaxHops = DefaultMaxHops
	}
	return o
}

// frame is one partial path on the search stack. seen holds every token the
// path has touched, start included.
type frame struct {
	used   []int
	seen   []sdkcore.Token
	amount sdkcore.CurrencyAmount
}

func contains(used []int, i int) bool { return slices.Contains(used, i) }

func visited(seen []sdkcore.Token, t sdkcore.Token) bool {
	return slices.ContainsFunc(seen, t.Equal)
}

// search runs a depth first walk from every pair that can take the first
// hop. Each first hop is explored in its own goroutine; step advances a
// partial path through one more pair and reports whether it reached the
// target token.
type search struct {
	pairs   []Pair
	maxHops int
	target  sdkcore.Token
	step    func(p Pair, amount sdkcore.CurrencyAmount) (sdkcore.CurrencyAmount, error)
	finish  func(used []int) (Trade, error)

	mu     sync.Mutex
	trades []Trade
	err    error
}

func (s *search) run(start sdkcore.CurrencyAmount) {
	startToken, _ := start.Currency().Token()

	var wg sync.WaitGroup
	for i, p := range s.pairs {
		if !p.InvolvesToken(startToken) {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.explore(i, start)
		}(i)
	}
	wg.Wait()
}

func (s *search) explore(first int, start sdkcore.CurrencyAmount) {
	startToken, _ := start.Currency().Token()
	stack := []frame{{seen: []sdkcore.Token{startToken}, amount: start}}
	next := func(fr frame, i int) bool {
		amount, err := s.step(s.pairs[i], fr.amount)
		if err != nil {
			if !isPrunable(err) {
				s.fail(err)
				return false
			}
			return true
		}
		used := append(slices.Clone(fr.used), i)
		tok, _ := amount.Currency().Token()
		if tok.Equal(s.target) {
			t, err := s.finish(used)
			if err != nil {
				if !isPrunable(err) {
					s.fail(err)
					return false
				}
				return true
			}
			s.add(t)
			return true
		}
		if len(used) < s.maxHops {
			seen := append(slices.Clone(fr.seen), tok)
			stack = append(stack, frame{used: used, seen: seen, amount: amount})
		}
		return true
	}

	fr := stack[0]
	stack = stack[:0]
	if !next(fr, first) {
		return
	}
	for len(stack) > 0 {
		fr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tok, _ := fr.amount.Currency().Token()
		for i, p := range s.pairs {
			if contains(fr.used, i) || !p.InvolvesToken(tok) {
				continue
			}
			// paths are simple: only the target may close a loop
			if other, err := p.Other(tok); err != nil || (visited(fr.seen, other) && !other.Equal(s.target)) {
				continue
			}
			if !next(fr, i) {
				return
			}
		}
	}
}

func (s *search) add(t Trade) {
	s.mu.Lock()
	s.trades = append(s.trades, t)
	s.mu.Unlock()
}

func (s *search) fail(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

// BestTradeExactIn returns up to MaxNumResults trades selling amountIn for
// currencyOut, best first. Paths never visit a token twice. An empty result
// means no route exists within MaxHops.
func BestTradeExactIn(pairs []Pair, amountIn sdkcore.CurrencyAmount, currencyOut sdkcore.Currency, opts BestTradeOptions) ([]Trade, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	opts = opts.withDefaults()
	cfg := pairs[0].Config()
	start, err := cfg.WrapAmount(amountIn)
	if err != nil {
		return nil, err
	}
	target, err := cfg.Wrap(currencyOut)
	if err != nil {
		return nil, err
	}

	s := &search{
		pairs:   pairs,
		maxHops: opts.MaxHops,
		target:  target,
		step: func(p Pair, amount sdkcore.CurrencyAmount) (sdkcore.CurrencyAmount, error) {
			out, _, err := p.GetOutputAmount(amount)
			return out, err
		},
		finish: func(used []int) (Trade, error) {
			route, err := NewRoute(pick(pairs, used), amountIn.Currency(), currencyOut)
			if err != nil {
				return Trade{}, err
			}
			return ExactInputTrade(route, amountIn)
		},
	}
	s.run(start)
	if s.err != nil {
		return nil, s.err
	}
	return rank(s.trades, opts.MaxNumResults), nil
}

// BestTradeExactOut returns up to MaxNumResults trades buying amountOut with
// currencyIn, best first. The search walks backward from the output.
func BestTradeExactOut(pairs []Pair, currencyIn sdkcore.Currency, amountOut sdkcore.CurrencyAmount, opts BestTradeOptions) ([]Trade, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	opts = opts.withDefaults()
	cfg := pairs[0].Config()
	start, err := cfg.WrapAmount(amountOut)
	if err != nil {
		return nil, err
	}
	target, err := cfg.Wrap(currencyIn)
	if err != nil {
		return nil, err
	}

	s := &search{
		pairs:   pairs,
		maxHops: opts.MaxHops,
		target:  target,
		step: func(p Pair, amount sdkcore.CurrencyAmount) (sdkcore.CurrencyAmount, error) {
			in, _, err := p.GetInputAmount(amount)
			return in, err
		},
		finish: func(used []int) (Trade, error) {
			hops := pick(pairs, used)
			slices.Reverse(hops)
			route, err := NewRoute(hops, currencyIn, amountOut.Currency())
			if err != nil {
				return Trade{}, err
			}
			return ExactOutputTrade(route, amountOut)
		},
	}
	s.run(start)
	if s.err != nil {
		return nil, s.err
	}
	return rank(s.trades, opts.MaxNumResults), nil
}

// FindBestTradeExactIn is BestTradeExactIn narrowed to the single best trade.
func FindBestTradeExactIn(pairs []Pair, amountIn sdkcore.CurrencyAmount, currencyOut sdkcore.Currency, opts BestTradeOptions) (Trade, error) {
	trades, err := BestTradeExactIn(pairs, amountIn, currencyOut, opts)
	if err != nil {
		return Trade{}, err
	}
	if len(trades) == 0 {
		return Trade{}, ErrNoRouteFound
	}
	return trades[0], nil
}

// FindBestTradeExactOut is BestTradeExactOut narrowed to the single best trade.
func FindBestTradeExactOut(pairs []Pair, currencyIn sdkcore.Currency, amountOut sdkcore.CurrencyAmount, opts BestTradeOptions) (Trade, error) {
	trades, err := BestTradeExactOut(pairs, currencyIn, amountOut, opts)
	if err != nil {
		return Trade{}, err
	}
	if len(trades) == 0 {
		return Trade{}, ErrNoRouteFound
	}
	return trades[0], nil
}

func pick(pairs []Pair, used []int) []Pair {
	out := make([]Pair, len(used))
	for i, idx := range used {
		out[i] = pairs[idx]
	}
	return out
}

// rank orders trades by output desc, input asc, hops asc, price impact asc
// and finally by path so equal trades keep a stable order.
func rank(trades []Trade, limit int) []Trade {
	slices.SortFunc(trades, compareTrades)
	if len(trades) > limit {
		trades = trades[:limit]
	}
	return trades
}

func compareTrades(a, b Trade) int {
	if c := b.rawOut().Cmp(a.rawOut()); c != 0 {
		return c
	}
	if c := a.rawIn().Cmp(b.rawIn()); c != 0 {
		return c
	}
	if c := a.hops() - b.hops(); c != 0 {
		return c
	}
	if c := a.priceImpact.Cmp(b.priceImpact.Fraction); c != 0 {
		return c
	}
	return comparePaths(a.route.path, b.route.path)
}

func comparePaths(a, b []sdkcore.Token) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		aa, ba := a[i].Address(), b[i].Address()
		if c := bytes.Compare(aa[:], ba[:]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// PreferredTradeExactIn searches with every hop limit up to maxHops and only
// takes a longer route when it beats the shorter one by more than
// BetterTradeLessHopsThreshold.
func PreferredTradeExactIn(pairs []Pair, amountIn sdkcore.CurrencyAmount, currencyOut sdkcore.Currency, maxHops int) (Trade, error) {
	return preferFewerHops(maxHops, func(hops int) (Trade, error) {
		return FindBestTradeExactIn(pairs, amountIn, currencyOut, BestTradeOptions{MaxNumResults: 1, MaxHops: hops})
	})
}

// PreferredTradeExactOut is PreferredTradeExactIn for a fixed output.
func PreferredTradeExactOut(pairs []Pair, currencyIn sdkcore.Currency, amountOut sdkcore.CurrencyAmount, maxHops int) (Trade, error) {
	return preferFewerHops(maxHops, func(hops int) (Trade, error) {
		return FindBestTradeExactOut(pairs, currencyIn, amountOut, BestTradeOptions{MaxNumResults: 1, MaxHops: hops})
	})
}

func preferFewerHops(maxHops int, find func(hops int) (Trade, error)) (Trade, error) {
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	var best *Trade
	for hops := 1; hops <= maxHops; hops++ {
		t, err := find(hops)
		if errors.Is(err, ErrNoRouteFound) {
			continue
		}
		if err != nil {
			return Trade{}, err
		}
		better, err := IsTradeBetter(best, &t, BetterTradeLessHopsThreshold)
		if err != nil {
			return Trade{}, err
		}
		if better {
			best = &t
		}
	}
	if best == nil {
		return Trade{}, ErrNoRouteFound
	}
	return *best, nil
}
