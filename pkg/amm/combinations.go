package amm

import (
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

// AllCurrencyCombinations lists the token pairs worth loading to route
// between tokenA and tokenB: the direct pair, each side against every base,
// and every base against every other base. Same-token and repeated pairs
// are dropped.
func AllCurrencyCombinations(tokenA, tokenB sdkcore.Token, bases []sdkcore.Token) [][2]sdkcore.Token {
	candidates := make([][2]sdkcore.Token, 0, 1+2*len(bases)+len(bases)*len(bases))
	candidates = append(candidates, [2]sdkcore.Token{tokenA, tokenB})
	for _, base := range bases {
		candidates = append(candidates, [2]sdkcore.Token{tokenA, base})
	}
	for _, base := range bases {
		candidates = append(candidates, [2]sdkcore.Token{tokenB, base})
	}
	for _, base := range bases {
		for _, other := range bases {
			candidates = append(candidates, [2]sdkcore.Token{base, other})
		}
	}

	type key struct{ lo, hi [20]byte }
	seen := make(map[key]struct{}, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		t0, t1, err := SortTokens(c[0], c[1])
		if err != nil {
			// identical or cross-chain
			continue
		}
		k := key{t0.Address(), t1.Address()}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
