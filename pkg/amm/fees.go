package amm

import (
	"github.com/devxmone/brownfi-hackathon/pkg/sdkcore"
)

// Price impact warning tiers.
var (
	PriceImpactLow     = sdkcore.PercentFromBips(100)
	PriceImpactMedium  = sdkcore.PercentFromBips(300)
	PriceImpactHigh    = sdkcore.PercentFromBips(500)
	PriceImpactBlocked = sdkcore.PercentFromBips(1500)

	// BetterTradeLessHopsThreshold is how much better a longer route must be
	// before it is preferred over a shorter one.
	BetterTradeLessHopsThreshold = sdkcore.PercentFromBips(50)

	// DefaultSlippage is the tolerance applied when none is given.
	DefaultSlippage = sdkcore.PercentFromBips(50)
)

// Severity grades a price impact for display.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityBlocked
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityBlocked:
		return "blocked"
	default:
		return "none"
	}
}

// WarningSeverity maps a price impact onto the warning tiers.
func WarningSeverity(impact sdkcore.Percent) Severity {
	switch {
	case !impact.LessThan(PriceImpactBlocked.Fraction):
		return SeverityBlocked
	case !impact.LessThan(PriceImpactHigh.Fraction):
		return SeverityHigh
	case !impact.LessThan(PriceImpactMedium.Fraction):
		return SeverityMedium
	case !impact.LessThan(PriceImpactLow.Fraction):
		return SeverityLow
	default:
		return SeverityNone
	}
}

// RealizedLPFee is the share of the input paid to liquidity providers over
// every hop, 1 - fee^hops, and that share as an input amount.
func RealizedLPFee(t Trade) (sdkcore.Percent, sdkcore.CurrencyAmount) {
	kept := sdkcore.OneHundredPercent().Fraction
	for _, p := range t.route.pairs {
		kept = kept.Mul(p.Config().feeFraction())
	}
	fee := sdkcore.PercentFromFraction(sdkcore.OneHundredPercent().Fraction.Sub(kept))
	return fee, t.inputAmount.MulPercent(fee)
}

// PriceImpactWithoutFee is the trade's price impact less the LP fee, the part
// caused by moving the reserves.
func PriceImpactWithoutFee(t Trade) sdkcore.Percent {
	fee, _ := RealizedLPFee(t)
	return t.priceImpact.Sub(fee)
}
