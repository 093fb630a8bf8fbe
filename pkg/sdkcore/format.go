package sdkcore

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatOptions controls optional presentation of rendered numbers.
type FormatOptions struct {
	// GroupSeparator is inserted between groups of three integer digits.
	GroupSeparator string
}

// Apply inserts the group separator into an already rendered number.
func (o FormatOptions) Apply(s string) string {
	if o.GroupSeparator == "" {
		return s
	}
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(o.GroupSeparator)
		}
		b.WriteRune(c)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

func toFixed(num, den *big.Int, places int, rounding Rounding) string {
	if places < 0 {
		places = 0
	}
	scaled := new(big.Int).Mul(num, pow10(places))
	q := divRound(scaled, den, rounding)
	return decimal.NewFromBigInt(q, int32(-places)).StringFixed(int32(places))
}

func toSignificant(num, den *big.Int, digits int, rounding Rounding) string {
	if digits < 1 {
		digits = 1
	}
	if num.Sign() == 0 {
		return "0"
	}
	e := magnitude(new(big.Int).Abs(num), new(big.Int).Abs(den))
	scale := digits - 1 - e
	var q *big.Int
	if scale >= 0 {
		q = divRound(new(big.Int).Mul(num, pow10(scale)), den, rounding)
	} else {
		q = divRound(num, new(big.Int).Mul(den, pow10(-scale)), rounding)
	}
	// String trims trailing zeros of the fractional part.
	return decimal.NewFromBigInt(q, int32(-scale)).String()
}

// magnitude returns floor(log10(a/b)) for positive a and b.
func magnitude(a, b *big.Int) int {
	ip := new(big.Int).Quo(a, b)
	if ip.Sign() > 0 {
		return len(ip.String()) - 1
	}
	// a < b: smallest k with a*10^k >= b
	k := len(b.String()) - len(a.String())
	if k < 1 {
		k = 1
	}
	t := new(big.Int).Mul(a, pow10(k))
	for t.Cmp(b) < 0 {
		t.Mul(t, ten)
		k++
	}
	for k > 1 {
		prev := new(big.Int).Mul(a, pow10(k-1))
		if prev.Cmp(b) < 0 {
			break
		}
		k--
	}
	return -k
}
