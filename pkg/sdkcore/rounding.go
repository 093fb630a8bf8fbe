package sdkcore

import "math/big"

// Rounding selects how a quotient is rounded when rendered to a fixed number
// of digits.
type Rounding int

const (
	// RoundDown truncates toward zero.
	RoundDown Rounding = iota
	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp
	// RoundUp rounds away from zero.
	RoundUp
)

func (r Rounding) String() string {
	switch r {
	case RoundDown:
		return "down"
	case RoundHalfUp:
		return "half_up"
	case RoundUp:
		return "up"
	default:
		return "unknown"
	}
}

// divRound returns num/den rounded with mode. den must be non-zero.
func divRound(num, den *big.Int, mode Rounding) *big.Int {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	// sign of the exact quotient
	neg := (num.Sign() < 0) != (den.Sign() < 0)
	away := false
	switch mode {
	case RoundUp:
		away = true
	case RoundHalfUp:
		twice := new(big.Int).Abs(r)
		twice.Lsh(twice, 1)
		away = twice.Cmp(new(big.Int).Abs(den)) >= 0
	}
	if !away {
		return q
	}
	if neg {
		return q.Sub(q, big.NewInt(1))
	}
	return q.Add(q, big.NewInt(1))
}
