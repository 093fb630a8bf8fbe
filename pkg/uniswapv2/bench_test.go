package uniswapv2

import (
	"math/big"
	"testing"
)

// BenchmarkFormulas checks both swap formulas stay allocation free when the
// caller provides the temporaries.
func BenchmarkFormulas(b *testing.B) {
	rIn := new(big.Int).SetUint64(13_451_234_567_890)
	rOut := new(big.Int).SetUint64(98_765_432_109_876)
	amount := new(big.Int).SetUint64(1_000_000)
	fee := DefaultFee()

	for _, bc := range []struct {
		name string
		fn   func(dst, t1, t2, amount, rIn, rOut *big.Int, fee Fee) *big.Int
	}{
		{"AmountOut", GetAmountOut},
		{"AmountIn", GetAmountIn},
	} {
		b.Run(bc.name, func(b *testing.B) {
			dst, t1, t2 := new(big.Int), new(big.Int), new(big.Int)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = bc.fn(dst, t1, t2, amount, rIn, rOut, fee)
			}
		})
	}
}
