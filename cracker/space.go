package cracker

import (
	"math/big"

	"github.com/crackerlabs/go-cracker/pow"
	"github.com/crackerlabs/go-cracker/suffix"
)

// Candidate-space derivation. Assuming SHA-1 digests are uniformly
// distributed, one expects 16^difficulty trials before a qualifying
// digest appears, and a suffix of n base-128 digits covers 128^n
// candidates. The space is sized to hold at least that many trials.

// MaxPadding returns the smallest digit count n with
// 128^n >= 16^difficulty.
func MaxPadding(difficulty uint32) uint32 {
	// 128^n >= 16^d  <=>  7n >= 4d
	return (difficulty*pow.BitsPerHexDigit + suffix.DigitBits - 1) / suffix.DigitBits
}

// MaxValue returns 128^MaxPadding(difficulty), the exclusive upper bound
// of the candidate space.
func MaxValue(difficulty uint32) *big.Int {
	return new(big.Int).Exp(
		big.NewInt(suffix.Base),
		big.NewInt(int64(MaxPadding(difficulty))),
		nil,
	)
}
