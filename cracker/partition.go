package cracker

import "math/big"

// Range is one worker's half-open slice [Lower, Upper) of the candidate
// space. Ranges never overlap and are fixed for the worker's lifetime.
type Range struct {
	Lower *big.Int
	Upper *big.Int
}

// Partition splits [0, maxValue) into n contiguous ranges of size
// floor(maxValue/n) each. The division remainder goes to the last range,
// whose upper limit is exactly maxValue, so the union of all ranges
// covers the space with no gap.
func Partition(maxValue *big.Int, n uint32) []Range {
	size := new(big.Int).Div(maxValue, big.NewInt(int64(n)))
	ranges := make([]Range, n)
	for i := range ranges {
		lower := new(big.Int).Mul(size, big.NewInt(int64(i)))
		upper := new(big.Int).Add(lower, size)
		if i == len(ranges)-1 {
			upper = new(big.Int).Set(maxValue)
		}
		ranges[i] = Range{Lower: lower, Upper: upper}
	}
	return ranges
}
