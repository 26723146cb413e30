package cracker_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crackerlabs/go-cracker/cracker"
)

func TestPartitionCoversSpace(t *testing.T) {
	maxValues := []*big.Int{
		big.NewInt(1),
		big.NewInt(7),
		big.NewInt(1000),
		new(big.Int).Lsh(big.NewInt(1), 70), // beyond uint64
	}
	for _, maxValue := range maxValues {
		for _, n := range []uint32{1, 3, 7, 16} {
			ranges := cracker.Partition(maxValue, n)
			require.Len(t, ranges, int(n))
			require.Zero(t, ranges[0].Lower.Sign(), "first range must start at 0")
			for i := 0; i < len(ranges)-1; i++ {
				require.Equal(t, 0, ranges[i].Upper.Cmp(ranges[i+1].Lower),
					"maxValue=%v n=%d: gap or overlap after range %d", maxValue, n, i)
			}
			for i, rng := range ranges {
				require.True(t, rng.Lower.Cmp(rng.Upper) <= 0,
					"maxValue=%v n=%d: inverted range %d", maxValue, n, i)
			}
			last := ranges[len(ranges)-1]
			require.Equal(t, 0, last.Upper.Cmp(maxValue),
				"maxValue=%v n=%d: last range must end at maxValue", maxValue, n)
		}
	}
}

func TestPartitionRemainderGoesLast(t *testing.T) {
	ranges := cracker.Partition(big.NewInt(10), 3)
	size := func(r cracker.Range) int64 {
		return new(big.Int).Sub(r.Upper, r.Lower).Int64()
	}
	require.Equal(t, int64(3), size(ranges[0]))
	require.Equal(t, int64(3), size(ranges[1]))
	require.Equal(t, int64(4), size(ranges[2]))
}
