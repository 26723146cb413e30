package suffix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crackerlabs/go-cracker/suffix"
)

func TestAppend(t *testing.T) {
	cases := []struct {
		value   uint64
		encoded []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x00, 0x01}},
		{28370, []byte{0x52, 0x5D, 0x01}},
	}
	for _, c := range cases {
		out, ok := suffix.Append(nil, c.value)
		require.True(t, ok, "value %d", c.value)
		assert.Equal(t, c.encoded, out, "value %d", c.value)
	}
}

func TestAppendKeepsPrefix(t *testing.T) {
	buf := append(make([]byte, 0, 16), 'a', 'b')
	out, ok := suffix.Append(buf, 28370)
	require.True(t, ok)
	assert.Equal(t, []byte{'a', 'b', 0x52, 0x5D, 0x01}, out)
}

func TestAppendDisallowed(t *testing.T) {
	// tab, newline, carriage return, space as the only digit
	for _, value := range []uint64{9, 10, 13, 32} {
		out, ok := suffix.Append([]byte{'x'}, value)
		assert.False(t, ok, "value %d", value)
		assert.Equal(t, []byte{'x'}, out, "dst must stay unextended")
	}
	// disallowed byte in a higher digit: 9<<7|1 encodes as [0x01, 0x09]
	_, ok := suffix.Append(nil, 9<<7|1)
	assert.False(t, ok)
}

func TestDecodeRoundtrip(t *testing.T) {
	for value := uint64(0); value < 50000; value++ {
		out, ok := suffix.Append(nil, value)
		if !ok {
			continue
		}
		assert.Equal(t, value, suffix.Decode(out))
	}
}

func TestAppendBigMatchesAppend(t *testing.T) {
	for _, value := range []uint64{0, 1, 127, 128, 28370, 1<<63 - 1} {
		want, wantOK := suffix.Append(nil, value)
		got, gotOK := suffix.AppendBig(nil, new(big.Int).SetUint64(value))
		assert.Equal(t, wantOK, gotOK, "value %d", value)
		assert.Equal(t, want, got, "value %d", value)
	}
}

func TestAppendBigBeyondUint64(t *testing.T) {
	value := new(big.Int).Lsh(big.NewInt(1), 70) // 128^10
	out, ok := suffix.AppendBig(nil, value)
	require.True(t, ok)
	assert.Equal(t, 11, len(out))
	assert.Equal(t, 0, suffix.DecodeBig(out).Cmp(value))
}
