package pow_test

import (
	"crypto/sha1"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crackerlabs/go-cracker/pow"
)

func TestLeadingZeroBits(t *testing.T) {
	cases := []struct {
		digest []byte
		want   uint32
	}{
		{[]byte{0xFF, 0x00}, 0},
		{[]byte{0x80}, 0},
		{[]byte{0x40}, 1},
		{[]byte{0x0F}, 4},
		{[]byte{0x01}, 7},
		{[]byte{0x00, 0xFF}, 8},
		{[]byte{0x00, 0x0F, 0xFF}, 12},
		{make([]byte, sha1.Size), 160},
		{nil, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pow.LeadingZeroBits(c.digest), "digest %x", c.digest)
	}
}

func TestQualifies(t *testing.T) {
	digest := []byte{0x00, 0x0F, 0xFF} // 12 leading zero bits
	assert.True(t, pow.Qualifies(digest, 0))
	assert.True(t, pow.Qualifies(digest, 3))
	assert.False(t, pow.Qualifies(digest, 4))
}

func TestHashMatchesSha1(t *testing.T) {
	want := sha1.Sum([]byte("aaaaXY"))
	assert.Equal(t, want[:], pow.Hash([]byte("aaaa"), []byte("XY")))
}

func TestHashIdempotent(t *testing.T) {
	message := []byte("the same message twice")
	first := pow.Hash(message)
	second := pow.Hash(message)
	assert.Equal(t, first, second)
	assert.Equal(t, pow.LeadingZeroBits(first), pow.LeadingZeroBits(second))
}
