package pow

import (
	"crypto/sha1"
	"math/bits"
)

// Difficulty is expressed in leading zero hex digits of the digest, four
// bits each.
const BitsPerHexDigit = 4

// Hash returns the SHA-1 digest over the concatenation of data.
func Hash(data ...[]byte) []byte {
	d := sha1.New()
	for _, item := range data {
		d.Write(item)
	}
	return d.Sum(nil)
}

// LeadingZeroBits counts consecutive zero bits starting at the most
// significant bit of digest.
func LeadingZeroBits(digest []byte) uint32 {
	var count uint32
	for _, b := range digest {
		if b == 0 {
			count += 8
			continue
		}
		count += uint32(bits.LeadingZeros8(b))
		break
	}
	return count
}

// Qualifies reports whether digest carries at least difficulty leading
// zero hex digits.
func Qualifies(digest []byte, difficulty uint32) bool {
	return LeadingZeroBits(digest) >= difficulty*BitsPerHexDigit
}
