package suffix

import "math/big"

// Candidates are enumerated as non-negative integers and written out in
// base 128, least significant digit first. Every digit keeps its top bit
// clear, so an encoded suffix appended to any UTF-8 string yields valid
// UTF-8 again.
//
// For example 28370 = 0b110111011010010 splits into the 7-bit chunks
// [0x01, 0x5D, 0x52] and encodes as [0x52, 0x5D, 0x01].

const (
	// Base is the radix of the candidate encoding.
	Base = 128

	// DigitBits is the number of entropy bits one encoded byte carries.
	DigitBits = 7

	digitMask = Base - 1
)

// Disallowed reports whether b is one of the whitespace bytes a suffix
// must never contain: tab, newline, carriage return, space.
func Disallowed(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r' || b == ' '
}

// Append writes the encoding of value after dst and returns the extended
// slice. Value 0 encodes as a single zero digit. ok is false when a digit
// lands on a disallowed byte; the candidate is then skipped entirely and
// dst is returned unextended.
func Append(dst []byte, value uint64) (out []byte, ok bool) {
	orig := len(dst)
	for {
		digit := byte(value & digitMask)
		if Disallowed(digit) {
			return dst[:orig], false
		}
		dst = append(dst, digit)
		value >>= DigitBits
		if value == 0 {
			return dst, true
		}
	}
}

// AppendBig is Append for values outside the uint64 range.
func AppendBig(dst []byte, value *big.Int) ([]byte, bool) {
	if value.IsUint64() {
		return Append(dst, value.Uint64())
	}
	orig := len(dst)
	v := new(big.Int).Set(value)
	for {
		digit := byte(v.Bits()[0]) & digitMask
		if Disallowed(digit) {
			return dst[:orig], false
		}
		dst = append(dst, digit)
		v.Rsh(v, DigitBits)
		if v.Sign() == 0 {
			return dst, true
		}
	}
}

// Decode recovers the integer a suffix encodes. It is the inverse of
// Append for every candidate Append accepts.
func Decode(encoded []byte) uint64 {
	var value uint64
	for i := len(encoded) - 1; i >= 0; i-- {
		value = value<<DigitBits | uint64(encoded[i]&digitMask)
	}
	return value
}

// DecodeBig is Decode without the uint64 length bound.
func DecodeBig(encoded []byte) *big.Int {
	value := new(big.Int)
	for i := len(encoded) - 1; i >= 0; i-- {
		value.Lsh(value, DigitBits)
		value.Or(value, big.NewInt(int64(encoded[i]&digitMask)))
	}
	return value
}
