// Package mobile exposes the suffix search through binding-friendly
// signatures: plain ints and strings, the empty string standing in for
// an absent result.
package mobile

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/crackerlabs/go-cracker/cracker"
	"github.com/crackerlabs/go-cracker/pow"
)

// GenerateValidString returns a suffix such that SHA-1(baseString+suffix)
// has at least nbZeros leading zero hex digits, searching with nbThreads
// parallel workers. An exhausted search returns the empty string.
func GenerateValidString(baseString string, nbZeros, nbThreads int) (string, error) {
	if nbZeros < 0 {
		return "", errors.New("mobile: nbZeros must not be negative")
	}
	if nbThreads < 1 {
		return "", errors.New("mobile: nbThreads must be at least 1")
	}
	suffix, found, err := cracker.GenerateValidString(baseString, uint32(nbZeros), uint32(nbThreads))
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return suffix, nil
}

// Sha1Hex returns the hex SHA-1 digest of data, for callers verifying a
// generated string on their side of the boundary.
func Sha1Hex(data string) string {
	return hex.EncodeToString(pow.Hash([]byte(data)))
}
