package utils

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"unicode/utf16"
)

const (
	fnvOffsetBasis uint32 = 0x811c9dc5
	fnvPrime       uint32 = 0x01000193

	// fragments are 9 to 12 base-36 digits long
	minFragment int64 = 2821109907456       // 36^8
	maxFragment int64 = 4738381338321616896 // 36^12
)

// GenerateID returns a random identifier of 18 to 24 lower-case base-36 characters.
// It is meant for UI keys only; collisions are unlikely but possible.
func GenerateID() string {
	return randomFragment() + randomFragment()
}

func randomFragment() string {
	return strconv.FormatInt(minFragment+rand.Int64N(maxFragment-minFragment), 36)
}

// Hash returns the 32 bit FNV-1a hash of the UTF-16 code units of text as 8 hex characters.
// Not suitable for security purposes.
func Hash(text string) string {
	h := fnvOffsetBasis
	for _, unit := range utf16.Encode([]rune(text)) {
		h ^= uint32(unit)
		h *= fnvPrime
	}
	return fmt.Sprintf("%08x", h)
}
