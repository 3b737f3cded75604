package random

import (
	"crypto/rand"
	"math/big"
)

// IDAlphabet is the character set used for generated record identifiers
// (lowercase alphanumerics, matching the wire format of existing IDs)
const IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Random provides random string generation that can be mocked for testing
type Random interface {
	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand should never fail; fall back to the first character
			result[i] = alphabet[0]
			continue
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result)
}
