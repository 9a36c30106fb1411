// Package synth turns phone numbers into deterministic, realistic-looking
// profile records. A one-way hash of the validated number is the only
// entropy source: fixed hex slices of the digest drive every field, so no
// external service is ever contacted.
package synth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the lowercase hex SHA-256 of the phone number. It is the
// sole entropy source for field synthesis: identical numbers yield
// identical digests across runs and processes.
func Digest(number string) string {
	sum := sha256.Sum256([]byte(number))
	return hex.EncodeToString(sum[:])
}
