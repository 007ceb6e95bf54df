package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// MaxIdempotencyKeyLength is the longest idempotency key the gate accepts.
const MaxIdempotencyKeyLength = 255

// GenerateIdempotencyKey returns a fresh random 128-bit key, hex-encoded,
// for callers that omit one on Initiate.
func GenerateIdempotencyKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
