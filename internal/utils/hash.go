package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded.
//
// The idempotency middleware uses it to fingerprint request bodies so a key
// reused with a different payload can be told apart from a genuine retry.
//
// Example usage:
//
//	fingerprint := utils.HashString(string(body), idempotencyKey)
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
