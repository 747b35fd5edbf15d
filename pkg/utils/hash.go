package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SumSHA256 returns the hex-encoded SHA-256 checksum of the provided data.
// Used to fingerprint uploaded contract documents.
func SumSHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
