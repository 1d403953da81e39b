package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Bytes returns the hex digest of data. Book files are read once and
// hashed from memory so the digest always matches the decoded content.
func SHA256Bytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
