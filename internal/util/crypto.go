package util

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"strings"
)

var tokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// CryptoRandomBytes generates cryptographically secure random bytes
func CryptoRandomBytes(length int64) ([]byte, error) {
	buf := make([]byte, length)
	_, err := rand.Read(buf)
	return buf, err
}

// RandomToken returns a lower-case base32 string carrying at least bits
// bits of randomness. 130 bits encode to 26 characters.
func RandomToken(bits int) (string, error) {
	chars := (bits + 4) / 5
	buf, err := CryptoRandomBytes(int64((chars*5 + 7) / 8))
	if err != nil {
		return "", err
	}
	return strings.ToLower(tokenEncoding.EncodeToString(buf))[:chars], nil
}

// SHA256Hex returns the SHA-256 hash of s as a lowercase hex string.
// Intended for use with high-entropy, unguessable values (e.g., randomly
// generated tokens); for such inputs, a salt is not required for security.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
