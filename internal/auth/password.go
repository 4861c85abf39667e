// Package auth covers admin credential checks and the session cookie.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashPrefix     = "pbkdf2_sha256"
	hashIterations = 260_000
	saltLen        = 16
	keyLen         = 32
)

// HashPassword derives a salted PBKDF2-SHA256 hash in the
// pbkdf2_sha256$iterations$salt$hash format.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("auth: generate salt: %w", err)
	}
	dk := pbkdf2.Key([]byte(password), salt, hashIterations, keyLen, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s",
		hashPrefix,
		hashIterations,
		base64.RawURLEncoding.EncodeToString(salt),
		base64.RawURLEncoding.EncodeToString(dk),
	), nil
}

// VerifyPassword checks password against a stored credential. The stored
// value is either a pbkdf2_sha256 hash or, for development setups, the
// plaintext password itself. Comparison is constant time either way.
func VerifyPassword(password, stored string) bool {
	if stored == "" {
		return false
	}
	if !strings.HasPrefix(stored, hashPrefix+"$") {
		return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
	}

	parts := strings.Split(stored, "$")
	if len(parts) != 4 || parts[0] != hashPrefix {
		return false
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations < 1 {
		return false
	}
	salt, err := decodeB64(parts[2])
	if err != nil {
		return false
	}
	expected, err := decodeB64(parts[3])
	if err != nil {
		return false
	}

	dk := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(dk, expected) == 1
}

// decodeB64 accepts URL-safe base64 with or without padding.
func decodeB64(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
