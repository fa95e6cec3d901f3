// internal/auth/secret.go
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// SecretScheme seals a secret for storage and verifies login attempts
// against the sealed form. The store never sees how a secret is
// represented at rest.
type SecretScheme interface {
	Seal(secret string) (string, error)
	Verify(secret, sealed string) bool
}

// PlaintextScheme stores secrets verbatim and compares by equality.
// It exists for behavioral parity with the predefined demo operators,
// not as a recommendation.
type PlaintextScheme struct{}

func (PlaintextScheme) Seal(secret string) (string, error) { return secret, nil }

func (PlaintextScheme) Verify(secret, sealed string) bool { return secret == sealed }

// Argon2Scheme seals secrets as salted Argon2id hashes, encoded as
// base64(salt)$base64(hash).
type Argon2Scheme struct{}

func (Argon2Scheme) Seal(secret string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(secret), salt, 1, 64*1024, 4, 32)

	return base64.StdEncoding.EncodeToString(salt) + "$" + base64.StdEncoding.EncodeToString(hash), nil
}

func (Argon2Scheme) Verify(secret, sealed string) bool {
	encodedSalt, encodedHash, ok := strings.Cut(sealed, "$")
	if !ok {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(encodedSalt)
	if err != nil {
		return false
	}
	hash, err := base64.StdEncoding.DecodeString(encodedHash)
	if err != nil {
		return false
	}

	comparison := argon2.IDKey([]byte(secret), salt, 1, 64*1024, 4, 32)

	return string(hash) == string(comparison)
}
