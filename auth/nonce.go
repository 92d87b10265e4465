package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Sizes of the random material generated for a handshake.
const (
	nonceBytes     = 18
	scramSaltBytes = 16
)

// GenerateNonce returns a fresh base64-encoded nonce for one SCRAM
// handshake. Each side contributes one.
func GenerateNonce() (string, error) {
	b := make([]byte, nonceBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %v", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// GenerateSalt returns a fresh SCRAM password salt.
func GenerateSalt() ([]byte, error) {
	b := make([]byte, scramSaltBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %v", err)
	}
	return b, nil
}

// GenerateMD5Salt returns the 4-byte salt for an MD5 password challenge.
func GenerateMD5Salt() ([4]byte, error) {
	var salt [4]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return salt, fmt.Errorf("failed to generate salt: %v", err)
	}
	return salt, nil
}
