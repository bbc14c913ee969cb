package goregistration

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const activationTokenBytes = 32

// generateActivationToken returns a hex-encoded string of 32
// cryptographically random bytes. Collisions across all accounts ever
// created are negligible at this length.
func generateActivationToken() (string, error) {
	b := make([]byte, activationTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
