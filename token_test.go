package goregistration

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateActivationToken_ReturnsHexOf32Bytes(t *testing.T) {
	token, err := generateActivationToken()

	assert.Nil(t, err)
	assert.Len(t, token, 64)

	b, err := hex.DecodeString(token)
	assert.Nil(t, err)
	assert.Len(t, b, 32)
}

func TestGenerateActivationToken_NeverRepeats(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		token, err := generateActivationToken()
		assert.Nil(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
