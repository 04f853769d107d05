package auth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationTokenShape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		token, err := GenerateVerificationToken()
		require.NoError(t, err)
		require.Len(t, token, VerificationTokenLength)
		require.True(t, IsVerificationToken(token), "token %q", token)
	}
}

func TestGenerateVerificationTokenDistribution(t *testing.T) {
	const samples = 10000
	var counts [10]int
	for i := 0; i < samples; i++ {
		token, err := GenerateVerificationToken()
		require.NoError(t, err)
		for _, c := range token {
			counts[c-'0']++
		}
	}

	total := samples * VerificationTokenLength
	expected := float64(total) / 10
	for digit, n := range counts {
		deviation := (float64(n) - expected) / expected
		assert.InDelta(t, 0, deviation, 0.1, "digit %d appeared %d times", digit, n)
	}
}

func TestGenerateTokenPropagatesReaderError(t *testing.T) {
	_, err := generateToken(bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestIsVerificationToken(t *testing.T) {
	assert.True(t, IsVerificationToken("012345"))
	assert.False(t, IsVerificationToken("12345"))
	assert.False(t, IsVerificationToken("12a456"))
	assert.False(t, IsVerificationToken("1234567"))
}
