package auth

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"
	"time"
)

const (
	VerificationTokenLength = 6
	VerificationTokenTTL    = 15 * time.Minute
)

var digitCount = big.NewInt(10)

// GenerateVerificationToken returns a numeric one-time code. Every digit is
// drawn independently and uniformly from crypto/rand.
func GenerateVerificationToken() (string, error) {
	return generateToken(rand.Reader)
}

func generateToken(src io.Reader) (string, error) {
	var b strings.Builder
	b.Grow(VerificationTokenLength)
	for i := 0; i < VerificationTokenLength; i++ {
		n, err := rand.Int(src, digitCount)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

// IsVerificationToken reports whether s has the shape of a generated code.
func IsVerificationToken(s string) bool {
	if len(s) != VerificationTokenLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
