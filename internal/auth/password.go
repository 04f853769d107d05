package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret hashes a short-lived secret, such as a verification code, before
// it is stored.
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("empty secret")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CompareSecret(hash, secret string) error {
	if hash == "" || secret == "" {
		return errors.New("missing hash or secret")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}
