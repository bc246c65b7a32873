package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash using the given cost.  Used by the
// ops tooling to generate ADMIN_PASSWORD_HASH values.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash against a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// SecretsEqual compares two shared secrets in constant time so the login
// endpoint does not leak match length or position through timing.
func SecretsEqual(input, secret string) bool {
	if input == "" || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(input), []byte(secret)) == 1
}
