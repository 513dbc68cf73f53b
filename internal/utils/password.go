package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies login secrets with bcrypt.
type PasswordHasher struct {
	cost int
	// dummy is compared against when no account exists so that the
	// not-found path spends the same time as a wrong password.
	dummy []byte
}

// NewPasswordHasher creates a hasher with the given bcrypt cost.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("recipebook-dummy-secret"), cost)
	if err != nil {
		return nil, err
	}
	return &PasswordHasher{cost: cost, dummy: dummy}, nil
}

// Hash returns the salted bcrypt hash of secret.
func (h *PasswordHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether secret matches hash.
func (h *PasswordHasher) Verify(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// VerifyDummy burns one comparison and always reports false.
func (h *PasswordHasher) VerifyDummy(secret string) bool {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(secret))
	return false
}
