package auth

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by Compare when the password is wrong.
var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordHasher hashes passwords with bcrypt at a fixed work factor.
type PasswordHasher struct {
	cost int

	dummyOnce sync.Once
	dummy     string
}

// NewPasswordHasher creates a hasher. Tests pass bcrypt.MinCost to stay fast.
func NewPasswordHasher(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare checks password against hash.
func (h *PasswordHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}

// DummyHash returns a valid hash at the hasher's cost that matches no real
// password. Login compares against it for unknown usernames so both paths
// spend the same bcrypt time.
func (h *PasswordHasher) DummyHash() string {
	h.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("lawdesk-unknown-account"), h.cost)
		if err == nil {
			h.dummy = string(hash)
		}
	})
	return h.dummy
}
