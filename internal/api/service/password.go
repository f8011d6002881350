package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// PasswordHasher derives a salted hash from a plaintext password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher using bcrypt at the given cost.
func NewBcryptHasher(cost int) PasswordHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
