package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost used for the configured demo password
const BcryptCost = 12

// maxPasswordBytes is the longest input bcrypt distinguishes
const maxPasswordBytes = 72

// ErrEmptyPassword is returned when no demo password is configured
var ErrEmptyPassword = errors.New("demo password is empty")

// DemoPassword is the single shared password every directory entry signs in
// with. Only its bcrypt hash is kept in memory.
type DemoPassword struct {
	hash []byte
}

// NewDemoPassword hashes plain with BcryptCost
func NewDemoPassword(plain string) (*DemoPassword, error) {
	return NewDemoPasswordWithCost(plain, BcryptCost)
}

// NewDemoPasswordWithCost hashes plain with the given bcrypt cost
func NewDemoPasswordWithCost(plain string, cost int) (*DemoPassword, error) {
	if plain == "" {
		return nil, ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	return &DemoPassword{hash: hash}, nil
}

// Matches reports whether candidate equals the demo password
func (p *DemoPassword) Matches(candidate string) bool {
	if p == nil || len(candidate) > maxPasswordBytes {
		return false
	}
	return CheckPassword(string(p.hash), candidate)
}

// HashPassword hashes a password with BcryptCost
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a bcrypt hash with a plain password
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
