package domain

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier turns a plaintext password into its stored form and
// checks a candidate against a stored value. Swapping the implementation
// changes how new passwords are stored without touching the account service.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// PlaintextCredentials stores passwords verbatim and compares them with
// string equality. This mirrors the demo storefront's behavior and is the
// default; it is not suitable for real accounts.
type PlaintextCredentials struct{}

// Hash returns the password unchanged.
func (PlaintextCredentials) Hash(password string) (string, error) {
	return password, nil
}

// Verify compares the stored value with the candidate.
func (PlaintextCredentials) Verify(stored, password string) bool {
	return stored == password
}

// BcryptCredentials stores passwords as bcrypt hashes.
type BcryptCredentials struct {
	// Cost overrides the bcrypt work factor when positive.
	Cost int
}

// Hash derives a bcrypt hash of the password.
func (b BcryptCredentials) Hash(password string) (string, error) {
	cost := b.Cost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify checks the candidate against the stored hash.
func (BcryptCredentials) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
