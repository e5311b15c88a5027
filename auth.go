package inventory

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier is the capability consumed by the login flow. The core
// has no dependency on it: there is exactly one shared inventory visible to
// any authenticated session.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentials verifies against an in-memory map of username to bcrypt
// hash. It is the replaceable stub standing in for a real user store.
type StaticCredentials map[string]string

// NewStaticCredentials hashes the given plaintext pairs. Usernames are
// trimmed of surrounding whitespace.
func NewStaticCredentials(pairs map[string]string) StaticCredentials {
	creds := make(StaticCredentials, len(pairs))
	for user, pass := range pairs {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			// only reachable with an out-of-range cost
			panic(err)
		}
		creds[strings.TrimSpace(user)] = string(hash)
	}
	return creds
}

// Verify implements CredentialVerifier.
func (s StaticCredentials) Verify(username, password string) bool {
	if username == "" && password == "" {
		return false
	}
	hash, ok := s[strings.TrimSpace(username)]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DefaultCredentials returns the desk's built-in accounts.
func DefaultCredentials() StaticCredentials {
	return NewStaticCredentials(map[string]string{
		"admin":   "admin123",
		"manager": "manager@123",
		"clerk":   "clerk@123",
	})
}
