// Package auth verifies administrator credentials. Passwords are derived
// with scrypt over a per-deployment fixed salt and compared in constant
// time against the configured hex digest.
package auth

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters matching the deployed credential hashes.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

// Admin is one configured administrator identity.
type Admin struct {
	Username string
	Salt     string
	// Hash is the hex-encoded scrypt digest of the password.
	Hash string
}

// Gate answers whether a username/password pair belongs to a configured
// administrator. Admins are keyed by username; the reference deployment
// configures exactly one.
type Gate struct {
	admins map[string]Admin
}

func NewGate(admins ...Admin) *Gate {
	g := &Gate{admins: make(map[string]Admin, len(admins))}
	for _, a := range admins {
		g.admins[a.Username] = a
	}
	return g
}

// HashPassword derives the hex digest stored in configuration.
func HashPassword(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("scrypt: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Verify reports whether the pair matches a configured admin. The digest
// comparison is constant time regardless of where a mismatch occurs.
func (g *Gate) Verify(username, password string) bool {
	admin, ok := g.admins[username]
	if !ok {
		return false
	}

	stored, err := hex.DecodeString(admin.Hash)
	if err != nil {
		return false
	}
	candidate, err := scrypt.Key([]byte(password), []byte(admin.Salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}
	if len(stored) != len(candidate) {
		return false
	}
	return subtle.ConstantTimeCompare(stored, candidate) == 1
}
