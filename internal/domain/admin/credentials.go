package admin

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost 12 provides ~250ms hashing time, resistant to brute force.
const bcryptCost = 12

// Credentials verifies the single admin identity. The password is held only
// as a bcrypt hash; the plaintext is discarded after construction.
type Credentials struct {
	username     string
	passwordHash []byte
}

// NewCredentials hashes the given password and returns a verifier for the
// single admin identity.
// PRE: username and password are non-empty
// POST: Returns a ready-to-use verifier; plaintext password is not retained
func NewCredentials(username, password string) (*Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	return &Credentials{username: username, passwordHash: hash}, nil
}

// Verify checks a username/password pair against the stored credential.
// POST: Returns true only when both username and password match
func (c *Credentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
	return userOK && passOK
}
