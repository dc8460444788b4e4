package session

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Authenticator checks the credentials of the single admin account.
type Authenticator struct {
	username string
	email    string
	hash     []byte
}

// NewAuthenticator uses passwordHash when set and hashes password otherwise.
func NewAuthenticator(username string, email string, password string, passwordHash string) (*Authenticator, error) {
	hash := []byte(passwordHash)
	if passwordHash == "" {
		if password == "" {
			return nil, errors.New("admin password must not be empty")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("invalid admin password hash: %w", err)
	}

	return &Authenticator{
		username: username,
		email:    email,
		hash:     hash,
	}, nil
}

// Authenticate accepts the admin email (case-insensitive) or username and
// returns the account email.
func (a *Authenticator) Authenticate(identity string, password string) (string, error) {
	identity = strings.TrimSpace(identity)
	if !strings.EqualFold(identity, a.email) && (a.username == "" || identity != a.username) {
		// Unknown identities still pay for one bcrypt comparison.
		_ = bcrypt.CompareHashAndPassword(a.hash, []byte(password))
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return a.email, nil
}
