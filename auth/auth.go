// Package auth checks dashboard credentials against the user records.
package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yourusername/invoice-dashboard/models"
	"golang.org/x/crypto/bcrypt"
)

// Credentials is what a user submits on the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserLookup resolves a user by exact email. ok is false for unknown users.
type UserLookup interface {
	GetUser(ctx context.Context, email string) (user models.User, ok bool, err error)
}

type Authorizer struct {
	users    UserLookup
	validate *validator.Validate
}

func NewAuthorizer(users UserLookup) *Authorizer {
	return &Authorizer{
		users:    users,
		validate: validator.New(),
	}
}

// Authorize returns the user matching creds, or nil when the credentials are
// malformed, the user does not exist or the password does not match.
// Only a failure to read the users is returned as an error.
func (a *Authorizer) Authorize(ctx context.Context, creds Credentials) (*models.User, error) {
	if err := a.validate.Struct(creds); err != nil {
		return nil, nil
	}

	user, ok, err := a.users.GetUser(ctx, creds.Email)
	if err != nil {
		return nil, err
	}
	if !ok || !PasswordMatches(user.Password, creds.Password) {
		return nil, nil
	}
	return &user, nil
}

// PasswordMatches compares a submitted password with the stored one. Stored
// bcrypt hashes are verified with bcrypt; anything else is compared as
// plaintext.
func PasswordMatches(stored, submitted string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}

func isBcryptHash(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
