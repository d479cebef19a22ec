package store

import (
	"errors"
	"strings"
)

// Sentinel errors separating semantic outcomes from infrastructure failures.
// Handlers map these to client-error responses; any other store error is a
// server-side failure.
var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrDuplicateCode = errors.New("item code already exists")
)

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
