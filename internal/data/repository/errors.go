package repository

import "errors"

// Duplicate-key translations for the users table unique constraints. Inserts
// and updates rely on the constraints themselves, so concurrent requests
// cannot race a separate pre-check query.
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)
