package usecase

import "errors"

// Sentinel errors mapped to status codes by the HTTP handlers.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
