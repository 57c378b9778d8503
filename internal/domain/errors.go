package domain

import "errors"

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrEmptyInput            = errors.New("input is required and must not be empty")
	ErrInputTooLong          = errors.New("input exceeds maximum allowed length")
	ErrInvalidExtractionType = errors.New("invalid extraction type")
	ErrRateLimited           = errors.New("rate limit exceeded")
	ErrInternal              = errors.New("an internal error occurred")
)
