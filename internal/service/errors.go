package service

import "errors"

var (
	// ErrValidation wraps request-shape failures (bad email, short
	// password, empty text). The wrapped message is safe to show clients.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned for any login mismatch. Unknown
	// email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers malformed tokens, bad signatures, and tokens
	// revoked by removal from storage. Callers never learn which.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound means no resource matched the id for the requesting owner.
	ErrNotFound = errors.New("resource not found")
)
