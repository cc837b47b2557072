package apperr

import "errors"

var (
	// registration / login
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrValidation         = errors.New("username and password are required")

	// identifiers and lookups
	ErrInvalidID = errors.New("invalid id")
	ErrNotFound  = errors.New("not found")

	// matched a document but changed nothing
	ErrNoOp = errors.New("no documents modified")

	// token verification
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("invalid token")

	// missing or unparsable Authorization header
	ErrUnauthenticated = errors.New("access denied, no token provided")

	// store timeout or connectivity failure
	ErrTransient = errors.New("store temporarily unavailable")
)
