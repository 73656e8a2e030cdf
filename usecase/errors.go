package usecase

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidIdentity    = errors.New("invalid user identity")
	ErrNoteNotFound       = errors.New("note not found")
	ErrNotAllowed         = errors.New("not allowed")
	ErrRevocationDisabled = errors.New("token revocation is not enabled")
)
