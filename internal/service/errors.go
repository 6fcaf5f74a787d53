package service

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrInvalidToken        = errors.New("token is invalid or expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrPasswordHashingFailed = errors.New("password hashing failed")
	ErrInvalidUserID         = errors.New("invalid user id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoPinger              = errors.New("no health check target configured")
)
