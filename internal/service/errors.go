package service

import "errors"

// Failure modes the handlers map onto HTTP statuses.
var (
	ErrEmailExists     = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidDate     = errors.New("invalid visited date")
)
