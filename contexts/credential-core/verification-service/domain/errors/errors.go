package errors

import "errors"

var (
	ErrBadgeNotFound   = errors.New("badge does not exist")
	ErrRequestNotFound = errors.New("verification request does not exist")
	ErrRequestExists   = errors.New("verification request id already used")
	ErrInvalidInput    = errors.New("verification input is invalid")
)
