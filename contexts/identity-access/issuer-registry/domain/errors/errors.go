package errors

import "errors"

var (
	ErrUnauthorized = errors.New("caller is not permitted to manage the registry")
	ErrNotFound     = errors.New("identity is not registered")
	ErrInvalidInput = errors.New("issuer registry input is invalid")
)
