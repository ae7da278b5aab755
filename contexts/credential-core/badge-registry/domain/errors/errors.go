package errors

import "errors"

var (
	ErrUnauthorized   = errors.New("caller is not permitted to perform this badge operation")
	ErrBadgeNotFound  = errors.New("badge does not exist")
	ErrInvalidInput   = errors.New("badge input is invalid")
	ErrAlreadyRevoked = errors.New("badge is already revoked")
	ErrBadgeExpired   = errors.New("badge is expired")
	ErrTransferFailed = errors.New("badge transfer rejected: badge is revoked")
)
