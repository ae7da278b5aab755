package errors

import "errors"

var (
	ErrUnauthorized        = errors.New("caller is not permitted to perform this ledger operation")
	ErrInvalidInput        = errors.New("rewards input is invalid")
	ErrInsufficientBalance = errors.New("points balance is insufficient")
	ErrRewardNotFound      = errors.New("reward does not exist")
	ErrRewardUnavailable   = errors.New("reward is inactive or out of stock")
)
