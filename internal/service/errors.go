package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrAccountNotFound         = errors.New("account not found")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
