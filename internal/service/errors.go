package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserInactive        = errors.New("user account is deactivated")

	ErrTokenIsExpired  = errors.New("token is expired")
	ErrWrongTokenType  = errors.New("wrong token type")
	ErrBudgetExhausted = errors.New("budget total below already spent amount")
)
