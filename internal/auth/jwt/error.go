package jwt

import "errors"

var (
	ErrWhileCreatingToken   = errors.New("error while creating token")
	ErrUnexpectedSignMethod = errors.New("unexpected signing method")
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("invalid token")
)
