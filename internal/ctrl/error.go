package ctrl

import (
	"errors"

	"github.com/JMURv/session-core/internal/auth"
	"github.com/JMURv/session-core/internal/auth/jwt"
)

var (
	ErrTokenExpired = jwt.ErrTokenExpired
	ErrTokenInvalid = jwt.ErrTokenInvalid
)

var ErrInvalidCredentials = auth.ErrInvalidCredentials

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

var ErrSessionNotFound = errors.New("session not found")

// ErrSessionTokenMismatch means the presented token was superseded.
var ErrSessionTokenMismatch = errors.New("session token mismatch")

var ErrRefreshTokenRejected = errors.New("refresh token rejected")

var ErrDeviceFingerprintMismatch = errors.New("device fingerprint mismatch")

var ErrPersistenceUnavailable = errors.New("persistence unavailable")
