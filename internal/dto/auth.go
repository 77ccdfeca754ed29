package dto

import (
	"time"

	"github.com/JMURv/session-core/internal/auth/jwt"
	md "github.com/JMURv/session-core/internal/models"
)

type LoginRequest struct {
	Email       string       `json:"email"       validate:"required,email"`
	Password    string       `json:"password"    validate:"required"`
	Token       string       `json:"token"`
	DeviceName  string       `json:"deviceName"  validate:"max=128"`
	Fingerprint *Fingerprint `json:"fingerprint"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// ValidatedSession is what an authenticated request carries downstream.
type ValidatedSession struct {
	Session *md.Session
	User    *md.UserProjection
	Payload jwt.Claims
}

type RefreshResult struct {
	AccessToken     string
	AccessExpiresAt time.Time
	RefreshToken    string
	Session         *md.Session
}

type AccessToken struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	// RefreshToken is the pair's current refresh token. It changes when the
	// access token had to be rotated.
	RefreshToken string `json:"-"`
}

type RecaptchaResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}
