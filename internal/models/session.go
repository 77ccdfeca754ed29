package models

import (
	"time"

	"github.com/google/uuid"
)

type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceBot     DeviceType = "bot"
	DeviceUnknown DeviceType = "unknown"
)

type DeviceInfo struct {
	Name        string     `db:"device_name" json:"deviceName"`
	Type        DeviceType `db:"device_type" json:"deviceType"`
	Platform    string     `db:"platform"    json:"platform"`
	Browser     string     `db:"browser"     json:"browser"`
	OS          string     `db:"os"          json:"os"`
	IP          string     `db:"ip_address"  json:"ipAddress"`
	UA          string     `db:"user_agent"  json:"userAgent"`
	Location    string     `db:"location"    json:"location"`
	Fingerprint string     `db:"fingerprint" json:"fingerprint"`
	LastActive  time.Time  `db:"last_active" json:"lastActive"`
}

type Session struct {
	ID       string    `db:"id"        json:"sessionId"`
	UserID   uuid.UUID `db:"user_id"   json:"userId"`
	DeviceID string    `db:"device_id" json:"deviceId"`

	DeviceInfo `json:"deviceInfo"`

	AccessToken  string     `db:"access_token"  json:"-"`
	RefreshToken string     `db:"refresh_token" json:"-"`
	IsActive     bool       `db:"is_active"     json:"isActive"`
	ExpiresAt    time.Time  `db:"expires_at"    json:"expiresAt"`
	LastRefresh  *time.Time `db:"last_refresh"  json:"lastRefresh,omitempty"`
	CreatedAt    time.Time  `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at"    json:"updatedAt"`
}

// IsQueryableActive reports whether the session may still authenticate at now.
func (s *Session) IsQueryableActive(now time.Time) bool {
	return s.IsActive && s.ExpiresAt.After(now)
}

// Clone returns a deep copy; LastRefresh is the only pointer field.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	c := *s
	if s.LastRefresh != nil {
		lr := *s.LastRefresh
		c.LastRefresh = &lr
	}
	return &c
}
