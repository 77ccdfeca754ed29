package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `db:"id"                json:"id"`
	Name            string    `db:"name"              json:"name"`
	Password        string    `db:"password"          json:"-"`
	Email           string    `db:"email"             json:"email"`
	Avatar          string    `db:"avatar"            json:"avatar"`
	IsActive        bool      `db:"is_active"         json:"isActive"`
	IsEmailVerified bool      `db:"is_email_verified" json:"isEmailVerified"`
	CreatedAt       time.Time `db:"created_at"        json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at"        json:"updatedAt"`
}

// UserProjection is the credential-free view of a user handed to request handlers.
type UserProjection struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Avatar          string    `json:"avatar"`
	IsActive        bool      `json:"isActive"`
	IsEmailVerified bool      `json:"isEmailVerified"`
}

func (u *User) Projection() *UserProjection {
	return &UserProjection{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Avatar:          u.Avatar,
		IsActive:        u.IsActive,
		IsEmailVerified: u.IsEmailVerified,
	}
}
