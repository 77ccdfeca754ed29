package dto

import md "github.com/JMURv/session-core/internal/models"

type SessionResponse struct {
	*md.Session
	Current bool `json:"current"`
}

type SessionsResponse struct {
	Data []SessionResponse `json:"data"`
}

type DeactivatedResponse struct {
	Count int64 `json:"count"`
}
