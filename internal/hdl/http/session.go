package http

import (
	"net/http"

	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/ctrl"
	"github.com/JMURv/session-core/internal/dto"
	"github.com/JMURv/session-core/internal/hdl"
	mid "github.com/JMURv/session-core/internal/hdl/http/middleware"
	"github.com/JMURv/session-core/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) RegisterSessionRoutes() {
	h.Router.With(mid.Auth(h.ctrl)).Get("/sessions", h.listSessions)
	h.Router.Get("/sessions/current/token", h.currentToken)
	h.Router.With(mid.Auth(h.ctrl)).Delete("/sessions/{id}", h.deleteSession)
}

// listSessions godoc
//
//	@Summary		List active sessions
//	@Description	Active sessions of the caller, most recently active first
//	@Tags			Sessions
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer access token"
//	@Success		200				{object}	dto.SessionsResponse
//	@Failure		401				{object}	utils.ErrorsResponse	"unauthorized"
//	@Router			/sessions [get]
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	vs, ok := r.Context().Value(config.SessionKey).(*dto.ValidatedSession)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetSession.Error(), zap.Any("session", r.Context().Value(config.SessionKey)))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	list := h.ctrl.GetUserActiveSessions(r.Context(), vs.User.ID)
	res := dto.SessionsResponse{Data: make([]dto.SessionResponse, 0, len(list))}
	for _, s := range list {
		res.Data = append(res.Data, dto.SessionResponse{Session: s, Current: s.ID == vs.Session.ID})
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// deleteSession godoc
//
//	@Summary		Deactivate a session
//	@Description	Deactivate one of the caller's sessions
//	@Tags			Sessions
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Param			id				path	string	true	"Session ID"
//	@Success		204				"Session deactivated"
//	@Failure		400				{object}	utils.ErrorsResponse	"missing id"
//	@Failure		401				{object}	utils.ErrorsResponse	"unauthorized"
//	@Failure		404				{object}	utils.ErrorsResponse	"session not found"
//	@Router			/sessions/{id} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	vs, ok := r.Context().Value(config.SessionKey).(*dto.ValidatedSession)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetSession.Error(), zap.Any("session", r.Context().Value(config.SessionKey)))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	sid := chi.URLParam(r, "id")
	if sid == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	owned := false
	for _, s := range h.ctrl.GetUserActiveSessions(r.Context(), vs.User.ID) {
		if s.ID == sid {
			owned = true
			break
		}
	}

	if !owned || !h.ctrl.DeactivateSession(r.Context(), sid) {
		utils.ErrResponse(w, http.StatusNotFound, ctrl.ErrSessionNotFound)
		return
	}

	if sid == vs.Session.ID {
		utils.ClearAuthCookies(w)
	}
	utils.StatusResponse(w, http.StatusNoContent)
}

// currentToken godoc
//
//	@Summary		Current access token
//	@Description	Access token of the session holding the refresh token (cookie or header), rotated first when it has expired
//	@Tags			Sessions
//	@Produce		json
//	@Param			X-Refresh-Token	header		string	false	"Refresh token when no cookie is sent"
//	@Success		200				{object}	dto.AccessToken
//	@Failure		401				{object}	utils.ErrorsResponse	"missing or rejected refresh token"
//	@Router			/sessions/current/token [get]
func (h *Handler) currentToken(w http.ResponseWriter, r *http.Request) {
	refresh := r.Header.Get(config.RefreshHeader)
	if cookie, err := r.Cookie(config.RefreshCookieName); err == nil && cookie.Value != "" {
		refresh = cookie.Value
	}
	if refresh == "" {
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrMissingToken)
		return
	}

	sid, ok := h.ctrl.SessionIDByRefresh(r.Context(), refresh)
	if !ok {
		utils.ClearAuthCookies(w)
		utils.ErrResponse(w, http.StatusUnauthorized, ctrl.ErrRefreshTokenRejected)
		return
	}

	res, ok := h.ctrl.GetAccessToken(r.Context(), sid)
	if !ok {
		utils.ClearAuthCookies(w)
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
		return
	}

	utils.SetAuthCookies(w, res.AccessToken, res.RefreshToken)
	utils.SuccessResponse(w, http.StatusOK, res)
}
