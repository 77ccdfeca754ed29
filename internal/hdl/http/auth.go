package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/session-core/internal/auth/captcha"
	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/ctrl"
	"github.com/JMURv/session-core/internal/dto"
	"github.com/JMURv/session-core/internal/hdl"
	mid "github.com/JMURv/session-core/internal/hdl/http/middleware"
	"github.com/JMURv/session-core/internal/hdl/http/utils"
	"go.uber.org/zap"
)

func (h *Handler) RegisterAuthRoutes() {
	h.Router.With(mid.Device).Post("/auth/jwt", h.authenticate)
	h.Router.Post("/auth/jwt/refresh", h.refresh)
	h.Router.With(mid.Auth(h.ctrl)).Post("/auth/logout", h.logout)
	h.Router.With(mid.Auth(h.ctrl)).Post("/auth/logout/all", h.logoutAll)
}

// authenticate godoc
//
//	@Summary		Authenticate using email & password
//	@Description	Verify reCAPTCHA, check credentials, open or reuse the device session and set JWT cookies
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			User-Agent			header		string				true	"Client User-Agent"
//	@Param			X-Device-Timezone	header		string				false	"IANA timezone, part of the device fingerprint"
//	@Param			X-Device-Screen		header		string				false	"Screen as WxHxD, part of the device fingerprint"
//	@Param			body				body		dto.LoginRequest	true	"Login credentials"
//	@Success		200					{object}	dto.TokenPair
//	@Failure		400					{object}	utils.ErrorsResponse
//	@Failure		401					{object}	utils.ErrorsResponse
//	@Failure		404					{object}	utils.ErrorsResponse
//	@Failure		500					{object}	utils.ErrorsResponse
//	@Failure		503					{object}	utils.ErrorsResponse
//	@Router			/auth/jwt [post]
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}

	req := &dto.LoginRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	valid, err := h.captcha.VerifyRecaptcha(r.Context(), req.Token, captcha.SignIn)
	if err != nil {
		if errors.Is(err, captcha.ErrValidationFailed) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if !valid {
		utils.ErrResponse(w, http.StatusUnauthorized, captcha.ErrValidationFailed)
		return
	}

	s, err := h.ctrl.Authenticate(r.Context(), d, req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		case errors.Is(err, ctrl.ErrInvalidCredentials):
			utils.ErrResponse(w, http.StatusUnauthorized, err)
		case errors.Is(err, ctrl.ErrPersistenceUnavailable):
			utils.ErrResponse(w, http.StatusServiceUnavailable, hdl.ErrUnavailable)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	at, ok := h.ctrl.GetAccessToken(r.Context(), s.ID)
	if !ok {
		zap.L().Error("failed to get access token of signed in session", zap.String("sid", s.ID))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SetAuthCookies(w, at.AccessToken, at.RefreshToken)
	utils.SuccessResponse(w, http.StatusOK, dto.TokenPair{Access: at.AccessToken, Refresh: at.RefreshToken})
}

// refresh godoc
//
//	@Summary		Refresh JWT tokens
//	@Description	Rotate the token pair of the session the refresh token (cookie or body) belongs to
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RefreshRequest	false	"Refresh token when no cookie is sent"
//	@Success		200		{object}	dto.TokenPair
//	@Failure		400		{object}	utils.ErrorsResponse
//	@Failure		401		{object}	utils.ErrorsResponse
//	@Failure		500		{object}	utils.ErrorsResponse
//	@Failure		503		{object}	utils.ErrorsResponse
//	@Router			/auth/jwt/refresh [post]
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(config.RefreshCookieName); err == nil && cookie.Value != "" {
		token = cookie.Value
	} else {
		req := &dto.RefreshRequest{}
		if ok := utils.ParseAndValidate(w, r, req); !ok {
			return
		}
		token = req.Refresh
	}

	res, err := h.ctrl.RefreshTokens(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrRefreshTokenRejected):
			utils.ClearAuthCookies(w)
			utils.ErrResponse(w, http.StatusUnauthorized, ctrl.ErrRefreshTokenRejected)
		case errors.Is(err, ctrl.ErrPersistenceUnavailable):
			utils.ErrResponse(w, http.StatusServiceUnavailable, hdl.ErrUnavailable)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SetAuthCookies(w, res.AccessToken, res.RefreshToken)
	utils.SuccessResponse(w, http.StatusOK, dto.TokenPair{Access: res.AccessToken, Refresh: res.RefreshToken})
}

// logout godoc
//
//	@Summary		Logout
//	@Description	Deactivate the current session and clear JWT cookies
//	@Tags			Authentication
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Success		200				"Session deactivated, cookies cleared"
//	@Failure		401				{object}	utils.ErrorsResponse	"unauthorized"
//	@Failure		500				{object}	utils.ErrorsResponse	"internal error"
//	@Router			/auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	vs, ok := r.Context().Value(config.SessionKey).(*dto.ValidatedSession)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetSession.Error(), zap.Any("session", r.Context().Value(config.SessionKey)))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	h.ctrl.DeactivateSession(r.Context(), vs.Session.ID)
	utils.ClearAuthCookies(w)
	utils.StatusResponse(w, http.StatusOK)
}

// logoutAll godoc
//
//	@Summary		Logout everywhere
//	@Description	Deactivate every other session of the caller, or all of them with current=true
//	@Tags			Authentication
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer access token"
//	@Param			current			query		bool	false	"Also deactivate the current session"
//	@Success		200				{object}	dto.DeactivatedResponse
//	@Failure		401				{object}	utils.ErrorsResponse	"unauthorized"
//	@Failure		500				{object}	utils.ErrorsResponse	"internal error"
//	@Router			/auth/logout/all [post]
func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	vs, ok := r.Context().Value(config.SessionKey).(*dto.ValidatedSession)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetSession.Error(), zap.Any("session", r.Context().Value(config.SessionKey)))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	includeCurrent := r.URL.Query().Get("current") == "true"
	exclude := vs.Session.ID
	if includeCurrent {
		exclude = ""
	}

	n := h.ctrl.DeactivateAllUserSessions(r.Context(), vs.User.ID, exclude)
	if includeCurrent {
		utils.ClearAuthCookies(w)
	}
	utils.SuccessResponse(w, http.StatusOK, dto.DeactivatedResponse{Count: n})
}
