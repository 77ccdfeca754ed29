package http

import (
	"net/http"

	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/dto"
	"github.com/JMURv/session-core/internal/hdl"
	mid "github.com/JMURv/session-core/internal/hdl/http/middleware"
	"github.com/JMURv/session-core/internal/hdl/http/utils"
	_ "github.com/JMURv/session-core/internal/models"
	"go.uber.org/zap"
)

func (h *Handler) RegisterUserRoutes() {
	h.Router.With(mid.Auth(h.ctrl)).Get("/users/me", h.getMe)
}

// getMe godoc
//
//	@Summary		Retrieve current user profile
//	@Description	Returns the authenticated user's profile as loaded during session validation
//	@Tags			User
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer access token"
//	@Success		200				{object}	models.UserProjection
//	@Failure		401				{object}	utils.ErrorsResponse	"unauthorized"
//	@Failure		500				{object}	utils.ErrorsResponse	"internal error"
//	@Router			/users/me [get]
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	vs, ok := r.Context().Value(config.SessionKey).(*dto.ValidatedSession)
	if !ok || vs.User == nil {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrFailedToGetUUID)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, vs.User)
}
