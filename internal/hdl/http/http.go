package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/JMURv/session-core/api/rest/v1"
	"github.com/JMURv/session-core/internal/auth/captcha"
	"github.com/JMURv/session-core/internal/ctrl"
	mid "github.com/JMURv/session-core/internal/hdl/http/middleware"
	"github.com/JMURv/session-core/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	Router  *chi.Mux
	srv     *http.Server
	ctrl    ctrl.AppCtrl
	captcha captcha.Port
}

func New(ctrl ctrl.AppCtrl, captcha captcha.Port) *Handler {
	h := &Handler{
		Router:  chi.NewRouter(),
		ctrl:    ctrl,
		captcha: captcha,
	}

	h.Router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.RegisterAuthRoutes()
	h.RegisterSessionRoutes()
	h.RegisterUserRoutes()
	h.Router.Get("/swagger/*", httpSwagger.WrapHandler)
	h.Router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "OK")
		},
	)
	return h
}

func (h *Handler) Start(port int) {
	h.srv = &http.Server{
		Handler:      h.Router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
