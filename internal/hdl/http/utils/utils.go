package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/dto"
	"github.com/JMURv/session-core/internal/hdl"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var validate = validator.New()

type Response struct {
	Data any `json:"data"`
}

type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(&Response{Data: data}); err != nil {
		zap.L().Debug("failed to encode response", zap.Error(err))
	}
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, errs ...error) {
	res := &ErrorsResponse{Errors: make([]string, 0, len(errs))}
	for _, err := range errs {
		res.Errors = append(res.Errors, err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		zap.L().Debug("failed to encode error response", zap.Error(err))
	}
}

// ParseAndValidate decodes the JSON body into req and runs struct validation,
// writing a 400 response on failure.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		zap.L().Debug(hdl.ErrDecodeRequest.Error(), zap.Error(err))
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			ErrResponse(w, http.StatusBadRequest, err)
			return false
		}

		errs := make([]error, 0, len(verrs))
		for _, fe := range verrs {
			errs = append(errs, fmt.Errorf("%s: failed on %s rule", fe.Field(), fe.Tag()))
		}
		ErrResponse(w, http.StatusBadRequest, errs...)
		return false
	}
	return true
}

func ParseDeviceByRequest(ctx context.Context) (dto.DeviceRequest, bool) {
	d, ok := ctx.Value(config.DeviceKey).(dto.DeviceRequest)
	return d, ok
}

// BearerToken reads the access token from the Authorization header and falls
// back to the access cookie.
func BearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if c, err := r.Cookie(config.AccessCookieName); err == nil {
		return c.Value
	}
	return ""
}

func SetAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.AccessCookieName,
			Value:    access,
			Expires:  time.Now().Add(config.AccessTokenDuration),
			HttpOnly: true,
			Secure:   true,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		},
	)

	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    refresh,
			Expires:  time.Now().Add(config.RefreshTokenDuration),
			HttpOnly: true,
			Secure:   true,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		},
	)
}

func ClearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{config.AccessCookieName, config.RefreshCookieName} {
		http.SetCookie(
			w, &http.Cookie{
				Name:     name,
				Value:    "",
				MaxAge:   -1,
				HttpOnly: true,
				Secure:   true,
				Path:     "/",
				SameSite: http.SameSiteStrictMode,
			},
		)
	}
}
