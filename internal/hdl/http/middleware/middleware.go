package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/device"
	"github.com/JMURv/session-core/internal/dto"
	"github.com/JMURv/session-core/internal/hdl"
	"github.com/JMURv/session-core/internal/hdl/http/utils"
	metrics "github.com/JMURv/session-core/internal/observability/metrics/prometheus"
	"github.com/go-chi/chi/v5"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type sessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*dto.ValidatedSession, bool)
}

// Auth resolves the bearer token or access cookie to a live session and
// stores it, the user id and the session id in the request context.
func Auth(v sessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token := utils.BearerToken(r)
				if token == "" {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrMissingToken)
					return
				}

				res, ok := v.ValidateSession(r.Context(), token)
				if !ok {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, res.User.ID)
				ctx = context.WithValue(ctx, config.SessionKey, res)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// Device collects the raw device attributes of the request. A fingerprint is
// attached only when the client sent at least one fingerprint header.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			d := dto.DeviceRequest{
				IP:       clientIP(r),
				UA:       r.UserAgent(),
				Platform: r.Header.Get(config.PlatformHeader),
				Country:  r.Header.Get(config.CountryHeader),
				Name:     r.Header.Get(config.DeviceNameHeader),
			}
			if d.Country == "" {
				d.Country = r.Header.Get(config.AltCountryHeader)
			}

			tz, screen := r.Header.Get(config.TimezoneHeader), r.Header.Get(config.ScreenHeader)
			if tz != "" || screen != "" {
				sw, sh, depth := device.ParseScreen(screen)
				d.Fingerprint = &dto.Fingerprint{
					UserAgent:    d.UA,
					Platform:     d.Platform,
					Language:     primaryLanguage(r.Header.Get("Accept-Language")),
					Timezone:     tz,
					ScreenWidth:  sw,
					ScreenHeight: sh,
					ColorDepth:   depth,
				}
			}

			ctx := context.WithValue(r.Context(), config.DeviceKey, d)
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func primaryLanguage(header string) string {
	lang, _, _ := strings.Cut(header, ",")
	lang, _, _ = strings.Cut(lang, ";")
	return strings.TrimSpace(lang)
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, routeName(r))
		},
	)
}

// routeName prefers the matched chi pattern over the raw path.
func routeName(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return fmt.Sprintf("%s %s", r.Method, p)
		}
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
