package captcha

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/dto"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	VerifyRecaptcha(ctx context.Context, token string, action Actions) (bool, error)
}

type Actions string

const SignIn Actions = "sign_in"

const (
	captchaScore = 0.1
	verifyURL    = "https://www.google.com/recaptcha/api/siteverify"
)

type Core struct {
	enabled bool
	secret  string
	url     string
	client  *http.Client
}

func New(conf config.CaptchaConfig) *Core {
	return &Core{
		enabled: conf.Enabled,
		secret:  conf.Secret,
		url:     verifyURL,
		client:  &http.Client{Timeout: config.BackgroundTimeout},
	}
}

func (c *Core) VerifyRecaptcha(ctx context.Context, token string, action Actions) (bool, error) {
	const op = "auth.VerifyRecaptcha.captcha"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if !c.enabled {
		return true, nil
	}

	if token == "" {
		return false, ErrValidationFailed
	}

	form := url.Values{"secret": {c.secret}, "response": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to verify recaptcha", zap.String("op", op), zap.Error(err))
		return false, ErrVerificationFailed
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			zap.L().Error("failed to close body", zap.String("op", op), zap.Error(err))
		}
	}(resp.Body)

	var result dto.RecaptchaResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to decode body", zap.String("op", op), zap.Error(err))
		return false, ErrVerificationFailed
	}

	ok := result.Success && result.Score > captchaScore
	if !ok {
		zap.L().Debug("not enough score", zap.String("op", op), zap.Float64("score", result.Score))
	}
	return ok && result.Action == string(action), nil
}
