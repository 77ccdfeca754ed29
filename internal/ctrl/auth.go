package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/dto"
	md "github.com/JMURv/session-core/internal/models"
	"github.com/JMURv/session-core/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type authCtrl interface {
	Authenticate(ctx context.Context, d dto.DeviceRequest, req *dto.LoginRequest) (*md.Session, error)
}

type userRepo interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
}

// Authenticate checks email and password and opens a session for the device.
func (c *Controller) Authenticate(ctx context.Context, d dto.DeviceRequest, req *dto.LoginRequest) (*md.Session, error) {
	const op = "auth.Authenticate.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err != nil && errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get user", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	if err = c.hasher.Compare(u.Password, req.Password); err != nil {
		zap.L().Debug("invalid password", zap.String("op", op), zap.String("uid", u.ID.String()))
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		zap.L().Info("inactive user tried to sign in", zap.String("op", op), zap.String("uid", u.ID.String()))
		return nil, ErrInvalidCredentials
	}

	return c.CreateSession(
		ctx, u.ID, d, dto.SessionOptions{
			DeviceName:  req.DeviceName,
			Fingerprint: req.Fingerprint,
		},
	)
}
