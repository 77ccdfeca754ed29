package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/session-core/internal/auth/jwt"
	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/device"
	"github.com/JMURv/session-core/internal/dto"
	md "github.com/JMURv/session-core/internal/models"
	metrics "github.com/JMURv/session-core/internal/observability/metrics/prometheus"
	"github.com/JMURv/session-core/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type sessionCtrl interface {
	CreateSession(ctx context.Context, uid uuid.UUID, d dto.DeviceRequest, opts dto.SessionOptions) (*md.Session, error)
	ValidateSession(ctx context.Context, token string) (*dto.ValidatedSession, bool)
	RefreshTokens(ctx context.Context, refresh string) (*dto.RefreshResult, error)
	DeactivateSession(ctx context.Context, sid string) bool
	DeactivateAllUserSessions(ctx context.Context, uid uuid.UUID, exclude string) int64
	GetUserActiveSessions(ctx context.Context, uid uuid.UUID) []*md.Session
	GetAccessToken(ctx context.Context, sid string) (*dto.AccessToken, bool)
	SessionIDByRefresh(ctx context.Context, refresh string) (string, bool)
}

type sessionRepo interface {
	GetSession(ctx context.Context, sid string) (*md.Session, error)
	GetActiveSessionByDevice(ctx context.Context, uid uuid.UUID, did string, now time.Time) (*md.Session, error)
	GetSessionByRefresh(ctx context.Context, sid, refresh string, now time.Time) (*md.Session, error)
	FindDeviceByFingerprint(ctx context.Context, hash string, uid *uuid.UUID) (string, error)
	CreateSession(ctx context.Context, s *md.Session, now time.Time) error
	ExtendSession(ctx context.Context, sid string, expiresAt time.Time, info md.DeviceInfo) (*md.Session, error)
	RotateTokens(ctx context.Context, sid, oldRefresh, access, refresh string, now time.Time) (*md.Session, error)
	TouchSession(ctx context.Context, sid string, at time.Time) error
	DeactivateSession(ctx context.Context, sid string, now time.Time) (bool, error)
	DeactivateUserSessions(ctx context.Context, uid uuid.UUID, exclude string, now time.Time) (int64, error)
	ListActiveSessions(ctx context.Context, uid uuid.UUID, now time.Time) ([]*md.Session, error)
}

// CreateSession reuses the active session of the (user, device) pair when
// there is one and mints a new session with a fresh token pair otherwise.
// Every failure is returned to the caller.
func (c *Controller) CreateSession(
	ctx context.Context,
	uid uuid.UUID,
	d dto.DeviceRequest,
	opts dto.SessionOptions,
) (*md.Session, error) {
	const op = "sessions.CreateSession.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := c.now()
	if !opts.Fingerprint.IsZero() {
		d.Fingerprint = opts.Fingerprint
	}
	info := device.Describe(d, opts.DeviceName)
	info.LastActive = now

	did, known := "", false
	if info.Fingerprint != "" {
		id, ok, err := c.device.Reconcile(ctx, info.Fingerprint, nil)
		if err != nil {
			zap.L().Warn(
				"failed to reconcile device, minting a new one",
				zap.String("op", op),
				zap.Error(err),
			)
		} else if ok {
			did, known = id, true
		}
	}
	if did == "" {
		did = device.NewDeviceID()
	}

	s, err := c.reuse(ctx, uid, did, info, now)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	sid := uuid.NewString()
	pair, err := c.tokens.GenPair(ctx, uid, sid, did)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to issue token pair", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	s = &md.Session{
		ID:           sid,
		UserID:       uid,
		DeviceID:     did,
		DeviceInfo:   info,
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		IsActive:     true,
		ExpiresAt:    now.Add(c.sessionTTL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = c.repo.CreateSession(ctx, s, now); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			zap.L().Info(
				"concurrent session creation, reusing",
				zap.String("op", op),
				zap.String("uid", uid.String()),
				zap.String("did", did),
			)

			existing, rerr := c.reuse(ctx, uid, did, info, now)
			if rerr != nil {
				span.SetTag(config.ErrorSpanTag, true)
				return nil, rerr
			}
			if existing != nil {
				return existing, nil
			}
		}

		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to create session",
			zap.String("op", op),
			zap.String("uid", uid.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}

	c.cache.Set(s.ID, s)
	metrics.SessionEvents.WithLabelValues("created").Inc()

	if !known {
		c.notifyNewDevice(s)
	}
	return s, nil
}

// reuse extends the active session of (uid, did). A nil session with nil
// error means there is none, or the one found could no longer refresh and
// was deactivated.
func (c *Controller) reuse(
	ctx context.Context,
	uid uuid.UUID,
	did string,
	info md.DeviceInfo,
	now time.Time,
) (*md.Session, error) {
	const op = "sessions.reuse.ctrl"

	existing, err := c.repo.GetActiveSessionByDevice(ctx, uid, did, now)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		zap.L().Error("failed to look up device session", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}

	if _, err = c.tokens.ParseKind(ctx, existing.RefreshToken, jwt.Refresh); err != nil {
		zap.L().Info(
			"device session can no longer refresh, retiring it",
			zap.String("op", op),
			zap.String("sid", existing.ID),
			zap.Error(err),
		)
		if _, err = c.repo.DeactivateSession(ctx, existing.ID, now); err != nil {
			zap.L().Error("failed to retire device session", zap.String("op", op), zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
		}
		c.cache.Invalidate(existing.ID)
		c.publishSession(ctx, existing.ID)
		return nil, nil
	}

	if existing.Fingerprint != "" && info.Fingerprint != "" && existing.Fingerprint != info.Fingerprint {
		zap.L().Warn(
			ErrDeviceFingerprintMismatch.Error(),
			zap.String("op", op),
			zap.String("sid", existing.ID),
			zap.String("did", did),
		)
	}

	s, err := c.repo.ExtendSession(ctx, existing.ID, now.Add(c.sessionTTL), info)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		zap.L().Error("failed to extend session", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}

	c.cache.Invalidate(s.ID)
	c.cache.Set(s.ID, s)
	metrics.SessionEvents.WithLabelValues("reused").Inc()
	return s, nil
}

// ValidateSession resolves an access token to its live session. Every
// failure collapses into false.
func (c *Controller) ValidateSession(ctx context.Context, token string) (*dto.ValidatedSession, bool) {
	const op = "sessions.ValidateSession.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.tokens.ParseKind(ctx, token, jwt.Access)
	if err != nil {
		zap.L().Debug("rejected access token", zap.String("op", op), zap.Error(err))
		return nil, false
	}

	now := c.now()
	s, err := c.lookup(ctx, claims.SID, now)
	if err != nil {
		return nil, false
	}

	if !s.IsQueryableActive(now) {
		c.cache.Invalidate(s.ID)
		zap.L().Debug(ErrSessionNotFound.Error(), zap.String("op", op), zap.String("sid", s.ID))
		return nil, false
	}

	if s.AccessToken != token {
		c.cache.Invalidate(s.ID)
		zap.L().Debug(ErrSessionTokenMismatch.Error(), zap.String("op", op), zap.String("sid", s.ID))
		return nil, false
	}

	u, err := c.repo.GetUserByID(ctx, s.UserID)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			span.SetTag(config.ErrorSpanTag, true)
			zap.L().Error(
				ErrPersistenceUnavailable.Error(),
				zap.String("op", op),
				zap.String("uid", s.UserID.String()),
				zap.Error(err),
			)
		}
		return nil, false
	}

	if c.cache.ShouldUpdateLastActive(s.ID) {
		sid := s.ID
		c.background(
			func(ctx context.Context) {
				if err := c.repo.TouchSession(ctx, sid, now); err != nil {
					zap.L().Warn("failed to touch session", zap.String("op", op), zap.String("sid", sid), zap.Error(err))
				}
			},
		)
	}

	return &dto.ValidatedSession{
		Session: s,
		User:    u.Projection(),
		Payload: claims,
	}, true
}

// lookup reads through the cache. Only live sessions are written back.
func (c *Controller) lookup(ctx context.Context, sid string, now time.Time) (*md.Session, error) {
	const op = "sessions.lookup.ctrl"

	if s, ok := c.cache.Get(sid); ok {
		return s, nil
	}

	s, err := c.repo.GetSession(ctx, sid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			zap.L().Debug(ErrSessionNotFound.Error(), zap.String("op", op), zap.String("sid", sid))
			return nil, ErrSessionNotFound
		}
		zap.L().Error(ErrPersistenceUnavailable.Error(), zap.String("op", op), zap.String("sid", sid), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}

	if s.IsQueryableActive(now) {
		c.cache.Set(s.ID, s)
	}
	return s, nil
}

// RefreshTokens rotates the token pair of the session the refresh token
// belongs to. The cache is bypassed for the lookup.
func (c *Controller) RefreshTokens(ctx context.Context, refresh string) (*dto.RefreshResult, error) {
	const op = "sessions.RefreshTokens.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.tokens.ParseKind(ctx, refresh, jwt.Refresh)
	if err != nil {
		zap.L().Debug("rejected refresh token", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrRefreshTokenRejected, err)
	}

	now := c.now()
	s, err := c.repo.GetSessionByRefresh(ctx, claims.SID, refresh, now)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRefreshTokenRejected
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to look up session by refresh", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}

	if s.UserID != claims.UID {
		zap.L().Warn("refresh token subject differs from session owner", zap.String("op", op), zap.String("sid", s.ID))
		return nil, ErrRefreshTokenRejected
	}

	pair, err := c.tokens.GenPair(ctx, s.UserID, s.ID, s.DeviceID)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	updated, err := c.repo.RotateTokens(ctx, s.ID, refresh, pair.Access, pair.Refresh, now)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			zap.L().Info("refresh token already rotated", zap.String("op", op), zap.String("sid", s.ID))
			return nil, ErrRefreshTokenRejected
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to rotate tokens", zap.String("op", op), zap.String("sid", s.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}

	c.cache.Invalidate(updated.ID)
	c.publishSession(ctx, updated.ID)
	c.cache.Set(updated.ID, updated)
	metrics.SessionEvents.WithLabelValues("refreshed").Inc()

	return &dto.RefreshResult{
		AccessToken:     pair.Access,
		AccessExpiresAt: pair.AccessExpiresAt,
		RefreshToken:    pair.Refresh,
		Session:         updated,
	}, nil
}

func (c *Controller) DeactivateSession(ctx context.Context, sid string) bool {
	const op = "sessions.DeactivateSession.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	ok, err := c.repo.DeactivateSession(ctx, sid, c.now())
	c.cache.Invalidate(sid)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to deactivate session", zap.String("op", op), zap.String("sid", sid), zap.Error(err))
		return false
	}

	if ok {
		c.publishSession(ctx, sid)
		metrics.SessionEvents.WithLabelValues("deactivated").Inc()
	}
	return ok
}

// DeactivateAllUserSessions returns the number of sessions flipped, 0 on failure.
func (c *Controller) DeactivateAllUserSessions(ctx context.Context, uid uuid.UUID, exclude string) int64 {
	const op = "sessions.DeactivateAllUserSessions.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	n, err := c.repo.DeactivateUserSessions(ctx, uid, exclude, c.now())
	c.cache.InvalidateUserSessions(uid)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to deactivate user sessions",
			zap.String("op", op),
			zap.String("uid", uid.String()),
			zap.Error(err),
		)
		return 0
	}

	if n > 0 {
		c.publishUser(ctx, uid)
		metrics.SessionEvents.WithLabelValues("deactivated").Add(float64(n))
	}
	return n
}

func (c *Controller) GetUserActiveSessions(ctx context.Context, uid uuid.UUID) []*md.Session {
	const op = "sessions.GetUserActiveSessions.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.ListActiveSessions(ctx, uid, c.now())
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list sessions", zap.String("op", op), zap.String("uid", uid.String()), zap.Error(err))
		return []*md.Session{}
	}
	return res
}

// GetAccessToken returns the stored access token of a live session, rotating
// the pair first when that token has expired.
func (c *Controller) GetAccessToken(ctx context.Context, sid string) (*dto.AccessToken, bool) {
	const op = "sessions.GetAccessToken.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := c.now()
	s, err := c.lookup(ctx, sid, now)
	if err != nil || !s.IsQueryableActive(now) {
		return nil, false
	}

	claims, err := c.tokens.ParseKind(ctx, s.AccessToken, jwt.Access)
	if err == nil {
		return &dto.AccessToken{
			AccessToken:  s.AccessToken,
			ExpiresAt:    claims.ExpiresAt.Time,
			RefreshToken: s.RefreshToken,
		}, true
	}

	if !errors.Is(err, ErrTokenExpired) {
		zap.L().Warn("stored access token is unusable", zap.String("op", op), zap.String("sid", sid), zap.Error(err))
		return nil, false
	}

	res, err := c.RefreshTokens(ctx, s.RefreshToken)
	if err != nil {
		zap.L().Info("failed to refresh expired access token", zap.String("op", op), zap.String("sid", sid), zap.Error(err))
		return nil, false
	}

	return &dto.AccessToken{
		AccessToken:  res.AccessToken,
		ExpiresAt:    res.AccessExpiresAt,
		RefreshToken: res.RefreshToken,
	}, true
}

// SessionIDByRefresh resolves a refresh token to the live session that
// currently holds it. It never rotates.
func (c *Controller) SessionIDByRefresh(ctx context.Context, refresh string) (string, bool) {
	const op = "sessions.SessionIDByRefresh.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.tokens.ParseKind(ctx, refresh, jwt.Refresh)
	if err != nil {
		zap.L().Debug("rejected refresh token", zap.String("op", op), zap.Error(err))
		return "", false
	}

	s, err := c.repo.GetSessionByRefresh(ctx, claims.SID, refresh, c.now())
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			span.SetTag(config.ErrorSpanTag, true)
			zap.L().Error("failed to look up session by refresh", zap.String("op", op), zap.Error(err))
		}
		return "", false
	}

	if s.UserID != claims.UID {
		return "", false
	}
	return s.ID, true
}

func (c *Controller) publishSession(ctx context.Context, sid string) {
	if c.bus == nil {
		return
	}
	if err := c.bus.PublishSession(ctx, sid); err != nil {
		zap.L().Warn("failed to publish session invalidation", zap.String("sid", sid), zap.Error(err))
	}
}

func (c *Controller) publishUser(ctx context.Context, uid uuid.UUID) {
	if c.bus == nil {
		return
	}
	if err := c.bus.PublishUser(ctx, uid); err != nil {
		zap.L().Warn("failed to publish user invalidation", zap.String("uid", uid.String()), zap.Error(err))
	}
}

func (c *Controller) notifyNewDevice(s *md.Session) {
	if c.notifier == nil {
		return
	}

	s = s.Clone()
	c.background(
		func(ctx context.Context) {
			u, err := c.repo.GetUserByID(ctx, s.UserID)
			if err != nil {
				zap.L().Warn("failed to load user for notification", zap.String("uid", s.UserID.String()), zap.Error(err))
				return
			}

			if err = c.notifier.NewDeviceSignIn(ctx, u, s); err != nil {
				zap.L().Warn("failed to send new device notification", zap.String("sid", s.ID), zap.Error(err))
			}
		},
	)
}
