package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/JMURv/session-core/internal/config"
	md "github.com/JMURv/session-core/internal/models"
	"github.com/JMURv/session-core/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) GetSession(ctx context.Context, sid string) (*md.Session, error) {
	const op = "sessions.GetSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Session{}
	if err := r.conn.GetContext(ctx, res, sessionGetQ, sid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get session", zap.String("op", op), zap.String("sid", sid), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetActiveSessionByDevice(ctx context.Context, uid uuid.UUID, did string, now time.Time) (*md.Session, error) {
	const op = "sessions.GetActiveSessionByDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Session{}
	if err := r.conn.GetContext(ctx, res, sessionGetActiveByDeviceQ, uid, did, now); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to get session by device",
			zap.String("op", op),
			zap.String("uid", uid.String()),
			zap.String("did", did),
			zap.Error(err),
		)
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetSessionByRefresh(ctx context.Context, sid, refresh string, now time.Time) (*md.Session, error) {
	const op = "sessions.GetSessionByRefresh.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Session{}
	if err := r.conn.GetContext(ctx, res, sessionGetByRefreshQ, sid, refresh, now); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get session by refresh", zap.String("op", op), zap.String("sid", sid), zap.Error(err))
		return nil, err
	}

	return res, nil
}

// FindDeviceByFingerprint returns the device id of the most recently active
// session with the given fingerprint, active or not.
func (r *Repository) FindDeviceByFingerprint(ctx context.Context, hash string, uid *uuid.UUID) (string, error) {
	const op = "sessions.FindDeviceByFingerprint.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, args, err := buildFingerprintQuery(hash, uid)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build fingerprint query", zap.String("op", op), zap.Error(err))
		return "", err
	}

	var did string
	if err = r.conn.GetContext(ctx, &did, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to find device", zap.String("op", op), zap.Error(err))
		return "", err
	}

	return did, nil
}

// CreateSession retires expired rows still flagged active for the same
// (user, device) pair and inserts s. A concurrent insert for the pair
// surfaces as repo.ErrAlreadyExists.
func (r *Repository) CreateSession(ctx context.Context, s *md.Session, now time.Time) error {
	const op = "sessions.CreateSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to begin transaction", zap.String("op", op), zap.Error(err))
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			zap.L().Error("failed to rollback transaction", zap.String("op", op), zap.Error(err))
		}
	}()

	if _, err = tx.ExecContext(ctx, sessionRetireExpiredQ, s.UserID, s.DeviceID, now); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to retire expired sessions", zap.String("op", op), zap.Error(err))
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		sessionCreateQ,
		s.ID,
		s.UserID,
		s.DeviceID,
		s.Name,
		s.Type,
		s.Platform,
		s.Browser,
		s.OS,
		s.IP,
		s.UA,
		s.Location,
		s.Fingerprint,
		s.LastActive,
		s.AccessToken,
		s.RefreshToken,
		s.ExpiresAt,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repo.ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create session", zap.String("op", op), zap.Error(err))
		return err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit transaction", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

// ExtendSession pushes the deadline of an active session and refreshes its
// mutable device attributes. Empty name, location and fingerprint keep the stored values.
func (r *Repository) ExtendSession(ctx context.Context, sid string, expiresAt time.Time, info md.DeviceInfo) (*md.Session, error) {
	const op = "sessions.ExtendSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Session{}
	err := r.conn.GetContext(
		ctx,
		res,
		sessionExtendQ,
		sid,
		expiresAt,
		info.Name,
		info.IP,
		info.UA,
		info.Location,
		info.Fingerprint,
		info.LastActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to extend session", zap.String("op", op), zap.String("sid", sid), zap.Error(err))
		return nil, err
	}

	return res, nil
}

// RotateTokens swaps the token pair only if the stored refresh token still
// equals oldRefresh and the session is live at now.
func (r *Repository) RotateTokens(ctx context.Context, sid, oldRefresh, access, refresh string, now time.Time) (*md.Session, error) {
	const op = "sessions.RotateTokens.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Session{}
	if err := r.conn.GetContext(ctx, res, sessionRotateQ, sid, oldRefresh, access, refresh, now); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to rotate tokens", zap.String("op", op), zap.String("sid", sid), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) TouchSession(ctx context.Context, sid string, at time.Time) error {
	const op = "sessions.TouchSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, sessionTouchQ, sid, at); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to touch session", zap.String("op", op), zap.String("sid", sid), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) DeactivateSession(ctx context.Context, sid string, now time.Time) (bool, error) {
	const op = "sessions.DeactivateSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, sessionDeactivateQ, sid, now)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to deactivate session", zap.String("op", op), zap.String("sid", sid), zap.Error(err))
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get affected rows", zap.String("op", op), zap.Error(err))
		return false, err
	}

	return n > 0, nil
}

func (r *Repository) DeactivateUserSessions(ctx context.Context, uid uuid.UUID, exclude string, now time.Time) (int64, error) {
	const op = "sessions.DeactivateUserSessions.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, args, err := buildDeactivateUserQuery(uid, exclude, now)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build deactivate query", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	res, err := r.conn.ExecContext(ctx, q, args...)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to deactivate user sessions",
			zap.String("op", op),
			zap.String("uid", uid.String()),
			zap.Error(err),
		)
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get affected rows", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	return n, nil
}

func (r *Repository) ListActiveSessions(ctx context.Context, uid uuid.UUID, now time.Time) ([]*md.Session, error) {
	const op = "sessions.ListActiveSessions.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Session, 0)
	if err := r.conn.SelectContext(ctx, &res, sessionListActiveQ, uid, now); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to list sessions",
			zap.String("op", op),
			zap.String("uid", uid.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return res, nil
}

func buildFingerprintQuery(hash string, uid *uuid.UUID) (string, []any, error) {
	q := sq.Select("s.device_id").
		From("sessions s").
		Where(sq.Eq{"s.fingerprint": hash}).
		OrderBy("s.last_active DESC", "s.id ASC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	if uid != nil {
		q = q.Where(sq.Eq{"s.user_id": *uid})
	}

	return q.ToSql()
}

func buildDeactivateUserQuery(uid uuid.UUID, exclude string, now time.Time) (string, []any, error) {
	q := sq.Update("sessions").
		Set("is_active", false).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": uid, "is_active": true}).
		PlaceholderFormat(sq.Dollar)

	if exclude != "" {
		q = q.Where(sq.NotEq{"id": exclude})
	}

	return q.ToSql()
}
