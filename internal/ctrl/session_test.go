package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JMURv/session-core/internal/auth/jwt"
	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/device"
	"github.com/JMURv/session-core/internal/dto"
	md "github.com/JMURv/session-core/internal/models"
	"github.com/JMURv/session-core/internal/mocks"
	"github.com/JMURv/session-core/internal/repo"
	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	repo   *mocks.MockAppRepo
	cache  *mocks.MockSessionCache
	tokens *mocks.MockJWTPort
	hasher *mocks.MockHasher
	bus    *mocks.MockInvalidationBus
}

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestCtrl(t *testing.T, opts ...Option) (*Controller, deps) {
	t.Helper()
	mc := gomock.NewController(t)
	d := deps{
		repo:   mocks.NewMockAppRepo(mc),
		cache:  mocks.NewMockSessionCache(mc),
		tokens: mocks.NewMockJWTPort(mc),
		hasher: mocks.NewMockHasher(mc),
		bus:    mocks.NewMockInvalidationBus(mc),
	}

	opts = append([]Option{WithClock(func() time.Time { return fixedNow }), WithBus(d.bus)}, opts...)
	c := New(d.repo, d.cache, d.tokens, d.hasher, config.SessionConfig{TTL: 24 * time.Hour}, opts...)
	return c, d
}

func activeSession(uid uuid.UUID) *md.Session {
	return &md.Session{
		ID:           uuid.NewString(),
		UserID:       uid,
		DeviceID:     uuid.NewString(),
		DeviceInfo:   md.DeviceInfo{Name: "Chrome on Linux", Fingerprint: "fp", LastActive: fixedNow.Add(-time.Hour)},
		AccessToken:  "access",
		RefreshToken: "refresh",
		IsActive:     true,
		ExpiresAt:    fixedNow.Add(time.Hour),
	}
}

func TestController_CreateSession(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	fp := &dto.Fingerprint{UserAgent: "ua", Language: "en"}
	hash := device.Fingerprint(*fp)
	dbErr := errors.New("db error")
	pair := jwt.Pair{Access: "access", Refresh: "refresh", AccessExpiresAt: fixedNow.Add(time.Minute)}

	tests := []struct {
		name    string
		opts    dto.SessionOptions
		setup   func(d deps, existing *md.Session)
		check   func(t *testing.T, s *md.Session, existing *md.Session)
		wantErr error
	}{
		{
			name: "NewDevice",
			opts: dto.SessionOptions{DeviceName: "Laptop"},
			setup: func(d deps, _ *md.Session) {
				d.repo.EXPECT().GetActiveSessionByDevice(gomock.Any(), uid, gomock.Any(), fixedNow).Return(nil, repo.ErrNotFound)
				d.tokens.EXPECT().GenPair(gomock.Any(), uid, gomock.Any(), gomock.Any()).Return(pair, nil)
				d.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any(), fixedNow).Return(nil)
				d.cache.EXPECT().Set(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, s *md.Session, _ *md.Session) {
				assert.Equal(t, uid, s.UserID)
				assert.Equal(t, "Laptop", s.Name)
				assert.Equal(t, "access", s.AccessToken)
				assert.True(t, s.IsActive)
				assert.Equal(t, fixedNow.Add(24*time.Hour), s.ExpiresAt)
				assert.NotEmpty(t, s.DeviceID)
			},
		},
		{
			name: "ReconciledDeviceReusesSession",
			opts: dto.SessionOptions{Fingerprint: fp},
			setup: func(d deps, existing *md.Session) {
				d.repo.EXPECT().FindDeviceByFingerprint(gomock.Any(), hash, nil).Return(existing.DeviceID, nil)
				d.repo.EXPECT().GetActiveSessionByDevice(gomock.Any(), uid, existing.DeviceID, fixedNow).Return(existing, nil)
				d.tokens.EXPECT().ParseKind(gomock.Any(), existing.RefreshToken, jwt.Refresh).Return(jwt.Claims{}, nil)

				extended := existing.Clone()
				extended.ExpiresAt = fixedNow.Add(24 * time.Hour)
				d.repo.EXPECT().
					ExtendSession(gomock.Any(), existing.ID, fixedNow.Add(24*time.Hour), gomock.Any()).
					Return(extended, nil)
				d.cache.EXPECT().Invalidate(existing.ID)
				d.cache.EXPECT().Set(existing.ID, extended)
			},
			check: func(t *testing.T, s *md.Session, existing *md.Session) {
				assert.Equal(t, existing.ID, s.ID)
				assert.Equal(t, existing.AccessToken, s.AccessToken)
				assert.True(t, s.ExpiresAt.After(existing.ExpiresAt))
			},
		},
		{
			name: "DeadRefreshRetiresSession",
			opts: dto.SessionOptions{Fingerprint: fp},
			setup: func(d deps, existing *md.Session) {
				d.repo.EXPECT().FindDeviceByFingerprint(gomock.Any(), hash, nil).Return(existing.DeviceID, nil)
				gomock.InOrder(
					d.repo.EXPECT().
						GetActiveSessionByDevice(gomock.Any(), uid, existing.DeviceID, fixedNow).
						Return(existing, nil),
					d.tokens.EXPECT().
						ParseKind(gomock.Any(), existing.RefreshToken, jwt.Refresh).
						Return(jwt.Claims{}, ErrTokenExpired),
					d.repo.EXPECT().DeactivateSession(gomock.Any(), existing.ID, fixedNow).Return(true, nil),
					d.tokens.EXPECT().GenPair(gomock.Any(), uid, gomock.Any(), existing.DeviceID).Return(pair, nil),
					d.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any(), fixedNow).Return(nil),
				)
				d.cache.EXPECT().Invalidate(existing.ID)
				d.bus.EXPECT().PublishSession(gomock.Any(), existing.ID).Return(nil)
				d.cache.EXPECT().Set(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, s *md.Session, existing *md.Session) {
				assert.NotEqual(t, existing.ID, s.ID)
				assert.Equal(t, existing.DeviceID, s.DeviceID)
				assert.Equal(t, "refresh", s.RefreshToken)
			},
		},
		{
			name: "DeadRefreshRetireFailure",
			setup: func(d deps, existing *md.Session) {
				d.repo.EXPECT().GetActiveSessionByDevice(gomock.Any(), uid, gomock.Any(), fixedNow).Return(existing, nil)
				d.tokens.EXPECT().
					ParseKind(gomock.Any(), existing.RefreshToken, jwt.Refresh).
					Return(jwt.Claims{}, ErrTokenExpired)
				d.repo.EXPECT().DeactivateSession(gomock.Any(), existing.ID, fixedNow).Return(false, dbErr)
			},
			wantErr: ErrPersistenceUnavailable,
		},
		{
			name: "ReconcileFailureMintsDevice",
			opts: dto.SessionOptions{Fingerprint: fp},
			setup: func(d deps, existing *md.Session) {
				d.repo.EXPECT().FindDeviceByFingerprint(gomock.Any(), hash, nil).Return("", dbErr)
				d.repo.EXPECT().
					GetActiveSessionByDevice(gomock.Any(), uid, gomock.Not(existing.DeviceID), fixedNow).
					Return(nil, repo.ErrNotFound)
				d.tokens.EXPECT().GenPair(gomock.Any(), uid, gomock.Any(), gomock.Any()).Return(pair, nil)
				d.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any(), fixedNow).Return(nil)
				d.cache.EXPECT().Set(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, s *md.Session, existing *md.Session) {
				assert.NotEqual(t, existing.DeviceID, s.DeviceID)
				assert.Equal(t, hash, s.Fingerprint)
			},
		},
		{
			name: "LookupFailure",
			setup: func(d deps, _ *md.Session) {
				d.repo.EXPECT().GetActiveSessionByDevice(gomock.Any(), uid, gomock.Any(), fixedNow).Return(nil, dbErr)
			},
			wantErr: ErrPersistenceUnavailable,
		},
		{
			name: "TokenFailure",
			setup: func(d deps, _ *md.Session) {
				d.repo.EXPECT().GetActiveSessionByDevice(gomock.Any(), uid, gomock.Any(), fixedNow).Return(nil, repo.ErrNotFound)
				d.tokens.EXPECT().GenPair(gomock.Any(), uid, gomock.Any(), gomock.Any()).Return(jwt.Pair{}, jwt.ErrWhileCreatingToken)
			},
			wantErr: jwt.ErrWhileCreatingToken,
		},
		{
			name: "PersistFailure",
			setup: func(d deps, _ *md.Session) {
				d.repo.EXPECT().GetActiveSessionByDevice(gomock.Any(), uid, gomock.Any(), fixedNow).Return(nil, repo.ErrNotFound)
				d.tokens.EXPECT().GenPair(gomock.Any(), uid, gomock.Any(), gomock.Any()).Return(pair, nil)
				d.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any(), fixedNow).Return(dbErr)
			},
			wantErr: ErrPersistenceUnavailable,
		},
		{
			name: "LostRaceReusesWinner",
			opts: dto.SessionOptions{Fingerprint: fp},
			setup: func(d deps, existing *md.Session) {
				d.repo.EXPECT().FindDeviceByFingerprint(gomock.Any(), hash, nil).Return(existing.DeviceID, nil)
				gomock.InOrder(
					d.repo.EXPECT().
						GetActiveSessionByDevice(gomock.Any(), uid, existing.DeviceID, fixedNow).
						Return(nil, repo.ErrNotFound),
					d.tokens.EXPECT().GenPair(gomock.Any(), uid, gomock.Any(), existing.DeviceID).Return(pair, nil),
					d.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any(), fixedNow).Return(repo.ErrAlreadyExists),
					d.repo.EXPECT().
						GetActiveSessionByDevice(gomock.Any(), uid, existing.DeviceID, fixedNow).
						Return(existing, nil),
					d.tokens.EXPECT().ParseKind(gomock.Any(), existing.RefreshToken, jwt.Refresh).Return(jwt.Claims{}, nil),
					d.repo.EXPECT().
						ExtendSession(gomock.Any(), existing.ID, gomock.Any(), gomock.Any()).
						Return(existing, nil),
				)
				d.cache.EXPECT().Invalidate(existing.ID)
				d.cache.EXPECT().Set(existing.ID, existing)
			},
			check: func(t *testing.T, s *md.Session, existing *md.Session) {
				assert.Equal(t, existing.ID, s.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				c, d := newTestCtrl(t)
				existing := activeSession(uid)
				tt.setup(d, existing)

				s, err := c.CreateSession(ctx, uid, dto.DeviceRequest{IP: "10.0.0.1", UA: "ua"}, tt.opts)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.Nil(t, s)
					return
				}

				require.NoError(t, err)
				tt.check(t, s, existing)
			},
		)
	}
}

func TestController_ValidateSession(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	user := &md.User{ID: uid, Name: "User", Email: "u@example.com", Password: "hash", IsActive: true}
	dbErr := errors.New("db error")

	claimsFor := func(s *md.Session) jwt.Claims {
		return jwt.Claims{
			UID:              s.UserID,
			SID:              s.ID,
			DID:              s.DeviceID,
			Kind:             jwt.Access,
			RegisteredClaims: gjwt.RegisteredClaims{ExpiresAt: gjwt.NewNumericDate(fixedNow.Add(time.Minute))},
		}
	}

	tests := []struct {
		name   string
		token  string
		setup  func(d deps, s *md.Session)
		wantOK bool
	}{
		{
			name:  "InvalidToken",
			token: "garbage",
			setup: func(d deps, _ *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "garbage", jwt.Access).Return(jwt.Claims{}, ErrTokenInvalid)
			},
		},
		{
			name:  "ExpiredToken",
			token: "access",
			setup: func(d deps, _ *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "access", jwt.Access).Return(jwt.Claims{}, ErrTokenExpired)
			},
		},
		{
			name:  "CacheHit",
			token: "access",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "access", jwt.Access).Return(claimsFor(s), nil)
				d.cache.EXPECT().Get(s.ID).Return(s, true)
				d.repo.EXPECT().GetUserByID(gomock.Any(), uid).Return(user, nil)
				d.cache.EXPECT().ShouldUpdateLastActive(s.ID).Return(false)
			},
			wantOK: true,
		},
		{
			name:  "CacheMissReadsStore",
			token: "access",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "access", jwt.Access).Return(claimsFor(s), nil)
				d.cache.EXPECT().Get(s.ID).Return(nil, false)
				d.repo.EXPECT().GetSession(gomock.Any(), s.ID).Return(s, nil)
				d.cache.EXPECT().Set(s.ID, s)
				d.repo.EXPECT().GetUserByID(gomock.Any(), uid).Return(user, nil)
				d.cache.EXPECT().ShouldUpdateLastActive(s.ID).Return(true)
				d.repo.EXPECT().TouchSession(gomock.Any(), s.ID, fixedNow).Return(dbErr)
			},
			wantOK: true,
		},
		{
			name:  "SessionNotFound",
			token: "access",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "access", jwt.Access).Return(claimsFor(s), nil)
				d.cache.EXPECT().Get(s.ID).Return(nil, false)
				d.repo.EXPECT().GetSession(gomock.Any(), s.ID).Return(nil, repo.ErrNotFound)
			},
		},
		{
			name:  "StoreUnavailable",
			token: "access",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "access", jwt.Access).Return(claimsFor(s), nil)
				d.cache.EXPECT().Get(s.ID).Return(nil, false)
				d.repo.EXPECT().GetSession(gomock.Any(), s.ID).Return(nil, dbErr)
			},
		},
		{
			name:  "TokenMismatch",
			token: "old-access",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "old-access", jwt.Access).Return(claimsFor(s), nil)
				d.cache.EXPECT().Get(s.ID).Return(s, true)
				d.cache.EXPECT().Invalidate(s.ID)
			},
		},
		{
			name:  "DeactivatedInCache",
			token: "access",
			setup: func(d deps, s *md.Session) {
				inactive := s.Clone()
				inactive.IsActive = false
				d.tokens.EXPECT().ParseKind(gomock.Any(), "access", jwt.Access).Return(claimsFor(s), nil)
				d.cache.EXPECT().Get(s.ID).Return(inactive, true)
				d.cache.EXPECT().Invalidate(s.ID)
			},
		},
		{
			name:  "ExpiredInStore",
			token: "access",
			setup: func(d deps, s *md.Session) {
				expired := s.Clone()
				expired.ExpiresAt = fixedNow
				d.tokens.EXPECT().ParseKind(gomock.Any(), "access", jwt.Access).Return(claimsFor(s), nil)
				d.cache.EXPECT().Get(s.ID).Return(nil, false)
				d.repo.EXPECT().GetSession(gomock.Any(), s.ID).Return(expired, nil)
				d.cache.EXPECT().Invalidate(s.ID)
			},
		},
		{
			name:  "UserMissing",
			token: "access",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "access", jwt.Access).Return(claimsFor(s), nil)
				d.cache.EXPECT().Get(s.ID).Return(s, true)
				d.repo.EXPECT().GetUserByID(gomock.Any(), uid).Return(nil, repo.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				c, d := newTestCtrl(t)
				s := activeSession(uid)
				tt.setup(d, s)

				res, ok := c.ValidateSession(ctx, tt.token)
				require.NoError(t, c.Shutdown(ctx))

				assert.Equal(t, tt.wantOK, ok)
				if !tt.wantOK {
					assert.Nil(t, res)
					return
				}

				assert.Equal(t, s.ID, res.Session.ID)
				assert.Equal(t, uid, res.User.ID)
				assert.Equal(t, s.ID, res.Payload.SID)
			},
		)
	}
}

func TestController_RefreshTokens(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	dbErr := errors.New("db error")
	pair := jwt.Pair{
		Access:           "access-2",
		AccessExpiresAt:  fixedNow.Add(15 * time.Minute),
		Refresh:          "refresh-2",
		RefreshExpiresAt: fixedNow.Add(24 * time.Hour),
	}

	refreshClaims := func(s *md.Session) jwt.Claims {
		return jwt.Claims{UID: s.UserID, SID: s.ID, DID: s.DeviceID, Kind: jwt.Refresh}
	}

	tests := []struct {
		name    string
		setup   func(d deps, s *md.Session)
		wantErr error
	}{
		{
			name: "Success",
			setup: func(d deps, s *md.Session) {
				rotated := s.Clone()
				rotated.AccessToken, rotated.RefreshToken = pair.Access, pair.Refresh

				d.tokens.EXPECT().ParseKind(gomock.Any(), "refresh", jwt.Refresh).Return(refreshClaims(s), nil)
				d.repo.EXPECT().GetSessionByRefresh(gomock.Any(), s.ID, "refresh", fixedNow).Return(s, nil)
				d.tokens.EXPECT().GenPair(gomock.Any(), uid, s.ID, s.DeviceID).Return(pair, nil)
				d.repo.EXPECT().
					RotateTokens(gomock.Any(), s.ID, "refresh", pair.Access, pair.Refresh, fixedNow).
					Return(rotated, nil)
				gomock.InOrder(
					d.cache.EXPECT().Invalidate(s.ID),
					d.bus.EXPECT().PublishSession(gomock.Any(), s.ID).Return(nil),
					d.cache.EXPECT().Set(s.ID, rotated),
				)
			},
		},
		{
			name: "ExpiredToken",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "refresh", jwt.Refresh).Return(jwt.Claims{}, ErrTokenExpired)
			},
			wantErr: ErrRefreshTokenRejected,
		},
		{
			name: "NoMatchingRow",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "refresh", jwt.Refresh).Return(refreshClaims(s), nil)
				d.repo.EXPECT().GetSessionByRefresh(gomock.Any(), s.ID, "refresh", fixedNow).Return(nil, repo.ErrNotFound)
			},
			wantErr: ErrRefreshTokenRejected,
		},
		{
			name: "OwnerMismatch",
			setup: func(d deps, s *md.Session) {
				claims := refreshClaims(s)
				claims.UID = uuid.New()
				d.tokens.EXPECT().ParseKind(gomock.Any(), "refresh", jwt.Refresh).Return(claims, nil)
				d.repo.EXPECT().GetSessionByRefresh(gomock.Any(), s.ID, "refresh", fixedNow).Return(s, nil)
			},
			wantErr: ErrRefreshTokenRejected,
		},
		{
			name: "LostRotation",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "refresh", jwt.Refresh).Return(refreshClaims(s), nil)
				d.repo.EXPECT().GetSessionByRefresh(gomock.Any(), s.ID, "refresh", fixedNow).Return(s, nil)
				d.tokens.EXPECT().GenPair(gomock.Any(), uid, s.ID, s.DeviceID).Return(pair, nil)
				d.repo.EXPECT().
					RotateTokens(gomock.Any(), s.ID, "refresh", pair.Access, pair.Refresh, fixedNow).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: ErrRefreshTokenRejected,
		},
		{
			name: "StoreUnavailable",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), "refresh", jwt.Refresh).Return(refreshClaims(s), nil)
				d.repo.EXPECT().GetSessionByRefresh(gomock.Any(), s.ID, "refresh", fixedNow).Return(nil, dbErr)
			},
			wantErr: ErrPersistenceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				c, d := newTestCtrl(t)
				s := activeSession(uid)
				tt.setup(d, s)

				res, err := c.RefreshTokens(ctx, "refresh")
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.Nil(t, res)
					return
				}

				require.NoError(t, err)
				assert.Equal(t, pair.Access, res.AccessToken)
				assert.Equal(t, pair.Refresh, res.RefreshToken)
				assert.Equal(t, pair.AccessExpiresAt, res.AccessExpiresAt)
				assert.Equal(t, s.ID, res.Session.ID)
			},
		)
	}
}

func TestController_DeactivateSession(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(d deps)
		expected bool
	}{
		{
			name: "Flipped",
			setup: func(d deps) {
				d.repo.EXPECT().DeactivateSession(gomock.Any(), "sid", fixedNow).Return(true, nil)
				d.cache.EXPECT().Invalidate("sid")
				d.bus.EXPECT().PublishSession(gomock.Any(), "sid").Return(errors.New("redis down"))
			},
			expected: true,
		},
		{
			name: "AlreadyInactive",
			setup: func(d deps) {
				d.repo.EXPECT().DeactivateSession(gomock.Any(), "sid", fixedNow).Return(false, nil)
				d.cache.EXPECT().Invalidate("sid")
			},
			expected: false,
		},
		{
			name: "StoreError",
			setup: func(d deps) {
				d.repo.EXPECT().DeactivateSession(gomock.Any(), "sid", fixedNow).Return(false, errors.New("db error"))
				d.cache.EXPECT().Invalidate("sid")
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				c, d := newTestCtrl(t)
				tt.setup(d)
				assert.Equal(t, tt.expected, c.DeactivateSession(ctx, "sid"))
			},
		)
	}
}

func TestController_DeactivateAllUserSessions(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	t.Run(
		"Success", func(t *testing.T) {
			c, d := newTestCtrl(t)
			d.repo.EXPECT().DeactivateUserSessions(gomock.Any(), uid, "keep", fixedNow).Return(int64(3), nil)
			d.cache.EXPECT().InvalidateUserSessions(uid).Return(2)
			d.bus.EXPECT().PublishUser(gomock.Any(), uid).Return(nil)

			assert.Equal(t, int64(3), c.DeactivateAllUserSessions(ctx, uid, "keep"))
		},
	)

	t.Run(
		"StoreError", func(t *testing.T) {
			c, d := newTestCtrl(t)
			d.repo.EXPECT().DeactivateUserSessions(gomock.Any(), uid, "", fixedNow).Return(int64(0), errors.New("db error"))
			d.cache.EXPECT().InvalidateUserSessions(uid).Return(0)

			assert.Zero(t, c.DeactivateAllUserSessions(ctx, uid, ""))
		},
	)
}

func TestController_GetUserActiveSessions(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	c, d := newTestCtrl(t)
	list := []*md.Session{activeSession(uid), activeSession(uid)}
	d.repo.EXPECT().ListActiveSessions(gomock.Any(), uid, fixedNow).Return(list, nil)
	assert.Equal(t, list, c.GetUserActiveSessions(ctx, uid))

	d.repo.EXPECT().ListActiveSessions(gomock.Any(), uid, fixedNow).Return(nil, errors.New("db error"))
	res := c.GetUserActiveSessions(ctx, uid)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestController_GetAccessToken(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	exp := fixedNow.Add(5 * time.Minute)

	t.Run(
		"StillValid", func(t *testing.T) {
			c, d := newTestCtrl(t)
			s := activeSession(uid)
			d.cache.EXPECT().Get(s.ID).Return(s, true)
			d.tokens.EXPECT().ParseKind(gomock.Any(), s.AccessToken, jwt.Access).Return(
				jwt.Claims{RegisteredClaims: gjwt.RegisteredClaims{ExpiresAt: gjwt.NewNumericDate(exp)}}, nil,
			)

			res, ok := c.GetAccessToken(ctx, s.ID)
			require.True(t, ok)
			assert.Equal(t, s.AccessToken, res.AccessToken)
			assert.Equal(t, s.RefreshToken, res.RefreshToken)
			assert.True(t, exp.Equal(res.ExpiresAt))
		},
	)

	t.Run(
		"ExpiredRefreshes", func(t *testing.T) {
			c, d := newTestCtrl(t)
			s := activeSession(uid)
			pair := jwt.Pair{Access: "access-2", AccessExpiresAt: exp, Refresh: "refresh-2"}
			rotated := s.Clone()
			rotated.AccessToken, rotated.RefreshToken = pair.Access, pair.Refresh

			d.cache.EXPECT().Get(s.ID).Return(s, true)
			d.tokens.EXPECT().ParseKind(gomock.Any(), s.AccessToken, jwt.Access).Return(jwt.Claims{}, ErrTokenExpired)
			d.tokens.EXPECT().ParseKind(gomock.Any(), s.RefreshToken, jwt.Refresh).Return(
				jwt.Claims{UID: uid, SID: s.ID, Kind: jwt.Refresh}, nil,
			)
			d.repo.EXPECT().GetSessionByRefresh(gomock.Any(), s.ID, s.RefreshToken, fixedNow).Return(s, nil)
			d.tokens.EXPECT().GenPair(gomock.Any(), uid, s.ID, s.DeviceID).Return(pair, nil)
			d.repo.EXPECT().
				RotateTokens(gomock.Any(), s.ID, s.RefreshToken, pair.Access, pair.Refresh, fixedNow).
				Return(rotated, nil)
			d.cache.EXPECT().Invalidate(s.ID)
			d.bus.EXPECT().PublishSession(gomock.Any(), s.ID).Return(nil)
			d.cache.EXPECT().Set(s.ID, rotated)

			res, ok := c.GetAccessToken(ctx, s.ID)
			require.True(t, ok)
			assert.Equal(t, "access-2", res.AccessToken)
			assert.Equal(t, "refresh-2", res.RefreshToken)
			assert.Equal(t, exp, res.ExpiresAt)
		},
	)

	t.Run(
		"Missing", func(t *testing.T) {
			c, d := newTestCtrl(t)
			d.cache.EXPECT().Get("sid").Return(nil, false)
			d.repo.EXPECT().GetSession(gomock.Any(), "sid").Return(nil, repo.ErrNotFound)

			res, ok := c.GetAccessToken(ctx, "sid")
			assert.False(t, ok)
			assert.Nil(t, res)
		},
	)

	t.Run(
		"TamperedStoredToken", func(t *testing.T) {
			c, d := newTestCtrl(t)
			s := activeSession(uid)
			d.cache.EXPECT().Get(s.ID).Return(s, true)
			d.tokens.EXPECT().ParseKind(gomock.Any(), s.AccessToken, jwt.Access).Return(jwt.Claims{}, ErrTokenInvalid)

			_, ok := c.GetAccessToken(ctx, s.ID)
			assert.False(t, ok)
		},
	)
}

func TestController_SessionIDByRefresh(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	dbErr := errors.New("db error")

	tests := []struct {
		name   string
		setup  func(d deps, s *md.Session)
		wantOK bool
	}{
		{
			name: "Success",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), s.RefreshToken, jwt.Refresh).Return(
					jwt.Claims{UID: uid, SID: s.ID, Kind: jwt.Refresh}, nil,
				)
				d.repo.EXPECT().GetSessionByRefresh(gomock.Any(), s.ID, s.RefreshToken, fixedNow).Return(s, nil)
			},
			wantOK: true,
		},
		{
			name: "ExpiredToken",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), s.RefreshToken, jwt.Refresh).Return(jwt.Claims{}, ErrTokenExpired)
			},
		},
		{
			name: "Superseded",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), s.RefreshToken, jwt.Refresh).Return(
					jwt.Claims{UID: uid, SID: s.ID, Kind: jwt.Refresh}, nil,
				)
				d.repo.EXPECT().GetSessionByRefresh(gomock.Any(), s.ID, s.RefreshToken, fixedNow).Return(nil, repo.ErrNotFound)
			},
		},
		{
			name: "StoreUnavailable",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), s.RefreshToken, jwt.Refresh).Return(
					jwt.Claims{UID: uid, SID: s.ID, Kind: jwt.Refresh}, nil,
				)
				d.repo.EXPECT().GetSessionByRefresh(gomock.Any(), s.ID, s.RefreshToken, fixedNow).Return(nil, dbErr)
			},
		},
		{
			name: "OwnerMismatch",
			setup: func(d deps, s *md.Session) {
				d.tokens.EXPECT().ParseKind(gomock.Any(), s.RefreshToken, jwt.Refresh).Return(
					jwt.Claims{UID: uuid.New(), SID: s.ID, Kind: jwt.Refresh}, nil,
				)
				d.repo.EXPECT().GetSessionByRefresh(gomock.Any(), s.ID, s.RefreshToken, fixedNow).Return(s, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				c, d := newTestCtrl(t)
				s := activeSession(uid)
				tt.setup(d, s)

				sid, ok := c.SessionIDByRefresh(ctx, s.RefreshToken)
				assert.Equal(t, tt.wantOK, ok)
				if tt.wantOK {
					assert.Equal(t, s.ID, sid)
				} else {
					assert.Empty(t, sid)
				}
			},
		)
	}
}

func TestController_NotifiesNewDevice(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	user := &md.User{ID: uid, Email: "u@example.com"}

	mc := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(mc)
	c, d := newTestCtrl(t, WithNotifier(notifier))

	d.repo.EXPECT().GetActiveSessionByDevice(gomock.Any(), uid, gomock.Any(), fixedNow).Return(nil, repo.ErrNotFound)
	d.tokens.EXPECT().GenPair(gomock.Any(), uid, gomock.Any(), gomock.Any()).Return(jwt.Pair{Access: "a", Refresh: "r"}, nil)
	d.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any(), fixedNow).Return(nil)
	d.cache.EXPECT().Set(gomock.Any(), gomock.Any())
	d.repo.EXPECT().GetUserByID(gomock.Any(), uid).Return(user, nil)
	notifier.EXPECT().NewDeviceSignIn(gomock.Any(), user, gomock.Any()).Return(nil)

	_, err := c.CreateSession(ctx, uid, dto.DeviceRequest{UA: "ua"}, dto.SessionOptions{})
	require.NoError(t, err)
	require.NoError(t, c.Shutdown(ctx))
}

func TestController_Shutdown(t *testing.T) {
	c, _ := newTestCtrl(t)

	release := make(chan struct{})
	c.background(func(context.Context) { <-release })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.Shutdown(ctx), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, c.Shutdown(context.Background()))
}
