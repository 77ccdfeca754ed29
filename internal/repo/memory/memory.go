// Package memory is an in-process implementation of the session and user
// stores with the same semantics as the Postgres repository.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	md "github.com/JMURv/session-core/internal/models"
	"github.com/JMURv/session-core/internal/repo"
	"github.com/google/uuid"
)

type Repository struct {
	mu       sync.RWMutex
	sessions map[string]*md.Session
	users    map[uuid.UUID]*md.User
}

func New() *Repository {
	return &Repository{
		sessions: make(map[string]*md.Session),
		users:    make(map[uuid.UUID]*md.User),
	}
}

func (r *Repository) Close(context.Context) error {
	return nil
}

func (r *Repository) GetSession(ctx context.Context, sid string) (*md.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sid]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *Repository) GetActiveSessionByDevice(ctx context.Context, uid uuid.UUID, did string, now time.Time) (*md.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *md.Session
	for _, s := range r.sessions {
		if s.UserID != uid || s.DeviceID != did || !s.IsQueryableActive(now) {
			continue
		}
		if found == nil || s.LastActive.After(found.LastActive) {
			found = s
		}
	}

	if found == nil {
		return nil, repo.ErrNotFound
	}
	return found.Clone(), nil
}

func (r *Repository) GetSessionByRefresh(ctx context.Context, sid, refresh string, now time.Time) (*md.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sid]
	if !ok || s.RefreshToken != refresh || !s.IsQueryableActive(now) {
		return nil, repo.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *Repository) FindDeviceByFingerprint(ctx context.Context, hash string, uid *uuid.UUID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *md.Session
	for _, s := range r.sessions {
		if s.Fingerprint != hash || (uid != nil && s.UserID != *uid) {
			continue
		}
		if found == nil || newer(s, found) {
			found = s
		}
	}

	if found == nil {
		return "", repo.ErrNotFound
	}
	return found.DeviceID, nil
}

func (r *Repository) CreateSession(ctx context.Context, s *md.Session, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		return repo.ErrAlreadyExists
	}

	for _, cur := range r.sessions {
		if cur.UserID != s.UserID || cur.DeviceID != s.DeviceID || !cur.IsActive {
			continue
		}
		if !cur.ExpiresAt.After(now) {
			cur.IsActive = false
			cur.UpdatedAt = now
			continue
		}
		return repo.ErrAlreadyExists
	}

	c := s.Clone()
	c.IsActive = true
	c.CreatedAt, c.UpdatedAt = now, now
	r.sessions[c.ID] = c
	return nil
}

func (r *Repository) ExtendSession(ctx context.Context, sid string, expiresAt time.Time, info md.DeviceInfo) (*md.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sid]
	if !ok || !s.IsActive {
		return nil, repo.ErrNotFound
	}

	s.ExpiresAt = expiresAt
	if info.Name != "" {
		s.Name = info.Name
	}
	if info.Location != "" {
		s.Location = info.Location
	}
	if info.Fingerprint != "" {
		s.Fingerprint = info.Fingerprint
	}
	s.IP = info.IP
	s.UA = info.UA
	s.LastActive = info.LastActive
	s.UpdatedAt = info.LastActive
	return s.Clone(), nil
}

func (r *Repository) RotateTokens(ctx context.Context, sid, oldRefresh, access, refresh string, now time.Time) (*md.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sid]
	if !ok || s.RefreshToken != oldRefresh || !s.IsQueryableActive(now) {
		return nil, repo.ErrNotFound
	}

	s.AccessToken = access
	s.RefreshToken = refresh
	lr := now
	s.LastRefresh = &lr
	s.LastActive = now
	s.UpdatedAt = now
	return s.Clone(), nil
}

func (r *Repository) TouchSession(ctx context.Context, sid string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[sid]; ok && s.IsActive && s.LastActive.Before(at) {
		s.LastActive = at
	}
	return nil
}

func (r *Repository) DeactivateSession(ctx context.Context, sid string, now time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sid]
	if !ok || !s.IsActive {
		return false, nil
	}

	s.IsActive = false
	s.UpdatedAt = now
	return true, nil
}

func (r *Repository) DeactivateUserSessions(ctx context.Context, uid uuid.UUID, exclude string, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, s := range r.sessions {
		if s.UserID != uid || !s.IsActive || (exclude != "" && s.ID == exclude) {
			continue
		}
		s.IsActive = false
		s.UpdatedAt = now
		n++
	}
	return n, nil
}

func (r *Repository) ListActiveSessions(ctx context.Context, uid uuid.UUID, now time.Time) ([]*md.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*md.Session, 0)
	for _, s := range r.sessions {
		if s.UserID == uid && s.IsQueryableActive(now) {
			res = append(res, s.Clone())
		}
	}

	sort.Slice(res, func(i, j int) bool { return newer(res[i], res[j]) })
	return res, nil
}

func (r *Repository) GetUserByID(ctx context.Context, uid uuid.UUID) (*md.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[uid]
	if !ok {
		return nil, repo.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *Repository) CreateUser(ctx context.Context, u *md.User) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cur := range r.users {
		if strings.EqualFold(cur.Email, u.Email) {
			return uuid.Nil, repo.ErrAlreadyExists
		}
	}

	c := *u
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	r.users[c.ID] = &c
	return c.ID, nil
}

// newer orders by last activity descending with id ascending as a tie-break.
func newer(a, b *md.Session) bool {
	if !a.LastActive.Equal(b.LastActive) {
		return a.LastActive.After(b.LastActive)
	}
	return a.ID < b.ID
}
