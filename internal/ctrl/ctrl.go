package ctrl

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/JMURv/session-core/internal/auth"
	"github.com/JMURv/session-core/internal/auth/jwt"
	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/device"
	md "github.com/JMURv/session-core/internal/models"
	"github.com/google/uuid"
)

type AppRepo interface {
	sessionRepo
	userRepo
}

type AppCtrl interface {
	sessionCtrl
	authCtrl
}

type SessionCache interface {
	io.Closer
	Get(id string) (*md.Session, bool)
	Set(id string, s *md.Session, ttl ...time.Duration)
	Invalidate(id string)
	InvalidateUserSessions(uid uuid.UUID) int
	ShouldUpdateLastActive(id string) bool
}

// InvalidationBus fans cache invalidations out to other instances.
type InvalidationBus interface {
	PublishSession(ctx context.Context, sid string) error
	PublishUser(ctx context.Context, uid uuid.UUID) error
}

type Notifier interface {
	NewDeviceSignIn(ctx context.Context, u *md.User, s *md.Session) error
}

type Controller struct {
	repo     AppRepo
	cache    SessionCache
	tokens   jwt.Port
	hasher   auth.Hasher
	device   *device.Identity
	bus      InvalidationBus
	notifier Notifier

	sessionTTL time.Duration
	now        func() time.Time
	wg         sync.WaitGroup
}

type Option func(*Controller)

func WithBus(bus InvalidationBus) Option {
	return func(c *Controller) {
		c.bus = bus
	}
}

func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func New(
	repo AppRepo,
	cache SessionCache,
	tokens jwt.Port,
	hasher auth.Hasher,
	conf config.SessionConfig,
	opts ...Option,
) *Controller {
	c := &Controller{
		repo:       repo,
		cache:      cache,
		tokens:     tokens,
		hasher:     hasher,
		device:     device.New(repo),
		sessionTTL: conf.TTL,
		now:        time.Now,
	}
	if c.sessionTTL <= 0 {
		c.sessionTTL = config.RefreshTokenDuration
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Shutdown waits for background activity writes and notifications.
func (c *Controller) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// background runs fn detached from the request with a bounded timeout.
func (c *Controller) background(fn func(ctx context.Context)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), config.BackgroundTimeout)
		defer cancel()
		fn(ctx)
	}()
}
