// Package redis fans session cache invalidations out to every instance
// sharing the same Redis channel.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/session-core/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type kind string

const (
	kindSession kind = "session"
	kindUser    kind = "user"
)

type event struct {
	Origin string `json:"origin"`
	Kind   kind   `json:"kind"`
	ID     string `json:"id"`
}

// Invalidator is the part of the local session cache remote events act on.
type Invalidator interface {
	Invalidate(id string)
	InvalidateUserSessions(uid uuid.UUID) int
}

type Bus struct {
	cli     *redis.Client
	channel string
	origin  string
}

func New(conf config.RedisConfig) *Bus {
	bus, err := Open(conf)
	if err != nil {
		zap.L().Fatal("Failed to connect to redis", zap.String("addr", conf.Addr), zap.Error(err))
	}
	return bus
}

func Open(conf config.RedisConfig) (*Bus, error) {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Addr,
			Password: conf.Pass,
			DB:       conf.DB,
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, err
	}

	return &Bus{
		cli:     cli,
		channel: conf.Channel,
		origin:  uuid.NewString(),
	}, nil
}

func (b *Bus) Close() error {
	return b.cli.Close()
}

func (b *Bus) PublishSession(ctx context.Context, sid string) error {
	return b.publish(ctx, event{Kind: kindSession, ID: sid})
}

func (b *Bus) PublishUser(ctx context.Context, uid uuid.UUID) error {
	return b.publish(ctx, event{Kind: kindUser, ID: uid.String()})
}

func (b *Bus) publish(ctx context.Context, e event) error {
	const op = "sessions.publish.redis"

	e.Origin = b.origin
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	if err = b.cli.Publish(ctx, b.channel, payload).Err(); err != nil {
		zap.L().Debug(
			"failed to publish invalidation",
			zap.String("op", op),
			zap.String("kind", string(e.Kind)),
			zap.String("id", e.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Listen applies invalidations published by other instances to c until ctx
// is cancelled.
func (b *Bus) Listen(ctx context.Context, c Invalidator) error {
	const op = "sessions.Listen.redis"

	sub := b.cli.Subscribe(ctx, b.channel)
	defer func() {
		if err := sub.Close(); err != nil {
			zap.L().Debug("failed to close subscription", zap.String("op", op), zap.Error(err))
		}
	}()

	if _, err := sub.Receive(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	zap.L().Info("Listening for cache invalidations", zap.String("channel", b.channel))
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := b.apply(msg.Payload, c); err != nil {
				zap.L().Warn(
					"failed to apply invalidation",
					zap.String("op", op),
					zap.String("payload", msg.Payload),
					zap.Error(err),
				)
			}
		}
	}
}

var ErrUnknownEvent = errors.New("unknown invalidation event")

// apply decodes one payload. Events published by this instance are skipped,
// its cache was already invalidated locally.
func (b *Bus) apply(payload string, c Invalidator) error {
	e := event{}
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return err
	}

	if e.Origin == b.origin {
		return nil
	}

	switch e.Kind {
	case kindSession:
		c.Invalidate(e.ID)
	case kindUser:
		uid, err := uuid.Parse(e.ID)
		if err != nil {
			return err
		}
		c.InvalidateUserSessions(uid)
	default:
		return ErrUnknownEvent
	}
	return nil
}
