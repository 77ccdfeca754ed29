package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/session-core/internal/auth"
	"github.com/JMURv/session-core/internal/auth/captcha"
	"github.com/JMURv/session-core/internal/auth/jwt"
	"github.com/JMURv/session-core/internal/cache/memory"
	"github.com/JMURv/session-core/internal/cache/redis"
	"github.com/JMURv/session-core/internal/config"
	"github.com/JMURv/session-core/internal/ctrl"
	"github.com/JMURv/session-core/internal/hdl/grpc"
	"github.com/JMURv/session-core/internal/hdl/http"
	md "github.com/JMURv/session-core/internal/models"
	"github.com/JMURv/session-core/internal/observability/metrics/prometheus"
	"github.com/JMURv/session-core/internal/observability/tracing/jaeger"
	"github.com/JMURv/session-core/internal/repo/db"
	store "github.com/JMURv/session-core/internal/repo/memory"
	"github.com/JMURv/session-core/internal/smtp"
	"go.uber.org/zap"
)

const configPath = ".env"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

type repository interface {
	ctrl.AppRepo
	Close(ctx context.Context) error
}

func mustOpenRepo(ctx context.Context, conf config.Config, hasher auth.Hasher) repository {
	if conf.Store.Driver != config.StoreMemory {
		return db.New(conf.DB)
	}

	zap.L().Warn("Using in-memory store, sessions and users are lost on restart")
	r := store.New()
	if conf.Store.SeedEmail == "" {
		return r
	}

	hash, err := hasher.Hash(conf.Store.SeedPassword)
	if err != nil {
		zap.L().Fatal("Failed to hash seed password", zap.Error(err))
	}

	u := &md.User{Name: conf.Store.SeedEmail, Email: conf.Store.SeedEmail, Password: hash, IsActive: true}
	if _, err = r.CreateUser(ctx, u); err != nil {
		zap.L().Fatal("Failed to seed user", zap.Error(err))
	}
	return r
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	hasher := auth.NewBcrypt(conf.Auth.BcryptCost)
	repo := mustOpenRepo(ctx, conf, hasher)
	cache := memory.New(memory.ConfigFrom(conf.Session))

	opts := make([]ctrl.Option, 0, 2)
	var bus *redis.Bus
	if conf.Redis.Enabled {
		bus = redis.New(conf.Redis)
		opts = append(opts, ctrl.WithBus(bus))
		go func() {
			if err := bus.Listen(ctx, cache); err != nil {
				zap.L().Error("Invalidation listener stopped", zap.Error(err))
			}
		}()
	}

	if conf.Email.Enabled {
		opts = append(opts, ctrl.WithNotifier(smtp.New(conf)))
	}

	svc := ctrl.New(
		repo,
		cache,
		jwt.New(conf.Auth.JWT),
		hasher,
		conf.Session,
		opts...,
	)

	h := http.New(svc, captcha.New(conf.Auth.Captcha))
	g := grpc.New(conf.ServiceName)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)
	go g.Start(conf.Server.GRPCPort)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	sctx, scancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer scancel()

	if err := h.Close(sctx); err != nil {
		zap.L().Warn("Error closing HTTP handler", zap.Error(err))
	}

	if err := g.Close(); err != nil {
		zap.L().Warn("Error closing gRPC handler", zap.Error(err))
	}

	if err := svc.Shutdown(sctx); err != nil {
		zap.L().Warn("Background session writes did not finish", zap.Error(err))
	}

	cancel()
	if bus != nil {
		if err := bus.Close(); err != nil {
			zap.L().Warn("Failed to close connection to Redis", zap.Error(err))
		}
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Error closing session cache", zap.Error(err))
	}

	if err := repo.Close(sctx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}
}
