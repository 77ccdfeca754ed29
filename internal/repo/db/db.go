package db

import (
	"context"

	"github.com/JMURv/session-core/internal/config"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repository struct {
	conn *sqlx.DB
}

func New(conf config.DBConfig) *Repository {
	conn, err := Open(conf)
	if err != nil {
		zap.L().Fatal("failed to connect to the database", zap.Error(err))
	}
	return conn
}

// Open connects, pings and migrates. Unlike New it reports failures to the caller.
func Open(conf config.DBConfig) (*Repository, error) {
	conn, err := sqlx.Open("pgx", conf.DSN())
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = applyMigrations(conn.DB, conf); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Repository{conn: conn}, nil
}

func (r *Repository) Close(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- r.conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
