package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		for _, k := range keys {
			_ = os.Unsetenv(k)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		unsetAfter(t, "AUTH_JWT_SECRET", "SERVER_PORT", "SESSION_CACHE_SIZE")
		t.Setenv("AUTH_JWT_SECRET", "secret")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "sessions", conf.ServiceName)
		assert.Equal(t, 8080, conf.Server.Port)
		assert.Equal(t, 50050, conf.Server.GRPCPort)
		assert.Equal(t, 10, conf.Auth.BcryptCost)
		assert.Equal(t, 15*time.Minute, conf.Auth.JWT.AccessTTL)
		assert.Equal(t, 168*time.Hour, conf.Auth.JWT.RefreshTTL)
		assert.Equal(t, 10000, conf.Session.CacheSize)
		assert.Equal(t, time.Minute, conf.Session.ActivityThreshold)
		assert.False(t, conf.Redis.Enabled)
	})

	t.Run("FromFile", func(t *testing.T) {
		unsetAfter(t, "AUTH_JWT_SECRET", "SERVER_PORT", "SESSION_CACHE_SIZE")

		path := filepath.Join(t.TempDir(), ".env")
		content := "AUTH_JWT_SECRET=file-secret\nSERVER_PORT=9090\nSESSION_CACHE_SIZE=3\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "file-secret", conf.Auth.JWT.Secret)
		assert.Equal(t, 9090, conf.Server.Port)
		assert.Equal(t, 3, conf.Session.CacheSize)
	})

	t.Run("EnvWinsOverFile", func(t *testing.T) {
		unsetAfter(t, "AUTH_JWT_SECRET", "SERVER_PORT")
		t.Setenv("SERVER_PORT", "7070")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("AUTH_JWT_SECRET=s\nSERVER_PORT=9090\n"), 0o600))

		conf, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7070, conf.Server.Port)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		unsetAfter(t, "AUTH_JWT_SECRET")

		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "sessions"}
	assert.Equal(t, "postgres://u:p@db:5433/sessions?sslmode=disable", c.DSN())
}
