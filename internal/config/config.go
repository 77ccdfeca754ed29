package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"sessions"`

	Server  ServerConfig  `envPrefix:"SERVER_"`
	Store   StoreConfig   `envPrefix:"STORE_"`
	DB      DBConfig      `envPrefix:"POSTGRES_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	Jaeger  JaegerConfig  `envPrefix:"JAEGER_"`
	Auth    AuthConfig    `envPrefix:"AUTH_"`
	Session SessionConfig `envPrefix:"SESSION_"`
	Email   EmailConfig   `envPrefix:"EMAIL_"`
}

type ServerConfig struct {
	Mode     string `env:"MODE"      envDefault:"dev"`
	Port     int    `env:"PORT"      envDefault:"8080"`
	GRPCPort int    `env:"GRPC_PORT" envDefault:"50050"`
	Scheme   string `env:"SCHEME"    envDefault:"http"`
	Domain   string `env:"DOMAIN"    envDefault:"localhost"`
}

// StoreConfig selects the session and user store. The memory driver keeps
// everything in process and is meant for local development.
type StoreConfig struct {
	Driver       string `env:"DRIVER"        envDefault:"postgres"`
	SeedEmail    string `env:"SEED_EMAIL"`
	SeedPassword string `env:"SEED_PASSWORD"`
}

type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Database string `env:"DB"       envDefault:"sessions"`
}

// DSN builds a pgx connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

type RedisConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Addr    string `env:"ADDR"    envDefault:"localhost:6379"`
	Pass    string `env:"PASS"`
	DB      int    `env:"DB"      envDefault:"0"`
	Channel string `env:"CHANNEL" envDefault:"sessions:invalidate"`
}

type JaegerConfig struct {
	Sampler  SamplerConfig  `envPrefix:"SAMPLER_"`
	Reporter ReporterConfig `envPrefix:"REPORTER_"`
}

type SamplerConfig struct {
	Type  string  `env:"TYPE"  envDefault:"const"`
	Param float64 `env:"PARAM" envDefault:"1"`
}

type ReporterConfig struct {
	LogSpans           bool   `env:"LOG_SPANS"             envDefault:"false"`
	LocalAgentHostPort string `env:"LOCAL_AGENT_HOST_PORT" envDefault:"localhost:6831"`
}

type AuthConfig struct {
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
	JWT        JWTConfig     `envPrefix:"JWT_"`
	Captcha    CaptchaConfig `envPrefix:"CAPTCHA_"`
}

type JWTConfig struct {
	Secret     string        `env:"SECRET,required"`
	Issuer     string        `env:"ISSUER"      envDefault:"sessions"`
	AccessTTL  time.Duration `env:"ACCESS_TTL"  envDefault:"15m"`
	RefreshTTL time.Duration `env:"REFRESH_TTL" envDefault:"168h"`
}

type CaptchaConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Secret  string `env:"SECRET"`
}

type SessionConfig struct {
	// TTL is the absolute session lifetime, independent of token expiry.
	TTL               time.Duration `env:"TTL"                envDefault:"168h"`
	CacheSize         int           `env:"CACHE_SIZE"         envDefault:"10000"`
	CacheTTL          time.Duration `env:"CACHE_TTL"          envDefault:"5m"`
	ActivityThreshold time.Duration `env:"ACTIVITY_THRESHOLD" envDefault:"1m"`
	SweepInterval     time.Duration `env:"SWEEP_INTERVAL"     envDefault:"1m"`
}

type EmailConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Server  string `env:"SERVER"`
	Port    int    `env:"PORT"    envDefault:"587"`
	User    string `env:"USER"`
	Pass    string `env:"PASS"`
	Admin   string `env:"ADMIN"`
}

// Load reads an optional .env file at path and then parses the environment.
// Variables already present in the environment win over the file.
func Load(path string) (Config, error) {
	conf := Config{}
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return conf, err
		}
	}

	if err := env.Parse(&conf); err != nil {
		return conf, err
	}

	return conf, nil
}

func MustLoad(path string) Config {
	conf, err := Load(path)
	if err != nil {
		zap.L().Fatal("failed to load config", zap.String("path", path), zap.Error(err))
	}

	zap.L().Info("Config loaded", zap.String("path", path))
	return conf
}
