package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	Upstream UpstreamConfig
	Audit    AuditConfig
	Mongo    MongoConfig
	Redis    RedisConfig

	CacheTTL       time.Duration `env:"CACHE_TTL,         default=30s"`
	AuthRatePerMin int           `env:"AUTH_RATE_PER_MIN, default=20"`
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET"`
	TTL          time.Duration `env:"SESSION_TTL,   default=8h"`
	CookieSecure bool          `env:"COOKIE_SECURE, default=false"`
}

type UpstreamConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=http://localhost:8000/v1"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=0s"`
}

type AuditConfig struct {
	Workers   int           `env:"AUDIT_WORKERS,   default=4"`
	Retention time.Duration `env:"AUDIT_RETENTION, default=2160h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=grievance_portal"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Development reports whether the gateway runs on a developer machine.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Validate rejects configurations the gateway cannot run with.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		if !c.Development() {
			return errors.New("SESSION_SECRET is required outside development")
		}
	} else if len(c.Session.Secret) < 16 {
		return errors.New("SESSION_SECRET must be at least 16 characters")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.AuthRatePerMin <= 0 {
		return errors.New("AUTH_RATE_PER_MIN must be positive")
	}
	return nil
}

// devSecret signs session tokens when no secret is configured in development.
const devSecret = "development-only-session-secret"

// Process reads configuration from l. It does not touch any .env file.
func Process(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if cfg.Session.Secret == "" && cfg.Development() {
		cfg.Session.Secret = devSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads an optional .env file, then configuration from environment
// variables using go-envconfig. Variables already set win over the file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("config: failed to read .env: %v", err))
	}
	cfg, err := Process(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}
