package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DevFallbackJWTSecret signs tokens when JWT_SECRET is unset outside
// production. Tokens signed with it are worthless the moment the value is
// public, which it is.
const DevFallbackJWTSecret = "dev-insecure-secret-change-me"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	// AllowInsecureJWTSecret lets a production deployment run on the dev
	// fallback secret. It exists for smoke environments only.
	AllowInsecureJWTSecret bool `env:"ALLOW_INSECURE_JWT_SECRET, default=false"`

	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@marketplace.local"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL, default=5m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=event_marketplace"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsingFallbackSecret reports whether token signing runs on the built-in
// dev secret instead of an operator-provided one.
func (c *Config) UsingFallbackSecret() bool {
	return c.JWTSecret == ""
}

// EffectiveJWTSecret returns the secret tokens are signed with.
func (c *Config) EffectiveJWTSecret() string {
	if c.JWTSecret == "" {
		return DevFallbackJWTSecret
	}
	return c.JWTSecret
}

// Validate rejects configurations that must not reach production: a missing
// JWT secret is fatal there unless the insecure override is set explicitly.
func (c *Config) Validate() error {
	if c.IsProduction() && c.UsingFallbackSecret() && !c.AllowInsecureJWTSecret {
		return errors.New("JWT_SECRET is required in production (set ALLOW_INSECURE_JWT_SECRET=true to override)")
	}
	return nil
}
