package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Identity provider names accepted in IDENTITY_PROVIDERS.
const (
	ProviderJWT    = "jwt"
	ProviderCookie = "cookie"
	ProviderRedis  = "redis"
)

// User store backends accepted in USER_STORE.
const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

type Config struct {
	Port          string `env:"PORT,            default=8080"`
	Env           string `env:"ENV,             default=development"`
	LogLevel      string `env:"LOG_LEVEL,       default=info"`
	LogPretty     bool   `env:"LOG_PRETTY,      default=false"`
	UserStore     string `env:"USER_STORE,      default=memory"`
	SeedUsersFile string `env:"SEED_USERS_FILE"`

	Identity IdentityConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Postgres PostgresConfig
}

type IdentityConfig struct {
	// Providers are tried in order; the first one yielding a credential wins.
	Providers          []string `env:"IDENTITY_PROVIDERS,   default=jwt"`
	JWTSecret          string   `env:"JWT_SECRET"`
	SessionSecret      string   `env:"SESSION_SECRET"`
	SessionCookie      string   `env:"SESSION_COOKIE,       default=admin_session"`
	RedisSessionCookie string   `env:"REDIS_SESSION_COOKIE, default=sid"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=admin_users"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

// UsesProvider reports whether name is among the configured identity providers.
func (c *Config) UsesProvider(name string) bool {
	for _, p := range c.Identity.Providers {
		if p == name {
			return true
		}
	}
	return false
}

// Validate checks that every selected component has what it needs.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Identity.Providers) == 0 {
		errs = append(errs, errors.New("IDENTITY_PROVIDERS must name at least one provider"))
	}
	for _, p := range c.Identity.Providers {
		switch p {
		case ProviderJWT:
			if c.Identity.JWTSecret == "" {
				errs = append(errs, errors.New("JWT_SECRET is required by the jwt provider"))
			}
		case ProviderCookie:
			if c.Identity.SessionSecret == "" {
				errs = append(errs, errors.New("SESSION_SECRET is required by the cookie provider"))
			}
		case ProviderRedis:
		default:
			errs = append(errs, fmt.Errorf("unknown identity provider %q", p))
		}
	}

	switch c.UserStore {
	case StoreMemory, StoreMongo:
	case StorePostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("POSTGRES_DSN is required by the postgres user store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown user store %q", c.UserStore))
	}

	return errors.Join(errs...)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
