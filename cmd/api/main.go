// @title        Admin Users API
// @version      1.0
// @description  Admin-only user listing guarded by session or bearer credentials.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/99minutos/admin-users/internal/api"
	"github.com/99minutos/admin-users/internal/api/handler"
	"github.com/99minutos/admin-users/internal/core/ports"
	"github.com/99minutos/admin-users/internal/core/service"
	"github.com/99minutos/admin-users/internal/infrastructure/db/memory"
	"github.com/99minutos/admin-users/internal/infrastructure/db/mongo"
	"github.com/99minutos/admin-users/internal/infrastructure/db/postgres"
	"github.com/99minutos/admin-users/internal/infrastructure/db/redis"
	"github.com/99minutos/admin-users/internal/infrastructure/identity"
	"github.com/99minutos/admin-users/internal/pkg/config"
	"github.com/99minutos/admin-users/pkg/logger"
)

const serviceName = "admin-users"

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: serviceName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	pingers := map[string]handler.Pinger{}
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var rdb *goredis.Client
	if cfg.UsesProvider(config.ProviderRedis) {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		rdb = client
		closers = append(closers, func() { _ = client.Close() })
		pingers["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}

	provider, err := buildIdentityProvider(cfg, rdb)
	if err != nil {
		return err
	}

	store, err := buildUserStore(ctx, cfg, log, pingers, &closers)
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Guard:   service.NewGuard(provider, log),
		Users:   service.NewUserService(store, log),
		Pingers: pingers,
		Logger:  log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.UserStore).Strs("identity", cfg.Identity.Providers).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildIdentityProvider(cfg *config.Config, rdb *goredis.Client) (ports.IdentityProvider, error) {
	chain := make(identity.Chain, 0, len(cfg.Identity.Providers))
	for _, name := range cfg.Identity.Providers {
		switch name {
		case config.ProviderJWT:
			chain = append(chain, identity.NewJWTProvider(cfg.Identity.JWTSecret))
		case config.ProviderCookie:
			store := identity.NewCookieStore(cfg.Identity.SessionSecret)
			chain = append(chain, identity.NewCookieSessionProvider(store, cfg.Identity.SessionCookie))
		case config.ProviderRedis:
			chain = append(chain, identity.NewRedisSessionProvider(rdb, cfg.Identity.RedisSessionCookie))
		default:
			return nil, fmt.Errorf("unknown identity provider %q", name)
		}
	}
	if len(chain) == 1 {
		return chain[0], nil
	}
	return chain, nil
}

func buildUserStore(ctx context.Context, cfg *config.Config, log zerolog.Logger, pingers map[string]handler.Pinger, closers *[]func()) (ports.UserStore, error) {
	switch cfg.UserStore {
	case config.StoreMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  serviceName,
		})
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, func() { _ = client.Disconnect(context.Background()) })
		pingers["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }

		store := mongo.NewUserStore(db, log)
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure user indexes")
		}
		return store, nil

	case config.StorePostgres:
		db, err := postgres.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, func() { _ = db.Close() })
		pingers["postgres"] = db.PingContext
		return postgres.NewUserStore(db), nil

	default:
		store := memory.NewUserStore()
		if cfg.SeedUsersFile != "" {
			f, err := os.Open(cfg.SeedUsersFile)
			if err != nil {
				return nil, fmt.Errorf("open seed users: %w", err)
			}
			defer f.Close()
			n, err := store.LoadSeed(f)
			if err != nil {
				return nil, err
			}
			log.Info().Int("users", n).Str("file", cfg.SeedUsersFile).Msg("seeded in-memory user store")
		}
		return store, nil
	}
}
