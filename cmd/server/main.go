package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/api"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/domain"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/ports"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/core/service"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/internal/infrastructure/config"
	mongodb "github.com/sahil8017/Axicom-Event-Management-Assignment/internal/infrastructure/db/mongo"
	redisdb "github.com/sahil8017/Axicom-Event-Management-Assignment/internal/infrastructure/db/redis"
	"github.com/sahil8017/Axicom-Event-Management-Assignment/pkg/logger"
)

// @title        Event Marketplace API
// @version      1.0
// @description  Multi-tenant marketplace for event services: vendors list offerings, admins moderate, users browse and order.
// @BasePath     /api
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		stdlog.Fatalf("config: %v", err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "event-marketplace",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.UsingFallbackSecret() {
		log.Warn().Msg("JWT_SECRET not set, signing tokens with the built-in dev secret; do not expose this deployment")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	users := mongodb.NewUserRepository(db)
	vendors := mongodb.NewVendorRepository(db)
	items := mongodb.NewItemRepository(db)
	orders := mongodb.NewOrderRepository(db)
	carts := mongodb.NewCartRepository(db)
	guests := mongodb.NewGuestRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":   users.EnsureIndexes,
		"vendors": vendors.EnsureIndexes,
		"items":   items.EnsureIndexes,
		"orders":  orders.EnsureIndexes,
		"carts":   carts.EnsureIndexes,
		"guests":  guests.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}

	cache := redisdb.NewCatalogCache(rdb, cfg.CatalogCacheTTL)
	codec := service.NewTokenCodec(cfg.EffectiveJWTSecret(), cfg.TokenTTL)

	svc := api.Services{
		Auth:    service.NewAuthService(users, vendors, codec, log),
		Admin:   service.NewAdminService(users, vendors, items, cache, log),
		Vendor:  service.NewVendorService(vendors, items, orders, cache, log),
		Catalog: service.NewCatalogService(vendors, items, cache, log),
		Cart:    service.NewCartService(carts, items, log),
		Order:   service.NewOrderService(orders, items, log),
		Guest:   service.NewGuestService(guests, log),
	}

	if err := seedAdmin(ctx, cfg, users, log); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	e := api.NewRouter(svc, db, rdb)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

// seedAdmin guarantees one admin account exists so a fresh deployment can be
// administered. It never overwrites an existing account.
func seedAdmin(ctx context.Context, cfg *config.Config, users ports.UserRepository, log zerolog.Logger) error {
	if cfg.AdminPassword == "" {
		log.Info().Msg("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	_, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := service.NewPasswordHasher().Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, &domain.User{
		Name:         "Administrator",
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, domain.ErrEmailTaken) {
		return err
	}
	if err == nil {
		log.Info().Str("email", cfg.AdminEmail).Msg("admin account seeded")
	}
	return nil
}
