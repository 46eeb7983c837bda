// @title        ProRecruit back office API
// @version      1.0
// @description  Session and role-gated portal pages for the ProRecruit back office.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/api"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/api/handler"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/api/middleware"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/service"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/infrastructure/config"
	mongostore "github.com/asaf-cyber/ProRecruit-sub003/internal/infrastructure/db/mongo"
	redisstore "github.com/asaf-cyber/ProRecruit-sub003/internal/infrastructure/db/redis"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/infrastructure/directory"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/infrastructure/memory"
	"github.com/asaf-cyber/ProRecruit-sub003/pkg/logger"
)

const serviceName = "prorecruit-api"

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
		Env:     cfg.Env,
	})

	slots, closeSlots, err := openSlotBackend(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Session.Backend).Msg("failed to open session slot backend")
	}

	dir, err := directory.NewStatic(cfg.Session.DemoPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build credential directory")
	}

	sessions := service.NewSessionFactory(slots, dir, service.NewJWTIssuer(cfg.JWTSecret), cfg.Session.TTL, log)

	e := api.NewRouter(api.Deps{
		Sessions: sessions,
		Session: middleware.SessionOptions{
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.CookieSecure,
			MaxAge:     cfg.Session.Retention,
		},
		Readiness: map[string]handler.Pinger{cfg.Session.Backend: slots},
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Session.Backend).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(log, e, closeSlots)
}

// openSlotBackend connects the configured session slot backend and returns a
// function that releases it.
func openSlotBackend(ctx context.Context, cfg *config.Config) (ports.SlotProvider, func(context.Context) error, error) {
	switch cfg.Session.Backend {
	case config.BackendRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewSlotStore(client, cfg.Session.Retention),
			func(context.Context) error { return client.Close() }, nil

	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  serviceName,
		})
		if err != nil {
			return nil, nil, err
		}
		store := mongostore.NewSlotStore(db, cfg.Session.Retention)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		return store, client.Disconnect, nil

	default:
		return memory.NewSlotStore(), func(context.Context) error { return nil }, nil
	}
}

func waitForShutdown(log zerolog.Logger, e *echo.Echo, closeSlots func(context.Context) error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := closeSlots(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("session slot backend close error")
	}

	log.Info().Msg("server exited cleanly")
}
