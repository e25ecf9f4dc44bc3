// Package main is the entry point for the trip search service.
//
//	@title						Trip Search API
//	@version					1.0.0
//	@description				A trip search configuration service covering location lookup, calendar selection, traveller composition, and search dispatch to the flight search API.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/tripdesk/tripsearch/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
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

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/tripdesk/tripsearch/docs"

	"github.com/tripdesk/tripsearch/internal/adapter/flightapi"
	triphttp "github.com/tripdesk/tripsearch/internal/adapter/http"
	"github.com/tripdesk/tripsearch/internal/adapter/http/middleware"
	"github.com/tripdesk/tripsearch/internal/adapter/locdir"
	"github.com/tripdesk/tripsearch/internal/adapter/store"
	"github.com/tripdesk/tripsearch/internal/config"
	"github.com/tripdesk/tripsearch/internal/domain"
	"github.com/tripdesk/tripsearch/internal/infrastructure/logger"
	"github.com/tripdesk/tripsearch/internal/infrastructure/timeutil"
	"github.com/tripdesk/tripsearch/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "tripsearch",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)

	recent := newRecentStore(cfg, log)
	setupRoutes(e, cfg, recent, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// newRecentStore connects the redis-backed recent-searches store. In
// development a redis outage falls back to an in-memory store so the
// service still starts; in production it is fatal.
func newRecentStore(cfg *config.Config, log zerolog.Logger) domain.RecentStore {
	redisStore, err := store.NewRedisStore(store.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err == nil {
		return redisStore
	}

	if cfg.IsDevelopment() {
		log.Warn().Err(err).Msg("Redis unavailable, using in-memory recent searches")
		return store.NewMemoryStore()
	}
	log.Fatal().Err(err).Msg("Failed to connect recent-searches store")
	return nil
}

// setupRoutes wires the adapters and use cases into the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, recent domain.RecentStore, log zerolog.Logger) {
	clock := timeutil.NewRealClock()

	dispatcher := flightapi.NewClient(flightapi.Config{
		BaseURL:       cfg.FlightAPI.BaseURL,
		Timeout:       cfg.FlightAPI.Timeout,
		RatePerSecond: cfg.FlightAPI.RatePerSecond,
		RateBurst:     cfg.FlightAPI.RateBurst,
	}, logger.WithComponent(log, "dispatcher"))

	directory := locdir.NewRemote(locdir.Config{
		BaseURL: cfg.Directory.BaseURL,
		Timeout: cfg.Directory.Timeout,
	}, logger.WithComponent(log, "directory"))

	resolver := usecase.NewLocationResolver(
		directory,
		locdir.FallbackFor(domain.CategoryFlights),
		usecase.ResolverConfig{Debounce: cfg.Directory.Debounce},
		logger.WithComponent(log, "resolver"),
	)

	submitter := usecase.NewSearchSubmitter(dispatcher, recent, clock, logger.WithComponent(log, "submitter"))

	handler := triphttp.NewTripHandler(submitter, resolver, clock)
	triphttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
