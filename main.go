package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"budgetpilot/config"
	"budgetpilot/httpapi"
	"budgetpilot/repository"
	"budgetpilot/service"
)

var version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	repo := repository.NewCalculationRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.Redis.Enabled {
		cache = repository.NewRedisCache(cfg.Redis.Addr, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
	} else {
		cache = repository.NewMockCache()
	}

	budgetService := service.NewBudgetService(repo, cache)
	budgetHandler := httpapi.NewBudgetHandler(budgetService)
	healthHandler := httpapi.NewHealthHandler(version)

	rateLimiter := httpapi.NewRateLimiter(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)
	defer rateLimiter.Stop()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(httpapi.CORS)

	r.Get("/health", healthHandler.Health)
	r.Get("/version", healthHandler.Version)
	r.Route("/budget", func(r chi.Router) {
		r.With(httpapi.RateLimit(rateLimiter)).Post("/calculate", budgetHandler.Calculate)
		r.Get("/recent", budgetHandler.Recent)
	})

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.ListenAddr).
			Str("version", version).
			Bool("redis", cfg.Redis.Enabled).
			Msg("starting budgetpilot API")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("server failed")
		return
	case <-quit:
		log.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server exited")
}
