package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gramvista/internal/config"
	"gramvista/internal/handler"
	"gramvista/internal/logger"
	"gramvista/internal/repository"
	"gramvista/internal/service"
	"gramvista/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logr := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel})
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	principals, products, bookings, health, closeStore := openStore(ctx, cfg, logr)
	defer closeStore()

	// --- Services ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, utils.TokenLifetime)
	svcs := handler.Services{
		Auth:     service.NewAuthService(principals, jwtUtil, service.NewLogResetNotifier(logr), logr),
		Products: service.NewProductService(products),
		Bookings: service.NewBookingService(bookings, principals),
	}

	router := handler.NewRouter(svcs, logr, health)

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info().Str("port", cfg.ServerPort).Str("store", cfg.Store).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal().Err(err).Msg("listen")
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	logr.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}
	logr.Info().Msg("server exiting")
}

func openStore(ctx context.Context, cfg *config.Config, logr zerolog.Logger) (
	repository.PrincipalRepository,
	repository.ProductRepository,
	repository.BookingRepository,
	handler.HealthCheck,
	func(),
) {
	if cfg.Store == config.StoreMemory {
		logr.Warn().Msg("using in-memory store, data is lost on exit")
		mem := repository.NewMemoryStore()
		return mem, mem.Products(), mem.Bookings(), nil, func() {}
	}

	pool, err := config.ConnectDB(ctx, cfg.DB, logr)
	if err != nil {
		logr.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := config.Migrate(ctx, pool); err != nil {
		pool.Close()
		logr.Fatal().Err(err).Msg("failed to migrate database")
	}

	health := func(ctx context.Context) error { return pool.Ping(ctx) }
	return repository.NewPrincipalRepository(pool),
		repository.NewProductRepository(pool),
		repository.NewBookingRepository(pool),
		health,
		pool.Close
}
