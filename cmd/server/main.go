// Command server runs the match statistics HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/ovasylenko/match-stats-service/internal/cache"
	"github.com/ovasylenko/match-stats-service/internal/config"
	"github.com/ovasylenko/match-stats-service/internal/handler"
	"github.com/ovasylenko/match-stats-service/internal/logger"
	"github.com/ovasylenko/match-stats-service/internal/repository"
	"github.com/ovasylenko/match-stats-service/internal/repository/postgres"
	"github.com/ovasylenko/match-stats-service/internal/service"
	"github.com/ovasylenko/match-stats-service/migrations"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer repo.Close()

	if err := runMigrations(repo); err != nil {
		appLogger.Fatal().Err(err).Msg("migrations failed")
	}

	// Redis is optional; without it the stats service recomputes on every read.
	var statsCache service.StatsCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			appLogger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, stats caching disabled")
		} else {
			statsCache = cache.New(rdb, appLogger)
			appLogger.Info().Str("addr", cfg.Redis.Addr).Msg("stats cache enabled")
		}
	}

	pool := repo.Pool()
	matchRepo := postgres.NewMatchRepository(pool)
	rosterRepo := postgres.NewRosterRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	txManager := postgres.NewTxManager(pool)
	pinger := postgres.NewPinger(pool)

	matchSvc := service.NewMatchService(matchRepo, rosterRepo, txManager, appLogger)
	eventSvc := service.NewEventService(eventRepo, matchRepo, txManager, appLogger)
	statsSvc := service.NewStatsService(matchRepo, rosterRepo, eventRepo, statsCache, appLogger)

	if cfg.Logger.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, pinger, matchSvc, eventSvc, statsSvc)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		appLogger.Fatal().Err(err).Msg("http server failed")
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("server stopped")
}

// runMigrations applies the embedded goose migrations over the shared pool.
func runMigrations(repo *repository.Repository) error {
	db := stdlib.OpenDBFromPool(repo.Pool())
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "goose_sql"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
