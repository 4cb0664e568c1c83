package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-gin-activities/config"
	"go-gin-activities/internal/cache"
	"go-gin-activities/internal/database"
	"go-gin-activities/internal/database/migrations"
	"go-gin-activities/internal/handler"
	"go-gin-activities/internal/middleware"
	"go-gin-activities/internal/repository"
	"go-gin-activities/internal/service"
	"go-gin-activities/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		logger.WithComponent("server").Fatal("Server failed", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	log := logger.WithComponent("server")
	defer logger.L.Sync()

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Startup.Migrate {
		if err := migrations.Up(cfg.Database.URL("pgx5")); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		log.Info("Migrations applied")
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return fmt.Errorf("initialize redis: %w", err)
	}
	defer rdb.Close()

	tx := repository.NewTransactor(pool)
	activityRepo := repository.NewActivityRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	groupRepo := repository.NewGroupRepository(pool)
	personRepo := repository.NewPersonRepository(pool)
	tagRepo := repository.NewTagRepository(pool)

	seeder := service.NewSeedService(tx, activityRepo, eventRepo, groupRepo, personRepo, tagRepo, time.Now)
	if err := seedOnStart(context.Background(), seeder, cfg.Startup); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	activityService := service.NewActivityService(activityRepo, tx, cfg.DeleteSettleDelay)
	eventService := service.NewEventService(eventRepo, personRepo, tagRepo, tx, cfg.DeleteSettleDelay)

	mw := []gin.HandlerFunc{
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.SecurityHeaders(cfg.Server.IsProduction()),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	}
	if cfg.RateLimit.Enabled {
		limiter := cache.NewRedisRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		mw = append(mw, middleware.RateLimit(limiter))
	}

	health := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"postgres": func(ctx context.Context) error { return pool.Ping(ctx) },
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	}, 2*time.Second)

	router, err := handler.NewRouter(cfg.Server.TrustedProxies, mw,
		health,
		handler.NewActivityHandler(activityService),
		handler.NewEventHandler(eventService),
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	return nil
}

// seedOnStart 依啟動設定填入種子資料
func seedOnStart(ctx context.Context, seeder service.SeedService, startup config.StartupConfig) error {
	if !startup.Seed {
		return nil
	}
	return seeder.Seed(ctx, startup.SeedClear)
}
