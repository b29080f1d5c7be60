package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Juan1733/StarWars-REST-API/config"
	"github.com/Juan1733/StarWars-REST-API/database"
	"github.com/Juan1733/StarWars-REST-API/events"
	"github.com/Juan1733/StarWars-REST-API/logging"
	"github.com/Juan1733/StarWars-REST-API/middleware"
	"github.com/Juan1733/StarWars-REST-API/repositories"
	"github.com/Juan1733/StarWars-REST-API/routes"
)

func main() {
	// ============================================
	// 1. CONFIGURACIÓN
	// ============================================
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, !cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("env", cfg.Env),
		zap.Bool("memcached", cfg.MemcachedHost != ""),
		zap.Bool("rabbitmq", cfg.RabbitMQURL != ""),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// 2. BASE DE DATOS
	// ============================================
	db, err := database.Open(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("error closing database", zap.Error(err))
		}
	}()

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database ready")

	// El mismo cron hace el ping a la base y limpia el rate limiter
	scheduler, err := database.StartKeepAlive(db, cfg.KeepAliveSchedule, logger)
	if err != nil {
		logger.Fatal("invalid keepalive schedule", zap.Error(err), zap.String("schedule", cfg.KeepAliveSchedule))
	}

	// ============================================
	// 3. CACHÉ, EVENTOS Y MIDDLEWARES CON ESTADO
	// ============================================
	cache := repositories.NewCacheRepository(cfg.MemcachedHost, cfg.CacheTTL, logger)
	defer cache.Close()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbit, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue, logger)
		if err != nil {
			logger.Fatal("failed to create RabbitMQ publisher", zap.Error(err))
		}
		publisher = rabbit
	}

	limiter := middleware.NewRateLimiter(float64(cfg.RateLimitRPS), cfg.RateLimitBurst, logger)
	if limiter.Enabled() {
		_, err := scheduler.AddFunc("@every 10m", func() {
			removed := limiter.Cleanup(10 * time.Minute)
			logger.Debug("rate limiter cleanup", zap.Int("removed", removed))
		})
		if err != nil {
			logger.Fatal("failed to schedule rate limiter cleanup", zap.Error(err))
		}
	}

	// ============================================
	// 4. RUTAS Y SERVIDOR
	// ============================================
	router := routes.New(routes.Dependencies{
		DB:          db,
		Cache:       cache,
		Publisher:   publisher,
		Logger:      logger,
		Metrics:     middleware.NewMetrics(),
		RateLimiter: limiter,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// ============================================
	// 5. GRACEFUL SHUTDOWN
	// ============================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error shutting down server", zap.Error(err))
	}

	<-scheduler.Stop().Done()

	if err := publisher.Close(); err != nil {
		logger.Warn("error closing publisher", zap.Error(err))
	}

	logger.Info("shutdown complete")
}
