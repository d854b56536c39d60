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

	"github.com/BruksfildServices01/barbershop-reservation/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-reservation/internal/db"
	domainCatalog "github.com/BruksfildServices01/barbershop-reservation/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-reservation/internal/infra/cache"
	"github.com/BruksfildServices01/barbershop-reservation/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-reservation/internal/logging"
	"github.com/BruksfildServices01/barbershop-reservation/internal/middleware"
	"github.com/BruksfildServices01/barbershop-reservation/internal/routes"
	"github.com/BruksfildServices01/barbershop-reservation/internal/seed"
)

func main() {

	cfg := config.Load()

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	if cfg.SeedOnStart {
		if _, err := seed.Run(context.Background(), db, seed.Options{
			AdminEmail:    cfg.AdminEmail,
			AdminPassword: cfg.AdminPassword,
			Timezone:      cfg.Timezone,
		}, logger); err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
	}

	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    logger,
		Cache:  catalogCache(cfg, logger),
		Images: imageStore(cfg, logger),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

func catalogCache(cfg *config.Config, logger *zap.Logger) domainCatalog.Cache {
	if cfg.RedisURL == "" {
		return nil
	}

	c, err := cache.NewRedisCatalog(cfg.RedisURL, cfg.CatalogCacheTTL, logger)
	if err != nil {
		logger.Warn("catalog cache disabled", zap.Error(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		logger.Warn("redis unreachable, catalog cache disabled", zap.Error(err))
		_ = c.Close()
		return nil
	}
	return c
}

func imageStore(cfg *config.Config, logger *zap.Logger) domainCatalog.ImageStore {
	if !cfg.S3.Enabled() {
		return storage.Disabled{}
	}
	return storage.NewS3Store(cfg.S3, logger)
}
