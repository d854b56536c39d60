package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-reservation/internal/db"
	"github.com/BruksfildServices01/barbershop-reservation/internal/logging"
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

	if _, err := seed.Run(context.Background(), db, seed.Options{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		Timezone:      cfg.Timezone,
	}, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}
