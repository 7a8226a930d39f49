// Command faunadex-seed creates the catalog index and loads the canonical
// animal records. Safe to re-run: existing index is kept, records are
// overwritten in place.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/faunadex/faunadex/internal/config"
	dbRedis "github.com/faunadex/faunadex/internal/db/redis"
	logpkg "github.com/faunadex/faunadex/internal/logger"
	"github.com/faunadex/faunadex/internal/seed"
)

func main() {
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	loader := seed.New(store, cfg.Catalog.KeyPrefix, cfg.Catalog.Collection)

	if err := loader.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to create catalog index", zap.Error(err))
	}
	logger.Info("Catalog index ready", zap.String("collection", cfg.Catalog.Collection))

	if err := loader.Load(ctx, seed.Catalog); err != nil {
		logger.Fatal("Failed to load catalog records", zap.Error(err))
	}
	logger.Info("Catalog seeded", zap.Int("records", len(seed.Catalog)))
}
