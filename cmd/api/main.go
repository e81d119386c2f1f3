package main

import (
	"log"

	"storefront/internal/adapter/http/routes"
	"storefront/pkg/config"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Storefront Service API
// @version         1.0
// @description     Shopkeeper dashboard backend (orders, products, shop profile) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := routes.Run(cfg, logger); err != nil {
		logger.Fatal("service exited", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err == nil {
		cfg.Level = lvl
	}
	return cfg.Build()
}
