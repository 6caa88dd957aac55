package main

import (
	"log"

	"github.com/forkcast/backend/config"
	"github.com/forkcast/backend/internal/database"
	"github.com/forkcast/backend/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg, logger)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := database.RunMigrations(db, logger); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
}
