package main

import (
	"log"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/forkcast/backend/config"
	"github.com/forkcast/backend/internal/api"
	"github.com/forkcast/backend/internal/catalog"
	"github.com/forkcast/backend/internal/database"
	"github.com/forkcast/backend/internal/logging"
	"github.com/forkcast/backend/internal/middleware"
	"github.com/forkcast/backend/internal/notify"
	"github.com/forkcast/backend/internal/server"
	"github.com/forkcast/backend/internal/service"
	"github.com/forkcast/backend/internal/store"
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
		logger.Fatal("database connection failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}

	kv := store.NewRedisKV(redisClient, logger)
	cat := catalog.NewGormCatalog(db)
	library := service.NewLibraryService(kv)
	usage := service.NewUsageService(kv, logger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	router := api.SetupRouter(api.Deps{
		Catalog:       cat,
		Prefs:         service.NewPrefsService(kv),
		Library:       library,
		Usage:         usage,
		Search:        service.NewSearchService(cat, library, usage, logger, cfg.Search.Timeout, cfg.Search.Debounce),
		Recommend:     service.NewRecommendService(cat, kv, logger, rng),
		Scheduler:     notify.NewScheduler(logger, nil),
		Validator:     middleware.NewJWTValidator(cfg.Auth.JWTSecret),
		SearchLimiter: middleware.NewSearchRateLimiter(redisClient),
		Logger:        logger,
	})

	if err := server.New(cfg, router, logger).Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
