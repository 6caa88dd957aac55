// Package api wires the HTTP surface: route registration, request
// decoding and response shaping. All domain behavior lives in the
// service packages.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forkcast/backend/internal/catalog"
	"github.com/forkcast/backend/internal/middleware"
	"github.com/forkcast/backend/internal/notify"
	"github.com/forkcast/backend/internal/service"
)

// Deps carries everything the router needs.
type Deps struct {
	Catalog   catalog.Catalog
	Prefs     *service.PrefsService
	Library   *service.LibraryService
	Usage     *service.UsageService
	Search    *service.SearchService
	Recommend *service.RecommendService
	Scheduler *notify.Scheduler
	Validator middleware.TokenValidator

	// SearchLimiter is optional; nil disables rate limiting.
	SearchLimiter *middleware.RateLimiter

	Logger *zap.Logger
}

// SetupRouter builds the gin engine with all routes registered.
func SetupRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(d.Logger))
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(d.Validator))

	var searchLimit gin.HandlerFunc
	if d.SearchLimiter != nil {
		searchLimit = d.SearchLimiter.RateLimitMiddleware()
	}

	NewRecipeHandler(d.Catalog, d.Search, d.Recommend, d.Library, d.Usage, d.Logger).RegisterRoutes(v1, searchLimit)
	NewProfileHandler(d.Catalog, d.Prefs, d.Library, d.Usage, d.Logger).RegisterRoutes(v1)
	NewReminderHandler(d.Scheduler).RegisterRoutes(v1)

	return router
}
