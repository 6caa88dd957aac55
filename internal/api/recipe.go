package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forkcast/backend/internal/catalog"
	"github.com/forkcast/backend/internal/filter"
	"github.com/forkcast/backend/internal/middleware"
	"github.com/forkcast/backend/internal/service"
)

const defaultRecommendCount = 12

type RecipeHandler struct {
	catalog   catalog.Catalog
	search    *service.SearchService
	recommend *service.RecommendService
	library   *service.LibraryService
	usage     *service.UsageService
	logger    *zap.Logger
}

func NewRecipeHandler(
	cat catalog.Catalog,
	search *service.SearchService,
	recommend *service.RecommendService,
	library *service.LibraryService,
	usage *service.UsageService,
	logger *zap.Logger,
) *RecipeHandler {
	return &RecipeHandler{
		catalog:   cat,
		search:    search,
		recommend: recommend,
		library:   library,
		usage:     usage,
		logger:    logger,
	}
}

// RegisterRoutes wires the recipe routes. searchLimit, when non-nil, is
// applied to the search and suggest endpoints only.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, searchLimit gin.HandlerFunc) {
	if searchLimit == nil {
		searchLimit = func(c *gin.Context) { c.Next() }
	}
	recipes := router.Group("/recipes")
	{
		recipes.GET("/recommended", h.Recommended)
		recipes.GET("/search", searchLimit, h.Search)
		recipes.GET("/suggest", searchLimit, h.Suggest)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/:id/view", h.RecordView)
		recipes.GET("/:id/steps", h.GetStepState)
		recipes.PUT("/:id/steps", h.PutStepState)
	}
	searches := router.Group("/searches")
	{
		searches.GET("/recent", h.RecentSearches)
		searches.DELETE("/recent", h.ClearRecentSearches)
	}
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	r, err := h.catalog.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		h.logger.Error("recipe lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe"})
		return
	}
	c.JSON(http.StatusOK, viewOf(*r))
}

// RecordView logs a view, updates the viewing history and advances
// cuisine achievements.
func (h *RecipeHandler) RecordView(c *gin.Context) {
	userID := middleware.UserID(c)
	recipeID := c.Param("id")
	ctx := c.Request.Context()

	r, err := h.catalog.ByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		h.logger.Error("recipe lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record view"})
		return
	}

	now := time.Now()
	if err := h.library.RecordView(ctx, userID, recipeID, now); err != nil {
		h.logger.Error("history update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record view"})
		return
	}
	if err := h.usage.RecordView(ctx, userID, *r, now); err != nil {
		h.logger.Error("usage update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record view"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) Recommended(c *gin.Context) {
	userID := middleware.UserID(c)
	ctx := c.Request.Context()

	n := defaultRecommendCount
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		n = parsed
	}

	var filters filter.Set
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}

	// Recently viewed recipes are excluded so the feed stays fresh.
	var exclude []string
	if entries, err := h.library.History(ctx, userID); err == nil {
		for _, e := range entries {
			exclude = append(exclude, e.RecipeID)
		}
	}

	recipes := h.recommend.Recommended(ctx, userID, n, exclude)
	recipes = filters.Apply(recipes)
	c.JSON(http.StatusOK, gin.H{"recipes": viewsOf(recipes)})
}

func (h *RecipeHandler) Search(c *gin.Context) {
	userID := middleware.UserID(c)

	var filters filter.Set
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}

	recipes, err := h.search.Search(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		if errors.Is(err, service.ErrSearchTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "search timed out"})
			return
		}
		h.logger.Error("search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	recipes = filters.Apply(recipes)
	c.JSON(http.StatusOK, gin.H{"recipes": viewsOf(recipes)})
}

// Suggest serves typeahead suggestions. A request superseded by a newer
// keystroke answers 204 so clients can simply ignore it.
func (h *RecipeHandler) Suggest(c *gin.Context) {
	userID := middleware.UserID(c)

	recipes, err := h.search.Suggest(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		if errors.Is(err, service.ErrSuggestSuperseded) {
			c.Status(http.StatusNoContent)
			return
		}
		if errors.Is(err, service.ErrSearchTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "search timed out"})
			return
		}
		h.logger.Error("suggest failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "suggest failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": viewsOf(recipes)})
}

func (h *RecipeHandler) RecentSearches(c *gin.Context) {
	terms, err := h.library.RecentSearches(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("recent searches lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recent searches"})
		return
	}
	if terms == nil {
		terms = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"searches": terms})
}

func (h *RecipeHandler) ClearRecentSearches(c *gin.Context) {
	if err := h.library.ClearRecentSearches(c.Request.Context(), middleware.UserID(c)); err != nil {
		h.logger.Error("clearing recent searches failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear recent searches"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) GetStepState(c *gin.Context) {
	done, err := h.library.StepState(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.logger.Error("step state lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load step state"})
		return
	}
	if done == nil {
		done = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"completed_steps": done})
}

func (h *RecipeHandler) PutStepState(c *gin.Context) {
	var req struct {
		CompletedSteps []int `json:"completed_steps"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.library.PutStepState(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.CompletedSteps); err != nil {
		h.logger.Error("step state update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save step state"})
		return
	}
	c.Status(http.StatusNoContent)
}
