package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forkcast/backend/internal/catalog"
	"github.com/forkcast/backend/internal/middleware"
	"github.com/forkcast/backend/internal/service"
	"github.com/forkcast/backend/internal/types"
)

const weeklyTopLimit = 7

type ProfileHandler struct {
	catalog catalog.Catalog
	prefs   *service.PrefsService
	library *service.LibraryService
	usage   *service.UsageService
	logger  *zap.Logger
}

func NewProfileHandler(
	cat catalog.Catalog,
	prefs *service.PrefsService,
	library *service.LibraryService,
	usage *service.UsageService,
	logger *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		catalog: cat,
		prefs:   prefs,
		library: library,
		usage:   usage,
		logger:  logger,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/preferences", h.GetPreferences)
	router.PUT("/preferences", h.PutPreferences)
	router.GET("/favorites", h.Favorites)
	router.POST("/favorites/:id/toggle", h.ToggleFavorite)
	router.GET("/history", h.History)
	router.GET("/top", h.WeeklyTop)
	router.GET("/achievements", h.Achievements)

	shopping := router.Group("/shopping")
	{
		shopping.GET("", h.ShoppingList)
		shopping.POST("", h.AddShoppingItems)
		shopping.POST("/:id/toggle", h.ToggleShoppingItem)
		shopping.DELETE("/checked", h.ClearCheckedShoppingItems)
		shopping.DELETE("/:id", h.RemoveShoppingItem)
	}
}

func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.prefs.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("preferences lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *ProfileHandler) PutPreferences(c *gin.Context) {
	var prefs types.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.prefs.Put(c.Request.Context(), middleware.UserID(c), prefs); err != nil {
		h.logger.Error("preferences update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *ProfileHandler) Favorites(c *gin.Context) {
	ctx := c.Request.Context()
	ids, err := h.library.Favorites(ctx, middleware.UserID(c))
	if err != nil {
		h.logger.Error("favorites lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": h.hydrate(ctx, ids)})
}

func (h *ProfileHandler) ToggleFavorite(c *gin.Context) {
	on, err := h.library.ToggleFavorite(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.logger.Error("favorite toggle failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": on})
}

func (h *ProfileHandler) History(c *gin.Context) {
	entries, err := h.library.History(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("history lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	if entries == nil {
		entries = []types.HistoryEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// WeeklyTop reports the user's most viewed recipes over the trailing
// seven days, hydrated from the catalog.
func (h *ProfileHandler) WeeklyTop(c *gin.Context) {
	ctx := c.Request.Context()
	counts, err := h.usage.WeeklyTop(ctx, middleware.UserID(c), time.Now(), nil, weeklyTopLimit)
	if err != nil {
		h.logger.Error("weekly top lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load weekly top"})
		return
	}

	type topEntry struct {
		RecipeView
		Count int `json:"count"`
	}
	out := make([]topEntry, 0, len(counts))
	for _, rc := range counts {
		r, err := h.catalog.ByID(ctx, rc.RecipeID)
		if err != nil {
			// A recipe deleted from the catalog drops off the list.
			if !errors.Is(err, catalog.ErrNotFound) {
				h.logger.Warn("weekly top hydration failed", zap.Error(err))
			}
			continue
		}
		out = append(out, topEntry{RecipeView: viewOf(*r), Count: rc.Count})
	}
	c.JSON(http.StatusOK, gin.H{"recipes": out})
}

func (h *ProfileHandler) Achievements(c *gin.Context) {
	progress, err := h.usage.Achievements(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("achievements lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load achievements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": progress})
}

func (h *ProfileHandler) ShoppingList(c *gin.Context) {
	items, err := h.library.ShoppingList(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("shopping list lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shopping list"})
		return
	}
	if items == nil {
		items = []types.ShoppingListItem{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ProfileHandler) AddShoppingItems(c *gin.Context) {
	var req struct {
		RecipeID string   `json:"recipe_id"`
		Names    []string `json:"names" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	items, err := h.library.AddShoppingItems(c.Request.Context(), middleware.UserID(c), req.RecipeID, req.Names)
	if err != nil {
		h.logger.Error("shopping list update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update shopping list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ProfileHandler) ToggleShoppingItem(c *gin.Context) {
	items, err := h.library.ToggleShoppingItem(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.logger.Error("shopping list update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update shopping list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ProfileHandler) RemoveShoppingItem(c *gin.Context) {
	items, err := h.library.RemoveShoppingItem(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.logger.Error("shopping list update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update shopping list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ProfileHandler) ClearCheckedShoppingItems(c *gin.Context) {
	items, err := h.library.ClearCheckedShoppingItems(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("shopping list update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update shopping list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ProfileHandler) hydrate(ctx context.Context, ids []string) []RecipeView {
	out := make([]RecipeView, 0, len(ids))
	for _, id := range ids {
		r, err := h.catalog.ByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, viewOf(*r))
	}
	return out
}
