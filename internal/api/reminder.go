package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forkcast/backend/internal/middleware"
	"github.com/forkcast/backend/internal/notify"
)

type ReminderHandler struct {
	scheduler *notify.Scheduler
}

func NewReminderHandler(scheduler *notify.Scheduler) *ReminderHandler {
	return &ReminderHandler{scheduler: scheduler}
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/reminders", h.Schedule)
	router.DELETE("/reminders", h.Cancel)
}

// Schedule queues a cooking reminder. A user has at most one pending
// reminder; scheduling again replaces it.
func (h *ReminderHandler) Schedule(c *gin.Context) {
	var req struct {
		Title        string `json:"title" binding:"required"`
		DelaySeconds int    `json:"delay_seconds" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and a positive delay_seconds are required"})
		return
	}
	h.scheduler.Schedule(middleware.UserID(c), req.Title, time.Duration(req.DelaySeconds)*time.Second)
	c.Status(http.StatusAccepted)
}

func (h *ReminderHandler) Cancel(c *gin.Context) {
	h.scheduler.Cancel(middleware.UserID(c))
	c.Status(http.StatusNoContent)
}
