package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserCounter reports the projected directory size.
type UserCounter interface {
	UserCount(ctx context.Context) int64
}

// HealthHandler serves the liveness probe with the projected user count.
type HealthHandler struct {
	stats UserCounter
}

func NewHealthHandler(stats UserCounter) *HealthHandler {
	return &HealthHandler{stats: stats}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"users":  h.stats.UserCount(c.Request.Context()),
	})
}
