package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler serves the operational endpoints that belong to no domain.
type Handler struct {
	startedAt time.Time
	ready     func(ctx context.Context) error
}

// NewHandler takes a readiness probe, typically the document store's backend
// check. A nil probe means always ready.
func NewHandler(ready func(ctx context.Context) error) *Handler {
	return &Handler{startedAt: time.Now(), ready: ready}
}

func (h *Handler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	})
}

func (h *Handler) Ready(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
