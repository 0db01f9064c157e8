package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/laybeentan/portfolio-api/pkg/logger"
)

const APIVersion = "1.0.0"

// Pinger is the storage liveness probe backing the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	store  Pinger
	logger logger.Logger
}

func NewSystemHandler(store Pinger, log logger.Logger) *SystemHandler {
	return &SystemHandler{store: store, logger: log}
}

func (h *SystemHandler) Root(c *gin.Context) {
	respondOK(c, gin.H{"message": "Lay Been Tan Portfolio API"}, "API is running successfully")
}

func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("health check failed, database unreachable")
		msg := fmt.Sprintf("Health check failed: %v", err)
		c.JSON(http.StatusOK, Envelope{Success: false, Error: &msg})
		return
	}

	respondOK(c, gin.H{
		"status":      "healthy",
		"database":    "connected",
		"api_version": APIVersion,
	}, "API health check passed")
}
