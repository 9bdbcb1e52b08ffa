package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports liveness and database reachability
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			_ = c.Error(err)
			status, code = "degraded", http.StatusServiceUnavailable
		}
	}
	c.JSON(code, gin.H{"status": status, "timestamp": time.Now().UTC()})
}
