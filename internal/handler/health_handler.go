package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthHandler reports whether the API and its backing stores are reachable.
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler builds the health check. redisClient may be nil when Redis
// is not configured.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{"database": "ok"}
	healthy := true

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		checks["database"] = "unavailable"
		healthy = false
	}

	if h.redis != nil {
		checks["redis"] = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			// The cache and rate limiter degrade without Redis; report it but stay up
			checks["redis"] = "unavailable"
		}
	}

	status, text := http.StatusOK, "ok"
	if !healthy {
		status, text = http.StatusServiceUnavailable, "unavailable"
	}
	c.JSON(status, gin.H{
		"status":    text,
		"checks":    checks,
		"timestamp": time.Now().UTC(),
	})
}
