package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Baaaki/gigflow/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiterConfig defines rate limiting rules
type RateLimiterConfig struct {
	Name        string        // Key namespace, so several limiters can share one Redis
	MaxRequests int           // Maximum requests allowed in the window
	Window      time.Duration // Fixed window length
}

// RateLimiter is a fixed-window, per-IP request counter kept in Redis.
type RateLimiter struct {
	redis  *redis.Client
	config RateLimiterConfig
}

func NewRateLimiter(redisClient *redis.Client, config RateLimiterConfig) *RateLimiter {
	if config.Name == "" {
		config.Name = "api"
	}
	return &RateLimiter{
		redis:  redisClient,
		config: config,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		allowed, remaining, retryAfter, err := rl.CheckLimit(c.Request.Context(), clientIP)
		if err != nil {
			// Fail open: Redis trouble must not take the API down
			logger.Log.Warn("Rate limiter unavailable",
				zap.String("limiter", rl.config.Name),
				zap.Error(err),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			seconds := int(retryAfter.Round(time.Second).Seconds())
			if seconds < 1 {
				seconds = 1
			}
			logger.Log.Warn("Rate limit exceeded",
				zap.String("limiter", rl.config.Name),
				zap.String("ip", clientIP),
			)
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"retry_after": seconds,
			})
			return
		}

		c.Next()
	}
}

// CheckLimit counts one request for ip and reports whether it is within the
// limit, how many requests remain in the window, and when the window resets.
func (rl *RateLimiter) CheckLimit(ctx context.Context, ip string) (bool, int, time.Duration, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", rl.config.Name, ip)

	// INCR and EXPIRE NX in one round trip; the expiry is only set by the first request
	pipe := rl.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, rl.config.Window)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, err
	}

	count := incr.Val()
	remaining := rl.config.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	if count > int64(rl.config.MaxRequests) {
		retryAfter := ttl.Val()
		if retryAfter <= 0 {
			retryAfter = rl.config.Window
		}
		return false, 0, retryAfter, nil
	}
	return true, remaining, 0, nil
}
