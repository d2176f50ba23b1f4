package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"PvtCall/internal/utils"
)

// RateLimit is a fixed-window counter per client IP and route, kept in Redis
// so the limits hold across restarts and replicas. Fails open when Redis is
// unreachable; auth still works, just unthrottled.
func RateLimit(rdb *redis.Client, name string, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("rl:%s:%s", name, c.ClientIP())

		n, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			utils.Log.Warn("rate limiter unavailable", "err", err)
			c.Next()
			return
		}
		if n == 1 {
			rdb.Expire(ctx, key, window)
		}
		if n > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("Too many %s attempts. Try again later.", name),
			})
			return
		}
		c.Next()
	}
}
