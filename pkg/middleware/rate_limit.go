package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimitKeyPrefix namespaces the planner's counters so they never
// collide with the post and range caches sharing the same Redis.
const rateLimitKeyPrefix = "planner:rate"

func rateLimitKey(path string, userID interface{}) string {
	return fmt.Sprintf("%s:%s:%v", rateLimitKeyPrefix, path, userID)
}

// RateLimitMiddleware caps each caller to limit requests per window and
// path. Anonymous requests are counted per client IP.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			userID = c.ClientIP()
		}

		key := rateLimitKey(c.Request.URL.Path, userID)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
