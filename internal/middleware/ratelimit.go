package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/niramoy/clinic-booking/internal/httperr"
)

// RateLimit is a fixed-window per-IP limiter backed by redis (INCR +
// EXPIRE). When redis is unreachable the limiter fails open: a broken
// cache must never block bookings.
func RateLimit(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if perMinute <= 0 || rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:booking:%s:%s",
			c.ClientIP(),
			time.Now().Format("200601021504"),
		)

		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("rate limiter unavailable, allowing request: %v", err)
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, time.Minute)
		}

		if count > int64(perMinute) {
			httperr.TooManyRequests(c, "rate_limited", "Too many booking attempts, try again in a minute.")
			c.Abort()
			return
		}

		c.Next()
	}
}
