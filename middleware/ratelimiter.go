package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter returns a Gin middleware that limits each client IP to 100
// requests per minute, tracked in memory.
func RateLimiter() gin.HandlerFunc {
	store := memory.NewStore()
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  100,
	}

	instance := limiter.New(store, rate)

	return ginlimiter.NewMiddleware(instance)
}
