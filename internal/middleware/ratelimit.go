package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-client request budget for the API surface
const (
	rateLimitPeriod   = 1 * time.Minute
	rateLimitRequests = 120
)

// RateLimit returns an in-memory per-IP rate limiter for the API routes.
// Limits are advertised through the standard X-RateLimit-* headers;
// exceeded clients get onLimit's response.
func RateLimit(onLimit gin.HandlerFunc) gin.HandlerFunc {
	store := memory.NewStore()

	instance := limiter.New(store, limiter.Rate{
		Period: rateLimitPeriod,
		Limit:  rateLimitRequests,
	})

	return mgin.NewMiddleware(instance, mgin.WithLimitReachedHandler(mgin.LimitReachedHandler(onLimit)))
}
