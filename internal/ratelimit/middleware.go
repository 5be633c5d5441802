package ratelimit

import (
	"github.com/codesentinel/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// builds a per-IP rate limit middleware from a formatted rate like "20-M"
// (20 requests per minute). Analysis endpoints sit in front of a metered
// model API, so they get a tighter rate than the rest of the surface.
func Middleware(formatted string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		logger.Fatal("invalid rate limit format", "rate", formatted, "error", err)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
