package main

import (
	"time"

	"github.com/codesentinel/server/api/rest/admin"
	"github.com/codesentinel/server/api/rest/analyze"
	"github.com/codesentinel/server/api/rest/auth"
	"github.com/codesentinel/server/api/rest/billing"
	"github.com/codesentinel/server/api/rest/health"
	"github.com/codesentinel/server/api/rest/repos"
	"github.com/codesentinel/server/internal/ratelimit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// model-backed endpoints share one per-client budget
const analysisRateLimit = "30-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config.AppURL))
	router.GET("/health", health.Handler)

	rateLimit := ratelimit.Middleware(analysisRateLimit)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo)
		analyze.RegisterRoutes(v1, server.services.Actions, server.userRepo, rateLimit)
		repos.RegisterRoutes(v1, server.services.Actions, server.userRepo, rateLimit)
		billing.RegisterRoutes(v1, server.services.Billing)
		admin.RegisterRoutes(v1, server.userRepo)
	}
}

// allows the web dashboard origin plus local development
func CORSMiddleware(appURL string) gin.HandlerFunc {
	origins := []string{"http://localhost:3000", "http://localhost:9002"}
	if appURL != "" {
		origins = append(origins, appURL)
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
