package repos

import (
	"github.com/codesentinel/server/internal/actions"
	"github.com/codesentinel/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers repository listing and scanning routes. Scanning invokes the
// model API, so it carries the subscription check and rate limit; listing
// only touches the hosting provider.
func RegisterRoutes(router *gin.RouterGroup, svc *actions.Service, checker auth.SubscriptionChecker, rateLimit gin.HandlerFunc) {
	reposGroup := router.Group("/repos", auth.AuthMiddleware())
	{
		reposGroup.POST("/list", ListHandler(svc))
		reposGroup.POST("/scan",
			rateLimit,
			auth.SubscriptionMiddleware(checker),
			ScanHandler(svc),
		)
	}
}
