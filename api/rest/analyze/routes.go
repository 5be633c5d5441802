package analyze

import (
	"github.com/codesentinel/server/internal/actions"
	"github.com/codesentinel/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers the pasted-code analysis route. Requires a logged-in user
// with an active subscription; rate-limited upstream of the model API.
func RegisterRoutes(router *gin.RouterGroup, svc *actions.Service, checker auth.SubscriptionChecker, rateLimit gin.HandlerFunc) {
	router.POST("/analyze",
		rateLimit,
		auth.AuthMiddleware(),
		auth.SubscriptionMiddleware(checker),
		Handler(svc),
	)
}
