package billing

import (
	"github.com/codesentinel/server/internal/auth"
	"github.com/codesentinel/server/internal/billing"
	"github.com/gin-gonic/gin"
)

// registers billing routes. The webhook is unauthenticated by design;
// Stripe's signature header is its credential.
func RegisterRoutes(router *gin.RouterGroup, client *billing.Client) {
	billingGroup := router.Group("/billing")
	{
		billingGroup.POST("/checkout", auth.AuthMiddleware(), CheckoutHandler(client))
		billingGroup.POST("/webhook", WebhookHandler(client))
	}
}
