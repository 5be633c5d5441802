package billing

import (
	"io"
	"net/http"

	"github.com/codesentinel/server/internal/auth"
	"github.com/codesentinel/server/internal/billing"
	"github.com/codesentinel/server/internal/errors"
	"github.com/codesentinel/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler godoc
// @Summary Create a checkout session
// @Description Start a subscription checkout and return the hosted page URL
// @Tags billing
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Price to subscribe to"
// @Success 200 {object} CheckoutResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/billing/checkout [post]
// @Security BearerAuth
func CheckoutHandler(client *billing.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		url, err := client.CreateCheckoutSession(userID, c.GetString("user_email"), req.PriceID)
		if err != nil {
			errors.InternalError(c, "failed to create checkout session", err)
			return
		}

		c.JSON(http.StatusOK, CheckoutResponse{URL: url})
	}
}

// WebhookHandler godoc
// @Summary Stripe webhook
// @Description Signature-verified billing event ingestion
// @Tags billing
// @Accept json
// @Success 200 {string} string "ok"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/billing/webhook [post]
func WebhookHandler(client *billing.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			errors.BadRequest(c, "failed to read webhook payload", err)
			return
		}

		event, err := client.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
		if err != nil {
			// do not leak verification details to the sender
			logger.ErrorErr(err, "stripe webhook verification failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": errors.CodeWebhookVerification})
			return
		}

		if err := client.ProcessEvent(c.Request.Context(), event); err != nil {
			errors.InternalError(c, "failed to process billing event", err)
			return
		}

		c.Status(http.StatusOK)
	}
}
