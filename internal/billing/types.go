package billing

import (
	"context"
	"time"

	"github.com/codesentinel/server/codesentinel/users"
)

// the subset of the user repository billing needs to fulfill purchases
// and track subscription lifecycle events
type UserStore interface {
	AttachStripeSubscription(ctx context.Context, userID, customerID, subscriptionID, status string, currentPeriodEnd time.Time) (*users.User, error)
	UpdateSubscriptionByCustomer(ctx context.Context, customerID, status string, currentPeriodEnd time.Time) (*users.User, error)
}

// holds configuration for the billing client
type Config struct {
	SecretKey     string
	WebhookSecret string

	// frontend origin for checkout redirect URLs
	AppURL string
}
