package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/codesentinel/server/codesentinel/users"
	"github.com/codesentinel/server/internal/logger"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

// wraps the Stripe SDK: checkout-session creation and webhook fulfillment.
// Subscription state lands on the user record; nothing else is persisted here.
type Client struct {
	api    *client.API
	config Config
	store  UserStore
}

func NewClient(config Config, store UserStore) *Client {
	api := &client.API{}
	api.Init(config.SecretKey, nil)

	return &Client{
		api:    api,
		config: config,
		store:  store,
	}
}

// creates a subscription checkout session for the user and returns its URL.
// The user ID travels as the client reference so the completion webhook can
// attribute the purchase.
func (c *Client) CreateCheckoutSession(userID, email, priceID string) (string, error) {
	if priceID == "" {
		return "", fmt.Errorf("price id is required")
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(c.config.AppURL + "/demo?checkout=success"),
		CancelURL:         stripe.String(c.config.AppURL + "/?checkout=cancelled"),
		ClientReferenceID: stripe.String(userID),
		CustomerEmail:     stripe.String(email),
	}

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return sess.URL, nil
}

// verifies the webhook signature and parses the event payload
func (c *Client) VerifyWebhook(payload []byte, signature string) (stripe.Event, error) {
	if c.config.WebhookSecret == "" {
		return stripe.Event{}, fmt.Errorf("stripe webhook secret is not configured")
	}

	return webhook.ConstructEvent(payload, signature, c.config.WebhookSecret)
}

// applies one verified webhook event to the user store. Unhandled event
// types are logged and ignored.
func (c *Client) ProcessEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		return c.fulfillCheckout(ctx, event)

	case "customer.subscription.updated", "customer.subscription.deleted":
		return c.syncSubscription(ctx, event)

	default:
		logger.Warn("unhandled stripe event type", "type", event.Type)
		return nil
	}
}

func (c *Client) fulfillCheckout(ctx context.Context, event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("failed to parse checkout session: %w", err)
	}

	userID := session.ClientReferenceID
	if userID == "" || session.Subscription == nil {
		return fmt.Errorf("checkout session is missing required fulfillment data")
	}

	// the event carries only the subscription ID; fetch the full object
	// for customer and period end
	sub, err := c.api.Subscriptions.Get(session.Subscription.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to retrieve subscription %s: %w", session.Subscription.ID, err)
	}

	_, err = c.store.AttachStripeSubscription(
		ctx,
		userID,
		sub.Customer.ID,
		sub.ID,
		statusFor(sub.Status),
		time.Unix(sub.CurrentPeriodEnd, 0),
	)
	if err != nil {
		return fmt.Errorf("failed to record subscription for user %s: %w", userID, err)
	}

	logger.Info("subscription activated", "user_id", userID, "subscription_id", sub.ID)
	return nil
}

func (c *Client) syncSubscription(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to parse subscription: %w", err)
	}

	if sub.Customer == nil {
		return fmt.Errorf("subscription event is missing customer")
	}

	status := statusFor(sub.Status)

	_, err := c.store.UpdateSubscriptionByCustomer(ctx, sub.Customer.ID, status, time.Unix(sub.CurrentPeriodEnd, 0))
	if err != nil {
		return fmt.Errorf("failed to sync subscription for customer %s: %w", sub.Customer.ID, err)
	}

	logger.Info("subscription state synced", "customer_id", sub.Customer.ID, "status", status)
	return nil
}

// collapses Stripe's subscription states into the two the product tracks:
// anything not active (past_due, canceled, unpaid, ...) is inactive
func statusFor(status stripe.SubscriptionStatus) string {
	if status == stripe.SubscriptionStatusActive {
		return users.SubscriptionActive
	}

	return users.SubscriptionInactive
}
