package billing

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/codesentinel/server/codesentinel/users"
	"github.com/stripe/stripe-go/v78"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements UserStore for testing
type mockStore struct {
	attached     bool
	syncedStatus string
	syncCustomer string
}

func (m *mockStore) AttachStripeSubscription(_ context.Context, userID, customerID, subscriptionID, status string, _ time.Time) (*users.User, error) {
	m.attached = true
	return &users.User{ID: userID, SubscriptionStatus: status}, nil
}

func (m *mockStore) UpdateSubscriptionByCustomer(_ context.Context, customerID, status string, _ time.Time) (*users.User, error) {
	m.syncCustomer = customerID
	m.syncedStatus = status
	return &users.User{SubscriptionStatus: status}, nil
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, users.SubscriptionActive, statusFor(stripe.SubscriptionStatusActive))

	// anything not active collapses to inactive
	for _, s := range []stripe.SubscriptionStatus{
		stripe.SubscriptionStatusPastDue,
		stripe.SubscriptionStatusCanceled,
		stripe.SubscriptionStatusUnpaid,
		stripe.SubscriptionStatusIncomplete,
	} {
		assert.Equal(t, users.SubscriptionInactive, statusFor(s), "status %s", s)
	}
}

func TestProcessEvent_SubscriptionDeleted(t *testing.T) {
	store := &mockStore{}
	c := NewClient(Config{SecretKey: "sk_test"}, store)

	raw, err := json.Marshal(map[string]any{
		"id":                 "sub_123",
		"status":             "canceled",
		"customer":           map[string]any{"id": "cus_123"},
		"current_period_end": time.Now().Unix(),
	})
	require.NoError(t, err)

	event := stripe.Event{
		Type: "customer.subscription.deleted",
		Data: &stripe.EventData{Raw: raw},
	}

	err = c.ProcessEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, "cus_123", store.syncCustomer)
	assert.Equal(t, users.SubscriptionInactive, store.syncedStatus)
}

func TestProcessEvent_UnhandledTypeIgnored(t *testing.T) {
	store := &mockStore{}
	c := NewClient(Config{SecretKey: "sk_test"}, store)

	event := stripe.Event{
		Type: "invoice.paid",
		Data: &stripe.EventData{Raw: json.RawMessage(`{}`)},
	}

	err := c.ProcessEvent(context.Background(), event)

	require.NoError(t, err)
	assert.False(t, store.attached)
	assert.Empty(t, store.syncCustomer)
}

func TestProcessEvent_CheckoutMissingData(t *testing.T) {
	store := &mockStore{}
	c := NewClient(Config{SecretKey: "sk_test"}, store)

	// no client_reference_id and no subscription
	event := stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: json.RawMessage(`{"id": "cs_123"}`)},
	}

	err := c.ProcessEvent(context.Background(), event)

	assert.Error(t, err)
	assert.False(t, store.attached)
}

func TestVerifyWebhook_MissingSecret(t *testing.T) {
	c := NewClient(Config{SecretKey: "sk_test"}, &mockStore{})

	_, err := c.VerifyWebhook([]byte(`{}`), "sig")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "webhook secret")
}
