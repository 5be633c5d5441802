package users

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanUser(row interface{ Scan(dest ...any) error }) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Provider,
		&user.ProviderID,
		&user.Name,
		&user.AvatarURL,
		&user.Role,
		&user.SubscriptionStatus,
		&user.StripeCustomerID,
		&user.StripeSubscriptionID,
		&user.CurrentPeriodEnd,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// finds a user by OAuth provider or creates a new one
func (r *Repository) FindOrCreateByProvider(
	ctx context.Context,
	provider, providerID, email, name, avatarURL string,
) (*User, error) {
	return scanUser(r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		provider,
		providerID,
		email,
		name,
		avatarURL,
	))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return scanUser(r.db.QueryRow(ctx, queryFindByID, userID))
}

// returns every user record, newest first. Admin panel only.
func (r *Repository) ListAll(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, queryListAll)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var result []User

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, *user)
	}

	return result, rows.Err()
}

// sets a user's subscription status directly (admin access toggle)
func (r *Repository) UpdateSubscriptionStatus(ctx context.Context, userID, status string) (*User, error) {
	return scanUser(r.db.QueryRow(ctx, queryUpdateSubscriptionStatus, status, userID))
}

// records a fulfilled checkout: stripe identifiers, status, and period end
func (r *Repository) AttachStripeSubscription(
	ctx context.Context,
	userID, customerID, subscriptionID, status string,
	currentPeriodEnd time.Time,
) (*User, error) {
	return scanUser(r.db.QueryRow(
		ctx,
		queryAttachStripeSubscription,
		customerID,
		subscriptionID,
		status,
		currentPeriodEnd,
		userID,
	))
}

// updates subscription state for the user owning a Stripe customer ID
// (subscription lifecycle webhooks identify users by customer, not by ID)
func (r *Repository) UpdateSubscriptionByCustomer(
	ctx context.Context,
	customerID, status string,
	currentPeriodEnd time.Time,
) (*User, error) {
	return scanUser(r.db.QueryRow(ctx, queryUpdateSubscriptionByCustomer, status, currentPeriodEnd, customerID))
}

// reports whether the user currently holds an active subscription.
// Satisfies auth.SubscriptionChecker.
func (r *Repository) HasActiveSubscription(ctx context.Context, userID string) (bool, error) {
	var active bool

	if err := r.db.QueryRow(ctx, queryHasActiveSubscription, userID).Scan(&active); err != nil {
		return false, err
	}

	return active, nil
}
