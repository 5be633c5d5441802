package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// subscription states a user record can be in
const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
)

// roles a user record can carry
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// represents an authenticated user in the system. Subscription state is
// the durable record the billing webhook and the admin panel both write.
type User struct {
	ID                   string     `json:"id"`
	Email                string     `json:"email"`
	Provider             string     `json:"provider"`
	ProviderID           string     `json:"-"`
	Name                 string     `json:"name"`
	AvatarURL            string     `json:"avatar_url"`
	Role                 string     `json:"role"`
	SubscriptionStatus   string     `json:"subscription_status"`
	StripeCustomerID     *string    `json:"-"`
	StripeSubscriptionID *string    `json:"-"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// reports whether the user may use subscriber features
func (u *User) HasActiveSubscription() bool {
	return u.SubscriptionStatus == SubscriptionActive
}

// reports whether the user may use the admin panel
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
