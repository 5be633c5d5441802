package users

const (
	userColumns = `id, email, provider, provider_id, name, avatar_url, role, subscription_status,
		stripe_customer_id, stripe_subscription_id, current_period_end, created_at, updated_at`

	queryFindOrCreateByProvider = `
		INSERT INTO users (provider, provider_id, email, name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING ` + userColumns

	queryFindByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	queryListAll = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
	`

	queryUpdateSubscriptionStatus = `
		UPDATE users
		SET subscription_status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + userColumns

	queryAttachStripeSubscription = `
		UPDATE users
		SET stripe_customer_id = $1,
			stripe_subscription_id = $2,
			subscription_status = $3,
			current_period_end = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + userColumns

	queryUpdateSubscriptionByCustomer = `
		UPDATE users
		SET subscription_status = $1,
			current_period_end = $2,
			updated_at = NOW()
		WHERE stripe_customer_id = $3
		RETURNING ` + userColumns

	queryHasActiveSubscription = `
		SELECT subscription_status = 'active'
		FROM users
		WHERE id = $1
	`
)
