package billing

// CheckoutRequest starts a subscription checkout for the given price
type CheckoutRequest struct {
	PriceID string `json:"price_id" binding:"required"`
}

// CheckoutResponse carries the hosted checkout page URL
type CheckoutResponse struct {
	URL string `json:"url"`
}
