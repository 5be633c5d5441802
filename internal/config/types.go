package config

// holds all runtime configuration loaded from the environment
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Environment string
	BaseURL     string

	// generative model provider ("gemini" or "anthropic")
	LLMProvider  string
	GeminiKey    string
	AnthropicKey string

	// billing
	StripeSecretKey     string
	StripeWebhookSecret string

	// frontend origin for checkout redirects and CORS
	AppURL string
}

// reports whether the server is running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
