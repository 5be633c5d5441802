package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	baseURL := os.Getenv("BASE_URL")
	appURL := os.Getenv("APP_URL")

	llmProvider := os.Getenv("LLM_PROVIDER")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")

	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	stripeWebhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if llmProvider == "" {
		llmProvider = "gemini"
	}

	switch llmProvider {
	case "gemini":
		if geminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required when LLM_PROVIDER=gemini")
		}
	case "anthropic":
		if anthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required when LLM_PROVIDER=anthropic")
		}
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s", llmProvider)
	}

	if environment == "" {
		environment = "development"
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if appURL == "" {
		appURL = "http://localhost:3000"
	}

	return &Config{
		DatabaseURL:         databaseURL,
		JWTSecret:           jwtSecret,
		Environment:         environment,
		BaseURL:             baseURL,
		AppURL:              appURL,
		LLMProvider:         llmProvider,
		GeminiKey:           geminiKey,
		AnthropicKey:        anthropicKey,
		StripeSecretKey:     stripeKey,
		StripeWebhookSecret: stripeWebhookSecret,
	}, nil
}
