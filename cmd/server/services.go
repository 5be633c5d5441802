package main

import (
	"context"
	"fmt"

	"github.com/codesentinel/server/codesentinel/users"
	"github.com/codesentinel/server/internal/actions"
	"github.com/codesentinel/server/internal/billing"
	"github.com/codesentinel/server/internal/config"
	"github.com/codesentinel/server/internal/githost"
	"github.com/codesentinel/server/internal/hardening"
	"github.com/codesentinel/server/internal/llm"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, userRepo *users.Repository) (*Services, error) {
	generator, err := llm.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion generator: %w", err)
	}

	analyzer := hardening.NewAnalyzer(generator)
	provider := githost.NewGitHubProvider()

	billingClient := billing.NewClient(billing.Config{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		AppURL:        cfg.AppURL,
	}, userRepo)

	return &Services{
		Generator: generator,
		Actions:   actions.NewService(analyzer, provider),
		Billing:   billingClient,
	}, nil
}
