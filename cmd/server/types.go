package main

import (
	"github.com/codesentinel/server/codesentinel/users"
	"github.com/codesentinel/server/internal/actions"
	"github.com/codesentinel/server/internal/billing"
	"github.com/codesentinel/server/internal/config"
	"github.com/codesentinel/server/internal/llm"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	userRepo *users.Repository
	services *Services
	router   *gin.Engine
}

// holds all external service clients (model, hosting provider, billing)
type Services struct {
	Generator llm.SuggestionGenerator
	Actions   *actions.Service
	Billing   *billing.Client
}
