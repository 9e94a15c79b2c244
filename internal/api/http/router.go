package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atm-service/internal/api/http/handlers"
	"github.com/spec-kit/atm-service/internal/auth"
	"github.com/spec-kit/atm-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Accounts       *handlers.AccountsHandler
	AuthMiddleware *auth.AuthMiddleware
	Idempotency    fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAdministrator())
	users.Post("/", cfg.Auth.Provision)

	accounts := app.Group("/accounts", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleCustomer, domain.RoleAdministrator))
	accounts.Get("/", cfg.Accounts.List)
	accounts.Get("/:id", cfg.Accounts.Get)
	accounts.Get("/:id/transactions", cfg.Accounts.Transactions)

	mutating := accounts.Group("")
	if cfg.Idempotency != nil {
		mutating = accounts.Group("", cfg.Idempotency)
	}
	mutating.Post("/", cfg.Accounts.Create)
	mutating.Post("/:id/deposit", cfg.Accounts.Deposit)
	mutating.Post("/:id/withdraw", cfg.Accounts.Withdraw)
	mutating.Delete("/:id", cfg.Accounts.Delete)
}
