package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voyago/admin-panel/internal/api/http/handlers"
	"github.com/voyago/admin-panel/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Dashboard   *handlers.DashboardHandler
	Users       *handlers.UsersHandler
	Commissions *handlers.CommissionsHandler
	Guard       *session.Guard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Get("/login", cfg.Auth.LoginState)
	app.Post("/login", cfg.Auth.Login)
	app.Post("/login/dismiss-error", cfg.Auth.DismissError)
	app.Post("/logout", cfg.Auth.Logout)

	panel := app.Group("/panel", RequireAdminSession(cfg.Guard))
	panel.Get("/session", cfg.Auth.Session)
	panel.Get("/dashboard", cfg.Dashboard.Overview)

	panel.Get("/users", cfg.Users.List)
	panel.Patch("/users/:id/role", cfg.Users.UpdateRole)

	panel.Get("/commissions", cfg.Commissions.List)
	panel.Post("/commissions", cfg.Commissions.Create)
	panel.Put("/commissions/:id", cfg.Commissions.Update)
	panel.Patch("/commissions/:id/active", cfg.Commissions.ToggleActive)
	panel.Delete("/commissions/:id", cfg.Commissions.Delete)
}
