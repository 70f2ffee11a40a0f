package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voyago/admin-panel/internal/session"
)

// RequireAdminSession gates protected routes on the session guard's settled
// state. It reads the guard snapshot only — no network calls, no duplicated
// role checks. While the guard is still hydrating it answers with a neutral
// placeholder instead of a redirect, so a slow startup never flashes the
// operator to the login view.
func RequireAdminSession(guard *session.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := guard.Snapshot()
		if state.IsLoading {
			c.Set("Retry-After", "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "hydrating",
			})
		}
		if !state.IsAuthenticated() {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}
