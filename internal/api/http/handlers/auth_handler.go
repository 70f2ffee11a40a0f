package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/voyago/admin-panel/internal/api/dto"
	"github.com/voyago/admin-panel/internal/session"
	apperrors "github.com/voyago/admin-panel/pkg/util/errorutil"
)

// AuthHandler exposes the operator login lifecycle.
type AuthHandler struct {
	guard *session.Guard
}

// NewAuthHandler constructs handler.
func NewAuthHandler(guard *session.Guard) *AuthHandler {
	return &AuthHandler{guard: guard}
}

// LoginState handles GET /login: the state the login view renders from.
func (h *AuthHandler) LoginState(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": sessionResponse(h.guard.Snapshot())})
}

// Login handles POST /login. A settled admin session redirects to the panel;
// every failure lands back on the login state with the guard's message.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	nav := h.guard.Login(c.Context(), req.Email, req.Password)
	if nav == session.NavigateHome {
		return c.Redirect("/panel/dashboard", http.StatusSeeOther)
	}

	state := h.guard.Snapshot()
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"data": sessionResponse(state)})
}

// Logout handles POST /logout. The redirect to the login view happens on
// every path, even when the remote logout call failed.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.guard.Logout(c.Context())
	return c.Redirect("/login", http.StatusSeeOther)
}

// DismissError handles POST /login/dismiss-error.
func (h *AuthHandler) DismissError(c *fiber.Ctx) error {
	h.guard.ClearError()
	return c.SendStatus(http.StatusNoContent)
}

// Session handles GET /panel/session for the authenticated operator.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": sessionResponse(h.guard.Snapshot())})
}

func sessionResponse(state session.State) dto.SessionResponse {
	resp := dto.SessionResponse{
		Authenticated: state.IsAuthenticated(),
		Loading:       state.IsLoading,
		Error:         state.ErrorMessage,
	}
	if state.User != nil {
		resp.User = &dto.SessionUser{
			ID:             state.User.ID,
			Email:          state.User.Email,
			Name:           state.User.Name,
			Role:           string(state.User.Role),
			ProfilePicture: state.User.ProfilePicture,
		}
	}
	return resp
}
