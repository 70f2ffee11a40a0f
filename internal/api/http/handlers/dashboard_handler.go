package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voyago/admin-panel/internal/backend"
	"github.com/voyago/admin-panel/internal/domain"
)

// DashboardHandler aggregates the counts shown on the panel landing view.
// The backend has no dedicated stats endpoint, so totals come from the
// pagination envelopes of minimal list calls.
type DashboardHandler struct {
	api *backend.Client
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(api *backend.Client) *DashboardHandler {
	return &DashboardHandler{api: api}
}

// Overview handles GET /panel/dashboard.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	ctx := c.Context()

	total, err := h.countUsers(c, backend.ListUsersParams{Limit: 1})
	if err != nil {
		return err
	}

	byRole := fiber.Map{}
	for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleAgent, domain.RoleAdmin} {
		count, err := h.countUsers(c, backend.ListUsersParams{Role: role, Limit: 1})
		if err != nil {
			return err
		}
		byRole[string(role)] = count
	}

	commissions, err := h.api.ListCommissions(ctx)
	if err != nil {
		return err
	}
	active := 0
	for i := range commissions {
		if commissions[i].IsActive {
			active++
		}
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"users": fiber.Map{
			"total":   total,
			"by_role": byRole,
		},
		"commissions": fiber.Map{
			"total":  len(commissions),
			"active": active,
		},
	}})
}

func (h *DashboardHandler) countUsers(c *fiber.Ctx, params backend.ListUsersParams) (int, error) {
	page, err := h.api.ListUsers(c.Context(), params)
	if err != nil {
		return 0, err
	}
	return page.Pagination.Total, nil
}
