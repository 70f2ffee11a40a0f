package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/voyago/admin-panel/internal/api/dto"
	"github.com/voyago/admin-panel/internal/backend"
	"github.com/voyago/admin-panel/internal/domain"
	apperrors "github.com/voyago/admin-panel/pkg/util/errorutil"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// UsersHandler manages the platform user screens.
type UsersHandler struct {
	api *backend.Client
}

// NewUsersHandler constructs handler.
func NewUsersHandler(api *backend.Client) *UsersHandler {
	return &UsersHandler{api: api}
}

// List handles GET /panel/users with search/role/page/limit passthrough.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	params, err := parseUserQuery(c)
	if err != nil {
		return err
	}

	page, err := h.api.ListUsers(c.Context(), params)
	if err != nil {
		return err
	}

	items := make([]dto.UserSummary, 0, len(page.Users))
	for i := range page.Users {
		items = append(items, userSummary(&page.Users[i]))
	}
	return c.JSON(fiber.Map{
		"data": items,
		"pagination": dto.PageMeta{
			Total:      page.Pagination.Total,
			Page:       page.Pagination.Page,
			Limit:      page.Pagination.Limit,
			TotalPages: page.Pagination.TotalPages,
		},
	})
}

// UpdateRole handles PATCH /panel/users/:id/role, the single user mutation
// this panel exposes.
func (h *UsersHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	role := domain.Role(req.Role)
	if !role.Valid() {
		return apperrors.NewValidationError("role must be one of CUSTOMER, AGENT, ADMIN", nil)
	}

	user, err := h.api.UpdateUserRole(c.Context(), c.Params("id"), role)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"data": userSummary(user)})
}

func parseUserQuery(c *fiber.Ctx) (backend.ListUsersParams, error) {
	params := backend.ListUsersParams{
		Search: c.Query("search"),
		Limit:  defaultPageLimit,
	}

	if roleStr := c.Query("role"); roleStr != "" {
		role := domain.Role(roleStr)
		if !role.Valid() {
			return params, apperrors.NewValidationError("unknown role filter", nil)
		}
		params.Role = role
	}
	if val := c.Query("page"); val != "" {
		page, err := strconv.Atoi(val)
		if err != nil || page < 1 {
			return params, apperrors.NewValidationError("page must be a positive integer", nil)
		}
		params.Page = page
	}
	if val := c.Query("limit"); val != "" {
		limit, err := strconv.Atoi(val)
		if err != nil || limit < 1 {
			return params, apperrors.NewValidationError("limit must be a positive integer", nil)
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
		params.Limit = limit
	}
	return params, nil
}

func userSummary(user *domain.User) dto.UserSummary {
	return dto.UserSummary{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		Role:            string(user.Role),
		AuthProvider:    user.AuthProvider,
		IsActive:        user.IsActive,
		IsEmailVerified: user.IsEmailVerified,
		ProfilePicture:  user.ProfilePicture,
		CreatedAt:       user.CreatedAt,
		LastLoginAt:     user.LastLoginAt,
	}
}
