package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/voyago/admin-panel/internal/api/dto"
	"github.com/voyago/admin-panel/internal/backend"
	"github.com/voyago/admin-panel/internal/domain"
	apperrors "github.com/voyago/admin-panel/pkg/util/errorutil"
)

// CommissionsHandler manages commission-rate configuration screens.
type CommissionsHandler struct {
	api *backend.Client
}

// NewCommissionsHandler constructs handler.
func NewCommissionsHandler(api *backend.Client) *CommissionsHandler {
	return &CommissionsHandler{api: api}
}

// List handles GET /panel/commissions.
func (h *CommissionsHandler) List(c *fiber.Ctx) error {
	commissions, err := h.api.ListCommissions(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CommissionResponse, 0, len(commissions))
	for i := range commissions {
		items = append(items, commissionResponse(&commissions[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create handles POST /panel/commissions. Enum and value checks are local;
// the sub-type table is advisory only, so an unknown sub-type passes through
// with a warning and the backend stays authoritative.
func (h *CommissionsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCommissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	serviceType := domain.ServiceType(req.ServiceType)
	if !serviceType.Valid() {
		return apperrors.NewValidationError("unknown service_type", nil)
	}
	commissionType := domain.CommissionType(req.CommissionType)
	if !commissionType.Valid() {
		return apperrors.NewValidationError("commission_type must be PERCENTAGE or FIXED", nil)
	}
	if req.Value <= 0 {
		return apperrors.NewValidationError("value must be greater than zero", nil)
	}

	var warnings []string
	if req.SubType != nil && !domain.KnownSubType(serviceType, *req.SubType) {
		warnings = append(warnings, "sub_type is not in the known set for this service")
	}

	commission, err := h.api.CreateCommission(c.Context(), backend.CreateCommissionInput{
		ServiceType:    serviceType,
		SubType:        req.SubType,
		CommissionType: commissionType,
		Value:          req.Value,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return err
	}

	response := fiber.Map{"data": commissionResponse(commission)}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	return c.Status(http.StatusCreated).JSON(response)
}

// Update handles PUT /panel/commissions/:id with a partial payload.
func (h *CommissionsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCommissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CommissionType == nil && req.Value == nil && req.IsActive == nil {
		return apperrors.NewValidationError("nothing to update", nil)
	}

	input := backend.UpdateCommissionInput{IsActive: req.IsActive}
	if req.CommissionType != nil {
		commissionType := domain.CommissionType(*req.CommissionType)
		if !commissionType.Valid() {
			return apperrors.NewValidationError("commission_type must be PERCENTAGE or FIXED", nil)
		}
		input.CommissionType = &commissionType
	}
	if req.Value != nil {
		if *req.Value <= 0 {
			return apperrors.NewValidationError("value must be greater than zero", nil)
		}
		input.Value = req.Value
	}

	commission, err := h.api.UpdateCommission(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": commissionResponse(commission)})
}

// ToggleActive handles PATCH /panel/commissions/:id/active.
func (h *CommissionsHandler) ToggleActive(c *fiber.Ctx) error {
	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
		return apperrors.NewValidationError("is_active required", nil)
	}

	commission, err := h.api.UpdateCommission(c.Context(), c.Params("id"), backend.UpdateCommissionInput{
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": commissionResponse(commission)})
}

// Delete handles DELETE /panel/commissions/:id.
func (h *CommissionsHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.api.DeleteCommission(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": deleted}})
}

func commissionResponse(commission *domain.ServiceCommission) dto.CommissionResponse {
	return dto.CommissionResponse{
		ID:             commission.ID,
		ServiceType:    string(commission.ServiceType),
		SubType:        commission.SubType,
		CommissionType: string(commission.CommissionType),
		Value:          commission.Value,
		IsActive:       commission.IsActive,
		CreatedAt:      commission.CreatedAt,
		UpdatedAt:      commission.UpdatedAt,
	}
}
