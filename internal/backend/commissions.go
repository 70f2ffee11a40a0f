package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/voyago/admin-panel/internal/domain"
)

// CreateCommissionInput is the payload for a new commission rule. A nil
// SubType means the rule covers every sub-category of the service.
type CreateCommissionInput struct {
	ServiceType    domain.ServiceType    `json:"serviceType"`
	SubType        *string               `json:"subType"`
	CommissionType domain.CommissionType `json:"commissionType"`
	Value          float64               `json:"value"`
	IsActive       bool                  `json:"isActive"`
}

// UpdateCommissionInput is a partial update; nil fields are left untouched
// by the backend.
type UpdateCommissionInput struct {
	CommissionType *domain.CommissionType `json:"commissionType,omitempty"`
	Value          *float64               `json:"value,omitempty"`
	IsActive       *bool                  `json:"isActive,omitempty"`
}

// ListCommissions fetches every commission rule.
func (c *Client) ListCommissions(ctx context.Context) ([]domain.ServiceCommission, error) {
	var commissions []domain.ServiceCommission
	if err := c.do(ctx, http.MethodGet, "/admin/commissions", nil, true, &commissions); err != nil {
		return nil, err
	}
	return commissions, nil
}

// CreateCommission adds a commission rule.
func (c *Client) CreateCommission(ctx context.Context, input CreateCommissionInput) (*domain.ServiceCommission, error) {
	var commission domain.ServiceCommission
	if err := c.do(ctx, http.MethodPost, "/admin/commissions", input, true, &commission); err != nil {
		return nil, err
	}
	return &commission, nil
}

// UpdateCommission applies a partial update to a commission rule.
func (c *Client) UpdateCommission(ctx context.Context, id string, input UpdateCommissionInput) (*domain.ServiceCommission, error) {
	var commission domain.ServiceCommission
	path := fmt.Sprintf("/admin/commissions/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPut, path, input, true, &commission); err != nil {
		return nil, err
	}
	return &commission, nil
}

// DeleteCommission removes a commission rule and reports the backend's
// deleted flag.
func (c *Client) DeleteCommission(ctx context.Context, id string) (bool, error) {
	var resp struct {
		Deleted bool `json:"deleted"`
	}
	path := fmt.Sprintf("/admin/commissions/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodDelete, path, nil, true, &resp); err != nil {
		return false, err
	}
	return resp.Deleted, nil
}
