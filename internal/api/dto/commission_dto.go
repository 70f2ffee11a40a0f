package dto

import "time"

// CreateCommissionRequest payload for a new commission rule. A null sub_type
// means the rule covers every sub-category of the service.
type CreateCommissionRequest struct {
	ServiceType    string  `json:"service_type"`
	SubType        *string `json:"sub_type"`
	CommissionType string  `json:"commission_type"`
	Value          float64 `json:"value"`
	IsActive       bool    `json:"is_active"`
}

// UpdateCommissionRequest carries a partial update; absent fields stay as-is.
type UpdateCommissionRequest struct {
	CommissionType *string  `json:"commission_type"`
	Value          *float64 `json:"value"`
	IsActive       *bool    `json:"is_active"`
}

// CommissionResponse is a row in the commissions table.
type CommissionResponse struct {
	ID             string    `json:"id"`
	ServiceType    string    `json:"service_type"`
	SubType        *string   `json:"sub_type"`
	CommissionType string    `json:"commission_type"`
	Value          float64   `json:"value"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
