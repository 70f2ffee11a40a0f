package domain

import "time"

// ServiceType identifies a bookable service category.
type ServiceType string

const (
	ServiceFlight     ServiceType = "FLIGHT"
	ServiceHotel      ServiceType = "HOTEL"
	ServiceTravelPlan ServiceType = "TRAVEL_PLAN"
	ServiceInsurance  ServiceType = "INSURANCE"
)

// Valid reports whether the service type is one of the closed set.
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceFlight, ServiceHotel, ServiceTravelPlan, ServiceInsurance:
		return true
	}
	return false
}

// CommissionType distinguishes percentage markups from fixed amounts.
type CommissionType string

const (
	CommissionPercentage CommissionType = "PERCENTAGE"
	CommissionFixed      CommissionType = "FIXED"
)

// Valid reports whether the commission type is one of the closed set.
func (c CommissionType) Valid() bool {
	return c == CommissionPercentage || c == CommissionFixed
}

// ServiceCommission is a markup rule owned by the backend. A nil SubType
// means the rule applies to every sub-category of its service type.
type ServiceCommission struct {
	ID             string         `json:"id"`
	ServiceType    ServiceType    `json:"serviceType"`
	SubType        *string        `json:"subType"`
	CommissionType CommissionType `json:"commissionType"`
	Value          float64        `json:"value"`
	IsActive       bool           `json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// serviceSubTypes constrains the sub-type pickers in the panel. The mapping
// is advisory; the backend stays authoritative for what it accepts.
var serviceSubTypes = map[ServiceType][]string{
	ServiceFlight:     {"DOMESTIC", "INTERNATIONAL"},
	ServiceHotel:      {"BUDGET", "STANDARD", "LUXURY"},
	ServiceTravelPlan: {"GROUP", "PRIVATE"},
	ServiceInsurance:  {"BASIC", "COMPREHENSIVE"},
}

// SubTypesFor returns the advisory sub-types for a service type.
func SubTypesFor(s ServiceType) []string {
	return serviceSubTypes[s]
}

// KnownSubType reports whether sub belongs to the advisory set for s.
func KnownSubType(s ServiceType, sub string) bool {
	for _, candidate := range serviceSubTypes[s] {
		if candidate == sub {
			return true
		}
	}
	return false
}
