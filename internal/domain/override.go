package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OverrideType selects how an override transforms the computed best price.
type OverrideType string

const (
	// OverrideTypeFixed replaces the price outright; Value is pounds.
	OverrideTypeFixed OverrideType = "fixed"
	// OverrideTypePercentage multiplies the price by (1 + Value/100).
	OverrideTypePercentage OverrideType = "percentage"
	// OverrideTypeAbsolute adds Value pounds (may be negative).
	OverrideTypeAbsolute OverrideType = "absolute"
)

// OverrideScope is an ordered tuple of optional matchers. A nil field matches
// any context value; specificity is the count of non-nil fields, so new scope
// dimensions extend precedence without touching the resolver.
type OverrideScope struct {
	VehicleID    *string       `json:"vehicle_id,omitempty"`
	Provider     *string       `json:"provider,omitempty"`
	ContractType *ContractType `json:"contract_type,omitempty"`
	Term         *int          `json:"term,omitempty"`
	Mileage      *int          `json:"mileage,omitempty"`
}

// Specificity counts the bound scope fields. Higher wins on priority ties.
func (s OverrideScope) Specificity() int {
	n := 0
	if s.VehicleID != nil {
		n++
	}
	if s.Provider != nil {
		n++
	}
	if s.ContractType != nil {
		n++
	}
	if s.Term != nil {
		n++
	}
	if s.Mileage != nil {
		n++
	}
	return n
}

// PriceOverride is an admin-defined price adjustment layered on top of the
// best-price selection.
type PriceOverride struct {
	ID         string          `json:"id"`
	Scope      OverrideScope   `json:"scope"`
	Type       OverrideType    `json:"type"`
	Value      decimal.Decimal `json:"value"`
	Priority   int             `json:"priority"`
	IsActive   bool            `json:"is_active"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"`
	Reason     string          `json:"reason"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Expired reports whether the override's validity window has closed at now.
func (o PriceOverride) Expired(now time.Time) bool {
	return o.ValidUntil != nil && o.ValidUntil.Before(now)
}

// ResolutionContext is the pricing context an override scope is matched
// against.
type ResolutionContext struct {
	VehicleID    string       `json:"vehicle_id"`
	Provider     string       `json:"provider"`
	ContractType ContractType `json:"contract_type"`
	Term         int          `json:"term"`
	Mileage      int          `json:"mileage"`
}

// ResolvedPrice is the Override Resolver output: the final displayable price
// and the override that produced it, nil when the price passed through
// untouched.
type ResolvedPrice struct {
	PriceMinor        int64   `json:"price_minor"`
	AppliedOverrideID *string `json:"applied_override_id"`
}
