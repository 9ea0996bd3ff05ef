package overriding

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quotelane/lease-pricing-api/internal/domain"
)

// ResolveAgainst applies the winning override from a snapshot of the override
// set to the computed best price. It is deterministic and referentially
// transparent: the same (overrides, context, price, now) always yields the
// same final price and the same applied-override id.
//
// Matching: a nil scope field matches any context value. Inactive and expired
// overrides are dropped. The winner is the highest priority, ties broken by
// scope specificity (count of bound fields), then by most recent creation.
// With no surviving match the price passes through unchanged.
func ResolveAgainst(
	overrides []domain.PriceOverride,
	rctx domain.ResolutionContext,
	priceMinor int64,
	now time.Time,
) domain.ResolvedPrice {
	candidates := make([]domain.PriceOverride, 0, len(overrides))
	for _, o := range overrides {
		if !o.IsActive || o.Expired(now) {
			continue
		}
		if !scopeMatches(o.Scope, rctx) {
			continue
		}
		candidates = append(candidates, o)
	}

	if len(candidates) == 0 {
		return domain.ResolvedPrice{PriceMinor: priceMinor}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].Priority != candidates[b].Priority {
			return candidates[a].Priority > candidates[b].Priority
		}
		sa, sb := candidates[a].Scope.Specificity(), candidates[b].Scope.Specificity()
		if sa != sb {
			return sa > sb
		}
		return candidates[a].CreatedAt.After(candidates[b].CreatedAt)
	})

	winner := candidates[0]
	id := winner.ID
	return domain.ResolvedPrice{
		PriceMinor:        ApplyOverride(winner, priceMinor),
		AppliedOverrideID: &id,
	}
}

func scopeMatches(scope domain.OverrideScope, rctx domain.ResolutionContext) bool {
	if scope.VehicleID != nil && *scope.VehicleID != rctx.VehicleID {
		return false
	}
	if scope.Provider != nil && *scope.Provider != rctx.Provider {
		return false
	}
	if scope.ContractType != nil && *scope.ContractType != rctx.ContractType {
		return false
	}
	if scope.Term != nil && *scope.Term != rctx.Term {
		return false
	}
	if scope.Mileage != nil && *scope.Mileage != rctx.Mileage {
		return false
	}
	return true
}

var (
	hundred    = decimal.NewFromInt(100)
	decimalOne = decimal.NewFromInt(1)
)

// ApplyOverride transforms a price according to the override type. Fixed and
// Absolute values are pounds; Percentage values are percentage points.
func ApplyOverride(o domain.PriceOverride, priceMinor int64) int64 {
	price := decimal.NewFromInt(priceMinor)

	switch o.Type {
	case domain.OverrideTypeFixed:
		return o.Value.Mul(hundred).Round(0).IntPart()
	case domain.OverrideTypePercentage:
		factor := decimalOne.Add(o.Value.Div(hundred))
		return price.Mul(factor).Round(0).IntPart()
	case domain.OverrideTypeAbsolute:
		return price.Add(o.Value.Mul(hundred)).Round(0).IntPart()
	default:
		return priceMinor
	}
}
