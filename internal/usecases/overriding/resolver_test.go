package overriding

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/quotelane/lease-pricing-api/internal/domain"
)

var resolveNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func resolveContext() domain.ResolutionContext {
	return domain.ResolutionContext{
		VehicleID:    "veh-1",
		Provider:     "Alphera",
		ContractType: domain.ContractTypePersonal,
		Term:         36,
		Mileage:      10000,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestResolveAgainst_NoMatchPassesThrough(t *testing.T) {
	overrides := []domain.PriceOverride{
		{
			ID:       "ovr-1",
			Scope:    domain.OverrideScope{Provider: strPtr("Zenith")},
			Type:     domain.OverrideTypePercentage,
			Value:    decimal.NewFromInt(-10),
			IsActive: true,
		},
	}

	resolved := ResolveAgainst(overrides, resolveContext(), 39900, resolveNow)

	assert.Equal(t, int64(39900), resolved.PriceMinor)
	assert.Nil(t, resolved.AppliedOverrideID)
}

func TestResolveAgainst_PriorityWins(t *testing.T) {
	overrides := []domain.PriceOverride{
		{
			ID:       "low",
			Type:     domain.OverrideTypePercentage,
			Value:    decimal.NewFromInt(-10),
			Priority: 1,
			IsActive: true,
		},
		{
			ID:       "high",
			Type:     domain.OverrideTypePercentage,
			Value:    decimal.NewFromInt(-5),
			Priority: 10,
			IsActive: true,
		},
	}

	resolved := ResolveAgainst(overrides, resolveContext(), 40000, resolveNow)

	assert.Equal(t, "high", *resolved.AppliedOverrideID)
	assert.Equal(t, int64(38000), resolved.PriceMinor)
}

func TestResolveAgainst_SpecificityBreaksPriorityTie(t *testing.T) {
	overrides := []domain.PriceOverride{
		{
			ID:       "broad",
			Scope:    domain.OverrideScope{Provider: strPtr("Alphera")},
			Type:     domain.OverrideTypeAbsolute,
			Value:    decimal.NewFromInt(-10),
			Priority: 5,
			IsActive: true,
		},
		{
			ID: "narrow",
			Scope: domain.OverrideScope{
				Provider:  strPtr("Alphera"),
				VehicleID: strPtr("veh-1"),
				Term:      intPtr(36),
			},
			Type:     domain.OverrideTypeAbsolute,
			Value:    decimal.NewFromInt(-20),
			Priority: 5,
			IsActive: true,
		},
	}

	resolved := ResolveAgainst(overrides, resolveContext(), 40000, resolveNow)

	assert.Equal(t, "narrow", *resolved.AppliedOverrideID)
	assert.Equal(t, int64(38000), resolved.PriceMinor) // 40000 - 20*100
}

func TestResolveAgainst_RecencyBreaksFullTie(t *testing.T) {
	overrides := []domain.PriceOverride{
		{
			ID:        "older",
			Type:      domain.OverrideTypePercentage,
			Value:     decimal.NewFromInt(-10),
			Priority:  5,
			IsActive:  true,
			CreatedAt: resolveNow.Add(-48 * time.Hour),
		},
		{
			ID:        "newer",
			Type:      domain.OverrideTypePercentage,
			Value:     decimal.NewFromInt(-5),
			Priority:  5,
			IsActive:  true,
			CreatedAt: resolveNow.Add(-1 * time.Hour),
		},
	}

	resolved := ResolveAgainst(overrides, resolveContext(), 40000, resolveNow)

	assert.Equal(t, "newer", *resolved.AppliedOverrideID)
}

func TestResolveAgainst_ExpiredAndInactiveDropped(t *testing.T) {
	past := resolveNow.Add(-time.Hour)
	overrides := []domain.PriceOverride{
		{
			ID:         "expired",
			Type:       domain.OverrideTypeFixed,
			Value:      decimal.NewFromInt(100),
			Priority:   100,
			IsActive:   true,
			ValidUntil: &past,
		},
		{
			ID:       "inactive",
			Type:     domain.OverrideTypeFixed,
			Value:    decimal.NewFromInt(100),
			Priority: 100,
			IsActive: false,
		},
	}

	resolved := ResolveAgainst(overrides, resolveContext(), 39900, resolveNow)

	assert.Equal(t, int64(39900), resolved.PriceMinor)
	assert.Nil(t, resolved.AppliedOverrideID)
}

func TestResolveAgainst_Deterministic(t *testing.T) {
	overrides := []domain.PriceOverride{
		{ID: "a", Type: domain.OverrideTypePercentage, Value: decimal.NewFromInt(-5), Priority: 5, IsActive: true},
		{ID: "b", Type: domain.OverrideTypePercentage, Value: decimal.NewFromInt(-7), Priority: 3, IsActive: true},
		{ID: "c", Type: domain.OverrideTypeAbsolute, Value: decimal.NewFromInt(-15), Priority: 5, IsActive: true,
			Scope: domain.OverrideScope{VehicleID: strPtr("veh-1")}},
	}

	first := ResolveAgainst(overrides, resolveContext(), 40000, resolveNow)
	for i := 0; i < 10; i++ {
		again := ResolveAgainst(overrides, resolveContext(), 40000, resolveNow)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "c", *first.AppliedOverrideID)
}

func TestApplyOverride(t *testing.T) {
	tests := []struct {
		name     string
		override domain.PriceOverride
		price    int64
		expected int64
	}{
		{
			name:     "fixed replaces the price, pounds to minor",
			override: domain.PriceOverride{Type: domain.OverrideTypeFixed, Value: decimal.RequireFromString("349.99")},
			price:    39900,
			expected: 34999,
		},
		{
			name:     "percentage discount rounds half up",
			override: domain.PriceOverride{Type: domain.OverrideTypePercentage, Value: decimal.RequireFromString("-2.5")},
			price:    39999,
			expected: 38999, // 39999 * 0.975 = 38999.025
		},
		{
			name:     "percentage uplift",
			override: domain.PriceOverride{Type: domain.OverrideTypePercentage, Value: decimal.NewFromInt(10)},
			price:    40000,
			expected: 44000,
		},
		{
			name:     "absolute adjustment in pounds",
			override: domain.PriceOverride{Type: domain.OverrideTypeAbsolute, Value: decimal.RequireFromString("-25.50")},
			price:    40000,
			expected: 37450,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ApplyOverride(tc.override, tc.price))
		})
	}
}
