package handler

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/quotelane/lease-pricing-api/internal/domain"
)

func TestOverrideRequestToOverride(t *testing.T) {
	provider := "Alphera"

	tests := []struct {
		name               string
		request            OverrideRequest
		expectError        bool
		expectedValidUntil *time.Time
	}{
		{
			name: "valid date string becomes the expiry timestamp",
			request: OverrideRequest{
				Scope:      domain.OverrideScope{Provider: &provider},
				Type:       domain.OverrideTypePercentage,
				Value:      decimal.NewFromInt(-5),
				Priority:   10,
				IsActive:   true,
				ValidUntil: "2026-12-31",
				Reason:     "year end campaign",
			},
			expectedValidUntil: func() *time.Time {
				d := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
				return &d
			}(),
		},
		{
			name: "absent date stays open ended",
			request: OverrideRequest{
				Type:   domain.OverrideTypeFixed,
				Value:  decimal.RequireFromString("349.99"),
				Reason: "price match",
			},
		},
		{
			name: "malformed date is rejected",
			request: OverrideRequest{
				Type:       domain.OverrideTypeFixed,
				Value:      decimal.NewFromInt(300),
				ValidUntil: "31/12/2026",
				Reason:     "price match",
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			override, err := tc.request.toOverride()

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, override)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.request.Type, override.Type)
			assert.True(t, tc.request.Value.Equal(override.Value))
			assert.Equal(t, tc.request.Reason, override.Reason)

			if tc.expectedValidUntil == nil {
				assert.Nil(t, override.ValidUntil)
				return
			}
			assert.NotNil(t, override.ValidUntil)
			assert.True(t, tc.expectedValidUntil.Equal(*override.ValidUntil))
		})
	}
}
