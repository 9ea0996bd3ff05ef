package comparing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quotelane/lease-pricing-api/internal/domain"
)

func catalogue() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: "veh-1", Manufacturer: "Volkswagen", Model: "Golf", Variant: "Life TSI"},
		{ID: "veh-2", Manufacturer: "Volkswagen", Model: "Golf", Variant: "R-Line TSI"},
		{ID: "veh-3", Manufacturer: "Kia", Model: "Niro", Variant: "2 HEV"},
	}
}

func TestNormalizeIdentity(t *testing.T) {
	assert.Equal(t, "volkswagen golf", NormalizeIdentity("  Volkswagen   GOLF "))
	assert.Equal(t, "", NormalizeIdentity("   "))
}

func TestMatchVehicle(t *testing.T) {
	variant := "r-line tsi"
	unknownVariant := "GTD"

	tests := []struct {
		name         string
		manufacturer string
		model        string
		variant      *string
		expectedID   string
	}{
		{
			name:         "exact match with variant",
			manufacturer: "VOLKSWAGEN",
			model:        "golf",
			variant:      &variant,
			expectedID:   "veh-2",
		},
		{
			name:         "unique match without variant",
			manufacturer: "Kia",
			model:        "Niro",
			expectedID:   "veh-3",
		},
		{
			name:         "ambiguous without variant returns nothing",
			manufacturer: "Volkswagen",
			model:        "Golf",
			expectedID:   "",
		},
		{
			name:         "unknown variant returns nothing",
			manufacturer: "Volkswagen",
			model:        "Golf",
			variant:      &unknownVariant,
			expectedID:   "",
		},
		{
			name:         "manufacturer only never matches",
			manufacturer: "Kia",
			model:        "",
			expectedID:   "",
		},
		{
			name:         "unknown manufacturer",
			manufacturer: "Cupra",
			model:        "Born",
			expectedID:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			match := MatchVehicle(catalogue(), tc.manufacturer, tc.model, tc.variant)

			if tc.expectedID == "" {
				assert.Nil(t, match)
				return
			}
			assert.NotNil(t, match)
			assert.Equal(t, tc.expectedID, match.ID)
		})
	}
}
