package overriding

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/quotelane/lease-pricing-api/infrastructure/repository/mocks"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

func validOverride() *domain.PriceOverride {
	return &domain.PriceOverride{
		Type:     domain.OverrideTypePercentage,
		Value:    decimal.NewFromInt(-5),
		Priority: 5,
		IsActive: true,
		Reason:   "spring campaign discount",
	}
}

func TestCreateOverride_GeneratesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPriceOverrideRepository(ctrl)
	mockRepo.EXPECT().
		CreateOverride(gomock.Any()).
		DoAndReturn(func(o *domain.PriceOverride) (*domain.PriceOverride, error) {
			assert.NotEmpty(t, o.ID)
			return o, nil
		})

	service := NewService(mockRepo)

	created, err := service.CreateOverride(validOverride())

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestCreateOverride_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPriceOverrideRepository(ctrl)
	service := NewService(mockRepo)

	emptyProvider := ""
	negativeTerm := -12

	tests := []struct {
		name     string
		mutate   func(o *domain.PriceOverride)
		expected error
	}{
		{
			name:     "unknown type",
			mutate:   func(o *domain.PriceOverride) { o.Type = "markup" },
			expected: ErrInvalidOverrideType,
		},
		{
			name: "negative fixed price",
			mutate: func(o *domain.PriceOverride) {
				o.Type = domain.OverrideTypeFixed
				o.Value = decimal.NewFromInt(-100)
			},
			expected: ErrInvalidValue,
		},
		{
			name:     "empty provider scope",
			mutate:   func(o *domain.PriceOverride) { o.Scope.Provider = &emptyProvider },
			expected: ErrInvalidScope,
		},
		{
			name:     "non-positive term scope",
			mutate:   func(o *domain.PriceOverride) { o.Scope.Term = &negativeTerm },
			expected: ErrInvalidScope,
		},
		{
			name:     "missing reason",
			mutate:   func(o *domain.PriceOverride) { o.Reason = "" },
			expected: ErrMissingReason,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			override := validOverride()
			tc.mutate(override)

			_, err := service.CreateOverride(override)

			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestDeleteOverride_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPriceOverrideRepository(ctrl)
	mockRepo.EXPECT().
		DeleteOverride("missing").
		Return(false, nil)

	service := NewService(mockRepo)

	err := service.DeleteOverride("missing")

	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestUpdateOverride_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPriceOverrideRepository(ctrl)
	mockRepo.EXPECT().
		UpdateOverride(gomock.Any()).
		Return(nil, nil)

	service := NewService(mockRepo)

	override := validOverride()
	override.ID = "missing"

	_, err := service.UpdateOverride(override)

	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestResolve_UsesActiveSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPriceOverrideRepository(ctrl)
	mockRepo.EXPECT().
		ListActiveOverrides().
		Return([]domain.PriceOverride{
			{
				ID:       "ovr-1",
				Type:     domain.OverrideTypeAbsolute,
				Value:    decimal.NewFromInt(-10),
				Priority: 1,
				IsActive: true,
			},
		}, nil)

	service := NewService(mockRepo)

	resolved, err := service.Resolve(domain.ResolutionContext{VehicleID: "veh-1"}, 40000)

	assert.NoError(t, err)
	assert.Equal(t, int64(39000), resolved.PriceMinor)
	assert.Equal(t, "ovr-1", *resolved.AppliedOverrideID)
}
