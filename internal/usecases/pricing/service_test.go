package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/quotelane/lease-pricing-api/infrastructure/repository/mocks"
	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/domain"
	"github.com/quotelane/lease-pricing-api/internal/usecases/overriding"
)

func pricingConfig() *config.Config {
	return &config.Config{
		Pricing: config.Pricing{
			StandardInitialMonths:        []int{1, 3, 6, 9, 12},
			SignificanceThresholdPercent: 5.0,
			ReferenceTerm:                36,
			DefaultMileage:               10000,
		},
	}
}

func TestExploreRates_NoRatesAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRateRepo := mocks.NewMockRateRepository(ctrl)
	mockOverrideRepo := mocks.NewMockPriceOverrideRepository(ctrl)

	mockRateRepo.EXPECT().
		ListQuotes("veh-1", 10000, false, domain.ContractTypePersonal).
		Return([]domain.QuoteCell{}, nil)

	service := NewService(pricingConfig(), mockRateRepo, overriding.NewService(mockOverrideRepo))

	response, err := service.ExploreRates("veh-1", 10000, false, domain.ContractTypePersonal)

	assert.NoError(t, err)
	assert.True(t, response.NoRatesAvailable)
	assert.Nil(t, response.FinalPriceMinor)
	assert.Empty(t, response.TermProfiles)
	assert.Empty(t, response.Providers)
}

func TestExploreRates_OverrideAppliedToOverallBest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRateRepo := mocks.NewMockRateRepository(ctrl)
	mockOverrideRepo := mocks.NewMockPriceOverrideRepository(ctrl)

	mockRateRepo.EXPECT().
		ListQuotes("veh-1", 10000, false, domain.ContractTypePersonal).
		Return([]domain.QuoteCell{
			{Provider: "Alphera", Term: 36, InitialMonths: 3, MonthlyRentalMinor: 39900, ContractType: domain.ContractTypePersonal},
			{Provider: "Zenith", Term: 36, InitialMonths: 3, MonthlyRentalMinor: 42500, ContractType: domain.ContractTypePersonal},
		}, nil)

	// A -5% override scoped to the winning provider.
	value := decimal.NewFromInt(-5)
	provider := "Alphera"
	mockOverrideRepo.EXPECT().
		ListActiveOverrides().
		Return([]domain.PriceOverride{
			{
				ID:       "ovr-1",
				Scope:    domain.OverrideScope{Provider: &provider},
				Type:     domain.OverrideTypePercentage,
				Value:    value,
				Priority: 10,
				IsActive: true,
			},
		}, nil)

	service := NewService(pricingConfig(), mockRateRepo, overriding.NewService(mockOverrideRepo))

	response, err := service.ExploreRates("veh-1", 10000, false, domain.ContractTypePersonal)

	assert.NoError(t, err)
	assert.False(t, response.NoRatesAvailable)
	assert.Equal(t, "Alphera", response.OverallBestProvider)
	assert.Equal(t, "3+36", response.OverallBestKey)

	// round(39900 * 0.95) = 37905
	assert.NotNil(t, response.FinalPriceMinor)
	assert.Equal(t, int64(37905), *response.FinalPriceMinor)
	assert.NotNil(t, response.AppliedOverrideID)
	assert.Equal(t, "ovr-1", *response.AppliedOverrideID)

	// The matrix itself is untouched by the override.
	assert.Equal(t, int64(39900), *response.Matrix["Alphera"]["3+36"].PriceMinor)

	best, ok := response.BestPrices["3+36"]
	assert.True(t, ok) // saving is 2600/42500 = 6.1%
	assert.Equal(t, "Alphera", best.Provider)
}

func TestExploreRates_NoOverrideMatchPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRateRepo := mocks.NewMockRateRepository(ctrl)
	mockOverrideRepo := mocks.NewMockPriceOverrideRepository(ctrl)

	mockRateRepo.EXPECT().
		ListQuotes("veh-1", 10000, false, domain.ContractTypePersonal).
		Return([]domain.QuoteCell{
			{Provider: "Alphera", Term: 36, InitialMonths: 3, MonthlyRentalMinor: 39900},
		}, nil)

	mockOverrideRepo.EXPECT().
		ListActiveOverrides().
		Return([]domain.PriceOverride{}, nil)

	service := NewService(pricingConfig(), mockRateRepo, overriding.NewService(mockOverrideRepo))

	response, err := service.ExploreRates("veh-1", 10000, false, domain.ContractTypePersonal)

	assert.NoError(t, err)
	assert.NotNil(t, response.FinalPriceMinor)
	assert.Equal(t, int64(39900), *response.FinalPriceMinor)
	assert.Nil(t, response.AppliedOverrideID)
}
