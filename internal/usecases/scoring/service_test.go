package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

func scoringConfig() *config.Config {
	return &config.Config{
		Pricing: config.Pricing{
			ReferenceTerm: 36,
		},
	}
}

func electricHatch() *domain.Vehicle {
	return &domain.Vehicle{
		ID:             "veh-1",
		Manufacturer:   "Tesla",
		Model:          "Model 3",
		ListPriceMinor: 4000000, // 40,000.00
		FuelType:       domain.FuelTypeElectric,
		CO2GramsPerKM:  0,
	}
}

func TestScore_Breakdown(t *testing.T) {
	service := NewService(scoringConfig())
	profile := domain.PaymentProfile{Term: 36, InitialMonths: 1}

	// 30000 minor * 36 payments = 1,080,000 against 4,000,000 list: ratio 0.27.
	breakdown := service.Score(30000, electricHatch(), profile)

	assert.Equal(t, 36, breakdown.TotalPayments)
	assert.Equal(t, 0.27, breakdown.CostRatio)
	assert.Equal(t, 100, breakdown.ValueScore)
	assert.Equal(t, 8, breakdown.EfficiencyBonus) // electric, no CO2 figure
	assert.Equal(t, 2, breakdown.AffordabilityMod)
	assert.Equal(t, 3, breakdown.BrandBonus)
	assert.Equal(t, 100, breakdown.FinalScore) // clamped from 113
	assert.Equal(t, domain.ScoreLabelExceptional, breakdown.Label)
}

func TestScore_ClampsToZero(t *testing.T) {
	service := NewService(scoringConfig())
	profile := domain.PaymentProfile{Term: 48, InitialMonths: 12}

	vehicle := &domain.Vehicle{
		Manufacturer:   "Fiat",
		ListPriceMinor: 2000000,
		FuelType:       domain.FuelTypeDiesel,
		CO2GramsPerKM:  210,
	}

	// 95000 * 59 payments over a 20,000.00 list price: ratio far above 1.
	breakdown := service.Score(95000, vehicle, profile)

	assert.Equal(t, 0, breakdown.ValueScore)
	assert.Equal(t, -4, breakdown.EfficiencyBonus) // diesel -2, high CO2 -2
	assert.Equal(t, -6, breakdown.AffordabilityMod)
	assert.Equal(t, -2, breakdown.BrandBonus)
	assert.Equal(t, 0, breakdown.FinalScore)
	assert.Equal(t, domain.ScoreLabelPoor, breakdown.Label)
}

func TestScore_MonotonicInPrice(t *testing.T) {
	service := NewService(scoringConfig())
	profile := domain.PaymentProfile{Term: 36, InitialMonths: 1}
	vehicle := electricHatch()

	previous := 101
	for _, monthly := range []int64{20000, 35000, 50000, 70000, 95000, 120000} {
		breakdown := service.Score(monthly, vehicle, profile)
		assert.LessOrEqual(t, breakdown.FinalScore, previous,
			"score must not increase as the monthly price rises (at %d)", monthly)
		previous = breakdown.FinalScore
	}
}

func TestScore_GuardsAgainstBadInput(t *testing.T) {
	service := NewService(scoringConfig())
	profile := domain.PaymentProfile{Term: 36, InitialMonths: 1}

	tests := []struct {
		name    string
		monthly int64
		vehicle *domain.Vehicle
	}{
		{name: "nil vehicle", monthly: 30000, vehicle: nil},
		{name: "zero list price", monthly: 30000, vehicle: &domain.Vehicle{}},
		{name: "non-positive monthly", monthly: 0, vehicle: electricHatch()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			breakdown := service.Score(tc.monthly, tc.vehicle, profile)
			assert.Equal(t, 0, breakdown.FinalScore)
			assert.Equal(t, domain.ScoreLabelPoor, breakdown.Label)
		})
	}
}

func TestLabelForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected domain.ScoreLabel
	}{
		{score: 90, expected: domain.ScoreLabelExceptional},
		{score: 89, expected: domain.ScoreLabelGreat},
		{score: 75, expected: domain.ScoreLabelGreat},
		{score: 60, expected: domain.ScoreLabelGood},
		{score: 45, expected: domain.ScoreLabelFair},
		{score: 30, expected: domain.ScoreLabelAverage},
		{score: 29, expected: domain.ScoreLabelPoor},
		{score: 0, expected: domain.ScoreLabelPoor},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, LabelForScore(tc.score), "score %d", tc.score)
	}
}

func TestReferenceProfile(t *testing.T) {
	service := NewService(scoringConfig())

	profile := service.ReferenceProfile()

	assert.Equal(t, 36, profile.Term)
	assert.Equal(t, 1, profile.InitialMonths)
}

func TestTermsHolderOpportunity(t *testing.T) {
	service := NewService(scoringConfig())

	t.Run("positive saving surfaced", func(t *testing.T) {
		opportunity := service.TermsHolderOpportunity(4000000, 3700000)

		assert.NotNil(t, opportunity)
		assert.Equal(t, int64(300000), opportunity.SavingsMinor)
		assert.Equal(t, 7.5, opportunity.SavingsPercent)
	})

	t.Run("no saving returns nil", func(t *testing.T) {
		assert.Nil(t, service.TermsHolderOpportunity(3700000, 3700000))
		assert.Nil(t, service.TermsHolderOpportunity(3700000, 4000000))
	})

	t.Run("non-positive inputs return nil", func(t *testing.T) {
		assert.Nil(t, service.TermsHolderOpportunity(0, 3700000))
		assert.Nil(t, service.TermsHolderOpportunity(4000000, -1))
	})
}
