package comparing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/quotelane/lease-pricing-api/infrastructure/repository/mocks"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

func competitorPrices(prices ...int64) []domain.CompetitorPrice {
	out := make([]domain.CompetitorPrice, len(prices))
	for i, p := range prices {
		out[i] = domain.CompetitorPrice{MonthlyPriceMinor: p}
	}
	return out
}

func TestComputePosition_NoCompetitorsIsOnly(t *testing.T) {
	position := ComputePosition(39900, nil)

	assert.Equal(t, domain.MarketPositionOnly, position.Position)
	assert.Equal(t, 0, position.CompetitorCount)
	assert.Equal(t, 0, position.Percentile)
}

func TestComputePosition_CheapestIsPercentileZero(t *testing.T) {
	position := ComputePosition(30000, competitorPrices(35000, 40000, 45000))

	assert.Equal(t, 0, position.Percentile)
	assert.Equal(t, domain.MarketPositionLowest, position.Position)
	assert.Equal(t, 3, position.CompetitorCount)
}

func TestComputePosition_Percentile(t *testing.T) {
	// 2 of 4 competitors are strictly cheaper: percentile 50, average band.
	position := ComputePosition(40000, competitorPrices(35000, 38000, 42000, 45000))

	assert.Equal(t, 50, position.Percentile)
	assert.Equal(t, domain.MarketPositionAverage, position.Position)
	assert.Equal(t, int64(35000), position.CheapestMinor)
	assert.Equal(t, int64(45000), position.DearestMinor)
	assert.Equal(t, int64(40000), position.AverageMinor)
	assert.Equal(t, 0, position.PriceDeltaPercent)
}

func TestComputePosition_EqualPricesAreNotCheaper(t *testing.T) {
	// Ties do not count as strictly cheaper.
	position := ComputePosition(40000, competitorPrices(40000, 40000))

	assert.Equal(t, 0, position.Percentile)
	assert.Equal(t, domain.MarketPositionLowest, position.Position)
}

func TestComputePosition_DearestIsHighest(t *testing.T) {
	position := ComputePosition(50000, competitorPrices(30000, 32000, 34000))

	assert.Equal(t, 100, position.Percentile)
	assert.Equal(t, domain.MarketPositionHighest, position.Position)
	// Average is 32000; our price is 56% above it.
	assert.Equal(t, 56, position.PriceDeltaPercent)
}

func TestComputePosition_BandBoundaries(t *testing.T) {
	tests := []struct {
		percentile int
		expected   domain.MarketPositionLabel
	}{
		{percentile: 0, expected: domain.MarketPositionLowest},
		{percentile: 10, expected: domain.MarketPositionLowest},
		{percentile: 11, expected: domain.MarketPositionBelowAvg},
		{percentile: 35, expected: domain.MarketPositionBelowAvg},
		{percentile: 36, expected: domain.MarketPositionAverage},
		{percentile: 65, expected: domain.MarketPositionAverage},
		{percentile: 66, expected: domain.MarketPositionAboveAvg},
		{percentile: 90, expected: domain.MarketPositionAboveAvg},
		{percentile: 91, expected: domain.MarketPositionHighest},
		{percentile: 100, expected: domain.MarketPositionHighest},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, classifyPercentile(tc.percentile), "percentile %d", tc.percentile)
	}
}

func TestMarketPosition_FiltersByTermAndMileage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	term36, term60 := 36, 60
	mileage10k, mileage30k := 10000, 30000

	mockRepo := mocks.NewMockCompetitorPriceRepository(ctrl)
	mockRepo.EXPECT().
		ListByVehicle("veh-1").
		Return([]domain.CompetitorPrice{
			{MonthlyPriceMinor: 35000, Term: &term36, Mileage: &mileage10k},
			{MonthlyPriceMinor: 20000, Term: &term60, Mileage: &mileage10k},  // term outside tolerance
			{MonthlyPriceMinor: 21000, Term: &term36, Mileage: &mileage30k},  // mileage outside tolerance
			{MonthlyPriceMinor: 36000},                                      // no term or mileage: kept
		}, nil)

	service := NewService(mockRepo)

	term := 36
	mileage := 10000
	position, err := service.MarketPosition("veh-1", 34000, &ComparisonFilter{
		Term:             &term,
		TermTolerance:    6,
		Mileage:          &mileage,
		MileageTolerance: 5000,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, position.CompetitorCount)
	assert.Equal(t, 0, position.Percentile)
}
