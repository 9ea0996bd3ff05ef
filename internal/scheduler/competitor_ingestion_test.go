package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/quotelane/lease-pricing-api/infrastructure/repository/mocks"
	"github.com/quotelane/lease-pricing-api/infrastructure/scraper"
	scrapermocks "github.com/quotelane/lease-pricing-api/infrastructure/scraper/mocks"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

func testCatalogue() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: "veh-1", Manufacturer: "Volkswagen", Model: "Golf", Variant: "Life TSI"},
		{ID: "veh-2", Manufacturer: "Kia", Model: "Niro", Variant: "2 HEV"},
	}
}

func newTestIngestionService(
	sources []scraper.Source,
	competitorRepo *repomocks.MockCompetitorPriceRepository,
) *CompetitorIngestionService {
	return &CompetitorIngestionService{
		config: CompetitorIngestionConfig{
			SourceTimeoutSeconds: 5,
			SyncEnabled:          true,
		},
		sources:        sources,
		competitorRepo: competitorRepo,
	}
}

func TestIngestAll_SourceFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	healthy := scrapermocks.NewMockSource(ctrl)
	healthy.EXPECT().Name().Return("leaseradar").AnyTimes()
	healthy.EXPECT().
		FetchListings(gomock.Any()).
		Return([]domain.ScrapedListing{
			{Manufacturer: "Volkswagen", Model: "Golf", MonthlyPriceMinor: 29900},
		}, nil)

	broken := scrapermocks.NewMockSource(ctrl)
	broken.EXPECT().Name().Return("fleetdeals").AnyTimes()
	broken.EXPECT().
		FetchListings(gomock.Any()).
		Return(nil, errors.New("feed unavailable"))

	mockRepo := repomocks.NewMockCompetitorPriceRepository(ctrl)
	mockRepo.EXPECT().SaveSnapshot(gomock.Any()).Return(nil)

	service := newTestIngestionService([]scraper.Source{healthy, broken}, mockRepo)

	catalogue := []*domain.Vehicle{
		{ID: "veh-1", Manufacturer: "Volkswagen", Model: "Golf"},
	}
	results := service.IngestAll(context.Background(), catalogue)

	assert.Len(t, results, 2)

	assert.Equal(t, "leaseradar", results[0].Source)
	assert.Equal(t, 1, results[0].RowCount)
	assert.Empty(t, results[0].Error)

	assert.Equal(t, "fleetdeals", results[1].Source)
	assert.Equal(t, 0, results[1].RowCount)
	assert.Contains(t, results[1].Error, "feed unavailable")
}

func TestIngestAll_RowCountIsPersistedRowsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := scrapermocks.NewMockSource(ctrl)
	source.EXPECT().Name().Return("leaseradar").AnyTimes()
	source.EXPECT().
		FetchListings(gomock.Any()).
		Return([]domain.ScrapedListing{
			{Manufacturer: "Volkswagen", Model: "Golf", MonthlyPriceMinor: 29900},
			{Manufacturer: "Kia", Model: "Niro", MonthlyPriceMinor: 31000},
			{Manufacturer: "", Model: "Golf", MonthlyPriceMinor: 25000},      // missing manufacturer
			{Manufacturer: "Cupra", Model: "Born", MonthlyPriceMinor: 0},     // missing price
			{Manufacturer: "Cupra", Model: "Born", MonthlyPriceMinor: 28000}, // no catalogue match
		}, nil)

	mockRepo := repomocks.NewMockCompetitorPriceRepository(ctrl)
	saved := make([]string, 0, 2)
	mockRepo.EXPECT().
		SaveSnapshot(gomock.Any()).
		DoAndReturn(func(price *domain.CompetitorPrice) error {
			assert.Equal(t, "leaseradar", price.SourceName)
			assert.NotEmpty(t, price.ID)
			saved = append(saved, price.VehicleID)
			return nil
		}).
		Times(2)

	service := newTestIngestionService([]scraper.Source{source}, mockRepo)

	results := service.IngestAll(context.Background(), testCatalogue())

	assert.Len(t, results, 1)
	assert.Equal(t, 2, results[0].RowCount)
	assert.Empty(t, results[0].Error)
	assert.ElementsMatch(t, []string{"veh-1", "veh-2"}, saved)
}

func TestGetStatus_SafeDuringRunningSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := scrapermocks.NewMockSource(ctrl)
	source.EXPECT().Name().Return("leaseradar").AnyTimes()
	source.EXPECT().
		FetchListings(gomock.Any()).
		DoAndReturn(func(context.Context) ([]domain.ScrapedListing, error) {
			time.Sleep(20 * time.Millisecond)
			return []domain.ScrapedListing{
				{Manufacturer: "Volkswagen", Model: "Golf", MonthlyPriceMinor: 29900},
			}, nil
		})

	vehicleRepo := repomocks.NewMockVehicleRepository(ctrl)
	vehicleRepo.EXPECT().ListVehicles().Return(testCatalogue(), nil)

	competitorRepo := repomocks.NewMockCompetitorPriceRepository(ctrl)
	competitorRepo.EXPECT().SaveSnapshot(gomock.Any()).Return(nil)

	service := newTestIngestionService([]scraper.Source{source}, competitorRepo)
	service.vehicleRepo = vehicleRepo

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.runIngestion()
	}()

	// GetStatus must be safe to call while a sync is writing its bookkeeping;
	// the race detector trips here if the writers skip the mutex.
	for {
		service.GetStatus()

		select {
		case <-done:
			status := service.GetStatus()

			results, ok := status["last_sync_results"].([]domain.SourceResult)
			assert.True(t, ok)
			assert.Len(t, results, 1)
			assert.Equal(t, 1, results[0].RowCount)
			assert.False(t, status["sync_running"].(bool))
			assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			return
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestIngestAll_SaveFailureSkipsRowAndKeepsGoing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := scrapermocks.NewMockSource(ctrl)
	source.EXPECT().Name().Return("driveaway").AnyTimes()
	source.EXPECT().
		FetchListings(gomock.Any()).
		Return([]domain.ScrapedListing{
			{Manufacturer: "Volkswagen", Model: "Golf", MonthlyPriceMinor: 29900},
			{Manufacturer: "Kia", Model: "Niro", MonthlyPriceMinor: 31000},
		}, nil)

	mockRepo := repomocks.NewMockCompetitorPriceRepository(ctrl)
	gomock.InOrder(
		mockRepo.EXPECT().SaveSnapshot(gomock.Any()).Return(errors.New("constraint violation")),
		mockRepo.EXPECT().SaveSnapshot(gomock.Any()).Return(nil),
	)

	service := newTestIngestionService([]scraper.Source{source}, mockRepo)

	results := service.IngestAll(context.Background(), testCatalogue())

	// A failed insert drops that row from the count but does not fail the
	// source.
	assert.Equal(t, 1, results[0].RowCount)
	assert.Empty(t, results[0].Error)
}
