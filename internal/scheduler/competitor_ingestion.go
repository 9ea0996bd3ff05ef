package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/quotelane/lease-pricing-api/infrastructure/repository"
	"github.com/quotelane/lease-pricing-api/infrastructure/scraper"
	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/domain"
	"github.com/quotelane/lease-pricing-api/internal/usecases/comparing"
	"github.com/quotelane/lease-pricing-api/pkg/utils"
)

// CompetitorIngestionConfig holds the scheduling knobs for the competitor
// price sync.
type CompetitorIngestionConfig struct {
	CronSchedule         string
	SourceTimeoutSeconds int
	RetentionDays        int
	SyncEnabled          bool
}

// CompetitorIngestionService schedules and runs the competitor price sync.
// Each source runs in its own goroutine and fails independently: one feed
// being down never blocks the others from being ingested.
type CompetitorIngestionService struct {
	scheduler           *gocron.Scheduler
	config              CompetitorIngestionConfig
	sources             []scraper.Source
	vehicleRepo         repository.VehicleRepository
	competitorRepo      repository.CompetitorPriceRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncResults     []domain.SourceResult
}

func NewCompetitorIngestionService(
	sources []scraper.Source,
	vehicleRepo repository.VehicleRepository,
	competitorRepo repository.CompetitorPriceRepository,
	appConfig *config.Config,
) *CompetitorIngestionService {
	ingestionConfig := CompetitorIngestionConfig{
		CronSchedule:         appConfig.CompetitorSync.CronSchedule,
		SourceTimeoutSeconds: appConfig.CompetitorSync.SourceTimeoutSeconds,
		RetentionDays:        appConfig.CompetitorSync.RetentionDays,
		SyncEnabled:          appConfig.CompetitorSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":          ingestionConfig.CronSchedule,
		"source_timeout_seconds": ingestionConfig.SourceTimeoutSeconds,
		"retention_days":         ingestionConfig.RetentionDays,
		"sync_enabled":           ingestionConfig.SyncEnabled,
		"sources":                len(sources),
	}).Info("Competitor ingestion scheduler configuration loaded")

	return &CompetitorIngestionService{
		scheduler:      scheduler,
		config:         ingestionConfig,
		sources:        sources,
		vehicleRepo:    vehicleRepo,
		competitorRepo: competitorRepo,
		syncRunning:    false,
	}
}

// Start schedules the sync and runs the scheduler until the context is
// cancelled.
func (s *CompetitorIngestionService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Competitor ingestion disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting competitor ingestion scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runIngestion()
	})
	if err != nil {
		return fmt.Errorf("error scheduling competitor ingestion: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping competitor ingestion scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// runIngestion runs one full sync cycle: fetch every source concurrently,
// match listings to the vehicle catalogue, persist row by row and prune
// snapshots past the retention window.
func (s *CompetitorIngestionService) runIngestion() {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Competitor ingestion already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("sources", len(s.sources)).Info("Starting competitor ingestion")

	vehicles, err := s.vehicleRepo.ListVehicles()
	if err != nil {
		logrus.WithError(err).Error("Error loading vehicle catalogue for competitor ingestion")
		return
	}

	results := s.IngestAll(context.Background(), vehicles)

	s.syncMutex.Lock()
	s.lastSyncResults = results
	s.syncMutex.Unlock()

	s.pruneOldSnapshots()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"sources":  len(results),
	}).Info("Competitor ingestion completed")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// IngestAll fetches and persists every source concurrently and returns one
// result per source. The per-source order of the results follows the
// configured source order regardless of completion order.
func (s *CompetitorIngestionService) IngestAll(ctx context.Context, vehicles []*domain.Vehicle) []domain.SourceResult {
	snapshotDate := time.Now().Truncate(24 * time.Hour)

	resultCh := make(chan domain.SourceResult, len(s.sources))
	var wg sync.WaitGroup

	for _, source := range s.sources {
		wg.Add(1)

		go func(src scraper.Source) {
			defer wg.Done()
			resultCh <- s.ingestSource(ctx, src, vehicles, snapshotDate)
		}(source)
	}

	wg.Wait()
	close(resultCh)

	bySource := make(map[string]domain.SourceResult, len(s.sources))
	for result := range resultCh {
		bySource[result.Source] = result
	}

	results := make([]domain.SourceResult, 0, len(s.sources))
	for _, source := range s.sources {
		results = append(results, bySource[source.Name()])
	}

	return results
}

// ingestSource runs one source end to end. A fetch failure marks the whole
// source failed with zero rows; row-level failures (unmatched vehicle,
// missing fields, insert error) skip the row and keep going.
func (s *CompetitorIngestionService) ingestSource(
	ctx context.Context,
	source scraper.Source,
	vehicles []*domain.Vehicle,
	snapshotDate time.Time,
) domain.SourceResult {
	result := domain.SourceResult{Source: source.Name()}

	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(s.config.SourceTimeoutSeconds)*time.Second)
	defer cancel()

	listings, err := source.FetchListings(fetchCtx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"source": source.Name(),
			"error":  err.Error(),
		}).Error("Error fetching competitor listings")
		result.Error = err.Error()
		return result
	}

	logrus.WithFields(logrus.Fields{
		"source":   source.Name(),
		"listings": len(listings),
	}).Info("Competitor listings fetched")

	for _, listing := range listings {
		if listing.Manufacturer == "" || listing.MonthlyPriceMinor <= 0 {
			continue
		}

		vehicle := comparing.MatchVehicle(vehicles, listing.Manufacturer, listing.Model, listing.Variant)
		if vehicle == nil {
			logrus.WithFields(logrus.Fields{
				"source":       source.Name(),
				"manufacturer": listing.Manufacturer,
				"model":        listing.Model,
			}).Debug("Competitor listing did not match any vehicle")
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Error("Error generating competitor price ID")
			continue
		}

		price := &domain.CompetitorPrice{
			ID:                id,
			VehicleID:         vehicle.ID,
			SourceName:        source.Name(),
			MonthlyPriceMinor: listing.MonthlyPriceMinor,
			Term:              listing.Term,
			Mileage:           listing.Mileage,
			URL:               listing.URL,
			SnapshotDate:      snapshotDate,
		}

		if err := s.competitorRepo.SaveSnapshot(price); err != nil {
			logrus.WithFields(logrus.Fields{
				"source":     source.Name(),
				"vehicle_id": vehicle.ID,
				"error":      err.Error(),
			}).Error("Error saving competitor price snapshot")
			continue
		}

		result.RowCount++
	}

	logrus.WithFields(logrus.Fields{
		"source":    source.Name(),
		"persisted": result.RowCount,
	}).Info("Competitor source ingestion finished")

	return result
}

func (s *CompetitorIngestionService) pruneOldSnapshots() {
	if s.config.RetentionDays <= 0 {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)
	deleted, err := s.competitorRepo.DeleteOlderThan(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Error pruning old competitor snapshots")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted": deleted,
			"cutoff":  cutoff.Format(time.DateOnly),
		}).Info("Old competitor snapshots pruned")
	}
}

// TriggerManualSync starts a sync outside the cron schedule.
func (s *CompetitorIngestionService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Competitor ingestion already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual competitor ingestion")
	go s.runIngestion()
}

// GetStatus reports the scheduler state for the admin status endpoint.
func (s *CompetitorIngestionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"source_timeout_seconds": s.config.SourceTimeoutSeconds,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_results":      s.lastSyncResults,
	}
}
