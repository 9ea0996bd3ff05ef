package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quotelane/lease-pricing-api/infrastructure/database/postgres"
	"github.com/quotelane/lease-pricing-api/infrastructure/repository"
	"github.com/quotelane/lease-pricing-api/infrastructure/scraper"
	"github.com/quotelane/lease-pricing-api/internal/api"
	"github.com/quotelane/lease-pricing-api/internal/api/handler"
	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/scheduler"
	"github.com/quotelane/lease-pricing-api/internal/usecases/authenticating"
	"github.com/quotelane/lease-pricing-api/internal/usecases/comparing"
	"github.com/quotelane/lease-pricing-api/internal/usecases/overriding"
	"github.com/quotelane/lease-pricing-api/internal/usecases/pricing"
	"github.com/quotelane/lease-pricing-api/internal/usecases/scoring"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	vehicleRepo := repository.NewVehicleRepository(pgConn)
	rateRepo := repository.NewRateRepository(pgConn)
	overrideRepo := repository.NewPriceOverrideRepository(pgConn)
	competitorRepo := repository.NewCompetitorPriceRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	overrideService := overriding.NewService(overrideRepo)
	pricingService := pricing.NewService(cfg, rateRepo, overrideService)
	scoringService := scoring.NewService(cfg)
	comparator := comparing.NewService(competitorRepo)

	sources := []scraper.Source{
		scraper.NewLeaseRadarClient(cfg),
		scraper.NewFleetDealsClient(cfg),
		scraper.NewDriveAwayClient(cfg),
	}

	ingestionService := scheduler.NewCompetitorIngestionService(
		sources,
		vehicleRepo,
		competitorRepo,
		cfg,
	)

	if err := ingestionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the competitor ingestion scheduler")
	} else {
		logrus.Info("Competitor ingestion scheduler started")
	}

	vehicleServices := handler.VehicleServices{
		Config:         cfg,
		VehicleRepo:    vehicleRepo,
		PricingService: pricingService,
		ScoringService: scoringService,
		Comparator:     comparator,
	}

	server, err := api.New(
		cfg,
		vehicleServices,
		overrideService,
		authenticator,
		ingestionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and working directory
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens the database connection
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
