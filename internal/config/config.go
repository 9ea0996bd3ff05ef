package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Pricing        Pricing        `mapstructure:",squash"`
	CompetitorSync CompetitorSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Pricing carries the tunable pricing constants. The 5% significance
// threshold and the standard initial-payment set have no documented business
// derivation, so they are configuration rather than hard-wired rules.
type Pricing struct {
	StandardInitialMonths        []int   `mapstructure:"pricing_standard_initial_months"`
	SignificanceThresholdPercent float64 `mapstructure:"pricing_significance_threshold_percent"`
	ReferenceTerm                int     `mapstructure:"pricing_reference_term"`
	DefaultMileage               int     `mapstructure:"pricing_default_mileage"`
}

type CompetitorSync struct {
	CronSchedule         string `mapstructure:"competitor_sync_cron"`
	Enabled              bool   `mapstructure:"competitor_sync_enabled"`
	SourceTimeoutSeconds int    `mapstructure:"competitor_sync_source_timeout_seconds"`
	RetentionDays        int    `mapstructure:"competitor_sync_retention_days"`
	LeaseRadarURL        string `mapstructure:"competitor_sync_leaseradar_url"`
	FleetDealsURL        string `mapstructure:"competitor_sync_fleetdeals_url"`
	DriveAwayURL         string `mapstructure:"competitor_sync_driveaway_url"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pricing")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("PRICING_STANDARD_INITIAL_MONTHS", []int{1, 3, 6, 9, 12})
	viper.SetDefault("PRICING_SIGNIFICANCE_THRESHOLD_PERCENT", 5.0)
	viper.SetDefault("PRICING_REFERENCE_TERM", 36)
	viper.SetDefault("PRICING_DEFAULT_MILEAGE", 10000)

	viper.SetDefault("COMPETITOR_SYNC_CRON", "0 2 * * *") // every day at 2am
	viper.SetDefault("COMPETITOR_SYNC_ENABLED", false)
	viper.SetDefault("COMPETITOR_SYNC_SOURCE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("COMPETITOR_SYNC_RETENTION_DAYS", 90)
	viper.SetDefault("COMPETITOR_SYNC_LEASERADAR_URL", "https://feeds.leaseradar.co.uk/api/v2/deals")
	viper.SetDefault("COMPETITOR_SYNC_FLEETDEALS_URL", "https://www.fleetdeals.co.uk/export/listings.json")
	viper.SetDefault("COMPETITOR_SYNC_DRIVEAWAY_URL", "https://api.driveaway.co.uk/v1/offers")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file via godotenv, trying a few locations
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
