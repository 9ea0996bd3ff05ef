package domain

import "time"

// CompetitorPrice is one scraped listing snapshot matched to a vehicle.
type CompetitorPrice struct {
	ID                string    `json:"id"`
	VehicleID         string    `json:"vehicle_id"`
	SourceName        string    `json:"source_name"`
	MonthlyPriceMinor int64     `json:"monthly_price_minor"`
	Term              *int      `json:"term,omitempty"`
	Mileage           *int      `json:"mileage,omitempty"`
	URL               *string   `json:"url,omitempty"`
	SnapshotDate      time.Time `json:"snapshot_date"`
}

// MarketPositionLabel classifies our price against competitor snapshots.
type MarketPositionLabel string

const (
	MarketPositionLowest   MarketPositionLabel = "lowest"
	MarketPositionBelowAvg MarketPositionLabel = "below-avg"
	MarketPositionAverage  MarketPositionLabel = "average"
	MarketPositionAboveAvg MarketPositionLabel = "above-avg"
	MarketPositionHighest  MarketPositionLabel = "highest"
	// MarketPositionOnly is the sentinel for zero competitors; it is never one
	// of the comparative labels.
	MarketPositionOnly MarketPositionLabel = "only"
)

// MarketPosition is derived per request and never persisted.
type MarketPosition struct {
	Position          MarketPositionLabel `json:"position"`
	Percentile        int                 `json:"percentile"`
	PriceDeltaPercent int                 `json:"priceDeltaPercent"`
	CompetitorCount   int                 `json:"competitorCount"`
	CheapestMinor     int64               `json:"cheapestMinor,omitempty"`
	AverageMinor      int64               `json:"averageMinor,omitempty"`
	DearestMinor      int64               `json:"dearestMinor,omitempty"`
}

// ScrapedListing is the normalized output of one scraping source, before
// vehicle matching and persistence. Manufacturer and MonthlyPriceMinor are
// required; rows missing either are rejected before persistence.
type ScrapedListing struct {
	Manufacturer      string  `json:"manufacturer"`
	Model             string  `json:"model"`
	Variant           *string `json:"variant,omitempty"`
	MonthlyPriceMinor int64   `json:"monthly_price_minor"`
	Term              *int    `json:"term,omitempty"`
	Mileage           *int    `json:"mileage,omitempty"`
	URL               *string `json:"url,omitempty"`
	ImageURL          *string `json:"image_url,omitempty"`
	LeaseType         *string `json:"lease_type,omitempty"`
	VATIncluded       *bool   `json:"vat_included,omitempty"`
}

// SourceResult reports one ingestion source's outcome. RowCount counts rows
// actually persisted, not rows fetched.
type SourceResult struct {
	Source   string `json:"source"`
	RowCount int    `json:"row_count"`
	Error    string `json:"error,omitempty"`
}
