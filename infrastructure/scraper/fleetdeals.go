package scraper

import (
	"context"
	"time"

	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

// FleetDealsClient reads the FleetDeals listing export. The feed prices in
// pence and nests the vehicle description.
type FleetDealsClient struct {
	fetcher *httpFetcher
	url     string
}

type fleetDealsResponse struct {
	Listings []fleetDealsListing `json:"listings"`
}

type fleetDealsListing struct {
	Vehicle struct {
		Manufacturer string  `json:"manufacturer"`
		Range        string  `json:"range"`
		Trim         *string `json:"trim"`
	} `json:"vehicle"`
	PricePence  int64   `json:"price_pence"`
	TermMonths  *int    `json:"term_months"`
	MilesPA     *int    `json:"miles_pa"`
	Link        *string `json:"link"`
	Image       *string `json:"image"`
	Funding     *string `json:"funding"`
	IncludesVAT *bool   `json:"includes_vat"`
}

func NewFleetDealsClient(cfg *config.Config) *FleetDealsClient {
	return &FleetDealsClient{
		fetcher: newHTTPFetcher(time.Duration(cfg.CompetitorSync.SourceTimeoutSeconds) * time.Second),
		url:     cfg.CompetitorSync.FleetDealsURL,
	}
}

func (c *FleetDealsClient) Name() string {
	return "fleetdeals"
}

func (c *FleetDealsClient) FetchListings(ctx context.Context) ([]domain.ScrapedListing, error) {
	var response fleetDealsResponse
	if err := c.fetcher.getJSON(ctx, c.url, &response); err != nil {
		return nil, err
	}

	listings := make([]domain.ScrapedListing, 0, len(response.Listings))
	for _, l := range response.Listings {
		listings = append(listings, domain.ScrapedListing{
			Manufacturer:      l.Vehicle.Manufacturer,
			Model:             l.Vehicle.Range,
			Variant:           l.Vehicle.Trim,
			MonthlyPriceMinor: l.PricePence,
			Term:              l.TermMonths,
			Mileage:           l.MilesPA,
			URL:               l.Link,
			ImageURL:          l.Image,
			LeaseType:         l.Funding,
			VATIncluded:       l.IncludesVAT,
		})
	}

	return listings, nil
}
