package scraper

import (
	"context"
	"time"

	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

// LeaseRadarClient reads the LeaseRadar deal feed.
type LeaseRadarClient struct {
	fetcher *httpFetcher
	url     string
}

type leaseRadarResponse struct {
	Deals []leaseRadarDeal `json:"deals"`
}

type leaseRadarDeal struct {
	Make           string  `json:"make"`
	Model          string  `json:"model"`
	Derivative     *string `json:"derivative"`
	MonthlyPrice   float64 `json:"monthly_price"`
	ContractLength *int    `json:"contract_length"`
	AnnualMileage  *int    `json:"annual_mileage"`
	DealURL        *string `json:"deal_url"`
	ImageURL       *string `json:"image_url"`
	LeaseType      *string `json:"lease_type"`
	VATIncluded    *bool   `json:"vat_inc"`
}

func NewLeaseRadarClient(cfg *config.Config) *LeaseRadarClient {
	return &LeaseRadarClient{
		fetcher: newHTTPFetcher(time.Duration(cfg.CompetitorSync.SourceTimeoutSeconds) * time.Second),
		url:     cfg.CompetitorSync.LeaseRadarURL,
	}
}

func (c *LeaseRadarClient) Name() string {
	return "leaseradar"
}

func (c *LeaseRadarClient) FetchListings(ctx context.Context) ([]domain.ScrapedListing, error) {
	var response leaseRadarResponse
	if err := c.fetcher.getJSON(ctx, c.url, &response); err != nil {
		return nil, err
	}

	listings := make([]domain.ScrapedListing, 0, len(response.Deals))
	for _, deal := range response.Deals {
		listings = append(listings, domain.ScrapedListing{
			Manufacturer:      deal.Make,
			Model:             deal.Model,
			Variant:           deal.Derivative,
			MonthlyPriceMinor: minorFromPounds(deal.MonthlyPrice),
			Term:              deal.ContractLength,
			Mileage:           deal.AnnualMileage,
			URL:               deal.DealURL,
			ImageURL:          deal.ImageURL,
			LeaseType:         deal.LeaseType,
			VATIncluded:       deal.VATIncluded,
		})
	}

	return listings, nil
}
