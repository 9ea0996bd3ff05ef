package scraper

import (
	"context"
	"time"

	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

// DriveAwayClient reads the DriveAway offers API.
type DriveAwayClient struct {
	fetcher *httpFetcher
	url     string
}

type driveAwayResponse struct {
	Offers []driveAwayOffer `json:"offers"`
}

type driveAwayOffer struct {
	Brand        string  `json:"brand"`
	ModelName    string  `json:"model_name"`
	Spec         *string `json:"spec"`
	PerMonth     float64 `json:"per_month"`
	Months       *int    `json:"months"`
	MileageLimit *int    `json:"mileage_limit"`
	OfferURL     *string `json:"offer_url"`
	Photo        *string `json:"photo"`
	Channel      *string `json:"channel"`
	InclVAT      *bool   `json:"incl_vat"`
}

func NewDriveAwayClient(cfg *config.Config) *DriveAwayClient {
	return &DriveAwayClient{
		fetcher: newHTTPFetcher(time.Duration(cfg.CompetitorSync.SourceTimeoutSeconds) * time.Second),
		url:     cfg.CompetitorSync.DriveAwayURL,
	}
}

func (c *DriveAwayClient) Name() string {
	return "driveaway"
}

func (c *DriveAwayClient) FetchListings(ctx context.Context) ([]domain.ScrapedListing, error) {
	var response driveAwayResponse
	if err := c.fetcher.getJSON(ctx, c.url, &response); err != nil {
		return nil, err
	}

	listings := make([]domain.ScrapedListing, 0, len(response.Offers))
	for _, offer := range response.Offers {
		listings = append(listings, domain.ScrapedListing{
			Manufacturer:      offer.Brand,
			Model:             offer.ModelName,
			Variant:           offer.Spec,
			MonthlyPriceMinor: minorFromPounds(offer.PerMonth),
			Term:              offer.Months,
			Mileage:           offer.MileageLimit,
			URL:               offer.OfferURL,
			ImageURL:          offer.Photo,
			LeaseType:         offer.Channel,
			VATIncluded:       offer.InclVAT,
		})
	}

	return listings, nil
}
