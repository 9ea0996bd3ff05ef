// Package scraper contains the HTTP clients for the competitor listing feeds.
// Each source is one independently failable unit: it fetches, parses and
// normalizes its feed into ScrapedListing rows and reports its own error.
package scraper

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/quotelane/lease-pricing-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Source is one competitor listing feed.
type Source interface {
	Name() string
	FetchListings(ctx context.Context) ([]domain.ScrapedListing, error)
}

// httpFetcher is the shared fetch helper for the JSON feed clients.
type httpFetcher struct {
	httpClient *http.Client
}

func newHTTPFetcher(timeout time.Duration) *httpFetcher {
	return &httpFetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (f *httpFetcher) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}

// minorFromPounds converts a pounds amount from a feed to minor units.
func minorFromPounds(pounds float64) int64 {
	return int64(math.Round(pounds * 100))
}
