// Package comparing classifies our final price against scraped competitor
// snapshots for the same vehicle.
package comparing

import (
	"math"

	"github.com/quotelane/lease-pricing-api/infrastructure/repository"
	"github.com/quotelane/lease-pricing-api/internal/domain"
)

// Percentile ceilings for the five comparative buckets. Like the scoring
// breakpoints these are tuned constants, kept in one table.
var positionBands = []struct {
	maxPercentile int
	label         domain.MarketPositionLabel
}{
	{maxPercentile: 10, label: domain.MarketPositionLowest},
	{maxPercentile: 35, label: domain.MarketPositionBelowAvg},
	{maxPercentile: 65, label: domain.MarketPositionAverage},
	{maxPercentile: 90, label: domain.MarketPositionAboveAvg},
	{maxPercentile: 100, label: domain.MarketPositionHighest},
}

// ComparisonFilter optionally narrows competitor snapshots to those near our
// quote's term and mileage.
type ComparisonFilter struct {
	Term             *int
	TermTolerance    int
	Mileage          *int
	MileageTolerance int
}

type Comparator interface {
	MarketPosition(vehicleID string, ourPriceMinor int64, filter *ComparisonFilter) (*domain.MarketPosition, error)
}

type Service struct {
	competitorRepo repository.CompetitorPriceRepository
}

func NewService(competitorRepo repository.CompetitorPriceRepository) Comparator {
	return &Service{
		competitorRepo: competitorRepo,
	}
}

func (s *Service) MarketPosition(
	vehicleID string,
	ourPriceMinor int64,
	filter *ComparisonFilter,
) (*domain.MarketPosition, error) {
	snapshots, err := s.competitorRepo.ListByVehicle(vehicleID)
	if err != nil {
		return nil, err
	}

	return ComputePosition(ourPriceMinor, filterSnapshots(snapshots, filter)), nil
}

// ComputePosition derives the market classification from competitor prices.
// With zero competitors the result is the "only" sentinel, never a
// comparative label. Otherwise the percentile is the share of competitors
// strictly cheaper than our price (0 = we are the cheapest), classified into
// five fixed bands, with the delta measured against the competitor average.
func ComputePosition(ourPriceMinor int64, competitors []domain.CompetitorPrice) *domain.MarketPosition {
	if len(competitors) == 0 {
		return &domain.MarketPosition{
			Position:        domain.MarketPositionOnly,
			CompetitorCount: 0,
		}
	}

	var sum, cheapest, dearest int64
	cheaperCount := 0
	for i, c := range competitors {
		price := c.MonthlyPriceMinor
		sum += price
		if i == 0 || price < cheapest {
			cheapest = price
		}
		if price > dearest {
			dearest = price
		}
		if price < ourPriceMinor {
			cheaperCount++
		}
	}

	avg := float64(sum) / float64(len(competitors))
	percentile := int(math.Round(float64(cheaperCount) / float64(len(competitors)) * 100))
	delta := int(math.Round((float64(ourPriceMinor) - avg) / avg * 100))

	return &domain.MarketPosition{
		Position:          classifyPercentile(percentile),
		Percentile:        percentile,
		PriceDeltaPercent: delta,
		CompetitorCount:   len(competitors),
		CheapestMinor:     cheapest,
		AverageMinor:      int64(math.Round(avg)),
		DearestMinor:      dearest,
	}
}

func classifyPercentile(percentile int) domain.MarketPositionLabel {
	for _, band := range positionBands {
		if percentile <= band.maxPercentile {
			return band.label
		}
	}
	return domain.MarketPositionHighest
}

func filterSnapshots(snapshots []domain.CompetitorPrice, filter *ComparisonFilter) []domain.CompetitorPrice {
	if filter == nil {
		return snapshots
	}

	filtered := make([]domain.CompetitorPrice, 0, len(snapshots))
	for _, s := range snapshots {
		if filter.Term != nil && s.Term != nil {
			if abs(*s.Term-*filter.Term) > filter.TermTolerance {
				continue
			}
		}
		if filter.Mileage != nil && s.Mileage != nil {
			if abs(*s.Mileage-*filter.Mileage) > filter.MileageTolerance {
				continue
			}
		}
		filtered = append(filtered, s)
	}
	return filtered
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
