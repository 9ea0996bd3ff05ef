package pricing

import (
	"sort"

	"github.com/quotelane/lease-pricing-api/internal/domain"
)

// SelectBestPrices reduces a dense matrix to its per-column winners and the
// overall cheapest actual cell. Estimated cells never compete: a comparison
// needs real quotes. A column needs at least two funders with actual prices
// before a winner can be marked, and the winner is only flagged when the
// saving over the runner-up clears thresholdPercent; smaller gaps are noise.
//
// The overall best is the minimum actual price anywhere in the grid,
// independent of the threshold rule.
func SelectBestPrices(m *domain.RateMatrix, thresholdPercent float64) domain.BestSelection {
	selection := domain.BestSelection{
		BestPrices: make(map[string]domain.ProfileBest),
	}

	if m.Empty() {
		return selection
	}

	type actualPrice struct {
		provider   string
		priceMinor int64
	}

	for j, profile := range m.Profiles {
		actuals := make([]actualPrice, 0, len(m.Providers))
		for i, provider := range m.Providers {
			price, isEstimate, ok := m.Cell(i, j)
			if !ok || isEstimate {
				continue
			}
			actuals = append(actuals, actualPrice{provider: provider, priceMinor: price})
		}

		if len(actuals) < 2 {
			continue
		}

		sort.Slice(actuals, func(a, b int) bool {
			if actuals[a].priceMinor != actuals[b].priceMinor {
				return actuals[a].priceMinor < actuals[b].priceMinor
			}
			return actuals[a].provider < actuals[b].provider
		})

		best, second := actuals[0], actuals[1]
		saving := float64(second.priceMinor-best.priceMinor) / float64(second.priceMinor) * 100
		if saving >= thresholdPercent {
			selection.BestPrices[profile.Key()] = domain.ProfileBest{
				Provider:   best.provider,
				PriceMinor: best.priceMinor,
			}
		}
	}

	for i, provider := range m.Providers {
		for j, profile := range m.Profiles {
			price, isEstimate, ok := m.Cell(i, j)
			if !ok || isEstimate {
				continue
			}
			if selection.Overall == nil || price < selection.Overall.PriceMinor {
				selection.Overall = &domain.MatrixBest{
					Provider:   provider,
					Profile:    profile,
					PriceMinor: price,
				}
			}
		}
	}

	return selection
}
