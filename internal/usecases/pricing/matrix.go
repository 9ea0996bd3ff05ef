// Package pricing builds the dense funder price matrix for a vehicle and
// reduces it to its deliverable best prices.
package pricing

import (
	"math"
	"sort"

	"github.com/quotelane/lease-pricing-api/internal/domain"
)

// MatrixOptions controls matrix construction. StandardInitialMonths is the
// fixed set of initial-payment columns crossed with every observed term.
type MatrixOptions struct {
	StandardInitialMonths []int
}

// BuildMatrix turns the raw quote rows for one (vehicle, mileage, maintenance)
// scope into a dense provider × payment-profile grid. Observed prices seed the
// grid; for each (provider, term) with at least one observed price the
// remaining profiles of that term are estimated from the anchor so total cash
// outlay is conserved. A (provider, term) with no observed price stays empty:
// rentals do not move linearly across terms, so there is no extrapolation.
//
// Maintenance-inclusive matrices are never estimated; maintenance pricing does
// not follow the payment-reshuffle relationship and must come from real quotes.
//
// The input order of quotes is irrelevant: providers, terms and profiles are
// sorted before the grid is laid out.
func BuildMatrix(quotes []domain.QuoteCell, opts MatrixOptions) *domain.RateMatrix {
	if len(quotes) == 0 {
		return &domain.RateMatrix{
			Providers:   []string{},
			Profiles:    []domain.PaymentProfile{},
			ValuesMinor: [][]int64{},
			Estimated:   [][]bool{},
		}
	}

	providers := collectProviders(quotes)
	profiles := collectProfiles(quotes, opts.StandardInitialMonths)

	providerIdx := make(map[string]int, len(providers))
	for i, p := range providers {
		providerIdx[p] = i
	}
	profileIdx := make(map[domain.PaymentProfile]int, len(profiles))
	for j, p := range profiles {
		profileIdx[p] = j
	}

	values := make([][]int64, len(providers))
	estimated := make([][]bool, len(providers))
	for i := range providers {
		values[i] = make([]int64, len(profiles))
		estimated[i] = make([]bool, len(profiles))
	}

	includesMaintenance := quotes[0].IncludesMaintenance

	// Seed observed prices.
	for _, q := range quotes {
		i := providerIdx[q.Provider]
		j, ok := profileIdx[domain.PaymentProfile{Term: q.Term, InitialMonths: q.InitialMonths}]
		if !ok {
			continue
		}
		values[i][j] = q.MonthlyRentalMinor
	}

	if !includesMaintenance {
		fillEstimates(providers, profiles, values, estimated)
	}

	return &domain.RateMatrix{
		Providers:   providers,
		Profiles:    profiles,
		ValuesMinor: values,
		Estimated:   estimated,
	}
}

// fillEstimates estimates every empty cell of a (provider, term) that has at
// least one observed price. The anchor is the observed profile with the
// smallest initial payment, which keeps the result deterministic when a funder
// quoted more than one profile for the term.
func fillEstimates(
	providers []string,
	profiles []domain.PaymentProfile,
	values [][]int64,
	estimated [][]bool,
) {
	for i := range providers {
		anchors := make(map[int]int) // term -> anchor profile index
		for j, p := range profiles {
			if values[i][j] == 0 {
				continue
			}
			if a, ok := anchors[p.Term]; !ok || p.InitialMonths < profiles[a].InitialMonths {
				anchors[p.Term] = j
			}
		}

		for j, p := range profiles {
			if values[i][j] != 0 {
				continue
			}
			a, ok := anchors[p.Term]
			if !ok {
				continue
			}
			values[i][j] = EstimateRental(values[i][a], profiles[a], p)
			estimated[i][j] = true
		}
	}
}

// EstimateRental reshuffles an observed rental from one payment profile to
// another of the same term, conserving the approximate total cash outlay:
// round(anchor × anchorTotalPayments / targetTotalPayments).
func EstimateRental(anchorMinor int64, anchor, target domain.PaymentProfile) int64 {
	return int64(math.Round(float64(anchorMinor) * float64(anchor.TotalPayments()) / float64(target.TotalPayments())))
}

func collectProviders(quotes []domain.QuoteCell) []string {
	seen := make(map[string]bool)
	providers := make([]string, 0)
	for _, q := range quotes {
		if !seen[q.Provider] {
			seen[q.Provider] = true
			providers = append(providers, q.Provider)
		}
	}
	sort.Strings(providers)
	return providers
}

// collectProfiles crosses every observed term with the standard initial-payment
// set, unioned with any non-standard initial payment actually quoted so no
// observed cell is dropped.
func collectProfiles(quotes []domain.QuoteCell, standardInitialMonths []int) []domain.PaymentProfile {
	terms := make(map[int]bool)
	initials := make(map[int]bool)
	for _, m := range standardInitialMonths {
		initials[m] = true
	}
	for _, q := range quotes {
		terms[q.Term] = true
		initials[q.InitialMonths] = true
	}

	sortedTerms := make([]int, 0, len(terms))
	for t := range terms {
		sortedTerms = append(sortedTerms, t)
	}
	sort.Ints(sortedTerms)

	sortedInitials := make([]int, 0, len(initials))
	for m := range initials {
		sortedInitials = append(sortedInitials, m)
	}
	sort.Ints(sortedInitials)

	profiles := make([]domain.PaymentProfile, 0, len(sortedTerms)*len(sortedInitials))
	for _, t := range sortedTerms {
		for _, m := range sortedInitials {
			profiles = append(profiles, domain.PaymentProfile{Term: t, InitialMonths: m})
		}
	}
	return profiles
}
