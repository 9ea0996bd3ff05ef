// Package scoring rates a final deliverable price for comparative merit.
package scoring

import (
	"strings"

	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/domain"
	"github.com/quotelane/lease-pricing-api/pkg/utils"
)

type Scorer interface {
	Score(monthlyPriceMinor int64, vehicle *domain.Vehicle, profile domain.PaymentProfile) domain.ScoreBreakdown
	// ReferenceProfile is the comparison profile used when the caller does not
	// name one: the configured reference term with a single upfront payment.
	ReferenceProfile() domain.PaymentProfile
	TermsHolderOpportunity(providerOtrMinor, termsHolderOtrMinor int64) *domain.TermsHolderOpportunity
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Scorer {
	return &Service{cfg: cfg}
}

func (s *Service) ReferenceProfile() domain.PaymentProfile {
	return domain.PaymentProfile{
		Term:          s.cfg.Pricing.ReferenceTerm,
		InitialMonths: 1,
	}
}

// Score builds the explainable 0-100 deal score for a final monthly price
// against the vehicle's list price. The cost ratio is the total contract
// outlay over the list price; the value score is an inverse breakpoint
// mapping of that ratio, and the three adjustments are small signed nudges
// for efficiency, absolute affordability and brand tier.
func (s *Service) Score(
	monthlyPriceMinor int64,
	vehicle *domain.Vehicle,
	profile domain.PaymentProfile,
) domain.ScoreBreakdown {
	totalPayments := profile.TotalPayments()

	breakdown := domain.ScoreBreakdown{
		TotalPayments: totalPayments,
	}

	if vehicle == nil || vehicle.ListPriceMinor <= 0 || monthlyPriceMinor <= 0 {
		breakdown.Label = LabelForScore(0)
		return breakdown
	}

	costRatio := float64(monthlyPriceMinor) * float64(totalPayments) / float64(vehicle.ListPriceMinor)
	breakdown.CostRatio = utils.RoundWithTwoDecimalPlace(costRatio)
	breakdown.ValueScore = valueScoreForRatio(costRatio)
	breakdown.EfficiencyBonus = efficiencyBonus(vehicle)
	breakdown.AffordabilityMod = affordabilityMod(monthlyPriceMinor)
	breakdown.BrandBonus = brandBonus(vehicle.Manufacturer)

	breakdown.FinalScore = clampScore(
		breakdown.ValueScore + breakdown.EfficiencyBonus + breakdown.AffordabilityMod + breakdown.BrandBonus,
	)
	breakdown.Label = LabelForScore(breakdown.FinalScore)

	return breakdown
}

// TermsHolderOpportunity computes the saving from ordering through a terms
// holder instead of the quoting funder. Only a positive saving is surfaced;
// anything else returns nil.
func (s *Service) TermsHolderOpportunity(providerOtrMinor, termsHolderOtrMinor int64) *domain.TermsHolderOpportunity {
	if providerOtrMinor <= 0 || termsHolderOtrMinor <= 0 {
		return nil
	}

	savings := providerOtrMinor - termsHolderOtrMinor
	if savings <= 0 {
		return nil
	}

	return &domain.TermsHolderOpportunity{
		ProviderOtrMinor:    providerOtrMinor,
		TermsHolderOtrMinor: termsHolderOtrMinor,
		SavingsMinor:        savings,
		SavingsPercent:      utils.RoundWithTwoDecimalPlace(float64(savings) / float64(providerOtrMinor) * 100),
	}
}

func efficiencyBonus(vehicle *domain.Vehicle) int {
	bonus := fuelTypeBonus[vehicle.FuelType]

	if vehicle.CO2GramsPerKM > 0 {
		if vehicle.CO2GramsPerKM <= 50 {
			bonus += 2
		} else if vehicle.CO2GramsPerKM >= 200 {
			bonus -= 2
		}
	}

	return bonus
}

// affordabilityMod nudges the score by absolute monthly price band.
func affordabilityMod(monthlyPriceMinor int64) int {
	switch {
	case monthlyPriceMinor < 20000:
		return 5
	case monthlyPriceMinor < 35000:
		return 2
	case monthlyPriceMinor <= 60000:
		return 0
	case monthlyPriceMinor <= 90000:
		return -3
	default:
		return -6
	}
}

func brandBonus(manufacturer string) int {
	brand := strings.ToLower(strings.TrimSpace(manufacturer))
	if premiumBrands[brand] {
		return 3
	}
	if budgetBrands[brand] {
		return -2
	}
	return 0
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
