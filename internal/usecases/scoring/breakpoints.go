package scoring

import "github.com/quotelane/lease-pricing-api/internal/domain"

// The breakpoints below are tuned constants with no documented business
// derivation; they are kept in one place so they can be revisited without
// touching the scoring flow.

// ratioBreakpoint maps a cost-ratio ceiling to a value score. Entries are
// ordered ascending; the first ceiling the ratio fits under wins. Lower ratio,
// higher score.
type ratioBreakpoint struct {
	maxRatio float64
	score    int
}

var valueScoreBreakpoints = []ratioBreakpoint{
	{maxRatio: 0.40, score: 100},
	{maxRatio: 0.45, score: 90},
	{maxRatio: 0.50, score: 80},
	{maxRatio: 0.55, score: 70},
	{maxRatio: 0.60, score: 60},
	{maxRatio: 0.65, score: 50},
	{maxRatio: 0.70, score: 40},
	{maxRatio: 0.80, score: 30},
	{maxRatio: 0.90, score: 20},
	{maxRatio: 1.00, score: 10},
}

// valueScoreForRatio maps a cost ratio onto the 0-100 scale.
func valueScoreForRatio(ratio float64) int {
	for _, bp := range valueScoreBreakpoints {
		if ratio <= bp.maxRatio {
			return bp.score
		}
	}
	return 0
}

// labelThreshold buckets a final score. Shared by the deal score and any
// percentile-style labelling so the two can never disagree on one number.
type labelThreshold struct {
	minScore int
	label    domain.ScoreLabel
}

var scoreLabels = []labelThreshold{
	{minScore: 90, label: domain.ScoreLabelExceptional},
	{minScore: 75, label: domain.ScoreLabelGreat},
	{minScore: 60, label: domain.ScoreLabelGood},
	{minScore: 45, label: domain.ScoreLabelFair},
	{minScore: 30, label: domain.ScoreLabelAverage},
}

// LabelForScore returns the display label for a 0-100 score.
func LabelForScore(score int) domain.ScoreLabel {
	for _, t := range scoreLabels {
		if score >= t.minScore {
			return t.label
		}
	}
	return domain.ScoreLabelPoor
}

// Fuel-type adjustments for the efficiency bonus.
var fuelTypeBonus = map[domain.FuelType]int{
	domain.FuelTypeElectric: 8,
	domain.FuelTypeHybrid:   4,
	domain.FuelTypePetrol:   0,
	domain.FuelTypeDiesel:   -2,
}

// Manufacturer tiers for the brand bonus, matched case-insensitively.
var (
	premiumBrands = map[string]bool{
		"audi":          true,
		"bmw":           true,
		"jaguar":        true,
		"land rover":    true,
		"lexus":         true,
		"mercedes-benz": true,
		"porsche":       true,
		"tesla":         true,
		"volvo":         true,
	}
	budgetBrands = map[string]bool{
		"dacia":     true,
		"fiat":      true,
		"mg":        true,
		"ssangyong": true,
	}
)
