package domain

// ScoreLabel buckets a 0-100 deal score for display. The thresholds live in
// the scoring package so score and percentile labelling share one table.
type ScoreLabel string

const (
	ScoreLabelExceptional ScoreLabel = "exceptional"
	ScoreLabelGreat       ScoreLabel = "great"
	ScoreLabelGood        ScoreLabel = "good"
	ScoreLabelFair        ScoreLabel = "fair"
	ScoreLabelAverage     ScoreLabel = "average"
	ScoreLabelPoor        ScoreLabel = "poor"
)

// ScoreBreakdown explains how a deal score was assembled. FinalScore is the
// clamped sum of the value score and the three signed adjustments.
type ScoreBreakdown struct {
	ValueScore       int        `json:"valueScore"`
	EfficiencyBonus  int        `json:"efficiencyBonus"`
	AffordabilityMod int        `json:"affordabilityMod"`
	BrandBonus       int        `json:"brandBonus"`
	CostRatio        float64    `json:"costRatio"`
	TotalPayments    int        `json:"totalPayments"`
	FinalScore       int        `json:"finalScore"`
	Label            ScoreLabel `json:"label"`
}

// TermsHolderOpportunity is the saving available by ordering the same vehicle
// through a terms holder's channel instead of the quoting funder. Only
// surfaced when the saving is positive.
type TermsHolderOpportunity struct {
	ProviderOtrMinor    int64   `json:"providerOtrMinor"`
	TermsHolderOtrMinor int64   `json:"termsHolderOtrMinor"`
	SavingsMinor        int64   `json:"savingsMinor"`
	SavingsPercent      float64 `json:"savingsPercent"`
}
