package domain

// RateMatrix is the dense provider × payment-profile grid for one vehicle,
// mileage band and maintenance selection. Values and the estimate flags are
// parallel 2D grids indexed by [provider][profile]; a zero value means the cell
// has no price at all (no quote and nothing to estimate from).
type RateMatrix struct {
	Providers []string         `json:"providers"`
	Profiles  []PaymentProfile `json:"term_profiles"`

	// ValuesMinor[i][j] is the monthly rental for Providers[i] at Profiles[j],
	// in minor units. Zero means absent.
	ValuesMinor [][]int64 `json:"matrix"`

	// Estimated[i][j] marks cells interpolated from an observed anchor rather
	// than quoted by the funder.
	Estimated [][]bool `json:"estimated"`
}

// Empty reports whether the matrix holds no cells at all (no quotes ingested).
func (m *RateMatrix) Empty() bool {
	return len(m.Providers) == 0 || len(m.Profiles) == 0
}

// Cell returns the price and estimate flag at (provider index, profile index).
// ok is false when the cell has no price.
func (m *RateMatrix) Cell(provider, profile int) (priceMinor int64, estimated bool, ok bool) {
	v := m.ValuesMinor[provider][profile]
	if v == 0 {
		return 0, false, false
	}
	return v, m.Estimated[provider][profile], true
}

// ProfileBest is the winning funder price for one payment-profile column.
type ProfileBest struct {
	Provider   string `json:"provider"`
	PriceMinor int64  `json:"price_minor"`
}

// BestSelection is the reduction of a dense matrix to its deliverable prices:
// per-column winners where the saving over the runner-up is significant, plus
// the single cheapest actual cell of the whole grid.
type BestSelection struct {
	// BestPrices holds a winner per profile key, only for columns where at
	// least two funders quoted and the saving cleared the significance
	// threshold.
	BestPrices map[string]ProfileBest `json:"best_prices"`

	// Overall is the minimum actual (never estimated) price across the matrix.
	Overall *MatrixBest `json:"overall_best"`
}

// MatrixBest identifies the overall cheapest actual cell.
type MatrixBest struct {
	Provider   string         `json:"provider"`
	Profile    PaymentProfile `json:"profile"`
	PriceMinor int64          `json:"price_minor"`
}
