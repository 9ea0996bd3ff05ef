package pricing

import (
	"github.com/sirupsen/logrus"

	"github.com/quotelane/lease-pricing-api/infrastructure/repository"
	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/domain"
	"github.com/quotelane/lease-pricing-api/internal/usecases/overriding"
)

// MatrixCellResponse is one cell of the presentation matrix. Price is nil when
// the cell has no quote and nothing to estimate from.
type MatrixCellResponse struct {
	PriceMinor *int64 `json:"price"`
	IsEstimate bool   `json:"isEstimate"`
}

// MatrixResponse is the stable matrix shape consumed by presentation.
type MatrixResponse struct {
	TermProfiles        []string                                  `json:"termProfiles"`
	Providers           []string                                  `json:"providers"`
	Matrix              map[string]map[string]*MatrixCellResponse `json:"matrix"`
	BestPrices          map[string]domain.ProfileBest             `json:"bestPrices"`
	OverallBestKey      string                                    `json:"overallBestKey"`
	OverallBestProvider string                                    `json:"overallBestProvider"`

	// FinalPriceMinor is the overall best after override resolution; nil when
	// the matrix is empty.
	FinalPriceMinor   *int64  `json:"finalPriceMinor"`
	AppliedOverrideID *string `json:"appliedOverrideId"`
	NoRatesAvailable  bool    `json:"noRatesAvailable"`
}

// RateExplorer builds the dense matrix for a vehicle scope and reduces it to
// the final displayable price.
type RateExplorer interface {
	ExploreRates(vehicleID string, mileage int, includesMaintenance bool, contractType domain.ContractType) (*MatrixResponse, error)
}

type Service struct {
	cfg             *config.Config
	rateRepo        repository.RateRepository
	overrideService overriding.OverrideService
}

func NewService(
	cfg *config.Config,
	rateRepo repository.RateRepository,
	overrideService overriding.OverrideService,
) RateExplorer {
	return &Service{
		cfg:             cfg,
		rateRepo:        rateRepo,
		overrideService: overrideService,
	}
}

func (s *Service) ExploreRates(
	vehicleID string,
	mileage int,
	includesMaintenance bool,
	contractType domain.ContractType,
) (*MatrixResponse, error) {
	quotes, err := s.rateRepo.ListQuotes(vehicleID, mileage, includesMaintenance, contractType)
	if err != nil {
		return nil, err
	}

	matrix := BuildMatrix(quotes, MatrixOptions{
		StandardInitialMonths: s.cfg.Pricing.StandardInitialMonths,
	})

	if matrix.Empty() {
		logrus.WithFields(logrus.Fields{
			"vehicle_id": vehicleID,
			"mileage":    mileage,
		}).Info("no rates available for vehicle scope")

		return &MatrixResponse{
			TermProfiles:     []string{},
			Providers:        []string{},
			Matrix:           map[string]map[string]*MatrixCellResponse{},
			BestPrices:       map[string]domain.ProfileBest{},
			NoRatesAvailable: true,
		}, nil
	}

	selection := SelectBestPrices(matrix, s.cfg.Pricing.SignificanceThresholdPercent)

	response := &MatrixResponse{
		TermProfiles: profileKeys(matrix.Profiles),
		Providers:    matrix.Providers,
		Matrix:       cellMap(matrix),
		BestPrices:   selection.BestPrices,
	}

	if selection.Overall != nil {
		response.OverallBestKey = selection.Overall.Profile.Key()
		response.OverallBestProvider = selection.Overall.Provider

		resolved, err := s.overrideService.Resolve(domain.ResolutionContext{
			VehicleID:    vehicleID,
			Provider:     selection.Overall.Provider,
			ContractType: contractType,
			Term:         selection.Overall.Profile.Term,
			Mileage:      mileage,
		}, selection.Overall.PriceMinor)
		if err != nil {
			return nil, err
		}

		final := resolved.PriceMinor
		response.FinalPriceMinor = &final
		response.AppliedOverrideID = resolved.AppliedOverrideID
	}

	return response, nil
}

func profileKeys(profiles []domain.PaymentProfile) []string {
	keys := make([]string, len(profiles))
	for i, p := range profiles {
		keys[i] = p.Key()
	}
	return keys
}

func cellMap(m *domain.RateMatrix) map[string]map[string]*MatrixCellResponse {
	out := make(map[string]map[string]*MatrixCellResponse, len(m.Providers))
	for i, provider := range m.Providers {
		row := make(map[string]*MatrixCellResponse, len(m.Profiles))
		for j, profile := range m.Profiles {
			price, isEstimate, ok := m.Cell(i, j)
			cell := &MatrixCellResponse{}
			if ok {
				p := price
				cell.PriceMinor = &p
				cell.IsEstimate = isEstimate
			}
			row[profile.Key()] = cell
		}
		out[provider] = row
	}
	return out
}
