package overriding

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quotelane/lease-pricing-api/infrastructure/repository"
	"github.com/quotelane/lease-pricing-api/internal/domain"
	"github.com/quotelane/lease-pricing-api/pkg/utils"
)

// OverrideService is the admin surface for price overrides plus the resolver
// used by the pricing flow.
type OverrideService interface {
	CreateOverride(override *domain.PriceOverride) (*domain.PriceOverride, error)
	UpdateOverride(override *domain.PriceOverride) (*domain.PriceOverride, error)
	DeleteOverride(id string) error
	GetOverride(id string) (*domain.PriceOverride, error)
	ListOverrides() ([]domain.PriceOverride, error)

	// Resolve applies the winning override for the context to the computed
	// best price. It reads one snapshot of the override set per call, so a
	// concurrent admin edit can never produce a mixed resolution.
	Resolve(rctx domain.ResolutionContext, priceMinor int64) (domain.ResolvedPrice, error)
}

type Service struct {
	overrideRepo repository.PriceOverrideRepository
	now          func() time.Time
}

func NewService(overrideRepo repository.PriceOverrideRepository) OverrideService {
	return &Service{
		overrideRepo: overrideRepo,
		now:          time.Now,
	}
}

func (s *Service) CreateOverride(override *domain.PriceOverride) (*domain.PriceOverride, error) {
	if err := validateOverride(override); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	override.ID = id

	created, err := s.overrideRepo.CreateOverride(override)
	if err != nil {
		return nil, NewOverrideError(ErrDatabaseOperation, "", err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"override_id": created.ID,
		"type":        created.Type,
		"priority":    created.Priority,
	}).Info("price override created")

	return created, nil
}

func (s *Service) UpdateOverride(override *domain.PriceOverride) (*domain.PriceOverride, error) {
	if override.ID == "" {
		return nil, ErrOverrideNotFound
	}

	if err := validateOverride(override); err != nil {
		return nil, err
	}

	updated, err := s.overrideRepo.UpdateOverride(override)
	if err != nil {
		return nil, NewOverrideError(ErrDatabaseOperation, "", err.Error())
	}
	if updated == nil {
		return nil, ErrOverrideNotFound
	}

	return updated, nil
}

func (s *Service) DeleteOverride(id string) error {
	if id == "" {
		return ErrOverrideNotFound
	}

	existed, err := s.overrideRepo.DeleteOverride(id)
	if err != nil {
		return NewOverrideError(ErrDatabaseOperation, "", err.Error())
	}
	if !existed {
		return ErrOverrideNotFound
	}

	logrus.WithField("override_id", id).Info("price override deleted")
	return nil
}

func (s *Service) GetOverride(id string) (*domain.PriceOverride, error) {
	override, err := s.overrideRepo.GetOverrideByID(id)
	if err != nil {
		return nil, NewOverrideError(ErrDatabaseOperation, "", err.Error())
	}
	if override == nil {
		return nil, ErrOverrideNotFound
	}
	return override, nil
}

func (s *Service) ListOverrides() ([]domain.PriceOverride, error) {
	return s.overrideRepo.ListOverrides()
}

func (s *Service) Resolve(rctx domain.ResolutionContext, priceMinor int64) (domain.ResolvedPrice, error) {
	snapshot, err := s.overrideRepo.ListActiveOverrides()
	if err != nil {
		return domain.ResolvedPrice{}, NewOverrideError(ErrDatabaseOperation, "", err.Error())
	}

	return ResolveAgainst(snapshot, rctx, priceMinor, s.now()), nil
}

// validateOverride rejects malformed overrides at write time. A stored
// override is trusted at read time and never silently skipped.
func validateOverride(override *domain.PriceOverride) error {
	switch override.Type {
	case domain.OverrideTypeFixed, domain.OverrideTypePercentage, domain.OverrideTypeAbsolute:
	default:
		return ErrInvalidOverrideType
	}

	if override.Type == domain.OverrideTypeFixed && override.Value.IsNegative() {
		return ErrInvalidValue
	}

	if override.Scope.Term != nil && *override.Scope.Term <= 0 {
		return ErrInvalidScope
	}
	if override.Scope.Mileage != nil && *override.Scope.Mileage <= 0 {
		return ErrInvalidScope
	}
	if override.Scope.VehicleID != nil && *override.Scope.VehicleID == "" {
		return ErrInvalidScope
	}
	if override.Scope.Provider != nil && *override.Scope.Provider == "" {
		return ErrInvalidScope
	}
	if override.Scope.ContractType != nil {
		switch *override.Scope.ContractType {
		case domain.ContractTypePersonal, domain.ContractTypeBusiness:
		default:
			return ErrInvalidScope
		}
	}

	if override.Reason == "" {
		return ErrMissingReason
	}

	return nil
}
