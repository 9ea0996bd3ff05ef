package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/quotelane/lease-pricing-api/infrastructure/repository"
	"github.com/quotelane/lease-pricing-api/internal/config"
	"github.com/quotelane/lease-pricing-api/internal/domain"
	"github.com/quotelane/lease-pricing-api/internal/usecases/comparing"
	"github.com/quotelane/lease-pricing-api/internal/usecases/pricing"
	"github.com/quotelane/lease-pricing-api/internal/usecases/scoring"
	"github.com/quotelane/lease-pricing-api/pkg/apiErrors"
)

// VehicleServices groups the services behind the vehicle pricing endpoints.
type VehicleServices struct {
	Config         *config.Config
	VehicleRepo    repository.VehicleRepository
	PricingService pricing.RateExplorer
	ScoringService scoring.Scorer
	Comparator     comparing.Comparator
}

// rateScope is the common query scope of the pricing endpoints: mileage,
// maintenance flag and contract type, all optional with configured defaults.
type rateScope struct {
	Mileage             int
	IncludesMaintenance bool
	ContractType        domain.ContractType
}

func ListVehicles(services VehicleServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicles, err := services.VehicleRepo.ListVehicles()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error listing vehicles", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(vehicles)
	}
}

// GetRateMatrix returns the interpolated provider x payment-profile matrix for
// a vehicle scope, with per-profile best prices and the final overall price
// after override resolution.
func GetRateMatrix(services VehicleServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicle, ok := requireVehicle(w, r, services)
		if !ok {
			return
		}

		scope, err := parseRateScope(r, services.Config)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		matrix, err := services.PricingService.ExploreRates(
			vehicle.ID,
			scope.Mileage,
			scope.IncludesMaintenance,
			scope.ContractType,
		)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error building rate matrix", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(matrix)
	}
}

// GetDealScore scores the vehicle's final best price. The payment profile
// defaults to the configured reference profile and can be overridden with the
// term and initial query parameters.
func GetDealScore(services VehicleServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicle, ok := requireVehicle(w, r, services)
		if !ok {
			return
		}

		scope, err := parseRateScope(r, services.Config)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		matrix, err := services.PricingService.ExploreRates(
			vehicle.ID,
			scope.Mileage,
			scope.IncludesMaintenance,
			scope.ContractType,
		)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error computing final price", nil)
			return
		}

		if matrix.NoRatesAvailable || matrix.FinalPriceMinor == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoRatesAvailable, "no rates available for this vehicle scope", nil)
			return
		}

		profile := services.ScoringService.ReferenceProfile()
		if term, err := queryInt(r, "term", profile.Term); err == nil {
			profile.Term = term
		}
		if initial, err := queryInt(r, "initial", profile.InitialMonths); err == nil {
			profile.InitialMonths = initial
		}

		breakdown := services.ScoringService.Score(*matrix.FinalPriceMinor, vehicle, profile)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(breakdown)
	}
}

// GetMarketPosition classifies the vehicle's final price against scraped
// competitor snapshots. Term and mileage tolerances narrow the competitor set.
func GetMarketPosition(services VehicleServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicle, ok := requireVehicle(w, r, services)
		if !ok {
			return
		}

		scope, err := parseRateScope(r, services.Config)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		matrix, err := services.PricingService.ExploreRates(
			vehicle.ID,
			scope.Mileage,
			scope.IncludesMaintenance,
			scope.ContractType,
		)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error computing final price", nil)
			return
		}

		if matrix.NoRatesAvailable || matrix.FinalPriceMinor == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoRatesAvailable, "no rates available for this vehicle scope", nil)
			return
		}

		filter := &comparing.ComparisonFilter{
			TermTolerance:    6,
			Mileage:          &scope.Mileage,
			MileageTolerance: 5000,
		}
		if term, err := queryInt(r, "term", 0); err == nil && term > 0 {
			filter.Term = &term
		}

		position, err := services.Comparator.MarketPosition(vehicle.ID, *matrix.FinalPriceMinor, filter)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error computing market position", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(position)
	}
}

// GetOpportunity computes the terms-holder saving for a vehicle given the
// funder's and the terms holder's on-the-road prices in minor units.
func GetOpportunity(services VehicleServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, ok := requireVehicle(w, r, services)
		if !ok {
			return
		}

		providerOtr, err := queryInt64(r, "providerOtrMinor")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "providerOtrMinor must be an integer amount in minor units", nil)
			return
		}

		termsHolderOtr, err := queryInt64(r, "termsHolderOtrMinor")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "termsHolderOtrMinor must be an integer amount in minor units", nil)
			return
		}

		opportunity := services.ScoringService.TermsHolderOpportunity(providerOtr, termsHolderOtr)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"opportunity": opportunity,
		})
	}
}

// requireVehicle resolves the :id path parameter to a catalogue vehicle,
// writing the error response itself when the vehicle cannot be resolved.
func requireVehicle(w http.ResponseWriter, r *http.Request, services VehicleServices) (*domain.Vehicle, bool) {
	vehicleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if vehicleID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "vehicle ID not provided", nil)
		return nil, false
	}

	vehicle, err := services.VehicleRepo.GetVehicleByID(vehicleID)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error fetching vehicle", nil)
		return nil, false
	}
	if vehicle == nil {
		apiErrors.WriteError(w, apiErrors.ErrVehicleNotFound, "vehicle not found", nil)
		return nil, false
	}

	return vehicle, true
}

func parseRateScope(r *http.Request, cfg *config.Config) (rateScope, error) {
	scope := rateScope{
		Mileage:      cfg.Pricing.DefaultMileage,
		ContractType: domain.ContractTypePersonal,
	}

	mileage, err := queryInt(r, "mileage", scope.Mileage)
	if err != nil {
		return scope, err
	}
	scope.Mileage = mileage

	if raw := r.URL.Query().Get("maintenance"); raw != "" {
		includes, err := strconv.ParseBool(raw)
		if err != nil {
			return scope, err
		}
		scope.IncludesMaintenance = includes
	}

	if raw := r.URL.Query().Get("contract"); raw != "" {
		switch domain.ContractType(raw) {
		case domain.ContractTypePersonal, domain.ContractTypeBusiness:
			scope.ContractType = domain.ContractType(raw)
		default:
			return scope, strconv.ErrSyntax
		}
	}

	return scope, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func queryInt64(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
}
