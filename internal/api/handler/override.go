package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/quotelane/lease-pricing-api/internal/domain"
	"github.com/quotelane/lease-pricing-api/internal/usecases/overriding"
	"github.com/quotelane/lease-pricing-api/pkg/apiErrors"
	"github.com/quotelane/lease-pricing-api/pkg/utils"
)

// OverrideRequest is the create/update payload. ValidUntil travels as a
// yyyy-mm-dd string and is converted to the domain's optional timestamp.
type OverrideRequest struct {
	Scope      domain.OverrideScope `json:"scope"`
	Type       domain.OverrideType  `json:"type"`
	Value      decimal.Decimal      `json:"value"`
	Priority   int                  `json:"priority"`
	IsActive   bool                 `json:"is_active"`
	ValidUntil string               `json:"valid_until,omitempty"`
	Reason     string               `json:"reason"`
}

func (req OverrideRequest) toOverride() (*domain.PriceOverride, error) {
	validUntil, err := utils.ParseDate(req.ValidUntil)
	if err != nil {
		return nil, err
	}

	return &domain.PriceOverride{
		Scope:      req.Scope,
		Type:       req.Type,
		Value:      req.Value,
		Priority:   req.Priority,
		IsActive:   req.IsActive,
		ValidUntil: validUntil,
		Reason:     req.Reason,
	}, nil
}

func ListOverrides(service overriding.OverrideService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overrides, err := service.ListOverrides()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error listing overrides", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overrides)
	}
}

func GetOverride(service overriding.OverrideService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "override ID not provided", nil)
			return
		}

		override, err := service.GetOverride(id)
		if err != nil {
			handleOverrideError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(override)
	}
}

func CreateOverride(service overriding.OverrideService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OverrideRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request format", nil)
			return
		}

		override, err := req.toOverride()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid valid_until date, expected yyyy-mm-dd", nil)
			return
		}

		created, err := service.CreateOverride(override)
		if err != nil {
			handleOverrideError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateOverride(service overriding.OverrideService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "override ID not provided", nil)
			return
		}

		var req OverrideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request format", nil)
			return
		}

		override, err := req.toOverride()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid valid_until date, expected yyyy-mm-dd", nil)
			return
		}
		override.ID = id

		updated, err := service.UpdateOverride(override)
		if err != nil {
			handleOverrideError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteOverride(service overriding.OverrideService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "override ID not provided", nil)
			return
		}

		if err := service.DeleteOverride(id); err != nil {
			handleOverrideError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleOverrideError maps override failures to the appropriate API error
func handleOverrideError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, overriding.ErrOverrideNotFound):
		apiErrors.WriteError(w, apiErrors.ErrOverrideNotFound, "override not found", nil)

	case errors.Is(err, overriding.ErrInvalidOverrideType),
		errors.Is(err, overriding.ErrInvalidValue),
		errors.Is(err, overriding.ErrInvalidScope),
		errors.Is(err, overriding.ErrMissingReason):
		apiErrors.WriteError(w, apiErrors.ErrInvalidOverride, err.Error(), nil)

	case errors.Is(err, overriding.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "database operation failed", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error handling override", nil)
	}
}
