package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/quotelane/lease-pricing-api/internal/domain"
	"github.com/quotelane/lease-pricing-api/internal/scheduler"
	"github.com/quotelane/lease-pricing-api/pkg/apiErrors"
	"github.com/quotelane/lease-pricing-api/pkg/middleware"
)

const (
	CronJobTypeCompetitors = "competitors"
)

// CronJobServices holds the schedulers exposed for manual runs
type CronJobServices struct {
	CompetitorIngestionService *scheduler.CompetitorIngestionService
}

// RunCronJob triggers a scheduled job manually
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || (userClaims.UserRoleID != 1 && userClaims.UserRoleID != 2) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators or supervisors can run cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeCompetitors:
			if services.CompetitorIngestionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrIngestionDisabled, "competitor ingestion service not available", nil)
				return
			}
			services.CompetitorIngestionService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type. Accepted values: competitors", nil)
			return
		}

		response := map[string]any{
			"message": "cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports the scheduler status
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || (userClaims.UserRoleID != 1 && userClaims.UserRoleID != 2) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators or supervisors can check cron job status", nil)
			return
		}

		status := map[string]any{
			"competitors": services.CompetitorIngestionService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
