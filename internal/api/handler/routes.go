package handler

import (
	"net/http"

	"github.com/quotelane/lease-pricing-api/internal/api/handler/router"
	"github.com/quotelane/lease-pricing-api/internal/usecases/authenticating"
	"github.com/quotelane/lease-pricing-api/internal/usecases/overriding"
	"github.com/quotelane/lease-pricing-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Vehicles(services VehicleServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/vehicles",
			Method:      http.MethodGet,
			Handler:     ListVehicles(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/vehicles/:id/rates",
			Method:      http.MethodGet,
			Handler:     GetRateMatrix(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/vehicles/:id/score",
			Method:      http.MethodGet,
			Handler:     GetDealScore(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/vehicles/:id/market-position",
			Method:      http.MethodGet,
			Handler:     GetMarketPosition(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/vehicles/:id/opportunity",
			Method:      http.MethodGet,
			Handler:     GetOpportunity(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Overrides(service overriding.OverrideService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/overrides",
			Method:      http.MethodGet,
			Handler:     ListOverrides(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/overrides",
			Method:      http.MethodPost,
			Handler:     CreateOverride(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/overrides/:id",
			Method:      http.MethodGet,
			Handler:     GetOverride(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/overrides/:id",
			Method:      http.MethodPut,
			Handler:     UpdateOverride(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/overrides/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteOverride(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
