package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/dashboard-analytics-api/internal/registry"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/dashboarding"
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

func Domains(domainRegistry *registry.Registry) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/domains",
			Method:  http.MethodGet,
			Handler: ListDomains(domainRegistry),
		},
	}
}

func Sessions(service dashboarding.Orchestrator, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(service),
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodGet,
			Handler: GetSession(service),
		},
		{
			Path:    "/v1/sessions/:id/domain",
			Method:  http.MethodPost,
			Handler: SelectDomain(service),
		},
		{
			Path:    "/v1/sessions/:id/dashboard",
			Method:  http.MethodPost,
			Handler: SelectDashboard(service),
		},
		{
			Path:    "/v1/sessions/:id/upload",
			Method:  http.MethodPost,
			Handler: UploadFile(service, maxUploadBytes),
		},
		{
			Path:    "/v1/sessions/:id/dashboard",
			Method:  http.MethodGet,
			Handler: QueryDashboard(service),
		},
		{
			Path:    "/v1/sessions/:id/reset",
			Method:  http.MethodPost,
			Handler: ResetSession(service),
		},
	}
}
