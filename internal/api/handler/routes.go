package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/weblytics/traffic-dashboard-api/internal/api/handler/router"
	"github.com/weblytics/traffic-dashboard-api/internal/scheduler"
	"github.com/weblytics/traffic-dashboard-api/internal/usecases/authenticating"
	"github.com/weblytics/traffic-dashboard-api/internal/usecases/dashboarding"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

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
			Path:    "/v1/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/websites",
			Method:  http.MethodGet,
			Handler: GetWebsites(service),
		},
	}
}

func Costs(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/costs",
			Method:  http.MethodGet,
			Handler: GetCosts(service),
		},
	}
}

func Refresh(service *scheduler.DashboardRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/refresh",
			Method:  http.MethodPost,
			Handler: RunRefresh(service),
		},
		{
			Path:    "/v1/refresh/status",
			Method:  http.MethodGet,
			Handler: GetRefreshStatus(service),
		},
	}
}
