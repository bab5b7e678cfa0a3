package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/weblytics/traffic-dashboard-api/internal/domain"
	"github.com/weblytics/traffic-dashboard-api/internal/usecases/dashboarding"
	"github.com/weblytics/traffic-dashboard-api/pkg/apiErrors"
)

// GetDashboard returns the full aggregated traffic report. The optional
// force_refresh query parameter drops every cached fetch before rebuilding.
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forceRefresh, _ := strconv.ParseBool(r.URL.Query().Get("force_refresh"))

		report, err := service.GetDashboard(r.Context(), forceRefresh)
		if err != nil {
			logrus.WithError(err).Error("error building dashboard")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "error building dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("error encoding dashboard response")
		}
	}
}

// GetWebsites returns the validated website roster.
func GetWebsites(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		websites, err := service.GetWebsites(r.Context())
		if err != nil {
			logrus.WithError(err).Error("error fetching website roster")
			apiErrors.WriteError(w, apiErrors.ErrConfigSource, "error fetching website roster", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(websites); err != nil {
			logrus.WithError(err).Error("error encoding websites response")
		}
	}
}

// CostsResponse wraps the cost report so an unavailable usage source comes
// back as an informational payload, not an error.
type CostsResponse struct {
	Available bool               `json:"available"`
	Message   string             `json:"message,omitempty"`
	Report    *domain.CostReport `json:"report,omitempty"`
}

// GetCosts returns the warehouse usage monitor. Cost data is auxiliary, so a
// failed fetch degrades to an "unavailable" payload while the dashboard keeps
// working.
func GetCosts(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		report, err := service.GetCostReport(r.Context())
		if err != nil {
			logrus.WithError(err).Warn("cost data unavailable")

			json.NewEncoder(w).Encode(CostsResponse{
				Available: false,
				Message:   "cost data unavailable",
			})
			return
		}

		json.NewEncoder(w).Encode(CostsResponse{
			Available: true,
			Report:    report,
		})
	}
}
