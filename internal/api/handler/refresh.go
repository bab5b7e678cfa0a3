package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/weblytics/traffic-dashboard-api/internal/scheduler"
)

// RunRefresh triggers one dashboard refresh outside the schedule. Responds
// with 409 when a refresh is already running.
func RunRefresh(service *scheduler.DashboardRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if !service.RunNow(r.Context()) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "refresh already in progress",
			})
			return
		}

		logrus.Info("manual dashboard refresh triggered")

		json.NewEncoder(w).Encode(map[string]string{
			"status": "refresh completed",
		})
	}
}

// GetRefreshStatus reports the refresh loop state.
func GetRefreshStatus(service *scheduler.DashboardRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.Status())
	}
}
