package dashboarding

import (
	"context"

	"github.com/weblytics/traffic-dashboard-api/internal/domain"
)

// ConfigSource provides the roster of tracked websites.
type ConfigSource interface {
	FetchWebsites(ctx context.Context) ([]domain.Website, error)
}

// EventFetcher reads the attributed session rows for one website dataset.
type EventFetcher interface {
	FetchWebsiteEvents(ctx context.Context, suffix string) ([]domain.EventRecord, error)
}

// CostFetcher reads daily billed warehouse usage.
type CostFetcher interface {
	FetchBillingUsage(ctx context.Context) ([]domain.BillingRow, error)
}

// Dashboarder assembles the dashboard payloads, memoizing upstream fetches.
type Dashboarder interface {
	GetDashboard(ctx context.Context, forceRefresh bool) (*domain.TrafficReport, error)
	GetCostReport(ctx context.Context) (*domain.CostReport, error)
	GetWebsites(ctx context.Context) ([]domain.Website, error)
}
