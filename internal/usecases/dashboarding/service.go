package dashboarding

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/weblytics/traffic-dashboard-api/internal/cache"
	"github.com/weblytics/traffic-dashboard-api/internal/domain"
	"github.com/weblytics/traffic-dashboard-api/internal/usecases/aggregating"
	"github.com/weblytics/traffic-dashboard-api/internal/usecases/costing"
	"github.com/weblytics/traffic-dashboard-api/pkg/log"
	"github.com/weblytics/traffic-dashboard-api/pkg/utils"
)

type Service struct {
	configSource ConfigSource
	events       EventFetcher
	costs        CostFetcher
	engine       *aggregating.Engine
	costAgg      *costing.Aggregator
	cache        *cache.Cache

	now func() time.Time
}

func NewService(
	configSource ConfigSource,
	events EventFetcher,
	costs CostFetcher,
	memo *cache.Cache,
) Dashboarder {
	return &Service{
		configSource: configSource,
		events:       events,
		costs:        costs,
		engine:       aggregating.NewEngine(),
		costAgg:      costing.NewAggregator(),
		cache:        memo,
		now:          time.Now,
	}
}

// GetDashboard assembles the full traffic report. Upstream fetches are served
// from the cache when fresh; forceRefresh drops every cached fetch first so
// the report is rebuilt from live data.
//
// A website whose event fetch fails is logged and skipped: the aggregation
// zero-fills it, so one broken dataset never blanks the whole dashboard.
func (s *Service) GetDashboard(ctx context.Context, forceRefresh bool) (*domain.TrafficReport, error) {
	refreshID, _ := utils.GenerateID()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"refresh_id":    refreshID,
		"force_refresh": forceRefresh,
	})

	if forceRefresh {
		s.cache.InvalidateAll()
	}

	websites, err := s.GetWebsites(ctx)
	if err != nil {
		return nil, err
	}

	var events []domain.EventRecord

	for _, website := range websites {
		records, err := s.websiteEvents(ctx, website)
		if err != nil {
			logger.WithFields(log.Fields{
				"website": website.Name,
				"error":   err.Error(),
			}).Warn("skipping website after event fetch failure")

			continue
		}

		events = append(events, records...)
	}

	report, err := s.engine.BuildReport(events, websites, s.now())
	if err != nil {
		return nil, errors.Wrap(err, "building traffic report")
	}

	logger.WithFields(log.Fields{
		"websites": len(websites),
		"rows":     len(events),
	}).Info("dashboard rebuilt")

	return report, nil
}

// GetCostReport assembles the warehouse cost monitor from cached billing rows.
func (s *Service) GetCostReport(ctx context.Context) (*domain.CostReport, error) {
	key := cache.Key("billing")

	if cached, ok := s.cache.Get(key); ok {
		if rows, ok := cached.([]domain.BillingRow); ok {
			return s.costAgg.BuildReport(rows, s.now()), nil
		}
	}

	rows, err := s.costs.FetchBillingUsage(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching billing usage")
	}

	s.cache.Set(key, rows)

	return s.costAgg.BuildReport(rows, s.now()), nil
}

// GetWebsites returns the validated roster, cached under a single key.
func (s *Service) GetWebsites(ctx context.Context) ([]domain.Website, error) {
	key := cache.Key("websites")

	if cached, ok := s.cache.Get(key); ok {
		if websites, ok := cached.([]domain.Website); ok {
			return websites, nil
		}
	}

	websites, err := s.configSource.FetchWebsites(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching website roster")
	}

	s.cache.Set(key, websites)

	return websites, nil
}

// websiteEvents fetches one website's rows, tagging each with the website name
// so downstream rollups can group on it.
func (s *Service) websiteEvents(ctx context.Context, website domain.Website) ([]domain.EventRecord, error) {
	key := cache.Key("events", website.Suffix)

	if cached, ok := s.cache.Get(key); ok {
		if records, ok := cached.([]domain.EventRecord); ok {
			return records, nil
		}
	}

	records, err := s.events.FetchWebsiteEvents(ctx, website.Suffix)
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Website = website.Name
	}

	s.cache.Set(key, records)

	return records, nil
}
