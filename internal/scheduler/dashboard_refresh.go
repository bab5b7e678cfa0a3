package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/weblytics/traffic-dashboard-api/internal/config"
	"github.com/weblytics/traffic-dashboard-api/internal/usecases/dashboarding"
)

// DashboardRefreshConfig holds the warm-refresh schedule settings.
type DashboardRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardRefreshService rebuilds the dashboard on a schedule so the caches
// stay warm and clients never wait on a cold warehouse fetch.
type DashboardRefreshService struct {
	scheduler *gocron.Scheduler
	config    DashboardRefreshConfig
	dashboard dashboarding.Dashboarder

	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

// RefreshStatus is a snapshot of the refresh loop state.
type RefreshStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

func NewDashboardRefreshService(
	dashboard dashboarding.Dashboarder,
	appConfig *config.Config,
) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.DashboardRefresh.CronSchedule,
		Enabled:      appConfig.DashboardRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.Enabled,
	}).Info("dashboard refresh scheduler configured")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		dashboard: dashboard,
	}
}

// Start schedules the refresh job and runs the scheduler asynchronously. The
// scheduler stops when ctx is cancelled.
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("dashboard refresh scheduler disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting dashboard refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDashboard(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling dashboard refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping dashboard refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow triggers one refresh outside the schedule. Returns false when a
// refresh is already in flight.
func (s *DashboardRefreshService) RunNow(ctx context.Context) bool {
	return s.refreshDashboard(ctx)
}

// Status reports whether a refresh is running and when the last one ran.
func (s *DashboardRefreshService) Status() RefreshStatus {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := RefreshStatus{Running: s.refreshRunning}

	if !s.lastRefreshStartedAt.IsZero() {
		started := s.lastRefreshStartedAt
		status.LastStartedAt = &started
	}

	if !s.lastRefreshCompletedAt.IsZero() {
		completed := s.lastRefreshCompletedAt
		status.LastCompletedAt = &completed
	}

	return status
}

func (s *DashboardRefreshService) refreshDashboard(ctx context.Context) bool {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("dashboard refresh already in progress, skipping")
		return false
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("starting scheduled dashboard refresh")

	report, err := s.dashboard.GetDashboard(ctx, true)
	if err != nil {
		logrus.WithError(err).Error("scheduled dashboard refresh failed")
		return true
	}

	if _, err := s.dashboard.GetCostReport(ctx); err != nil {
		logrus.WithError(err).Warn("cost report refresh failed")
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"websites": len(report.Websites),
		"has_data": report.HasData(),
	}).Info("scheduled dashboard refresh completed")

	s.refreshMutex.Lock()
	s.lastRefreshCompletedAt = time.Now()
	s.refreshMutex.Unlock()

	return true
}
