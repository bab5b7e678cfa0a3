package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/weblytics/traffic-dashboard-api/internal/config"
	"github.com/weblytics/traffic-dashboard-api/internal/domain"
	"github.com/weblytics/traffic-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"

	"github.com/weblytics/traffic-dashboard-api/internal/usecases/dashboarding/mocks"
)

func newRefreshService(t *testing.T, enabled bool) (*mocks.MockDashboarder, *DashboardRefreshService) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboarder(ctrl)

	cfg := &config.Config{}
	cfg.DashboardRefresh.CronSchedule = "*/30 * * * *"
	cfg.DashboardRefresh.Enabled = enabled

	return dashboard, NewDashboardRefreshService(dashboard, cfg)
}

func TestRunNowRefreshesAndUpdatesStatus(t *testing.T) {
	dashboard, service := newRefreshService(t, true)

	dashboard.EXPECT().GetDashboard(gomock.Any(), true).Return(&domain.TrafficReport{}, nil)
	dashboard.EXPECT().GetCostReport(gomock.Any()).Return(&domain.CostReport{}, nil)

	before := time.Now()
	ran := service.RunNow(context.Background())
	assert.True(t, ran)

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastStartedAt)
	assert.NotNil(t, status.LastCompletedAt)
	assert.False(t, status.LastStartedAt.Before(before))
}

func TestRunNowSurvivesRefreshFailure(t *testing.T) {
	dashboard, service := newRefreshService(t, true)

	dashboard.EXPECT().GetDashboard(gomock.Any(), true).Return(nil, assert.AnError)

	ran := service.RunNow(context.Background())
	assert.True(t, ran)

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
}

func TestStartDisabledSchedulesNothing(t *testing.T) {
	_, service := newRefreshService(t, false)

	err := service.Start(context.Background())
	assert.NoError(t, err)
	assert.False(t, service.Status().Running)
}
