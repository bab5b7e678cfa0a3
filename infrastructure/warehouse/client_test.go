package warehouse

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/weblytics/traffic-dashboard-api/internal/domain"
	"github.com/weblytics/traffic-dashboard-api/pkg/log"
)

func TestIsMissingIntradayErr(t *testing.T) {
	log.SetupTestLogger()

	assert.False(t, isMissingIntradayErr(nil))
	assert.False(t, isMissingIntradayErr(errors.New("connection refused")))
	assert.False(t, isMissingIntradayErr(errors.New("relation does not match any table")))

	err := errors.New(`name "analytics_111.events_intraday" does not match any table`)
	assert.True(t, isMissingIntradayErr(err))
	assert.True(t, isMissingIntradayErr(errors.Wrap(err, "querying analytics events")))
}

func TestDropStaleIntraday(t *testing.T) {
	log.SetupTestLogger()

	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	client := &Client{now: func() time.Time { return now }}

	records := []domain.EventRecord{
		{EventDate: today, MinutesPast: 5, Sessions: 3},
		{EventDate: yesterday, MinutesPast: 5, Sessions: 7},
		{EventDate: yesterday, MinutesPast: domain.HistoricalMinutesPast, Sessions: 2},
		{EventDate: today, MinutesPast: domain.RecentWindowMinutes, Sessions: 1},
	}

	kept := client.dropStaleIntraday(records)

	assert.Len(t, kept, 3)
	for _, record := range kept {
		if record.MinutesPast <= domain.RecentWindowMinutes {
			assert.True(t, record.EventDate.Equal(today))
		}
	}
}
