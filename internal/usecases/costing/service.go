// Package costing builds the warehouse usage/cost monitor: a 30-day daily
// series of gigabytes billed with a month-to-date running sum, plus the
// free-tier percentage.
package costing

import (
	"time"

	"github.com/weblytics/traffic-dashboard-api/internal/domain"
	"github.com/weblytics/traffic-dashboard-api/pkg/utils"
)

const windowDays = 30

type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// BuildReport produces the trailing-30-day usage series ending today.
// Days with no billing rows are zero-filled; the month-to-date column carries
// forward within a calendar month and restarts at each month boundary. Rows
// before the window still feed the running sum so the first partial month is
// correct from its own month start.
func (a *Aggregator) BuildReport(rows []domain.BillingRow, now time.Time) *domain.CostReport {
	today := utils.DayOf(now)
	windowStart := today.AddDate(0, 0, -(windowDays - 1))

	byDay := make(map[string]float64)
	for _, row := range rows {
		byDay[dayKey(utils.DayOf(row.Date))] += row.GigsBilled
	}

	// Seed the running sum with the pre-window days of the window's first month
	running := 0.0
	for d := utils.MonthStart(windowStart); d.Before(windowStart); d = d.AddDate(0, 0, 1) {
		running += byDay[dayKey(d)]
	}

	report := &domain.CostReport{
		Days: make([]domain.CostDay, 0, windowDays),
	}

	currentMonth := windowStart.Month()
	currentYear := windowStart.Year()

	for d := windowStart; !d.After(today); d = d.AddDate(0, 0, 1) {
		if d.Month() != currentMonth || d.Year() != currentYear {
			currentMonth = d.Month()
			currentYear = d.Year()
			running = 0
		}

		gigs := byDay[dayKey(d)]
		running += gigs
		report.TotalGigs += gigs

		report.Days = append(report.Days, domain.CostDay{
			Date:        d,
			GigsBilled:  gigs,
			MonthToDate: running,
		})
	}

	report.PctOfFreeTier = utils.RoundWithTwoDecimalPlace(report.TotalGigs / domain.FreeTierGiB * 100)

	return report
}

func dayKey(day time.Time) string {
	return day.Format(time.DateOnly)
}
