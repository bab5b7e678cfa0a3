// Package aggregating turns the flat per-website event rollup coming from the
// warehouse into every view the dashboard renders: windowed per-website
// tables, the 5-day pivot, account rollups, ranked categorical breakdowns and
// the traffic-source trend.
package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/weblytics/traffic-dashboard-api/internal/domain"
	"github.com/weblytics/traffic-dashboard-api/pkg/utils"
)

const (
	topCountriesN         = 3
	topSourcesN           = 3
	topLandingPagesSiteN  = 10
	topLandingPagesTotalN = 20
	trendWindowDays       = 7
	pivotWindowDays       = 5
	pivotDateLabel        = "02/01"
)

// Engine builds TrafficReports. It is stateless: the report is a pure function
// of (events, websites, now).
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// BuildReport computes the full aggregated view. Websites present in the
// config but absent from the events always get explicit zero rows; an empty
// event set yields a complete all-zero report rather than an error.
func (e *Engine) BuildReport(events []domain.EventRecord, websites []domain.Website, now time.Time) (*domain.TrafficReport, error) {
	if err := validateInput(events, websites); err != nil {
		return nil, err
	}

	today := utils.DayOf(now)
	yesterday := today.AddDate(0, 0, -1)
	last7Start := today.AddDate(0, 0, -(trendWindowDays - 1))

	// The 5-day pivot spans [today-6, today-2]: it never overlaps today or yesterday
	pivotEnd := today.AddDate(0, 0, -2)
	pivotStart := pivotEnd.AddDate(0, 0, -(pivotWindowDays - 1))

	todayEvents := filterByDay(events, today)
	yesterdayEvents := filterByDay(events, yesterday)
	recentEvents := filterRecent(events)

	pivotDates := pivotDateColumns(pivotEnd)

	report := &domain.TrafficReport{
		GeneratedAt: now,
		PivotDates:  pivotDates,
	}

	yesterdayBySite := rollupByWebsite(yesterdayEvents)
	todayBySite := rollupByWebsite(todayEvents)
	recentBySite := rollupByWebsite(recentEvents)
	pivotBySiteDay := rollupByWebsiteAndDay(events, pivotStart, pivotEnd)

	// Left join from the config: every configured website gets a row, zero-filled
	for _, w := range websites {
		row := domain.WebsiteRow{
			Number:       w.Number,
			Website:      w.Name,
			Monetization: w.Monetization,
			Account:      w.Account,
			Yesterday:    yesterdayBySite[w.Name],
			Today:        todayBySite[w.Name],
			Last30Min:    recentBySite[w.Name],
			Days:         make([]int, len(pivotDates)),
		}

		for i, pd := range pivotDates {
			row.Days[i] = pivotBySiteDay[w.Name][dayKey(pd.Date)]
		}

		report.Websites = append(report.Websites, row)
	}

	report.Totals = summarize("TOTAL", len(pivotDates), report.Websites, func(domain.WebsiteRow) bool {
		return true
	})
	report.MonetizedTotals = summarize("TOTAL MONETIZED", len(pivotDates), report.Websites, func(r domain.WebsiteRow) bool {
		return r.Monetization == domain.MonetizationActive
	})
	report.NonMonetizedTotals = summarize("NOT MONETIZED", len(pivotDates), report.Websites, func(r domain.WebsiteRow) bool {
		return r.Monetization != domain.MonetizationActive
	})

	report.AccountsYesterday = accountRollup(websites, yesterdayBySite)
	report.AccountsToday = accountRollup(websites, todayBySite)

	report.Overview = buildPanel("", events, yesterday, last7Start, today, topLandingPagesTotalN)

	for _, name := range sitePanelOrder(events, websites) {
		siteEvents := filterByWebsite(events, name)
		report.Sites = append(report.Sites, buildPanel(name, siteEvents, yesterday, last7Start, today, topLandingPagesSiteN))
	}

	return report, nil
}

// validateInput rejects malformed input before any aggregation happens:
// silently producing wrong aggregates is worse than failing the refresh.
func validateInput(events []domain.EventRecord, websites []domain.Website) error {
	seen := make(map[string]bool, len(websites))
	for _, w := range websites {
		if w.Name == "" {
			return fmt.Errorf("aggregating: website config entry %d has an empty name", w.Number)
		}
		if seen[w.Name] {
			return fmt.Errorf("aggregating: duplicate website %q in config", w.Name)
		}
		seen[w.Name] = true
	}

	for _, ev := range events {
		if ev.Sessions < 0 {
			return fmt.Errorf("aggregating: negative session count %d for website %q on %s",
				ev.Sessions, ev.Website, ev.EventDate.Format(time.DateOnly))
		}
	}

	return nil
}

func filterByDay(events []domain.EventRecord, day time.Time) []domain.EventRecord {
	var out []domain.EventRecord
	for _, ev := range events {
		if utils.SameDay(ev.EventDate, day) {
			out = append(out, ev)
		}
	}
	return out
}

func filterFromDay(events []domain.EventRecord, start time.Time) []domain.EventRecord {
	var out []domain.EventRecord
	for _, ev := range events {
		if !utils.DayOf(ev.EventDate).Before(start) {
			out = append(out, ev)
		}
	}
	return out
}

// filterRecent keeps intraday rows only. The check is purely on MinutesPast:
// historical rows carry the 1440 sentinel and never qualify.
func filterRecent(events []domain.EventRecord) []domain.EventRecord {
	var out []domain.EventRecord
	for _, ev := range events {
		if ev.IsRecent() {
			out = append(out, ev)
		}
	}
	return out
}

func filterByWebsite(events []domain.EventRecord, website string) []domain.EventRecord {
	var out []domain.EventRecord
	for _, ev := range events {
		if ev.Website == website {
			out = append(out, ev)
		}
	}
	return out
}

func rollupByWebsite(events []domain.EventRecord) map[string]int {
	sums := make(map[string]int)
	for _, ev := range events {
		sums[ev.Website] += ev.Sessions
	}
	return sums
}

func rollupByWebsiteAndDay(events []domain.EventRecord, start, end time.Time) map[string]map[string]int {
	sums := make(map[string]map[string]int)
	for _, ev := range events {
		day := utils.DayOf(ev.EventDate)
		if day.Before(start) || day.After(end) {
			continue
		}
		if sums[ev.Website] == nil {
			sums[ev.Website] = make(map[string]int)
		}
		sums[ev.Website][dayKey(day)] += ev.Sessions
	}
	return sums
}

// pivotDateColumns lists the 5 pivot dates newest-first, labelled DD/MM.
// All 5 columns are always present even when no website has data for a date.
func pivotDateColumns(pivotEnd time.Time) []domain.PivotDate {
	dates := make([]domain.PivotDate, 0, pivotWindowDays)
	for i := 0; i < pivotWindowDays; i++ {
		d := pivotEnd.AddDate(0, 0, -i)
		dates = append(dates, domain.PivotDate{
			Label: d.Format(pivotDateLabel),
			Date:  d,
		})
	}
	return dates
}

// summarize recomputes one summary row from the per-website table. Summary
// rows are derived values: they are rebuilt on every refresh, never stored.
// Days is sized from the pivot so an empty config still serializes as zeros.
func summarize(label string, days int, rows []domain.WebsiteRow, include func(domain.WebsiteRow) bool) domain.SummaryRow {
	sum := domain.SummaryRow{
		Label: label,
		Days:  make([]int, days),
	}

	for _, row := range rows {
		if !include(row) {
			continue
		}
		sum.Yesterday += row.Yesterday
		sum.Today += row.Today
		sum.Last30Min += row.Last30Min
		for i, d := range row.Days {
			sum.Days[i] += d
		}
	}

	return sum
}

// accountRollup groups the per-website sums of monetized websites by owning
// account, descending by sessions. Missing accounts land under "Unknown".
func accountRollup(websites []domain.Website, siteSums map[string]int) []domain.AccountTotal {
	sums := make(map[string]int)
	var order []string

	for _, w := range websites {
		if !w.IsMonetized() {
			continue
		}
		account := w.OwnerAccount()
		if _, ok := sums[account]; !ok {
			order = append(order, account)
		}
		sums[account] += siteSums[w.Name]
	}

	totals := make([]domain.AccountTotal, 0, len(order))
	for _, account := range order {
		totals = append(totals, domain.AccountTotal{Account: account, Sessions: sums[account]})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Sessions > totals[j].Sessions
	})

	return totals
}

// buildPanel assembles the chart data for one website (or the overview when
// website is empty, in which case events already span every site).
func buildPanel(website string, events []domain.EventRecord, yesterday, last7Start, today time.Time, landingPagesN int) domain.SitePanel {
	recent := filterRecent(events)
	yesterdayEvents := filterByDay(events, yesterday)
	last7Events := filterFromDay(events, last7Start)

	panel := domain.SitePanel{
		Website:         website,
		ActiveUsers:     sumSessions(recent),
		PerMinute:       perMinuteSeries(recent),
		Daily:           dailySeries(events),
		TopCountries:    topCategories(recent, func(ev domain.EventRecord) string { return ev.Country }, topCountriesN),
		TopLandingPages: topCategories(yesterdayEvents, func(ev domain.EventRecord) string { return ev.LandingPage }, landingPagesN),
		TopSources:      topCategories(yesterdayEvents, func(ev domain.EventRecord) string { return ev.SessionSource }, topSourcesN),
		SourceTrend:     sourceTrend(last7Events, last7Start, today),
	}

	return panel
}

func sumSessions(events []domain.EventRecord) int {
	total := 0
	for _, ev := range events {
		total += ev.Sessions
	}
	return total
}

// perMinuteSeries fills minutes 0..30, zero-filled for quiet minutes.
func perMinuteSeries(recent []domain.EventRecord) []domain.MinuteCount {
	byMinute := make(map[int]int)
	for _, ev := range recent {
		byMinute[ev.MinutesPast] += ev.Sessions
	}

	series := make([]domain.MinuteCount, 0, domain.RecentWindowMinutes+1)
	for m := 0; m <= domain.RecentWindowMinutes; m++ {
		series = append(series, domain.MinuteCount{Minute: m, Sessions: byMinute[m]})
	}
	return series
}

func dailySeries(events []domain.EventRecord) []domain.DateCount {
	byDay := make(map[string]int)
	dates := make(map[string]time.Time)
	for _, ev := range events {
		day := utils.DayOf(ev.EventDate)
		key := dayKey(day)
		byDay[key] += ev.Sessions
		dates[key] = day
	}

	series := make([]domain.DateCount, 0, len(byDay))
	for key, day := range dates {
		series = append(series, domain.DateCount{Date: day, Sessions: byDay[key]})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

// topCategories ranks a categorical field by summed sessions, descending.
// Ties keep input order (stable sort); zero-sum categories are dropped.
func topCategories(events []domain.EventRecord, key func(domain.EventRecord) string, n int) []domain.CategoryCount {
	sums := make(map[string]int)
	var order []string

	for _, ev := range events {
		k := key(ev)
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] += ev.Sessions
	}

	ranked := make([]domain.CategoryCount, 0, len(order))
	for _, k := range order {
		if sums[k] == 0 {
			continue
		}
		ranked = append(ranked, domain.CategoryCount{Name: k, Sessions: sums[k]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Sessions > ranked[j].Sessions
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

// sourceTrend picks one fixed top-3 source set over the whole 7-day window,
// then builds a zero-filled daily series per source across all 7 days.
func sourceTrend(last7Events []domain.EventRecord, last7Start, today time.Time) []domain.SourceSeries {
	top := topCategories(last7Events, func(ev domain.EventRecord) string { return ev.SessionSource }, topSourcesN)
	if len(top) == 0 {
		return nil
	}

	bySourceDay := make(map[string]map[string]int)
	for _, ev := range last7Events {
		if bySourceDay[ev.SessionSource] == nil {
			bySourceDay[ev.SessionSource] = make(map[string]int)
		}
		bySourceDay[ev.SessionSource][dayKey(utils.DayOf(ev.EventDate))] += ev.Sessions
	}

	series := make([]domain.SourceSeries, 0, len(top))
	for _, src := range top {
		s := domain.SourceSeries{Source: src.Name}
		for d := last7Start; !d.After(today); d = d.AddDate(0, 0, 1) {
			s.Daily = append(s.Daily, domain.DateCount{
				Date:     d,
				Sessions: bySourceDay[src.Name][dayKey(d)],
			})
		}
		series = append(series, s)
	}

	return series
}

// sitePanelOrder lists every configured website ordered by its total sessions
// over the whole event set, descending; config order breaks ties.
func sitePanelOrder(events []domain.EventRecord, websites []domain.Website) []string {
	totals := rollupByWebsite(events)

	names := make([]string, 0, len(websites))
	for _, w := range websites {
		names = append(names, w.Name)
	}

	sort.SliceStable(names, func(i, j int) bool {
		return totals[names[i]] > totals[names[j]]
	})

	return names
}

func dayKey(day time.Time) string {
	return day.Format(time.DateOnly)
}
