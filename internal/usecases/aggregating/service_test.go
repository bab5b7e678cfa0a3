package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weblytics/traffic-dashboard-api/internal/domain"
)

var testNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func testWebsites() []domain.Website {
	return []domain.Website{
		{Number: 1, Name: "site_a", Status: domain.WebsiteStatusLive, Monetization: domain.MonetizationActive, Account: "X", Suffix: "111"},
		{Number: 2, Name: "site_b", Status: domain.WebsiteStatusLive, Monetization: domain.MonetizationReview, Account: "Y", Suffix: "222"},
	}
}

func TestBuildReport_EmptyEventsStillListsEveryWebsite(t *testing.T) {
	engine := NewEngine()

	report, err := engine.BuildReport(nil, testWebsites(), testNow)
	require.NoError(t, err)

	require.Len(t, report.Websites, 2)
	for _, row := range report.Websites {
		assert.Equal(t, 0, row.Yesterday)
		assert.Equal(t, 0, row.Today)
		assert.Equal(t, 0, row.Last30Min)
		require.Len(t, row.Days, 5)
		for _, d := range row.Days {
			assert.Equal(t, 0, d)
		}
	}

	assert.Equal(t, 0, report.Totals.Yesterday)
	assert.Len(t, report.Sites, 2, "panels are zero-filled too")
	assert.False(t, report.HasData())
}

func TestBuildReport_YesterdayScenario(t *testing.T) {
	engine := NewEngine()

	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Sessions: 10},
	}

	report, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	require.Len(t, report.Websites, 2)
	assert.Equal(t, 10, report.Websites[0].Yesterday)
	assert.Equal(t, 0, report.Websites[1].Yesterday)

	assert.Equal(t, 10, report.Totals.Yesterday)
	assert.Equal(t, 10, report.MonetizedTotals.Yesterday)
	assert.Equal(t, 0, report.NonMonetizedTotals.Yesterday)
	assert.True(t, report.HasData())
}

func TestBuildReport_RecentIgnoresHistoricalSentinel(t *testing.T) {
	engine := NewEngine()

	// All rows carry the 1440 sentinel: recent must stay zero whatever Sessions says
	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(0), MinutesPast: domain.HistoricalMinutesPast, Sessions: 500},
		{Website: "site_b", EventDate: day(0), MinutesPast: domain.HistoricalMinutesPast, Sessions: 7},
	}

	report, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	for _, row := range report.Websites {
		assert.Equal(t, 0, row.Last30Min)
	}
	assert.Equal(t, 0, report.Overview.ActiveUsers)
}

func TestBuildReport_RecentCountsIntradayRows(t *testing.T) {
	engine := NewEngine()

	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(0), MinutesPast: 5, Sessions: 3},
		{Website: "site_a", EventDate: day(0), MinutesPast: 30, Sessions: 2},
		{Website: "site_a", EventDate: day(0), MinutesPast: 31, Sessions: 9},
	}

	report, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Websites[0].Last30Min)
	assert.Equal(t, 5, report.Overview.ActiveUsers)

	// Today still counts all three rows
	assert.Equal(t, 14, report.Websites[0].Today)
}

func TestBuildReport_PivotWindowNeverOverlapsTodayOrYesterday(t *testing.T) {
	engine := NewEngine()

	report, err := engine.BuildReport(nil, testWebsites(), testNow)
	require.NoError(t, err)

	require.Len(t, report.PivotDates, 5)
	assert.Equal(t, day(-2), report.PivotDates[0].Date, "columns are newest first")
	assert.Equal(t, day(-6), report.PivotDates[4].Date)
	assert.Equal(t, "13/06", report.PivotDates[0].Label)

	for _, pd := range report.PivotDates {
		assert.NotEqual(t, day(0), pd.Date)
		assert.NotEqual(t, day(-1), pd.Date)
	}
}

func TestBuildReport_PivotCellsZeroFilled(t *testing.T) {
	engine := NewEngine()

	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(-2), MinutesPast: domain.HistoricalMinutesPast, Sessions: 4},
		{Website: "site_a", EventDate: day(-6), MinutesPast: domain.HistoricalMinutesPast, Sessions: 1},
		// Today and yesterday rows must not leak into the pivot
		{Website: "site_a", EventDate: day(0), MinutesPast: domain.HistoricalMinutesPast, Sessions: 100},
		{Website: "site_a", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Sessions: 100},
	}

	report, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 0, 0, 0, 1}, report.Websites[0].Days)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, report.Websites[1].Days)
	assert.Equal(t, []int{4, 0, 0, 0, 1}, report.Totals.Days)
}

func TestBuildReport_SessionCountConservation(t *testing.T) {
	engine := NewEngine()

	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Country: "Germany", Sessions: 7},
		{Website: "site_a", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Country: "France", Sessions: 3},
		{Website: "site_b", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Country: "Germany", Sessions: 5},
		{Website: "site_b", EventDate: day(0), MinutesPast: 10, Country: "Spain", Sessions: 2},
	}

	report, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	// Per-website rollups sum exactly the window's source rows, never more
	assert.Equal(t, 10, report.Websites[0].Yesterday)
	assert.Equal(t, 5, report.Websites[1].Yesterday)
	assert.Equal(t, 15, report.Totals.Yesterday)

	assert.Equal(t, 2, report.Websites[1].Today)
	assert.Equal(t, 2, report.Totals.Today)
	assert.Equal(t, 2, report.Totals.Last30Min)
}

func TestBuildReport_AccountRollup(t *testing.T) {
	engine := NewEngine()

	websites := []domain.Website{
		{Number: 1, Name: "site_a", Monetization: domain.MonetizationActive, Account: "X"},
		{Number: 2, Name: "site_b", Monetization: domain.MonetizationActive, Account: ""},
		{Number: 3, Name: "site_c", Monetization: domain.MonetizationReview, Account: "Z"},
		{Number: 4, Name: "site_d", Monetization: domain.MonetizationActive, Account: "X"},
	}

	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Sessions: 5},
		{Website: "site_b", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Sessions: 20},
		{Website: "site_c", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Sessions: 50},
		{Website: "site_d", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Sessions: 4},
	}

	report, err := engine.BuildReport(events, websites, testNow)
	require.NoError(t, err)

	// Only ACTIVE websites count; empty account maps to Unknown; order is desc
	require.Len(t, report.AccountsYesterday, 2)
	assert.Equal(t, domain.AccountTotal{Account: domain.AccountUnknown, Sessions: 20}, report.AccountsYesterday[0])
	assert.Equal(t, domain.AccountTotal{Account: "X", Sessions: 9}, report.AccountsYesterday[1])

	assert.Empty(t, report.AccountsToday, "no monetized traffic today yields no rows")
}

func TestBuildReport_TopCategoriesStableTieBreak(t *testing.T) {
	engine := NewEngine()

	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(0), MinutesPast: 3, Country: "Brazil", Sessions: 5},
		{Website: "site_a", EventDate: day(0), MinutesPast: 4, Country: "Chile", Sessions: 5},
		{Website: "site_a", EventDate: day(0), MinutesPast: 5, Country: "Peru", Sessions: 5},
		{Website: "site_a", EventDate: day(0), MinutesPast: 6, Country: "Cuba", Sessions: 5},
	}

	first, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)
	second, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	// Ties keep input order and are reproducible across runs
	want := []domain.CategoryCount{
		{Name: "Brazil", Sessions: 5},
		{Name: "Chile", Sessions: 5},
		{Name: "Peru", Sessions: 5},
	}
	assert.Equal(t, want, first.Overview.TopCountries)
	assert.Equal(t, first.Overview.TopCountries, second.Overview.TopCountries)
}

func TestBuildReport_TopLandingPagesAndSources(t *testing.T) {
	engine := NewEngine()

	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, LandingPage: "/home", SessionSource: "google", Sessions: 8},
		{Website: "site_a", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, LandingPage: "/pricing", SessionSource: "google", Sessions: 2},
		{Website: "site_a", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, LandingPage: "/home", SessionSource: "facebook", Sessions: 3},
		// Today's rows are outside the yesterday breakdowns
		{Website: "site_a", EventDate: day(0), MinutesPast: 10, LandingPage: "/blog", SessionSource: "tiktok", Sessions: 99},
	}

	report, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	require.NotEmpty(t, report.Sites)
	panel := report.Sites[0]
	require.Equal(t, "site_a", panel.Website)

	require.Len(t, panel.TopLandingPages, 2)
	assert.Equal(t, domain.CategoryCount{Name: "/home", Sessions: 11}, panel.TopLandingPages[0])
	assert.Equal(t, domain.CategoryCount{Name: "/pricing", Sessions: 2}, panel.TopLandingPages[1])

	require.Len(t, panel.TopSources, 2)
	assert.Equal(t, domain.CategoryCount{Name: "google", Sessions: 10}, panel.TopSources[0])
	assert.Equal(t, domain.CategoryCount{Name: "facebook", Sessions: 3}, panel.TopSources[1])
}

func TestBuildReport_SourceTrendFixedSetAndZeroFill(t *testing.T) {
	engine := NewEngine()

	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(-6), MinutesPast: domain.HistoricalMinutesPast, SessionSource: "google", Sessions: 30},
		{Website: "site_a", EventDate: day(-3), MinutesPast: domain.HistoricalMinutesPast, SessionSource: "facebook", Sessions: 20},
		{Website: "site_a", EventDate: day(-3), MinutesPast: domain.HistoricalMinutesPast, SessionSource: "bing", Sessions: 10},
		{Website: "site_a", EventDate: day(-3), MinutesPast: domain.HistoricalMinutesPast, SessionSource: "duckduckgo", Sessions: 1},
		// Outside the 7-day window: must not influence the top-3 set
		{Website: "site_a", EventDate: day(-10), MinutesPast: domain.HistoricalMinutesPast, SessionSource: "duckduckgo", Sessions: 1000},
	}

	report, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	trend := report.Sites[0].SourceTrend
	require.Len(t, trend, 3)

	sources := []string{trend[0].Source, trend[1].Source, trend[2].Source}
	assert.Equal(t, []string{"google", "facebook", "bing"}, sources)

	for _, series := range trend {
		require.Len(t, series.Daily, 7, "every series spans the full window")
		assert.Equal(t, day(-6), series.Daily[0].Date)
		assert.Equal(t, day(0), series.Daily[6].Date)
	}

	// google has data only on day -6; the rest of its series is zero-filled
	assert.Equal(t, 30, trend[0].Daily[0].Sessions)
	for _, p := range trend[0].Daily[1:] {
		assert.Equal(t, 0, p.Sessions)
	}
}

func TestBuildReport_PerMinuteSeries(t *testing.T) {
	engine := NewEngine()

	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(0), MinutesPast: 0, Sessions: 2},
		{Website: "site_a", EventDate: day(0), MinutesPast: 12, Sessions: 4},
	}

	report, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	series := report.Overview.PerMinute
	require.Len(t, series, 31)
	assert.Equal(t, 2, series[0].Sessions)
	assert.Equal(t, 4, series[12].Sessions)
	assert.Equal(t, 0, series[30].Sessions)
}

func TestBuildReport_SitePanelOrder(t *testing.T) {
	engine := NewEngine()

	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Sessions: 1},
		{Website: "site_b", EventDate: day(-1), MinutesPast: domain.HistoricalMinutesPast, Sessions: 50},
	}

	report, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	require.Len(t, report.Sites, 2)
	assert.Equal(t, "site_b", report.Sites[0].Website)
	assert.Equal(t, "site_a", report.Sites[1].Website)
}

func TestBuildReport_RejectsMalformedInput(t *testing.T) {
	engine := NewEngine()

	t.Run("negative sessions", func(t *testing.T) {
		events := []domain.EventRecord{
			{Website: "site_a", EventDate: day(0), MinutesPast: 10, Sessions: -1},
		}
		_, err := engine.BuildReport(events, testWebsites(), testNow)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative session count")
	})

	t.Run("duplicate website in config", func(t *testing.T) {
		websites := append(testWebsites(), domain.Website{Number: 3, Name: "site_a"})
		_, err := engine.BuildReport(nil, websites, testNow)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate website")
	})

	t.Run("empty website name in config", func(t *testing.T) {
		websites := []domain.Website{{Number: 9}}
		_, err := engine.BuildReport(nil, websites, testNow)
		require.Error(t, err)
	})
}

func TestBuildReport_EmptyConfigKeepsSummaryDaysZeroFilled(t *testing.T) {
	engine := NewEngine()

	report, err := engine.BuildReport(nil, nil, testNow)
	require.NoError(t, err)

	// Summary Days must stay a full zero pivot row, never nil
	assert.Equal(t, []int{0, 0, 0, 0, 0}, report.Totals.Days)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, report.MonetizedTotals.Days)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, report.NonMonetizedTotals.Days)
}

func TestBuildReport_RecentIgnoresNegativeMinutes(t *testing.T) {
	engine := NewEngine()

	// Clock skew between warehouse and API can yield negative minutes_past
	events := []domain.EventRecord{
		{Website: "site_a", EventDate: day(0), MinutesPast: -5, Country: "Brazil", Sessions: 3},
		{Website: "site_a", EventDate: day(0), MinutesPast: 10, Country: "Brazil", Sessions: 2},
	}

	report, err := engine.BuildReport(events, testWebsites(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Websites[0].Last30Min)
	assert.Equal(t, 5, report.Websites[0].Today, "skewed rows still count towards the day")
}
