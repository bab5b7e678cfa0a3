package domain

import "time"

// DateCount is one point of a daily series.
type DateCount struct {
	Date     time.Time `json:"date"`
	Sessions int       `json:"sessions"`
}

// MinuteCount is one point of the 0..30 minutes-past activity series.
type MinuteCount struct {
	Minute   int `json:"minute"`
	Sessions int `json:"sessions"`
}

// CategoryCount is one entry of a ranked categorical breakdown
// (country, landing page or traffic source).
type CategoryCount struct {
	Name     string `json:"name"`
	Sessions int    `json:"sessions"`
}

// AccountTotal is the session total of one owning account.
type AccountTotal struct {
	Account  string `json:"account"`
	Sessions int    `json:"sessions"`
}

// PivotDate is one column of the 5-day pivot, newest first, labelled DD/MM.
type PivotDate struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
}

// WebsiteRow is one row of the unified per-website table. Days holds the
// 5-day pivot cells in the same order as TrafficReport.PivotDates.
type WebsiteRow struct {
	Number       int               `json:"number"`
	Website      string            `json:"website"`
	Monetization MonetizationState `json:"monetization"`
	Account      string            `json:"account"`
	Yesterday    int               `json:"yesterday"`
	Today        int               `json:"today"`
	Last30Min    int               `json:"last_30_min"`
	Days         []int             `json:"days"`
}

// SummaryRow aggregates every numeric column of the per-website table over a
// subset of websites (all, monetized-only, non-monetized).
type SummaryRow struct {
	Label     string `json:"label"`
	Yesterday int    `json:"yesterday"`
	Today     int    `json:"today"`
	Last30Min int    `json:"last_30_min"`
	Days      []int  `json:"days"`
}

// SourceSeries is the daily trend of a single traffic source.
type SourceSeries struct {
	Source string      `json:"source"`
	Daily  []DateCount `json:"daily"`
}

// SitePanel carries the chart data of one website's dashboard section. The
// overview panel uses the same shape with Website left empty.
type SitePanel struct {
	Website         string          `json:"website,omitempty"`
	ActiveUsers     int             `json:"active_users"`
	PerMinute       []MinuteCount   `json:"per_minute"`
	Daily           []DateCount     `json:"daily"`
	TopCountries    []CategoryCount `json:"top_countries"`
	TopLandingPages []CategoryCount `json:"top_landing_pages"`
	TopSources      []CategoryCount `json:"top_sources"`
	SourceTrend     []SourceSeries  `json:"source_trend"`
}

// TrafficReport is the full aggregated view one dashboard refresh produces.
// Websites keeps the sheet order; Sites is ordered by total sessions, descending.
type TrafficReport struct {
	GeneratedAt        time.Time      `json:"generated_at"`
	PivotDates         []PivotDate    `json:"pivot_dates"`
	Websites           []WebsiteRow   `json:"websites"`
	Totals             SummaryRow     `json:"totals"`
	MonetizedTotals    SummaryRow     `json:"monetized_totals"`
	NonMonetizedTotals SummaryRow     `json:"non_monetized_totals"`
	AccountsYesterday  []AccountTotal `json:"accounts_yesterday"`
	AccountsToday      []AccountTotal `json:"accounts_today"`
	Overview           SitePanel      `json:"overview"`
	Sites              []SitePanel    `json:"sites"`
}

// HasData reports whether any session at all was counted.
func (r *TrafficReport) HasData() bool {
	if r == nil {
		return false
	}

	for _, row := range r.Websites {
		if row.Yesterday > 0 || row.Today > 0 || row.Last30Min > 0 {
			return true
		}
		for _, d := range row.Days {
			if d > 0 {
				return true
			}
		}
	}

	return false
}
