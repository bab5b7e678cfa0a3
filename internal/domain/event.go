package domain

import "time"

const (
	// CountryNotSet is the placeholder the warehouse emits when a session has no country.
	CountryNotSet = "(not set)"

	// HistoricalMinutesPast is the sentinel carried by finalized daily rows. Rows with
	// this value never count towards the last-30-minutes window.
	HistoricalMinutesPast = 1440

	// RecentWindowMinutes bounds the intraday "active users" window.
	RecentWindowMinutes = 30
)

// EventRecord is one row of the per-website session rollup returned by the
// warehouse: distinct session counts per (landing page, country, source, date,
// minutes since session start). Sessions is always a deduplicated count; every
// aggregation downstream only ever sums it.
type EventRecord struct {
	Website       string    `json:"website"`
	EventDate     time.Time `json:"event_date"`
	MinutesPast   int       `json:"minutes_past"`
	Country       string    `json:"country"`
	LandingPage   string    `json:"landing_page"`
	SessionSource string    `json:"session_source"`
	Sessions      int       `json:"sessions"`
}

// IsRecent reports whether the row belongs to the last-30-minutes window.
// The check is on MinutesPast only; historical rows carry the 1440 sentinel
// and clock-skewed negative values never qualify.
func (e EventRecord) IsRecent() bool {
	return e.MinutesPast >= 0 && e.MinutesPast <= RecentWindowMinutes
}
