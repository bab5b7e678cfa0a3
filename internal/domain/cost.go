package domain

import "time"

// FreeTierGiB is the warehouse free-tier quota the usage panel reports against.
const FreeTierGiB = 1024.0

// BillingRow is one raw (date, gigabytes billed) pair from the warehouse
// job-usage metadata.
type BillingRow struct {
	Date       time.Time `json:"date"`
	GigsBilled float64   `json:"gigs_billed"`
}

// CostDay is one day of the usage monitor series. MonthToDate restarts at
// every calendar-month boundary.
type CostDay struct {
	Date        time.Time `json:"date"`
	GigsBilled  float64   `json:"gigs_billed"`
	MonthToDate float64   `json:"month_to_date"`
}

// CostReport is the 30-day warehouse usage view.
type CostReport struct {
	Days          []CostDay `json:"days"`
	TotalGigs     float64   `json:"total_gigs"`
	PctOfFreeTier float64   `json:"pct_of_free_tier"`
}
