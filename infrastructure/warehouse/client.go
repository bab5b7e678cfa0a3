package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/weblytics/traffic-dashboard-api/infrastructure/database/postgres"
	"github.com/weblytics/traffic-dashboard-api/internal/config"
	"github.com/weblytics/traffic-dashboard-api/internal/domain"
	"github.com/weblytics/traffic-dashboard-api/pkg/log"
	"github.com/weblytics/traffic-dashboard-api/pkg/utils"
)

const billingWindowDays = 30

// Client reads session-level analytics and billing usage from the warehouse.
type Client struct {
	conn *postgres.Connection
	cfg  *config.Config
	now  func() time.Time
}

func NewClient(conn *postgres.Connection, cfg *config.Config) *Client {
	return &Client{
		conn: conn,
		cfg:  cfg,
		now:  time.Now,
	}
}

// FetchWebsiteEvents returns the attributed session rows for one website
// dataset. Websites created recently may not have an intraday partition yet;
// in that case the query falls back to the finalized daily partitions, whose
// rows carry the 1440 minutes sentinel.
func (c *Client) FetchWebsiteEvents(ctx context.Context, suffix string) ([]domain.EventRecord, error) {
	dataset := c.cfg.Warehouse.DatasetPrefix + suffix

	records, err := c.queryEvents(ctx, fmt.Sprintf(analyticsQuery, dataset))
	if err != nil && isMissingIntradayErr(err) {
		log.L.WithFields(log.Fields{
			"dataset": dataset,
		}).Warn("intraday partition missing, falling back to daily partitions")

		records, err = c.queryEvents(ctx, fmt.Sprintf(historicalAnalyticsQuery, dataset))
	}

	if err != nil {
		return nil, errors.Wrapf(err, "querying analytics events for dataset %s", dataset)
	}

	return c.dropStaleIntraday(records), nil
}

func (c *Client) queryEvents(ctx context.Context, query string) ([]domain.EventRecord, error) {
	rows, err := c.conn.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.EventRecord

	for rows.Next() {
		var (
			record      domain.EventRecord
			landingPage sql.NullString
			country     sql.NullString
			source      sql.NullString
		)

		err := rows.Scan(&landingPage, &record.MinutesPast, &country, &record.EventDate, &source, &record.Sessions)
		if err != nil {
			return nil, err
		}

		record.LandingPage = landingPage.String
		record.SessionSource = source.String
		record.Country = country.String
		if record.Country == "" {
			record.Country = domain.CountryNotSet
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

// dropStaleIntraday removes rows claiming to be within the live window while
// dated on a past day. Such rows would leak old sessions into the active-users
// figure, so they are logged and discarded.
func (c *Client) dropStaleIntraday(records []domain.EventRecord) []domain.EventRecord {
	today := utils.DayOf(c.now())

	kept := records[:0]
	for _, record := range records {
		if record.MinutesPast <= domain.RecentWindowMinutes && !utils.SameDay(record.EventDate, today) {
			log.L.WithFields(log.Fields{
				"event_date":   record.EventDate.Format(time.DateOnly),
				"minutes_past": record.MinutesPast,
			}).Warn("discarding live-window row dated on a past day")

			continue
		}

		kept = append(kept, record)
	}

	return kept
}

// FetchBillingUsage returns the daily billed volume, in gigabytes, covering the
// cost monitor window plus the earlier days of the window's first month so the
// month-to-date series starts from the true month total.
func (c *Client) FetchBillingUsage(ctx context.Context) ([]domain.BillingRow, error) {
	windowStart := utils.DayOf(c.now()).AddDate(0, 0, -(billingWindowDays - 1))
	from := utils.MonthStart(windowStart)

	query, args, err := squirrel.
		Select(
			"creation_time::date AS usage_date",
			"SUM(total_bytes_billed / 1000000000.0) AS gigs_billed",
		).
		From("warehouse_jobs").
		Where(squirrel.GtOrEq{"creation_time": from}).
		GroupBy("usage_date").
		OrderBy("usage_date").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building billing usage query")
	}

	rows, err := c.conn.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying billing usage")
	}
	defer rows.Close()

	var billing []domain.BillingRow

	for rows.Next() {
		var row domain.BillingRow

		if err := rows.Scan(&row.Date, &row.GigsBilled); err != nil {
			return nil, err
		}

		billing = append(billing, row)
	}

	return billing, rows.Err()
}

// isMissingIntradayErr recognizes the warehouse error raised when a dataset
// has daily partitions but no intraday one yet.
func isMissingIntradayErr(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()

	return strings.Contains(msg, "does not match any table") && strings.Contains(msg, "events_intraday")
}
