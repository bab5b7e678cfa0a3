package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/weblytics/traffic-dashboard-api/internal/config"
	"github.com/weblytics/traffic-dashboard-api/internal/domain"
	"github.com/weblytics/traffic-dashboard-api/pkg/log"
)

// Column positions in the operators' spreadsheet. Columns 2 and 3 hold notes
// the dashboard does not use.
const (
	colNumber       = 0
	colWebsite      = 1
	colStatus       = 4
	colMonetization = 5
	colAccount      = 6
	colSuffix       = 7

	minColumns = colSuffix + 1
)

// Source loads the website roster from a published spreadsheet, fetched as CSV.
type Source struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewSource(cfg *config.Config) *Source {
	return &Source{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchWebsites downloads and parses the roster, keeping only rows marked LIVE
// with a dataset suffix assigned. Malformed rows are logged and skipped rather
// than failing the whole refresh.
func (s *Source) FetchWebsites(ctx context.Context) ([]domain.Website, error) {
	exportURL := fmt.Sprintf(
		"%s/%s/gviz/tq?tqx=out:csv&sheet=%s",
		s.cfg.Sheets.BaseURL,
		s.cfg.Sheets.SheetID,
		url.QueryEscape(s.cfg.Sheets.Worksheet),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building spreadsheet request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching website roster")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetching website roster: unexpected status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parsing website roster")
	}

	return s.parseRows(rows), nil
}

func (s *Source) parseRows(rows [][]string) []domain.Website {
	var websites []domain.Website

	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		website, err := parseRow(row)
		if err != nil {
			log.L.WithFields(log.Fields{
				"row":   i + 1,
				"error": err.Error(),
			}).Warn("skipping malformed roster row")

			continue
		}

		if website.Status != domain.WebsiteStatusLive || website.Suffix == "" {
			continue
		}

		websites = append(websites, website)
	}

	return websites
}

func parseRow(row []string) (domain.Website, error) {
	if len(row) < minColumns {
		return domain.Website{}, errors.Errorf("expected at least %d columns, got %d", minColumns, len(row))
	}

	number, err := strconv.Atoi(strings.TrimSpace(row[colNumber]))
	if err != nil {
		return domain.Website{}, errors.Errorf("invalid website number %q", row[colNumber])
	}

	name := strings.TrimSpace(row[colWebsite])
	if name == "" {
		return domain.Website{}, errors.New("empty website name")
	}

	return domain.Website{
		Number:       number,
		Name:         name,
		Status:       strings.TrimSpace(row[colStatus]),
		Monetization: domain.MonetizationState(strings.TrimSpace(row[colMonetization])),
		Account:      strings.TrimSpace(row[colAccount]),
		Suffix:       strings.TrimSpace(row[colSuffix]),
	}, nil
}
