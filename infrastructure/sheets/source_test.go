package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weblytics/traffic-dashboard-api/internal/config"
	"github.com/weblytics/traffic-dashboard-api/internal/domain"
	"github.com/weblytics/traffic-dashboard-api/pkg/log"
)

const rosterCSV = `"Number","Website","Notes","Owner Notes","Status","Monetization","Account","Suffix"
"1","site_a","","","LIVE","ACTIVE","X","111"
"2","site_b","","","LIVE","REVIEW","","222"
"3","site_c","","","PAUSED","ACTIVE","X","333"
"4","site_d","","","LIVE","ACTIVE","Y",""
"abc","site_e","","","LIVE","ACTIVE","Y","555"
"6","","","","LIVE","ACTIVE","Y","666"
"7","site_g","",""
"8","site_h","","","LIVE","READY","Z","888"
`

func newTestSource(t *testing.T, handler http.HandlerFunc) *Source {
	t.Helper()
	log.SetupTestLogger()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Sheets.BaseURL = server.URL
	cfg.Sheets.SheetID = "sheet-id"
	cfg.Sheets.Worksheet = "Websites"

	return NewSource(cfg)
}

func TestFetchWebsites(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sheet-id/gviz/tq", r.URL.Path)
		assert.Equal(t, "out:csv", r.URL.Query().Get("tqx"))
		assert.Equal(t, "Websites", r.URL.Query().Get("sheet"))

		_, _ = w.Write([]byte(rosterCSV))
	})

	websites, err := source.FetchWebsites(context.Background())
	assert.NoError(t, err)

	// Only LIVE rows with a suffix survive; malformed rows are skipped.
	assert.Equal(t, []domain.Website{
		{Number: 1, Name: "site_a", Status: "LIVE", Monetization: domain.MonetizationActive, Account: "X", Suffix: "111"},
		{Number: 2, Name: "site_b", Status: "LIVE", Monetization: domain.MonetizationReview, Account: "", Suffix: "222"},
		{Number: 8, Name: "site_h", Status: "LIVE", Monetization: domain.MonetizationReady, Account: "Z", Suffix: "888"},
	}, websites)
}

func TestFetchWebsitesUpstreamFailure(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	websites, err := source.FetchWebsites(context.Background())
	assert.Error(t, err)
	assert.Nil(t, websites)
	assert.Contains(t, err.Error(), "unexpected status 503")
}
