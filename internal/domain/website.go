package domain

// MonetizationState labels whether a website's traffic is currently monetized.
type MonetizationState string

const (
	MonetizationActive MonetizationState = "ACTIVE"
	MonetizationReview MonetizationState = "REVIEW"
	MonetizationReady  MonetizationState = "READY"
	MonetizationNone   MonetizationState = ""
)

// WebsiteStatusLive is the only status the config source lets through.
const WebsiteStatusLive = "LIVE"

// AccountUnknown is used for monetized websites with no owner recorded.
const AccountUnknown = "Unknown"

// Website is one validated row of the tracked-websites sheet.
type Website struct {
	Number       int               `json:"number"`
	Name         string            `json:"website"`
	Status       string            `json:"status"`
	Monetization MonetizationState `json:"monetization"`
	Account      string            `json:"account"`
	Suffix       string            `json:"suffix"`
}

// IsMonetized reports whether the website counts towards monetized totals.
func (w Website) IsMonetized() bool {
	return w.Monetization == MonetizationActive
}

// OwnerAccount returns the owning account, defaulting to "Unknown".
func (w Website) OwnerAccount() string {
	if w.Account == "" {
		return AccountUnknown
	}
	return w.Account
}
