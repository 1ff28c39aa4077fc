package configs

// Facebook holds credentials and endpoints for the Graph API. AccessToken
// and AdAccountID are required; the client refuses to start without them.
// BaseURL is overridable so tests can point the client at a stub server.
type Facebook struct {
	// AccessToken is the Graph API access token.
	AccessToken string `env:"ACCESS_TOKEN"`
	// AdAccountID is the ad account id, including the act_ prefix.
	AdAccountID string `env:"AD_ACCOUNT_ID"`
	// PageID is the page creatives are published on behalf of.
	PageID string `env:"PAGE_ID"`
	// LinkURL is the destination every call to action points at.
	LinkURL string `env:"LINK_URL" envDefault:"https://www.facebook.com"`
	// APIVersion selects the Graph API version segment.
	APIVersion string `env:"API_VERSION" envDefault:"v19.0"`
	// BaseURL is the Graph API origin.
	BaseURL string `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
}
