package facebook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Client implements port.GraphClient against the Graph API. Entity-creation
// endpoints answer either {"id": "..."} or {"error": {"message": ...}}; some
// return a body-level error with an HTTP success status, so the client
// branches on the body, not the status code.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	version     string
	accessToken string
	adAccountID string
}

// NewClient builds a Graph client from configuration. It fails with
// domain.ErrMissingCredentials when the access token or ad account id is
// absent, before any remote call can be made.
func NewClient(cfg configs.Facebook) (*Client, error) {
	if cfg.AccessToken == "" || cfg.AdAccountID == "" {
		return nil, domain.ErrMissingCredentials
	}
	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     cfg.BaseURL,
		version:     cfg.APIVersion,
		accessToken: cfg.AccessToken,
		adAccountID: cfg.AdAccountID,
	}, nil
}

type graphError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// endpoint builds a versioned URL with the access token appended.
func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.accessToken)
	return fmt.Sprintf("%s/%s/%s?%s", c.baseURL, c.version, path, params.Encode())
}

func (c *Client) accountPath(collection string) string {
	return fmt.Sprintf("%s/%s", c.adAccountID, collection)
}

// createEntity posts a creation payload and extracts the resulting id. A
// body-level error is wrapped verbatim in a domain.CreationError.
func (c *Client) createEntity(ctx context.Context, entity, collection string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(c.accountPath(collection), nil), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s creation request: %w", entity, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var envelope struct {
		ID    string      `json:"id"`
		Error *graphError `json:"error"`
	}
	if err = json.Unmarshal(raw, &envelope); err != nil {
		return "", &domain.CreationError{Entity: entity, Remote: string(raw)}
	}
	if envelope.Error != nil {
		return "", &domain.CreationError{Entity: entity, Remote: envelope.Error.Message}
	}
	if envelope.ID == "" {
		return "", &domain.CreationError{Entity: entity, Remote: string(raw)}
	}
	return envelope.ID, nil
}

// CreateCampaign creates a campaign and returns its id.
func (c *Client) CreateCampaign(ctx context.Context, req port.CampaignCreateReq) (string, error) {
	return c.createEntity(ctx, "campaign", "campaigns", req)
}

// CreateAdSet creates an ad set and returns its id.
func (c *Client) CreateAdSet(ctx context.Context, req port.AdSetCreateReq) (string, error) {
	return c.createEntity(ctx, "ad set", "adsets", req)
}

// CreateCreative creates an ad creative and returns its id.
func (c *Client) CreateCreative(ctx context.Context, req port.CreativeCreateReq) (string, error) {
	return c.createEntity(ctx, "creative", "adcreatives", req)
}

// CreateAd creates the final ad and returns its id.
func (c *Client) CreateAd(ctx context.Context, req port.AdCreateReq) (string, error) {
	return c.createEntity(ctx, "ad", "ads", req)
}

// get issues a GET against the Graph API and decodes the response into out
// after checking for a body-level error.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, params), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var probe struct {
		Error *graphError `json:"error"`
	}
	if err = json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("unexpected graph response: %s", raw)
	}
	if probe.Error != nil {
		return fmt.Errorf("graph api error: %s", probe.Error.Message)
	}
	return json.Unmarshal(raw, out)
}

// ListPages returns the pages the configured account has a role on.
func (c *Client) ListPages(ctx context.Context) ([]port.Page, error) {
	params := url.Values{}
	params.Set("fields", "name,id")
	var out struct {
		Data []port.Page `json:"data"`
	}
	if err := c.get(ctx, "me/accounts", params, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CampaignInsights returns the last-30-days performance summary for a
// campaign, or nil when the campaign has no stats for the period.
func (c *Client) CampaignInsights(ctx context.Context, campaignID string) (*port.Insights, error) {
	params := url.Values{}
	params.Set("fields", "impressions,reach,spend,clicks,ctr,cpc,actions")
	params.Set("date_preset", "last_30d")
	var out struct {
		Data []port.Insights `json:"data"`
	}
	if err := c.get(ctx, campaignID+"/insights", params, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 {
		return nil, nil
	}
	return &out.Data[0], nil
}
