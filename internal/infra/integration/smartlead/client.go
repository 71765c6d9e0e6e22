package smartlead

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

const (
	DefaultBaseURL = "https://server.smartlead.ai/api/v1"
	DefaultTimeout = 10 * time.Second
	MaxPageSize    = 100

	opListCampaigns = "list_campaigns"
	opGetLead       = "get_lead"
	opGetRoster     = "get_campaign_leads"
	opAddLead       = "add_lead"
)

// Client talks to the Smartlead REST API. It holds no credential: every
// call receives the API key explicitly.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListCampaigns returns every campaign of the account. Empty is fine.
func (c *Client) ListCampaigns(ctx context.Context, apiKey string) ([]entity.Campaign, error) {
	var campaigns []campaignResponse
	if err := c.do(ctx, opListCampaigns, http.MethodGet, "/campaigns", apiKey, nil, nil, &campaigns); err != nil {
		return nil, err
	}
	return mapCampaigns(campaigns), nil
}

// GetLeadByEmail returns nil, nil when Smartlead has no lead for the email.
func (c *Client) GetLeadByEmail(ctx context.Context, apiKey, email string) (*entity.Lead, error) {
	query := url.Values{}
	query.Set("email", email)

	var raw json.RawMessage
	err := c.do(ctx, opGetLead, http.MethodGet, "/leads/", apiKey, query, nil, &raw)
	if err != nil {
		var re *RemoteError
		if errors.As(err, &re) && re.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	// A found lead is a single object carrying an id; anything else means absent.
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, nil
	}
	var lead leadResponse
	if err := json.Unmarshal(trimmed, &lead); err != nil {
		return nil, newRemoteError(opGetLead, 0, "", fmt.Errorf("decode lead: %w", err))
	}
	if lead.ID == 0 {
		return nil, nil
	}
	return mapLead(lead), nil
}

// GetCampaignLeads fetches one roster page of a campaign.
func (c *Client) GetCampaignLeads(ctx context.Context, apiKey string, campaignID int64, offset, limit int) (*entity.RosterPage, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var roster rosterResponse
	path := fmt.Sprintf("/campaigns/%d/leads", campaignID)
	if err := c.do(ctx, opGetRoster, http.MethodGet, path, apiKey, query, nil, &roster); err != nil {
		return nil, err
	}
	return mapRosterPage(campaignID, offset, roster), nil
}

// AddLeadToCampaign uploads one lead. Smartlead updates a lead that is
// already enrolled instead of duplicating it.
func (c *Client) AddLeadToCampaign(ctx context.Context, apiKey string, campaignID int64, lead entity.NewLead) (*entity.AddLeadResult, error) {
	payload := addLeadsRequest{
		LeadList: []leadInput{{
			Email:       lead.Email,
			FirstName:   lead.FirstName,
			LastName:    lead.LastName,
			CompanyName: lead.CompanyName,
		}},
	}

	var response addLeadsResponse
	path := fmt.Sprintf("/campaigns/%d/leads", campaignID)
	if err := c.do(ctx, opAddLead, http.MethodPost, path, apiKey, nil, payload, &response); err != nil {
		return nil, err
	}

	result := mapAddLeadResult(response)
	if !result.Success {
		return nil, newRemoteError(opAddLead, 0, response.Message, nil)
	}
	return result, nil
}

// do runs one request under its own timeout and decodes the JSON body into out.
func (c *Client) do(ctx context.Context, op, method, path, apiKey string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", apiKey)
	endpoint := c.baseURL + path + "?" + query.Encode()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return newRemoteError(op, 0, "", fmt.Errorf("marshal request: %w", err))
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return newRemoteError(op, 0, "", err)
	}
	c.setHeaders(req, apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return newRemoteError(op, 0, "", fmt.Errorf("request smartlead: %w", err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newRemoteError(op, resp.StatusCode, "", fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRemoteError(op, resp.StatusCode, upstreamMessage(data), nil)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newRemoteError(op, resp.StatusCode, "", fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, apiKey string) {
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "SmartleadBridge/1.0")
}

func upstreamMessage(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
