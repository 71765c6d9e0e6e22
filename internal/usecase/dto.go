package usecase

import "github.com/xavierca1/smartlead-bridge/internal/entity"

// LookupOutcome says why a reconciliation produced, or did not produce, a lead.
type LookupOutcome string

const (
	OutcomeFound        LookupOutcome = "found"
	OutcomeNotFound     LookupOutcome = "not_found"
	OutcomeLookupFailed LookupOutcome = "lookup_failed"
)

type ResolveLeadInput struct {
	APIKey string `json:"-"`
	Email  string `json:"email"`
}

// ResolveLeadOutput carries a nil Lead both when Smartlead has no such lead
// and when the lookup failed. Outcome tells them apart.
type ResolveLeadOutput struct {
	Email            string        `json:"email"`
	Outcome          LookupOutcome `json:"outcome"`
	Lead             *entity.Lead  `json:"lead,omitempty"`
	ProfileURL       string        `json:"profile_url,omitempty"`
	SuggestedSearch  string        `json:"suggested_search,omitempty"`
	HasLeadsCampaign bool          `json:"has_leads_campaign"`
}

func (o *ResolveLeadOutput) Exists() bool {
	return o.Lead != nil
}

type ListCampaignsInput struct {
	APIKey          string `json:"-"`
	Query           string `json:"q"`
	IncludeArchived bool   `json:"include_archived"`
}

type ListCampaignsOutput struct {
	Campaigns []entity.Campaign `json:"campaigns"`
	Total     int               `json:"total"`
	// AutoSelectedID is set when exactly one campaign matches the query.
	AutoSelectedID int64 `json:"auto_selected_id,omitempty"`
}

type AddLeadInput struct {
	APIKey      string `json:"-"`
	CampaignID  int64  `json:"campaign_id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	CompanyName string `json:"company_name"`
}

type AddLeadOutput struct {
	CampaignID int64                 `json:"campaign_id"`
	Email      string                `json:"email"`
	Msg        string                `json:"msg"`
	Result     *entity.AddLeadResult `json:"result"`
	EventID    string                `json:"event_id,omitempty"`
}

type SettingsStatus struct {
	Configured bool   `json:"configured"`
	MaskedKey  string `json:"masked_key,omitempty"`
	Source     string `json:"source,omitempty"`
}
