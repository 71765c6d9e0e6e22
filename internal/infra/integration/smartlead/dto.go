package smartlead

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// flexInt decodes ids and counters that Smartlead sends either as JSON
// numbers or as strings.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("smartlead: invalid integer %q: %w", s, err)
		}
		*f = flexInt(n)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	i, err := n.Int64()
	if err != nil {
		fl, ferr := n.Float64()
		if ferr != nil {
			return err
		}
		i = int64(fl)
	}
	*f = flexInt(i)
	return nil
}

type campaignResponse struct {
	ID     flexInt `json:"id"`
	Name   string  `json:"name"`
	Status string  `json:"status"`
}

type leadResponse struct {
	ID               flexInt                      `json:"id"`
	Email            string                       `json:"email"`
	FirstName        string                       `json:"first_name"`
	LastName         string                       `json:"last_name"`
	CompanyName      string                       `json:"company_name"`
	CustomFields     map[string]any               `json:"custom_fields"`
	LeadCampaignData []map[string]json.RawMessage `json:"lead_campaign_data"`
}

type rosterResponse struct {
	Data       []rosterEntryResponse `json:"data"`
	TotalLeads flexInt               `json:"total_leads"`
	Offset     flexInt               `json:"offset"`
	Limit      flexInt               `json:"limit"`
}

type rosterEntryResponse struct {
	CampaignLeadMapID flexInt `json:"campaign_lead_map_id"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
	Lead              struct {
		ID    flexInt `json:"id"`
		Email string  `json:"email"`
	} `json:"lead"`
}

type addLeadsRequest struct {
	LeadList []leadInput `json:"lead_list"`
}

type leadInput struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name,omitempty"`
}

type addLeadsResponse struct {
	OK             *bool   `json:"ok"`
	Success        *bool   `json:"success"`
	UploadCount    flexInt `json:"upload_count"`
	TotalLeads     flexInt `json:"total_leads"`
	AlreadyAdded   flexInt `json:"already_added_to_campaign"`
	DuplicateCount flexInt `json:"duplicate_count"`
	InvalidEmails  flexInt `json:"invalid_email_count"`
	Message        string  `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
