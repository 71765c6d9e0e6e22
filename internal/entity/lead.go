package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const profileURLFormat = "https://app.smartlead.ai/app/lead/%d/view"

// Lead is a person tracked by Smartlead, keyed by email.
type Lead struct {
	ID           int64                `json:"id"`
	Email        string               `json:"email"`
	FirstName    string               `json:"first_name,omitempty"`
	LastName     string               `json:"last_name,omitempty"`
	CompanyName  string               `json:"company_name,omitempty"`
	CustomFields map[string]any       `json:"custom_fields,omitempty"`
	Campaigns    []CampaignMembership `json:"lead_campaign_data"`
}

// CampaignMembership links a lead to one campaign. EnrolledAt stays nil
// until the campaign roster confirms when the lead was added.
type CampaignMembership struct {
	CampaignID   int64          `json:"campaign_id"`
	CampaignName string         `json:"campaign_name"`
	EnrolledAt   *time.Time     `json:"created_at,omitempty"`
	Attributes   map[string]any `json:"attributes,omitempty"`
}

// Resolved reports whether the enrollment timestamp is known.
func (m CampaignMembership) Resolved() bool {
	return m.EnrolledAt != nil
}

func (l *Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

func (l *Lead) ProfileURL() string {
	if l.ID == 0 {
		return ""
	}
	return fmt.Sprintf(profileURLFormat, l.ID)
}

// SuggestedSearch returns the campaign name prefix (text before the first
// "-") of the last membership. Call it before SortMemberships: the order
// Smartlead returns is the one that counts.
func SuggestedSearch(ms []CampaignMembership) string {
	if len(ms) == 0 {
		return ""
	}
	name := ms[len(ms)-1].CampaignName
	if name == "" {
		return ""
	}
	prefix, _, _ := strings.Cut(name, "-")
	return strings.TrimSpace(prefix)
}

// HasLeadsCampaign reports whether any membership belongs to a "- Leads" campaign.
func (l *Lead) HasLeadsCampaign() bool {
	for _, m := range l.Campaigns {
		if strings.HasSuffix(strings.TrimSpace(m.CampaignName), "- Leads") {
			return true
		}
	}
	return false
}

// NormalizeEmail is the comparison key for roster matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SortMemberships orders memberships by enrollment time ascending. Unresolved
// memberships go last and keep their relative order.
func SortMemberships(ms []CampaignMembership) {
	sort.SliceStable(ms, func(i, j int) bool {
		a, b := ms[i].EnrolledAt, ms[j].EnrolledAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}
