package smartlead

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func mapCampaigns(in []campaignResponse) []entity.Campaign {
	out := make([]entity.Campaign, 0, len(in))
	for _, c := range in {
		out = append(out, entity.Campaign{ID: int64(c.ID), Name: c.Name, Status: c.Status})
	}
	return out
}

func mapLead(in leadResponse) *entity.Lead {
	lead := &entity.Lead{
		ID:           int64(in.ID),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CompanyName:  in.CompanyName,
		CustomFields: in.CustomFields,
		Campaigns:    make([]entity.CampaignMembership, 0, len(in.LeadCampaignData)),
	}
	for _, raw := range in.LeadCampaignData {
		lead.Campaigns = append(lead.Campaigns, mapMembership(raw))
	}
	return lead
}

// mapMembership keeps every field it does not know about in Attributes.
func mapMembership(raw map[string]json.RawMessage) entity.CampaignMembership {
	var m entity.CampaignMembership
	for key, value := range raw {
		switch key {
		case "campaign_id":
			var id flexInt
			if err := json.Unmarshal(value, &id); err == nil {
				m.CampaignID = int64(id)
			}
		case "campaign_name":
			var name string
			if err := json.Unmarshal(value, &name); err == nil {
				m.CampaignName = name
			}
		default:
			var v any
			if err := json.Unmarshal(value, &v); err != nil {
				continue
			}
			if m.Attributes == nil {
				m.Attributes = make(map[string]any)
			}
			m.Attributes[key] = v
		}
	}
	return m
}

func mapRosterPage(campaignID int64, offset int, in rosterResponse) *entity.RosterPage {
	page := &entity.RosterPage{
		CampaignID: campaignID,
		Offset:     offset,
		Total:      int(in.TotalLeads),
		Entries:    make([]entity.RosterEntry, 0, len(in.Data)),
	}
	for _, e := range in.Data {
		page.Entries = append(page.Entries, entity.RosterEntry{
			Email:      e.Lead.Email,
			EnrolledAt: parseTimestamp(e.CreatedAt),
		})
	}
	return page
}

func mapAddLeadResult(in addLeadsResponse) *entity.AddLeadResult {
	success := true
	if in.Success != nil {
		success = *in.Success
	} else if in.OK != nil {
		success = *in.OK
	}
	return &entity.AddLeadResult{
		Success:        success,
		UploadCount:    int(in.UploadCount),
		AlreadyAdded:   int(in.AlreadyAdded),
		DuplicateCount: int(in.DuplicateCount),
		InvalidEmails:  int(in.InvalidEmails),
		TotalLeads:     int(in.TotalLeads),
	}
}
