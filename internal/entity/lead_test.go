package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(day int) *time.Time {
	t := time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func ids(ms []CampaignMembership) []int64 {
	out := make([]int64, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.CampaignID)
	}
	return out
}

func TestSortMembershipsAscendingUnresolvedLast(t *testing.T) {
	ms := []CampaignMembership{
		{CampaignID: 1},
		{CampaignID: 2, EnrolledAt: at(20)},
		{CampaignID: 3},
		{CampaignID: 4, EnrolledAt: at(5)},
		{CampaignID: 5, EnrolledAt: at(12)},
		{CampaignID: 6},
	}

	SortMemberships(ms)

	assert.Equal(t, []int64{4, 5, 2, 1, 3, 6}, ids(ms))
}

func TestSortMembershipsIsIdempotent(t *testing.T) {
	ms := []CampaignMembership{
		{CampaignID: 7, EnrolledAt: at(1)},
		{CampaignID: 8, EnrolledAt: at(1)},
		{CampaignID: 9, EnrolledAt: at(3)},
		{CampaignID: 10},
		{CampaignID: 11},
	}
	want := append([]CampaignMembership(nil), ms...)

	SortMemberships(ms)
	assert.Equal(t, want, ms)

	SortMemberships(ms)
	assert.Equal(t, want, ms)
}

func TestSortMembershipsEqualTimestampsKeepOrder(t *testing.T) {
	ms := []CampaignMembership{
		{CampaignID: 3, EnrolledAt: at(2)},
		{CampaignID: 1, EnrolledAt: at(2)},
		{CampaignID: 2, EnrolledAt: at(1)},
	}
	SortMemberships(ms)
	assert.Equal(t, []int64{2, 3, 1}, ids(ms))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
}

func TestSuggestedSearch(t *testing.T) {
	tests := []struct {
		name string
		ms   []CampaignMembership
		want string
	}{
		{"empty", nil, ""},
		{"last one wins", []CampaignMembership{{CampaignName: "Acme - Intro"}, {CampaignName: "Globex - Followup"}}, "Globex"},
		{"no dash", []CampaignMembership{{CampaignName: "Webinar"}}, "Webinar"},
		{"unnamed", []CampaignMembership{{CampaignName: ""}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestedSearch(tt.ms))
		})
	}
}

func TestHasLeadsCampaign(t *testing.T) {
	lead := &Lead{Campaigns: []CampaignMembership{{CampaignName: "Acme - Intro"}}}
	assert.False(t, lead.HasLeadsCampaign())

	lead.Campaigns = append(lead.Campaigns, CampaignMembership{CampaignName: "Acme - Leads  "})
	assert.True(t, lead.HasLeadsCampaign())
}

func TestProfileURL(t *testing.T) {
	assert.Equal(t, "", (&Lead{}).ProfileURL())
	assert.Equal(t, "https://app.smartlead.ai/app/lead/42/view", (&Lead{ID: 42}).ProfileURL())
}

func TestRosterPageFindIgnoresCase(t *testing.T) {
	page := &RosterPage{Entries: []RosterEntry{
		{Email: "someone@example.com"},
		{Email: "Jane@Example.com", EnrolledAt: at(10)},
	}}

	entry, ok := page.Find("jane@example.com")
	assert.True(t, ok)
	assert.Equal(t, at(10), entry.EnrolledAt)

	_, ok = page.Find("john@example.com")
	assert.False(t, ok)
}
