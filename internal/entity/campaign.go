package entity

import (
	"sort"
	"strings"
)

const (
	CampaignStatusActive   = "ACTIVE"
	CampaignStatusArchived = "ARCHIVED"
)

type Campaign struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (c Campaign) Archived() bool {
	return strings.EqualFold(c.Status, CampaignStatusArchived)
}

// FilterActiveCampaigns drops archived campaigns and sorts the rest by name.
func FilterActiveCampaigns(campaigns []Campaign) []Campaign {
	active := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if !c.Archived() {
			active = append(active, c)
		}
	}
	SortCampaignsByName(active)
	return active
}

func SortCampaignsByName(campaigns []Campaign) {
	sort.SliceStable(campaigns, func(i, j int) bool {
		return strings.ToLower(campaigns[i].Name) < strings.ToLower(campaigns[j].Name)
	})
}

// SearchCampaigns keeps campaigns whose name contains every whitespace
// separated term of query, ignoring case. A blank query keeps everything.
func SearchCampaigns(campaigns []Campaign, query string) []Campaign {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return campaigns
	}

	matched := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		name := strings.ToLower(c.Name)
		ok := true
		for _, term := range terms {
			if !strings.Contains(name, term) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, c)
		}
	}
	return matched
}
