package entity

import "time"

// RosterEntry is one lead enrolled in a campaign.
type RosterEntry struct {
	Email      string
	EnrolledAt *time.Time
}

// RosterPage is a slice of a campaign roster. Total is the roster size the
// API reports; zero when missing.
type RosterPage struct {
	CampaignID int64
	Offset     int
	Entries    []RosterEntry
	Total      int
}

// Find returns the entry whose email matches, ignoring case.
func (p *RosterPage) Find(email string) (RosterEntry, bool) {
	key := NormalizeEmail(email)
	for _, e := range p.Entries {
		if NormalizeEmail(e.Email) == key {
			return e, true
		}
	}
	return RosterEntry{}, false
}
