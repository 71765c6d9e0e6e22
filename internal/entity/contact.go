package entity

import "strings"

// EmailContact is the sender of the message open in the mail client.
type EmailContact struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
}

// ParseDisplayName splits "Jane van Doe" into "Jane" and "van Doe".
// A single word is taken as the first name.
func ParseDisplayName(displayName string) (first, last string) {
	parts := strings.Fields(displayName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// NewContact builds a contact, deriving names from the display name.
func NewContact(email, displayName string) EmailContact {
	if displayName == "" {
		displayName = email
	}
	first, last := ParseDisplayName(displayName)
	return EmailContact{
		Email:       strings.TrimSpace(email),
		DisplayName: displayName,
		FirstName:   first,
		LastName:    last,
	}
}

// NewLead is the payload for enrolling a lead in a campaign.
type NewLead struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name,omitempty"`
}

// AddLeadResult is what Smartlead reports after an upload.
type AddLeadResult struct {
	Success        bool `json:"success"`
	UploadCount    int  `json:"upload_count"`
	AlreadyAdded   int  `json:"already_added_to_campaign"`
	DuplicateCount int  `json:"duplicate_count"`
	InvalidEmails  int  `json:"invalid_email_count"`
	TotalLeads     int  `json:"total_leads"`
}
