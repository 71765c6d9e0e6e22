package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is returned when more than one field is wrong.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

func ValidateEmail(email string) *ValidationError {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{"email", "is required"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return &ValidationError{"email", "is invalid"}
	}
	return nil
}

func ValidateAddLeadInput(input AddLeadInput) []ValidationError {
	var errors []ValidationError

	if input.CampaignID <= 0 {
		errors = append(errors, ValidationError{"campaign_id", "is required"})
	}
	if err := ValidateEmail(input.Email); err != nil {
		errors = append(errors, *err)
	}
	if len(input.FirstName) > 200 {
		errors = append(errors, ValidationError{"first_name", "must not exceed 200 characters"})
	}
	if len(input.LastName) > 200 {
		errors = append(errors, ValidationError{"last_name", "must not exceed 200 characters"})
	}

	return errors
}

func validateAPIKey(apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}
