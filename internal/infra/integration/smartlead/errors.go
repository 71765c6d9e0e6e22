package smartlead

import (
	"errors"
	"fmt"
)

// RemoteError is a failed Smartlead call the caller has to know about.
// Message carries the upstream message when the API sent one.
type RemoteError struct {
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

var fallbackMessages = map[string]string{
	opListCampaigns: "Failed to fetch campaigns",
	opGetLead:       "Failed to fetch lead",
	opGetRoster:     "Failed to fetch campaign leads",
	opAddLead:       "Failed to add lead to campaign",
}

func newRemoteError(op string, status int, upstream string, err error) *RemoteError {
	msg := upstream
	if msg == "" {
		msg = fallbackMessages[op]
	}
	return &RemoteError{Operation: op, StatusCode: status, Message: msg, Err: err}
}
