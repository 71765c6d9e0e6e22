package usecase

import "errors"

const (
	CodeMissingAPIKey = "MISSING_API_KEY"
	CodeInvalidInput  = "INVALID_INPUT"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError wraps storage and queue failures.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

var ErrMissingAPIKey = &DomainError{Code: CodeMissingAPIKey, Message: "api key not configured"}
