package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/smartlead-bridge/internal/infra/integration/smartlead"
	"github.com/xavierca1/smartlead-bridge/internal/usecase"
)

// APIKeyHeader lets the task pane send its own key instead of the stored one.
const APIKeyHeader = "X-Smartlead-Api-Key"

type CredentialProvider interface {
	APIKey(ctx context.Context, override string) (string, string, error)
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps use case and Smartlead errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var (
		verr  usecase.ValidationError
		verrs usecase.ValidationErrors
		derr  *usecase.DomainError
		rerr  *smartlead.RemoteError
		terr  *usecase.TechnicalError
	)

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  verr.Error(),
			Code:   usecase.CodeInvalidInput,
			Fields: map[string]string{verr.Field: verr.Message},
		})
	case errors.As(err, &verrs):
		fields := make(map[string]string, len(verrs))
		for _, e := range verrs {
			fields[e.Field] = e.Message
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verrs.Error(), Code: usecase.CodeInvalidInput, Fields: fields})
	case errors.As(err, &derr):
		status := http.StatusBadRequest
		if derr.Code == usecase.CodeMissingAPIKey {
			status = http.StatusUnauthorized
		}
		writeJSON(w, status, ErrorResponse{Error: derr.Message, Code: derr.Code})
	case errors.As(err, &rerr):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: rerr.Message, Code: "REMOTE_ERROR"})
	case errors.As(err, &terr):
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: terr.Message, Code: terr.Code})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func apiKey(r *http.Request, creds CredentialProvider) (string, error) {
	key, _, err := creds.APIKey(r.Context(), r.Header.Get(APIKeyHeader))
	return key, err
}
