package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/xavierca1/smartlead-bridge/internal/usecase"
)

type SettingsService interface {
	CredentialProvider
	SaveAPIKey(ctx context.Context, apiKey string) error
	Status(ctx context.Context, override string) (*usecase.SettingsStatus, error)
}

type SettingsHandler struct {
	Settings SettingsService
}

func NewSettingsHandler(settings SettingsService) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

type SaveAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

// Get (GET /settings)
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	status, err := h.Settings.Status(r.Context(), r.Header.Get(APIKeyHeader))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// SaveAPIKey (PUT /settings/api-key)
func (h *SettingsHandler) SaveAPIKey(w http.ResponseWriter, r *http.Request) {
	var req SaveAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecase.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	if err := h.Settings.SaveAPIKey(r.Context(), req.APIKey); err != nil {
		writeError(w, err)
		return
	}

	status, err := h.Settings.Status(r.Context(), "")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
