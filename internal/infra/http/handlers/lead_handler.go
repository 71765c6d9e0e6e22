package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/smartlead-bridge/internal/usecase"
)

type ResolveLeadExecutor interface {
	Execute(ctx context.Context, input usecase.ResolveLeadInput) (*usecase.ResolveLeadOutput, error)
}

type AddLeadExecutor interface {
	Execute(ctx context.Context, input usecase.AddLeadInput) (*usecase.AddLeadOutput, error)
}

type LeadHandler struct {
	ResolveLeadUC ResolveLeadExecutor
	AddLeadUC     AddLeadExecutor
	Credentials   CredentialProvider
}

func NewLeadHandler(resolve ResolveLeadExecutor, add AddLeadExecutor, creds CredentialProvider) *LeadHandler {
	return &LeadHandler{
		ResolveLeadUC: resolve,
		AddLeadUC:     add,
		Credentials:   creds,
	}
}

type LeadStatusResponse struct {
	Exists bool `json:"exists"`
	*usecase.ResolveLeadOutput
}

// GetLead (GET /leads?email=) answers 200 whether or not the lead exists.
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	key, err := apiKey(r, h.Credentials)
	if err != nil {
		writeError(w, err)
		return
	}

	output, err := h.ResolveLeadUC.Execute(r.Context(), usecase.ResolveLeadInput{
		APIKey: key,
		Email:  r.URL.Query().Get("email"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LeadStatusResponse{Exists: output.Exists(), ResolveLeadOutput: output})
}

type AddLeadRequest struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	CompanyName string `json:"company_name"`
}

// AddToCampaign (POST /campaigns/{id}/leads)
func (h *LeadHandler) AddToCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || campaignID <= 0 {
		writeError(w, usecase.ValidationError{Field: "campaign_id", Message: "must be a positive integer"})
		return
	}

	var req AddLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecase.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	key, err := apiKey(r, h.Credentials)
	if err != nil {
		writeError(w, err)
		return
	}

	output, err := h.AddLeadUC.Execute(r.Context(), usecase.AddLeadInput{
		APIKey:      key,
		CampaignID:  campaignID,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DisplayName: req.DisplayName,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}
