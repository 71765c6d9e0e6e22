package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/xavierca1/smartlead-bridge/internal/usecase"
)

type ListCampaignsExecutor interface {
	Execute(ctx context.Context, input usecase.ListCampaignsInput) (*usecase.ListCampaignsOutput, error)
}

type CampaignHandler struct {
	ListCampaignsUC ListCampaignsExecutor
	Credentials     CredentialProvider
}

func NewCampaignHandler(uc ListCampaignsExecutor, creds CredentialProvider) *CampaignHandler {
	return &CampaignHandler{ListCampaignsUC: uc, Credentials: creds}
}

// List (GET /campaigns?q=&include_archived=)
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	key, err := apiKey(r, h.Credentials)
	if err != nil {
		writeError(w, err)
		return
	}

	includeArchived, _ := strconv.ParseBool(r.URL.Query().Get("include_archived"))

	output, err := h.ListCampaignsUC.Execute(r.Context(), usecase.ListCampaignsInput{
		APIKey:          key,
		Query:           r.URL.Query().Get("q"),
		IncludeArchived: includeArchived,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
