package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

type ListCampaignsUseCase struct {
	Gateway  CampaignGateway
	Recorder Recorder
	Logger   *zap.Logger
}

func NewListCampaignsUseCase(gateway CampaignGateway, recorder Recorder, logger *zap.Logger) *ListCampaignsUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListCampaignsUseCase{Gateway: gateway, Recorder: recorder, Logger: logger}
}

// Execute fetches the campaign directory once and applies the task pane
// filters: archived campaigns out, alphabetical order, search terms.
func (uc *ListCampaignsUseCase) Execute(ctx context.Context, input ListCampaignsInput) (*ListCampaignsOutput, error) {
	if err := validateAPIKey(input.APIKey); err != nil {
		return nil, err
	}

	campaigns, err := uc.Gateway.ListCampaigns(ctx, input.APIKey)
	if err != nil {
		uc.Logger.Error("list campaigns failed", zap.Error(err))
		uc.Recorder.RecordIntegrationError("smartlead")
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	if input.IncludeArchived {
		entity.SortCampaignsByName(campaigns)
	} else {
		campaigns = entity.FilterActiveCampaigns(campaigns)
	}
	campaigns = entity.SearchCampaigns(campaigns, input.Query)

	output := &ListCampaignsOutput{
		Campaigns: campaigns,
		Total:     len(campaigns),
	}
	if len(campaigns) == 1 {
		output.AutoSelectedID = campaigns[0].ID
	}
	return output, nil
}
